//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"mammo-regions/internal/domain/entity"
	"mammo-regions/internal/domain/port"
)

// GoCVPreFilter медиана и усреднение средствами OpenCV.
type GoCVPreFilter struct {
	MedianKernel int
	BoxKernel    int
}

// NewGoCVPreFilter создаёт фильтр на OpenCV с размерами ядер из параметров.
func NewGoCVPreFilter(params Params) (*GoCVPreFilter, error) {
	return &GoCVPreFilter{
		MedianKernel: params.MedianKernel,
		BoxKernel:    params.BoxKernel,
	}, nil
}

// Apply применяет cv::medianBlur, затем cv::blur.
func (f *GoCVPreFilter) Apply(img *entity.PixelImage) (*entity.PixelImage, error) {
	if err := validateKernel("median", f.MedianKernel); err != nil {
		return nil, err
	}
	if err := validateKernel("box", f.BoxKernel); err != nil {
		return nil, err
	}
	if img.Empty() {
		return entity.NewPixelImage(img.Rows, img.Cols), nil
	}

	src, err := ToMat(img)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	median := gocv.NewMat()
	defer median.Close()
	gocv.MedianBlur(src, &median, f.MedianKernel)

	box := gocv.NewMat()
	defer box.Close()
	gocv.Blur(median, &box, image.Pt(f.BoxKernel, f.BoxKernel))

	return FromMat(box)
}

// ToMat копирует изображение в одноканальную gocv.Mat.
func ToMat(img *entity.PixelImage) (gocv.Mat, error) {
	mat, err := gocv.NewMatFromBytes(img.Rows, img.Cols, gocv.MatTypeCV8UC1, img.Pix)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("to mat: %w", err)
	}
	// NewMatFromBytes не копирует буфер.
	clone := mat.Clone()
	mat.Close()
	return clone, nil
}

// FromMat копирует одноканальную 8-битную gocv.Mat в PixelImage.
func FromMat(mat gocv.Mat) (*entity.PixelImage, error) {
	if mat.Empty() {
		return nil, errors.New("empty mat")
	}
	if mat.Type() != gocv.MatTypeCV8UC1 {
		return nil, fmt.Errorf("unexpected mat type %v", mat.Type())
	}
	out := entity.NewPixelImage(mat.Rows(), mat.Cols())
	copy(out.Pix, mat.ToBytes())
	return out, nil
}

// Проверка реализации интерфейса
var _ port.PreFilter = (*GoCVPreFilter)(nil)
