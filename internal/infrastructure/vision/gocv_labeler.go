//go:build gocv
// +build gocv

package vision

import (
	"gocv.io/x/gocv"

	"mammo-regions/internal/domain/entity"
	"mammo-regions/internal/domain/port"
)

// GoCVLabeler разметка компонент через cv::connectedComponents.
type GoCVLabeler struct{}

// NewGoCVLabeler создаёт разметчик на OpenCV.
func NewGoCVLabeler() (*GoCVLabeler, error) {
	return &GoCVLabeler{}, nil
}

// Label размечает маску (8-связность) и перенумеровывает метки в порядке построчного обхода:
// OpenCV не обещает этот порядок для блочных алгоритмов.
func (l *GoCVLabeler) Label(mask *entity.PixelImage) (*entity.LabelImage, error) {
	if mask.Empty() {
		return entity.NewLabelImage(mask.Rows, mask.Cols), nil
	}

	src, err := ToMat(mask)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	labels := gocv.NewMat()
	defer labels.Close()
	gocv.ConnectedComponents(src, &labels)

	raw := make([]int, mask.Rows*mask.Cols)
	for r := 0; r < mask.Rows; r++ {
		for c := 0; c < mask.Cols; c++ {
			raw[r*mask.Cols+c] = int(labels.GetIntAt(r, c))
		}
	}
	return RenumberScanOrder(raw, mask.Rows, mask.Cols), nil
}

// Проверка реализации интерфейса
var _ port.Labeler = (*GoCVLabeler)(nil)
