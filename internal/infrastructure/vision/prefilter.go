package vision

import (
	"errors"
	"fmt"
	"slices"

	"mammo-regions/internal/domain/entity"
	"mammo-regions/internal/domain/port"
)

// ErrGoCVDisabled сборка без тега gocv.
var ErrGoCVDisabled = errors.New("gocv build tag is not enabled")

// MedianFilter медианный фильтр k×k. Края дополняются повтором крайнего пикселя,
// как в cv::medianBlur.
func MedianFilter(img *entity.PixelImage, k int) (*entity.PixelImage, error) {
	if err := validateKernel("median", k); err != nil {
		return nil, err
	}
	out := entity.NewPixelImage(img.Rows, img.Cols)
	if img.Empty() {
		return out, nil
	}

	half := k / 2
	window := make([]uint8, 0, k*k)
	mid := (k * k) / 2
	for r := 0; r < img.Rows; r++ {
		for c := 0; c < img.Cols; c++ {
			window = window[:0]
			for dr := -half; dr <= half; dr++ {
				rr := replicate(r+dr, img.Rows)
				for dc := -half; dc <= half; dc++ {
					window = append(window, img.Pix[rr*img.Cols+replicate(c+dc, img.Cols)])
				}
			}
			slices.Sort(window)
			out.Pix[r*img.Cols+c] = window[mid]
		}
	}
	return out, nil
}

// BoxFilter нормированное усреднение по окну k×k с округлением до ближайшего.
// Края отражаются без повтора крайнего пикселя (BORDER_REFLECT_101, по умолчанию в cv::blur).
func BoxFilter(img *entity.PixelImage, k int) (*entity.PixelImage, error) {
	if err := validateKernel("box", k); err != nil {
		return nil, err
	}
	out := entity.NewPixelImage(img.Rows, img.Cols)
	if img.Empty() {
		return out, nil
	}

	half := k / 2
	area := k * k

	// Сначала суммы по строкам, затем по столбцам.
	rowSums := make([]int, img.Rows*img.Cols)
	for r := 0; r < img.Rows; r++ {
		for c := 0; c < img.Cols; c++ {
			s := 0
			for dc := -half; dc <= half; dc++ {
				s += int(img.Pix[r*img.Cols+reflect101(c+dc, img.Cols)])
			}
			rowSums[r*img.Cols+c] = s
		}
	}
	for r := 0; r < img.Rows; r++ {
		for c := 0; c < img.Cols; c++ {
			s := 0
			for dr := -half; dr <= half; dr++ {
				s += rowSums[reflect101(r+dr, img.Rows)*img.Cols+c]
			}
			out.Pix[r*img.Cols+c] = uint8((2*s + area) / (2 * area))
		}
	}
	return out, nil
}

func replicate(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		} else {
			i = 2*n - 2 - i
		}
	}
	return i
}

// NativePreFilter медиана, затем усреднение, на чистом Go.
type NativePreFilter struct {
	MedianKernel int
	BoxKernel    int
}

// NewNativePreFilter создаёт фильтр с размерами ядер из параметров.
func NewNativePreFilter(params Params) *NativePreFilter {
	return &NativePreFilter{
		MedianKernel: params.MedianKernel,
		BoxKernel:    params.BoxKernel,
	}
}

// Apply применяет медианный фильтр и усреднение к вырезке.
func (f *NativePreFilter) Apply(img *entity.PixelImage) (*entity.PixelImage, error) {
	median, err := MedianFilter(img, f.MedianKernel)
	if err != nil {
		return nil, fmt.Errorf("median filter: %w", err)
	}
	box, err := BoxFilter(median, f.BoxKernel)
	if err != nil {
		return nil, fmt.Errorf("box filter: %w", err)
	}
	return box, nil
}

// Проверка реализации интерфейса
var _ port.PreFilter = (*NativePreFilter)(nil)
