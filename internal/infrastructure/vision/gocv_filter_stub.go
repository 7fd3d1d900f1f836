//go:build !gocv
// +build !gocv

package vision

import "mammo-regions/internal/domain/entity"

// GoCVPreFilter заглушка фильтра на OpenCV.
type GoCVPreFilter struct {
	MedianKernel int
	BoxKernel    int
}

// NewGoCVPreFilter возвращает ошибку, если сборка без тега gocv.
func NewGoCVPreFilter(params Params) (*GoCVPreFilter, error) {
	_ = params
	return nil, ErrGoCVDisabled
}

// Apply возвращает ошибку, если сборка без тега gocv.
func (f *GoCVPreFilter) Apply(img *entity.PixelImage) (*entity.PixelImage, error) {
	_ = img
	return nil, ErrGoCVDisabled
}
