//go:build !gocv
// +build !gocv

package vision

import "mammo-regions/internal/domain/entity"

// GoCVLabeler заглушка разметчика на OpenCV.
type GoCVLabeler struct{}

// NewGoCVLabeler возвращает ошибку, если сборка без тега gocv.
func NewGoCVLabeler() (*GoCVLabeler, error) {
	return nil, ErrGoCVDisabled
}

// Label возвращает ошибку, если сборка без тега gocv.
func (l *GoCVLabeler) Label(mask *entity.PixelImage) (*entity.LabelImage, error) {
	_ = mask
	return nil, ErrGoCVDisabled
}
