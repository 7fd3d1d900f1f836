package vision

import (
	"fmt"

	"mammo-regions/internal/domain/entity"
)

// Mode режим работы конвейера.
type Mode string

const (
	// ModeSelect полный конвейер: фильтрация, контраст, разметка и выбор компоненты.
	ModeSelect Mode = "select"
	// ModeThreshold простой экспорт: пиксели вырезки не ниже квантиля, без разметки.
	ModeThreshold Mode = "threshold"
)

// Params настройки конвейера поиска области.
type Params struct {
	Mode Mode

	// Вырезка
	ImageHeight    int // высота снимка для переворота оси Y; при 0 берётся высота самого снимка
	RadiusOverride int // если > 0, заменяет радиус из разметки

	// Предфильтр
	MedianKernel int
	BoxKernel    int

	// Бинаризация
	SelectQuantile    float64 // квантиль порога в режиме ModeSelect
	ThresholdQuantile float64 // квантиль порога в режиме ModeThreshold

	// Критерии
	MinComponentPixels int // компоненты меньше считаются шумом
	MinArea            int
	MaxArea            int
	MinMeanIntensity   float64
}

// DefaultParams значения, подобранные для снимков MIAS.
func DefaultParams() Params {
	return Params{
		Mode:               ModeSelect,
		ImageHeight:        1024,
		MedianKernel:       3,
		BoxKernel:          9,
		SelectQuantile:     0.95,
		ThresholdQuantile:  0.995,
		MinComponentPixels: 10,
		MinArea:            900,
		MaxArea:            5000,
		MinMeanIntensity:   160,
	}
}

// Validate проверяет согласованность параметров.
func (p Params) Validate() error {
	switch p.Mode {
	case ModeSelect, ModeThreshold:
	default:
		return fmt.Errorf("unknown mode %q: %w", p.Mode, entity.ErrInvalidArgument)
	}
	if p.ImageHeight < 0 {
		return fmt.Errorf("image height %d is negative: %w", p.ImageHeight, entity.ErrInvalidArgument)
	}
	if err := validateKernel("median", p.MedianKernel); err != nil {
		return err
	}
	if err := validateKernel("box", p.BoxKernel); err != nil {
		return err
	}
	if err := validateProbability(p.SelectQuantile); err != nil {
		return err
	}
	if err := validateProbability(p.ThresholdQuantile); err != nil {
		return err
	}
	if p.MinComponentPixels < 0 {
		return fmt.Errorf("min component pixels %d is negative: %w", p.MinComponentPixels, entity.ErrInvalidArgument)
	}
	if p.MinArea < 0 || p.MaxArea < p.MinArea {
		return fmt.Errorf("area range [%d, %d] is invalid: %w", p.MinArea, p.MaxArea, entity.ErrInvalidArgument)
	}
	return nil
}

func validateKernel(name string, k int) error {
	if k < 1 || k%2 == 0 {
		return fmt.Errorf("%s kernel %d must be odd and positive: %w", name, k, entity.ErrInvalidArgument)
	}
	return nil
}
