package vision

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"mammo-regions/internal/domain/entity"
	"mammo-regions/internal/domain/port"
)

// Finder конвейер поиска области: вырезка, фильтрация, контраст, порог, разметка, выбор.
// Состояния между вызовами нет, один Finder можно использовать из нескольких горутин.
type Finder struct {
	params    Params
	prefilter port.PreFilter
	labeler   port.Labeler
	log       logrus.FieldLogger
}

// NewFinder создаёт конвейер. Если prefilter или labeler nil, используются реализации на чистом Go.
func NewFinder(params Params, prefilter port.PreFilter, labeler port.Labeler, log logrus.FieldLogger) (*Finder, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if prefilter == nil {
		prefilter = NewNativePreFilter(params)
	}
	if labeler == nil {
		labeler = NativeLabeler{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Finder{
		params:    params,
		prefilter: prefilter,
		labeler:   labeler,
		log:       log,
	}, nil
}

// Params возвращает настройки конвейера.
func (f *Finder) Params() Params {
	return f.params
}

// Crop вырезает область с учётом переворота оси и замены радиуса из настроек.
func (f *Finder) Crop(img *entity.PixelImage, region entity.RegionDescriptor) (*entity.PixelImage, error) {
	return Crop(img, region, f.params.ImageHeight, f.params.RadiusOverride)
}

// Find запускает конвейер для одной записи разметки.
func (f *Finder) Find(ctx context.Context, img *entity.PixelImage, region entity.RegionDescriptor) (*entity.SelectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cropped, err := f.Crop(img, region)
	if err != nil {
		return nil, err
	}
	return f.Analyze(ctx, cropped, region)
}

// Analyze выбирает компоненту в уже вырезанной области.
func (f *Finder) Analyze(ctx context.Context, cropped *entity.PixelImage, region entity.RegionDescriptor) (*entity.SelectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cropped.Empty() {
		return nil, fmt.Errorf("analyze %s: empty crop: %w", region.Name, entity.ErrInvalidArgument)
	}
	log := f.log.WithField("region", region.Name)

	if f.params.Mode == ModeThreshold {
		return f.thresholdSelect(cropped, log)
	}
	return f.selectComponent(cropped, log)
}

func (f *Finder) selectComponent(cropped *entity.PixelImage, log logrus.FieldLogger) (*entity.SelectionResult, error) {
	filtered, err := f.prefilter.Apply(cropped)
	if err != nil {
		return nil, fmt.Errorf("prefilter: %w", err)
	}
	if filtered.Max() == 0 {
		return nil, fmt.Errorf("contrast remap: %w", entity.ErrDegenerateImage)
	}

	remapped := RemapContrast(filtered)

	mask, threshold, err := Binarize(remapped, f.params.SelectQuantile)
	if err != nil {
		return nil, err
	}

	labels, err := f.labeler.Label(mask)
	if err != nil {
		return nil, fmt.Errorf("label components: %w", err)
	}
	result := SelectRegion(labels, remapped, f.params, log)
	result.Threshold = threshold

	log.WithFields(logrus.Fields{
		"threshold":  threshold,
		"components": labels.Count,
		"state":      result.State,
		"label":      result.Label,
		"criterion":  result.Criterion,
		"pixels":     len(result.Points),
	}).Debug("region selected")

	return result, nil
}

// thresholdSelect простой режим: все пиксели вырезки не ниже квантиля, без фильтрации и разметки.
func (f *Finder) thresholdSelect(cropped *entity.PixelImage, log logrus.FieldLogger) (*entity.SelectionResult, error) {
	threshold, err := Quantile(cropped.Samples(), f.params.ThresholdQuantile)
	if err != nil {
		return nil, err
	}

	result := &entity.SelectionResult{
		State:     entity.StateThresholded,
		Threshold: threshold,
	}
	for r := 0; r < cropped.Rows; r++ {
		for c := 0; c < cropped.Cols; c++ {
			if cropped.At(r, c) >= threshold {
				result.Points = append(result.Points, entity.Point{Row: r, Col: c})
			}
		}
	}

	log.WithFields(logrus.Fields{
		"threshold": threshold,
		"pixels":    len(result.Points),
	}).Debug("threshold export")

	return result, nil
}

// Проверка реализации интерфейса
var _ port.RegionFinder = (*Finder)(nil)
