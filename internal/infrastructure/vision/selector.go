package vision

import (
	"github.com/sirupsen/logrus"

	"mammo-regions/internal/domain/entity"
)

// SelectRegion перебирает компоненты 1..K и возвращает первую, прошедшую любой критерий.
// Компоненты меньше MinComponentPixels пропускаются как шум. Если ни одна не прошла,
// возвращается самая крупная компонента; при K == 0 результат пустой.
func SelectRegion(labels *entity.LabelImage, remapped *entity.PixelImage, params Params, log logrus.FieldLogger) *entity.SelectionResult {
	result := &entity.SelectionResult{
		State:      entity.StateEmpty,
		Components: labels.Count,
	}

	var fallback *entity.ComponentPixelSet
	components := labels.Components()
	for i := range components {
		comp := &components[i]

		if fallback == nil || comp.Size() > fallback.Size() {
			fallback = comp
		}
		if comp.Size() < params.MinComponentPixels {
			continue
		}

		ev := Evaluate(remapped, comp, params)
		log.WithFields(logrus.Fields{
			"label": comp.Label,
			"area":  ev.Area,
			"i3":    ev.I3,
			"mean":  ev.Mean,
		}).Debug("component evaluated")

		if ev.Criterion != entity.CriterionNone {
			result.State = entity.StateSelected
			result.Label = comp.Label
			result.Criterion = ev.Criterion
			result.Points = comp.Points
			return result
		}
	}

	if fallback != nil {
		result.State = entity.StateFallback
		result.Label = fallback.Label
		result.Points = fallback.Points
	}
	return result
}
