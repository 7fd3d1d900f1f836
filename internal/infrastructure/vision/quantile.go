package vision

import (
	"fmt"
	"math"

	"mammo-regions/internal/domain/entity"
)

// Quantile возвращает выборочный квантиль методом ближайшего ранга:
// значения упорядочиваются по возрастанию, берётся элемент с индексом floor(p*(n-1)).
//
// Яркости лежат в 0..255, поэтому вместо сортировки строится гистограмма.
func Quantile(samples []uint8, p float64) (uint8, error) {
	if len(samples) == 0 {
		return 0, fmt.Errorf("quantile of empty sample: %w", entity.ErrInvalidArgument)
	}
	if err := validateProbability(p); err != nil {
		return 0, err
	}

	var hist [256]int
	for _, v := range samples {
		hist[v]++
	}

	rank := int(math.Floor(p * float64(len(samples)-1)))
	seen := 0
	for v, count := range hist {
		seen += count
		if seen > rank {
			return uint8(v), nil
		}
	}
	// недостижимо: seen == len(samples) > rank
	return 255, nil
}

func validateProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("probability %v outside [0,1]: %w", p, entity.ErrInvalidArgument)
	}
	return nil
}
