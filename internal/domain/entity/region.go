package entity

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// RegionDescriptor описывает область из файла разметки: центр массы и радиус.
// Координата CenterY задана с началом в левом нижнем углу, как в разметке MIAS.
type RegionDescriptor struct {
	Name       string // базовое имя файла снимка
	ClassLabel string // класс аномалии из разметки
	CenterX    int
	CenterY    int
	Radius     int
}

// String форматирует дескриптор для логов.
func (d RegionDescriptor) String() string {
	return fmt.Sprintf("RegionDescriptor{%s, %s, %d, %d, %d}", d.Name, d.ClassLabel, d.CenterX, d.CenterY, d.Radius)
}

// ParseRegionDescriptor разбирает строку вида "cx cy radius" (разделители пробел или запятая).
// Имя и класс не задаются.
func ParseRegionDescriptor(text string) (RegionDescriptor, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(fields) != 3 {
		return RegionDescriptor{}, fmt.Errorf("%w: expected \"cx cy radius\", got %d values", ErrInvalidArgument, len(fields))
	}

	var nums [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return RegionDescriptor{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgument, f)
		}
		nums[i] = v
	}
	if nums[2] < 0 {
		return RegionDescriptor{}, fmt.Errorf("%w: negative radius %d", ErrInvalidArgument, nums[2])
	}

	return RegionDescriptor{CenterX: nums[0], CenterY: nums[1], Radius: nums[2]}, nil
}
