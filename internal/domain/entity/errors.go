package entity

import "errors"

var (
	// ErrInvalidArgument некорректный параметр: пустая выборка, p вне [0,1], неверный радиус или ядро.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfBounds прямоугольник вырезки выходит за границы исходного изображения.
	ErrOutOfBounds = errors.New("crop rectangle out of bounds")

	// ErrDegenerateImage максимум яркости после фильтрации равен нулю.
	ErrDegenerateImage = errors.New("degenerate image: zero maximum intensity")
)
