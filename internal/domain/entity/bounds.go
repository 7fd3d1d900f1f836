package entity

// Point координата пикселя (строка, столбец).
type Point struct {
	Row int
	Col int
}

// Box ограничивающий прямоугольник компоненты, границы включительно.
type Box struct {
	MinRow int
	MinCol int
	MaxRow int
	MaxCol int
}

// BoxAt создаёт прямоугольник из одной точки.
func BoxAt(p Point) Box {
	return Box{MinRow: p.Row, MinCol: p.Col, MaxRow: p.Row, MaxCol: p.Col}
}

// Extend расширяет прямоугольник так, чтобы он содержал точку.
func (b *Box) Extend(p Point) {
	if p.Row < b.MinRow {
		b.MinRow = p.Row
	}
	if p.Row > b.MaxRow {
		b.MaxRow = p.Row
	}
	if p.Col < b.MinCol {
		b.MinCol = p.Col
	}
	if p.Col > b.MaxCol {
		b.MaxCol = p.Col
	}
}

// Width ширина в пикселях.
func (b Box) Width() int {
	return b.MaxCol - b.MinCol + 1
}

// Height высота в пикселях.
func (b Box) Height() int {
	return b.MaxRow - b.MinRow + 1
}

// Center возвращает координаты центра прямоугольника.
func (b Box) Center() (row, col int) {
	return b.MinRow + (b.Height()-1)/2, b.MinCol + (b.Width()-1)/2
}
