package entity

// Background метка фона в LabelImage.
const Background = 0

// LabelImage результат разметки связных компонент.
// 0 означает фон, 1..Count компоненты переднего плана.
type LabelImage struct {
	Rows   int
	Cols   int
	Labels []int
	Count  int // число компонент K без учёта фона
}

// NewLabelImage создаёт пустую разметку rows×cols.
func NewLabelImage(rows, cols int) *LabelImage {
	return &LabelImage{
		Rows:   rows,
		Cols:   cols,
		Labels: make([]int, rows*cols),
	}
}

// At возвращает метку пикселя (row, col).
func (l *LabelImage) At(row, col int) int {
	return l.Labels[row*l.Cols+col]
}

// ComponentPixelSet пиксели одной компоненты в порядке построчного обхода.
type ComponentPixelSet struct {
	Label  int
	Points []Point
	Bounds Box
}

// Size число пикселей компоненты.
func (c *ComponentPixelSet) Size() int {
	return len(c.Points)
}

// Components собирает все компоненты за один проход; элемент i соответствует метке i+1.
func (l *LabelImage) Components() []ComponentPixelSet {
	sets := make([]ComponentPixelSet, l.Count)
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			label := l.Labels[r*l.Cols+c]
			if label == Background {
				continue
			}
			p := Point{Row: r, Col: c}
			set := &sets[label-1]
			if len(set.Points) == 0 {
				set.Label = label
				set.Bounds = BoxAt(p)
			}
			set.Points = append(set.Points, p)
			set.Bounds.Extend(p)
		}
	}
	return sets
}
