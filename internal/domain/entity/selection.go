package entity

// SelectionState чем закончился выбор компоненты.
type SelectionState string

const (
	StateEmpty       SelectionState = "empty"       // компонент нет
	StateSelected    SelectionState = "selected"    // компонента прошла один из критериев
	StateFallback    SelectionState = "fallback"    // ни один критерий не сработал, взята самая крупная
	StateThresholded SelectionState = "thresholded" // простой режим: пиксели выше квантиля, без разметки
)

// Criterion критерий, по которому принята компонента.
type Criterion string

const (
	CriterionNone      Criterion = ""
	CriterionArea      Criterion = "area"
	CriterionSkewness  Criterion = "skewness"
	CriterionIntensity Criterion = "intensity"
)

// SelectionResult координаты выбранной области в системе вырезки.
type SelectionResult struct {
	Points     []Point        // (row, col) в порядке построчного обхода
	State      SelectionState // итоговое состояние выбора
	Label      int            // метка выбранной компоненты, 0 если её нет
	Criterion  Criterion      // сработавший критерий
	Threshold  uint8          // порог бинаризации
	Components int            // число найденных компонент K
}

// Empty true, если область не найдена.
func (r *SelectionResult) Empty() bool {
	return r == nil || len(r.Points) == 0
}

// Bounds ограничивающий прямоугольник выбранных пикселей.
func (r *SelectionResult) Bounds() (Box, bool) {
	if r.Empty() {
		return Box{}, false
	}
	b := BoxAt(r.Points[0])
	for _, p := range r.Points[1:] {
		b.Extend(p)
	}
	return b, true
}
