package vision

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"mammo-regions/internal/domain/entity"
)

// AreaCriterion площадь компоненты в диапазоне [minArea, maxArea].
func AreaCriterion(comp *entity.ComponentPixelSet, minArea, maxArea int) bool {
	n := comp.Size()
	return n >= minArea && n <= maxArea
}

// RawMoments сырые моменты изображения до третьего порядка.
type RawMoments struct {
	M00, M10, M01      float64
	M20, M11, M02      float64
	M30, M21, M12, M03 float64
}

// ComputeMoments считает моменты яркости внутри прямоугольника box.
// Координаты отсчитываются от левого верхнего угла прямоугольника: x это столбец, y строка.
func ComputeMoments(img *entity.PixelImage, box entity.Box) RawMoments {
	var m RawMoments
	for r := box.MinRow; r <= box.MaxRow; r++ {
		y := float64(r - box.MinRow)
		for c := box.MinCol; c <= box.MaxCol; c++ {
			v := float64(img.At(r, c))
			if v == 0 {
				continue
			}
			x := float64(c - box.MinCol)
			xv := x * v
			yv := y * v
			m.M00 += v
			m.M10 += xv
			m.M01 += yv
			m.M20 += x * xv
			m.M11 += x * yv
			m.M02 += y * yv
			m.M30 += x * x * xv
			m.M21 += x * x * yv
			m.M12 += x * y * yv
			m.M03 += y * y * yv
		}
	}
	return m
}

// SkewnessInvariant I3 = (n30 - 3·n12)^2 + (3·n21 - n03)^2 по нормированным центральным моментам.
// Для нулевой массы возвращает NaN.
func SkewnessInvariant(m RawMoments) float64 {
	if m.M00 == 0 {
		return math.NaN()
	}
	xc := m.M10 / m.M00
	yc := m.M01 / m.M00

	mu30 := m.M30 - 3*xc*m.M20 + 2*xc*xc*m.M10
	mu03 := m.M03 - 3*yc*m.M02 + 2*yc*yc*m.M01
	mu21 := m.M21 - 2*xc*m.M11 - yc*m.M20 + 2*xc*xc*m.M01
	mu12 := m.M12 - 2*yc*m.M11 - xc*m.M02 + 2*yc*yc*m.M10

	norm := math.Pow(m.M00, 1+3.0/2.0)
	n30 := mu30 / norm
	n03 := mu03 / norm
	n21 := mu21 / norm
	n12 := mu12 / norm

	a := n30 - 3*n12
	b := 3*n21 - n03
	return a*a + b*b
}

// SkewnessCriterion срабатывает при I3 < 0. Сумма квадратов отрицательной не бывает,
// так что на практике критерий не выполняется никогда; сравнение сохранено как есть.
func SkewnessCriterion(remapped *entity.PixelImage, comp *entity.ComponentPixelSet) (bool, float64) {
	i3 := SkewnessInvariant(ComputeMoments(remapped, comp.Bounds))
	return i3 < 0, i3
}

// MeanIntensity средняя яркость пикселей компоненты.
func MeanIntensity(remapped *entity.PixelImage, comp *entity.ComponentPixelSet) float64 {
	if comp.Size() == 0 {
		return 0
	}
	values := make([]float64, comp.Size())
	for i, p := range comp.Points {
		values[i] = float64(remapped.At(p.Row, p.Col))
	}
	return stat.Mean(values, nil)
}

// IntensityCriterion средняя яркость не ниже minMean.
func IntensityCriterion(remapped *entity.PixelImage, comp *entity.ComponentPixelSet, minMean float64) bool {
	return MeanIntensity(remapped, comp) >= minMean
}

// Evaluation значения всех признаков компоненты, для логов.
type Evaluation struct {
	Criterion entity.Criterion
	Area      int
	I3        float64
	Mean      float64
}

// Evaluate проверяет критерии по порядку: площадь, асимметрия, яркость.
// Возвращает первый сработавший; дальнейшие не вычисляются.
func Evaluate(remapped *entity.PixelImage, comp *entity.ComponentPixelSet, params Params) Evaluation {
	ev := Evaluation{Area: comp.Size(), I3: math.NaN(), Mean: math.NaN()}

	if AreaCriterion(comp, params.MinArea, params.MaxArea) {
		ev.Criterion = entity.CriterionArea
		return ev
	}

	ok, i3 := SkewnessCriterion(remapped, comp)
	ev.I3 = i3
	if ok {
		ev.Criterion = entity.CriterionSkewness
		return ev
	}

	ev.Mean = MeanIntensity(remapped, comp)
	if ev.Mean >= params.MinMeanIntensity {
		ev.Criterion = entity.CriterionIntensity
	}
	return ev
}
