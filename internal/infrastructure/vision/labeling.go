package vision

import (
	"mammo-regions/internal/domain/entity"
	"mammo-regions/internal/domain/port"
)

// LabelComponents размечает 8-связные компоненты маски в два прохода.
// Ненулевые пиксели маски считаются передним планом. Метки 1..K присваиваются
// в порядке первого появления при построчном обходе.
func LabelComponents(mask *entity.PixelImage) *entity.LabelImage {
	labels := entity.NewLabelImage(mask.Rows, mask.Cols)
	if mask.Empty() {
		return labels
	}

	rows, cols := mask.Rows, mask.Cols
	uf := newUnionFind(rows * cols / 2)
	provisional := labels.Labels

	// Первый проход: временные метки и объединение эквивалентных.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if mask.Pix[r*cols+c] == 0 {
				continue
			}
			label := 0
			for _, n := range scannedNeighbours(r, c, rows, cols) {
				nl := provisional[n]
				if nl == 0 {
					continue
				}
				if label == 0 {
					label = nl
					continue
				}
				uf.union(label, nl)
			}
			if label == 0 {
				label = uf.add()
			}
			provisional[r*cols+c] = label
		}
	}

	// Второй проход: корни переводятся в итоговые номера по порядку появления.
	final := make(map[int]int)
	for i, l := range provisional {
		if l == 0 {
			continue
		}
		root := uf.root(l)
		id, ok := final[root]
		if !ok {
			id = len(final) + 1
			final[root] = id
		}
		provisional[i] = id
	}
	labels.Count = len(final)
	return labels
}

// scannedNeighbours индексы уже пройденных соседей: запад, северо-запад, север, северо-восток.
func scannedNeighbours(r, c, rows, cols int) []int {
	out := make([]int, 0, 4)
	if c > 0 {
		out = append(out, r*cols+c-1)
	}
	if r > 0 {
		if c > 0 {
			out = append(out, (r-1)*cols+c-1)
		}
		out = append(out, (r-1)*cols+c)
		if c+1 < cols {
			out = append(out, (r-1)*cols+c+1)
		}
	}
	return out
}

// unionFind система непересекающихся множеств с нумерацией с единицы.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(capacity int) *unionFind {
	uf := &unionFind{
		parent: make([]int, 1, capacity+1),
		size:   make([]int, 1, capacity+1),
	}
	return uf
}

func (u *unionFind) add() int {
	id := len(u.parent)
	u.parent = append(u.parent, id)
	u.size = append(u.size, 1)
	return id
}

func (u *unionFind) root(p int) int {
	for u.parent[p] != p {
		u.parent[p] = u.parent[u.parent[p]]
		p = u.parent[p]
	}
	return p
}

func (u *unionFind) union(p, q int) {
	pr, qr := u.root(p), u.root(q)
	if pr == qr {
		return
	}
	if u.size[pr] < u.size[qr] {
		pr, qr = qr, pr
	}
	u.parent[qr] = pr
	u.size[pr] += u.size[qr]
}

// RenumberScanOrder переводит произвольные метки (0 означает фон) в 1..K
// по порядку первого появления при построчном обходе.
func RenumberScanOrder(raw []int, rows, cols int) *entity.LabelImage {
	labels := entity.NewLabelImage(rows, cols)
	final := make(map[int]int)
	for i, l := range raw[:rows*cols] {
		if l == entity.Background {
			continue
		}
		id, ok := final[l]
		if !ok {
			id = len(final) + 1
			final[l] = id
		}
		labels.Labels[i] = id
	}
	labels.Count = len(final)
	return labels
}

// NativeLabeler разметка на чистом Go.
type NativeLabeler struct{}

// Label размечает маску через LabelComponents.
func (NativeLabeler) Label(mask *entity.PixelImage) (*entity.LabelImage, error) {
	return LabelComponents(mask), nil
}

// Проверка реализации интерфейса
var _ port.Labeler = NativeLabeler{}
