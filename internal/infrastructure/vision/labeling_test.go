package vision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mammo-regions/internal/domain/entity"
)

func paintBlock(img *entity.PixelImage, top, left, size int, v uint8) {
	for r := top; r < top+size; r++ {
		for c := left; c < left+size; c++ {
			img.Set(r, c, v)
		}
	}
}

func TestBinarizeAndLabel_TwoBlocks(t *testing.T) {
	img := entity.NewPixelImage(10, 10)
	paintBlock(img, 1, 1, 3, 255)
	paintBlock(img, 5, 5, 3, 255)

	mask, threshold, err := Binarize(img, 0.95)
	require.NoError(t, err)
	require.Equal(t, uint8(255), threshold)

	labels := LabelComponents(mask)
	require.Equal(t, 2, labels.Count)
	require.Equal(t, mask.Rows, labels.Rows)
	require.Equal(t, mask.Cols, labels.Cols)

	for _, comp := range labels.Components() {
		require.Equal(t, 9, comp.Size())
	}
	require.Equal(t, 1, labels.At(1, 1))
	require.Equal(t, 2, labels.At(7, 7))
	require.Equal(t, entity.Background, labels.At(0, 0))
}

func TestLabelComponents_EightConnectivity(t *testing.T) {
	mask, err := entity.PixelImageFromRows([][]uint8{
		{255, 0, 0, 0},
		{0, 255, 0, 0},
		{0, 0, 255, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)

	labels := LabelComponents(mask)
	require.Equal(t, 1, labels.Count)
	require.Equal(t, 3, labels.Components()[0].Size())
}

func TestLabelComponents_MergesEquivalentLabels(t *testing.T) {
	// U-образная фигура: две ветви получают разные временные метки и сливаются внизу.
	mask, err := entity.PixelImageFromRows([][]uint8{
		{1, 0, 1, 0, 1},
		{1, 0, 1, 0, 0},
		{1, 1, 1, 0, 1},
	})
	require.NoError(t, err)

	labels := LabelComponents(mask)
	require.Equal(t, 3, labels.Count)
	require.Equal(t, 1, labels.At(0, 0))
	require.Equal(t, 1, labels.At(0, 2))
	require.Equal(t, 2, labels.At(0, 4))
	require.Equal(t, 3, labels.At(2, 4))
	require.Equal(t, 7, labels.Components()[0].Size())
}

func TestLabelComponents_Empty(t *testing.T) {
	labels := LabelComponents(entity.NewPixelImage(4, 4))
	require.Equal(t, 0, labels.Count)
	require.Empty(t, labels.Components())
}

func TestRenumberScanOrder(t *testing.T) {
	// метки в произвольном порядке, как их может выдать блочный алгоритм
	raw := []int{
		0, 7, 7, 0,
		3, 0, 0, 9,
		3, 0, 7, 0,
	}
	labels := RenumberScanOrder(raw, 3, 4)
	require.Equal(t, 3, labels.Count)
	require.Equal(t, []int{
		0, 1, 1, 0,
		2, 0, 0, 3,
		2, 0, 1, 0,
	}, labels.Labels)
}

func TestNativeLabeler(t *testing.T) {
	mask := entity.NewPixelImage(10, 10)
	paintBlock(mask, 1, 1, 3, 255)
	paintBlock(mask, 5, 5, 3, 255)

	labels, err := NativeLabeler{}.Label(mask)
	require.NoError(t, err)
	require.Equal(t, LabelComponents(mask), labels)
}

// reversedLabeler нумерует компоненты в обратном порядке, чтобы было видно, что Finder берёт метки из порта.
type reversedLabeler struct{ calls int }

func (r *reversedLabeler) Label(mask *entity.PixelImage) (*entity.LabelImage, error) {
	r.calls++
	labels := LabelComponents(mask)
	for i, l := range labels.Labels {
		if l != entity.Background {
			labels.Labels[i] = labels.Count + 1 - l
		}
	}
	return labels, nil
}

func TestFinder_UsesInjectedLabeler(t *testing.T) {
	params := DefaultParams()
	params.ImageHeight = 200
	labeler := &reversedLabeler{}
	f, err := NewFinder(params, nil, labeler, quietLogger())
	require.NoError(t, err)

	img := syntheticMammogram(200, 200, 120, 100)
	region := entity.RegionDescriptor{Name: "synthetic", CenterX: 100, CenterY: 80, Radius: 40}
	result, err := f.Find(context.Background(), img, region)
	require.NoError(t, err)
	require.Equal(t, 1, labeler.calls)
	require.Contains(t, result.Points, entity.Point{Row: 40, Col: 40})
}
