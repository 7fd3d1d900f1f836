package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPixelImageFromRows(t *testing.T) {
	img, err := PixelImageFromRows([][]uint8{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, img.Rows)
	require.Equal(t, 3, img.Cols)
	require.Equal(t, uint8(6), img.At(1, 2))
	require.Equal(t, uint8(6), img.Max())

	_, err = PixelImageFromRows([][]uint8{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLabelImage_Components(t *testing.T) {
	l := NewLabelImage(3, 4)
	l.Count = 2
	// 1 1 0 2
	// 0 1 0 2
	// 0 0 0 2
	l.Labels = []int{
		1, 1, 0, 2,
		0, 1, 0, 2,
		0, 0, 0, 2,
	}

	sets := l.Components()
	require.Len(t, sets, 2)
	require.Equal(t, 1, sets[0].Label)
	require.Equal(t, 3, sets[0].Size())
	require.Equal(t, Box{MinRow: 0, MinCol: 0, MaxRow: 1, MaxCol: 1}, sets[0].Bounds)
	require.Equal(t, []Point{{0, 3}, {1, 3}, {2, 3}}, sets[1].Points)
}

func TestBoxCenter(t *testing.T) {
	b := Box{MinRow: 10, MinCol: 20, MaxRow: 14, MaxCol: 27}
	row, col := b.Center()
	require.Equal(t, 12, row)
	require.Equal(t, 23, col)
	require.Equal(t, 8, b.Width())
	require.Equal(t, 5, b.Height())
}

func TestSelectionResultBounds(t *testing.T) {
	var empty *SelectionResult
	require.True(t, empty.Empty())

	r := &SelectionResult{Points: []Point{{2, 3}, {4, 1}}}
	b, ok := r.Bounds()
	require.True(t, ok)
	require.Equal(t, Box{MinRow: 2, MinCol: 1, MaxRow: 4, MaxCol: 3}, b)
}
