package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mammo-regions/internal/domain/entity"
)

func filled(rows, cols int, v uint8) *entity.PixelImage {
	img := entity.NewPixelImage(rows, cols)
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestMedianFilter_RemovesImpulse(t *testing.T) {
	img := entity.NewPixelImage(5, 5)
	img.Set(2, 2, 255)
	img.Set(0, 0, 255)

	out, err := MedianFilter(img, 3)
	require.NoError(t, err)
	require.Equal(t, uint8(0), out.Max())
	require.Equal(t, uint8(255), img.At(2, 2), "input must not be modified")
}

func TestMedianFilter_ReplicatedBorder(t *testing.T) {
	// Угловой пиксель: окно с повтором края содержит четыре копии (0,0).
	img, err := entity.PixelImageFromRows([][]uint8{
		{200, 10, 10},
		{10, 10, 10},
		{10, 10, 10},
	})
	require.NoError(t, err)

	out, err := MedianFilter(img, 3)
	require.NoError(t, err)
	require.Equal(t, uint8(10), out.At(0, 0))
}

func TestBoxFilter_ConstantImage(t *testing.T) {
	for _, size := range []int{1, 3, 12} {
		out, err := BoxFilter(filled(size, size, 77), 9)
		require.NoError(t, err)
		for _, v := range out.Pix {
			require.Equal(t, uint8(77), v)
		}
	}
}

func TestBoxFilter_Rounding(t *testing.T) {
	img := entity.NewPixelImage(1, 3)
	img.Set(0, 1, 2)
	// окно 3x3 в строке из одного пикселя: reflect101 по строкам даёт 3 копии строки
	// центр: (0+2+0)*3/9 = 0.67 -> 1
	out, err := BoxFilter(img, 3)
	require.NoError(t, err)
	require.Equal(t, uint8(1), out.At(0, 1))
}

func TestReflect101(t *testing.T) {
	require.Equal(t, 1, reflect101(-1, 5))
	require.Equal(t, 3, reflect101(5, 5))
	require.Equal(t, 0, reflect101(-4, 1))
	require.Equal(t, 2, reflect101(-6, 3))
	for i := -20; i < 20; i++ {
		r := reflect101(i, 3)
		require.True(t, r >= 0 && r < 3)
	}
}

func TestNativePreFilter_InvalidKernel(t *testing.T) {
	f := &NativePreFilter{MedianKernel: 4, BoxKernel: 9}
	_, err := f.Apply(filled(5, 5, 1))
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
