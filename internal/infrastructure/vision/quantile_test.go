package vision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"mammo-regions/internal/domain/entity"
)

func TestQuantile_NearestRank(t *testing.T) {
	samples := []uint8{5, 3, 1, 4, 2}

	cases := []struct {
		p    float64
		want uint8
	}{
		{0.0, 1},
		{0.5, 3},
		{1.0, 5},
		{0.74, 3}, // floor(0.74*4) = 2
		{0.75, 4},
	}
	for _, tc := range cases {
		got, err := Quantile(samples, tc.p)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "p=%v", tc.p)
	}
}

func TestQuantile_LargeSample(t *testing.T) {
	samples := make([]uint8, 100)
	for i := range samples {
		samples[i] = uint8(99 - i)
	}
	got, err := Quantile(samples, 0.95)
	require.NoError(t, err)
	require.Equal(t, uint8(94), got)
}

func TestQuantile_InvalidArgument(t *testing.T) {
	_, err := Quantile(nil, 0.5)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	for _, p := range []float64{-0.01, 1.01, math.NaN()} {
		_, err = Quantile([]uint8{1, 2}, p)
		require.ErrorIs(t, err, entity.ErrInvalidArgument, "p=%v", p)
	}
}
