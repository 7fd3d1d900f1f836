package vision

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"mammo-regions/internal/domain/entity"
)

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// labelBlocks размечает маску и возвращает разметку вместе с «контрастным» изображением value.
func labelBlocks(t *testing.T, rows, cols int, blocks [][3]int, value uint8) (*entity.LabelImage, *entity.PixelImage) {
	t.Helper()
	img := entity.NewPixelImage(rows, cols)
	for _, b := range blocks {
		paintBlock(img, b[0], b[1], b[2], value)
	}
	return LabelComponents(img), img
}

func TestSelectRegion_FallbackToLargest(t *testing.T) {
	// Блоки 4x4, 6x6 и 5x5 тусклые и не попадают в диапазон площади.
	labels, remapped := labelBlocks(t, 30, 30, [][3]int{{0, 0, 4}, {10, 10, 6}, {20, 20, 5}}, 50)
	require.Equal(t, 3, labels.Count)

	result := SelectRegion(labels, remapped, DefaultParams(), quietLogger())
	require.Equal(t, entity.StateFallback, result.State)
	require.Equal(t, 2, result.Label)
	require.Len(t, result.Points, 36)
	require.Equal(t, entity.CriterionNone, result.Criterion)
	require.Equal(t, 3, result.Components)
}

func TestSelectRegion_FirstMatchWins(t *testing.T) {
	labels, remapped := labelBlocks(t, 30, 30, [][3]int{{0, 0, 4}, {10, 10, 6}}, 220)

	result := SelectRegion(labels, remapped, DefaultParams(), quietLogger())
	require.Equal(t, entity.StateSelected, result.State)
	require.Equal(t, 1, result.Label)
	require.Equal(t, entity.CriterionIntensity, result.Criterion)
	require.Len(t, result.Points, 16)
}

func TestSelectRegion_SkipsNoise(t *testing.T) {
	// Первая компонента 3x3 яркая, но меньше 10 пикселей.
	img := entity.NewPixelImage(30, 30)
	paintBlock(img, 0, 0, 3, 255)
	paintBlock(img, 10, 10, 4, 60)
	paintBlock(img, 20, 20, 4, 200)
	labels := LabelComponents(img)

	result := SelectRegion(labels, img, DefaultParams(), quietLogger())
	require.Equal(t, entity.StateSelected, result.State)
	require.Equal(t, 3, result.Label)
}

func TestSelectRegion_AreaCriterion(t *testing.T) {
	labels, remapped := labelBlocks(t, 40, 40, [][3]int{{0, 0, 2}, {5, 5, 30}}, 10)

	result := SelectRegion(labels, remapped, DefaultParams(), quietLogger())
	require.Equal(t, entity.StateSelected, result.State)
	require.Equal(t, entity.CriterionArea, result.Criterion)
	require.Equal(t, 2, result.Label)
	require.Len(t, result.Points, 900)
}

func TestSelectRegion_NoComponents(t *testing.T) {
	labels := LabelComponents(entity.NewPixelImage(5, 5))

	result := SelectRegion(labels, entity.NewPixelImage(5, 5), DefaultParams(), quietLogger())
	require.Equal(t, entity.StateEmpty, result.State)
	require.True(t, result.Empty())
}

func TestSelectRegion_OnlyNoiseFallsBack(t *testing.T) {
	labels, remapped := labelBlocks(t, 10, 10, [][3]int{{0, 0, 2}, {5, 5, 3}}, 255)

	result := SelectRegion(labels, remapped, DefaultParams(), quietLogger())
	require.Equal(t, entity.StateFallback, result.State)
	require.Equal(t, 2, result.Label)
	require.Len(t, result.Points, 9)
}
