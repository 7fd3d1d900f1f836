package telegram

import (
	"errors"
	"fmt"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"mammo-regions/internal/domain/entity"
)

func TestFormatSummary(t *testing.T) {
	region := entity.RegionDescriptor{CenterX: 535, CenterY: 425, Radius: 30}

	selected := &entity.SelectionResult{
		Points:     []entity.Point{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}},
		State:      entity.StateSelected,
		Label:      2,
		Criterion:  entity.CriterionIntensity,
		Threshold:  143,
		Components: 4,
	}
	text := FormatSummary(region, selected)
	require.Contains(t, text, "x=535, y=425, r=30")
	require.Contains(t, text, "Компонента 2 принята по критерию: яркость")
	require.Contains(t, text, "Пикселей: 3")
	require.Contains(t, text, "Порог: 143")
	require.Contains(t, text, "Компонент: 4")
	require.Contains(t, text, "Рамка: 2×2, центр в вырезке: строка 1, столбец 1")

	fallback := *selected
	fallback.State = entity.StateFallback
	require.Contains(t, FormatSummary(region, &fallback), "выбрана самая крупная")

	require.Contains(t, FormatSummary(region, &entity.SelectionResult{State: entity.StateEmpty}), "не найдена")
	require.Contains(t, FormatSummary(region, nil), "не найдена")
}

func TestImageFileID(t *testing.T) {
	id, ok := imageFileID(&tgbotapi.Message{Document: &tgbotapi.Document{FileID: "doc", MimeType: "image/png"}})
	require.True(t, ok)
	require.Equal(t, "doc", id)

	_, ok = imageFileID(&tgbotapi.Message{Document: &tgbotapi.Document{FileID: "pdf", MimeType: "application/pdf"}})
	require.False(t, ok)

	id, ok = imageFileID(&tgbotapi.Message{Photo: []tgbotapi.PhotoSize{{FileID: "small"}, {FileID: "large"}}})
	require.True(t, ok)
	require.Equal(t, "large", id)

	_, ok = imageFileID(&tgbotapi.Message{Text: "hello"})
	require.False(t, ok)
}

func TestErrorMessage(t *testing.T) {
	require.Equal(t, msgOutOfBounds, errorMessage(fmt.Errorf("crop: %w", entity.ErrOutOfBounds)))
	require.Equal(t, msgDegenerate, errorMessage(fmt.Errorf("contrast remap: %w", entity.ErrDegenerateImage)))
	require.Equal(t, msgProcessingError, errorMessage(errors.New("decode image: bad png")))
}
