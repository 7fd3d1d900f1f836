package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	app "mammo-regions/internal/application"
	"mammo-regions/internal/container"
	"mammo-regions/internal/domain/entity"
	"mammo-regions/internal/infrastructure/storage"
)

const (
	msgStart = `👋 Привет! Я ищу подозрительную область на маммограмме.

📍 Пришлите координаты центра и радиус области, затем снимок.
Можно сразу отправить снимок с подписью "cx cy radius".

📋 Команды:
/find — начать поиск области
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ /find
2️⃣ Координаты области: "cx cy radius", как в разметке MIAS (ось Y снизу вверх)
3️⃣ Снимок в оттенках серого, лучше файлом, чтобы Telegram не сжимал его

Вы получите описание найденной области, картинку с подсветкой и файл с координатами пикселей "row,col".

📋 Команды:
/find — начать поиск
/cancel — отменить операцию`

	msgAwaitingRegion  = `📍 Отправьте координаты области: "cx cy radius".`
	msgAwaitingImage   = "🩻 Координаты приняты. Отправьте снимок."
	msgBadRegion       = `⚠️ Не удалось разобрать координаты. Нужно три целых числа: "cx cy radius".`
	msgCancelled       = "❌ Операция отменена. Отправьте /find для нового поиска."
	msgSendImage       = "🩻 Отправьте снимок с подписью \"cx cy radius\" или начните с /find."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю снимок..."
	msgOutOfBounds     = "⚠️ Область выходит за границы снимка. Проверьте координаты и радиус."
	msgDegenerate      = "⚠️ В области нет ни одного светлого пикселя."
	msgProcessingError = "⚠️ Не удалось обработать снимок. Попробуйте другой файл."
)

// Bot представляет Telegram-бота
type Bot struct {
	api     *tgbotapi.BotAPI
	users   *app.UserService
	regions *app.RegionService
	client  *http.Client
	log     logrus.FieldLogger
}

// NewBot создаёт нового бота
func NewBot(token string, services *container.Container, log logrus.FieldLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	log.WithField("account", api.Self.UserName).Info("authorized")

	return &Bot{
		api:     api,
		users:   services.UserService,
		regions: services.RegionService,
		client:  http.DefaultClient,
		log:     log,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	log := b.log.WithFields(logrus.Fields{"user": msg.From.ID, "chat": msg.Chat.ID})

	user, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.WithError(err).Error("get user")
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user, log)
		return
	}

	// Снимок: файлом или фото
	if fileID, ok := imageFileID(msg); ok {
		b.handleImage(ctx, msg, user, fileID, log)
		return
	}

	if user.State == entity.StateAwaitingRegion || user.State == entity.StateAwaitingImage {
		b.handleRegionText(ctx, msg, log)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendImage)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User, log logrus.FieldLogger) {
	var err error
	switch msg.Command() {
	case "start":
		_, err = b.users.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "find":
		// "/find 535 425 197" сразу задаёт область
		if args := strings.TrimSpace(msg.CommandArguments()); args != "" {
			b.handleRegionArgs(ctx, msg, args, log)
			return
		}
		_, err = b.users.BeginFind(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgAwaitingRegion)

	case "cancel":
		_, err = b.users.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}

	if err != nil {
		log.WithError(err).WithField("command", msg.Command()).Error("update user state")
	}
}

func (b *Bot) handleRegionText(ctx context.Context, msg *tgbotapi.Message, log logrus.FieldLogger) {
	b.handleRegionArgs(ctx, msg, msg.Text, log)
}

func (b *Bot) handleRegionArgs(ctx context.Context, msg *tgbotapi.Message, text string, log logrus.FieldLogger) {
	region, err := entity.ParseRegionDescriptor(text)
	if err != nil {
		log.WithError(err).Debug("bad region text")
		b.sendMessage(msg.Chat.ID, msgBadRegion)
		return
	}
	if _, err := b.users.SetRegion(ctx, msg.From.ID, msg.Chat.ID, region); err != nil {
		log.WithError(err).Error("save region")
		return
	}
	b.sendMessage(msg.Chat.ID, msgAwaitingImage)
}

// handleImage ищет область на присланном снимке
func (b *Bot) handleImage(ctx context.Context, msg *tgbotapi.Message, user *entity.User, fileID string, log logrus.FieldLogger) {
	region, ok := b.regionFor(msg, user)
	if !ok {
		return
	}
	region.Name = fmt.Sprintf("tg-%d-%d", msg.Chat.ID, msg.MessageID)
	log = log.WithField("region", region.Name)

	// Устанавливаем состояние "обработка"
	if _, err := b.users.SetState(ctx, user.ID, user.ChatID, entity.StateProcessing); err != nil {
		log.WithError(err).Error("update user state")
	}
	// Возвращаем в главное меню при любом исходе
	defer func() {
		if _, err := b.users.Cancel(ctx, user.ID, user.ChatID); err != nil {
			log.WithError(err).Error("reset user state")
		}
	}()

	b.sendMessage(msg.Chat.ID, msgProcessing)

	imageData, err := b.downloadFile(ctx, fileID)
	if err != nil {
		log.WithError(err).Error("download image")
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}
	log.WithField("bytes", len(imageData)).Info("image received")

	out, err := b.regions.FindInImage(ctx, imageData, region)
	if err != nil {
		log.WithError(err).Warn("find region")
		b.sendMessage(msg.Chat.ID, errorMessage(err))
		return
	}

	b.sendMessage(msg.Chat.ID, FormatSummary(region, out.Result))
	if out.Result.Empty() {
		return
	}

	if out.Highlighted != nil {
		photo := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{Name: region.Name + ".png", Bytes: out.Highlighted})
		photo.Caption = "Выбранная область"
		if _, err := b.api.Send(photo); err != nil {
			log.WithError(err).Error("send overlay")
		}
	}

	var coords bytes.Buffer
	if err := storage.WriteCoordinates(&coords, out.Result); err != nil {
		log.WithError(err).Error("format coordinates")
		return
	}
	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{Name: region.Name + ".csv", Bytes: coords.Bytes()})
	if _, err := b.api.Send(doc); err != nil {
		log.WithError(err).Error("send coordinates")
	}
}

// regionFor берёт область из подписи к снимку, иначе из сохранённого состояния.
func (b *Bot) regionFor(msg *tgbotapi.Message, user *entity.User) (entity.RegionDescriptor, bool) {
	if caption := strings.TrimSpace(msg.Caption); caption != "" {
		region, err := entity.ParseRegionDescriptor(caption)
		if err != nil {
			b.sendMessage(msg.Chat.ID, msgBadRegion)
			return entity.RegionDescriptor{}, false
		}
		return region, true
	}
	if user.Region != nil {
		return *user.Region, true
	}
	b.sendMessage(msg.Chat.ID, msgAwaitingRegion)
	return entity.RegionDescriptor{}, false
}

// imageFileID возвращает файл снимка: документ-картинку или фото с максимальным разрешением.
func imageFileID(msg *tgbotapi.Message) (string, bool) {
	if msg.Document != nil {
		if msg.Document.MimeType == "" || strings.HasPrefix(msg.Document.MimeType, "image/") {
			return msg.Document.FileID, true
		}
		return "", false
	}
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID, true
	}
	return "", false
}

// FormatSummary описание результата для пользователя.
func FormatSummary(region entity.RegionDescriptor, result *entity.SelectionResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📍 Область: x=%d, y=%d, r=%d\n", region.CenterX, region.CenterY, region.Radius)

	switch {
	case result.Empty():
		sb.WriteString("❌ Область не найдена.")
		return sb.String()
	case result.State == entity.StateThresholded:
		sb.WriteString("✅ Выбраны пиксели не ниже порога.\n")
	case result.State == entity.StateFallback:
		sb.WriteString("⚠️ Ни одна компонента не прошла критерии, выбрана самая крупная.\n")
	default:
		fmt.Fprintf(&sb, "✅ Компонента %d принята по критерию: %s\n", result.Label, criterionName(result.Criterion))
	}

	fmt.Fprintf(&sb, "Пикселей: %d\nПорог: %d", len(result.Points), result.Threshold)
	if result.Components > 0 {
		fmt.Fprintf(&sb, "\nКомпонент: %d", result.Components)
	}
	if box, ok := result.Bounds(); ok {
		row, col := box.Center()
		fmt.Fprintf(&sb, "\nРамка: %d×%d, центр в вырезке: строка %d, столбец %d", box.Width(), box.Height(), row, col)
	}
	return sb.String()
}

func criterionName(c entity.Criterion) string {
	switch c {
	case entity.CriterionArea:
		return "площадь"
	case entity.CriterionSkewness:
		return "асимметрия"
	case entity.CriterionIntensity:
		return "яркость"
	default:
		return "нет"
	}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, entity.ErrOutOfBounds), errors.Is(err, entity.ErrInvalidArgument):
		return msgOutOfBounds
	case errors.Is(err, entity.ErrDegenerateImage):
		return msgDegenerate
	default:
		return msgProcessingError
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.WithError(err).WithField("chat", chatID).Error("send message")
	}
}
