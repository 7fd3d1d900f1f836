package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu       UserState = "main_menu"       // В главном меню
	StateAwaitingRegion UserState = "awaiting_region" // Ожидание координат "cx cy radius"
	StateAwaitingImage  UserState = "awaiting_image"  // Координаты получены, ждём снимок
	StateProcessing     UserState = "processing"      // Поиск области
)

// User представляет пользователя бота
type User struct {
	ID     int64     // Telegram User ID
	ChatID int64     // Telegram Chat ID
	State  UserState // Текущее состояние пользователя
	Region *RegionDescriptor
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
	if state == StateMainMenu {
		u.Region = nil
	}
}

// AwaitImage запоминает координаты области и ждёт снимок.
func (u *User) AwaitImage(region RegionDescriptor) {
	u.State = StateAwaitingImage
	u.Region = &region
}
