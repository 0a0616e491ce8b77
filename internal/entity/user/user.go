package user

import (
	"time"
)

type Record struct {
	ID        int64     `json:"id"`
	APIToken  string    `json:"api_token,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// TelegramChatID is 0 until the user links a chat for overspend alerts.
	TelegramChatID int64 `json:"telegram_chat_id,omitempty"`
}

func (r *Record) HasTelegram() bool {
	return r.TelegramChatID != 0
}
