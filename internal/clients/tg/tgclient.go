// Package tg is the outbound-only Telegram client used for overspend
// alerts.
package tg

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

type tokenGetter interface {
	Token() string
}

type Client struct {
	client *tgbotapi.BotAPI
}

func New(tokenGetter tokenGetter) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Client{client}, nil
}

func (c *Client) SendMessage(text string, chatID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}
