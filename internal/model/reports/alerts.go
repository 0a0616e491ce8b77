package reports

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/fintrack/internal/entity/user"
	"max.ks1230/fintrack/internal/logger"
)

type alertSender interface {
	SendMessage(text string, chatID int64) error
}

type userStorage interface {
	GetUserByID(ctx context.Context, id int64) (user.Record, error)
}

// Alerter pushes a Telegram message when a freshly generated dashboard shows
// a budget over its limit. Users without a linked chat are skipped.
type Alerter struct {
	storage userStorage
	sender  alertSender
}

func NewAlerter(storage userStorage, sender alertSender) *Alerter {
	return &Alerter{storage: storage, sender: sender}
}

func (a *Alerter) NotifyOverspend(ctx context.Context, d *Dashboard) error {
	over := make([]BudgetStatus, 0)
	for _, b := range d.Budgets {
		if b.Usage.Over {
			over = append(over, b)
		}
	}
	if len(over) == 0 {
		return nil
	}

	u, err := a.storage.GetUserByID(ctx, d.UserID)
	if err != nil {
		return errors.Wrap(err, "notify overspend")
	}
	if !u.HasTelegram() {
		return nil
	}

	logger.Info("sending overspend alert",
		zap.Int64("userID", d.UserID),
		zap.Int("budgets", len(over)))
	return errors.Wrap(a.sender.SendMessage(formatAlert(over), u.TelegramChatID), "notify overspend")
}

func formatAlert(over []BudgetStatus) string {
	lines := make([]string, 0, len(over)+1)
	lines = append(lines, "You are over budget 💸")
	for _, b := range over {
		lines = append(lines, fmt.Sprintf("%s: spent %.2f of %.2f (%.2f over)",
			b.CategoryName, b.Usage.Spent, b.Budget.Amount, b.Usage.Overage))
	}
	return strings.Join(lines, "\n")
}
