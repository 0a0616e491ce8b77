package budget

import (
	"time"

	"github.com/google/uuid"
)

// Record is a monthly spending ceiling for one expense category. At most one
// budget may exist per (user, category, month).
type Record struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"user_id"`
	CategoryID string    `json:"category_id"`
	Amount     float64   `json:"amount"`
	Month      time.Time `json:"month"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r *Record) GenerateID() {
	r.ID = uuid.NewString()
}

// FirstOfMonth normalizes t to midnight on the first day of its month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
