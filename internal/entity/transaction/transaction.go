package transaction

import (
	"time"

	"github.com/google/uuid"
	"max.ks1230/fintrack/internal/entity/category"
)

type Record struct {
	ID          string        `json:"id"`
	UserID      int64         `json:"user_id"`
	CategoryID  string        `json:"category_id"`
	Amount      float64       `json:"amount"`
	Kind        category.Kind `json:"kind"`
	Description string        `json:"description"`
	Date        time.Time     `json:"date"`
	CreatedAt   time.Time     `json:"created_at"`
}

func (r *Record) GenerateID() {
	r.ID = uuid.NewString()
}

// Filter narrows a user's transaction listing. Zero values mean "no bound".
type Filter struct {
	From  *time.Time
	To    *time.Time
	Limit uint64
}

// Day truncates t to its calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
