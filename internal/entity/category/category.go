package category

import (
	"time"

	"github.com/google/uuid"
)

// Kind tells whether records grouped under a category are spent or earned
// money. Transactions carry the same kind and it must agree with their
// category's.
type Kind string

const (
	Expense Kind = "expense"
	Income  Kind = "income"
)

func (k Kind) Valid() bool {
	return k == Expense || k == Income
}

type Record struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Record) GenerateID() {
	r.ID = uuid.NewString()
}
