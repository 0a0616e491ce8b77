// Package tracker implements the write side: validate input, enforce the
// kind/category agreement the store does not, and hand records to the
// ownership guard.
package tracker

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"

	"max.ks1230/fintrack/internal/entity/budget"
	"max.ks1230/fintrack/internal/entity/category"
	"max.ks1230/fintrack/internal/entity/transaction"
	"max.ks1230/fintrack/internal/model/customerr"
)

type storage interface {
	SaveCategory(ctx context.Context, owner int64, rec category.Record) error
	Categories(ctx context.Context, owner int64) ([]category.Record, error)
	Category(ctx context.Context, owner int64, id string) (category.Record, error)
	DeleteCategory(ctx context.Context, owner int64, id string) error

	SaveTransaction(ctx context.Context, owner int64, rec transaction.Record) error
	Transactions(ctx context.Context, owner int64, f transaction.Filter) ([]transaction.Record, error)
	DeleteTransaction(ctx context.Context, owner int64, id string) error

	SaveBudget(ctx context.Context, owner int64, rec budget.Record) error
	Budgets(ctx context.Context, owner int64) ([]budget.Record, error)
	DeleteBudget(ctx context.Context, owner int64, id string) error
}

type Service struct {
	storage storage
}

func NewService(storage storage) *Service {
	return &Service{storage: storage}
}

type NewCategory struct {
	Name  string        `json:"name"`
	Kind  category.Kind `json:"kind"`
	Color string        `json:"color"`
	Icon  string        `json:"icon"`
}

type NewTransaction struct {
	CategoryID  string        `json:"category_id"`
	Amount      float64       `json:"amount"`
	Description string        `json:"description"`
	Date        time.Time     `json:"date"`
	Kind        category.Kind `json:"kind,omitempty"`
}

type NewBudget struct {
	CategoryID string    `json:"category_id"`
	Amount     float64   `json:"amount"`
	Month      time.Time `json:"month"`
}

func (s *Service) AddCategory(ctx context.Context, owner int64, in NewCategory) (category.Record, error) {
	if in.Name == "" {
		return category.Record{}, &customerr.ValidationError{Err: "category name must not be empty"}
	}
	if !in.Kind.Valid() {
		return category.Record{}, &customerr.ValidationError{Err: "category kind must be expense or income"}
	}

	rec := category.Record{
		Name:      in.Name,
		Kind:      in.Kind,
		Color:     in.Color,
		Icon:      in.Icon,
		CreatedAt: time.Now(),
	}
	rec.GenerateID()
	if err := s.storage.SaveCategory(ctx, owner, rec); err != nil {
		return category.Record{}, errors.Wrap(err, "add category")
	}
	rec.UserID = owner
	return rec, nil
}

func (s *Service) Categories(ctx context.Context, owner int64) ([]category.Record, error) {
	return s.storage.Categories(ctx, owner)
}

func (s *Service) DeleteCategory(ctx context.Context, owner int64, id string) error {
	return s.storage.DeleteCategory(ctx, owner, id)
}

func (s *Service) AddTransaction(ctx context.Context, owner int64, in NewTransaction) (transaction.Record, error) {
	if err := validAmount(in.Amount); err != nil {
		return transaction.Record{}, err
	}
	if in.Description == "" {
		return transaction.Record{}, &customerr.ValidationError{Err: "description must not be empty"}
	}
	if in.Date.IsZero() {
		return transaction.Record{}, &customerr.ValidationError{Err: "date must be set"}
	}

	cat, err := s.storage.Category(ctx, owner, in.CategoryID)
	if err != nil {
		return transaction.Record{}, errors.Wrap(err, "add transaction")
	}
	// The store never checks this invariant; the writing path must.
	if in.Kind != "" && in.Kind != cat.Kind {
		return transaction.Record{}, &customerr.ValidationError{Err: "transaction kind does not match its category"}
	}

	rec := transaction.Record{
		CategoryID:  cat.ID,
		Amount:      in.Amount,
		Kind:        cat.Kind,
		Description: in.Description,
		Date:        transaction.Day(in.Date),
		CreatedAt:   time.Now(),
	}
	rec.GenerateID()
	if err = s.storage.SaveTransaction(ctx, owner, rec); err != nil {
		return transaction.Record{}, errors.Wrap(err, "add transaction")
	}
	rec.UserID = owner
	return rec, nil
}

func (s *Service) Transactions(ctx context.Context, owner int64, f transaction.Filter) ([]transaction.Record, error) {
	return s.storage.Transactions(ctx, owner, f)
}

func (s *Service) DeleteTransaction(ctx context.Context, owner int64, id string) error {
	return s.storage.DeleteTransaction(ctx, owner, id)
}

func (s *Service) AddBudget(ctx context.Context, owner int64, in NewBudget) (budget.Record, error) {
	if err := validAmount(in.Amount); err != nil {
		return budget.Record{}, err
	}
	if in.Month.IsZero() {
		return budget.Record{}, &customerr.ValidationError{Err: "month must be set"}
	}

	cat, err := s.storage.Category(ctx, owner, in.CategoryID)
	if err != nil {
		return budget.Record{}, errors.Wrap(err, "add budget")
	}
	if cat.Kind != category.Expense {
		return budget.Record{}, &customerr.ValidationError{Err: "budgets can only be set on expense categories"}
	}

	rec := budget.Record{
		CategoryID: cat.ID,
		Amount:     in.Amount,
		Month:      budget.FirstOfMonth(in.Month),
		CreatedAt:  time.Now(),
	}
	rec.GenerateID()
	if err = s.storage.SaveBudget(ctx, owner, rec); err != nil {
		if customerr.IsDuplicate(err) {
			return budget.Record{}, err
		}
		return budget.Record{}, errors.Wrap(err, "add budget")
	}
	rec.UserID = owner
	return rec, nil
}

func (s *Service) Budgets(ctx context.Context, owner int64) ([]budget.Record, error) {
	return s.storage.Budgets(ctx, owner)
}

func (s *Service) DeleteBudget(ctx context.Context, owner int64, id string) error {
	return s.storage.DeleteBudget(ctx, owner, id)
}

// validAmount accepts strictly positive amounts with at most two decimal
// places.
func validAmount(amount float64) error {
	if amount <= 0 {
		return &customerr.ValidationError{Err: "amount must be greater than zero"}
	}
	if math.Round(amount*100)/100 != amount {
		return &customerr.ValidationError{Err: "amount must have at most two decimal places"}
	}
	return nil
}
