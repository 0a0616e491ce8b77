// Package guard wraps the storage with the ownership contract: every insert
// gets the caller's identity attached, an insert carrying a different owner
// is rejected outright, and every read or delete is filtered by the caller.
// Nothing above this package talks to the storage directly.
package guard

import (
	"context"

	"max.ks1230/fintrack/internal/entity/budget"
	"max.ks1230/fintrack/internal/entity/category"
	"max.ks1230/fintrack/internal/entity/transaction"
	"max.ks1230/fintrack/internal/model/customerr"
)

type storage interface {
	SaveCategory(ctx context.Context, rec category.Record) error
	UserCategories(ctx context.Context, userID int64) ([]category.Record, error)
	GetCategory(ctx context.Context, userID int64, id string) (category.Record, error)
	DeleteCategory(ctx context.Context, userID int64, id string) error

	SaveTransaction(ctx context.Context, rec transaction.Record) error
	UserTransactions(ctx context.Context, userID int64, f transaction.Filter) ([]transaction.Record, error)
	DeleteTransaction(ctx context.Context, userID int64, id string) error

	SaveBudget(ctx context.Context, rec budget.Record) error
	UserBudgets(ctx context.Context, userID int64) ([]budget.Record, error)
	DeleteBudget(ctx context.Context, userID int64, id string) error
}

type Guard struct {
	storage storage
}

func New(storage storage) *Guard {
	return &Guard{storage: storage}
}

func (g *Guard) checkOwner(owner, recOwner int64) error {
	if recOwner != 0 && recOwner != owner {
		return &customerr.AccessError{Err: "record owner does not match caller"}
	}
	return nil
}

func (g *Guard) SaveCategory(ctx context.Context, owner int64, rec category.Record) error {
	if err := g.checkOwner(owner, rec.UserID); err != nil {
		return err
	}
	rec.UserID = owner
	return g.storage.SaveCategory(ctx, rec)
}

func (g *Guard) Categories(ctx context.Context, owner int64) ([]category.Record, error) {
	return g.storage.UserCategories(ctx, owner)
}

func (g *Guard) Category(ctx context.Context, owner int64, id string) (category.Record, error) {
	return g.storage.GetCategory(ctx, owner, id)
}

func (g *Guard) DeleteCategory(ctx context.Context, owner int64, id string) error {
	return g.storage.DeleteCategory(ctx, owner, id)
}

func (g *Guard) SaveTransaction(ctx context.Context, owner int64, rec transaction.Record) error {
	if err := g.checkOwner(owner, rec.UserID); err != nil {
		return err
	}
	rec.UserID = owner
	return g.storage.SaveTransaction(ctx, rec)
}

func (g *Guard) Transactions(ctx context.Context, owner int64, f transaction.Filter) ([]transaction.Record, error) {
	return g.storage.UserTransactions(ctx, owner, f)
}

func (g *Guard) DeleteTransaction(ctx context.Context, owner int64, id string) error {
	return g.storage.DeleteTransaction(ctx, owner, id)
}

func (g *Guard) SaveBudget(ctx context.Context, owner int64, rec budget.Record) error {
	if err := g.checkOwner(owner, rec.UserID); err != nil {
		return err
	}
	rec.UserID = owner
	return g.storage.SaveBudget(ctx, rec)
}

func (g *Guard) Budgets(ctx context.Context, owner int64) ([]budget.Record, error) {
	return g.storage.UserBudgets(ctx, owner)
}

func (g *Guard) DeleteBudget(ctx context.Context, owner int64, id string) error {
	return g.storage.DeleteBudget(ctx, owner, id)
}
