package guard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/fintrack/internal/entity/budget"
	"max.ks1230/fintrack/internal/entity/category"
	"max.ks1230/fintrack/internal/entity/transaction"
	"max.ks1230/fintrack/internal/model/customerr"
	memstore "max.ks1230/fintrack/internal/model/storage"
)

func Test_OnSaveWithoutOwner_ShouldInjectCaller(t *testing.T) {
	ctx := context.Background()
	s := memstore.NewInMemStorage()
	g := New(s)

	owner, err := s.CreateUser(ctx)
	require.NoError(t, err)

	rec := category.Record{Name: "Groceries", Kind: category.Expense}
	rec.GenerateID()
	require.NoError(t, g.SaveCategory(ctx, owner.ID, rec))

	cats, err := g.Categories(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, owner.ID, cats[0].UserID)
}

func Test_OnSaveWithForeignOwner_ShouldRejectWithAccessError(t *testing.T) {
	ctx := context.Background()
	s := memstore.NewInMemStorage()
	g := New(s)

	owner, err := s.CreateUser(ctx)
	require.NoError(t, err)

	rec := category.Record{UserID: owner.ID + 1, Name: "Groceries", Kind: category.Expense}
	rec.GenerateID()
	err = g.SaveCategory(ctx, owner.ID, rec)

	assert.True(t, customerr.IsAccess(err))

	tx := transaction.Record{UserID: owner.ID + 1, Amount: 10}
	tx.GenerateID()
	assert.True(t, customerr.IsAccess(g.SaveTransaction(ctx, owner.ID, tx)))

	b := budget.Record{UserID: owner.ID + 1, Amount: 10}
	b.GenerateID()
	assert.True(t, customerr.IsAccess(g.SaveBudget(ctx, owner.ID, b)))
}

func Test_OnReadsAndDeletes_ShouldStayScopedToCaller(t *testing.T) {
	ctx := context.Background()
	s := memstore.NewInMemStorage()
	g := New(s)

	owner, err := s.CreateUser(ctx)
	require.NoError(t, err)
	stranger, err := s.CreateUser(ctx)
	require.NoError(t, err)

	rec := category.Record{Name: "Groceries", Kind: category.Expense}
	rec.GenerateID()
	require.NoError(t, g.SaveCategory(ctx, owner.ID, rec))

	_, err = g.Category(ctx, stranger.ID, rec.ID)
	assert.True(t, customerr.IsNotFound(err))

	err = g.DeleteCategory(ctx, stranger.ID, rec.ID)
	assert.True(t, customerr.IsNotFound(err))

	_, err = g.Category(ctx, owner.ID, rec.ID)
	assert.NoError(t, err)
}
