package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/fintrack/internal/entity/category"
	"max.ks1230/fintrack/internal/entity/transaction"
)

func expenseCategory(id, name string) category.Record {
	return category.Record{ID: id, Name: name, Kind: category.Expense}
}

func Test_OnJanuaryScenario_ShouldSumCategoryAndFullShare(t *testing.T) {
	txs := []transaction.Record{
		tx(category.Expense, 50, date(2024, time.January, 5), "cat-a"),
		tx(category.Income, 200, date(2024, time.January, 10), "cat-salary"),
		tx(category.Expense, 30, date(2024, time.January, 5), "cat-a"),
	}
	cats := []category.Record{
		expenseCategory("cat-a", "Groceries"),
		{ID: "cat-salary", Name: "Salary", Kind: category.Income},
	}

	shares := MonthBreakdown(txs, cats, date(2024, time.January, 15))

	require.Len(t, shares, 1)
	assert.Equal(t, "cat-a", shares[0].CategoryID)
	assert.Equal(t, 80.0, shares[0].Amount)
	assert.Equal(t, 100.0, shares[0].Percentage)
}

func Test_OnNoExpensesInMonth_ShouldReturnEmptyBreakdown(t *testing.T) {
	txs := []transaction.Record{
		tx(category.Income, 200, date(2024, time.January, 10), "cat-salary"),
		tx(category.Expense, 30, date(2023, time.December, 31), "cat-a"),
	}
	cats := []category.Record{expenseCategory("cat-a", "Groceries")}

	shares := MonthBreakdown(txs, cats, date(2024, time.January, 15))

	assert.Empty(t, shares)
}

func Test_OnManyCategories_ShouldKeepTopFiveSortedDescending(t *testing.T) {
	var txs []transaction.Record
	var cats []category.Record
	for i := 1; i <= 8; i++ {
		id := fmt.Sprintf("cat-%d", i)
		cats = append(cats, expenseCategory(id, fmt.Sprintf("Category %d", i)))
		txs = append(txs, tx(category.Expense, float64(i*10), date(2024, time.May, i), id))
	}

	shares := MonthBreakdown(txs, cats, date(2024, time.May, 20))

	require.Len(t, shares, 5)
	for i := 1; i < len(shares); i++ {
		assert.Greater(t, shares[i-1].Amount, shares[i].Amount)
	}
	assert.Equal(t, "cat-8", shares[0].CategoryID)
	assert.Equal(t, 80.0, shares[0].Amount)

	totalShare := 0.0
	for _, s := range shares {
		assert.Greater(t, s.Amount, 0.0)
		totalShare += s.Percentage
	}
	// Top 5 of 8 categories cover less than the whole month.
	assert.Less(t, totalShare, 100.0)
}

func Test_OnTransactionsOutsideMonth_ShouldIgnoreThem(t *testing.T) {
	txs := []transaction.Record{
		tx(category.Expense, 40, date(2024, time.January, 31), "cat-a"),
		tx(category.Expense, 60, date(2024, time.February, 1), "cat-a"),
	}
	cats := []category.Record{expenseCategory("cat-a", "Groceries")}

	january := MonthBreakdown(txs, cats, date(2024, time.January, 10))
	february := MonthBreakdown(txs, cats, date(2024, time.February, 10))

	require.Len(t, january, 1)
	assert.Equal(t, 40.0, january[0].Amount)
	require.Len(t, february, 1)
	assert.Equal(t, 60.0, february[0].Amount)
}
