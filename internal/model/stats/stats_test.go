package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"max.ks1230/fintrack/internal/entity/category"
	"max.ks1230/fintrack/internal/entity/transaction"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(kind category.Kind, amount float64, day time.Time, categoryID string) transaction.Record {
	return transaction.Record{
		ID:         "tx-" + categoryID,
		CategoryID: categoryID,
		Amount:     amount,
		Kind:       kind,
		Date:       day,
	}
}

func Test_OnEmptyInput_ShouldReturnZeroTotals(t *testing.T) {
	assert.Equal(t, 0.0, TotalIncome(nil))
	assert.Equal(t, 0.0, TotalExpenses(nil))
	assert.Equal(t, 0.0, Balance(nil))
}

func Test_OnMixedTransactions_BalanceShouldBeIncomeMinusExpenses(t *testing.T) {
	txs := []transaction.Record{
		tx(category.Expense, 50, date(2024, time.January, 5), "a"),
		tx(category.Income, 200, date(2024, time.January, 10), "b"),
		tx(category.Expense, 30, date(2024, time.January, 5), "a"),
	}

	assert.Equal(t, 200.0, TotalIncome(txs))
	assert.Equal(t, 80.0, TotalExpenses(txs))
	assert.Equal(t, 120.0, Balance(txs))
	assert.Equal(t, TotalIncome(txs)-TotalExpenses(txs), Balance(txs))
}

func Test_OnExpensesOnly_BalanceShouldBeNegative(t *testing.T) {
	txs := []transaction.Record{
		tx(category.Expense, 75.50, date(2024, time.March, 1), "a"),
	}

	assert.Equal(t, -75.50, Balance(txs))
}
