package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"max.ks1230/fintrack/internal/entity/budget"
	"max.ks1230/fintrack/internal/entity/category"
	"max.ks1230/fintrack/internal/entity/transaction"
)

func januaryExpenses() []transaction.Record {
	return []transaction.Record{
		tx(category.Expense, 50, date(2024, time.January, 5), "cat-a"),
		tx(category.Income, 200, date(2024, time.January, 10), "cat-salary"),
		tx(category.Expense, 30, date(2024, time.January, 5), "cat-a"),
	}
}

func Test_OnSpendBelowLimit_ShouldNotBeOverBudget(t *testing.T) {
	b := budget.Record{
		CategoryID: "cat-a",
		Amount:     100,
		Month:      date(2024, time.January, 1),
	}

	usage := Usage(b, januaryExpenses())

	assert.Equal(t, 80.0, usage.Spent)
	assert.Equal(t, 80.0, usage.Percentage)
	assert.Equal(t, 80.0, usage.DisplayPercentage)
	assert.False(t, usage.Over)
	assert.Equal(t, 0.0, usage.Overage)
}

func Test_OnSpendAboveLimit_ShouldReportOverage(t *testing.T) {
	b := budget.Record{
		CategoryID: "cat-a",
		Amount:     50,
		Month:      date(2024, time.January, 1),
	}

	usage := Usage(b, januaryExpenses())

	assert.Equal(t, 80.0, usage.Spent)
	assert.Equal(t, 160.0, usage.Percentage)
	assert.Equal(t, 100.0, usage.DisplayPercentage)
	assert.True(t, usage.Over)
	assert.Equal(t, 30.0, usage.Overage)
	assert.Equal(t, usage.Spent-b.Amount, usage.Overage)
}

func Test_OnOtherMonthSpend_ShouldNotCountTowardsBudget(t *testing.T) {
	b := budget.Record{
		CategoryID: "cat-a",
		Amount:     100,
		Month:      date(2024, time.February, 1),
	}

	usage := Usage(b, januaryExpenses())

	assert.Equal(t, 0.0, usage.Spent)
	assert.Equal(t, 0.0, usage.Percentage)
	assert.False(t, usage.Over)
}

func Test_OnOtherCategorySpend_ShouldNotCountTowardsBudget(t *testing.T) {
	b := budget.Record{
		CategoryID: "cat-b",
		Amount:     100,
		Month:      date(2024, time.January, 1),
	}

	usage := Usage(b, januaryExpenses())

	assert.Equal(t, 0.0, usage.Spent)
	assert.False(t, usage.Over)
}
