package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/fintrack/internal/entity/category"
	"max.ks1230/fintrack/internal/entity/transaction"
)

func Test_OnEmptyWeek_ShouldReturnSevenZeroDaysWithFloorScale(t *testing.T) {
	today := date(2024, time.June, 10)

	report := WeekSeries(nil, today)

	require.Len(t, report.Days, 7)
	assert.Equal(t, 100.0, report.MaxAmount)
	for _, day := range report.Days {
		assert.Equal(t, 0.0, day.Expenses)
		assert.Equal(t, 0.0, day.Income)
	}
}

func Test_OnWeekSeries_ShouldOrderOldestFirstEndingToday(t *testing.T) {
	today := date(2024, time.June, 10)

	report := WeekSeries(nil, today)

	require.Len(t, report.Days, 7)
	assert.Equal(t, date(2024, time.June, 4), report.Days[0].Date)
	assert.Equal(t, today, report.Days[6].Date)
	for i := 1; i < len(report.Days); i++ {
		assert.Equal(t, report.Days[i-1].Date.AddDate(0, 0, 1), report.Days[i].Date)
	}
	assert.Equal(t, "04.06", report.Days[0].Label)
}

func Test_OnDailyActivity_ShouldSumExpensesAndIncomeSeparately(t *testing.T) {
	today := date(2024, time.June, 10)
	txs := []transaction.Record{
		tx(category.Expense, 120, date(2024, time.June, 10), "cat-a"),
		tx(category.Expense, 30, date(2024, time.June, 10), "cat-b"),
		tx(category.Income, 500, date(2024, time.June, 8), "cat-salary"),
		// Outside the window, must not be counted.
		tx(category.Expense, 999, date(2024, time.June, 3), "cat-a"),
	}

	report := WeekSeries(txs, today)

	require.Len(t, report.Days, 7)
	assert.Equal(t, 150.0, report.Days[6].Expenses)
	assert.Equal(t, 0.0, report.Days[6].Income)
	assert.Equal(t, 500.0, report.Days[4].Income)
	assert.Equal(t, 0.0, report.Days[0].Expenses)
	assert.Equal(t, 500.0, report.MaxAmount)
}

func Test_OnSmallAmounts_ScaleShouldNotDropBelowFloor(t *testing.T) {
	today := date(2024, time.June, 10)
	txs := []transaction.Record{
		tx(category.Expense, 12.50, today, "cat-a"),
	}

	report := WeekSeries(txs, today)

	assert.Equal(t, 100.0, report.MaxAmount)
}
