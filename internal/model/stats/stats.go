// Package stats derives dashboard figures from a user's records already
// loaded in memory. All functions are pure and total: empty input yields
// zero totals and empty lists, never an error.
package stats

import (
	"time"

	"github.com/jinzhu/now"
	"max.ks1230/fintrack/internal/entity/category"
	"max.ks1230/fintrack/internal/entity/transaction"
)

func TotalIncome(txs []transaction.Record) float64 {
	return sumByKind(txs, category.Income)
}

func TotalExpenses(txs []transaction.Record) float64 {
	return sumByKind(txs, category.Expense)
}

// Balance may be negative; no special handling of the sign.
func Balance(txs []transaction.Record) float64 {
	return TotalIncome(txs) - TotalExpenses(txs)
}

func sumByKind(txs []transaction.Record, kind category.Kind) float64 {
	total := 0.0
	for _, tx := range txs {
		if tx.Kind == kind {
			total += tx.Amount
		}
	}
	return total
}

// monthBounds returns the inclusive [start, end] range of ref's calendar
// month.
func monthBounds(ref time.Time) (time.Time, time.Time) {
	n := now.New(ref)
	return n.BeginningOfMonth(), n.EndOfMonth()
}

func inRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
