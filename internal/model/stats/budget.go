package stats

import (
	"max.ks1230/fintrack/internal/entity/budget"
	"max.ks1230/fintrack/internal/entity/category"
	"max.ks1230/fintrack/internal/entity/transaction"
)

// BudgetUsage compares a budget's limit against what was actually spent in
// its category during its month. Percentage is the raw ratio; the display
// value is clamped at 100 while overage detection uses the unclamped spend.
type BudgetUsage struct {
	Spent             float64 `json:"spent"`
	Percentage        float64 `json:"percentage"`
	DisplayPercentage float64 `json:"display_percentage"`
	Over              bool    `json:"over"`
	Overage           float64 `json:"overage"`
}

func Usage(b budget.Record, txs []transaction.Record) BudgetUsage {
	start, end := monthBounds(b.Month)

	spent := 0.0
	for _, tx := range txs {
		if tx.Kind != category.Expense || tx.CategoryID != b.CategoryID {
			continue
		}
		if !inRange(tx.Date, start, end) {
			continue
		}
		spent += tx.Amount
	}

	usage := BudgetUsage{Spent: spent}
	if b.Amount > 0 {
		usage.Percentage = spent / b.Amount * 100
	}
	usage.DisplayPercentage = usage.Percentage
	if usage.DisplayPercentage > 100 {
		usage.DisplayPercentage = 100
	}
	if spent > b.Amount {
		usage.Over = true
		usage.Overage = spent - b.Amount
	}
	return usage
}
