package stats

import (
	"sort"
	"time"

	"max.ks1230/fintrack/internal/entity/category"
	"max.ks1230/fintrack/internal/entity/transaction"
)

const topCategoriesLimit = 5

// CategoryShare is one row of the month-to-date expense breakdown.
type CategoryShare struct {
	CategoryID string  `json:"category_id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// MonthBreakdown sums expense transactions of ref's calendar month per
// expense category, keeps categories with a sum above zero, sorts them
// descending and truncates to the top 5. Percentage is the share of the
// month's total expenses; with a zero total the list is empty, so the
// division never happens on zero.
func MonthBreakdown(txs []transaction.Record, cats []category.Record, ref time.Time) []CategoryShare {
	start, end := monthBounds(ref)

	sums := make(map[string]float64)
	monthTotal := 0.0
	for _, tx := range txs {
		if tx.Kind != category.Expense || !inRange(tx.Date, start, end) {
			continue
		}
		sums[tx.CategoryID] += tx.Amount
		monthTotal += tx.Amount
	}
	if monthTotal <= 0 {
		return nil
	}

	shares := make([]CategoryShare, 0, len(sums))
	for _, cat := range cats {
		if cat.Kind != category.Expense {
			continue
		}
		sum, ok := sums[cat.ID]
		if !ok || sum <= 0 {
			continue
		}
		shares = append(shares, CategoryShare{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Color:      cat.Color,
			Icon:       cat.Icon,
			Amount:     sum,
			Percentage: sum / monthTotal * 100,
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount != shares[j].Amount {
			return shares[i].Amount > shares[j].Amount
		}
		return shares[i].Name < shares[j].Name
	})
	if len(shares) > topCategoriesLimit {
		shares = shares[:topCategoriesLimit]
	}
	return shares
}
