package stats

import (
	"time"

	"max.ks1230/fintrack/internal/entity/category"
	"max.ks1230/fintrack/internal/entity/transaction"
)

const (
	weekDays = 7

	// barScaleFloor keeps bar widths sane when all values are zero.
	barScaleFloor = 100
)

const dayLabelLayout = "02.01"

// DayPoint is one day of the trailing activity window.
type DayPoint struct {
	Date     time.Time `json:"date"`
	Label    string    `json:"label"`
	Expenses float64   `json:"expenses"`
	Income   float64   `json:"income"`
}

// WeekReport is the trailing 7-day income/expense series, oldest first,
// ending on the reference day. MaxAmount scales bar widths and never drops
// below barScaleFloor.
type WeekReport struct {
	Days      []DayPoint `json:"days"`
	MaxAmount float64    `json:"max_amount"`
}

func WeekSeries(txs []transaction.Record, today time.Time) WeekReport {
	days := make([]DayPoint, 0, weekDays)
	maxAmount := float64(barScaleFloor)

	for offset := weekDays - 1; offset >= 0; offset-- {
		day := transaction.Day(today.AddDate(0, 0, -offset))
		point := DayPoint{
			Date:  day,
			Label: day.Format(dayLabelLayout),
		}
		for _, tx := range txs {
			if !sameDay(tx.Date, day) {
				continue
			}
			switch tx.Kind {
			case category.Expense:
				point.Expenses += tx.Amount
			case category.Income:
				point.Income += tx.Amount
			}
		}
		if point.Expenses > maxAmount {
			maxAmount = point.Expenses
		}
		if point.Income > maxAmount {
			maxAmount = point.Income
		}
		days = append(days, point)
	}

	return WeekReport{Days: days, MaxAmount: maxAmount}
}
