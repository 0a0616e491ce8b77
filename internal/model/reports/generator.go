// Package reports assembles the per-user dashboard: the three collections
// are fetched concurrently and every derived figure is computed in memory by
// the stats package, never by re-querying the store.
package reports

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"max.ks1230/fintrack/internal/entity/budget"
	"max.ks1230/fintrack/internal/entity/category"
	"max.ks1230/fintrack/internal/entity/transaction"
	"max.ks1230/fintrack/internal/logger"
	"max.ks1230/fintrack/internal/model/stats"
)

type storage interface {
	Categories(ctx context.Context, owner int64) ([]category.Record, error)
	Transactions(ctx context.Context, owner int64, f transaction.Filter) ([]transaction.Record, error)
	Budgets(ctx context.Context, owner int64) ([]budget.Record, error)
}

type config interface {
	TransactionsLimit() uint64
}

// BudgetStatus pairs a budget with its month-to-date usage.
type BudgetStatus struct {
	Budget       budget.Record     `json:"budget"`
	CategoryName string            `json:"category_name"`
	Usage        stats.BudgetUsage `json:"usage"`
}

type Dashboard struct {
	UserID        int64                 `json:"user_id"`
	GeneratedAt   time.Time             `json:"generated_at"`
	Balance       float64               `json:"balance"`
	TotalIncome   float64               `json:"total_income"`
	TotalExpenses float64               `json:"total_expenses"`
	Breakdown     []stats.CategoryShare `json:"breakdown"`
	Week          stats.WeekReport      `json:"week"`
	Budgets       []BudgetStatus        `json:"budgets"`
}

type Generator struct {
	storage  storage
	pageSize uint64
}

func NewGenerator(config config, storage storage) *Generator {
	return &Generator{
		storage:  storage,
		pageSize: config.TransactionsLimit(),
	}
}

func (g *Generator) Generate(ctx context.Context, userID int64, ref time.Time) (*Dashboard, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "generateDashboard")
	defer span.Finish()

	logger.Info("GenerateDashboard - start", zap.Int64("userID", userID))
	defer logger.Info("GenerateDashboard - end")

	var (
		txs  []transaction.Record
		cats []category.Record
		buds []budget.Record
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		txs, err = g.storage.Transactions(groupCtx, userID, transaction.Filter{Limit: g.pageSize})
		return err
	})
	group.Go(func() (err error) {
		cats, err = g.storage.Categories(groupCtx, userID)
		return err
	})
	group.Go(func() (err error) {
		buds, err = g.storage.Budgets(groupCtx, userID)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "generate dashboard")
	}

	names := make(map[string]string, len(cats))
	for _, cat := range cats {
		names[cat.ID] = cat.Name
	}

	d := &Dashboard{
		UserID:        userID,
		GeneratedAt:   time.Now(),
		Balance:       stats.Balance(txs),
		TotalIncome:   stats.TotalIncome(txs),
		TotalExpenses: stats.TotalExpenses(txs),
		Breakdown:     stats.MonthBreakdown(txs, cats, ref),
		Week:          stats.WeekSeries(txs, ref),
		Budgets:       make([]BudgetStatus, 0, len(buds)),
	}
	for _, b := range buds {
		d.Budgets = append(d.Budgets, BudgetStatus{
			Budget:       b,
			CategoryName: names[b.CategoryID],
			Usage:        stats.Usage(b, txs),
		})
	}
	return d, nil
}
