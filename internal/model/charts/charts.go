package charts

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"

	"max.ks1230/fintrack/internal/model/stats"
)

const (
	chartWidth  = 800
	chartHeight = 400
)

// WeekChart renders the trailing 7-day income/expense series as a PNG.
func WeekChart(week stats.WeekReport) ([]byte, error) {
	if len(week.Days) == 0 {
		return nil, nil
	}

	xValues := make([]float64, len(week.Days))
	expenses := make([]float64, len(week.Days))
	income := make([]float64, len(week.Days))
	ticks := make([]chart.Tick, len(week.Days))
	for i, day := range week.Days {
		xValues[i] = float64(i)
		expenses[i] = day.Expenses
		income[i] = day.Income
		ticks[i] = chart.Tick{Value: float64(i), Label: day.Label}
	}

	graph := chart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: week.MaxAmount},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Expenses",
				XValues: xValues,
				YValues: expenses,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2,
				},
			},
			chart.ContinuousSeries{
				Name:    "Income",
				XValues: xValues,
				YValues: income,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "render week chart")
	}
	return buf.Bytes(), nil
}

// BreakdownPie renders the month-to-date top expense categories as a PNG
// pie chart. Returns nil bytes when there is nothing to draw.
func BreakdownPie(shares []stats.CategoryShare) ([]byte, error) {
	if len(shares) == 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, len(shares))
	for _, share := range shares {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %.2f (%.1f%%)", share.Name, share.Amount, share.Percentage),
			Value: share.Amount,
		})
	}

	pie := chart.PieChart{
		Width:  chartHeight,
		Height: chartHeight,
		Values: values,
		Background: chart.Style{
			FillColor: chart.ColorWhite,
		},
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "render breakdown chart")
	}
	return buf.Bytes(), nil
}
