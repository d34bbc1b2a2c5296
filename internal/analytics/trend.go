package analytics

import (
	"math"

	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/entity"
)

const (
	_trendSellThroughRate = 0.28
	_trendBaseMultiplier  = 0.72
	_trendMultiplierStep  = 0.1
	_trendExpenseBase     = 0.56
	_trendExpenseEven     = 0.05
	_trendExpenseOdd      = 0.02
)

// trendMonths are the fixed labels the projection is spread across.
var trendMonths = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

type TrendPoint struct {
	Month   string `json:"month"`
	Sales   int64  `json:"sales"`
	Expense int64  `json:"expense"`
	Profit  int64  `json:"profit"`
}

// MonthlyTrend is a synthetic projection, not a ledger: estimated sales
// assume roughly 28% of current stock sells through, and the estimate is
// spread over six months with a fixed per-index multiplier. Callers must
// present it as an estimate only.
func MonthlyTrend(items []entity.Item) []TrendPoint {
	var estimated float64
	for _, item := range items {
		unitsSold := math.Round(float64(item.Stock) * _trendSellThroughRate)
		estimated += item.SellingPrice.InexactFloat64() * unitsSold
	}

	points := make([]TrendPoint, 0, len(trendMonths))
	for i, month := range trendMonths {
		multiplier := _trendBaseMultiplier + float64(i)*_trendMultiplierStep
		sales := math.Round(estimated * multiplier)

		expenseRate := _trendExpenseBase + _trendExpenseOdd
		if i%2 == 0 {
			expenseRate = _trendExpenseBase + _trendExpenseEven
		}
		expense := math.Round(sales * expenseRate)

		profit := sales - expense
		if profit < 0 {
			profit = 0
		}

		points = append(points, TrendPoint{
			Month:   month,
			Sales:   int64(sales),
			Expense: int64(expense),
			Profit:  int64(profit),
		})
	}
	return points
}
