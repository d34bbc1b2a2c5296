// Package analytics derives every dashboard aggregate from the current
// item list and the session sales ledger. All functions are pure and
// recompute from scratch; callers memoize on input when needed.
package analytics

import (
	"sort"

	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/entity"

	"github.com/shopspring/decimal"
)

const (
	// UncategorizedLabel groups items whose category is empty.
	UncategorizedLabel = "Uncategorized"

	_topByValueCount  = 6
	_topByProfitCount = 8
	_topRevenueCount  = 7
)

// palette is assigned to category segments cyclically by rank.
var palette = []string{
	"#8b5cf6", "#06b6d4", "#f59e0b", "#ef4444",
	"#10b981", "#ec4899", "#6366f1", "#84cc16",
}

type Totals struct {
	TotalStock      int64           `json:"totalStock"`
	InventoryValue  decimal.Decimal `json:"inventoryValue"`
	CapitalInvested decimal.Decimal `json:"capitalInvested"`
	OutOfStockCount int             `json:"outOfStockCount"`
	LowStockCount   int             `json:"lowStockCount"`
}

func ComputeTotals(items []entity.Item) Totals {
	totals := Totals{
		InventoryValue:  decimal.Zero,
		CapitalInvested: decimal.Zero,
	}
	for _, item := range items {
		stock := decimal.NewFromInt(item.Stock)
		totals.TotalStock += item.Stock
		totals.InventoryValue = totals.InventoryValue.Add(item.SellingPrice.Mul(stock))
		totals.CapitalInvested = totals.CapitalInvested.Add(item.RawPrice.Mul(stock))

		switch {
		case item.Stock == 0:
			totals.OutOfStockCount++
		case item.Stock <= item.MinStockAlert:
			totals.LowStockCount++
		}
	}
	return totals
}

// Segment is one slice of the category donut chart.
type Segment struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

// CategoryBreakdown groups items by category, summing stock per group.
// Segments come back sorted descending by value, with colors assigned
// from the palette by rank. Ties keep first-appearance order.
func CategoryBreakdown(items []entity.Item) []Segment {
	sums := make(map[string]int64)
	order := make([]string, 0)

	for _, item := range items {
		label := item.Category
		if label == "" {
			label = UncategorizedLabel
		}
		if _, seen := sums[label]; !seen {
			order = append(order, label)
		}
		sums[label] += item.Stock
	}

	segments := make([]Segment, 0, len(order))
	for _, label := range order {
		segments = append(segments, Segment{Label: label, Value: sums[label]})
	}

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Value > segments[j].Value
	})

	for i := range segments {
		segments[i].Color = palette[i%len(palette)]
	}
	return segments
}

// RankedItem pairs an item view with the value it was ranked by.
type RankedItem struct {
	Item  entity.ItemView `json:"item"`
	Value decimal.Decimal `json:"value"`
}

// TopByValue ranks items descending by stock x sellingPrice and keeps
// the top 6.
func TopByValue(items []entity.Item) []RankedItem {
	return rankItems(items, _topByValueCount, func(item entity.Item) decimal.Decimal {
		return item.SellingPrice.Mul(decimal.NewFromInt(item.Stock))
	})
}

// TopByProfit ranks items descending by per-unit profit and keeps the
// top 8.
func TopByProfit(items []entity.Item) []RankedItem {
	return rankItems(items, _topByProfitCount, func(item entity.Item) decimal.Decimal {
		return item.SellingPrice.Sub(item.RawPrice)
	})
}

func rankItems(items []entity.Item, limit int, value func(entity.Item) decimal.Decimal) []RankedItem {
	ranked := make([]RankedItem, 0, len(items))
	for _, item := range items {
		ranked = append(ranked, RankedItem{
			Item:  entity.NewItemView(item),
			Value: value(item),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value.GreaterThan(ranked[j].Value)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ProductRevenue aggregates the ledger for one product.
type ProductRevenue struct {
	ItemID  int64           `json:"itemId"`
	Name    string          `json:"name"`
	Brand   string          `json:"brand"`
	Units   int64           `json:"units"`
	Revenue decimal.Decimal `json:"revenue"`
}

type SalesSummary struct {
	TotalRevenue decimal.Decimal  `json:"totalRevenue"`
	TotalUnits   int64            `json:"totalUnits"`
	TopProducts  []ProductRevenue `json:"topProducts"`
}

// SummarizeSales folds the session sales ledger into total revenue,
// total units and the top 7 products by revenue.
func SummarizeSales(sales []entity.SaleRecord) SalesSummary {
	summary := SalesSummary{
		TotalRevenue: decimal.Zero,
		TopProducts:  []ProductRevenue{},
	}

	byItem := make(map[int64]*ProductRevenue)
	order := make([]int64, 0)

	for _, sale := range sales {
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.TotalAmount)
		summary.TotalUnits += sale.Quantity

		agg, ok := byItem[sale.ItemID]
		if !ok {
			agg = &ProductRevenue{
				ItemID:  sale.ItemID,
				Name:    sale.Name,
				Brand:   sale.Brand,
				Revenue: decimal.Zero,
			}
			byItem[sale.ItemID] = agg
			order = append(order, sale.ItemID)
		}
		agg.Units += sale.Quantity
		agg.Revenue = agg.Revenue.Add(sale.TotalAmount)
	}

	for _, id := range order {
		summary.TopProducts = append(summary.TopProducts, *byItem[id])
	}
	sort.SliceStable(summary.TopProducts, func(i, j int) bool {
		return summary.TopProducts[i].Revenue.GreaterThan(summary.TopProducts[j].Revenue)
	})
	if len(summary.TopProducts) > _topRevenueCount {
		summary.TopProducts = summary.TopProducts[:_topRevenueCount]
	}
	return summary
}
