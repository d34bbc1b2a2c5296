package analytics_test

import (
	"testing"
	"time"

	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/analytics"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func item(id int64, category string, stock int64, raw, selling string) entity.Item {
	return entity.Item{
		ID:            id,
		Name:          "Item",
		Brand:         "Brand",
		Category:      category,
		Stock:         stock,
		RawPrice:      dec(raw),
		SellingPrice:  dec(selling),
		MinStockAlert: entity.DefaultMinStockAlert,
	}
}

func TestComputeTotals(t *testing.T) {
	t.Parallel()

	items := []entity.Item{
		item(1, "Disposable", 10, "4.00", "9.00"),
		item(2, "Pods", 0, "2.00", "5.00"),
		item(3, "Coils", 3, "1.00", "2.50"),
	}

	totals := analytics.ComputeTotals(items)

	require.EqualValues(t, 13, totals.TotalStock)
	require.True(t, totals.InventoryValue.Equal(dec("97.5")), "got %s", totals.InventoryValue)
	require.True(t, totals.CapitalInvested.Equal(dec("43")), "got %s", totals.CapitalInvested)
	require.Equal(t, 1, totals.OutOfStockCount)
	// Stock equal to the threshold counts as low, so both the 10-stock
	// and the 3-stock items qualify.
	require.Equal(t, 2, totals.LowStockCount)
}

func TestComputeTotals_Empty(t *testing.T) {
	t.Parallel()

	totals := analytics.ComputeTotals(nil)
	require.Zero(t, totals.TotalStock)
	require.True(t, totals.InventoryValue.IsZero())
	require.True(t, totals.CapitalInvested.IsZero())
}

func TestCategoryBreakdown(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc     string
		items    []entity.Item
		expected []analytics.Segment
	}{
		{
			desc: "SortedDescendingByStock",
			items: []entity.Item{
				item(1, "B", 2, "1.00", "2.00"),
				item(2, "A", 5, "1.00", "2.00"),
				item(3, "A", 3, "1.00", "2.00"),
			},
			expected: []analytics.Segment{
				{Label: "A", Value: 8, Color: "#8b5cf6"},
				{Label: "B", Value: 2, Color: "#06b6d4"},
			},
		},
		{
			desc: "EmptyCategoryGroupsAsUncategorized",
			items: []entity.Item{
				item(1, "", 4, "1.00", "2.00"),
				item(2, "", 1, "1.00", "2.00"),
			},
			expected: []analytics.Segment{
				{Label: analytics.UncategorizedLabel, Value: 5, Color: "#8b5cf6"},
			},
		},
		{
			desc: "TiesKeepFirstAppearanceOrder",
			items: []entity.Item{
				item(1, "Pods", 3, "1.00", "2.00"),
				item(2, "Coils", 3, "1.00", "2.00"),
			},
			expected: []analytics.Segment{
				{Label: "Pods", Value: 3, Color: "#8b5cf6"},
				{Label: "Coils", Value: 3, Color: "#06b6d4"},
			},
		},
		{
			desc:     "NoItems",
			items:    nil,
			expected: []analytics.Segment{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, analytics.CategoryBreakdown(tc.items))
		})
	}
}

func TestCategoryBreakdown_PaletteCycles(t *testing.T) {
	t.Parallel()

	items := make([]entity.Item, 0, 9)
	for i := range 9 {
		// Descending stock keeps segment rank equal to insertion order.
		items = append(items, item(int64(i+1), string(rune('A'+i)), int64(20-i), "1.00", "2.00"))
	}

	segments := analytics.CategoryBreakdown(items)
	require.Len(t, segments, 9)
	require.Equal(t, segments[0].Color, segments[8].Color, "ninth segment wraps to the first color")
}

func TestTopByValue(t *testing.T) {
	t.Parallel()

	items := []entity.Item{
		item(1, "A", 1, "1.00", "5.00"),  // value 5
		item(2, "A", 10, "1.00", "9.00"), // value 90
		item(3, "A", 4, "1.00", "6.00"),  // value 24
	}

	ranked := analytics.TopByValue(items)
	require.Len(t, ranked, 3)
	require.EqualValues(t, 2, ranked[0].Item.ID)
	require.True(t, ranked[0].Value.Equal(dec("90")))
	require.EqualValues(t, 3, ranked[1].Item.ID)
	require.EqualValues(t, 1, ranked[2].Item.ID)
}

func TestTopByValue_LimitsToSix(t *testing.T) {
	t.Parallel()

	items := make([]entity.Item, 0, 10)
	for i := range 10 {
		items = append(items, item(int64(i+1), "A", int64(i+1), "1.00", "2.00"))
	}

	ranked := analytics.TopByValue(items)
	require.Len(t, ranked, 6)
	require.EqualValues(t, 10, ranked[0].Item.ID)
}

func TestTopByProfit(t *testing.T) {
	t.Parallel()

	items := []entity.Item{
		item(1, "A", 1, "4.00", "5.00"), // margin 1
		item(2, "A", 1, "1.00", "9.00"), // margin 8
		item(3, "A", 1, "2.00", "6.00"), // margin 4
	}

	ranked := analytics.TopByProfit(items)
	require.Len(t, ranked, 3)
	require.EqualValues(t, 2, ranked[0].Item.ID)
	require.True(t, ranked[0].Value.Equal(dec("8")))
	require.EqualValues(t, 3, ranked[1].Item.ID)
	require.EqualValues(t, 1, ranked[2].Item.ID)
}

func TestMonthlyTrend(t *testing.T) {
	t.Parallel()

	// One item, stock 10 at 20.00: round(10*0.28)=3 units, estimate 60.
	items := []entity.Item{item(1, "A", 10, "5.00", "20.00")}

	points := analytics.MonthlyTrend(items)
	require.Len(t, points, 6)

	expected := []analytics.TrendPoint{
		{Month: "Jan", Sales: 43, Expense: 26, Profit: 17},
		{Month: "Feb", Sales: 49, Expense: 28, Profit: 21},
		{Month: "Mar", Sales: 55, Expense: 34, Profit: 21},
		{Month: "Apr", Sales: 61, Expense: 35, Profit: 26},
		{Month: "May", Sales: 67, Expense: 41, Profit: 26},
		{Month: "Jun", Sales: 73, Expense: 42, Profit: 31},
	}
	require.Equal(t, expected, points)
}

func TestMonthlyTrend_EmptyInventory(t *testing.T) {
	t.Parallel()

	points := analytics.MonthlyTrend(nil)
	require.Len(t, points, 6)
	for _, p := range points {
		require.Zero(t, p.Sales)
		require.Zero(t, p.Expense)
		require.Zero(t, p.Profit)
	}
}

func TestGradientArcs(t *testing.T) {
	t.Parallel()

	t.Run("ProportionalPartition", func(t *testing.T) {
		t.Parallel()

		segments := []analytics.Segment{
			{Label: "A", Value: 8, Color: "#8b5cf6"},
			{Label: "B", Value: 2, Color: "#06b6d4"},
		}

		arcs := analytics.GradientArcs(segments)
		require.Len(t, arcs, 2)
		require.InDelta(t, 0, arcs[0].StartAngle, 1e-9)
		require.InDelta(t, 288, arcs[0].EndAngle, 1e-9)
		require.InDelta(t, 288, arcs[1].StartAngle, 1e-9)
		require.InDelta(t, 360, arcs[1].EndAngle, 1e-9)
	})

	t.Run("EmptyYieldsPlaceholder", func(t *testing.T) {
		t.Parallel()

		arcs := analytics.GradientArcs(nil)
		require.Len(t, arcs, 1)
		require.Equal(t, "#374151", arcs[0].Color)
		require.InDelta(t, 0, arcs[0].StartAngle, 1e-9)
		require.InDelta(t, 360, arcs[0].EndAngle, 1e-9)
	})

	t.Run("ZeroTotalYieldsPlaceholder", func(t *testing.T) {
		t.Parallel()

		arcs := analytics.GradientArcs([]analytics.Segment{{Label: "A", Value: 0}})
		require.Len(t, arcs, 1)
		require.Equal(t, "#374151", arcs[0].Color)
	})

	t.Run("LastArcClosesTheCircle", func(t *testing.T) {
		t.Parallel()

		segments := []analytics.Segment{
			{Label: "A", Value: 1}, {Label: "B", Value: 1}, {Label: "C", Value: 1},
		}
		arcs := analytics.GradientArcs(segments)
		require.Equal(t, 360.0, arcs[len(arcs)-1].EndAngle)
	})
}

func TestPolyline(t *testing.T) {
	t.Parallel()

	t.Run("NormalizesAgainstMax", func(t *testing.T) {
		t.Parallel()

		points := analytics.Polyline([]int64{0, 50, 100}, 320, 140, 12)
		require.Len(t, points, 3)

		// y = 140 - 12 - scaled, inner height 116.
		require.InDelta(t, 12, points[0].X, 1e-9)
		require.InDelta(t, 127, points[0].Y, 1e-9) // zero floors scaled at 1
		require.InDelta(t, 160, points[1].X, 1e-9)
		require.InDelta(t, 70, points[1].Y, 1e-9)
		require.InDelta(t, 308, points[2].X, 1e-9)
		require.InDelta(t, 12, points[2].Y, 1e-9)
	})

	t.Run("AllZeroSeriesStaysVisible", func(t *testing.T) {
		t.Parallel()

		points := analytics.Polyline([]int64{0, 0, 0}, 320, 140, 12)
		for _, p := range points {
			require.InDelta(t, 127, p.Y, 1e-9)
		}
	})

	t.Run("EmptySeries", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, analytics.Polyline(nil, 320, 140, 12))
	})

	t.Run("SinglePointSitsAtLeftPadding", func(t *testing.T) {
		t.Parallel()

		points := analytics.Polyline([]int64{5}, 320, 140, 12)
		require.Len(t, points, 1)
		require.InDelta(t, 12, points[0].X, 1e-9)
	})
}

func TestPathString(t *testing.T) {
	t.Parallel()

	path := analytics.PathString([]analytics.Point{{X: 12, Y: 127}, {X: 160, Y: 70}})
	require.Equal(t, "M 12.0,127.0 L 160.0,70.0", path)

	require.Empty(t, analytics.PathString(nil))
}

func TestSummarizeSales(t *testing.T) {
	t.Parallel()

	base := item(1, "Disposable", 30, "4.00", "10.00")
	other := item(2, "Pods", 30, "2.00", "6.00")

	now := time.Now()
	sales := []entity.SaleRecord{
		entity.NewSaleRecord(base, 2, now),
		entity.NewSaleRecord(other, 1, now.Add(time.Minute)),
		entity.NewSaleRecord(base, 3, now.Add(2*time.Minute)),
	}

	summary := analytics.SummarizeSales(sales)

	require.True(t, summary.TotalRevenue.Equal(dec("56")), "got %s", summary.TotalRevenue)
	require.EqualValues(t, 6, summary.TotalUnits)
	require.Len(t, summary.TopProducts, 2)
	require.EqualValues(t, 1, summary.TopProducts[0].ItemID)
	require.EqualValues(t, 5, summary.TopProducts[0].Units)
	require.True(t, summary.TopProducts[0].Revenue.Equal(dec("50")))
	require.EqualValues(t, 2, summary.TopProducts[1].ItemID)
}

func TestSummarizeSales_Empty(t *testing.T) {
	t.Parallel()

	summary := analytics.SummarizeSales(nil)
	require.True(t, summary.TotalRevenue.IsZero())
	require.Zero(t, summary.TotalUnits)
	require.Empty(t, summary.TopProducts)
}
