package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/analytics"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/entity"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/cache"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/logger"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/metric"
)

const (
	_chartWidth   = 320.0
	_chartHeight  = 140.0
	_chartPadding = 12.0
)

type (
	ItemRepository interface {
		Create(ctx context.Context, item entity.Item) (entity.Item, error)
		GetByID(ctx context.Context, id int64) (entity.Item, error)
		Update(ctx context.Context, id int64, item entity.Item) (entity.Item, error)
		Delete(ctx context.Context, id int64) error
		Search(ctx context.Context, query string) ([]entity.Item, error)
		Len(ctx context.Context) int
		Revision() uint64
	}

	// BatchVariant is one name+stock entry of a multi-variant create.
	BatchVariant struct {
		Name  string
		Stock int64
	}

	// Trend wraps the synthetic projection together with ready-to-draw
	// polyline paths. Synthetic is always true: the series is an
	// estimate, not recorded history.
	Trend struct {
		Synthetic  bool                   `json:"synthetic"`
		Points     []analytics.TrendPoint `json:"points"`
		SalesPath  string                 `json:"salesPath"`
		ProfitPath string                 `json:"profitPath"`
	}

	// Dashboard is the full derived-analytics snapshot for one store
	// revision.
	Dashboard struct {
		Totals       analytics.Totals       `json:"totals"`
		Categories   []analytics.Segment    `json:"categories"`
		CategoryArcs []analytics.Arc        `json:"categoryArcs"`
		TopByValue   []analytics.RankedItem `json:"topByValue"`
		TopByProfit  []analytics.RankedItem `json:"topByProfit"`
		Trend        Trend                  `json:"trend"`
		Sales        analytics.SalesSummary `json:"sales"`
	}

	InventoryService struct {
		repo        ItemRepository
		log         logger.Logger
		metrics     metric.Store
		snapshots   cache.Cache[uint64, *Dashboard]
		snapshotTTL time.Duration

		salesMu sync.Mutex
		sales   []entity.SaleRecord
	}
)

func NewInventoryService(
	repo ItemRepository,
	log logger.Logger,
	metrics metric.Store,
	snapshots cache.Cache[uint64, *Dashboard],
	snapshotTTL time.Duration,
) *InventoryService {
	return &InventoryService{
		repo:        repo,
		log:         log,
		metrics:     metrics,
		snapshots:   snapshots,
		snapshotTTL: snapshotTTL,
		sales:       make([]entity.SaleRecord, 0),
	}
}

// ListItems returns every item matching the query, shaped for response.
func (s *InventoryService) ListItems(ctx context.Context, query string) ([]entity.ItemView, error) {
	const op = "service.ListItems"

	items, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	views := make([]entity.ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, entity.NewItemView(item))
	}
	return views, nil
}

func (s *InventoryService) CreateItem(ctx context.Context, patch entity.ItemPatch) (entity.ItemView, error) {
	const op = "service.CreateItem"
	log := s.log.Ctx(ctx)

	normalized, err := Normalize(patch, nil, true)
	if err != nil {
		s.metrics.Operation("create", "rejected")
		return entity.ItemView{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.Create(ctx, normalized)
	if err != nil {
		s.metrics.Operation("create", "error")
		return entity.ItemView{}, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.Operation("create", "ok")
	log.LogAttrs(ctx, logger.InfoLevel, "item created",
		logger.Int64("id", created.ID),
		logger.String("name", created.Name),
		logger.String("category", created.Category),
	)
	return entity.NewItemView(created), nil
}

// CreateBatch creates one item per variant from a shared base patch: the
// multi-variant add flow for pod and battery lines. Every variant is
// validated before any insert, so a bad variant fails the whole batch.
func (s *InventoryService) CreateBatch(
	ctx context.Context,
	base entity.ItemPatch,
	variants []BatchVariant,
) ([]entity.ItemView, error) {
	const op = "service.CreateBatch"
	log := s.log.Ctx(ctx)

	if len(variants) == 0 {
		return nil, fmt.Errorf("%s: variants: %w", op, entity.ErrMissingField)
	}

	normalized := make([]entity.Item, 0, len(variants))
	for _, variant := range variants {
		patch := base
		name := variant.Name
		stock := variant.Stock
		patch.Name = &name
		patch.Stock = &stock

		item, err := Normalize(patch, nil, true)
		if err != nil {
			s.metrics.Operation("batch_create", "rejected")
			return nil, fmt.Errorf("%s: variant %q: %w", op, variant.Name, err)
		}
		normalized = append(normalized, item)
	}

	views := make([]entity.ItemView, 0, len(normalized))
	for _, item := range normalized {
		created, err := s.repo.Create(ctx, item)
		if err != nil {
			s.metrics.Operation("batch_create", "error")
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		views = append(views, entity.NewItemView(created))
	}

	s.metrics.Operation("batch_create", "ok")
	log.LogAttrs(ctx, logger.InfoLevel, "item batch created",
		logger.Int("count", len(views)),
	)
	return views, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, id int64, patch entity.ItemPatch) (entity.ItemView, error) {
	const op = "service.UpdateItem"

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.metrics.Operation("update", "not_found")
		return entity.ItemView{}, fmt.Errorf("%s: %w", op, err)
	}

	normalized, err := Normalize(patch, &existing, false)
	if err != nil {
		s.metrics.Operation("update", "rejected")
		return entity.ItemView{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.Update(ctx, id, normalized)
	if err != nil {
		s.metrics.Operation("update", "error")
		return entity.ItemView{}, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.Operation("update", "ok")
	return entity.NewItemView(updated), nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id int64) error {
	const op = "service.DeleteItem"
	log := s.log.Ctx(ctx)

	if err := s.repo.Delete(ctx, id); err != nil {
		s.metrics.Operation("delete", "not_found")
		return fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.Operation("delete", "ok")
	log.LogAttrs(ctx, logger.InfoLevel, "item deleted", logger.Int64("id", id))
	return nil
}

// AddStock increments an item's stock by a positive quantity.
func (s *InventoryService) AddStock(ctx context.Context, id, quantity int64) (entity.ItemView, error) {
	const op = "service.AddStock"

	if quantity <= 0 {
		return entity.ItemView{}, fmt.Errorf("%s: %w", op, entity.ErrInvalidQuantity)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.ItemView{}, fmt.Errorf("%s: %w", op, err)
	}

	existing.Stock += quantity
	updated, err := s.repo.Update(ctx, id, existing)
	if err != nil {
		return entity.ItemView{}, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.Operation("add_stock", "ok")
	return entity.NewItemView(updated), nil
}

// RecordSale decrements stock and appends a snapshot to the session
// ledger. A quantity exceeding current stock is rejected before any
// mutation: no stock change, no ledger entry.
func (s *InventoryService) RecordSale(ctx context.Context, id, quantity int64) (entity.SaleRecord, error) {
	const op = "service.RecordSale"
	log := s.log.Ctx(ctx)

	if quantity <= 0 {
		return entity.SaleRecord{}, fmt.Errorf("%s: %w", op, entity.ErrInvalidQuantity)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.SaleRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	if quantity > existing.Stock {
		s.metrics.Operation("sale", "rejected")
		return entity.SaleRecord{}, fmt.Errorf(
			"%s: requested %d of %d: %w", op, quantity, existing.Stock, entity.ErrInsufficientStock,
		)
	}

	sale := entity.NewSaleRecord(existing, quantity, time.Now())

	existing.Stock -= quantity
	if _, err = s.repo.Update(ctx, id, existing); err != nil {
		return entity.SaleRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	s.salesMu.Lock()
	s.sales = append(s.sales, sale)
	s.salesMu.Unlock()

	s.metrics.Operation("sale", "ok")
	log.LogAttrs(ctx, logger.InfoLevel, "sale recorded",
		logger.Int64("item_id", id),
		logger.Int64("quantity", quantity),
		logger.String("total", sale.TotalAmount.String()),
	)
	return sale, nil
}

// ListSales returns a copy of the session sales ledger, oldest first.
func (s *InventoryService) ListSales(_ context.Context) []entity.SaleRecord {
	s.salesMu.Lock()
	defer s.salesMu.Unlock()

	out := make([]entity.SaleRecord, len(s.sales))
	copy(out, s.sales)
	return out
}

// Dashboard computes the derived-analytics snapshot for the current
// store revision. Snapshots are memoized on input: the cache is keyed by
// the revision counter, so any mutation yields a fresh computation.
func (s *InventoryService) Dashboard(ctx context.Context) (*Dashboard, error) {
	const op = "service.Dashboard"
	log := s.log.Ctx(ctx)

	revision := s.repo.Revision()
	if snapshot, ok := s.snapshots.Get(revision); ok {
		return snapshot, nil
	}

	start := time.Now()

	items, err := s.repo.Search(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	trendPoints := analytics.MonthlyTrend(items)
	salesSeries := make([]int64, 0, len(trendPoints))
	profitSeries := make([]int64, 0, len(trendPoints))
	for _, p := range trendPoints {
		salesSeries = append(salesSeries, p.Sales)
		profitSeries = append(profitSeries, p.Profit)
	}

	segments := analytics.CategoryBreakdown(items)

	snapshot := &Dashboard{
		Totals:       analytics.ComputeTotals(items),
		Categories:   segments,
		CategoryArcs: analytics.GradientArcs(segments),
		TopByValue:   analytics.TopByValue(items),
		TopByProfit:  analytics.TopByProfit(items),
		Trend: Trend{
			Synthetic:  true,
			Points:     trendPoints,
			SalesPath:  analytics.PathString(analytics.Polyline(salesSeries, _chartWidth, _chartHeight, _chartPadding)),
			ProfitPath: analytics.PathString(analytics.Polyline(profitSeries, _chartWidth, _chartHeight, _chartPadding)),
		},
		Sales: analytics.SummarizeSales(s.ListSales(ctx)),
	}

	s.snapshots.Put(revision, snapshot, s.snapshotTTL)
	s.metrics.ObserveDuration("dashboard", time.Since(start))

	log.LogAttrs(ctx, logger.DebugLevel, "dashboard snapshot computed",
		logger.Int("items", len(items)),
		logger.Any("revision", revision),
	)
	return snapshot, nil
}
