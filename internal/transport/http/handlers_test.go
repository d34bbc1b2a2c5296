package httpt_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/config"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/entity"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/repository/memory"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/service"
	httpt "github.com/trixiemotil-commits/Joshoeixi-Vape/internal/transport/http"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/cache"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/logger"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/metric"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type HandlerSuite struct {
	suite.Suite

	handler *httpt.InventoryHandler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	metrics := metric.NewFactory()
	snapshots, err := cache.NewLRUCache[uint64, *service.Dashboard](4, "dashboard", metrics.Cache())
	s.Require().NoError(err)

	repo := memory.NewItemRepository()
	svc := service.NewInventoryService(repo, logger.NewNop(), metrics.Store(), snapshots, time.Minute)

	cfg := &config.Config{
		App:  config.App{Name: "vape-inventory", Version: "test"},
		CORS: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	s.handler = httpt.NewInventoryHandler(svc, cfg, logger.NewNop(), metrics.HTTP())
}

func (s *HandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	s.T().Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.handler.Engine().ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) decode(rec *httptest.ResponseRecorder, out any) {
	s.T().Helper()
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
}

func (s *HandlerSuite) createItem(body map[string]any) entity.ItemView {
	s.T().Helper()

	rec := s.do(http.MethodPost, "/api/items", body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var view entity.ItemView
	s.decode(rec, &view)
	return view
}

func sampleBody() map[string]any {
	return map[string]any{
		"name":         "Blue Razz",
		"brand":        "Elf Bar",
		"category":     "Disposable",
		"stock":        10,
		"rawPrice":     4,
		"sellingPrice": 9,
	}
}

func (s *HandlerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/api/health", nil)
	s.Equal(http.StatusOK, rec.Code)

	var resp httpt.HealthResponse
	s.decode(rec, &resp)
	s.Equal("ok", resp.Status)
	s.Equal("vape-inventory", resp.Service)
}

func (s *HandlerSuite) TestCreateItem() {
	view := s.createItem(sampleBody())

	s.EqualValues(1, view.ID)
	s.Equal("Blue Razz", view.Name)
	s.True(view.Profit.Equal(decimal.NewFromInt(5)), "profit: got %s", view.Profit)
	s.True(view.Price.Equal(view.SellingPrice))
}

func (s *HandlerSuite) TestCreateItemLegacyPriceAlias() {
	body := sampleBody()
	delete(body, "sellingPrice")
	body["price"] = 7

	view := s.createItem(body)
	s.True(view.SellingPrice.Equal(decimal.NewFromInt(7)))
}

func (s *HandlerSuite) TestCreateItemWithoutPriceRejected() {
	body := sampleBody()
	delete(body, "sellingPrice")

	rec := s.do(http.MethodPost, "/api/items", body)
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp httpt.ErrorResponse
	s.decode(rec, &resp)
	s.NotEmpty(resp.Error)
}

func (s *HandlerSuite) TestCreateItemMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.handler.Engine().ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)

	var resp httpt.ErrorResponse
	s.decode(rec, &resp)
	s.Equal("Invalid request body", resp.Error)
}

func (s *HandlerSuite) TestUpdatePreservesUntouchedFields() {
	created := s.createItem(sampleBody())

	rec := s.do(http.MethodPut, fmt.Sprintf("/api/items/%d", created.ID), map[string]any{"stock": 20})
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	var updated entity.ItemView
	s.decode(rec, &updated)
	s.EqualValues(20, updated.Stock)
	s.Equal(created.Name, updated.Name)
	s.Equal(created.Brand, updated.Brand)
	s.True(created.SellingPrice.Equal(updated.SellingPrice))
}

func (s *HandlerSuite) TestUpdateMissingItem() {
	rec := s.do(http.MethodPut, "/api/items/99", map[string]any{"stock": 20})
	s.Equal(http.StatusNotFound, rec.Code)

	var resp httpt.ErrorResponse
	s.decode(rec, &resp)
	s.Equal("Item not found", resp.Error)
}

func (s *HandlerSuite) TestUpdatePriceInversionRejected() {
	created := s.createItem(sampleBody())

	rec := s.do(http.MethodPut, fmt.Sprintf("/api/items/%d", created.ID), map[string]any{"rawPrice": 20})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestDeleteItem() {
	created := s.createItem(sampleBody())

	rec := s.do(http.MethodDelete, fmt.Sprintf("/api/items/%d", created.ID), nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/items/%d", created.ID), nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerSuite) TestInvalidIDRejected() {
	for _, path := range []string{"/api/items/abc", "/api/items/0", "/api/items/-4"} {
		rec := s.do(http.MethodDelete, path, nil)
		s.Equal(http.StatusBadRequest, rec.Code, path)

		var resp httpt.ErrorResponse
		s.decode(rec, &resp)
		s.Equal("Invalid item id", resp.Error)
	}
}

func (s *HandlerSuite) TestListAndSearch() {
	s.createItem(sampleBody())

	second := sampleBody()
	second["name"] = "XROS Pod"
	second["brand"] = "Vaporesso"
	second["category"] = "Pods"
	s.createItem(second)

	rec := s.do(http.MethodGet, "/api/items", nil)
	s.Equal(http.StatusOK, rec.Code)

	var all []entity.ItemView
	s.decode(rec, &all)
	s.Len(all, 2)

	rec = s.do(http.MethodGet, "/api/items?q=VAPOR", nil)
	s.Equal(http.StatusOK, rec.Code)

	var filtered []entity.ItemView
	s.decode(rec, &filtered)
	s.Len(filtered, 1)
	s.Equal("XROS Pod", filtered[0].Name)
}

func (s *HandlerSuite) TestBatchCreate() {
	rec := s.do(http.MethodPost, "/api/items/batch", map[string]any{
		"brand":        "Vaporesso",
		"category":     "Pods",
		"rawPrice":     1.8,
		"sellingPrice": 4.5,
		"variants": []map[string]any{
			{"name": "XROS Pod 0.6ohm", "stock": 12},
			{"name": "XROS Pod 0.8ohm", "stock": 7},
		},
	})
	s.Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var views []entity.ItemView
	s.decode(rec, &views)
	s.Len(views, 2)
	s.Equal("XROS Pod 0.6ohm", views[0].Name)
	s.Equal("Vaporesso", views[1].Brand)
}

func (s *HandlerSuite) TestBatchCreateWithoutVariantsRejected() {
	rec := s.do(http.MethodPost, "/api/items/batch", map[string]any{
		"brand":        "Vaporesso",
		"category":     "Pods",
		"sellingPrice": 4.5,
		"variants":     []map[string]any{},
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestAddStock() {
	created := s.createItem(sampleBody())

	rec := s.do(http.MethodPost, fmt.Sprintf("/api/items/%d/stock", created.ID), map[string]any{"quantity": 5})
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	var view entity.ItemView
	s.decode(rec, &view)
	s.EqualValues(15, view.Stock)

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/items/%d/stock", created.ID), map[string]any{"quantity": -2})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestSaleFlow() {
	created := s.createItem(sampleBody())

	rec := s.do(http.MethodPost, "/api/sales", map[string]any{"itemId": created.ID, "quantity": 3})
	s.Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var sale entity.SaleRecord
	s.decode(rec, &sale)
	s.Equal(created.ID, sale.ItemID)
	s.True(sale.TotalAmount.Equal(decimal.NewFromInt(27)), "total: got %s", sale.TotalAmount)

	rec = s.do(http.MethodGet, "/api/sales", nil)
	s.Equal(http.StatusOK, rec.Code)

	var ledger []entity.SaleRecord
	s.decode(rec, &ledger)
	s.Len(ledger, 1)

	rec = s.do(http.MethodGet, "/api/items", nil)
	var items []entity.ItemView
	s.decode(rec, &items)
	s.EqualValues(7, items[0].Stock)
}

func (s *HandlerSuite) TestSaleOversellRejected() {
	created := s.createItem(sampleBody())

	rec := s.do(http.MethodPost, "/api/sales", map[string]any{"itemId": created.ID, "quantity": 11})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/sales", nil)
	var ledger []entity.SaleRecord
	s.decode(rec, &ledger)
	s.Empty(ledger)
}

func (s *HandlerSuite) TestSaleUnknownItem() {
	rec := s.do(http.MethodPost, "/api/sales", map[string]any{"itemId": 99, "quantity": 1})
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerSuite) TestDashboard() {
	s.createItem(sampleBody())

	rec := s.do(http.MethodGet, "/api/analytics/dashboard", nil)
	s.Equal(http.StatusOK, rec.Code)

	var dashboard service.Dashboard
	s.decode(rec, &dashboard)
	s.True(dashboard.Trend.Synthetic)
	s.Len(dashboard.Trend.Points, 6)
	s.NotEmpty(dashboard.Trend.SalesPath)
	s.EqualValues(10, dashboard.Totals.TotalStock)
	s.Len(dashboard.Categories, 1)
	s.Equal(360.0, dashboard.CategoryArcs[len(dashboard.CategoryArcs)-1].EndAngle)
}
