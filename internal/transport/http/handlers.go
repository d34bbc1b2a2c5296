package httpt

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/entity"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/service"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	_defaultContextTimeout = 500 * time.Millisecond
)

func (h *InventoryHandler) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: h.serviceName,
	})
}

// GET /api/items?q= filters by case-insensitive substring over name,
// brand and category; omitting q returns all.
func (h *InventoryHandler) listItemsHandler(c *gin.Context) {
	const op = "transport.listItemsHandler"

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	items, err := h.svc.ListItems(ctx, c.Query("q"))
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) createItemHandler(c *gin.Context) {
	const op = "transport.createItemHandler"

	var patch entity.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	item, err := h.svc.CreateItem(ctx, patch)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) createBatchHandler(c *gin.Context) {
	const op = "transport.createBatchHandler"

	var req batchCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	variants := make([]service.BatchVariant, 0, len(req.Variants))
	for _, v := range req.Variants {
		variants = append(variants, service.BatchVariant{Name: v.Name, Stock: v.Stock})
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	items, err := h.svc.CreateBatch(ctx, req.ItemPatch, variants)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusCreated, items)
}

func (h *InventoryHandler) updateItemHandler(c *gin.Context) {
	const op = "transport.updateItemHandler"

	id, ok := h.parseID(c, op)
	if !ok {
		return
	}

	var patch entity.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	item, err := h.svc.UpdateItem(ctx, id, patch)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) deleteItemHandler(c *gin.Context) {
	const op = "transport.deleteItemHandler"

	id, ok := h.parseID(c, op)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	if err := h.svc.DeleteItem(ctx, id); err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) addStockHandler(c *gin.Context) {
	const op = "transport.addStockHandler"

	id, ok := h.parseID(c, op)
	if !ok {
		return
	}

	var req addStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	item, err := h.svc.AddStock(ctx, id, req.Quantity)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) recordSaleHandler(c *gin.Context) {
	const op = "transport.recordSaleHandler"

	var req recordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	sale, err := h.svc.RecordSale(ctx, req.ItemID, req.Quantity)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	log := h.log.Ctx(ctx)
	log.LogAttrs(ctx, logger.InfoLevel, "sale accepted",
		logger.Int64("item_id", req.ItemID),
		logger.Int64("quantity", req.Quantity),
	)

	c.JSON(http.StatusCreated, sale)
}

func (h *InventoryHandler) listSalesHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.svc.ListSales(ctx))
}

func (h *InventoryHandler) dashboardHandler(c *gin.Context) {
	const op = "transport.dashboardHandler"

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	dashboard, err := h.svc.Dashboard(ctx)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *InventoryHandler) parseID(c *gin.Context, op string) (int64, bool) {
	raw := c.Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		h.handleInvalidID(c, op, raw)
		return 0, false
	}
	return id, true
}
