package httpt

import "github.com/trixiemotil-commits/Joshoeixi-Vape/internal/entity"

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type batchVariant struct {
	Name  string `json:"name"  binding:"required"`
	Stock int64  `json:"stock" binding:"gte=0"`
}

// batchCreateRequest carries shared item fields plus one name+stock
// entry per variant to create.
type batchCreateRequest struct {
	entity.ItemPatch
	Variants []batchVariant `json:"variants" binding:"required,min=1,dive"`
}

type addStockRequest struct {
	Quantity int64 `json:"quantity" binding:"required"`
}

type recordSaleRequest struct {
	ItemID   int64 `json:"itemId"   binding:"required"`
	Quantity int64 `json:"quantity" binding:"required"`
}
