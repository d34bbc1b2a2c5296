package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is a ledger entry for a recorded sale. The ledger lives only
// in process memory; it is not persisted and disappears on restart.
type SaleRecord struct {
	ID           int64           `json:"id"`
	Date         time.Time       `json:"date"`
	ItemID       int64           `json:"itemId"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Category     string          `json:"category"`
	Quantity     int64           `json:"quantity"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// NewSaleRecord snapshots the item at sale time. The id is the sale
// timestamp in milliseconds, mirroring the client-generated ids of the
// original ledger.
func NewSaleRecord(item Item, quantity int64, at time.Time) SaleRecord {
	return SaleRecord{
		ID:           at.UnixMilli(),
		Date:         at,
		ItemID:       item.ID,
		Name:         item.Name,
		Brand:        item.Brand,
		Category:     item.Category,
		Quantity:     quantity,
		SellingPrice: item.SellingPrice,
		TotalAmount:  item.SellingPrice.Mul(decimal.NewFromInt(quantity)),
	}
}
