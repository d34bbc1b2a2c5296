package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Prices travel as plain JSON numbers, matching the original API contract.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultMinStockAlert is applied when an item is created without an
// explicit reorder threshold.
const DefaultMinStockAlert int64 = 10

// Categories recognized by the storefront. The server itself accepts any
// non-empty category string.
var Categories = []string{
	"Pods", "Battery", "E-Liquid", "Disposable", "Coils", "Accessories", "Other",
}

type Item struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Category      string          `json:"category"`
	Stock         int64           `json:"stock"`
	RawPrice      decimal.Decimal `json:"rawPrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	MinStockAlert int64           `json:"minStockAlert"`
}

// ItemPatch is a partial field set for create and update requests. Every
// field is optional; merging against an existing item is done by the
// normalizer, never by ad-hoc presence checks.
type ItemPatch struct {
	Name          *string          `json:"name"`
	Brand         *string          `json:"brand"`
	Category      *string          `json:"category"`
	Stock         *int64           `json:"stock"`
	RawPrice      *decimal.Decimal `json:"rawPrice"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice"`
	Price         *decimal.Decimal `json:"price"` // legacy alias for sellingPrice
	MinStockAlert *int64           `json:"minStockAlert"`
}

// SubmittedSellingPrice resolves the selling price between the canonical
// field and its legacy alias; sellingPrice wins when both are present.
func (p ItemPatch) SubmittedSellingPrice() *decimal.Decimal {
	if p.SellingPrice != nil {
		return p.SellingPrice
	}
	return p.Price
}

// HasExplicitPrice reports whether the request carried any price field at
// all, which create requests must.
func (p ItemPatch) HasExplicitPrice() bool {
	return p.RawPrice != nil || p.SellingPrice != nil || p.Price != nil
}

// ItemView is the response shape for every read and write: the stored
// fields plus the derived profit and the legacy price alias.
type ItemView struct {
	Item
	Profit decimal.Decimal `json:"profit"`
	Price  decimal.Decimal `json:"price"`
}

func NewItemView(item Item) ItemView {
	return ItemView{
		Item:   item,
		Profit: item.SellingPrice.Sub(item.RawPrice),
		Price:  item.SellingPrice,
	}
}

// Matches reports whether the query appears, case-insensitively, in the
// item's name, brand or category.
func (i Item) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(i.Name), q) ||
		strings.Contains(strings.ToLower(i.Brand), q) ||
		strings.Contains(strings.ToLower(i.Category), q)
}
