package memory

import (
	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/entity"

	"github.com/shopspring/decimal"
)

// SampleItems is the fixed dataset the store starts with when seeding is
// enabled.
func SampleItems() []entity.Item {
	return []entity.Item{
		seedItem("Watermelon Ice", "Elf Bar", "Disposable", 24, "4.20", "9.99", 10),
		seedItem("Blue Razz", "Elf Bar", "Disposable", 18, "4.20", "9.99", 10),
		seedItem("XROS 3 Pod 0.8ohm", "Vaporesso", "Pods", 40, "1.80", "4.50", 15),
		seedItem("RPM 2 Mesh Coil", "SMOK", "Coils", 35, "1.20", "3.50", 12),
		seedItem("Strawberry Kiwi 30ml", "Naked 100", "E-Liquid", 12, "7.50", "15.99", 8),
		seedItem("18650 Cell 3000mAh", "Molicel", "Battery", 16, "3.90", "8.99", 6),
		seedItem("Drip Tip 810 Resin", "Reewape", "Accessories", 9, "0.90", "2.99", 5),
		seedItem("Caliburn G2 Pod", "Uwell", "Pods", 0, "2.10", "5.50", 10),
	}
}

func seedItem(
	name, brand, category string,
	stock int64,
	rawPrice, sellingPrice string,
	minStockAlert int64,
) entity.Item {
	return entity.Item{
		Name:          name,
		Brand:         brand,
		Category:      category,
		Stock:         stock,
		RawPrice:      decimal.RequireFromString(rawPrice),
		SellingPrice:  decimal.RequireFromString(sellingPrice),
		MinStockAlert: minStockAlert,
	}
}
