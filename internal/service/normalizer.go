package service

import (
	"fmt"
	"strings"

	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/entity"

	"github.com/shopspring/decimal"
)

// Normalize merges a patch with an optional existing item into a fully
// populated record, or fails with a validation error. Resolution order
// per field: submitted value, then the existing item's value, then the
// field default (minStockAlert only). The same function backs both
// create and update; it is pure and never assigns an id.
func Normalize(patch entity.ItemPatch, existing *entity.Item, create bool) (entity.Item, error) {
	const op = "service.Normalize"

	name, err := resolveRequiredString(patch.Name, existing, func(i entity.Item) string { return i.Name }, "name")
	if err != nil {
		return entity.Item{}, fmt.Errorf("%s: %w", op, err)
	}
	brand, err := resolveRequiredString(patch.Brand, existing, func(i entity.Item) string { return i.Brand }, "brand")
	if err != nil {
		return entity.Item{}, fmt.Errorf("%s: %w", op, err)
	}
	category, err := resolveRequiredString(patch.Category, existing, func(i entity.Item) string { return i.Category }, "category")
	if err != nil {
		return entity.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	// Create must carry at least one explicit price field; defaults from
	// a record that does not exist yet are not allowed.
	if create && !patch.HasExplicitPrice() {
		return entity.Item{}, fmt.Errorf("%s: %w", op, entity.ErrMissingPrice)
	}

	stock := resolveInt(patch.Stock, existing, func(i entity.Item) int64 { return i.Stock }, 0)
	if stock < 0 {
		return entity.Item{}, fmt.Errorf("%s: stock: %w", op, entity.ErrInvalidNumber)
	}

	minStockAlert := resolveInt(
		patch.MinStockAlert,
		existing,
		func(i entity.Item) int64 { return i.MinStockAlert },
		entity.DefaultMinStockAlert,
	)
	if minStockAlert < 0 {
		return entity.Item{}, fmt.Errorf("%s: minStockAlert: %w", op, entity.ErrInvalidNumber)
	}

	rawPrice := resolveDecimal(patch.RawPrice, existing, func(i entity.Item) decimal.Decimal { return i.RawPrice })
	if rawPrice.IsNegative() {
		return entity.Item{}, fmt.Errorf("%s: rawPrice: %w", op, entity.ErrInvalidNumber)
	}

	sellingPrice := resolveDecimal(patch.SubmittedSellingPrice(), existing, func(i entity.Item) decimal.Decimal { return i.SellingPrice })
	if sellingPrice.IsNegative() {
		return entity.Item{}, fmt.Errorf("%s: sellingPrice: %w", op, entity.ErrInvalidNumber)
	}

	if sellingPrice.LessThan(rawPrice) {
		return entity.Item{}, fmt.Errorf("%s: %w", op, entity.ErrPriceInversion)
	}

	return entity.Item{
		Name:          name,
		Brand:         brand,
		Category:      category,
		Stock:         stock,
		RawPrice:      rawPrice,
		SellingPrice:  sellingPrice,
		MinStockAlert: minStockAlert,
	}, nil
}

func resolveRequiredString(
	submitted *string,
	existing *entity.Item,
	field func(entity.Item) string,
	name string,
) (string, error) {
	value := ""
	switch {
	case submitted != nil:
		value = *submitted
	case existing != nil:
		value = field(*existing)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s: %w", name, entity.ErrMissingField)
	}
	return value, nil
}

func resolveInt(
	submitted *int64,
	existing *entity.Item,
	field func(entity.Item) int64,
	fallback int64,
) int64 {
	switch {
	case submitted != nil:
		return *submitted
	case existing != nil:
		return field(*existing)
	default:
		return fallback
	}
}

func resolveDecimal(
	submitted *decimal.Decimal,
	existing *entity.Item,
	field func(entity.Item) decimal.Decimal,
) decimal.Decimal {
	switch {
	case submitted != nil:
		return *submitted
	case existing != nil:
		return field(*existing)
	default:
		return decimal.Zero
	}
}
