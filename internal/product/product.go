// Package product validates raw product-card data before it reaches
// the cart. The presentation layer reads name and price off the
// markup; everything past this boundary works with parsed values only.
package product

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"fishmart/internal/domain"
)

// Product is a validated (name, price) pair ready for the cart.
type Product struct {
	Name  string
	Price decimal.Decimal
}

var priceCleaner = strings.NewReplacer("₱", "", ",", "", " ", "")

// Parse validates product-card data. The price text may carry currency
// formatting, e.g. "₱1,500.00". Missing name, unparseable price or a
// negative price yield domain.ErrInvalidProduct; callers are expected
// to silently drop such cards.
func Parse(name, priceText string) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, fmt.Errorf("name is missing: %w", domain.ErrInvalidProduct)
	}

	price, err := decimal.NewFromString(priceCleaner.Replace(strings.TrimSpace(priceText)))
	if err != nil {
		return Product{}, fmt.Errorf("price[%s] is not a number: %w", priceText, domain.ErrInvalidProduct)
	}
	if price.IsNegative() {
		return Product{}, fmt.Errorf("price[%s] is negative: %w", priceText, domain.ErrInvalidProduct)
	}

	return Product{Name: name, Price: price}, nil
}
