package domain

import (
	"github.com/shopspring/decimal"
)

// LineItem is one product entry in the cart. A cart holds at most one
// line item per product name; repeat adds bump Quantity.
type LineItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is an ordered list of line items. Insertion order is display
// order.
type Cart struct {
	Items []LineItem
}

// Add merges by product name: an existing item gains quantity, a new
// name is appended with quantity 1.
func (c *Cart) Add(name string, unitPrice decimal.Decimal) {
	for i := range c.Items {
		if c.Items[i].Name == name {
			c.Items[i].Quantity++
			return
		}
	}

	c.Items = append(c.Items, LineItem{
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// RemoveAt drops the item at the given display position. Later items
// shift down by one. Reports whether the index was in range.
func (c *Cart) RemoveAt(index int) bool {
	if index < 0 || index >= len(c.Items) {
		return false
	}

	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return true
}

func (c Cart) Total() Money {
	total := decimal.Zero
	for _, li := range c.Items {
		total = total.Add(li.Subtotal())
	}

	return Pesos(total)
}
