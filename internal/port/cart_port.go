package port

import (
	"context"

	"github.com/shopspring/decimal"

	"fishmart/internal/domain"
)

type CartService interface {
	Items(ctx context.Context) ([]domain.LineItem, error)
	// Add puts one unit of the named product in the cart, merging with
	// an existing line item of the same name. Requires an active
	// session; without one the login guard is armed and
	// domain.ErrNotLoggedIn is returned.
	Add(ctx context.Context, name string, unitPrice decimal.Decimal) error
	// RemoveAt drops the line item at the given display position.
	RemoveAt(ctx context.Context, index int) error
	Total(ctx context.Context) (domain.Money, error)
	Clear(ctx context.Context) error
}

type CheckoutService interface {
	// Checkout finalizes the current cart: requires an active session
	// and a non-empty cart, clears the cart and issues a receipt.
	Checkout(ctx context.Context) (domain.Receipt, error)
	// BuyNow purchases a single product directly, bypassing the cart.
	BuyNow(ctx context.Context, name string, unitPrice decimal.Decimal) (domain.Receipt, error)
}
