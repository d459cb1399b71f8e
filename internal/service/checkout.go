package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fishmart/internal/domain"
	"fishmart/internal/port"
)

type checkoutService struct {
	cart    port.CartService
	session port.SessionManager
	log     *zap.Logger
}

func NewCheckout(cart port.CartService, session port.SessionManager, log *zap.Logger) (port.CheckoutService, error) {
	if cart == nil {
		return nil, fmt.Errorf("cart is nil")
	}
	if session == nil {
		return nil, fmt.Errorf("session is nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &checkoutService{cart: cart, session: session, log: log}, nil
}

func (s *checkoutService) Checkout(ctx context.Context) (domain.Receipt, error) {
	if err := requireUser(ctx, s.session); err != nil {
		return domain.Receipt{}, err
	}

	items, err := s.cart.Items(ctx)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("cart.Items: %w", err)
	}
	if len(items) == 0 {
		return domain.Receipt{}, domain.ErrEmptyCart
	}

	total, err := s.cart.Total(ctx)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("cart.Total: %w", err)
	}

	if err := s.cart.Clear(ctx); err != nil {
		return domain.Receipt{}, fmt.Errorf("cart.Clear: %w", err)
	}

	receipt := newReceipt(total)
	s.log.Info("checkout complete",
		zap.String("receiptID", receipt.ID.String()),
		zap.String("total", receipt.Total.String()))

	return receipt, nil
}

func (s *checkoutService) BuyNow(ctx context.Context, name string, unitPrice decimal.Decimal) (domain.Receipt, error) {
	if name == "" {
		return domain.Receipt{}, fmt.Errorf("name is empty")
	}
	if unitPrice.IsNegative() {
		return domain.Receipt{}, fmt.Errorf("unit price is negative")
	}

	if err := requireUser(ctx, s.session); err != nil {
		return domain.Receipt{}, err
	}

	receipt := newReceipt(domain.Pesos(unitPrice))
	s.log.Info("buy now",
		zap.String("name", name),
		zap.String("receiptID", receipt.ID.String()),
		zap.String("total", receipt.Total.String()))

	return receipt, nil
}

func newReceipt(total domain.Money) domain.Receipt {
	return domain.Receipt{
		ID:       uuid.New(),
		Total:    total,
		PlacedAt: time.Now(),
	}
}

// requireUser checks the session and, on a miss, arms the login guard
// so the caller lands back on the shop page after logging in.
func requireUser(ctx context.Context, session port.SessionManager) error {
	_, ok, err := session.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("session.CurrentUser: %w", err)
	}
	if !ok {
		if _, err := session.RequireLogin(ctx, DefaultLandingPage); err != nil {
			return fmt.Errorf("session.RequireLogin: %w", err)
		}
		return domain.ErrNotLoggedIn
	}

	return nil
}
