package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fishmart/internal/domain"
	"fishmart/internal/port"
	"fishmart/internal/store"
)

type cartService struct {
	store   port.Store
	session port.SessionManager
	log     *zap.Logger
}

// NewCart returns the cart persisted under the cart key. The cart is
// scoped to the store, not to the logged-in user: switching users
// keeps the same cart.
func NewCart(st port.Store, session port.SessionManager, log *zap.Logger) (port.CartService, error) {
	if st == nil {
		return nil, fmt.Errorf("store is nil")
	}
	if session == nil {
		return nil, fmt.Errorf("session is nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &cartService{store: st, session: session, log: log}, nil
}

// lineItemRecord is the persisted shape of one cart entry. The field
// names and the numeric price are fixed by the presentation layer.
type lineItemRecord struct {
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
	Quantity int         `json:"quantity"`
}

func (c *cartService) Items(ctx context.Context) ([]domain.LineItem, error) {
	cart, err := c.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	return cart.Items, nil
}

func (c *cartService) Add(ctx context.Context, name string, unitPrice decimal.Decimal) error {
	if name == "" {
		return fmt.Errorf("name is empty")
	}
	if unitPrice.IsNegative() {
		return fmt.Errorf("unit price is negative")
	}

	if err := requireUser(ctx, c.session); err != nil {
		return err
	}

	cart, err := c.load(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	cart.Add(name, unitPrice)

	if err := c.save(ctx, cart); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	c.log.Debug("item added",
		zap.String("name", name),
		zap.String("unitPrice", unitPrice.String()))

	return nil
}

func (c *cartService) RemoveAt(ctx context.Context, index int) error {
	cart, err := c.load(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	if !cart.RemoveAt(index) {
		return domain.ErrInvalidIndex
	}

	if err := c.save(ctx, cart); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	return nil
}

func (c *cartService) Total(ctx context.Context) (domain.Money, error) {
	cart, err := c.load(ctx)
	if err != nil {
		return domain.Money{}, fmt.Errorf("load: %w", err)
	}

	return cart.Total(), nil
}

func (c *cartService) Clear(ctx context.Context) error {
	if err := c.store.Delete(ctx, store.KeyCart); err != nil {
		return fmt.Errorf("store.Delete: %w", err)
	}

	return nil
}

// load reads the cart. A missing or unreadable value counts as an
// empty cart.
func (c *cartService) load(ctx context.Context) (domain.Cart, error) {
	raw, ok, err := c.store.Get(ctx, store.KeyCart)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("store.Get: %w", err)
	}
	if !ok {
		return domain.Cart{}, nil
	}

	var records []lineItemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		c.log.Warn("discarding corrupt cart value", zap.Error(err))
		return domain.Cart{}, nil
	}

	items := make([]domain.LineItem, 0, len(records))
	for _, rec := range records {
		price, err := decimal.NewFromString(rec.Price.String())
		if err != nil {
			c.log.Warn("discarding corrupt cart value",
				zap.String("price", rec.Price.String()))
			return domain.Cart{}, nil
		}

		items = append(items, domain.LineItem{
			Name:      rec.Name,
			UnitPrice: price,
			Quantity:  rec.Quantity,
		})
	}

	return domain.Cart{Items: items}, nil
}

func (c *cartService) save(ctx context.Context, cart domain.Cart) error {
	records := make([]lineItemRecord, 0, len(cart.Items))
	for _, item := range cart.Items {
		records = append(records, lineItemRecord{
			Name:     item.Name,
			Price:    json.Number(item.UnitPrice.String()),
			Quantity: item.Quantity,
		})
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := c.store.Set(ctx, store.KeyCart, raw); err != nil {
		return fmt.Errorf("store.Set: %w", err)
	}

	return nil
}
