package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"fishmart/internal/domain"
	"fishmart/internal/port"
	"fishmart/internal/store"
)

type accountRegistry struct {
	store port.Store
	log   *zap.Logger
}

// NewAccountRegistry returns the registry persisted under the users
// key. A nil logger disables logging.
func NewAccountRegistry(st port.Store, log *zap.Logger) (port.AccountRegistry, error) {
	if st == nil {
		return nil, fmt.Errorf("store is nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &accountRegistry{store: st, log: log}, nil
}

func (r *accountRegistry) Register(ctx context.Context, username, password string) error {
	if username == "" {
		return fmt.Errorf("username is empty")
	}
	if password == "" {
		return fmt.Errorf("password is empty")
	}

	users, err := r.load(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	// Case-sensitive exact match, same as the lookup on login.
	if _, ok := users[username]; ok {
		return domain.ErrAccountExists
	}

	users[username] = password
	if err := r.save(ctx, users); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	r.log.Debug("account registered", zap.String("username", username))
	return nil
}

func (r *accountRegistry) Authenticate(ctx context.Context, username, password string) error {
	if username == "" {
		return fmt.Errorf("username is empty")
	}

	users, err := r.load(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	stored, ok := users[username]
	if !ok {
		return domain.ErrAccountNotFound
	}

	// Plaintext comparison: demo accounts, no security boundary.
	if stored != password {
		return domain.ErrWrongPassword
	}

	return nil
}

// load reads the username-to-password mapping. A missing or unreadable
// value counts as an empty registry so one corrupted write cannot lock
// the whole storefront out.
func (r *accountRegistry) load(ctx context.Context) (map[string]string, error) {
	raw, ok, err := r.store.Get(ctx, store.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("store.Get: %w", err)
	}
	if !ok {
		return map[string]string{}, nil
	}

	var users map[string]string
	if err := json.Unmarshal(raw, &users); err != nil {
		r.log.Warn("discarding corrupt users value", zap.Error(err))
		return map[string]string{}, nil
	}
	if users == nil {
		users = map[string]string{}
	}

	return users, nil
}

func (r *accountRegistry) save(ctx context.Context, users map[string]string) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.store.Set(ctx, store.KeyUsers, raw); err != nil {
		return fmt.Errorf("store.Set: %w", err)
	}

	return nil
}
