package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fishmart/internal/port"
	"fishmart/internal/store"
)

const (
	// DefaultLandingPage is where a fresh login goes when no redirect
	// is pending.
	DefaultLandingPage = "shop.html"
	// LoginPage is the entry point the RequireLogin guard sends
	// callers to.
	LoginPage = "index.html#loginModal"
)

type sessionManager struct {
	store port.Store
	log   *zap.Logger
}

// NewSessionManager returns the session tracker persisted under the
// loggedInUser and redirectAfterLogin keys. Both values are stored as
// raw strings, not JSON, to stay readable by the presentation layer.
func NewSessionManager(st port.Store, log *zap.Logger) (port.SessionManager, error) {
	if st == nil {
		return nil, fmt.Errorf("store is nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &sessionManager{store: st, log: log}, nil
}

func (s *sessionManager) CurrentUser(ctx context.Context) (string, bool, error) {
	raw, ok, err := s.store.Get(ctx, store.KeyLoggedInUser)
	if err != nil {
		return "", false, fmt.Errorf("store.Get: %w", err)
	}
	if !ok || len(raw) == 0 {
		return "", false, nil
	}

	return string(raw), true, nil
}

func (s *sessionManager) Login(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("username is empty")
	}

	if err := s.store.Set(ctx, store.KeyLoggedInUser, []byte(username)); err != nil {
		return "", fmt.Errorf("store.Set: %w", err)
	}

	redirect, err := s.TakeRedirect(ctx)
	if err != nil {
		return "", fmt.Errorf("takeRedirect: %w", err)
	}

	s.log.Info("logged in",
		zap.String("username", username),
		zap.String("redirect", redirect))

	return redirect, nil
}

func (s *sessionManager) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, store.KeyLoggedInUser); err != nil {
		return fmt.Errorf("store.Delete: %w", err)
	}

	s.log.Info("logged out")
	return nil
}

func (s *sessionManager) RequireLogin(ctx context.Context, target string) (string, error) {
	if target == "" {
		target = DefaultLandingPage
	}

	if err := s.store.Set(ctx, store.KeyRedirectAfterLogin, []byte(target)); err != nil {
		return "", fmt.Errorf("store.Set: %w", err)
	}

	return LoginPage, nil
}

// TakeRedirect is a single-slot queue: reading clears the slot, so a
// second call falls back to the landing page.
func (s *sessionManager) TakeRedirect(ctx context.Context) (string, error) {
	raw, ok, err := s.store.Get(ctx, store.KeyRedirectAfterLogin)
	if err != nil {
		return "", fmt.Errorf("store.Get: %w", err)
	}
	if !ok || len(raw) == 0 {
		return DefaultLandingPage, nil
	}

	if err := s.store.Delete(ctx, store.KeyRedirectAfterLogin); err != nil {
		return "", fmt.Errorf("store.Delete: %w", err)
	}

	return string(raw), nil
}
