package port

import (
	"context"
)

type SessionManager interface {
	// CurrentUser reports the logged-in username, if any.
	CurrentUser(ctx context.Context) (string, bool, error)
	// Login records username as the active session and consumes the
	// pending redirect, returning the page the caller must navigate to.
	Login(ctx context.Context, username string) (string, error)
	Logout(ctx context.Context) error
	// RequireLogin records target as the pending redirect and returns
	// the login entry point the caller must navigate to.
	RequireLogin(ctx context.Context, target string) (string, error)
	// TakeRedirect consumes the pending redirect, falling back to the
	// default landing page when none is set.
	TakeRedirect(ctx context.Context) (string, error)
}
