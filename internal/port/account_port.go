package port

import (
	"context"
)

type AccountRegistry interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) error
}
