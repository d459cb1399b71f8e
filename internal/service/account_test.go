package service_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"fishmart/internal/domain"
	"fishmart/internal/store"
)

func randomUsername() string {
	return gofakeit.Username()
}

func TestRegister(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)

	username := randomUsername()
	password := gofakeit.Password(true, true, true, false, false, 12)

	require.NoError(t, f.accounts.Register(ctx, username, password))

	// Second registration of the same name fails and must not touch
	// the stored password.
	err := f.accounts.Register(ctx, username, "other")
	require.ErrorIs(t, err, domain.ErrAccountExists)

	require.NoError(t, f.accounts.Authenticate(ctx, username, password))
}

func TestRegisterEmptyFields(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)

	err := f.accounts.Register(ctx, "", "pw")
	require.EqualError(t, err, "username is empty")

	err = f.accounts.Register(ctx, "ana", "")
	require.EqualError(t, err, "password is empty")
}

func TestAuthenticate(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)

	require.NoError(t, f.accounts.Register(ctx, "ana", "pw1"))

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "correct password: ok",
			username: "ana",
			password: "pw1",
		},
		{
			name:     "wrong password",
			username: "ana",
			password: "pw2",
			wantErr:  domain.ErrWrongPassword,
		},
		{
			name:     "unknown username",
			username: "bob",
			password: "pw1",
			wantErr:  domain.ErrAccountNotFound,
		},
		{
			name:     "lookup is case-sensitive",
			username: "Ana",
			password: "pw1",
			wantErr:  domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.accounts.Authenticate(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRegistryTreatsCorruptStateAsEmpty(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)

	require.NoError(t, f.store.Set(ctx, store.KeyUsers, []byte("{not json")))

	err := f.accounts.Authenticate(ctx, "ana", "pw1")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	// Registering over the corrupt value starts a fresh registry.
	require.NoError(t, f.accounts.Register(ctx, "ana", "pw1"))
	require.NoError(t, f.accounts.Authenticate(ctx, "ana", "pw1"))
}
