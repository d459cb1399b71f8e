package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fishmart/internal/port"
	"fishmart/internal/store"
)

// testStoreContract exercises the Store behavior every backend has to
// share: raw and JSON values round-trip, Set overwrites, Delete is
// idempotent, blank keys are rejected.
func testStoreContract(t *testing.T, st port.Store) {
	t.Helper()
	ctx := t.Context()

	tests := []struct {
		name  string
		key   string
		value []byte
	}{
		{
			name:  "json object",
			key:   store.KeyUsers,
			value: []byte(`{"ana":"pw1"}`),
		},
		{
			name:  "json array",
			key:   store.KeyCart,
			value: []byte(`[{"name":"Bangus","price":200,"quantity":2}]`),
		},
		{
			// Session values are raw strings, not JSON.
			name:  "raw string",
			key:   store.KeyLoggedInUser,
			value: []byte("ana"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := st.Get(ctx, tt.key)
			require.NoError(t, err)
			require.False(t, ok)

			require.NoError(t, st.Set(ctx, tt.key, tt.value))

			got, ok, err := st.Get(ctx, tt.key)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.value, got)

			// Overwrite wins.
			require.NoError(t, st.Set(ctx, tt.key, []byte("overwritten")))

			got, ok, err = st.Get(ctx, tt.key)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte("overwritten"), got)

			require.NoError(t, st.Delete(ctx, tt.key))

			_, ok, err = st.Get(ctx, tt.key)
			require.NoError(t, err)
			assert.False(t, ok)

			// Deleting a missing key is not an error.
			require.NoError(t, st.Delete(ctx, tt.key))
		})
	}

	t.Run("empty key rejected", func(t *testing.T) {
		_, _, err := st.Get(ctx, "")
		require.EqualError(t, err, "key is empty")

		err = st.Set(ctx, "", []byte("x"))
		require.EqualError(t, err, "key is empty")

		err = st.Delete(ctx, "")
		require.EqualError(t, err, "key is empty")
	})
}
