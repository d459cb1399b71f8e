package domain

import (
	"time"

	"github.com/google/uuid"
)

// Receipt confirms a completed purchase. It is handed back to the
// caller for display and never persisted; the storefront keeps no
// order records.
type Receipt struct {
	ID       uuid.UUID
	Total    Money
	PlacedAt time.Time
}
