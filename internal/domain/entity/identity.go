package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity links an authority subject to exactly one local account.
// It is created once at registration and never re-pointed.
type Identity struct {
	Subject   string    // The authority's "sub" claim, e.g. "auth0|abc".
	AccountID uuid.UUID // The linked Account.
	CreatedAt time.Time
}
