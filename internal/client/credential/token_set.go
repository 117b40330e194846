// Package credential caches the current token set and refreshes it on demand.
package credential

import (
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrNoCredentials means no token set is stored: the user is logged out.
	ErrNoCredentials = errors.New("no stored credentials")

	// ErrCredentialsInvalid means the refresh token was rejected and the stored set was cleared.
	// Callers restart sign-in instead of retrying the refresh.
	ErrCredentialsInvalid = errors.New("credentials invalid")

	// ErrRefreshRejected is matched by refresher errors that mean the refresh token itself is dead.
	ErrRefreshRejected = errors.New("refresh token rejected")
)

// TokenSet is the unit of session persistence.
type TokenSet struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	IDToken      string    `json:"id_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Valid reports whether the set satisfies the storage invariant.
func (t *TokenSet) Valid() bool {
	return t != nil && t.AccessToken != "" && !t.ExpiresAt.IsZero()
}

// FreshAt reports whether the access token is still usable at now, leaving skew headroom.
func (t *TokenSet) FreshAt(now time.Time, skew time.Duration) bool {
	return t.Valid() && now.Before(t.ExpiresAt.Add(-skew))
}

func (t *TokenSet) clone() *TokenSet {
	if t == nil {
		return nil
	}
	c := *t

	return &c
}
