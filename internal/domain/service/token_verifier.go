// Package service declares the domain-facing contracts implemented by infrastructure adapters.
package service

import (
	"context"
	"errors"
)

// ErrInvalidToken is returned for any bearer token that fails signature, issuer, audience or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the subset of a validated access token the backend relies on.
type Claims struct {
	Subject   string
	Email     string
	Name      string
	Nickname  string
	GivenName string
}

// TokenVerifier validates a raw bearer token against the authority's published keys.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Claims, error)
}
