// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"net/http"
	"strings"

	"chess/config"
	"chess/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xenitab/go-oidc-middleware/oidctoken"
	"github.com/xenitab/go-oidc-middleware/options"
)

// tokenParser is the part of oidctoken.TokenHandler the verifier uses.
type tokenParser interface {
	ParseToken(ctx context.Context, tokenString string) (map[string]any, error)
}

// oidcVerifier validates access tokens against the authority's JWKS, issuer and audience.
type oidcVerifier struct {
	parser tokenParser
}

// NewOIDCVerifier builds a TokenVerifier from the authority section of the config.
func NewOIDCVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	issuer := strings.TrimSpace(cfg.Authority.Issuer)
	audience := strings.TrimSpace(cfg.Authority.Audience)
	if issuer == "" {
		return nil, errors.New("authority issuer is required")
	}
	if audience == "" {
		return nil, errors.New("authority audience is required")
	}

	opts := []options.Option{
		options.WithIssuer(issuer),
		options.WithRequiredAudience(audience),
	}
	if cfg.Authority.LazyLoadJwks {
		opts = append(opts, options.WithLazyLoadJwks(true))
	}

	handler, err := oidctoken.New[map[string]any](nil, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialise oidc token handler")
	}

	return &oidcVerifier{parser: handler}, nil
}

// Verify checks signature, issuer, audience and expiry, then extracts the identity claims.
func (v *oidcVerifier) Verify(ctx context.Context, rawToken string) (*Claims, error) {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return nil, errors.Wrap(service.ErrInvalidToken, "empty token")
	}

	raw, err := v.parser.ParseToken(ctx, token)
	if err != nil {
		return nil, errors.Wrapf(service.ErrInvalidToken, "parse token: %v", err)
	}

	claims := claimsFromMap(raw)
	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrInvalidToken, "token missing sub claim")
	}

	return claims, nil
}

// Claims is re-exported so callers of this package need not import the domain service package.
type Claims = service.Claims

// BearerToken extracts the token from the Authorization header.
func BearerToken(header http.Header) (string, error) {
	token, err := oidctoken.GetTokenString(header.Get, [][]options.TokenStringOption{{}})
	if err != nil {
		return "", errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	return strings.TrimSpace(token), nil
}

func claimsFromMap(raw map[string]any) *Claims {
	return &Claims{
		Subject:   stringClaim(raw, "sub"),
		Email:     stringClaim(raw, "email"),
		Name:      stringClaim(raw, "name"),
		Nickname:  stringClaim(raw, "nickname"),
		GivenName: stringClaim(raw, "given_name"),
	}
}

func stringClaim(raw map[string]any, key string) string {
	value, _ := raw[key].(string)

	return strings.TrimSpace(value)
}
