// Package platform supplies credentials the user saved earlier, without prompting for them.
package platform

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
)

// ErrNoStoredCredential means the source has nothing for this user. It is not a failure.
var ErrNoStoredCredential = errors.New("no stored credential")

// Credential is either a PasswordCredential or a FederatedCredential.
type Credential interface {
	credential()
}

// PasswordCredential is a saved email and password.
type PasswordCredential struct {
	Email    string
	Password string
}

// FederatedCredential is an id_token issued by an external provider, bound to a nonce.
type FederatedCredential struct {
	IDToken string
	Email   string
}

func (PasswordCredential) credential()  {}
func (FederatedCredential) credential() {}

// Source looks up saved credentials.
type Source interface {
	Query(ctx context.Context, nonceHash string) (Credential, error)
	Save(ctx context.Context, email, password string) error
}

// Chain asks each source in order and returns the first credential found.
type Chain struct {
	sources []Source
	logger  *slog.Logger
}

// NewChain builds a Chain over sources.
func NewChain(logger *slog.Logger, sources ...Source) *Chain {
	return &Chain{sources: sources, logger: logger}
}

func (c *Chain) Query(ctx context.Context, nonceHash string) (Credential, error) {
	for _, source := range c.sources {
		cred, err := source.Query(ctx, nonceHash)
		if err == nil {
			return cred, nil
		}
		if !errors.Is(err, ErrNoStoredCredential) {
			return nil, err
		}
	}

	return nil, errors.WithStack(ErrNoStoredCredential)
}

// Save offers the credential to every source. The first error is returned after all have been tried.
func (c *Chain) Save(ctx context.Context, email, password string) error {
	var first error
	for _, source := range c.sources {
		if err := source.Save(ctx, email, password); err != nil {
			c.logger.Warn("Failed to save credential", slog.Any("error", err))
			if first == nil {
				first = err
			}
		}
	}

	return first
}
