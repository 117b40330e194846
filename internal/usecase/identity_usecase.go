// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"chess/internal/domain/entity"
)

// IdentityUsecase maps authority subjects to local accounts.
type IdentityUsecase interface {
	// ResolveOrRegister links a new subject to a freshly created account.
	ResolveOrRegister(ctx context.Context, input *RegisterInput) (*entity.Account, error)

	// ResolveExisting loads the account linked to subject. It never creates one.
	ResolveExisting(ctx context.Context, subject string) (*entity.Account, error)
}

// --- Input DTOs ---

// RegisterInput carries the verified token claims plus an optional name override.
type RegisterInput struct {
	Subject      string
	Email        string
	Name         string
	Nickname     string
	GivenName    string
	NameOverride string
}
