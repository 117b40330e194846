package repository

import (
	"context"
	"errors"

	"chess/internal/domain/entity"
)

// ErrIdentityNotFound is returned when a subject has no linked account.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityRepository persists subject-to-account links.
type IdentityRepository interface {
	FindBySubject(ctx context.Context, subject string) (*entity.Identity, error)
	ExistsBySubject(ctx context.Context, subject string) (bool, error)

	// Create inserts the link. A second link for the same subject violates a storage constraint.
	Create(ctx context.Context, identity *entity.Identity) error

	// LockSubject serialises registrations for one subject until the transaction ends.
	LockSubject(ctx context.Context, subject string) error
}
