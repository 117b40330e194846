// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"chess/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	List(ctx context.Context) ([]*entity.Account, error)

	// ExistsByName and ExistsByEmail ignore the account with id exclude (uuid.Nil excludes nothing).
	ExistsByName(ctx context.Context, name string, exclude uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email string, exclude uuid.UUID) (bool, error)

	// Create persists a new account and fills in its generated id and timestamps.
	Create(ctx context.Context, account *entity.Account) error
	Update(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
}
