package usecase

import (
	"context"

	"chess/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase defines account reads and owner-only mutations.
type AccountUsecase interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	ListAccounts(ctx context.Context) ([]*entity.Account, error)
	UpdateAccount(ctx context.Context, caller *entity.Account, id uuid.UUID, input *UpdateAccountInput) (*entity.Account, error)
	DeleteAccount(ctx context.Context, caller *entity.Account, id uuid.UUID) error
}

// UpdateAccountInput holds optional replacements; nil leaves the field unchanged.
type UpdateAccountInput struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
