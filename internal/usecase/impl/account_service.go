package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "chess/internal/delivery/context"
	"chess/internal/domain/entity"
	domainerrors "chess/internal/domain/errors"
	"chess/internal/domain/policy"
	"chess/internal/domain/repository"
	"chess/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAccount retrieves a single account by id.
func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.WithStack(domainerrors.ErrAccountNotFound)
			}

			return errors.Wrap(err, "failed to find account")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}

	return account, nil
}

// ListAccounts returns every account ordered by creation time.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	var accounts []*entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list accounts")
		}
		accounts = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// UpdateAccount changes name and/or email of the caller's own account.
func (srv *accountService) UpdateAccount(
	ctx context.Context,
	caller *entity.Account,
	id uuid.UUID,
	input *usecase.UpdateAccountInput,
) (*entity.Account, error) {
	// Checked before any lookup so a non-owner cannot learn which ids exist.
	if err := policy.AuthorizeSelf(caller, id); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Updating account", slog.Any("accountID", id))

	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.WithStack(domainerrors.ErrAccountNotFound)
			}

			return errors.Wrap(err, "failed to find account")
		}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if !entity.ValidName(name) {
				return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name must be between 2 and 50 characters"))
			}
			if name != account.Name {
				taken, err := accountRepo.ExistsByName(ctx, name, account.ID)
				if err != nil {
					return errors.Wrap(err, "failed to check name")
				}
				if taken {
					return errors.WithStack(domainerrors.ErrDuplicateName.WithDetails(name))
				}
				account.Name = name
			}
		}

		if input.Email != nil {
			email := strings.TrimSpace(*input.Email)
			if email != account.Email {
				taken, err := accountRepo.ExistsByEmail(ctx, email, account.ID)
				if err != nil {
					return errors.Wrap(err, "failed to check email")
				}
				if taken {
					return errors.WithStack(domainerrors.ErrDuplicateEmail.WithDetails(email))
				}
				account.Email = email
			}
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	return updated, nil
}

// DeleteAccount removes the caller's own account together with its identity link.
func (srv *accountService) DeleteAccount(ctx context.Context, caller *entity.Account, id uuid.UUID) error {
	if err := policy.AuthorizeSelf(caller, id); err != nil {
		return errors.WithStack(err)
	}

	srv.log(ctx).Info("Deleting account", slog.Any("accountID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.WithStack(domainerrors.ErrAccountNotFound)
			}

			return errors.Wrap(err, "failed to delete account")
		}

		return nil
	})

	return errors.Wrap(err, "failed to delete account")
}
