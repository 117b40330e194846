package postgres

import (
	"context"
	"time"

	"chess/internal/domain/entity"
	domainerrors "chess/internal/domain/errors"
	"chess/internal/domain/repository"
	"chess/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its id.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// List returns all accounts, oldest first.
func (repo *accountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var accountMs []*model.AccountModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&accountMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for _, accountM := range accountMs {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// ExistsByName reports whether another account already uses name.
func (repo *accountRepository) ExistsByName(ctx context.Context, name string, exclude uuid.UUID) (bool, error) {
	return repo.exists(ctx, "name = ?", name, exclude)
}

// ExistsByEmail reports whether another account already uses email.
func (repo *accountRepository) ExistsByEmail(ctx context.Context, email string, exclude uuid.UUID) (bool, error) {
	return repo.exists(ctx, "email = ?", email, exclude)
}

func (repo *accountRepository) exists(ctx context.Context, cond string, value string, exclude uuid.UUID) (bool, error) {
	query := repo.db.WithContext(ctx).Model(&model.AccountModel{}).Where(cond, value)
	if exclude != uuid.Nil {
		query = query.Where("id <> ?", exclude)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count accounts")
	}

	return count > 0, nil
}

// Create persists a new account and copies the generated id and timestamps back.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		return translateAccountError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update writes name and email of an existing account.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"name":       account.Name,
			"email":      account.Email,
			"updated_at": now,
		})
	if result.Error != nil {
		return translateAccountError(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	account.UpdatedAt = now

	return nil
}

// Delete removes the account; the identity link goes with it through ON DELETE CASCADE.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AccountModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// translateAccountError converts PostgreSQL errors to domain errors.
func translateAccountError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		switch violatedConstraint(err) {
		case constraintAccountEmail:
			return domainerrors.ErrDuplicateEmail.WrapMessage(details)
		case constraintAccountName:
			return domainerrors.ErrDuplicateName.WrapMessage(details)
		default:
			return domainerrors.NewDatabaseExecuteError(err, details)
		}
	case isCheckConstraintViolation(err), isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
