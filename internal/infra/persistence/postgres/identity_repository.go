package postgres

import (
	"context"

	"chess/internal/domain/entity"
	domainerrors "chess/internal/domain/errors"
	"chess/internal/domain/repository"
	"chess/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// identityRepository implements the domain.IdentityRepository interface using GORM.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

// FindBySubject loads the link for an authority subject.
func (repo *identityRepository) FindBySubject(ctx context.Context, subject string) (*entity.Identity, error) {
	var identityM model.IdentityModel
	if err := repo.db.WithContext(ctx).Where("subject = ?", subject).First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by subject")
	}

	return toIdentityDomain(&identityM), nil
}

// ExistsBySubject reports whether subject is already linked.
func (repo *identityRepository) ExistsBySubject(ctx context.Context, subject string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.IdentityModel{}).Where("subject = ?", subject).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count identities")
	}

	return count > 0, nil
}

// Create inserts the link. The primary key on subject is the final arbiter of a race.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatedConstraint(err) == constraintIdentityAccount {
				return domainerrors.NewDatabaseExecuteError(err, "account already has an identity")
			}

			return domainerrors.ErrIdentityAlreadyLinked.WrapMessage("subject already linked")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound.WrapMessage("identity references a missing account")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	identity.CreatedAt = identityM.CreatedAt

	return nil
}

// LockSubject takes a transaction-scoped advisory lock keyed by the subject.
// It only serialises callers inside a transaction; outside one it is released immediately.
func (repo *identityRepository) LockSubject(ctx context.Context, subject string) error {
	if err := repo.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", subject).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to lock subject")
	}

	return nil
}

func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	return &entity.Identity{
		Subject:   data.Subject,
		AccountID: data.AccountID,
		CreatedAt: data.CreatedAt,
	}
}

func fromIdentityDomain(data *entity.Identity) *model.IdentityModel {
	if data == nil {
		return nil
	}

	return &model.IdentityModel{
		Subject:   data.Subject,
		AccountID: data.AccountID,
		CreatedAt: data.CreatedAt,
	}
}
