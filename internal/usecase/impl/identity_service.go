// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "chess/internal/delivery/context"
	"chess/internal/domain/entity"
	domainerrors "chess/internal/domain/errors"
	"chess/internal/domain/repository"
	"chess/internal/domain/service"
	"chess/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager repository.TransactionManager
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager: params.TxManager,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveOrRegister creates the account and its identity link in one transaction.
func (srv *identityService) ResolveOrRegister(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		srv.record(service.OutcomeInvalid)

		return nil, errors.Wrap(domainerrors.ErrMissingEmailClaim, "registration rejected")
	}

	name := chooseDisplayName(input, email)
	if !entity.ValidName(name) {
		srv.record(service.OutcomeInvalid)

		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("name must be between 2 and 50 characters"),
			"registration rejected",
		)
	}

	srv.log(ctx).Info("Registering identity", slog.String("subject", input.Subject), slog.String("name", name))

	account := &entity.Account{Name: name, Email: email}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()
		accountRepo := repoFactory.AccountRepo()

		// Two concurrent registrations for one subject queue here instead of racing the checks below.
		if err := identityRepo.LockSubject(ctx, input.Subject); err != nil {
			return errors.Wrap(err, "failed to lock subject")
		}

		linked, err := identityRepo.ExistsBySubject(ctx, input.Subject)
		if err != nil {
			return errors.Wrap(err, "failed to check identity")
		}
		if linked {
			return errors.WithStack(domainerrors.ErrIdentityAlreadyLinked)
		}

		nameTaken, err := accountRepo.ExistsByName(ctx, name, account.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check name")
		}
		if nameTaken {
			return errors.WithStack(domainerrors.ErrDuplicateName.WithDetails(name))
		}

		emailTaken, err := accountRepo.ExistsByEmail(ctx, email, account.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if emailTaken {
			return errors.WithStack(domainerrors.ErrDuplicateEmail.WithDetails(email))
		}

		if err := accountRepo.Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		return errors.Wrap(identityRepo.Create(ctx, &entity.Identity{
			Subject:   input.Subject,
			AccountID: account.ID,
		}), "failed to link identity")
	})
	if err != nil {
		srv.record(registrationOutcome(err))
		srv.log(ctx).Warn("Registration failed", slog.String("subject", input.Subject), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register identity")
	}

	srv.record(service.OutcomeRegistered)
	srv.log(ctx).Info("Identity registered", slog.String("subject", input.Subject), slog.Any("accountID", account.ID))

	return account, nil
}

// ResolveExisting loads the account linked to subject.
func (srv *identityService) ResolveExisting(ctx context.Context, subject string) (*entity.Account, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identity, err := repoFactory.IdentityRepo().FindBySubject(ctx, subject)
		if err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return errors.WithStack(domainerrors.ErrIdentityNotRegistered)
			}

			return errors.Wrap(err, "failed to find identity")
		}

		found, err := repoFactory.AccountRepo().FindByID(ctx, identity.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.WithStack(domainerrors.ErrIdentityNotRegistered)
			}

			return errors.Wrap(err, "failed to find account")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve identity")
	}

	return account, nil
}

func (srv *identityService) record(outcome string) {
	if srv.metrics != nil {
		srv.metrics.RecordRegistration(outcome)
	}
}

// shortNameSuffix lengthens claim or email derived names below the minimum length.
const shortNameSuffix = "_player"

// chooseDisplayName walks override, name, nickname, given_name and finally the email local part.
// The override is the caller's own choice and is validated as given; derived names are fitted to the bounds.
func chooseDisplayName(input *usecase.RegisterInput, email string) string {
	if override := strings.TrimSpace(input.NameOverride); override != "" {
		return override
	}

	for _, candidate := range []string{input.Name, input.Nickname, input.GivenName} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return fitName(trimmed)
		}
	}

	local, _, _ := strings.Cut(email, "@")

	return fitName(strings.TrimSpace(local))
}

func fitName(name string) string {
	if utf8.RuneCountInString(name) < entity.AccountNameMinLength {
		name += shortNameSuffix
	}
	if runes := []rune(name); len(runes) > entity.AccountNameMaxLength {
		name = strings.TrimSpace(string(runes[:entity.AccountNameMaxLength]))
	}

	return name
}

func registrationOutcome(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrIdentityAlreadyLinked):
		return service.OutcomeAlreadyLinked
	case errors.Is(err, domainerrors.ErrDuplicateName):
		return service.OutcomeDuplicateName
	case errors.Is(err, domainerrors.ErrDuplicateEmail):
		return service.OutcomeDuplicateEmail
	default:
		return service.OutcomeError
	}
}
