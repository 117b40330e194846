package impl

import (
	"context"
	"strings"
	"testing"

	"chess/internal/domain/entity"
	domainerrors "chess/internal/domain/errors"
	"chess/internal/domain/repository"
	"chess/internal/domain/service"
	mockRepo "chess/internal/mocks/repository"
	mockService "chess/internal/mocks/service"
	"chess/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type identityServiceFixtures struct {
	service   usecase.IdentityUsecase
	txManager *mockRepo.MockTransactionManager
	metrics   *mockService.MockMetricsRecorder
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	metrics := mockService.NewMockMetricsRecorder(t)

	return identityServiceFixtures{
		service: NewIdentityService(IdentityServiceParams{
			TxManager: txManager,
			Metrics:   metrics,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		metrics:   metrics,
	}
}

func TestIdentityService_ResolveOrRegister_Success(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	accountID := uuid.New()

	expectTx(t, fx.txManager, func(accounts *mockRepo.MockAccountRepository, identities *mockRepo.MockIdentityRepository) {
		identities.EXPECT().LockSubject(ctx, "auth0|x").Return(nil)
		identities.EXPECT().ExistsBySubject(ctx, "auth0|x").Return(false, nil)
		accounts.EXPECT().ExistsByName(ctx, "alice", uuid.Nil).Return(false, nil)
		accounts.EXPECT().ExistsByEmail(ctx, "a@b.com", uuid.Nil).Return(false, nil)
		accounts.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
			Run(func(_ context.Context, account *entity.Account) {
				account.ID = accountID
			}).
			Return(nil)
		identities.EXPECT().Create(ctx, &entity.Identity{Subject: "auth0|x", AccountID: accountID}).Return(nil)
	})
	fx.metrics.EXPECT().RecordRegistration(service.OutcomeRegistered).Return()

	account, err := fx.service.ResolveOrRegister(ctx, &usecase.RegisterInput{
		Subject: "auth0|x",
		Email:   "a@b.com",
		Name:    "alice",
	})

	require.NoError(t, err)
	assert.Equal(t, accountID, account.ID)
	assert.Equal(t, "alice", account.Name)
	assert.Equal(t, "a@b.com", account.Email)
}

func TestIdentityService_ResolveOrRegister_SecondCallAlreadyLinked(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Subject: "auth0|x", Email: "a@b.com"}
	linked := false

	for range 2 {
		expectTx(t, fx.txManager, func(accounts *mockRepo.MockAccountRepository, identities *mockRepo.MockIdentityRepository) {
			identities.EXPECT().LockSubject(ctx, "auth0|x").Return(nil)
			identities.EXPECT().ExistsBySubject(ctx, "auth0|x").RunAndReturn(func(context.Context, string) (bool, error) {
				return linked, nil
			})
			accounts.EXPECT().ExistsByName(ctx, "a_player", uuid.Nil).Return(false, nil).Maybe()
			accounts.EXPECT().ExistsByEmail(ctx, "a@b.com", uuid.Nil).Return(false, nil).Maybe()
			accounts.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil).Maybe()
			identities.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Identity")).
				RunAndReturn(func(context.Context, *entity.Identity) error {
					linked = true

					return nil
				}).Maybe()
		})
	}
	fx.metrics.EXPECT().RecordRegistration(service.OutcomeRegistered).Return().Once()
	fx.metrics.EXPECT().RecordRegistration(service.OutcomeAlreadyLinked).Return().Once()

	first, err := fx.service.ResolveOrRegister(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "a_player", first.Name)

	second, err := fx.service.ResolveOrRegister(ctx, input)
	assert.Nil(t, second)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityAlreadyLinked)
}

func TestIdentityService_ResolveOrRegister_DuplicateName(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(accounts *mockRepo.MockAccountRepository, identities *mockRepo.MockIdentityRepository) {
		identities.EXPECT().LockSubject(ctx, "auth0|y").Return(nil)
		identities.EXPECT().ExistsBySubject(ctx, "auth0|y").Return(false, nil)
		accounts.EXPECT().ExistsByName(ctx, "magnus", uuid.Nil).Return(true, nil)
	})
	fx.metrics.EXPECT().RecordRegistration(service.OutcomeDuplicateName).Return()

	account, err := fx.service.ResolveOrRegister(ctx, &usecase.RegisterInput{
		Subject:      "auth0|y",
		Email:        "y@b.com",
		NameOverride: "magnus",
	})

	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateName)
}

func TestIdentityService_ResolveOrRegister_DuplicateEmail(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(accounts *mockRepo.MockAccountRepository, identities *mockRepo.MockIdentityRepository) {
		identities.EXPECT().LockSubject(ctx, "auth0|y").Return(nil)
		identities.EXPECT().ExistsBySubject(ctx, "auth0|y").Return(false, nil)
		accounts.EXPECT().ExistsByName(ctx, "yan", uuid.Nil).Return(false, nil)
		accounts.EXPECT().ExistsByEmail(ctx, "y@b.com", uuid.Nil).Return(true, nil)
	})
	fx.metrics.EXPECT().RecordRegistration(service.OutcomeDuplicateEmail).Return()

	_, err := fx.service.ResolveOrRegister(ctx, &usecase.RegisterInput{
		Subject:  "auth0|y",
		Email:    "y@b.com",
		Nickname: "yan",
	})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestIdentityService_ResolveOrRegister_ConstraintViolationAtInsert(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	// The pre-checks pass but a concurrent registration wins the insert.
	expectTx(t, fx.txManager, func(accounts *mockRepo.MockAccountRepository, identities *mockRepo.MockIdentityRepository) {
		identities.EXPECT().LockSubject(ctx, "auth0|z").Return(nil)
		identities.EXPECT().ExistsBySubject(ctx, "auth0|z").Return(false, nil)
		accounts.EXPECT().ExistsByName(ctx, "zed", uuid.Nil).Return(false, nil)
		accounts.EXPECT().ExistsByEmail(ctx, "z@b.com", uuid.Nil).Return(false, nil)
		accounts.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
		identities.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Identity")).
			Return(domainerrors.ErrIdentityAlreadyLinked.WrapMessage("subject already linked"))
	})
	fx.metrics.EXPECT().RecordRegistration(service.OutcomeAlreadyLinked).Return()

	_, err := fx.service.ResolveOrRegister(ctx, &usecase.RegisterInput{
		Subject:   "auth0|z",
		Email:     "z@b.com",
		GivenName: "zed",
	})

	assert.ErrorIs(t, err, domainerrors.ErrIdentityAlreadyLinked)
}

func TestIdentityService_ResolveOrRegister_MissingEmail(t *testing.T) {
	fx := createTestIdentityService(t)
	fx.metrics.EXPECT().RecordRegistration(service.OutcomeInvalid).Return()

	_, err := fx.service.ResolveOrRegister(context.Background(), &usecase.RegisterInput{Subject: "auth0|x", Name: "alice"})

	assert.ErrorIs(t, err, domainerrors.ErrMissingEmailClaim)
}

func TestIdentityService_ResolveOrRegister_InvalidName(t *testing.T) {
	fx := createTestIdentityService(t)
	fx.metrics.EXPECT().RecordRegistration(service.OutcomeInvalid).Return()

	_, err := fx.service.ResolveOrRegister(context.Background(), &usecase.RegisterInput{
		Subject:      "auth0|x",
		Email:        "a@b.com",
		NameOverride: "x",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestChooseDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
		want  string
	}{
		{name: "override wins", input: usecase.RegisterInput{NameOverride: "Custom", Name: "Claim"}, want: "Custom"},
		{name: "name claim", input: usecase.RegisterInput{Name: "Claim", Nickname: "nick"}, want: "Claim"},
		{name: "nickname", input: usecase.RegisterInput{Nickname: "nick", GivenName: "Given"}, want: "nick"},
		{name: "given name", input: usecase.RegisterInput{GivenName: "Given"}, want: "Given"},
		{name: "blank claims skipped", input: usecase.RegisterInput{Name: "  ", GivenName: "Given"}, want: "Given"},
		{name: "email local part", input: usecase.RegisterInput{}, want: "player"},
		{name: "long claim truncated", input: usecase.RegisterInput{Name: strings.Repeat("n", 60)}, want: strings.Repeat("n", 50)},
		{name: "short claim lengthened", input: usecase.RegisterInput{Nickname: "z"}, want: "z_player"},
		{name: "override kept as given", input: usecase.RegisterInput{NameOverride: "x"}, want: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chooseDisplayName(&tt.input, "player@chess.example"))
		})
	}

	t.Run("one letter email local part", func(t *testing.T) {
		got := chooseDisplayName(&usecase.RegisterInput{}, "a@b.com")

		assert.Equal(t, "a_player", got)
		assert.True(t, entity.ValidName(got))
	})
}

func TestIdentityService_ResolveExisting(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	t.Run("linked subject", func(t *testing.T) {
		fx := createTestIdentityService(t)
		want := &entity.Account{ID: accountID, Name: "alice"}
		expectTx(t, fx.txManager, func(accounts *mockRepo.MockAccountRepository, identities *mockRepo.MockIdentityRepository) {
			identities.EXPECT().FindBySubject(ctx, "auth0|x").Return(&entity.Identity{Subject: "auth0|x", AccountID: accountID}, nil)
			accounts.EXPECT().FindByID(ctx, accountID).Return(want, nil)
		})

		got, err := fx.service.ResolveExisting(ctx, "auth0|x")

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown subject is not registered", func(t *testing.T) {
		fx := createTestIdentityService(t)
		expectTx(t, fx.txManager, func(_ *mockRepo.MockAccountRepository, identities *mockRepo.MockIdentityRepository) {
			identities.EXPECT().FindBySubject(ctx, "auth0|nobody").Return(nil, repository.ErrIdentityNotFound)
		})

		got, err := fx.service.ResolveExisting(ctx, "auth0|nobody")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domainerrors.ErrIdentityNotRegistered)
	})

	t.Run("storage failure is not masked", func(t *testing.T) {
		fx := createTestIdentityService(t)
		expectTx(t, fx.txManager, func(_ *mockRepo.MockAccountRepository, identities *mockRepo.MockIdentityRepository) {
			identities.EXPECT().FindBySubject(ctx, "auth0|x").Return(nil, errors.New("connection reset"))
		})

		_, err := fx.service.ResolveExisting(ctx, "auth0|x")

		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrIdentityNotRegistered)
		assert.Contains(t, err.Error(), "connection reset")
	})
}
