package impl

import (
	"context"
	"testing"

	"chess/internal/domain/entity"
	domainerrors "chess/internal/domain/errors"
	"chess/internal/domain/repository"
	mockRepo "chess/internal/mocks/repository"
	"chess/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service   usecase.AccountUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	return accountServiceFixtures{
		service:   NewAccountService(txManager, newDiscardLogger()),
		txManager: txManager,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestAccountService_GetAccount(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		fx := createTestAccountService(t)
		want := &entity.Account{ID: id, Name: "alice"}
		expectTx(t, fx.txManager, func(accounts *mockRepo.MockAccountRepository, _ *mockRepo.MockIdentityRepository) {
			accounts.EXPECT().FindByID(ctx, id).Return(want, nil)
		})

		got, err := fx.service.GetAccount(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestAccountService(t)
		expectTx(t, fx.txManager, func(accounts *mockRepo.MockAccountRepository, _ *mockRepo.MockIdentityRepository) {
			accounts.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)
		})

		_, err := fx.service.GetAccount(ctx, id)

		assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	})
}

func TestAccountService_ListAccounts(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	want := []*entity.Account{{ID: uuid.New(), Name: "alice"}, {ID: uuid.New(), Name: "bob"}}
	expectTx(t, fx.txManager, func(accounts *mockRepo.MockAccountRepository, _ *mockRepo.MockIdentityRepository) {
		accounts.EXPECT().List(ctx).Return(want, nil)
	})

	got, err := fx.service.ListAccounts(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAccountService_UpdateAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()
	caller := &entity.Account{ID: id, Name: "alice", Email: "a@b.com"}
	stored := &entity.Account{ID: id, Name: "alice", Email: "a@b.com"}

	expectTx(t, fx.txManager, func(accounts *mockRepo.MockAccountRepository, _ *mockRepo.MockIdentityRepository) {
		accounts.EXPECT().FindByID(ctx, id).Return(stored, nil)
		accounts.EXPECT().ExistsByName(ctx, "alicia", id).Return(false, nil)
		accounts.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	})

	got, err := fx.service.UpdateAccount(ctx, caller, id, &usecase.UpdateAccountInput{
		Name:  ptr("alicia"),
		Email: ptr("a@b.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "alicia", got.Name)
	assert.Equal(t, "a@b.com", got.Email)
}

func TestAccountService_UpdateAccount_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()
	caller := &entity.Account{ID: id}

	expectTx(t, fx.txManager, func(accounts *mockRepo.MockAccountRepository, _ *mockRepo.MockIdentityRepository) {
		accounts.EXPECT().FindByID(ctx, id).Return(&entity.Account{ID: id, Name: "alice", Email: "a@b.com"}, nil)
		accounts.EXPECT().ExistsByEmail(ctx, "taken@b.com", id).Return(true, nil)
	})

	_, err := fx.service.UpdateAccount(ctx, caller, id, &usecase.UpdateAccountInput{Email: ptr("taken@b.com")})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestAccountService_UpdateAccount_OtherAccountIsForbidden(t *testing.T) {
	fx := createTestAccountService(t)

	// No transaction is expected: the guard rejects before any lookup.
	_, err := fx.service.UpdateAccount(context.Background(), &entity.Account{ID: uuid.New()}, uuid.New(), &usecase.UpdateAccountInput{
		Name: ptr("mallory"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.NotErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_DeleteAccount(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("own account", func(t *testing.T) {
		fx := createTestAccountService(t)
		expectTx(t, fx.txManager, func(accounts *mockRepo.MockAccountRepository, _ *mockRepo.MockIdentityRepository) {
			accounts.EXPECT().Delete(ctx, id).Return(nil)
		})

		assert.NoError(t, fx.service.DeleteAccount(ctx, &entity.Account{ID: id}, id))
	})

	t.Run("other account", func(t *testing.T) {
		fx := createTestAccountService(t)

		err := fx.service.DeleteAccount(ctx, &entity.Account{ID: uuid.New()}, id)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}
