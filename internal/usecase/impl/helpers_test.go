package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"chess/internal/domain/repository"
	mockRepo "chess/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes txManager run the callback against fresh repository mocks
// and return whatever the callback returns.
func expectTx(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	setup func(accounts *mockRepo.MockAccountRepository, identities *mockRepo.MockIdentityRepository),
) {
	t.Helper()

	accounts := mockRepo.NewMockAccountRepository(t)
	identities := mockRepo.NewMockIdentityRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(accounts).Maybe()
	factory.EXPECT().IdentityRepo().Return(identities).Maybe()

	setup(accounts, identities)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}
