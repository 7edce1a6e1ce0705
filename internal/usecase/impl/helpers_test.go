package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"usermgmt/internal/domain/repository"
	mockRepo "usermgmt/internal/mocks/repository"
	mockSvc "usermgmt/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testDeps struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	taskRepo  *mockRepo.MockTaskRepository
	hasher    *mockSvc.MockPasswordHasher
	tokens    *mockSvc.MockTokenService
	cache     *mockSvc.MockIdentityCache
	recorder  *mockSvc.MockAuthRecorder
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	return &testDeps{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		taskRepo:  mockRepo.NewMockTaskRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		tokens:    mockSvc.NewMockTokenService(t),
		cache:     mockSvc.NewMockIdentityCache(t),
		recorder:  mockSvc.NewMockAuthRecorder(t),
	}
}

// expectTx runs the transactional callback against the mocked repositories and
// returns whatever the callback returns.
func (d *testDeps) expectTx() {
	d.factory.EXPECT().UserRepo().Return(d.userRepo).Maybe()
	d.factory.EXPECT().TaskRepo().Return(d.taskRepo).Maybe()

	d.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(d.factory)
		})
}

func (d *testDeps) expectAuthAttempt(operation, outcome string) {
	d.recorder.EXPECT().RecordAuthAttempt(operation, outcome).Once()
}
