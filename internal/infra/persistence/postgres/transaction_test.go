package postgres

import (
	"context"
	"testing"

	"usermgmt/internal/domain/entity"
	"usermgmt/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Commit(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectExec(`INSERT INTO "users"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		if _, err := factory.UserRepo().FindByEmail(context.Background(), "jane@example.com"); !errors.Is(err, repository.ErrUserNotFound) {
			return err
		}

		return factory.UserRepo().Create(context.Background(), entity.NewUser("Jane", "jane@example.com", "h"))
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("business rule failed")
	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("boom")
		})
	})
	require.NoError(t, mock.ExpectationsWereMet())
}
