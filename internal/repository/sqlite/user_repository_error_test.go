package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-admin/internal/domain"
)

// driver failures must surface as wrapped errors, never as panics or
// silent successes

func TestCreatePropagatesDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectExec("INSERT INTO users").WillReturnError(boom)

	repo := NewUserRepository(db)
	_, err = repo.Create(context.Background(), &domain.User{Username: "a", Email: "a@x.com"})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmailPropagatesDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery("SELECT id, username, email, password").WillReturnError(boom)

	repo := NewUserRepository(db)
	_, err = repo.GetByEmail(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPropagatesDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery("SELECT id, username, email").WillReturnError(boom)

	repo := NewUserRepository(db)
	_, err = repo.List(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePropagatesDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectExec("UPDATE users").WillReturnError(boom)

	repo := NewUserRepository(db)
	assert.ErrorIs(t, repo.Update(context.Background(), 1, "a", "a@x.com"), boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePropagatesDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectExec("DELETE FROM users").WillReturnError(boom)

	repo := NewUserRepository(db)
	assert.ErrorIs(t, repo.Delete(context.Background(), 1), boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
