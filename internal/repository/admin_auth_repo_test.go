package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByEmail(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewAdminAuthRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("FROM admins WHERE email = $1")).
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash"}).AddRow(1, "admin@example.com", "hash"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM admins WHERE email = $1")).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	admin, err := repo.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, &Admin{ID: 1, Email: "admin@example.com", PasswordHash: "hash"}, admin)

	admin, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, admin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNewUserDuplicate(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewAdminAuthRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO admins")).
		WithArgs("admin@example.com", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: uniqueViolation})

	err := repo.CreateNewUser(context.Background(), "admin@example.com", "secret")
	assert.ErrorIs(t, err, ErrAdminExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
