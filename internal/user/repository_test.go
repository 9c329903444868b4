package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "name", "email", "password_hash", "role", "created_at", "updated_at"}

func TestGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, name, email, password_hash, role, created_at, updated_at FROM users WHERE email = \$1`).
		WithArgs("admin@bakery.local").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "Admin", "admin@bakery.local", "hash", RoleAdmin, now, now))

	repo := NewRepository(db)
	u, err := repo.GetByEmail(context.Background(), "admin@bakery.local")
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.ID)
	assert.Equal(t, RoleAdmin, u.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM users WHERE email = \$1`).
		WithArgs("nobody@bakery.local").
		WillReturnRows(sqlmock.NewRows(userColumns))

	repo := NewRepository(db)
	_, err = repo.GetByEmail(context.Background(), "nobody@bakery.local")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Admin", "admin@bakery.local", "hash", RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewRepository(db)
	err = repo.Create(context.Background(), &User{
		Name:         "Admin",
		Email:        "admin@bakery.local",
		PasswordHash: "hash",
		Role:         RoleAdmin,
	})
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
