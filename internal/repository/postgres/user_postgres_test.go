package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"docshare/internal/model"
	"docshare/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRows = []string{"id", "email", "password", "full_name", "role", "created_at"}

func TestUserPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(userRows).
			AddRow(1, "t1@x.com", "secret", "Teacher One", "teacher", time.Now().UTC())

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("t1@x.com", "secret", "Teacher One", "teacher").
			WillReturnRows(rows)

		user, err := repo.Create(ctx, &model.User{
			Email:    "t1@x.com",
			Password: "secret",
			FullName: "Teacher One",
			Role:     model.RoleTeacher,
		})

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, model.RoleTeacher, user.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email maps to ErrDuplicate", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("t1@x.com", "secret", "Teacher One", "teacher").
			WillReturnError(&pgUniqueErr)

		user, err := repo.Create(ctx, &model.User{
			Email:    "t1@x.com",
			Password: "secret",
			FullName: "Teacher One",
			Role:     model.RoleTeacher,
		})

		assert.ErrorIs(t, err, repository.ErrDuplicate)
		assert.Nil(t, user)
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(userRows).
			AddRow(7, "s1@x.com", "pw", "Student One", "student", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("s1@x.com").
			WillReturnRows(rows)

		user, err := repo.FindByEmail(ctx, "s1@x.com")

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "pw", user.Password)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("missing@x.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.FindByEmail(ctx, "missing@x.com")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, user)
	})
}

func TestUserPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(userRows).
			AddRow(7, "s1@x.com", "pw", "Student One", "student", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = ?").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		user, err := repo.FindByID(ctx, 7)

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(7), user.ID)
	})

	t.Run("generic error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = ?").
			WithArgs(int64(8)).
			WillReturnError(errors.New("connection reset"))

		user, err := repo.FindByID(ctx, 8)

		assert.Error(t, err)
		assert.Nil(t, user)
	})
}
