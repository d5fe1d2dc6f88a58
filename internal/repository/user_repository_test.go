package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"portfolio-api/internal/model"
)

func newTestRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return NewUserRepository(gdb), mock
}

func userRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(1, "alice", "a@x.com", "$2a$10$hash", now, now)
}

func TestCreate(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	user := &model.User{Username: "alice", Email: "a@x.com", PasswordHash: "$2a$10$hash"}
	require.NoError(t, repo.Create(user))
	assert.Equal(t, uint(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateKey(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&mysqldrv.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'idx_users_username'"})
	mock.ExpectRollback()

	err := repo.Create(&model.User{Username: "alice", Email: "other@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrDuplicateUser)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UnexpectedError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(errors.New("connection refused"))
	mock.ExpectRollback()

	err := repo.Create(&model.User{Username: "alice", Email: "a@x.com", PasswordHash: "h"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateUser)
	assert.Contains(t, err.Error(), "create user failed")
}

func TestGetByUsername(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE username = (.+)").
		WillReturnRows(userRows())

	user, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE username = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}))

	user, err := repo.GetByUsername("ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetByUsernameOrEmail(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE username = (.+) OR email = (.+)").
		WillReturnRows(userRows())

	user, err := repo.GetByUsernameOrEmail("alice", "unused@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(1), user.ID)
}

func TestGetByUsernameOrEmail_QueryError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE username = (.+) OR email = (.+)").
		WillReturnError(errors.New("server has gone away"))

	_, err := repo.GetByUsernameOrEmail("alice", "a@x.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query user by username or email failed")
}

func TestGetByID(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE `users`.`id` = (.+)").
		WillReturnRows(userRows())

	user, err := repo.GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE `users`.`id` = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}))

	user, err := repo.GetByID(404)
	require.NoError(t, err)
	assert.Nil(t, user)
}
