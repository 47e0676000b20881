package services

import (
	"testing"

	"tasknest/tasknest/models"
	"tasknest/tasknest/testutils"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCreateUser_Success(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	userService := &UserService{}
	user, err := userService.CreateUser(db, models.User{
		Email:        "test@example.com",
		PasswordHash: "hashed",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	userService := &UserService{}
	_, err := userService.CreateUser(db, models.User{Email: "dup@example.com", PasswordHash: "h1"})
	assert.NoError(t, err)

	_, err = userService.CreateUser(db, models.User{Email: "dup@example.com", PasswordHash: "h2"})
	assert.ErrorIs(t, err, ErrEmailExists)

	// The failed insert must not leave a second row behind.
	var count int64
	assert.NoError(t, db.DB.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetUserByEmail(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	userService := &UserService{}
	created, err := userService.CreateUser(db, models.User{Email: "find@example.com", PasswordHash: "h"})
	assert.NoError(t, err)

	found, err := userService.GetUserByEmail(db, "find@example.com")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = userService.GetUserByEmail(db, "missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserById_NotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery("SELECT (.+) FROM \"users\" WHERE id = \\$1 ORDER BY \"users\".\"id\" LIMIT \\$2").
		WithArgs("non-existent-id", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	userService := &UserService{}
	_, err := userService.GetUserById(db, "non-existent-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserById_Success(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	userService := &UserService{}
	created, err := userService.CreateUser(db, models.User{Email: "byid@example.com", PasswordHash: "h"})
	assert.NoError(t, err)

	found, err := userService.GetUserById(db, created.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, created.Email, found.Email)
}
