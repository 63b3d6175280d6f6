package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storefront-api/models"
)

func testUser(email, password string) *models.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &models.User{
		ID:       "u1",
		Name:     "Test User",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleUser,
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Run("new account created with hashed password", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

		svc := NewAuthService(users)
		user, err := svc.Register(context.Background(), "New User", "New@Example.com ", "pass123")

		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, models.RoleUser, user.Role)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "pass123", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pass123")))
		users.AssertExpectations(t)
	})

	t.Run("existing email rejected before create", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "taken@example.com").Return(testUser("taken@example.com", "pass123"), nil)

		svc := NewAuthService(users)
		user, err := svc.Register(context.Background(), "Other", "taken@example.com", "pass456")

		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Nil(t, user)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate key at create reported as taken", func(t *testing.T) {
		// A concurrent registration can slip between the lookup and the
		// insert; the unique index then fails the insert.
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "race@example.com").Return(nil, nil)
		users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(gorm.ErrDuplicatedKey)

		svc := NewAuthService(users)
		user, err := svc.Register(context.Background(), "Racer", "race@example.com", "pass123")

		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Nil(t, user)
		users.AssertExpectations(t)
	})

	t.Run("other create failures pass through", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(dbErr)

		svc := NewAuthService(users)
		_, err := svc.Register(context.Background(), "New User", "new@example.com", "pass123")

		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("valid credentials return the user", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "me@example.com").Return(testUser("me@example.com", "pass123"), nil)

		svc := NewAuthService(users)
		user, err := svc.Login(context.Background(), " Me@Example.com", "pass123")

		assert.NoError(t, err)
		assert.Equal(t, "me@example.com", user.Email)
	})

	t.Run("unknown email rejected", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		svc := NewAuthService(users)
		user, err := svc.Login(context.Background(), "ghost@example.com", "pass123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, user)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "me@example.com").Return(testUser("me@example.com", "pass123"), nil)

		svc := NewAuthService(users)
		user, err := svc.Login(context.Background(), "me@example.com", "wrong99")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, user)
	})
}
