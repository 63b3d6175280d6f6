package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront-api/models"
	"storefront-api/services"
)

type stubUserRepository struct {
	mock.Mock
}

func (m *stubUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *stubUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func registerRequest(t *testing.T, users services.UserRepository, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", RegisterHandler(services.NewAuthService(users)))

	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler_Created(t *testing.T) {
	users := new(stubUserRepository)
	users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	w := registerRequest(t, users, RegisterInput{Name: "New User", Email: "new@example.com", Password: "pass123"})

	assert.Equal(t, http.StatusCreated, w.Code)
	users.AssertExpectations(t)
}

func TestRegisterHandler_DuplicateEmailConflict(t *testing.T) {
	users := new(stubUserRepository)
	users.On("FindByEmail", mock.Anything, "taken@example.com").
		Return(&models.User{ID: "u1", Email: "taken@example.com"}, nil)

	w := registerRequest(t, users, RegisterInput{Name: "Other", Email: "Taken@Example.com", Password: "pass123"})

	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User already exists", body["error"])
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterHandler_WeakPasswordRejected(t *testing.T) {
	users := new(stubUserRepository)

	w := registerRequest(t, users, RegisterInput{Name: "New User", Email: "new@example.com", Password: "abcdef"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}
