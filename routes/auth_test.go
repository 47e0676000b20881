package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tasknest/tasknest/database"
	"tasknest/tasknest/models"
	"tasknest/tasknest/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var (
	testUserID = uuid.Must(uuid.Parse("123e4567-e89b-12d3-a456-426614174000"))
	testUser   = models.User{
		ID:        testUserID,
		Email:     "test@example.com",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
)

// Mock authentication service for testing
type MockAuthService struct{}

func (m *MockAuthService) Signup(db *database.Database, email, password string) (models.User, string, error) {
	if email == "taken@example.com" {
		return models.User{}, "", services.ErrEmailExists
	}
	user := testUser
	user.Email = email
	return user, "mock.jwt.token", nil
}

func (m *MockAuthService) Login(db *database.Database, email, password string) (models.User, string, error) {
	if email == "test@example.com" && password == "password123" {
		return testUser, "mock.jwt.token", nil
	}
	return models.User{}, "", services.ErrInvalidCredentials
}

func (m *MockAuthService) GoogleSignIn(db *database.Database, email, name, googleID string) (models.User, string, error) {
	user := testUser
	user.Email = email
	return user, "mock.jwt.token", nil
}

func (m *MockAuthService) ValidateToken(tokenString string) (*services.JWTClaims, error) {
	if tokenString != "mock.jwt.token" {
		return nil, services.ErrInvalidToken
	}
	return &services.JWTClaims{
		UserID: testUserID,
		Email:  "test@example.com",
	}, nil
}

func (m *MockAuthService) HashPassword(password string) (string, error) {
	return "hashed-" + password, nil
}

func (m *MockAuthService) ComparePasswords(hashedPassword, password string) error {
	return nil
}

func setupAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	db := &database.Database{}
	RegisterAuthRoutes(router, db, &MockAuthService{})
	return router
}

func TestSignupRoute(t *testing.T) {
	router := setupAuthTestRouter()

	t.Run("Signup with Valid Input", func(t *testing.T) {
		w := httptest.NewRecorder()
		reqBody := `{"email":"new@example.com","password":"password123"}`
		req, _ := http.NewRequest("POST", "/signup", bytes.NewBufferString(reqBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "new@example.com")
		assert.Contains(t, w.Body.String(), "access_token")
		assert.Contains(t, w.Body.String(), "bearer")
	})

	t.Run("Signup with Duplicate Email", func(t *testing.T) {
		w := httptest.NewRecorder()
		reqBody := `{"email":"taken@example.com","password":"password123"}`
		req, _ := http.NewRequest("POST", "/signup", bytes.NewBufferString(reqBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Email already registered")
	})

	t.Run("Signup with Missing Password", func(t *testing.T) {
		w := httptest.NewRecorder()
		reqBody := `{"email":"new@example.com"}`
		req, _ := http.NewRequest("POST", "/signup", bytes.NewBufferString(reqBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Signup with Invalid Email", func(t *testing.T) {
		w := httptest.NewRecorder()
		reqBody := `{"email":"not-an-email","password":"password123"}`
		req, _ := http.NewRequest("POST", "/signup", bytes.NewBufferString(reqBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginRoute(t *testing.T) {
	router := setupAuthTestRouter()

	t.Run("Login with Valid Credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		reqBody := `{"email":"test@example.com","password":"password123"}`
		req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString(reqBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "access_token")
		assert.Contains(t, w.Body.String(), "user_id")
	})

	t.Run("Login Failures Share One Error Shape", func(t *testing.T) {
		wrongPassword := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString(`{"email":"test@example.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(wrongPassword, req)

		unknownEmail := httptest.NewRecorder()
		req, _ = http.NewRequest("POST", "/login", bytes.NewBufferString(`{"email":"nobody@example.com","password":"password123"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(unknownEmail, req)

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	})

	t.Run("Login with Invalid JSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString(`invalid json`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGoogleSignInRoute(t *testing.T) {
	router := setupAuthTestRouter()

	t.Run("Google Sign-In Succeeds", func(t *testing.T) {
		w := httptest.NewRecorder()
		reqBody := `{"email":"b@x.com","name":"B Example","google_id":"google-123"}`
		req, _ := http.NewRequest("POST", "/google-signin", bytes.NewBufferString(reqBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "access_token")
		assert.Contains(t, w.Body.String(), "b@x.com")
	})

	t.Run("Google Sign-In with Missing Provider ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		reqBody := `{"email":"b@x.com","name":"B Example"}`
		req, _ := http.NewRequest("POST", "/google-signin", bytes.NewBufferString(reqBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
