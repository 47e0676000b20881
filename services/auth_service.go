package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"tasknest/tasknest/database"
	"tasknest/tasknest/models"
	"tasknest/tasknest/utils/token"

	"golang.org/x/crypto/bcrypt"
)

// Use the JWTClaims from token package
type JWTClaims = token.JWTClaims

type AuthServiceInterface interface {
	Signup(db *database.Database, email, password string) (models.User, string, error)
	Login(db *database.Database, email, password string) (models.User, string, error)
	GoogleSignIn(db *database.Database, email, name, googleID string) (models.User, string, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
	HashPassword(password string) (string, error)
	ComparePasswords(hashedPassword, password string) error
}

type AuthService struct {
	jwtSecret     []byte
	jwtExpiration time.Duration
	users         UserServiceInterface
}

func NewAuthService(jwtSecret string, jwtExpirationHours int, users UserServiceInterface) *AuthService {
	return &AuthService{
		jwtSecret:     []byte(jwtSecret),
		jwtExpiration: time.Duration(jwtExpirationHours) * time.Hour,
		users:         users,
	}
}

// Signup creates a user with a bcrypt-hashed password and issues a token
// for it. A taken email fails with ErrEmailExists.
func (s *AuthService) Signup(db *database.Database, email, password string) (models.User, string, error) {
	if _, err := s.users.GetUserByEmail(db, email); err == nil {
		return models.User{}, "", ErrEmailExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return models.User{}, "", err
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return models.User{}, "", err
	}

	user, err := s.users.CreateUser(db, models.User{Email: email, PasswordHash: hash})
	if err != nil {
		return models.User{}, "", err
	}

	tokenString, err := token.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		return models.User{}, "", err
	}

	return user, tokenString, nil
}

// Login returns ErrInvalidCredentials for both an unknown email and a
// wrong password, so callers cannot enumerate accounts.
func (s *AuthService) Login(db *database.Database, email, password string) (models.User, string, error) {
	user, err := s.users.GetUserByEmail(db, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	if err := s.ComparePasswords(user.PasswordHash, password); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	tokenString, err := token.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		return models.User{}, "", err
	}

	return user, tokenString, nil
}

// GoogleSignIn creates the user on first sign-in and reuses it after
// that. New accounts get a random password they will never use; the
// caller's claimed identity is taken at face value, verifying the
// provider assertion is up to the deployment in front of this API.
func (s *AuthService) GoogleSignIn(db *database.Database, email, name, googleID string) (models.User, string, error) {
	user, err := s.users.GetUserByEmail(db, email)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			return models.User{}, "", err
		}

		password, err := randomPassword()
		if err != nil {
			return models.User{}, "", err
		}
		hash, err := s.HashPassword(password)
		if err != nil {
			return models.User{}, "", err
		}

		user, err = s.users.CreateUser(db, models.User{Email: email, PasswordHash: hash})
		if err != nil {
			return models.User{}, "", err
		}
	}

	tokenString, err := token.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		return models.User{}, "", err
	}

	return user, tokenString, nil
}

// ValidateToken uses the token utility to validate tokens
func (s *AuthService) ValidateToken(tokenString string) (*JWTClaims, error) {
	return token.ValidateToken(tokenString, s.jwtSecret)
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func randomPassword() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

var AuthServiceInstance AuthServiceInterface
