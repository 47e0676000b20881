package services

import (
	"errors"

	"tasknest/tasknest/broker"
	"tasknest/tasknest/database"
	"tasknest/tasknest/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserServiceInterface interface {
	CreateUser(db *database.Database, user models.User) (models.User, error)
	GetUserByEmail(db *database.Database, email string) (models.User, error)
	GetUserById(db *database.Database, id string) (models.User, error)
}

type UserService struct{}

func NewUserService() *UserService {
	return &UserService{}
}

func (s *UserService) CreateUser(db *database.Database, user models.User) (models.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	if err := db.DB.Create(&user).Error; err != nil {
		// The unique index on email closes the check-then-insert race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrEmailExists
		}
		return models.User{}, err
	}

	broker.Publish(broker.UserEventsSubject, broker.UserCreated, map[string]interface{}{
		"user_id": user.ID.String(),
		"email":   user.Email,
	})

	return user, nil
}

func (s *UserService) GetUserByEmail(db *database.Database, email string) (models.User, error) {
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) GetUserById(db *database.Database, id string) (models.User, error) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

var UserServiceInstance UserServiceInterface = &UserService{}
