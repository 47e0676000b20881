package services

import (
	"errors"

	"tasknest/tasknest/broker"
	"tasknest/tasknest/database"
	"tasknest/tasknest/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskServiceInterface interface {
	GetTasks(db *database.Database, userID string) ([]models.Task, error)
	CreateTask(db *database.Database, userID string, input models.TaskInput) (models.Task, error)
	GetTaskById(db *database.Database, userID, id string) (models.Task, error)
	UpdateTask(db *database.Database, userID, id string, input models.TaskUpdate) (models.Task, error)
	SetCompleted(db *database.Database, userID, id string, input models.TaskUpdate) (models.Task, error)
	DeleteTask(db *database.Database, userID, id string) error
}

type TaskService struct{}

func NewTaskService() *TaskService {
	return &TaskService{}
}

func (s *TaskService) GetTasks(db *database.Database, userID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := db.DB.Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) CreateTask(db *database.Database, userID string, input models.TaskInput) (models.Task, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return models.Task{}, ErrInvalidInput
	}

	task := models.Task{
		ID:          uuid.New(),
		UserID:      owner,
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
	}

	if err := db.DB.Create(&task).Error; err != nil {
		return models.Task{}, err
	}

	broker.Publish(broker.TaskEventsSubject, broker.TaskCreated, map[string]interface{}{
		"task_id":   task.ID.String(),
		"user_id":   task.UserID.String(),
		"title":     task.Title,
		"completed": task.Completed,
	})

	return task, nil
}

// GetTaskById filters on task id and owner id together, so a task owned
// by a different user looks exactly like a missing one.
func (s *TaskService) GetTaskById(db *database.Database, userID, id string) (models.Task, error) {
	var task models.Task
	if err := db.DB.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	return task, nil
}

func (s *TaskService) UpdateTask(db *database.Database, userID, id string, input models.TaskUpdate) (models.Task, error) {
	task, err := s.GetTaskById(db, userID, id)
	if err != nil {
		return models.Task{}, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	if err := db.DB.Save(&task).Error; err != nil {
		return models.Task{}, err
	}

	broker.Publish(broker.TaskEventsSubject, broker.TaskUpdated, map[string]interface{}{
		"task_id":   task.ID.String(),
		"user_id":   task.UserID.String(),
		"title":     task.Title,
		"completed": task.Completed,
	})

	return task, nil
}

func (s *TaskService) SetCompleted(db *database.Database, userID, id string, input models.TaskUpdate) (models.Task, error) {
	task, err := s.GetTaskById(db, userID, id)
	if err != nil {
		return models.Task{}, err
	}

	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	if err := db.DB.Save(&task).Error; err != nil {
		return models.Task{}, err
	}

	broker.Publish(broker.TaskEventsSubject, broker.TaskUpdated, map[string]interface{}{
		"task_id":   task.ID.String(),
		"user_id":   task.UserID.String(),
		"completed": task.Completed,
	})

	return task, nil
}

func (s *TaskService) DeleteTask(db *database.Database, userID, id string) error {
	task, err := s.GetTaskById(db, userID, id)
	if err != nil {
		return err
	}

	if err := db.DB.Delete(&task).Error; err != nil {
		return err
	}

	broker.Publish(broker.TaskEventsSubject, broker.TaskDeleted, map[string]interface{}{
		"task_id": task.ID.String(),
		"user_id": task.UserID.String(),
	})

	return nil
}

var TaskServiceInstance TaskServiceInterface = &TaskService{}
