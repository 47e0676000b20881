package routes

import (
	"errors"
	"net/http"

	"tasknest/tasknest/database"
	"tasknest/tasknest/middleware"
	"tasknest/tasknest/models"
	"tasknest/tasknest/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RegisterTaskRoutes(router *gin.Engine, db *database.Database, taskService services.TaskServiceInterface, authService services.AuthServiceInterface) {
	group := router.Group("/users/:id/tasks")
	group.Use(middleware.AuthMiddleware(authService))
	{
		group.GET("", func(c *gin.Context) { GetTasks(c, db, taskService) })
		group.POST("", func(c *gin.Context) { CreateTask(c, db, taskService) })
		group.GET("/:taskId", func(c *gin.Context) { GetTaskById(c, db, taskService) })
		group.PUT("/:taskId", func(c *gin.Context) { UpdateTask(c, db, taskService) })
		group.PATCH("/:taskId/complete", func(c *gin.Context) { CompleteTask(c, db, taskService) })
		group.DELETE("/:taskId", func(c *gin.Context) { DeleteTask(c, db, taskService) })
	}
}

// authorizedUserID enforces the ownership rule shared by every task
// endpoint: the authenticated user may only touch their own path. It
// writes the error response itself and reports whether to continue.
func authorizedUserID(c *gin.Context) (string, bool) {
	userIDInterface, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
		return "", false
	}

	userID, ok := userIDInterface.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return "", false
	}

	if userID.String() != c.Param("id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to access these tasks"})
		return "", false
	}

	return userID.String(), true
}

func GetTasks(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	userID, ok := authorizedUserID(c)
	if !ok {
		return
	}

	tasks, err := taskService.GetTasks(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func CreateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	userID, ok := authorizedUserID(c)
	if !ok {
		return
	}

	var input models.TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := taskService.CreateTask(db, userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}
	c.JSON(http.StatusCreated, task)
}

func GetTaskById(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	userID, ok := authorizedUserID(c)
	if !ok {
		return
	}

	task, err := taskService.GetTaskById(db, userID, c.Param("taskId"))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}
	c.JSON(http.StatusOK, task)
}

func UpdateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	userID, ok := authorizedUserID(c)
	if !ok {
		return
	}

	var input models.TaskUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := taskService.UpdateTask(db, userID, c.Param("taskId"), input)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}
	c.JSON(http.StatusOK, task)
}

func CompleteTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	userID, ok := authorizedUserID(c)
	if !ok {
		return
	}

	var input models.TaskUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := taskService.SetCompleted(db, userID, c.Param("taskId"), input)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}
	c.JSON(http.StatusOK, task)
}

func DeleteTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	userID, ok := authorizedUserID(c)
	if !ok {
		return
	}

	if err := taskService.DeleteTask(db, userID, c.Param("taskId")); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
