package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tasknest/tasknest/broker"
	"tasknest/tasknest/config"
	"tasknest/tasknest/database"
	"tasknest/tasknest/middleware"
	"tasknest/tasknest/routes"
	"tasknest/tasknest/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Eventing is best-effort; the API works without a broker.
	if err := broker.InitProducer(cfg.NatsURL); err != nil {
		log.Printf("Warning: Failed to initialize NATS producer: %v", err)
		log.Println("The application will continue without event publishing")
	} else {
		defer broker.CloseProducer()
	}

	userService := services.NewUserService()
	services.UserServiceInstance = userService

	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpirationHours, userService)
	services.AuthServiceInstance = authService

	taskService := services.NewTaskService()
	services.TaskServiceInstance = taskService

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Todo API is running!"})
	})

	routes.RegisterAuthRoutes(router, db, authService)
	routes.RegisterTaskRoutes(router, db, taskService, authService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		broker.CloseProducer()
		db.Close()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
