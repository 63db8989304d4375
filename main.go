package main

import (
	"log"

	api "meetnotes-backend/cmd/api"
	authdomain "meetnotes-backend/internal/auth/domain"
	authRepo "meetnotes-backend/internal/auth/repository"
	authUsecase "meetnotes-backend/internal/auth/usecase"
	summarydomain "meetnotes-backend/internal/summary/domain"
	summaryRepo "meetnotes-backend/internal/summary/repository"
	summaryUsecase "meetnotes-backend/internal/summary/usecase"
	"meetnotes-backend/pkg/config"
	"meetnotes-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &summarydomain.Summary{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	summaryRepository := summaryRepo.NewSummaryRepository(db)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	summaryUsecaseInstance := summaryUsecase.NewSummaryUsecase(summaryRepository, cfg)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, summaryUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
