package api

import (
	"log"

	authUsecase "meetnotes-backend/internal/auth/usecase"
	summaryDelivery "meetnotes-backend/internal/summary/delivery"
	summaryUsecasePkg "meetnotes-backend/internal/summary/usecase"
	"meetnotes-backend/pkg/ai"
	"meetnotes-backend/pkg/chroma"
	"meetnotes-backend/pkg/config"
	"meetnotes-backend/pkg/mailer"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	summaryUsecase summaryUsecasePkg.SummaryUsecase
	config         *config.Config
	summaryHandler *summaryDelivery.SummaryHandler
}

func NewHandler(authUc authUsecase.AuthUsecase, summaryUc summaryUsecasePkg.SummaryUsecase, cfg *config.Config) *Handler {
	// Initialize runtime config for settings API
	InitRuntimeConfig(cfg.OllamaBaseURL, cfg.OllamaModel)

	// Initialize AI service with dynamic config getters for runtime updates
	aiCfg := ai.DynamicConfig{
		Provider:         ai.ProviderType(cfg.AIProvider),
		GroqAPIKey:       cfg.GroqAPIKey,
		GroqModel:        cfg.GroqModel,
		GetOllamaBaseURL: GetRuntimeOllamaBaseURL,
		GetOllamaModel:   GetRuntimeOllamaModel,
	}
	aiService, err := ai.NewSummarizerServiceWithDynamicConfig(aiCfg)
	if err != nil {
		log.Printf("Warning: Failed to initialize AI service: %v", err)
	} else {
		log.Printf("AI service initialized with provider: %s (dynamic config enabled)", cfg.AIProvider)
		summaryUc.SetAIService(aiService)
	}

	// Initialize SendGrid mailer for the share flow
	if cfg.SendGridAPIKey != "" && cfg.SendGridFromEmail != "" {
		summaryUc.SetMailer(mailer.NewService(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.SendGridFromName))
		log.Println("SendGrid mailer initialized")
	} else {
		log.Println("Warning: SENDGRID_API_KEY or SENDGRID_FROM_EMAIL not set. Sharing by email will not be available.")
	}

	// Initialize Chroma client for semantic search
	if cfg.ChromaAPIKey != "" {
		chromaClient, err := chroma.NewChromaClient(cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize Chroma client: %v. Semantic search will not be available.", err)
		} else {
			summaryUc.SetVectorSearchService(chromaClient)
			log.Println("Chroma client initialized successfully")
		}
	} else {
		log.Println("Warning: CHROMA_API_KEY not set. Semantic search will not be available.")
	}

	summaryHandler := summaryDelivery.NewSummaryHandler(summaryUc)

	return &Handler{
		authUsecase:    authUc,
		summaryUsecase: summaryUc,
		config:         cfg,
		summaryHandler: summaryHandler,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.summaryHandler)

	return r.Run(addr)
}
