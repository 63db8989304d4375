package ai

import (
	"fmt"

	"meetnotes-backend/pkg/groq"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "groq", "ollama" or "auto"

	// Groq config
	GroqAPIKey string
	GroqModel  string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// DynamicConfig is like Config but with runtime getters for the Ollama
// settings, so the settings API can re-point the local provider live.
type DynamicConfig struct {
	Provider ProviderType

	GroqAPIKey string
	GroqModel  string

	GetOllamaBaseURL func() string
	GetOllamaModel   func() string
}

// NewSummarizerService creates a SummarizerService based on the config.
// This is the factory function - switch AI provider by changing config.Provider
func NewSummarizerService(cfg Config) (SummarizerService, error) {
	switch cfg.Provider {
	case ProviderGroq:
		if cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required for Groq provider")
		}
		return groq.NewGroqService(cfg.GroqAPIKey, cfg.GroqModel), nil

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	default:
		// "auto": Groq with Ollama fallback when a key is available, otherwise Ollama only
		ollama := NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel)
		if cfg.GroqAPIKey != "" {
			return NewFallbackService(groq.NewGroqService(cfg.GroqAPIKey, cfg.GroqModel), ollama), nil
		}
		return ollama, nil
	}
}

// NewSummarizerServiceWithDynamicConfig is the factory variant used by the
// HTTP bootstrap: the Ollama provider reads its settings through getters.
func NewSummarizerServiceWithDynamicConfig(cfg DynamicConfig) (SummarizerService, error) {
	switch cfg.Provider {
	case ProviderGroq:
		if cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required for Groq provider")
		}
		return groq.NewGroqService(cfg.GroqAPIKey, cfg.GroqModel), nil

	case ProviderOllama:
		return NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel), nil

	default:
		ollama := NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel)
		if cfg.GroqAPIKey != "" {
			return NewFallbackService(groq.NewGroqService(cfg.GroqAPIKey, cfg.GroqModel), ollama), nil
		}
		return ollama, nil
	}
}
