package ai

import "context"

// SummarizerService is the interface for AI transcript summarization.
// Implement this interface to add new AI providers (Groq, Ollama, etc.)
type SummarizerService interface {
	// SummarizeTranscript produces a summary of a meeting transcript,
	// guided by the given instruction. An empty result with a nil error
	// means the model returned no content.
	SummarizeTranscript(ctx context.Context, transcript, instruction string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGroq   ProviderType = "groq"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
