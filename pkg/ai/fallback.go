package ai

import (
	"context"
	"fmt"
	"log"
	"net"
	"strings"
)

// FallbackService routes summarization across providers:
// Groq first (hosted, fast), falling back to Ollama on connection or quota errors.
type FallbackService struct {
	groq   SummarizerService
	ollama *OllamaService
}

// NewFallbackService creates a new fallback service with both providers
func NewFallbackService(groq SummarizerService, ollama *OllamaService) *FallbackService {
	return &FallbackService{
		groq:   groq,
		ollama: ollama,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	}

	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	quotaIndicators := []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
	}

	for _, indicator := range quotaIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// SummarizeTranscript tries Groq first, falls back to Ollama on connection or quota error
func (f *FallbackService) SummarizeTranscript(ctx context.Context, transcript, instruction string) (string, error) {
	if f.groq != nil {
		result, err := f.groq.SummarizeTranscript(ctx, transcript, instruction)
		if err == nil {
			return result, nil
		}

		if isQuotaError(err) {
			log.Printf("[AI] Groq quota exhausted: %v, falling back to Ollama", err)
		} else if isConnectionError(err) {
			log.Printf("[AI] Groq connection failed: %v, falling back to Ollama", err)
		} else {
			log.Printf("[AI] Groq error: %v, falling back to Ollama", err)
		}
	}

	if f.ollama != nil {
		result, err := f.ollama.SummarizeTranscript(ctx, transcript, instruction)
		if err == nil {
			return result, nil
		}
		return "", fmt.Errorf("ollama summarization failed: %w", err)
	}

	return "", fmt.Errorf("no AI provider available for summarization")
}
