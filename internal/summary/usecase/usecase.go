package usecase

import (
	"context"
	"errors"

	summarydomain "meetnotes-backend/internal/summary/domain"
	"meetnotes-backend/pkg/ai"
	"meetnotes-backend/pkg/mailer"
)

// ErrSearchUnavailable is returned when no vector search backend is configured
var ErrSearchUnavailable = errors.New("vector search not available")

// Mailer dispatches one message to a list of recipients in a single send
type Mailer interface {
	Send(ctx context.Context, recipients []string, subject, body string, attachment *mailer.Attachment) error
}

// SummaryUsecase defines the summary operations exposed to delivery
type SummaryUsecase interface {
	// Summarize generates a summary of the transcript, guided by the prompt.
	// An empty model response yields a fixed fallback string, never an error.
	Summarize(ctx context.Context, userID, transcript, prompt string) (string, error)
	// Save persists a named summary owned by the caller
	Save(userID, name, transcript, prompt, summaryText string) (*summarydomain.Summary, error)
	// List returns one page of the caller's summaries, newest first
	List(userID string, limit, offset int) ([]*summarydomain.Summary, int64, error)
	// Delete removes the caller's summary; unknown or cross-owner ids succeed silently
	Delete(userID string, id uint) error
	// Share renders the summary as a .docx and emails it to all recipients at once
	Share(ctx context.Context, summaryText string, recipients []string) error
	// Search finds the caller's summaries semantically closest to the query
	Search(ctx context.Context, userID, query string, limit int) ([]*summarydomain.Summary, int, error)

	SetAIService(svc ai.SummarizerService)
	SetMailer(m Mailer)
	SetVectorSearchService(svc VectorSearchService)
}
