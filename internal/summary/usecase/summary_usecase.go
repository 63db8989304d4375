package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	summarydomain "meetnotes-backend/internal/summary/domain"
	"meetnotes-backend/internal/summary/repository"
	"meetnotes-backend/pkg/ai"
	"meetnotes-backend/pkg/config"
	"meetnotes-backend/pkg/docshare"
	"meetnotes-backend/pkg/mailer"
)

// defaultInstruction is used when the caller supplies no prompt
const defaultInstruction = "Summarize this meeting transcript."

// fallbackSummary replaces an empty model response. A blank completion is
// never surfaced as a failure.
const fallbackSummary = "Sorry, I was unable to generate a summary for this transcript. Please try again."

const shareSubject = "Meeting Summary"
const shareBody = "Please find the meeting summary attached as a DOCX file."

const maxPageSize = 200

// summaryUsecase implements SummaryUsecase interface
type summaryUsecase struct {
	summaryRepo  repository.SummaryRepository
	config       *config.Config
	aiService    ai.SummarizerService
	mailer       Mailer
	vectorSearch VectorSearchService
}

// NewSummaryUsecase creates a new instance of summaryUsecase
func NewSummaryUsecase(summaryRepo repository.SummaryRepository, cfg *config.Config) SummaryUsecase {
	return &summaryUsecase{
		summaryRepo: summaryRepo,
		config:      cfg,
	}
}

func (u *summaryUsecase) SetAIService(svc ai.SummarizerService) {
	u.aiService = svc
}

func (u *summaryUsecase) SetMailer(m Mailer) {
	u.mailer = m
}

func (u *summaryUsecase) SetVectorSearchService(svc VectorSearchService) {
	u.vectorSearch = svc
}

func (u *summaryUsecase) Summarize(ctx context.Context, userID, transcript, prompt string) (string, error) {
	if u.aiService == nil {
		return "", errors.New("AI service not configured")
	}

	instruction := strings.TrimSpace(prompt)
	if instruction == "" {
		instruction = defaultInstruction
	}

	summaryText, err := u.aiService.SummarizeTranscript(ctx, transcript, instruction)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(summaryText) == "" {
		summaryText = fallbackSummary
	}

	if u.config.SummarizeAutosave {
		row := &summarydomain.Summary{
			UserID:     userID,
			Transcript: transcript,
			Prompt:     instruction,
			Summary:    summaryText,
			CreatedAt:  time.Now(),
		}
		if err := u.summaryRepo.Create(row); err != nil {
			return "", err
		}
		u.indexSummary(ctx, row)
	}

	return summaryText, nil
}

func (u *summaryUsecase) Save(userID, name, transcript, prompt, summaryText string) (*summarydomain.Summary, error) {
	row := &summarydomain.Summary{
		UserID:     userID,
		Name:       name,
		Transcript: transcript,
		Prompt:     prompt,
		Summary:    summaryText,
		CreatedAt:  time.Now(),
	}

	if err := u.summaryRepo.Create(row); err != nil {
		return nil, err
	}

	u.indexSummary(context.Background(), row)

	return row, nil
}

func (u *summaryUsecase) List(userID string, limit, offset int) ([]*summarydomain.Summary, int64, error) {
	if limit <= 0 {
		limit = u.config.ListPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return u.summaryRepo.FindByUser(userID, limit, offset)
}

func (u *summaryUsecase) Delete(userID string, id uint) error {
	if err := u.summaryRepo.DeleteByIDAndUser(id, userID); err != nil {
		return err
	}

	u.unindexSummary(context.Background(), id)

	return nil
}

func (u *summaryUsecase) Share(ctx context.Context, summaryText string, recipients []string) error {
	if u.mailer == nil {
		return errors.New("mailer not configured")
	}

	doc, err := docshare.RenderSummaryDocx(shareSubject, summaryText)
	if err != nil {
		return fmt.Errorf("failed to render summary document: %w", err)
	}

	attachment := &mailer.Attachment{
		Content:  doc,
		Filename: docshare.DocxFilename,
		Type:     docshare.DocxContentType,
	}

	return u.mailer.Send(ctx, recipients, shareSubject, shareBody, attachment)
}
