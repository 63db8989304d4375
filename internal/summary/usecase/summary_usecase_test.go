package usecase

import (
	"context"
	"errors"
	"strconv"
	"testing"

	summarydomain "meetnotes-backend/internal/summary/domain"
	"meetnotes-backend/pkg/config"
	"meetnotes-backend/pkg/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory SummaryRepository
type fakeRepo struct {
	rows   []*summarydomain.Summary
	nextID uint
	err    error
}

func (f *fakeRepo) Create(s *summarydomain.Summary) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	s.ID = f.nextID
	f.rows = append(f.rows, s)
	return nil
}

func (f *fakeRepo) FindByUser(userID string, limit, offset int) ([]*summarydomain.Summary, int64, error) {
	var out []*summarydomain.Summary
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	total := int64(len(out))
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeRepo) FindByIDs(userID string, ids []uint) ([]*summarydomain.Summary, error) {
	var out []*summarydomain.Summary
	for _, r := range f.rows {
		if r.UserID != userID {
			continue
		}
		for _, id := range ids {
			if r.ID == id {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteByIDAndUser(id uint, userID string) error {
	for i, r := range f.rows {
		if r.ID == id && r.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeAI returns a canned response and records the last instruction
type fakeAI struct {
	response        string
	err             error
	lastTranscript  string
	lastInstruction string
}

func (f *fakeAI) SummarizeTranscript(ctx context.Context, transcript, instruction string) (string, error) {
	f.lastTranscript = transcript
	f.lastInstruction = instruction
	return f.response, f.err
}

// fakeMailer records the send it received
type fakeMailer struct {
	sends      int
	recipients []string
	subject    string
	body       string
	attachment *mailer.Attachment
	err        error
}

func (f *fakeMailer) Send(ctx context.Context, recipients []string, subject, body string, attachment *mailer.Attachment) error {
	f.sends++
	f.recipients = recipients
	f.subject = subject
	f.body = body
	f.attachment = attachment
	return f.err
}

// fakeVectorSearch is an in-memory search index
type fakeVectorSearch struct {
	indexed map[string]string // summaryID -> text
	results []string
}

func (f *fakeVectorSearch) UpsertSummaryEmbedding(ctx context.Context, summaryID, userID, name, summaryText string) error {
	if f.indexed == nil {
		f.indexed = map[string]string{}
	}
	f.indexed[summaryID] = summaryText
	return nil
}

func (f *fakeVectorSearch) SemanticSearch(ctx context.Context, userID, query string, limit int) ([]string, []float64, error) {
	return f.results, nil, nil
}

func (f *fakeVectorSearch) DeleteSummaryEmbedding(ctx context.Context, summaryID string) error {
	delete(f.indexed, summaryID)
	return nil
}

func newTestUsecase(repo *fakeRepo, cfg *config.Config) *summaryUsecase {
	if cfg == nil {
		cfg = &config.Config{ListPageSize: 50}
	}
	return NewSummaryUsecase(repo, cfg).(*summaryUsecase)
}

func TestSummarizeUsesPromptAndReturnsCompletion(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUsecase(repo, nil)
	svc := &fakeAI{response: "The team will ship on Friday."}
	uc.SetAIService(svc)

	got, err := uc.Summarize(context.Background(), "user-1", "Alice: let's ship Friday.", "List the key points.")
	require.NoError(t, err)
	assert.Equal(t, "The team will ship on Friday.", got)
	assert.Equal(t, "Alice: let's ship Friday.", svc.lastTranscript)
	assert.Equal(t, "List the key points.", svc.lastInstruction)

	// No autosave by default
	assert.Empty(t, repo.rows)
}

func TestSummarizeDefaultsInstructionWhenPromptEmpty(t *testing.T) {
	uc := newTestUsecase(&fakeRepo{}, nil)
	svc := &fakeAI{response: "ok"}
	uc.SetAIService(svc)

	_, err := uc.Summarize(context.Background(), "user-1", "transcript", "   ")
	require.NoError(t, err)
	assert.Equal(t, defaultInstruction, svc.lastInstruction)
}

func TestSummarizeSubstitutesFallbackForEmptyCompletion(t *testing.T) {
	uc := newTestUsecase(&fakeRepo{}, nil)
	uc.SetAIService(&fakeAI{response: "  "})

	got, err := uc.Summarize(context.Background(), "user-1", "Alice: let's ship Friday.", "")
	require.NoError(t, err)
	assert.Equal(t, fallbackSummary, got)
	assert.NotEmpty(t, got)
}

func TestSummarizeAutosavePersistsRow(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUsecase(repo, &config.Config{ListPageSize: 50, SummarizeAutosave: true})
	uc.SetAIService(&fakeAI{response: "saved summary"})

	_, err := uc.Summarize(context.Background(), "user-1", "transcript", "prompt")
	require.NoError(t, err)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, "user-1", repo.rows[0].UserID)
	assert.Equal(t, "saved summary", repo.rows[0].Summary)
}

func TestSummarizePropagatesProviderError(t *testing.T) {
	uc := newTestUsecase(&fakeRepo{}, nil)
	uc.SetAIService(&fakeAI{err: errors.New("upstream down")})

	_, err := uc.Summarize(context.Background(), "user-1", "transcript", "")
	assert.Error(t, err)
}

func TestSaveIndexesSummary(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUsecase(repo, nil)
	vs := &fakeVectorSearch{}
	uc.SetVectorSearchService(vs)

	row, err := uc.Save("user-1", "standup", "transcript", "prompt", "summary text")
	require.NoError(t, err)
	assert.NotZero(t, row.ID)
	assert.False(t, row.CreatedAt.IsZero())

	_, ok := vs.indexed[strconv.FormatUint(uint64(row.ID), 10)]
	assert.True(t, ok)
}

func TestListClampsPageSize(t *testing.T) {
	repo := &fakeRepo{}
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(&summarydomain.Summary{UserID: "user-1"}))
	}
	uc := newTestUsecase(repo, &config.Config{ListPageSize: 2})

	rows, total, err := uc.List("user-1", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, rows, 2)

	rows, _, err = uc.List("user-1", maxPageSize+1, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestDeleteRemovesFromIndex(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUsecase(repo, nil)
	vs := &fakeVectorSearch{}
	uc.SetVectorSearchService(vs)

	row, err := uc.Save("user-1", "", "t", "p", "s")
	require.NoError(t, err)

	require.NoError(t, uc.Delete("user-1", row.ID))
	assert.Empty(t, repo.rows)
	assert.Empty(t, vs.indexed)
}

func TestShareSendsOneBatchWithAttachment(t *testing.T) {
	uc := newTestUsecase(&fakeRepo{}, nil)
	m := &fakeMailer{}
	uc.SetMailer(m)

	err := uc.Share(context.Background(), "The team will ship on Friday.", []string{"a@x.com", "b@x.com"})
	require.NoError(t, err)

	// One send addressing both recipients, not two separate sends
	assert.Equal(t, 1, m.sends)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, m.recipients)
	assert.Equal(t, shareSubject, m.subject)
	assert.Equal(t, shareBody, m.body)

	require.NotNil(t, m.attachment)
	assert.Equal(t, "meeting-summary.docx", m.attachment.Filename)
	assert.NotEmpty(t, m.attachment.Content)
}

func TestShareWithoutMailerFails(t *testing.T) {
	uc := newTestUsecase(&fakeRepo{}, nil)
	err := uc.Share(context.Background(), "summary", []string{"a@x.com"})
	assert.Error(t, err)
}

func TestSearchUnavailableWithoutBackend(t *testing.T) {
	uc := newTestUsecase(&fakeRepo{}, nil)

	_, _, err := uc.Search(context.Background(), "user-1", "shipping", 10)
	assert.ErrorIs(t, err, ErrSearchUnavailable)
}

func TestSearchPreservesBackendRanking(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUsecase(repo, nil)

	a, err := uc.Save("user-1", "a", "t", "p", "about shipping")
	require.NoError(t, err)
	b, err := uc.Save("user-1", "b", "t", "p", "about hiring")
	require.NoError(t, err)

	vs := &fakeVectorSearch{results: []string{
		strconv.FormatUint(uint64(b.ID), 10),
		strconv.FormatUint(uint64(a.ID), 10),
	}}
	uc.SetVectorSearchService(vs)

	rows, total, err := uc.Search(context.Background(), "user-1", "hiring", 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, rows, 2)
	assert.Equal(t, b.ID, rows[0].ID)
	assert.Equal(t, a.ID, rows[1].ID)
}

func TestPresetPrompts(t *testing.T) {
	prompts := PresetPrompts()
	require.Len(t, prompts, 4)

	ids := make([]string, 0, len(prompts))
	for _, p := range prompts {
		ids = append(ids, p.ID)
		assert.NotEmpty(t, p.Prompt)
	}
	assert.Equal(t, []string{"abstract", "key_points", "action_items", "sentiment"}, ids)
}
