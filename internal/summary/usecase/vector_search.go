package usecase

import (
	"context"
	"log"
	"strconv"
	"strings"

	summarydomain "meetnotes-backend/internal/summary/domain"
)

// VectorSearchService interface for vector search operations
type VectorSearchService interface {
	UpsertSummaryEmbedding(ctx context.Context, summaryID, userID, name, summaryText string) error
	SemanticSearch(ctx context.Context, userID, query string, limit int) ([]string, []float64, error)
	DeleteSummaryEmbedding(ctx context.Context, summaryID string) error
}

// Search performs semantic search over the caller's saved summaries
func (u *summaryUsecase) Search(ctx context.Context, userID, query string, limit int) ([]*summarydomain.Summary, int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*summarydomain.Summary{}, 0, nil
	}

	if u.vectorSearch == nil {
		return nil, 0, ErrSearchUnavailable
	}

	if limit <= 0 || limit > maxPageSize {
		limit = 10
	}

	summaryIDs, _, err := u.vectorSearch.SemanticSearch(ctx, userID, query, limit)
	if err != nil {
		return nil, 0, err
	}

	if len(summaryIDs) == 0 {
		return []*summarydomain.Summary{}, 0, nil
	}

	ids := make([]uint, 0, len(summaryIDs))
	for _, s := range summaryIDs {
		id, parseErr := strconv.ParseUint(s, 10, 64)
		if parseErr != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	rows, err := u.summaryRepo.FindByIDs(userID, ids)
	if err != nil {
		return nil, 0, err
	}

	// Preserve the ranking the search backend returned
	byID := make(map[uint]*summarydomain.Summary, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	ordered := make([]*summarydomain.Summary, 0, len(rows))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			ordered = append(ordered, row)
		}
	}

	return ordered, len(ordered), nil
}

// indexSummary pushes a saved summary into the search index. Failures are
// logged and swallowed: persistence must not depend on the index.
func (u *summaryUsecase) indexSummary(ctx context.Context, s *summarydomain.Summary) {
	if u.vectorSearch == nil {
		return
	}
	id := strconv.FormatUint(uint64(s.ID), 10)
	if err := u.vectorSearch.UpsertSummaryEmbedding(ctx, id, s.UserID, s.Name, s.Summary); err != nil {
		log.Printf("[Summary] Failed to index summary %s: %v", id, err)
	}
}

// unindexSummary removes a deleted summary from the search index
func (u *summaryUsecase) unindexSummary(ctx context.Context, id uint) {
	if u.vectorSearch == nil {
		return
	}
	sid := strconv.FormatUint(uint64(id), 10)
	if err := u.vectorSearch.DeleteSummaryEmbedding(ctx, sid); err != nil {
		log.Printf("[Summary] Failed to unindex summary %s: %v", sid, err)
	}
}
