package repository

import summarydomain "meetnotes-backend/internal/summary/domain"

// SummaryRepository defines the interface for summary persistence
type SummaryRepository interface {
	// Create inserts one summary row
	Create(summary *summarydomain.Summary) error
	// FindByUser returns one page of the user's summaries, newest first,
	// along with the total row count for that user
	FindByUser(userID string, limit, offset int) ([]*summarydomain.Summary, int64, error)
	// FindByIDs returns the user's summaries matching the given ids
	FindByIDs(userID string, ids []uint) ([]*summarydomain.Summary, error)
	// DeleteByIDAndUser removes the row matching both id and owner.
	// Deleting a row owned by someone else, or a missing id, is a no-op.
	DeleteByIDAndUser(id uint, userID string) error
}
