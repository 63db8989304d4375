package repository

import (
	"time"

	summarydomain "meetnotes-backend/internal/summary/domain"

	"gorm.io/gorm"
)

// summaryRepository implements SummaryRepository interface
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new instance of summaryRepository
func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

func (r *summaryRepository) Create(summary *summarydomain.Summary) error {
	if summary.CreatedAt.IsZero() {
		summary.CreatedAt = time.Now()
	}
	return r.db.Create(summary).Error
}

func (r *summaryRepository) FindByUser(userID string, limit, offset int) ([]*summarydomain.Summary, int64, error) {
	var total int64
	if err := r.db.Model(&summarydomain.Summary{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var summaries []*summarydomain.Summary
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&summaries).Error
	if err != nil {
		return nil, 0, err
	}

	return summaries, total, nil
}

func (r *summaryRepository) FindByIDs(userID string, ids []uint) ([]*summarydomain.Summary, error) {
	if len(ids) == 0 {
		return []*summarydomain.Summary{}, nil
	}

	var summaries []*summarydomain.Summary
	err := r.db.Where("user_id = ? AND id IN ?", userID, ids).Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *summaryRepository) DeleteByIDAndUser(id uint, userID string) error {
	// Zero rows affected is not an error: cross-owner and missing ids
	// must not be distinguishable from a successful delete
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&summarydomain.Summary{}).Error
}
