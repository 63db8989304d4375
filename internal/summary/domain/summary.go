package domain

import "time"

// Summary pairs an original transcript and instruction with the generated
// output text, owned by one user. Rows are immutable once created.
type Summary struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	Name       string    `json:"name"`
	Transcript string    `json:"transcript" gorm:"type:text"`
	Prompt     string    `json:"prompt" gorm:"type:text"`
	Summary    string    `json:"summary" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Summary) TableName() string {
	return "summaries"
}
