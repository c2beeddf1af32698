package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/types"
)

// JournalEntry stores one journal submission together with the analysis
// derived at creation time. Rows are append-only: nothing mutates an entry
// after insert except the user-scoped bulk delete.
type JournalEntry struct {
	ID      string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID  string `gorm:"column:user_id;type:varchar(64);not null;index" json:"userId"`
	Title   string `gorm:"column:title;type:varchar(256);not null" json:"title"`
	Content string `gorm:"column:content;type:text;not null" json:"content"`
	// MoodScore always equals Analysis.Data().MoodScore; both are written in
	// the same insert after analysis succeeds, so no partially-analyzed row
	// can exist.
	MoodScore float64                                  `gorm:"column:mood_score;not null" json:"moodScore"`
	Analysis  datatypes.JSONType[types.AnalysisResult] `gorm:"column:analysis;type:jsonb" json:"analysis"`
	// CreatedAt is managed by GORM and is the sole ordering key.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is managed by GORM and records the update time.
	UpdatedAt time.Time `json:"updatedAt"`
}

func (JournalEntry) TableName() string {
	return "journal_entry"
}

// MonthLabel returns the calendar-month grouping key used by mood aggregation.
// Month name only: the same month in different years shares a bucket.
func (e *JournalEntry) MonthLabel() string {
	return e.CreatedAt.Month().String()
}
