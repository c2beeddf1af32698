package journal

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/models"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/tool"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/types"
)

var (
	// ErrWriteFailed wraps any persistence error on insert.
	ErrWriteFailed = errors.New("journal write failed")
	// ErrNotFound maps gorm.ErrRecordNotFound for single-entry lookups.
	ErrNotFound = errors.New("journal entry not found")
)

// Store is the persistence boundary for journal entries. Entries are
// immutable after creation; the only destructive operation is the user-scoped
// bulk delete.
type Store interface {
	Create(ctx context.Context, userID, title, content string, moodScore float64, analysis *types.AnalysisResult) (*models.JournalEntry, error)
	ListByUser(ctx context.Context, userID string) ([]*models.JournalEntry, error)
	GetByID(ctx context.Context, id string) (*models.JournalEntry, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) Store {
	return &Service{db: db, log: log}
}

// Create inserts one entry and returns the row including the assigned id and
// created_at. Mood score and analysis land in the same insert, so no
// partially-analyzed row can exist. The subscription quota is advisory and is
// deliberately not checked here.
func (s *Service) Create(ctx context.Context, userID, title, content string, moodScore float64, analysis *types.AnalysisResult) (*models.JournalEntry, error) {
	if analysis == nil {
		return nil, fmt.Errorf("%w: nil analysis", ErrWriteFailed)
	}
	entry := &models.JournalEntry{
		ID:        tool.GenerateUUIDV7(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		MoodScore: moodScore,
		Analysis:  datatypes.NewJSONType(*analysis),
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return entry, nil
}

// ListByUser returns all entries for a user ordered by created_at ascending.
// An empty slice, not an error, when the user has none.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*models.JournalEntry, error) {
	entries := make([]*models.JournalEntry, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load journal entry: %w", err)
	}
	return &entry, nil
}

func (s *Service) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.JournalEntry{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return count, nil
}

// DeleteAllByUser removes every entry owned by userID and returns the number
// of rows removed. Irreversible, idempotent: a second call removes zero rows.
func (s *Service) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	tx := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.JournalEntry{})
	if tx.Error != nil {
		return 0, fmt.Errorf("failed to delete journal entries: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}
