package repository

import (
	"context"

	"github.com/chooselife/strongfoundations/services/user-service/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Create inserts rec unless the learner already completed the lesson, and
// returns the stored record either way. Concurrent duplicates resolve to the
// first writer's CompletedAt.
func (r *ProgressRepository) Create(ctx context.Context, rec *domain.CompletionRecord) (*domain.CompletionRecord, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(rec).Error
	if err != nil {
		return nil, err
	}

	var stored domain.CompletionRecord
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND lesson_id = ?", rec.UserID, rec.LessonID).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *ProgressRepository) Exists(ctx context.Context, userID, lessonID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CompletionRecord{}).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProgressRepository) ListLessonIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&domain.CompletionRecord{}).
		Where("user_id = ?", userID).
		Order("completed_at asc").
		Pluck("lesson_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
