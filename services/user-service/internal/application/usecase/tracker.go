package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/chooselife/strongfoundations/pkg/logger"
	"github.com/chooselife/strongfoundations/services/user-service/internal/domain"
)

type ProgressStore interface {
	Create(ctx context.Context, rec *domain.CompletionRecord) (*domain.CompletionRecord, error)
	Exists(ctx context.Context, userID, lessonID string) (bool, error)
	ListLessonIDs(ctx context.Context, userID string) ([]string, error)
}

// ProgressTracker records which lessons a signed-in learner has finished.
// Guests have no identity, so nothing is read or written for them.
type ProgressTracker struct {
	store ProgressStore
	log   *logger.Logger
	now   func() time.Time
}

func NewProgressTracker(store ProgressStore, log *logger.Logger) *ProgressTracker {
	return &ProgressTracker{store: store, log: log, now: time.Now}
}

func (t *ProgressTracker) IsCompleted(ctx context.Context, userID, lessonID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return t.store.Exists(ctx, userID, lessonID)
}

// MarkComplete is idempotent: repeating it returns the original record.
// lessonID must be a lesson order in canonical decimal form. Whether that
// lesson exists is not checked here; course-service resolves the slug against
// its catalog before calling.
func (t *ProgressTracker) MarkComplete(ctx context.Context, userID, lessonID string) (*domain.CompletionRecord, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if !validLessonID(lessonID) {
		return nil, domain.ErrInvalidLessonID
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec, err := t.store.Create(ctx, &domain.CompletionRecord{
		UserID:      userID,
		LessonID:    lessonID,
		CompletedAt: t.now().UTC(),
	})
	if err != nil {
		t.log.Error("mark complete failed", "user_id", userID, "lesson_id", lessonID, "error", err)
		return nil, err
	}
	return rec, nil
}

func (t *ProgressTracker) ListCompleted(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, nil
	}
	return t.store.ListLessonIDs(ctx, userID)
}

func validLessonID(id string) bool {
	n, err := strconv.Atoi(id)
	return err == nil && n >= 1 && strconv.Itoa(n) == id
}
