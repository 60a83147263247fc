package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chooselife/strongfoundations/pkg/logger"
	"github.com/chooselife/strongfoundations/services/course-service/internal/domain"

	"github.com/google/uuid"
)

// Concurrent appends may race for the same next order.
const maxAppendAttempts = 3

type LessonStore interface {
	ListAll(ctx context.Context) ([]domain.Lesson, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
	MaxOrder(ctx context.Context) (int, error)
	Create(ctx context.Context, row *domain.Lesson) error
	Update(ctx context.Context, row *domain.Lesson) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LessonInput carries the fields an administrator can edit.
type LessonInput struct {
	Title       string
	Description string
	Content     string
	ImageURL    string
	Order       int
	Published   bool
}

type AdminUseCase struct {
	store LessonStore
	log   *logger.Logger
}

func NewAdminUseCase(store LessonStore, log *logger.Logger) *AdminUseCase {
	return &AdminUseCase{store: store, log: log}
}

func (uc *AdminUseCase) List(ctx context.Context) ([]domain.Lesson, error) {
	return uc.store.ListAll(ctx)
}

// Create appends the lesson after the highest existing order unless an order
// is given. An explicit order already held by another lesson is rejected.
func (uc *AdminUseCase) Create(ctx context.Context, in LessonInput) (*domain.Lesson, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidLesson)
	}
	if in.Order < 0 {
		return nil, fmt.Errorf("%w: order must be at least 1", domain.ErrInvalidLesson)
	}

	row := &domain.Lesson{
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		ImageURL:    in.ImageURL,
		LessonOrder: in.Order,
		IsPublished: in.Published,
	}
	attempts := 1
	if in.Order == 0 {
		attempts = maxAppendAttempts
	}
	var err error
	for i := 0; i < attempts; i++ {
		if in.Order == 0 {
			highest, merr := uc.store.MaxOrder(ctx)
			if merr != nil {
				return nil, merr
			}
			row.LessonOrder = highest + 1
		}
		if err = uc.store.Create(ctx, row); !errors.Is(err, domain.ErrOrderTaken) {
			break
		}
	}
	if err != nil {
		uc.log.Error("create lesson failed", "title", in.Title, "order", row.LessonOrder, "error", err)
		return nil, err
	}
	uc.log.Info("lesson created", "id", row.ID.String(), "slug", row.Slug, "order", row.LessonOrder)
	return row, nil
}

// Update rewrites a lesson in place. Moving it onto an order held by another
// lesson is rejected. Completions are keyed by order, so progress follows the
// number rather than the lesson that moved.
func (uc *AdminUseCase) Update(ctx context.Context, rawID string, in LessonInput) (*domain.Lesson, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidLesson)
	}
	if in.Order < 1 {
		return nil, fmt.Errorf("%w: order must be at least 1", domain.ErrInvalidLesson)
	}

	row := &domain.Lesson{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		ImageURL:    in.ImageURL,
		LessonOrder: in.Order,
		IsPublished: in.Published,
	}
	if err := uc.store.Update(ctx, row); err != nil {
		return nil, err
	}
	return uc.store.GetByID(ctx, id)
}

func (uc *AdminUseCase) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	if err := uc.store.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info("lesson deleted", "id", id.String())
	return nil
}

// An id that is not a UUID cannot name any row.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrLessonNotFound
	}
	return id, nil
}
