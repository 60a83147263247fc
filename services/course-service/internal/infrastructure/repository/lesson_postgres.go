package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/chooselife/strongfoundations/pkg/lesson"
	"github.com/chooselife/strongfoundations/services/course-service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxSlugAttempts = 5

type LessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// ListPublished returns the learner-visible rows in course order.
func (r *LessonRepository) ListPublished(ctx context.Context) ([]domain.Lesson, error) {
	var rows []domain.Lesson
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("lesson_order asc").
		Find(&rows).Error
	return rows, err
}

// ListAll includes drafts.
func (r *LessonRepository) ListAll(ctx context.Context) ([]domain.Lesson, error) {
	var rows []domain.Lesson
	err := r.db.WithContext(ctx).
		Order("lesson_order asc").
		Order("created_at asc").
		Find(&rows).Error
	return rows, err
}

func (r *LessonRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	var row domain.Lesson
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *LessonRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Lesson{}).Count(&count).Error
	return count, err
}

// MaxOrder returns the highest lesson_order in the table, or 0 when empty.
func (r *LessonRepository) MaxOrder(ctx context.Context) (int, error) {
	var highest int
	err := r.db.WithContext(ctx).Model(&domain.Lesson{}).
		Select("COALESCE(MAX(lesson_order), 0)").
		Scan(&highest).Error
	return highest, err
}

// orderTaken reports whether a row other than except holds order.
func (r *LessonRepository) orderTaken(ctx context.Context, order int, except uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Lesson{}).
		Where("lesson_order = ? AND id <> ?", order, except).
		Count(&count).Error
	return count > 0, err
}

// Create persists row with a slug derived from its title. A taken slug gets
// the first free numeric suffix; a concurrent insert of the same slug is
// retried with the next one. A taken order is never retried.
func (r *LessonRepository) Create(ctx context.Context, row *domain.Lesson) error {
	base := lesson.Slugify(row.Title)
	if base == "" {
		base = "lesson"
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		taken, err := r.orderTaken(ctx, row.LessonOrder, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrOrderTaken
		}
		slug, err := r.freeSlug(ctx, base)
		if err != nil {
			return err
		}
		row.Slug = slug
		err = r.db.WithContext(ctx).Create(row).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		row.ID = uuid.Nil
	}
	return fmt.Errorf("could not allocate a slug for %q", row.Title)
}

func (r *LessonRepository) freeSlug(ctx context.Context, base string) (string, error) {
	var taken []string
	err := r.db.WithContext(ctx).Model(&domain.Lesson{}).
		Where("slug = ? OR slug LIKE ?", base, base+"-%").
		Pluck("slug", &taken).Error
	if err != nil {
		return "", err
	}
	used := make(map[string]struct{}, len(taken))
	for _, s := range taken {
		used[s] = struct{}{}
	}
	if _, ok := used[base]; !ok {
		return base, nil
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if _, ok := used[candidate]; !ok {
			return candidate, nil
		}
	}
}

// Update rewrites the editable columns. The slug is deliberately absent, so
// the only unique column it can collide on is lesson_order.
func (r *LessonRepository) Update(ctx context.Context, row *domain.Lesson) error {
	taken, err := r.orderTaken(ctx, row.LessonOrder, row.ID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrOrderTaken
	}
	res := r.db.WithContext(ctx).Model(&domain.Lesson{}).
		Where("id = ?", row.ID).
		Select("title", "description", "content", "image_url", "lesson_order", "is_published", "updated_at").
		Updates(row)
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return domain.ErrOrderTaken
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrLessonNotFound
	}
	return nil
}

func (r *LessonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&domain.Lesson{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrLessonNotFound
	}
	return nil
}

// SeedIfEmpty inserts lessons with their authored slugs when the table has
// no rows, and reports how many were written.
func (r *LessonRepository) SeedIfEmpty(ctx context.Context, lessons []lesson.Lesson) (int, error) {
	written := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Lesson{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		rows := make([]domain.Lesson, 0, len(lessons))
		for _, l := range lessons {
			rows = append(rows, domain.Lesson{
				Slug:        l.Slug,
				Title:       l.Title,
				Description: l.Description,
				Content:     l.Content,
				ImageURL:    l.ImageURL,
				LessonOrder: l.Order,
				IsPublished: l.Published,
			})
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		written = len(rows)
		return nil
	})
	return written, err
}
