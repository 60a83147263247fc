package domain

import (
	"errors"
	"time"

	"github.com/chooselife/strongfoundations/pkg/lesson"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrLessonNotFound = errors.New("lesson not found")
	ErrInvalidLesson  = errors.New("invalid lesson")
	ErrOrderTaken     = errors.New("lesson order already taken")
)

// Lesson is a row of the lessons table. The slug is generated from the title
// when the row is created and never rewritten afterwards.
type Lesson struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug        string    `gorm:"size:200;uniqueIndex:idx_lessons_slug,where:slug <> ''"`
	Title       string    `gorm:"size:200;not null"`
	Description string
	Content     string `gorm:"type:text"`
	ImageURL    string
	LessonOrder int  `gorm:"column:lesson_order;not null;uniqueIndex:idx_lessons_order"`
	IsPublished bool `gorm:"column:is_published;not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (l *Lesson) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// ToLesson maps the row into the catalog type. Rows written before slugs
// were persisted fall back to the title-derived slug.
func (l *Lesson) ToLesson() lesson.Lesson {
	slug := l.Slug
	if slug == "" {
		slug = lesson.Slugify(l.Title)
	}
	return lesson.Lesson{
		Order:       l.LessonOrder,
		Slug:        slug,
		Title:       l.Title,
		Description: l.Description,
		Content:     l.Content,
		ImageURL:    l.ImageURL,
		Published:   l.IsPublished,
	}
}
