// Package catalog supplies the ordered lesson list either from the embedded
// course document or from the lessons table.
package catalog

import (
	"context"
	"fmt"

	"github.com/chooselife/strongfoundations/pkg/lesson"
	"github.com/chooselife/strongfoundations/services/course-service/internal/domain"
)

const (
	SourceStatic   = "static"
	SourceDatabase = "database"
)

// Source loads the learner-visible catalog. Each call is one fresh read.
type Source interface {
	Name() string
	Load(ctx context.Context) (lesson.Catalog, error)
}

type PublishedLister interface {
	ListPublished(ctx context.Context) ([]domain.Lesson, error)
}

// Store reads published lessons from the database.
type Store struct {
	repo PublishedLister
}

func NewStore(repo PublishedLister) *Store {
	return &Store{repo: repo}
}

func (s *Store) Name() string { return SourceDatabase }

// Load returns an empty catalog together with the error when the query fails.
func (s *Store) Load(ctx context.Context) (lesson.Catalog, error) {
	rows, err := s.repo.ListPublished(ctx)
	if err != nil {
		return lesson.Catalog{}, fmt.Errorf("load lessons: %w", err)
	}
	lessons := make([]lesson.Lesson, 0, len(rows))
	for i := range rows {
		lessons = append(lessons, rows[i].ToLesson())
	}
	return lesson.NewCatalog(lessons), nil
}

// New picks the source named by kind.
func New(kind string, repo PublishedLister) (Source, error) {
	switch kind {
	case "", SourceStatic:
		return NewStatic()
	case SourceDatabase:
		return NewStore(repo), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", kind)
	}
}
