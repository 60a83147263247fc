package catalog

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/chooselife/strongfoundations/pkg/lesson"
	"github.com/chooselife/strongfoundations/services/course-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCatalog(t *testing.T) {
	src, err := NewStatic()
	require.NoError(t, err)

	c, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, c, 11)

	seen := map[string]bool{}
	for i, l := range c {
		assert.Equal(t, i+1, l.Order)
		assert.NotEmpty(t, l.Title)
		assert.NotEmpty(t, l.Content)
		assert.True(t, l.Published)
		assert.False(t, seen[l.Slug], "duplicate slug %s", l.Slug)
		seen[l.Slug] = true
	}

	first, err := c.Resolve("repentance-and-salvation")
	require.NoError(t, err)
	assert.Equal(t, "1", first.ID())

	word, err := c.Resolve("the-word-worship-and-prayer")
	require.NoError(t, err)
	assert.Equal(t, 8, word.Order)
}

func TestStaticLoadReturnsCopy(t *testing.T) {
	src, err := NewStatic()
	require.NoError(t, err)

	c, _ := src.Load(context.Background())
	c[0].Title = "changed"

	again, _ := src.Load(context.Background())
	assert.Equal(t, "Repentance and Salvation", again[0].Title)
}

type fakeLister struct {
	rows []domain.Lesson
	err  error
}

func (f fakeLister) ListPublished(context.Context) ([]domain.Lesson, error) {
	return f.rows, f.err
}

func TestStoreMapsRows(t *testing.T) {
	src := NewStore(fakeLister{rows: []domain.Lesson{
		{Slug: "", Title: "The Word, Worship and Prayer", LessonOrder: 2, IsPublished: true},
		{Slug: "water-baptism", Title: "Water Baptism (revised)", LessonOrder: 1, IsPublished: true},
	}})

	c, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, c, 2)
	assert.Equal(t, "water-baptism", c[0].Slug, "persisted slug wins over the title")
	assert.Equal(t, "the-word-worship-and-prayer", c[1].Slug)
}

func TestStoreFailureYieldsEmptyCatalog(t *testing.T) {
	src := NewStore(fakeLister{err: errors.New("connection refused")})

	c, err := src.Load(context.Background())
	assert.Error(t, err)
	assert.NotNil(t, c)
	assert.Empty(t, c)
}

func TestNewPicksSource(t *testing.T) {
	s, err := New("", fakeLister{})
	require.NoError(t, err)
	assert.Equal(t, SourceStatic, s.Name())

	s, err = New(SourceDatabase, fakeLister{})
	require.NoError(t, err)
	assert.Equal(t, SourceDatabase, s.Name())

	_, err = New("csv", fakeLister{})
	assert.Error(t, err)
}

func TestFixtureOrdersAreContiguous(t *testing.T) {
	lessons, err := Fixture()
	require.NoError(t, err)
	for i, l := range lessons {
		assert.Equal(t, strconv.Itoa(i+1), lesson.Lesson{Order: l.Order}.ID())
	}
}
