package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/chooselife/strongfoundations/pkg/database"
	"github.com/chooselife/strongfoundations/services/user-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(database.Options{Type: "sqlite", Path: ":memory:"},
		&domain.CompletionRecord{}, &domain.Profile{})
	require.NoError(t, err)
	return db
}

func TestProgressCreateIsIdempotent(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))
	ctx := context.Background()
	first := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	rec, err := repo.Create(ctx, &domain.CompletionRecord{UserID: "u1", LessonID: "1", CompletedAt: first})
	require.NoError(t, err)
	assert.True(t, rec.CompletedAt.Equal(first))

	again, err := repo.Create(ctx, &domain.CompletionRecord{UserID: "u1", LessonID: "1", CompletedAt: first.Add(time.Hour)})
	require.NoError(t, err)
	assert.True(t, again.CompletedAt.Equal(first), "completion time must not move")

	ids, err := repo.ListLessonIDs(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids)
}

func TestProgressConcurrentDuplicates(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Create(ctx, &domain.CompletionRecord{UserID: "u1", LessonID: "2", CompletedAt: time.Now()})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	ids, err := repo.ListLessonIDs(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestProgressExistsAndList(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"3", "1"} {
		_, err := repo.Create(ctx, &domain.CompletionRecord{UserID: "u1", LessonID: id, CompletedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &domain.CompletionRecord{UserID: "u2", LessonID: "2", CompletedAt: base})
	require.NoError(t, err)

	ok, err := repo.Exists(ctx, "u1", "3")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, "u1", "2")
	require.NoError(t, err)
	assert.False(t, ok)

	ids, err := repo.ListLessonIDs(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, ids)

	ids, err = repo.ListLessonIDs(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestProfileUpsertKeepsType(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.GetByUserID(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	require.NoError(t, repo.Upsert(ctx, &domain.Profile{UserID: "u1", Email: "a@b.co", FirstName: "Ann"}))
	require.NoError(t, repo.SetType(ctx, "u1", domain.ProfileAdmin))

	age := 30
	require.NoError(t, repo.Upsert(ctx, &domain.Profile{
		UserID: "u1", Email: "a@b.co", FirstName: "Anna", LastName: "Lee",
		DisplayName: "Anna Lee", Age: &age, Type: domain.ProfileLearner,
	}))

	p, err := repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Anna", p.FirstName)
	assert.Equal(t, "Anna Lee", p.DisplayName)
	require.NotNil(t, p.Age)
	assert.Equal(t, 30, *p.Age)
	assert.Equal(t, domain.ProfileAdmin, p.Type)
}

func TestProfileSetTypeUnknownUser(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))
	err := repo.SetType(context.Background(), "ghost", domain.ProfileAdmin)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
