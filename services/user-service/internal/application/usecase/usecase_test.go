package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chooselife/strongfoundations/pkg/logger"
	"github.com/chooselife/strongfoundations/services/user-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProgress struct {
	records map[string]domain.CompletionRecord
	calls   int
	err     error
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{records: map[string]domain.CompletionRecord{}}
}

func (f *fakeProgress) Create(_ context.Context, rec *domain.CompletionRecord) (*domain.CompletionRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	key := rec.UserID + "/" + rec.LessonID
	if existing, ok := f.records[key]; ok {
		return &existing, nil
	}
	f.records[key] = *rec
	return rec, nil
}

func (f *fakeProgress) Exists(_ context.Context, userID, lessonID string) (bool, error) {
	f.calls++
	_, ok := f.records[userID+"/"+lessonID]
	return ok, f.err
}

func (f *fakeProgress) ListLessonIDs(_ context.Context, userID string) ([]string, error) {
	f.calls++
	var ids []string
	for _, r := range f.records {
		if r.UserID == userID {
			ids = append(ids, r.LessonID)
		}
	}
	return ids, f.err
}

func TestMarkCompleteRequiresUser(t *testing.T) {
	store := newFakeProgress()
	tr := NewProgressTracker(store, logger.Nop())

	_, err := tr.MarkComplete(context.Background(), "", "1")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Zero(t, store.calls, "store must not be touched without a user")
}

func TestMarkCompleteThenIsCompleted(t *testing.T) {
	store := newFakeProgress()
	tr := NewProgressTracker(store, logger.Nop())
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return fixed }
	ctx := context.Background()

	done, err := tr.IsCompleted(ctx, "u1", "1")
	require.NoError(t, err)
	assert.False(t, done)

	rec, err := tr.MarkComplete(ctx, "u1", "1")
	require.NoError(t, err)
	assert.Equal(t, fixed, rec.CompletedAt)

	tr.now = func() time.Time { return fixed.Add(time.Hour) }
	again, err := tr.MarkComplete(ctx, "u1", "1")
	require.NoError(t, err)
	assert.Equal(t, fixed, again.CompletedAt)

	done, err = tr.IsCompleted(ctx, "u1", "1")
	require.NoError(t, err)
	assert.True(t, done)
}

func TestMarkCompleteRejectsMalformedLessonID(t *testing.T) {
	store := newFakeProgress()
	tr := NewProgressTracker(store, logger.Nop())

	for _, id := range []string{"", "0", "-1", "01", "+2", "1.5", "in-christ", " 3"} {
		_, err := tr.MarkComplete(context.Background(), "u1", id)
		assert.ErrorIs(t, err, domain.ErrInvalidLessonID, "lesson id %q", id)
	}
	assert.Zero(t, store.calls)

	// An order past the end of the course is well formed; existence is the caller's check.
	_, err := tr.MarkComplete(context.Background(), "u1", "42")
	assert.NoError(t, err)
}

func TestIsCompletedForGuest(t *testing.T) {
	store := newFakeProgress()
	tr := NewProgressTracker(store, logger.Nop())

	done, err := tr.IsCompleted(context.Background(), "", "1")
	require.NoError(t, err)
	assert.False(t, done)

	ids, err := tr.ListCompleted(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Zero(t, store.calls)
}

func TestMarkCompleteStoreFailure(t *testing.T) {
	store := newFakeProgress()
	store.err = errors.New("connection reset")
	tr := NewProgressTracker(store, logger.Nop())

	_, err := tr.MarkComplete(context.Background(), "u1", "1")
	assert.Error(t, err)
}

func TestMarkCompleteCancelledIsNotWritten(t *testing.T) {
	store := newFakeProgress()
	tr := NewProgressTracker(store, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.MarkComplete(ctx, "u1", "1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, store.records)
}

type fakeProfiles struct {
	rows map[string]domain.Profile
}

func (f *fakeProfiles) GetByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := f.rows[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (f *fakeProfiles) Upsert(_ context.Context, p *domain.Profile) error {
	if existing, ok := f.rows[p.UserID]; ok {
		p.Type = existing.Type
	}
	f.rows[p.UserID] = *p
	return nil
}

func TestProfileGetMissingReturnsEmptyLearner(t *testing.T) {
	svc := NewProfileService(&fakeProfiles{rows: map[string]domain.Profile{}}, logger.Nop())

	p, err := svc.Get(context.Background(), "u1", "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", p.Email)
	assert.Equal(t, domain.ProfileLearner, p.Type)
	assert.Empty(t, p.FirstName)
}

func TestProfileSaveComposesDisplayName(t *testing.T) {
	svc := NewProfileService(&fakeProfiles{rows: map[string]domain.Profile{}}, logger.Nop())
	age := 34

	p, err := svc.Save(context.Background(), ProfileInput{
		UserID: "u1", Email: "ann@example.com", FirstName: " Ann ", LastName: "Lee",
		ContactNumber: "0821234567", Age: &age, MaritalStatus: "married",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", p.DisplayName)
	assert.Equal(t, "Ann", p.FirstName)
}

func TestProfileSaveValidation(t *testing.T) {
	svc := NewProfileService(&fakeProfiles{rows: map[string]domain.Profile{}}, logger.Nop())
	valid := ProfileInput{UserID: "u1", Email: "ann@example.com", FirstName: "Ann", LastName: "Lee"}
	young, old := 12, 121

	cases := map[string]func(in *ProfileInput){
		"short first name": func(in *ProfileInput) { in.FirstName = "A" },
		"bad email":        func(in *ProfileInput) { in.Email = "not-an-email" },
		"short contact":    func(in *ProfileInput) { in.ContactNumber = "12345" },
		"too young":        func(in *ProfileInput) { in.Age = &young },
		"too old":          func(in *ProfileInput) { in.Age = &old },
		"unknown status":   func(in *ProfileInput) { in.MaritalStatus = "complicated" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := valid
			mutate(&in)
			_, err := svc.Save(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidProfile)
		})
	}

	_, err := svc.Save(context.Background(), valid)
	assert.NoError(t, err)
}

func TestProfileSaveRequiresUser(t *testing.T) {
	svc := NewProfileService(&fakeProfiles{rows: map[string]domain.Profile{}}, logger.Nop())
	_, err := svc.Save(context.Background(), ProfileInput{Email: "ann@example.com", FirstName: "Ann", LastName: "Lee"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
