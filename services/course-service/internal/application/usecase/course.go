package usecase

import (
	"context"
	"time"

	"github.com/chooselife/strongfoundations/pkg/lesson"
	"github.com/chooselife/strongfoundations/pkg/logger"
	"github.com/chooselife/strongfoundations/pkg/metrics"
	"github.com/chooselife/strongfoundations/services/course-service/internal/catalog"
	"github.com/chooselife/strongfoundations/services/user-service/pkg/userpb"

	"golang.org/x/sync/errgroup"
)

// CourseUseCase answers learner reads and completion writes. The catalog and
// the learner's completions come from different services and are fetched
// side by side.
type CourseUseCase struct {
	source     catalog.Source
	userClient userpb.UserServiceClient
	metrics    *metrics.Metrics
	log        *logger.Logger
}

func NewCourseUseCase(source catalog.Source, uc userpb.UserServiceClient, m *metrics.Metrics, log *logger.Logger) *CourseUseCase {
	return &CourseUseCase{source: source, userClient: uc, metrics: m, log: log}
}

// Completion is the outcome of CompleteLesson.
type Completion struct {
	LessonID    string
	CompletedAt time.Time
	Next        *lesson.Lesson
}

func (uc *CourseUseCase) load(ctx context.Context, p lesson.Principal) (lesson.Catalog, lesson.CompletedSet, error) {
	var (
		c    lesson.Catalog
		done lesson.CompletedSet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		c, err = uc.source.Load(gctx)
		if err != nil {
			uc.metrics.CatalogLoadFailures.WithLabelValues(uc.source.Name()).Inc()
		}
		return err
	})
	g.Go(func() error {
		if !p.Authenticated() {
			done = lesson.NewCompletedSet()
			return nil
		}
		resp, err := uc.userClient.ListCompleted(gctx, &userpb.ListCompletedRequest{UserID: p.UserID})
		if err != nil {
			return err
		}
		done = lesson.NewCompletedSet(resp.LessonIDs...)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	// the caller went away while we were reading
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return c, done, nil
}

func (uc *CourseUseCase) ListLessons(ctx context.Context, p lesson.Principal) ([]lesson.Entry, error) {
	c, done, err := uc.load(ctx, p)
	if err != nil {
		uc.log.Error("list lessons failed", "user_id", p.UserID, "error", err)
		return nil, err
	}
	return lesson.Annotate(c, done), nil
}

func (uc *CourseUseCase) GetLesson(ctx context.Context, slug string, p lesson.Principal) (lesson.View, error) {
	c, done, err := uc.load(ctx, p)
	if err != nil {
		uc.log.Error("get lesson failed", "slug", slug, "user_id", p.UserID, "error", err)
		return lesson.View{}, err
	}
	v, err := lesson.BuildView(c, slug, p, done)
	if err != nil {
		return lesson.View{}, err
	}
	uc.metrics.RecordLessonView(v.Locked)
	return v, nil
}

// CompleteLesson records that p finished the lesson at slug. Guests are
// refused before anything is read.
func (uc *CourseUseCase) CompleteLesson(ctx context.Context, slug string, p lesson.Principal) (*Completion, error) {
	if !p.Authenticated() {
		return nil, lesson.ErrUnauthenticated
	}

	c, err := uc.source.Load(ctx)
	if err != nil {
		uc.metrics.CatalogLoadFailures.WithLabelValues(uc.source.Name()).Inc()
		uc.log.Error("complete lesson: catalog load failed", "slug", slug, "error", err)
		return nil, err
	}
	cur, err := c.Resolve(slug)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := uc.userClient.MarkComplete(ctx, &userpb.MarkCompleteRequest{UserID: p.UserID, LessonID: cur.ID()})
	if err != nil {
		uc.log.Error("mark complete failed", "slug", slug, "user_id", p.UserID, "error", err)
		return nil, err
	}
	uc.metrics.LessonCompletions.Inc()

	out := &Completion{LessonID: resp.Record.LessonID, CompletedAt: resp.Record.CompletedAt}
	if next, ok := c.Next(cur); ok {
		out.Next = &next
	}
	return out, nil
}
