package grpc_server

import (
	"context"

	"github.com/chooselife/strongfoundations/pkg/lesson"
	"github.com/chooselife/strongfoundations/pkg/rpc"
	"github.com/chooselife/strongfoundations/services/course-service/internal/application/usecase"
	"github.com/chooselife/strongfoundations/services/course-service/internal/domain"
	"github.com/chooselife/strongfoundations/services/course-service/pkg/coursepb"

	"google.golang.org/grpc/codes"
)

var errorRules = []rpc.Rule{
	{Err: lesson.ErrNotFound, Code: codes.NotFound},
	{Err: lesson.ErrUnauthenticated, Code: codes.Unauthenticated},
	{Err: domain.ErrLessonNotFound, Code: codes.NotFound},
	{Err: domain.ErrInvalidLesson, Code: codes.InvalidArgument},
	{Err: domain.ErrOrderTaken, Code: codes.AlreadyExists},
}

type CourseServer struct {
	course *usecase.CourseUseCase
	admin  *usecase.AdminUseCase
}

func NewCourseServer(course *usecase.CourseUseCase, admin *usecase.AdminUseCase) *CourseServer {
	return &CourseServer{course: course, admin: admin}
}

func (s *CourseServer) ListLessons(ctx context.Context, req *coursepb.ListLessonsRequest) (*coursepb.ListLessonsResponse, error) {
	entries, err := s.course.ListLessons(ctx, lesson.Principal{UserID: req.UserID})
	if err != nil {
		return nil, rpc.Status(err, "failed to load lessons", errorRules...)
	}
	return &coursepb.ListLessonsResponse{Lessons: entries}, nil
}

func (s *CourseServer) GetLesson(ctx context.Context, req *coursepb.GetLessonRequest) (*coursepb.GetLessonResponse, error) {
	view, err := s.course.GetLesson(ctx, req.Slug, lesson.Principal{UserID: req.UserID})
	if err != nil {
		return nil, rpc.Status(err, "failed to load lesson", errorRules...)
	}
	return &coursepb.GetLessonResponse{View: view}, nil
}

func (s *CourseServer) CompleteLesson(ctx context.Context, req *coursepb.CompleteLessonRequest) (*coursepb.CompleteLessonResponse, error) {
	done, err := s.course.CompleteLesson(ctx, req.Slug, lesson.Principal{UserID: req.UserID})
	if err != nil {
		return nil, rpc.Status(err, "failed to save progress", errorRules...)
	}
	resp := &coursepb.CompleteLessonResponse{LessonID: done.LessonID, CompletedAt: done.CompletedAt}
	if done.Next != nil {
		resp.Next = done.Next.Slug
	}
	return resp, nil
}

func (s *CourseServer) AdminListLessons(ctx context.Context, _ *coursepb.AdminListLessonsRequest) (*coursepb.AdminListLessonsResponse, error) {
	rows, err := s.admin.List(ctx)
	if err != nil {
		return nil, rpc.Status(err, "failed to load lessons", errorRules...)
	}
	out := make([]coursepb.Lesson, 0, len(rows))
	for i := range rows {
		out = append(out, toPB(&rows[i]))
	}
	return &coursepb.AdminListLessonsResponse{Lessons: out}, nil
}

func (s *CourseServer) CreateLesson(ctx context.Context, req *coursepb.CreateLessonRequest) (*coursepb.LessonResponse, error) {
	row, err := s.admin.Create(ctx, usecase.LessonInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Order:       req.Order,
		Published:   req.Published,
	})
	if err != nil {
		return nil, rpc.Status(err, "failed to create lesson", errorRules...)
	}
	return &coursepb.LessonResponse{Lesson: toPB(row)}, nil
}

func (s *CourseServer) UpdateLesson(ctx context.Context, req *coursepb.UpdateLessonRequest) (*coursepb.LessonResponse, error) {
	row, err := s.admin.Update(ctx, req.ID, usecase.LessonInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Order:       req.Order,
		Published:   req.Published,
	})
	if err != nil {
		return nil, rpc.Status(err, "failed to update lesson", errorRules...)
	}
	return &coursepb.LessonResponse{Lesson: toPB(row)}, nil
}

func (s *CourseServer) DeleteLesson(ctx context.Context, req *coursepb.DeleteLessonRequest) (*coursepb.DeleteLessonResponse, error) {
	if err := s.admin.Delete(ctx, req.ID); err != nil {
		return nil, rpc.Status(err, "failed to delete lesson", errorRules...)
	}
	return &coursepb.DeleteLessonResponse{Success: true}, nil
}

func toPB(row *domain.Lesson) coursepb.Lesson {
	l := row.ToLesson()
	return coursepb.Lesson{
		ID:          row.ID.String(),
		Order:       l.Order,
		Slug:        l.Slug,
		Title:       l.Title,
		Description: l.Description,
		Content:     l.Content,
		ImageURL:    l.ImageURL,
		Published:   l.Published,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
