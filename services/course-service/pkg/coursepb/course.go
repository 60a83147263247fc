// Package coursepb is the wire contract of the course service.
package coursepb

import (
	"context"
	"time"

	"github.com/chooselife/strongfoundations/pkg/lesson"
	"github.com/chooselife/strongfoundations/pkg/rpc"

	"google.golang.org/grpc"
)

const ServiceName = "strongfoundations.course.v1.CourseService"

// Lesson is a stored lesson row as seen by administrators.
type Lesson struct {
	ID          string    `json:"id"`
	Order       int       `json:"order"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url,omitempty"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListLessonsRequest struct {
	UserID string `json:"user_id,omitempty"`
}

type ListLessonsResponse struct {
	Lessons []lesson.Entry `json:"lessons"`
}

type GetLessonRequest struct {
	Slug   string `json:"slug"`
	UserID string `json:"user_id,omitempty"`
}

type GetLessonResponse struct {
	View lesson.View `json:"view"`
}

type CompleteLessonRequest struct {
	Slug   string `json:"slug"`
	UserID string `json:"user_id"`
}

type CompleteLessonResponse struct {
	LessonID    string    `json:"lesson_id"`
	CompletedAt time.Time `json:"completed_at"`
	// Next is the slug of the lesson now unlocked, empty after the last one.
	Next string `json:"next,omitempty"`
}

type AdminListLessonsRequest struct{}

type AdminListLessonsResponse struct {
	Lessons []Lesson `json:"lessons"`
}

type CreateLessonRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url,omitempty"`
	// Order defaults to one past the highest existing order when zero.
	Order     int  `json:"order,omitempty"`
	Published bool `json:"published"`
}

type UpdateLessonRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url,omitempty"`
	Order       int    `json:"order"`
	Published   bool   `json:"published"`
}

type LessonResponse struct {
	Lesson Lesson `json:"lesson"`
}

type DeleteLessonRequest struct {
	ID string `json:"id"`
}

type DeleteLessonResponse struct {
	Success bool `json:"success"`
}

type CourseServiceServer interface {
	ListLessons(context.Context, *ListLessonsRequest) (*ListLessonsResponse, error)
	GetLesson(context.Context, *GetLessonRequest) (*GetLessonResponse, error)
	CompleteLesson(context.Context, *CompleteLessonRequest) (*CompleteLessonResponse, error)
	AdminListLessons(context.Context, *AdminListLessonsRequest) (*AdminListLessonsResponse, error)
	CreateLesson(context.Context, *CreateLessonRequest) (*LessonResponse, error)
	UpdateLesson(context.Context, *UpdateLessonRequest) (*LessonResponse, error)
	DeleteLesson(context.Context, *DeleteLessonRequest) (*DeleteLessonResponse, error)
}

func RegisterCourseServiceServer(s grpc.ServiceRegistrar, srv CourseServiceServer) {
	rpc.Register(s, ServiceName,
		rpc.Unary(ServiceName, "ListLessons", srv.ListLessons),
		rpc.Unary(ServiceName, "GetLesson", srv.GetLesson),
		rpc.Unary(ServiceName, "CompleteLesson", srv.CompleteLesson),
		rpc.Unary(ServiceName, "AdminListLessons", srv.AdminListLessons),
		rpc.Unary(ServiceName, "CreateLesson", srv.CreateLesson),
		rpc.Unary(ServiceName, "UpdateLesson", srv.UpdateLesson),
		rpc.Unary(ServiceName, "DeleteLesson", srv.DeleteLesson),
	)
}

type CourseServiceClient interface {
	ListLessons(ctx context.Context, in *ListLessonsRequest, opts ...grpc.CallOption) (*ListLessonsResponse, error)
	GetLesson(ctx context.Context, in *GetLessonRequest, opts ...grpc.CallOption) (*GetLessonResponse, error)
	CompleteLesson(ctx context.Context, in *CompleteLessonRequest, opts ...grpc.CallOption) (*CompleteLessonResponse, error)
	AdminListLessons(ctx context.Context, in *AdminListLessonsRequest, opts ...grpc.CallOption) (*AdminListLessonsResponse, error)
	CreateLesson(ctx context.Context, in *CreateLessonRequest, opts ...grpc.CallOption) (*LessonResponse, error)
	UpdateLesson(ctx context.Context, in *UpdateLessonRequest, opts ...grpc.CallOption) (*LessonResponse, error)
	DeleteLesson(ctx context.Context, in *DeleteLessonRequest, opts ...grpc.CallOption) (*DeleteLessonResponse, error)
}

type courseServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCourseServiceClient(cc grpc.ClientConnInterface) CourseServiceClient {
	return &courseServiceClient{cc: cc}
}

func (c *courseServiceClient) ListLessons(ctx context.Context, in *ListLessonsRequest, opts ...grpc.CallOption) (*ListLessonsResponse, error) {
	return rpc.Call[ListLessonsRequest, ListLessonsResponse](ctx, c.cc, ServiceName, "ListLessons", in, opts...)
}

func (c *courseServiceClient) GetLesson(ctx context.Context, in *GetLessonRequest, opts ...grpc.CallOption) (*GetLessonResponse, error) {
	return rpc.Call[GetLessonRequest, GetLessonResponse](ctx, c.cc, ServiceName, "GetLesson", in, opts...)
}

func (c *courseServiceClient) CompleteLesson(ctx context.Context, in *CompleteLessonRequest, opts ...grpc.CallOption) (*CompleteLessonResponse, error) {
	return rpc.Call[CompleteLessonRequest, CompleteLessonResponse](ctx, c.cc, ServiceName, "CompleteLesson", in, opts...)
}

func (c *courseServiceClient) AdminListLessons(ctx context.Context, in *AdminListLessonsRequest, opts ...grpc.CallOption) (*AdminListLessonsResponse, error) {
	return rpc.Call[AdminListLessonsRequest, AdminListLessonsResponse](ctx, c.cc, ServiceName, "AdminListLessons", in, opts...)
}

func (c *courseServiceClient) CreateLesson(ctx context.Context, in *CreateLessonRequest, opts ...grpc.CallOption) (*LessonResponse, error) {
	return rpc.Call[CreateLessonRequest, LessonResponse](ctx, c.cc, ServiceName, "CreateLesson", in, opts...)
}

func (c *courseServiceClient) UpdateLesson(ctx context.Context, in *UpdateLessonRequest, opts ...grpc.CallOption) (*LessonResponse, error) {
	return rpc.Call[UpdateLessonRequest, LessonResponse](ctx, c.cc, ServiceName, "UpdateLesson", in, opts...)
}

func (c *courseServiceClient) DeleteLesson(ctx context.Context, in *DeleteLessonRequest, opts ...grpc.CallOption) (*DeleteLessonResponse, error) {
	return rpc.Call[DeleteLessonRequest, DeleteLessonResponse](ctx, c.cc, ServiceName, "DeleteLesson", in, opts...)
}
