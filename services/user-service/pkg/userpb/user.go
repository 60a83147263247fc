// Package userpb is the wire contract of the user service: profiles and
// lesson completion records.
package userpb

import (
	"context"
	"time"

	"github.com/chooselife/strongfoundations/pkg/rpc"

	"google.golang.org/grpc"
)

const ServiceName = "strongfoundations.user.v1.UserService"

type Profile struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	DisplayName   string `json:"display_name"`
	ContactNumber string `json:"contact_number,omitempty"`
	Age           *int   `json:"age,omitempty"`
	MaritalStatus string `json:"marital_status,omitempty"`
	Type          string `json:"type"`
}

type CreateProfileRequest struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	ContactNumber string `json:"contact_number,omitempty"`
	Age           *int   `json:"age,omitempty"`
	MaritalStatus string `json:"marital_status,omitempty"`
}

type GetProfileRequest struct {
	UserID string `json:"user_id"`
	// Email seeds the empty profile returned when none is stored yet.
	Email string `json:"email,omitempty"`
}

type UpdateProfileRequest struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	ContactNumber string `json:"contact_number,omitempty"`
	Age           *int   `json:"age,omitempty"`
	MaritalStatus string `json:"marital_status,omitempty"`
}

type ProfileResponse struct {
	Profile Profile `json:"profile"`
}

type CompletionRecord struct {
	UserID      string    `json:"user_id"`
	LessonID    string    `json:"lesson_id"`
	CompletedAt time.Time `json:"completed_at"`
}

type MarkCompleteRequest struct {
	UserID   string `json:"user_id"`
	LessonID string `json:"lesson_id"`
}

type MarkCompleteResponse struct {
	Record CompletionRecord `json:"record"`
}

type IsCompletedRequest struct {
	UserID   string `json:"user_id"`
	LessonID string `json:"lesson_id"`
}

type IsCompletedResponse struct {
	Completed bool `json:"completed"`
}

type ListCompletedRequest struct {
	UserID string `json:"user_id"`
}

type ListCompletedResponse struct {
	LessonIDs []string `json:"lesson_ids"`
}

type UserServiceServer interface {
	CreateProfile(context.Context, *CreateProfileRequest) (*ProfileResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*ProfileResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*ProfileResponse, error)
	MarkComplete(context.Context, *MarkCompleteRequest) (*MarkCompleteResponse, error)
	IsCompleted(context.Context, *IsCompletedRequest) (*IsCompletedResponse, error)
	ListCompleted(context.Context, *ListCompletedRequest) (*ListCompletedResponse, error)
}

func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	rpc.Register(s, ServiceName,
		rpc.Unary(ServiceName, "CreateProfile", srv.CreateProfile),
		rpc.Unary(ServiceName, "GetProfile", srv.GetProfile),
		rpc.Unary(ServiceName, "UpdateProfile", srv.UpdateProfile),
		rpc.Unary(ServiceName, "MarkComplete", srv.MarkComplete),
		rpc.Unary(ServiceName, "IsCompleted", srv.IsCompleted),
		rpc.Unary(ServiceName, "ListCompleted", srv.ListCompleted),
	)
}

type UserServiceClient interface {
	CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error)
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error)
	MarkComplete(ctx context.Context, in *MarkCompleteRequest, opts ...grpc.CallOption) (*MarkCompleteResponse, error)
	IsCompleted(ctx context.Context, in *IsCompletedRequest, opts ...grpc.CallOption) (*IsCompletedResponse, error)
	ListCompleted(ctx context.Context, in *ListCompletedRequest, opts ...grpc.CallOption) (*ListCompletedResponse, error)
}

type userServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUserServiceClient(cc grpc.ClientConnInterface) UserServiceClient {
	return &userServiceClient{cc: cc}
}

func (c *userServiceClient) CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return rpc.Call[CreateProfileRequest, ProfileResponse](ctx, c.cc, ServiceName, "CreateProfile", in, opts...)
}

func (c *userServiceClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return rpc.Call[GetProfileRequest, ProfileResponse](ctx, c.cc, ServiceName, "GetProfile", in, opts...)
}

func (c *userServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return rpc.Call[UpdateProfileRequest, ProfileResponse](ctx, c.cc, ServiceName, "UpdateProfile", in, opts...)
}

func (c *userServiceClient) MarkComplete(ctx context.Context, in *MarkCompleteRequest, opts ...grpc.CallOption) (*MarkCompleteResponse, error) {
	return rpc.Call[MarkCompleteRequest, MarkCompleteResponse](ctx, c.cc, ServiceName, "MarkComplete", in, opts...)
}

func (c *userServiceClient) IsCompleted(ctx context.Context, in *IsCompletedRequest, opts ...grpc.CallOption) (*IsCompletedResponse, error) {
	return rpc.Call[IsCompletedRequest, IsCompletedResponse](ctx, c.cc, ServiceName, "IsCompleted", in, opts...)
}

func (c *userServiceClient) ListCompleted(ctx context.Context, in *ListCompletedRequest, opts ...grpc.CallOption) (*ListCompletedResponse, error) {
	return rpc.Call[ListCompletedRequest, ListCompletedResponse](ctx, c.cc, ServiceName, "ListCompleted", in, opts...)
}
