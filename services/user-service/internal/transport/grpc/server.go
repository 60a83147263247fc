package grpc_server

import (
	"context"

	"github.com/chooselife/strongfoundations/pkg/rpc"
	"github.com/chooselife/strongfoundations/services/user-service/internal/application/usecase"
	"github.com/chooselife/strongfoundations/services/user-service/internal/domain"
	"github.com/chooselife/strongfoundations/services/user-service/pkg/userpb"

	"google.golang.org/grpc/codes"
)

var errorRules = []rpc.Rule{
	{Err: domain.ErrUnauthenticated, Code: codes.Unauthenticated},
	{Err: domain.ErrInvalidLessonID, Code: codes.InvalidArgument},
	{Err: domain.ErrInvalidProfile, Code: codes.InvalidArgument},
	{Err: domain.ErrProfileNotFound, Code: codes.NotFound},
}

type UserServer struct {
	tracker  *usecase.ProgressTracker
	profiles *usecase.ProfileService
}

func NewUserServer(tracker *usecase.ProgressTracker, profiles *usecase.ProfileService) *UserServer {
	return &UserServer{tracker: tracker, profiles: profiles}
}

func (s *UserServer) CreateProfile(ctx context.Context, req *userpb.CreateProfileRequest) (*userpb.ProfileResponse, error) {
	p, err := s.profiles.Save(ctx, usecase.ProfileInput{
		UserID:        req.UserID,
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		Age:           req.Age,
		MaritalStatus: req.MaritalStatus,
	})
	if err != nil {
		return nil, rpc.Status(err, "failed to create profile", errorRules...)
	}
	return &userpb.ProfileResponse{Profile: toPB(p)}, nil
}

func (s *UserServer) GetProfile(ctx context.Context, req *userpb.GetProfileRequest) (*userpb.ProfileResponse, error) {
	p, err := s.profiles.Get(ctx, req.UserID, req.Email)
	if err != nil {
		return nil, rpc.Status(err, "failed to load profile", errorRules...)
	}
	return &userpb.ProfileResponse{Profile: toPB(p)}, nil
}

func (s *UserServer) UpdateProfile(ctx context.Context, req *userpb.UpdateProfileRequest) (*userpb.ProfileResponse, error) {
	p, err := s.profiles.Save(ctx, usecase.ProfileInput{
		UserID:        req.UserID,
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		Age:           req.Age,
		MaritalStatus: req.MaritalStatus,
	})
	if err != nil {
		return nil, rpc.Status(err, "failed to update profile", errorRules...)
	}
	return &userpb.ProfileResponse{Profile: toPB(p)}, nil
}

func (s *UserServer) MarkComplete(ctx context.Context, req *userpb.MarkCompleteRequest) (*userpb.MarkCompleteResponse, error) {
	rec, err := s.tracker.MarkComplete(ctx, req.UserID, req.LessonID)
	if err != nil {
		return nil, rpc.Status(err, "failed to save progress", errorRules...)
	}
	return &userpb.MarkCompleteResponse{Record: userpb.CompletionRecord{
		UserID:      rec.UserID,
		LessonID:    rec.LessonID,
		CompletedAt: rec.CompletedAt,
	}}, nil
}

func (s *UserServer) IsCompleted(ctx context.Context, req *userpb.IsCompletedRequest) (*userpb.IsCompletedResponse, error) {
	done, err := s.tracker.IsCompleted(ctx, req.UserID, req.LessonID)
	if err != nil {
		return nil, rpc.Status(err, "failed to read progress", errorRules...)
	}
	return &userpb.IsCompletedResponse{Completed: done}, nil
}

func (s *UserServer) ListCompleted(ctx context.Context, req *userpb.ListCompletedRequest) (*userpb.ListCompletedResponse, error) {
	ids, err := s.tracker.ListCompleted(ctx, req.UserID)
	if err != nil {
		return nil, rpc.Status(err, "failed to read progress", errorRules...)
	}
	return &userpb.ListCompletedResponse{LessonIDs: ids}, nil
}

func toPB(p *domain.Profile) userpb.Profile {
	return userpb.Profile{
		UserID:        p.UserID,
		Email:         p.Email,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		DisplayName:   p.DisplayName,
		ContactNumber: p.ContactNumber,
		Age:           p.Age,
		MaritalStatus: p.MaritalStatus,
		Type:          string(p.Type),
	}
}
