package grpc_server

import (
	"context"

	"github.com/chooselife/strongfoundations/pkg/rpc"
	"github.com/chooselife/strongfoundations/services/auth-service/internal/application/usecase"
	"github.com/chooselife/strongfoundations/services/auth-service/internal/domain"
	"github.com/chooselife/strongfoundations/services/auth-service/pkg/authpb"

	"google.golang.org/grpc/codes"
)

var errorRules = []rpc.Rule{
	{Err: domain.ErrInvalidInput, Code: codes.InvalidArgument},
	{Err: domain.ErrInviteRequired, Code: codes.PermissionDenied},
	{Err: domain.ErrInviteInvalid, Code: codes.FailedPrecondition},
	{Err: domain.ErrUserAlreadyExists, Code: codes.AlreadyExists},
	{Err: domain.ErrInvalidCredentials, Code: codes.Unauthenticated},
	{Err: domain.ErrInvalidToken, Code: codes.Unauthenticated},
}

type AuthServer struct {
	useCase *usecase.AuthUseCase
}

func NewAuthServer(uc *usecase.AuthUseCase) *AuthServer {
	return &AuthServer{useCase: uc}
}

func (s *AuthServer) Register(ctx context.Context, req *authpb.RegisterRequest) (*authpb.RegisterResponse, error) {
	userID, err := s.useCase.Register(ctx, usecase.RegisterInput{
		Email:         req.Email,
		Password:      req.Password,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		Age:           req.Age,
		MaritalStatus: req.MaritalStatus,
		InviteToken:   req.InviteToken,
	})
	if err != nil {
		return nil, rpc.Status(err, "failed to register", errorRules...)
	}
	return &authpb.RegisterResponse{UserID: userID}, nil
}

func (s *AuthServer) Login(ctx context.Context, req *authpb.LoginRequest) (*authpb.TokenPair, error) {
	access, refresh, err := s.useCase.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, rpc.Status(err, "failed to log in", errorRules...)
	}
	return &authpb.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthServer) Validate(_ context.Context, req *authpb.ValidateRequest) (*authpb.ValidateResponse, error) {
	userID, email, err := s.useCase.ValidateAccess(req.AccessToken)
	if err != nil {
		return nil, rpc.Status(err, "invalid token", errorRules...)
	}
	return &authpb.ValidateResponse{UserID: userID, Email: email}, nil
}

func (s *AuthServer) RefreshToken(ctx context.Context, req *authpb.RefreshTokenRequest) (*authpb.TokenPair, error) {
	access, refresh, err := s.useCase.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, rpc.Status(err, "failed to refresh", errorRules...)
	}
	return &authpb.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthServer) Logout(ctx context.Context, req *authpb.LogoutRequest) (*authpb.LogoutResponse, error) {
	if err := s.useCase.Logout(ctx, req.RefreshToken); err != nil {
		return nil, rpc.Status(err, "failed to log out", errorRules...)
	}
	return &authpb.LogoutResponse{Success: true}, nil
}

func (s *AuthServer) ForgotPassword(ctx context.Context, req *authpb.ForgotPasswordRequest) (*authpb.SuccessResponse, error) {
	if err := s.useCase.ForgotPassword(ctx, req.Email); err != nil {
		return nil, rpc.Status(err, "failed to process request", errorRules...)
	}
	return &authpb.SuccessResponse{Success: true}, nil
}

func (s *AuthServer) ResetPassword(ctx context.Context, req *authpb.ResetPasswordRequest) (*authpb.SuccessResponse, error) {
	if err := s.useCase.ResetPassword(ctx, req.Token, req.NewPassword); err != nil {
		return nil, rpc.Status(err, "failed to reset password", errorRules...)
	}
	return &authpb.SuccessResponse{Success: true}, nil
}

func (s *AuthServer) CreateInvite(ctx context.Context, req *authpb.CreateInviteRequest) (*authpb.CreateInviteResponse, error) {
	inv, err := s.useCase.CreateInvite(ctx, req.Email, req.InvitedBy)
	if err != nil {
		return nil, rpc.Status(err, "failed to create invite", errorRules...)
	}
	return &authpb.CreateInviteResponse{Token: inv.Token, ExpiresAt: inv.ExpiresAt}, nil
}

func (s *AuthServer) ValidateInvite(ctx context.Context, req *authpb.ValidateInviteRequest) (*authpb.ValidateInviteResponse, error) {
	email, ok, err := s.useCase.ValidateInvite(ctx, req.Token)
	if err != nil {
		return nil, rpc.Status(err, "failed to check invite", errorRules...)
	}
	return &authpb.ValidateInviteResponse{Valid: ok, Email: email}, nil
}
