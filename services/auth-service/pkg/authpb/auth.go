// Package authpb is the wire contract of the auth service.
package authpb

import (
	"context"
	"time"

	"github.com/chooselife/strongfoundations/pkg/rpc"

	"google.golang.org/grpc"
)

const ServiceName = "strongfoundations.auth.v1.AuthService"

type RegisterRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	ContactNumber string `json:"contact_number,omitempty"`
	Age           *int   `json:"age,omitempty"`
	MaritalStatus string `json:"marital_status,omitempty"`
	InviteToken   string `json:"invite_token,omitempty"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type ValidateRequest struct {
	AccessToken string `json:"access_token"`
}

type ValidateResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type CreateInviteRequest struct {
	Email     string `json:"email"`
	InvitedBy string `json:"invited_by,omitempty"`
}

type CreateInviteResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ValidateInviteRequest struct {
	Token string `json:"token"`
}

type ValidateInviteResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email,omitempty"`
}

type AuthServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*TokenPair, error)
	Validate(context.Context, *ValidateRequest) (*ValidateResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*TokenPair, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	ForgotPassword(context.Context, *ForgotPasswordRequest) (*SuccessResponse, error)
	ResetPassword(context.Context, *ResetPasswordRequest) (*SuccessResponse, error)
	CreateInvite(context.Context, *CreateInviteRequest) (*CreateInviteResponse, error)
	ValidateInvite(context.Context, *ValidateInviteRequest) (*ValidateInviteResponse, error)
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	rpc.Register(s, ServiceName,
		rpc.Unary(ServiceName, "Register", srv.Register),
		rpc.Unary(ServiceName, "Login", srv.Login),
		rpc.Unary(ServiceName, "Validate", srv.Validate),
		rpc.Unary(ServiceName, "RefreshToken", srv.RefreshToken),
		rpc.Unary(ServiceName, "Logout", srv.Logout),
		rpc.Unary(ServiceName, "ForgotPassword", srv.ForgotPassword),
		rpc.Unary(ServiceName, "ResetPassword", srv.ResetPassword),
		rpc.Unary(ServiceName, "CreateInvite", srv.CreateInvite),
		rpc.Unary(ServiceName, "ValidateInvite", srv.ValidateInvite),
	)
}

type AuthServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenPair, error)
	Validate(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*ValidateResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenPair, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	ForgotPassword(ctx context.Context, in *ForgotPasswordRequest, opts ...grpc.CallOption) (*SuccessResponse, error)
	ResetPassword(ctx context.Context, in *ResetPasswordRequest, opts ...grpc.CallOption) (*SuccessResponse, error)
	CreateInvite(ctx context.Context, in *CreateInviteRequest, opts ...grpc.CallOption) (*CreateInviteResponse, error)
	ValidateInvite(ctx context.Context, in *ValidateInviteRequest, opts ...grpc.CallOption) (*ValidateInviteResponse, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc: cc}
}

func (c *authServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return rpc.Call[RegisterRequest, RegisterResponse](ctx, c.cc, ServiceName, "Register", in, opts...)
}

func (c *authServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenPair, error) {
	return rpc.Call[LoginRequest, TokenPair](ctx, c.cc, ServiceName, "Login", in, opts...)
}

func (c *authServiceClient) Validate(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*ValidateResponse, error) {
	return rpc.Call[ValidateRequest, ValidateResponse](ctx, c.cc, ServiceName, "Validate", in, opts...)
}

func (c *authServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenPair, error) {
	return rpc.Call[RefreshTokenRequest, TokenPair](ctx, c.cc, ServiceName, "RefreshToken", in, opts...)
}

func (c *authServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return rpc.Call[LogoutRequest, LogoutResponse](ctx, c.cc, ServiceName, "Logout", in, opts...)
}

func (c *authServiceClient) ForgotPassword(ctx context.Context, in *ForgotPasswordRequest, opts ...grpc.CallOption) (*SuccessResponse, error) {
	return rpc.Call[ForgotPasswordRequest, SuccessResponse](ctx, c.cc, ServiceName, "ForgotPassword", in, opts...)
}

func (c *authServiceClient) ResetPassword(ctx context.Context, in *ResetPasswordRequest, opts ...grpc.CallOption) (*SuccessResponse, error) {
	return rpc.Call[ResetPasswordRequest, SuccessResponse](ctx, c.cc, ServiceName, "ResetPassword", in, opts...)
}

func (c *authServiceClient) CreateInvite(ctx context.Context, in *CreateInviteRequest, opts ...grpc.CallOption) (*CreateInviteResponse, error) {
	return rpc.Call[CreateInviteRequest, CreateInviteResponse](ctx, c.cc, ServiceName, "CreateInvite", in, opts...)
}

func (c *authServiceClient) ValidateInvite(ctx context.Context, in *ValidateInviteRequest, opts ...grpc.CallOption) (*ValidateInviteResponse, error) {
	return rpc.Call[ValidateInviteRequest, ValidateInviteResponse](ctx, c.cc, ServiceName, "ValidateInvite", in, opts...)
}
