package grpc_server

import (
	"context"
	"net"
	"testing"

	"github.com/chooselife/strongfoundations/pkg/database"
	"github.com/chooselife/strongfoundations/pkg/logger"
	"github.com/chooselife/strongfoundations/services/auth-service/internal/application/usecase"
	"github.com/chooselife/strongfoundations/services/auth-service/internal/infrastructure/cache"
	"github.com/chooselife/strongfoundations/services/auth-service/internal/infrastructure/repository"
	"github.com/chooselife/strongfoundations/services/auth-service/internal/infrastructure/security"
	"github.com/chooselife/strongfoundations/services/auth-service/pkg/authpb"
	"github.com/chooselife/strongfoundations/services/user-service/pkg/userpb"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type nopMailer struct{}

func (nopMailer) SendInvite(context.Context, string, string) error     { return nil }
func (nopMailer) SendResetEmail(context.Context, string, string) error { return nil }

type profileStub struct {
	userpb.UserServiceClient
}

func (profileStub) CreateProfile(_ context.Context, in *userpb.CreateProfileRequest, _ ...grpc.CallOption) (*userpb.ProfileResponse, error) {
	return &userpb.ProfileResponse{Profile: userpb.Profile{UserID: in.UserID, Email: in.Email}}, nil
}

func newClient(t *testing.T, opts usecase.Options) authpb.AuthServiceClient {
	t.Helper()
	db, err := database.Open(database.Options{Type: "sqlite", Path: ":memory:"},
		&repository.UserGorm{}, &repository.InviteGorm{})
	require.NoError(t, err)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	uc := usecase.NewAuthUseCase(
		repository.NewUserRepository(db), repository.NewInviteRepository(db),
		cache.NewTokenCache(rdb),
		security.NewPasswordHasherWithCost(bcrypt.MinCost),
		security.NewTokenManager("access", "refresh"),
		nopMailer{}, profileStub{}, logger.Nop(), opts,
	)
	t.Cleanup(uc.Wait)

	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	authpb.RegisterAuthServiceServer(gs, NewAuthServer(uc))
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return authpb.NewAuthServiceClient(conn)
}

func TestSessionOverGRPC(t *testing.T) {
	c := newClient(t, usecase.Options{})
	ctx := context.Background()

	reg, err := c.Register(ctx, &authpb.RegisterRequest{
		Email: "ann@example.com", Password: "secret1", FirstName: "Ann", LastName: "Lee",
	})
	require.NoError(t, err)

	_, err = c.Register(ctx, &authpb.RegisterRequest{
		Email: "ann@example.com", Password: "secret1", FirstName: "Ann", LastName: "Lee",
	})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = c.Login(ctx, &authpb.LoginRequest{Email: "ann@example.com", Password: "nope!!"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	pair, err := c.Login(ctx, &authpb.LoginRequest{Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)

	who, err := c.Validate(ctx, &authpb.ValidateRequest{AccessToken: pair.AccessToken})
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, who.UserID)
	assert.Equal(t, "ann@example.com", who.Email)

	_, err = c.Validate(ctx, &authpb.ValidateRequest{AccessToken: pair.RefreshToken})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	out, err := c.Logout(ctx, &authpb.LogoutRequest{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	assert.True(t, out.Success)

	_, err = c.RefreshToken(ctx, &authpb.RefreshTokenRequest{RefreshToken: pair.RefreshToken})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestInvitesOverGRPC(t *testing.T) {
	c := newClient(t, usecase.Options{InviteOnly: true})
	ctx := context.Background()

	_, err := c.Register(ctx, &authpb.RegisterRequest{
		Email: "ann@example.com", Password: "secret1", FirstName: "Ann", LastName: "Lee",
	})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = c.CreateInvite(ctx, &authpb.CreateInviteRequest{Email: "not-an-email"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	inv, err := c.CreateInvite(ctx, &authpb.CreateInviteRequest{Email: "ann@example.com", InvitedBy: "admin"})
	require.NoError(t, err)
	assert.False(t, inv.ExpiresAt.IsZero())

	check, err := c.ValidateInvite(ctx, &authpb.ValidateInviteRequest{Token: inv.Token})
	require.NoError(t, err)
	assert.True(t, check.Valid)
	assert.Equal(t, "ann@example.com", check.Email)

	_, err = c.Register(ctx, &authpb.RegisterRequest{
		Email: "ann@example.com", Password: "secret1", FirstName: "Ann", LastName: "Lee",
		InviteToken: inv.Token,
	})
	require.NoError(t, err)

	_, err = c.Register(ctx, &authpb.RegisterRequest{
		Email: "ann@example.com", Password: "secret1", FirstName: "Ann", LastName: "Lee",
		InviteToken: inv.Token,
	})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}
