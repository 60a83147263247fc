package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/chooselife/strongfoundations/pkg/database"
	"github.com/chooselife/strongfoundations/pkg/logger"
	"github.com/chooselife/strongfoundations/services/auth-service/config"
	"github.com/chooselife/strongfoundations/services/auth-service/internal/application/usecase"
	"github.com/chooselife/strongfoundations/services/auth-service/internal/infrastructure/cache"
	"github.com/chooselife/strongfoundations/services/auth-service/internal/infrastructure/email"
	"github.com/chooselife/strongfoundations/services/auth-service/internal/infrastructure/repository"
	"github.com/chooselife/strongfoundations/services/auth-service/internal/infrastructure/security"
	grpc_server "github.com/chooselife/strongfoundations/services/auth-service/internal/transport/grpc"
	"github.com/chooselife/strongfoundations/services/auth-service/pkg/authpb"
	"github.com/chooselife/strongfoundations/services/user-service/pkg/userpb"

	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/reflection"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		log.Fatal("ACCESS_SECRET and REFRESH_SECRET must be set")
	}

	db, err := database.Open(cfg.Database(), &repository.UserGorm{}, &repository.InviteGorm{})
	if err != nil {
		log.Fatal("failed to open database", "error", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
	}
	defer rdb.Close()

	userConn, err := grpc.NewClient(cfg.UserSvcURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("failed to create user service client", "error", err)
	}
	defer userConn.Close()

	authUseCase := usecase.NewAuthUseCase(
		repository.NewUserRepository(db),
		repository.NewInviteRepository(db),
		cache.NewTokenCache(rdb),
		security.NewPasswordHasher(),
		security.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret),
		email.NewEmailSender(cfg.APIKey, cfg.SMTPEmail, cfg.FrontendURL),
		userpb.NewUserServiceClient(userConn),
		log,
		usecase.Options{InviteOnly: cfg.InviteOnly},
	)

	lis, err := net.Listen("tcp", cfg.GRPCPort)
	if err != nil {
		log.Fatal("failed to listen", "addr", cfg.GRPCPort, "error", err)
	}

	grpcServer := grpc.NewServer()
	authpb.RegisterAuthServiceServer(grpcServer, grpc_server.NewAuthServer(authUseCase))
	reflection.Register(grpcServer)

	go func() {
		log.Info("auth service running", "addr", cfg.GRPCPort, "invite_only", cfg.InviteOnly)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal("failed to serve", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("shutting down auth service")
	grpcServer.GracefulStop()
	authUseCase.Wait()
}
