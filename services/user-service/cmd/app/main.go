package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/chooselife/strongfoundations/pkg/database"
	"github.com/chooselife/strongfoundations/pkg/logger"
	"github.com/chooselife/strongfoundations/services/user-service/config"
	"github.com/chooselife/strongfoundations/services/user-service/internal/application/usecase"
	"github.com/chooselife/strongfoundations/services/user-service/internal/domain"
	"github.com/chooselife/strongfoundations/services/user-service/internal/infrastructure/repository"
	grpc_server "github.com/chooselife/strongfoundations/services/user-service/internal/transport/grpc"
	"github.com/chooselife/strongfoundations/services/user-service/pkg/userpb"

	"google.golang.org/grpc"
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

	db, err := database.Open(cfg.Database(), &domain.Profile{}, &domain.CompletionRecord{})
	if err != nil {
		log.Fatal("failed to open database", "error", err)
	}

	tracker := usecase.NewProgressTracker(repository.NewProgressRepository(db), log)
	profiles := usecase.NewProfileService(repository.NewProfileRepository(db), log)
	userServer := grpc_server.NewUserServer(tracker, profiles)

	lis, err := net.Listen("tcp", cfg.GRPCPort)
	if err != nil {
		log.Fatal("failed to listen", "addr", cfg.GRPCPort, "error", err)
	}

	grpcServer := grpc.NewServer()
	userpb.RegisterUserServiceServer(grpcServer, userServer)
	reflection.Register(grpcServer)

	go func() {
		log.Info("user service running", "addr", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal("failed to serve", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("shutting down user service")
	grpcServer.GracefulStop()
}
