package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chooselife/strongfoundations/pkg/database"
	"github.com/chooselife/strongfoundations/pkg/logger"
	"github.com/chooselife/strongfoundations/pkg/metrics"
	"github.com/chooselife/strongfoundations/services/course-service/config"
	"github.com/chooselife/strongfoundations/services/course-service/internal/application/usecase"
	"github.com/chooselife/strongfoundations/services/course-service/internal/catalog"
	"github.com/chooselife/strongfoundations/services/course-service/internal/domain"
	"github.com/chooselife/strongfoundations/services/course-service/internal/infrastructure/repository"
	grpc_server "github.com/chooselife/strongfoundations/services/course-service/internal/transport/grpc"
	"github.com/chooselife/strongfoundations/services/course-service/pkg/coursepb"
	"github.com/chooselife/strongfoundations/services/user-service/pkg/userpb"

	"github.com/prometheus/client_golang/prometheus/promhttp"
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

	db, err := database.Open(cfg.Database(), &domain.Lesson{})
	if err != nil {
		log.Fatal("failed to open database", "error", err)
	}
	repo := repository.NewLessonRepository(db)

	if cfg.SeedOnStart {
		lessons, err := catalog.Fixture()
		if err != nil {
			log.Fatal("failed to decode seed lessons", "error", err)
		}
		n, err := repo.SeedIfEmpty(context.Background(), lessons)
		if err != nil {
			log.Fatal("failed to seed lessons", "error", err)
		}
		if n > 0 {
			log.Info("lessons seeded", "count", n)
		}
	}

	source, err := catalog.New(cfg.CatalogSource, repo)
	if err != nil {
		log.Fatal("invalid catalog source", "error", err)
	}

	userConn, err := grpc.NewClient(cfg.UserSvcUrl, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("failed to create user service client", "error", err)
	}
	defer userConn.Close()
	userClient := userpb.NewUserServiceClient(userConn)

	m := metrics.NewMetrics()
	courseServer := grpc_server.NewCourseServer(
		usecase.NewCourseUseCase(source, userClient, m, log),
		usecase.NewAdminUseCase(repo, log),
	)

	lis, err := net.Listen("tcp", cfg.GRPCPort)
	if err != nil {
		log.Fatal("failed to listen", "addr", cfg.GRPCPort, "error", err)
	}

	grpcServer := grpc.NewServer()
	coursepb.RegisterCourseServiceServer(grpcServer, courseServer)
	reflection.Register(grpcServer)

	go func() {
		log.Info("course service running", "addr", cfg.GRPCPort, "catalog", source.Name())
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal("failed to serve", "error", err)
		}
	}()

	var metricsSrv *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics listener stopped", "error", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("shutting down course service")
	if metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = metricsSrv.Shutdown(ctx)
		cancel()
	}
	grpcServer.GracefulStop()
}
