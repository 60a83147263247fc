package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chooselife/strongfoundations/pkg/logger"
	"github.com/chooselife/strongfoundations/pkg/metrics"
	"github.com/chooselife/strongfoundations/services/api-gateway/internal/client"
	"github.com/chooselife/strongfoundations/services/api-gateway/internal/config"
	"github.com/chooselife/strongfoundations/services/api-gateway/internal/middleware"
	handlers "github.com/chooselife/strongfoundations/services/api-gateway/internal/transport/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
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

	if cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
	}
	defer rdb.Close()

	authClient, err := client.NewAuthClient(cfg.AuthSvcUrl)
	if err != nil {
		log.Fatal("failed to create auth client", "error", err)
	}
	defer authClient.Close()

	userClient, err := client.NewUserClient(cfg.UserSvcUrl)
	if err != nil {
		log.Fatal("failed to create user client", "error", err)
	}
	defer userClient.Close()

	courseClient, err := client.NewCourseClient(cfg.CourseSvcUrl)
	if err != nil {
		log.Fatal("failed to create course client", "error", err)
	}
	defer courseClient.Close()

	m := metrics.NewMetrics()
	router := handlers.NewRouter(handlers.Deps{
		Auth:           authClient.Client,
		Users:          userClient.Client,
		Courses:        courseClient.Client,
		Limiter:        middleware.NewRateLimiter(rdb, m, log),
		Metrics:        m,
		Log:            log,
		AllowedOrigins: cfg.Origins(),
		Cookie:         handlers.CookieOptions{Domain: cfg.CookieDomain, Secure: cfg.CookieSecure},
	})

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("api gateway running", "addr", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to serve", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("shutting down api gateway")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
