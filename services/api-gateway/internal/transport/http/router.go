package handlers

import (
	"net/http"
	"time"

	"github.com/chooselife/strongfoundations/pkg/logger"
	"github.com/chooselife/strongfoundations/pkg/metrics"
	"github.com/chooselife/strongfoundations/services/api-gateway/internal/middleware"
	"github.com/chooselife/strongfoundations/services/auth-service/pkg/authpb"
	"github.com/chooselife/strongfoundations/services/course-service/pkg/coursepb"
	"github.com/chooselife/strongfoundations/services/user-service/pkg/userpb"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps is everything the router needs from the outside world.
type Deps struct {
	Auth           authpb.AuthServiceClient
	Users          userpb.UserServiceClient
	Courses        coursepb.CourseServiceClient
	Limiter        *middleware.RateLimiter
	Metrics        *metrics.Metrics
	Log            *logger.Logger
	AllowedOrigins []string
	Cookie         CookieOptions
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Observe(d.Metrics, d.Log))

	config := cors.DefaultConfig()
	config.AllowOrigins = d.AllowedOrigins
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(config))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := NewAuthHandler(d.Auth, d.Cookie, d.Metrics)
	lessonHandler := NewLessonHandler(d.Courses)
	userHandler := NewUserHandler(d.Users)
	adminHandler := NewAdminHandler(d.Courses, d.Auth)

	requireAuth := middleware.RequireAuth(d.Auth)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.Limiter.Limit("register", 5, 10*time.Minute), authHandler.Register)
			auth.POST("/login", d.Limiter.Limit("login", 5, 1*time.Minute), authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/forgot-password", d.Limiter.Limit("forgot_pass", 1, 5*time.Minute), authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}
		api.GET("/invites/validate", authHandler.ValidateInvite)

		lessons := api.Group("/lessons")
		{
			lessons.GET("", middleware.OptionalAuth(d.Auth), lessonHandler.List)
			lessons.GET("/:slug", middleware.OptionalAuth(d.Auth), lessonHandler.Get)
			lessons.POST("/:slug/complete", requireAuth, lessonHandler.Complete)
		}

		user := api.Group("/user")
		user.Use(requireAuth)
		{
			user.GET("/profile", userHandler.GetProfile)
			user.PUT("/profile", userHandler.UpdateProfile)
		}

		admin := api.Group("/admin")
		admin.Use(requireAuth, middleware.RequireAdmin(d.Users))
		{
			admin.GET("/lessons", adminHandler.ListLessons)
			admin.POST("/lessons", adminHandler.CreateLesson)
			admin.PUT("/lessons/:id", adminHandler.UpdateLesson)
			admin.DELETE("/lessons/:id", adminHandler.DeleteLesson)
			admin.POST("/invites", adminHandler.CreateInvite)
		}
	}

	return r
}
