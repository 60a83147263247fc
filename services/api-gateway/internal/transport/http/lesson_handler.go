package handlers

import (
	"net/http"

	"github.com/chooselife/strongfoundations/services/api-gateway/internal/middleware"
	"github.com/chooselife/strongfoundations/services/course-service/pkg/coursepb"

	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	client coursepb.CourseServiceClient
}

func NewLessonHandler(client coursepb.CourseServiceClient) *LessonHandler {
	return &LessonHandler{client: client}
}

// GET /api/v1/lessons
func (h *LessonHandler) List(c *gin.Context) {
	res, err := h.client.ListLessons(c.Request.Context(), &coursepb.ListLessonsRequest{
		UserID: c.GetString(middleware.UserIDKey),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/v1/lessons/:slug
func (h *LessonHandler) Get(c *gin.Context) {
	res, err := h.client.GetLesson(c.Request.Context(), &coursepb.GetLessonRequest{
		Slug:   c.Param("slug"),
		UserID: c.GetString(middleware.UserIDKey),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res.View)
}

// POST /api/v1/lessons/:slug/complete
func (h *LessonHandler) Complete(c *gin.Context) {
	res, err := h.client.CompleteLesson(c.Request.Context(), &coursepb.CompleteLessonRequest{
		Slug:   c.Param("slug"),
		UserID: c.GetString(middleware.UserIDKey),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
