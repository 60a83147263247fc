package handlers

import (
	"net/http"

	"github.com/chooselife/strongfoundations/services/api-gateway/internal/middleware"
	"github.com/chooselife/strongfoundations/services/auth-service/pkg/authpb"
	"github.com/chooselife/strongfoundations/services/course-service/pkg/coursepb"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the lesson CMS and invitations. Routes are mounted
// behind RequireAdmin.
type AdminHandler struct {
	courses coursepb.CourseServiceClient
	auth    authpb.AuthServiceClient
}

func NewAdminHandler(courses coursepb.CourseServiceClient, auth authpb.AuthServiceClient) *AdminHandler {
	return &AdminHandler{courses: courses, auth: auth}
}

type lessonReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url"`
	Order       int    `json:"order" binding:"min=0"`
	Published   bool   `json:"published"`
}

// GET /api/v1/admin/lessons
func (h *AdminHandler) ListLessons(c *gin.Context) {
	res, err := h.courses.AdminListLessons(c.Request.Context(), &coursepb.AdminListLessonsRequest{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/v1/admin/lessons
func (h *AdminHandler) CreateLesson(c *gin.Context) {
	var req lessonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.courses.CreateLesson(c.Request.Context(), &coursepb.CreateLessonRequest{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Order:       req.Order,
		Published:   req.Published,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res.Lesson)
}

// PUT /api/v1/admin/lessons/:id
func (h *AdminHandler) UpdateLesson(c *gin.Context) {
	var req lessonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.courses.UpdateLesson(c.Request.Context(), &coursepb.UpdateLessonRequest{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Order:       req.Order,
		Published:   req.Published,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res.Lesson)
}

// DELETE /api/v1/admin/lessons/:id
func (h *AdminHandler) DeleteLesson(c *gin.Context) {
	if _, err := h.courses.DeleteLesson(c.Request.Context(), &coursepb.DeleteLessonRequest{ID: c.Param("id")}); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/v1/admin/invites
func (h *AdminHandler) CreateInvite(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.auth.CreateInvite(c.Request.Context(), &authpb.CreateInviteRequest{
		Email:     req.Email,
		InvitedBy: c.GetString(middleware.UserIDKey),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
