package handlers

import (
	"net/http"

	"github.com/chooselife/strongfoundations/services/api-gateway/internal/middleware"
	"github.com/chooselife/strongfoundations/services/user-service/pkg/userpb"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	client userpb.UserServiceClient
}

func NewUserHandler(client userpb.UserServiceClient) *UserHandler {
	return &UserHandler{client: client}
}

type profileReq struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	ContactNumber string `json:"contact_number"`
	Age           *int   `json:"age"`
	MaritalStatus string `json:"marital_status"`
}

// GET /api/v1/user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	res, err := h.client.GetProfile(c.Request.Context(), &userpb.GetProfileRequest{
		UserID: c.GetString(middleware.UserIDKey),
		Email:  c.GetString(middleware.EmailKey),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res.Profile)
}

// PUT /api/v1/user/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req profileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.client.UpdateProfile(c.Request.Context(), &userpb.UpdateProfileRequest{
		UserID:        c.GetString(middleware.UserIDKey),
		Email:         c.GetString(middleware.EmailKey),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		Age:           req.Age,
		MaritalStatus: req.MaritalStatus,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res.Profile)
}
