package handlers

import (
	"net/http"

	"github.com/chooselife/strongfoundations/pkg/metrics"
	"github.com/chooselife/strongfoundations/services/auth-service/pkg/authpb"

	"github.com/gin-gonic/gin"
)

const refreshCookie = "refresh_token"

const refreshMaxAge = 7 * 24 * 3600

// CookieOptions controls the refresh token cookie.
type CookieOptions struct {
	Domain string
	Secure bool
}

type AuthHandler struct {
	client  authpb.AuthServiceClient
	cookie  CookieOptions
	metrics *metrics.Metrics
}

func NewAuthHandler(client authpb.AuthServiceClient, cookie CookieOptions, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{client: client, cookie: cookie, metrics: m}
}

type registerReq struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	ContactNumber string `json:"contact_number"`
	Age           *int   `json:"age"`
	MaritalStatus string `json:"marital_status"`
	InviteToken   string `json:"invite_token"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) setRefresh(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookie, token, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.client.Register(c.Request.Context(), &authpb.RegisterRequest{
		Email:         req.Email,
		Password:      req.Password,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		Age:           req.Age,
		MaritalStatus: req.MaritalStatus,
		InviteToken:   req.InviteToken,
	})
	h.metrics.RecordAuth("register", err)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user_id": res.UserID})
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.client.Login(c.Request.Context(), &authpb.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	h.metrics.RecordAuth("login", err)
	if err != nil {
		writeError(c, err)
		return
	}

	h.setRefresh(c, res.RefreshToken, refreshMaxAge)
	c.JSON(http.StatusOK, gin.H{"access_token": res.AccessToken})
}

// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token not found"})
		return
	}

	res, err := h.client.RefreshToken(c.Request.Context(), &authpb.RefreshTokenRequest{RefreshToken: refreshToken})
	h.metrics.RecordAuth("refresh", err)
	if err != nil {
		h.setRefresh(c, "", -1)
		writeError(c, err)
		return
	}

	h.setRefresh(c, res.RefreshToken, refreshMaxAge)
	c.JSON(http.StatusOK, gin.H{"access_token": res.AccessToken})
}

// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err == nil && refreshToken != "" {
		_, _ = h.client.Logout(c.Request.Context(), &authpb.LogoutRequest{RefreshToken: refreshToken})
	}
	h.setRefresh(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// POST /api/v1/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if _, err := h.client.ForgotPassword(c.Request.Context(), &authpb.ForgotPasswordRequest{Email: req.Email}); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "If the address is registered, a reset link is on its way"})
}

// POST /api/v1/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	_, err := h.client.ResetPassword(c.Request.Context(), &authpb.ResetPasswordRequest{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	h.metrics.RecordAuth("reset_password", err)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/v1/invites/validate?token=
func (h *AuthHandler) ValidateInvite(c *gin.Context) {
	res, err := h.client.ValidateInvite(c.Request.Context(), &authpb.ValidateInviteRequest{Token: c.Query("token")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
