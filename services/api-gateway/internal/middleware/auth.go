package middleware

import (
	"net/http"
	"strings"

	"github.com/chooselife/strongfoundations/services/auth-service/pkg/authpb"
	"github.com/chooselife/strongfoundations/services/user-service/pkg/userpb"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey = "userId"
	EmailKey  = "email"
)

const adminType = "Admin"

func bearerToken(c *gin.Context) (string, bool, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false, true
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", true, false
	}
	return parts[1], true, true
}

func authenticate(c *gin.Context, auth authpb.AuthServiceClient, token string) bool {
	res, err := auth.Validate(c.Request.Context(), &authpb.ValidateRequest{AccessToken: token})
	if err != nil {
		return false
	}
	c.Set(UserIDKey, res.UserID)
	c.Set(EmailKey, res.Email)
	return true
}

// RequireAuth admits only requests carrying a valid access token.
func RequireAuth(auth authpb.AuthServiceClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, present, ok := bearerToken(c)
		if !present {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}
		if !authenticate(c, auth, token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Next()
	}
}

// OptionalAuth lets guests through with no user id. A token that is sent
// but rejected still yields 401 so the client knows to refresh it.
func OptionalAuth(auth authpb.AuthServiceClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, present, ok := bearerToken(c)
		if !present {
			c.Next()
			return
		}
		if !ok || !authenticate(c, auth, token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin(users userpb.UserServiceClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := users.GetProfile(c.Request.Context(), &userpb.GetProfileRequest{
			UserID: c.GetString(UserIDKey),
			Email:  c.GetString(EmailKey),
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Failed to verify user profile"})
			return
		}
		if res.Profile.Type != adminType {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: admins only"})
			return
		}
		c.Next()
	}
}
