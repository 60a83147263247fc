package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusClientClosedRequest is what nginx logs for a client that went away.
const statusClientClosedRequest = 499

var httpStatus = map[codes.Code]int{
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.FailedPrecondition: http.StatusBadRequest,
	codes.Unauthenticated:    http.StatusUnauthorized,
	codes.PermissionDenied:   http.StatusForbidden,
	codes.NotFound:           http.StatusNotFound,
	codes.AlreadyExists:      http.StatusConflict,
	codes.ResourceExhausted:  http.StatusTooManyRequests,
	codes.Unavailable:        http.StatusServiceUnavailable,
	codes.DeadlineExceeded:   http.StatusGatewayTimeout,
}

// Server-side failures carry upstream detail such as dial targets, so the
// reply uses a fixed message for them.
var genericMessage = map[codes.Code]string{
	codes.Unavailable:      "service unavailable",
	codes.DeadlineExceeded: "upstream timeout",
}

// writeError turns an upstream gRPC error into a JSON reply. Nothing is
// written once the caller has gone away.
func writeError(c *gin.Context, err error) {
	if errors.Is(c.Request.Context().Err(), context.Canceled) {
		c.AbortWithStatus(statusClientClosedRequest)
		return
	}
	st, _ := status.FromError(err)
	if st.Code() == codes.Canceled {
		c.AbortWithStatus(statusClientClosedRequest)
		return
	}
	code, ok := httpStatus[st.Code()]
	if !ok {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if msg, generic := genericMessage[st.Code()]; generic {
		_ = c.Error(err)
		c.AbortWithStatusJSON(code, gin.H{"error": msg})
		return
	}
	c.AbortWithStatusJSON(code, gin.H{"error": st.Message()})
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
