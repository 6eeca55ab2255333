package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/athletex/gym-api/internal/model"
)

const (
	// ContextCaller is the gin context key holding the authenticated caller
	ContextCaller = "caller"

	// HeaderAuthToken is the legacy client header carrying a bare token
	HeaderAuthToken = "x-auth-token"
)

// CallerResolver validates a session token and returns the caller it
// identifies.
type CallerResolver interface {
	ResolveCaller(ctx context.Context, token string) (*model.Caller, error)
}

// Authenticate requires a valid session token, presented either as a
// Bearer Authorization header or in the x-auth-token header. On success
// the caller is stored in the gin context.
func Authenticate(resolver CallerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "authentication required",
				TraceID: c.GetString(ContextRequestID),
			})
			return
		}

		caller, err := resolver.ResolveCaller(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "invalid or expired token",
				TraceID: c.GetString(ContextRequestID),
			})
			return
		}

		c.Set(ContextCaller, *caller)
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers. Must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok || !caller.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "admin access required",
				TraceID: c.GetString(ContextRequestID),
			})
			return
		}
		c.Next()
	}
}

// GetCaller returns the authenticated caller set by Authenticate
func GetCaller(c *gin.Context) (model.Caller, bool) {
	v, ok := c.Get(ContextCaller)
	if !ok {
		return model.Caller{}, false
	}
	caller, ok := v.(model.Caller)
	return caller, ok
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.GetHeader(HeaderAuthToken)
}
