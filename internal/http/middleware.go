package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jessbook/internal/auth"
)

// Context keys set by the middleware chain.
const (
	ctxUserID    = "userID"
	ctxUserRole  = "userRole"
	ctxRequestID = "requestID"
)

// corsMiddleware allows the configured browser client. Cookies only flow
// cross-site when the origin is explicit and credentials are allowed, so a
// wildcard origin would break the whole credential flow.
func corsMiddleware(clientOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", clientOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware tags every request so 500 causes can be correlated in
// the server log without leaking them to clients.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxRequestID, uuid.NewString())
		c.Next()
	}
}

// requireAuth verifies the session cookie and stores the asserted identity in
// the request context. Missing and invalid tokens are both 401.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated."})
			return
		}

		userID, role, err := h.auth.VerifySession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authentication"})
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxUserRole, role)
		c.Next()
	}
}

func loggedInUserID(c *gin.Context) int64 {
	return c.GetInt64(ctxUserID)
}
