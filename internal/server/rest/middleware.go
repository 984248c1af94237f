package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/resumerag/internal/common"
)

const contextUserIDKey = "user_id"

// authJWT rejects requests without a valid bearer token and stores the
// user ID in the gin context.
func (s *HTTPServer) authJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := common.BearerToken(c.GetHeader(common.AuthorizationHeaderName))
		if !ok {
			abortWithError(c, http.StatusUnauthorized, "Authorization token required.")
			return
		}

		userID, err := s.users.Authenticate(token)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Token expired.")
				return
			}
			abortWithError(c, http.StatusUnauthorized, "Invalid token.")
			return
		}

		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

func userIDFromContext(c *gin.Context) (int64, bool) {
	v, ok := c.Get(contextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// requestLogger logs every request with its X-Request-ID, generating one
// when the client sent none, and echoes the ID back.
func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(common.RequestIDHeaderName)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(common.RequestIDHeaderName, requestID)

		started := time.Now()
		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(started),
		)
	}
}
