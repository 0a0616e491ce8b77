package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"max.ks1230/fintrack/internal/entity/user"
)

const userKey = "authedUser"

// auth resolves the Bearer token to a user and stores the record in the
// request context. Unknown tokens get 401 without detail.
func (s *Server) auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		u, err := s.users.GetUserByToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userKey, u)
		c.Next()
	}
}

func currentUser(c *gin.Context) user.Record {
	return c.MustGet(userKey).(user.Record)
}

// observe wraps every request in a tracing span and feeds the latency
// histogram.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), c.FullPath())
		defer span.Finish()
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		observeRequest(c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
