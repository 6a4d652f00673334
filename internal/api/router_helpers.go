package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/middleware"
)

// requestID extracts the canonical request ID set by the middleware, for
// correlating internal error logs with the opaque responses callers see.
func requestID(c *gin.Context) string {
	return c.GetString(middleware.RequestIDKey)
}

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}
		log.WithFields(fields).Info("request")
	}
}

// maxTitleLen caps movie title path parameters.
const maxTitleLen = 200

// sanitizeTitle trims a title path parameter and checks its bounds.
func sanitizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", fmt.Errorf("title must not be empty")
	}

	if len(t) > maxTitleLen {
		return "", fmt.Errorf("title exceeds maximum length of %d", maxTitleLen)
	}

	return t, nil
}

// maxPaginationOffset caps the maximum offset for paginated queries.
const maxPaginationOffset = 100000

// parseInt parses a positive integer with a fallback and an upper cap.
func parseInt(s string, fallback, maxValue int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}

	if v > maxValue {
		return maxValue
	}

	return v
}

func parseOffset(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}

	if v > maxPaginationOffset {
		return maxPaginationOffset
	}

	return v
}

// queryIntPtr reads an optional integer query parameter. Absence yields nil;
// a value that cannot be coerced to an integer is a validation error.
func queryIntPtr(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %s must be an integer", name)
	}

	return &v, nil
}

// queryInt64Ptr reads an optional 64-bit integer query parameter.
func queryInt64Ptr(c *gin.Context, name string) (*int64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %s must be an integer", name)
	}

	return &v, nil
}
