package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"
)

// ConcurrencyLimit returns middleware that caps the number of requests
// handled at once. A request waits for a slot until its context is done,
// then is rejected with 503 rather than queueing unboundedly.
func ConcurrencyLimit(maxInFlight int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(maxInFlight)

	return func(c *gin.Context) {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			respondError(c, http.StatusServiceUnavailable, "overloaded", "server is at capacity")

			return
		}
		defer sem.Release(1)

		c.Next()
	}
}
