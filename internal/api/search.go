package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Search pagination bounds.
const (
	maxSearchQueryLen  = 2000
	defaultSearchLimit = 25
	maxSearchLimit     = 200
)

// SearchHandler serves the movie search endpoint.
type SearchHandler struct {
	repo MovieRepository
	log  *logrus.Logger
}

// NewSearchHandler creates a SearchHandler with the given repository and logger.
func NewSearchHandler(repo MovieRepository, log *logrus.Logger) *SearchHandler {
	return &SearchHandler{repo: repo, log: log}
}

// Movies handles GET /search.
func (h *SearchHandler) Movies(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "query parameter q is required")

		return
	}

	if len(q) > maxSearchQueryLen {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "query parameter q exceeds maximum length")

		return
	}

	offset := parseOffset(c.DefaultQuery("offset", "0"))
	limit := parseInt(c.DefaultQuery("limit", "25"), defaultSearchLimit, maxSearchLimit)

	movies, err := h.repo.Search(c.Request.Context(), q, offset, limit)
	if err != nil {
		h.log.WithError(err).WithField("request_id", requestID(c)).Error("searching movies")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "search.movies", "results": len(movies)}).Debug("search")

	c.JSON(http.StatusOK, movies)
}
