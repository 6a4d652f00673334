// Package api provides HTTP handlers for the movies graph API.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/metrics"
	"github.com/cinegraph/cinegraph/internal/models"
)

// MovieHandler serves single-movie endpoints.
type MovieHandler struct {
	repo MovieRepository
	log  *logrus.Logger
}

// NewMovieHandler creates a MovieHandler with the given repository and logger.
func NewMovieHandler(repo MovieRepository, log *logrus.Logger) *MovieHandler {
	return &MovieHandler{repo: repo, log: log}
}

// Get handles GET /movie/:title.
func (h *MovieHandler) Get(c *gin.Context) {
	title, err := sanitizeTitle(c.Param("title"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	movie, err := h.repo.FindMovie(c.Request.Context(), title)
	if err != nil {
		if errors.Is(err, models.ErrMovieNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "movie not found")

			return
		}

		h.log.WithError(err).WithField("request_id", requestID(c)).Error("getting movie")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, movie)
}

// Vote handles POST /movie/vote/:title.
func (h *MovieHandler) Vote(c *gin.Context) {
	title, err := sanitizeTitle(c.Param("title"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	result, err := h.repo.Vote(c.Request.Context(), title)
	if err != nil {
		if errors.Is(err, models.ErrMovieNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "movie not found")

			return
		}

		h.log.WithError(err).WithField("request_id", requestID(c)).Error("voting for movie")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	metrics.VotesTotal.Inc()

	c.JSON(http.StatusOK, result)
}
