package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/browse"
)

// GraphHandler serves the graph browse endpoint.
type GraphHandler struct {
	repo GraphRepository
	log  *logrus.Logger
}

// NewGraphHandler creates a GraphHandler with the given repository and logger.
func NewGraphHandler(repo GraphRepository, log *logrus.Logger) *GraphHandler {
	return &GraphHandler{repo: repo, log: log}
}

// Browse handles GET /graph. String parameters are normalized permissively
// (clamped, never rejected); only a typed parameter that cannot be coerced
// at all is a validation error. Either way the caller sees an opaque
// envelope whose request_id keys the detailed internal log entry.
func (h *GraphHandler) Browse(c *gin.Context) {
	raw, err := rawFiltersFromQuery(c)
	if err != nil {
		h.log.WithError(err).WithFields(logrus.Fields{
			"request_id": requestID(c),
			"query":      c.Request.URL.RawQuery,
		}).Warn("browse parameter coercion failed")
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, "invalid query parameters")

		return
	}

	filters := browse.Normalize(raw)

	result, err := h.repo.Browse(c.Request.Context(), filters)
	if err != nil {
		h.log.WithError(err).WithFields(logrus.Fields{
			"request_id": requestID(c),
			"mode":       filters.Mode().String(),
			"query":      c.Request.URL.RawQuery,
		}).Error("browsing graph")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, result)
}

// rawFiltersFromQuery collects the browse parameters without normalizing
// them; coercion failures on typed parameters surface as errors.
func rawFiltersFromQuery(c *gin.Context) (browse.RawFilters, error) {
	raw := browse.RawFilters{
		Rel:         c.Query("rel"),
		Root:        c.Query("root"),
		NodeInclude: c.Query("node_incl"),
		NodeExclude: c.Query("node_excl"),
	}

	var err error

	if raw.Depth, err = queryIntPtr(c, "depth"); err != nil {
		return browse.RawFilters{}, err
	}

	if raw.Limit, err = queryIntPtr(c, "limit"); err != nil {
		return browse.RawFilters{}, err
	}

	if raw.ReleasedGTE, err = queryInt64Ptr(c, "released_gte"); err != nil {
		return browse.RawFilters{}, err
	}

	if raw.ReleasedLTE, err = queryInt64Ptr(c, "released_lte"); err != nil {
		return browse.RawFilters{}, err
	}

	return raw, nil
}
