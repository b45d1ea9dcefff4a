package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kcet-predictor/engine"
	apperrors "kcet-predictor/errors"
	"kcet-predictor/metrics"
	"kcet-predictor/web/middleware"
	"kcet-predictor/web/types"
)

// noMatchMessage mirrors the advice shown when filters are valid but no
// college admits the rank.
const noMatchMessage = "No colleges found matching your criteria. Try adjusting your filters or including nearby ranks."

type PredictHandler struct {
	engine  *engine.Engine
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewPredictHandler(eng *engine.Engine, m *metrics.Metrics, logger *zap.Logger) *PredictHandler {
	return &PredictHandler{
		engine:  eng,
		metrics: m,
		logger:  logger,
	}
}

func (h *PredictHandler) Predict(c *gin.Context) {
	logger := middleware.LoggerFrom(c, h.logger)

	var req types.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("Failed to bind predict request", zap.Error(err))
		h.countOutcome("bad_request")
		respondWithClientError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	matches, err := h.engine.Predict(engine.RawQuery{
		Rank:          req.Rank,
		Category:      req.Category,
		Course:        req.Course,
		RoundName:     req.RoundName,
		IncludeNearby: req.IncludeNearby,
		Institute:     req.Institute,
	})
	if err != nil {
		h.respondPredictError(c, logger, err)
		return
	}

	h.countOutcome("matched")
	if h.metrics != nil {
		h.metrics.PredictionResults.Observe(float64(len(matches)))
	}
	c.JSON(http.StatusOK, matches)
}

// respondPredictError maps each engine failure type to its HTTP shape,
// keeping the diagnostic payload (suggestions, valid filter values) intact.
func (h *PredictHandler) respondPredictError(c *gin.Context, logger *zap.Logger, err error) {
	var resolutionErr *engine.ResolutionError
	var noDataErr *engine.NoDataError
	var noRankErr *engine.NoRankMatchError

	switch {
	case apperrors.IsMissingFields(err), apperrors.IsInvalidRank(err):
		h.countOutcome("bad_request")
		respondWithClientError(c, http.StatusBadRequest, err.Error())

	case errors.As(err, &resolutionErr):
		h.countOutcome("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       resolutionErr.Error(),
			"field":       resolutionErr.Field,
			"suggestions": resolutionErr.Suggestions,
		})

	case errors.As(err, &noDataErr):
		h.countOutcome("no_data")
		c.JSON(http.StatusNotFound, gin.H{
			"error": noDataErr.Error(),
			"available": gin.H{
				"years":      noDataErr.Years,
				"categories": noDataErr.Categories,
				"courses":    noDataErr.Courses,
				"rounds":     noDataErr.Rounds,
			},
		})

	case errors.As(err, &noRankErr):
		h.countOutcome("no_rank_match")
		c.JSON(http.StatusOK, gin.H{"message": noMatchMessage})

	default:
		h.countOutcome("error")
		respondWithError(c, http.StatusInternalServerError, err, "internal error", logger)
	}
}

func (h *PredictHandler) countOutcome(outcome string) {
	if h.metrics != nil {
		h.metrics.PredictionsTotal.WithLabelValues(outcome).Inc()
	}
}
