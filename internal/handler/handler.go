package handler

import (
	"net/http"
	"strconv"

	"celiguard/internal/ml"
	"celiguard/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Version reported by the root endpoint.
const Version = "1.0.0"

// AuditStore records served predictions. It is best-effort: audit failures
// never fail a request.
type AuditStore interface {
	InsertPrediction(rec storage.PredictionRecord) error
	RecentPredictions(limit int) ([]storage.PredictionRecord, error)
}

// Handler serves the prediction API. The model is injected so tests can
// substitute a fake; a nil model means the service reports unavailable.
type Handler struct {
	model  ml.Classifier
	meta   *ml.Metadata
	store  AuditStore
	logger *zap.Logger
}

func New(model ml.Classifier, meta *ml.Metadata, store AuditStore, logger *zap.Logger) *Handler {
	return &Handler{model: model, meta: meta, store: store, logger: logger}
}

// Root lists the API surface.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Celiac Disease Malignancy Risk Stratifier API",
		"version": Version,
		"endpoints": gin.H{
			"/health":      "Health check",
			"/predict":     "POST - Predict malignancy risk",
			"/model-info":  "Loaded model metadata",
			"/predictions": "Recent served predictions",
		},
	})
}

// Health reports whether a model is loaded. Always 200: an unloaded model is
// a degraded state, not a dead process.
func (h *Handler) Health(c *gin.Context) {
	var modelType any
	if h.meta != nil {
		modelType = h.meta.ModelType
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"model_loaded": h.model != nil,
		"model_type":   modelType,
	})
}

// ModelInfo echoes the metadata artifact, or 503 when no model is loaded.
func (h *Handler) ModelInfo(c *gin.Context) {
	if h.model == nil || h.meta == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Model not loaded"})
		return
	}
	c.JSON(http.StatusOK, h.meta)
}

// PredictionsResponse wraps the audit log listing.
type PredictionsResponse struct {
	Predictions []storage.PredictionRecord `json:"predictions"`
}

// RecentPredictions returns the newest audit entries.
func (h *Handler) RecentPredictions(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Audit log not available"})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = parsed
	}

	records, err := h.store.RecentPredictions(limit)
	if err != nil {
		h.logger.Error("failed to read prediction audit log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch predictions"})
		return
	}
	c.JSON(http.StatusOK, PredictionsResponse{Predictions: records})
}
