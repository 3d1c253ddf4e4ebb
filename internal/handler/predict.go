package handler

import (
	"errors"
	"net/http"
	"time"

	"celiguard/internal/models"
	"celiguard/internal/risk"
	"celiguard/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Predict runs one synchronous prediction: validate, classify, map the class
// index to its label, and attach the narrative explanation.
func (h *Handler) Predict(c *gin.Context) {
	var rec models.PatientRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := rec.Validate(); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error(), "fields": verr.Fields})
		} else {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		}
		return
	}

	if h.model == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Model not loaded"})
		return
	}

	classIdx, err := h.model.Classify(rec)
	if err != nil {
		h.predictionError(c, err)
		return
	}
	probs, err := h.model.ClassProbabilities(rec)
	if err != nil {
		h.predictionError(c, err)
		return
	}
	class, err := models.RiskClassFromIndex(classIdx)
	if err != nil {
		h.predictionError(c, err)
		return
	}

	result := models.PredictionResult{
		RiskClass: class.String(),
		RiskScore: probs,
		Message:   risk.Explain(rec, class),
	}

	h.audit(rec, result)
	c.JSON(http.StatusOK, result)
}

// predictionError surfaces a model failure as 500 with the underlying
// message, never swallowed.
func (h *Handler) predictionError(c *gin.Context, err error) {
	perr := &models.PredictionError{Err: err}
	h.logger.Error("prediction failed", zap.Error(perr))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Prediction error: " + err.Error()})
}

func (h *Handler) audit(rec models.PatientRecord, result models.PredictionResult) {
	if h.store == nil {
		return
	}
	entry := storage.PredictionRecord{
		ID:        uuid.New().String(),
		Patient:   rec,
		RiskClass: result.RiskClass,
		RiskScore: result.RiskScore,
		Message:   result.Message,
		CreatedAt: time.Now(),
	}
	if err := h.store.InsertPrediction(entry); err != nil {
		h.logger.Warn("failed to record prediction", zap.String("id", entry.ID), zap.Error(err))
	}
}
