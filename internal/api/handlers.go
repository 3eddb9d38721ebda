package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hamstring-risk-server/internal/domain"
	"github.com/hamstring-risk-server/internal/service"
)

// validationResponse is the 400 body carrying per-field detail.
type validationResponse struct {
	Error   string                   `json:"error"`
	Details []domain.ValidationError `json:"details"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	modelState := "heuristic"
	if s.scorer.TrainedLoaded() {
		modelState = "trained"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"model":     modelState,
		"timestamp": time.Now().UTC(),
		"version":   "1.0.0",
	})
}

// handlePredict runs a full risk assessment for one biomarker payload.
func (s *Server) handlePredict(c *gin.Context) {
	requestID := c.GetString("correlation_id")

	var payload domain.BiomarkerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAPIError(
			domain.ErrCodeInvalidInput,
			"request body must contain biomarker data",
			err.Error(),
			requestID,
		))
		return
	}

	if validationErrs := service.ValidateBiomarkerPayload(&payload); len(validationErrs) > 0 {
		c.JSON(http.StatusBadRequest, validationResponse{
			Error:   "invalid biomarker data",
			Details: validationErrs,
		})
		return
	}

	result, err := s.predictor.Assess(c.Request.Context(), &payload)
	if err != nil {
		if errors.Is(err, domain.ErrNoUsableData) || errors.Is(err, domain.ErrNoUsableMetabolite) {
			c.JSON(http.StatusBadRequest, domain.NewAPIError(
				domain.ErrCodeNoUsableData,
				"feature preparation failed",
				err.Error(),
				requestID,
			))
			return
		}

		s.logger.WithError(err).WithField("request_id", requestID).Error("Assessment failed")
		c.JSON(http.StatusInternalServerError, domain.NewAPIError(
			domain.ErrCodeInternalServer,
			"an unexpected error occurred during prediction",
			"",
			requestID,
		))
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleBiomarkers returns the biomarker reference table.
func (s *Server) handleBiomarkers(c *gin.Context) {
	c.JSON(http.StatusOK, domain.ReferenceTable())
}
