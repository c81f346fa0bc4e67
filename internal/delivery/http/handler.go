package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopassist/backend/internal/domain"
	"github.com/shopassist/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommendations *usecase.RecommendationService
}

// NewHandler creates a new HTTP handler
func NewHandler(recommendations *usecase.RecommendationService) *Handler {
	return &Handler{
		recommendations: recommendations,
	}
}

// recommendRequest is the body of POST /api/recommend
type recommendRequest struct {
	Query string `json:"query"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shopassist-backend",
		"version": "1.0.0",
	})
}

// Recommend handles shopping recommendation requests
func (h *Handler) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": `Invalid or missing "query" in request body.`,
		})
		return
	}

	result, err := h.recommendations.Recommend(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": `Invalid or missing "query" in request body.`,
			})
			return
		}

		log.Printf("[HTTP] recommendation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error.",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
