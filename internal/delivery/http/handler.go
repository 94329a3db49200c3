package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoplens/backend/internal/domain"
	"github.com/shoplens/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	assistant *usecase.AssistantService
}

// NewHandler creates a new HTTP handler
func NewHandler(assistant *usecase.AssistantService) *Handler {
	return &Handler{assistant: assistant}
}

// queryRequest is the assistant query payload
type queryRequest struct {
	Query string `json:"query" binding:"required"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shoplens-backend",
		"version": "1.0.0",
	})
}

// ListProducts returns the full product catalog
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.assistant.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "could not retrieve products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(products),
		"products": products,
	})
}

// QueryAssistant answers a free-text shopping query with the matched products
// and a generated summary. When only the summary call failed, the matches are
// still returned together with a summary_error field.
func (h *Handler) QueryAssistant(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "query is required",
		})
		return
	}

	result, err := h.assistant.Ask(c.Request.Context(), req.Query)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, result)

	case errors.Is(err, domain.ErrEmptyQuery):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "query is required",
		})

	case errors.Is(err, domain.ErrSummaryUnavailable):
		// Degraded fallback: the deterministic matches are still useful
		c.JSON(http.StatusOK, gin.H{
			"query":         result.Query,
			"filter":        result.Filter,
			"matches":       result.Matches,
			"summary_error": "could not generate summary",
		})

	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "could not retrieve products",
		})
	}
}
