package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pricecart/backend/internal/domain"
	"github.com/pricecart/backend/internal/usecase"
)

// CompareRequest is the payload for a price comparison request
type CompareRequest struct {
	ZipCode string `json:"zip" binding:"required"`
	Item    string `json:"item" binding:"required"`
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	pricing      *usecase.PricingService
	providerName string
}

// NewHandler creates a new HTTP handler
func NewHandler(pricing *usecase.PricingService, providerName string) *Handler {
	return &Handler{
		pricing:      pricing,
		providerName: providerName,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  "pricecart-backend",
		"provider": h.providerName,
		"version":  "1.0.0",
	})
}

// ListStores resolves stores near the requested zip code
func (h *Handler) ListStores(c *gin.Context) {
	zip := c.Query("zip")
	if zip == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'zip' is required"})
		return
	}

	stores, err := h.pricing.FindStores(c.Request.Context(), zip)
	if err != nil {
		h.writeLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stores": stores,
		"count":  len(stores),
	})
}

// ComparePrices runs the full flow for one request: resolve stores near the
// zip code, quote the item at each, rank the observations. An empty store
// list or an item with no price anywhere is a successful response with an
// informational message, never an error status.
func (h *Handler) ComparePrices(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "both 'zip' and 'item' are required"})
		return
	}

	ctx := c.Request.Context()

	stores, err := h.pricing.FindStores(ctx, req.ZipCode)
	if err != nil {
		h.writeLookupError(c, err)
		return
	}

	if len(stores) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"item":    domain.DisplayItemName(req.Item),
			"stores":  stores,
			"ranked":  []domain.PriceObservation{},
			"message": "no stores found for this zip code",
		})
		return
	}

	result, err := h.pricing.CompareItem(ctx, req.Item, stores)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item query"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "price comparison failed"})
		return
	}

	response := gin.H{
		"item":   domain.DisplayItemName(req.Item),
		"stores": stores,
		"ranked": result.Ranked,
	}
	if result.Best != nil {
		response["best"] = result.Best
	} else {
		response["message"] = "no price found for this item at any store"
	}

	c.JSON(http.StatusOK, response)
}

// writeLookupError maps store-resolution errors onto HTTP statuses
func (h *Handler) writeLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zip code"})
	case errors.Is(err, domain.ErrProviderUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "price provider unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store lookup failed"})
	}
}
