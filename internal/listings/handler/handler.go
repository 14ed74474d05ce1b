package handler

import (
	"net/http"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/listings/repository"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/listings/service"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/listings/transport"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/httpkit"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid listing id"
)

// Handler handles HTTP requests for listings.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new listings handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the listing routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.DELETE("/:id", h.Delete)
	rg.PUT("/:id/enrichment", h.UpdateEnrichment)
	rg.POST("/rank", h.Rank)
}

// Create handles POST /api/v1/listings
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	listing, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toResponse(listing))
}

// List handles GET /api/v1/listings
func (h *Handler) List(c *gin.Context) {
	listings, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	out := make([]transport.ListingResponse, 0, len(listings))
	for i := range listings {
		out = append(out, toResponse(&listings[i]))
	}
	httpkit.OK(c, out)
}

// GetByID handles GET /api/v1/listings/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	listing, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(listing))
}

// Delete handles DELETE /api/v1/listings/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); httpkit.HandleError(c, err) {
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateEnrichment handles PUT /api/v1/listings/:id/enrichment
func (h *Handler) UpdateEnrichment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.EnrichmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	listing, err := h.svc.UpdateEnrichment(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(listing))
}

// Rank handles POST /api/v1/listings/rank
func (h *Handler) Rank(c *gin.Context) {
	var req transport.RankListingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Rank(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func toResponse(listing *repository.Listing) transport.ListingResponse {
	resp := transport.ListingResponse{
		ID:              listing.ID,
		Address:         listing.Address,
		City:            listing.City,
		Price:           listing.Price,
		Bedrooms:        listing.Bedrooms,
		Bathrooms:       listing.Bathrooms,
		LivingAreaSqft:  listing.LivingAreaSqft,
		ConditionRating: listing.ConditionRating,
		HasGarage:       listing.HasGarage,
		HasPool:         listing.HasPool,
		Enrichment: transport.EnrichmentResponse{
			WalkScore:            listing.WalkScore,
			CommuteScore:         listing.CommuteScore,
			SchoolRating:         listing.SchoolRating,
			CrimeSafetyIndex:     listing.CrimeSafetyIndex,
			FloodZone:            listing.FloodZone,
			AirQualityIndex:      listing.AirQualityIndex,
			MarketTrendIndex:     listing.MarketTrendIndex,
			NeighborhoodActivity: listing.NeighborhoodActivity,
			SizePercentile:       listing.SizePercentile,
		},
		CreatedAt: listing.CreatedAt,
		UpdatedAt: listing.UpdatedAt,
	}
	if listing.PostalCode != nil {
		resp.PostalCode = *listing.PostalCode
	}
	return resp
}
