package handler

import (
	"net/http"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/profiles/service"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/profiles/transport"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/httpkit"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid profile id"
)

// Handler handles HTTP requests for preference profiles.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new profiles handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the profile routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/apply-preset", h.ApplyPreset)
}

// RegisterPresetRoutes registers the preset discovery route.
func (h *Handler) RegisterPresetRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListPresets)
}

// Create handles POST /api/v1/profiles
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	profile, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toResponse(profile))
}

// List handles GET /api/v1/profiles?ownerId=...
func (h *Handler) List(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Query("ownerId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "ownerId query parameter is required", nil)
		return
	}

	profiles, err := h.svc.ListByOwner(c.Request.Context(), ownerID)
	if httpkit.HandleError(c, err) {
		return
	}

	out := make([]transport.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toResponse(p))
	}
	httpkit.OK(c, out)
}

// GetByID handles GET /api/v1/profiles/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	profile, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(profile))
}

// Update handles PUT /api/v1/profiles/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	profile, err := h.svc.Update(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(profile))
}

// Delete handles DELETE /api/v1/profiles/:id
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

// ApplyPreset handles POST /api/v1/profiles/:id/apply-preset
func (h *Handler) ApplyPreset(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.ApplyPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	profile, err := h.svc.ApplyPreset(c.Request.Context(), id, req.Preset)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(profile))
}

// ListPresets handles GET /api/v1/presets
func (h *Handler) ListPresets(c *gin.Context) {
	httpkit.OK(c, h.svc.Presets())
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func toResponse(profile scoring.PreferenceProfile) transport.ProfileResponse {
	resp := transport.ProfileResponse{
		ID:         profile.ID,
		OwnerID:    profile.Owner,
		Factors:    make([]transport.FactorSelectionDTO, 0, len(profile.Factors)),
		PresetName: profile.PresetName,
		CreatedAt:  profile.CreatedAt,
		UpdatedAt:  profile.UpdatedAt,
	}
	for _, f := range profile.Factors {
		resp.Factors = append(resp.Factors, transport.FactorSelectionDTO{
			FactorID: f.FactorID,
			Weight:   f.Weight,
			Enabled:  f.Enabled,
		})
	}
	if profile.Budget != nil {
		resp.Budget = &transport.BudgetDTO{Min: profile.Budget.Min, Max: profile.Budget.Max}
	}
	return resp
}
