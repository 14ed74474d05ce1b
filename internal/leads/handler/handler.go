package handler

import (
	"net/http"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/leads/repository"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/leads/service"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/leads/transport"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/httpkit"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid lead id"
)

// Handler handles HTTP requests for leads.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new leads handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the lead routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/engagement", h.RecordEngagement)
	rg.GET("/:id/score", h.Score)
	rg.POST("/grade", h.GradeAll)
}

// Create handles POST /api/v1/leads
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	lead, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toResponse(lead))
}

// List handles GET /api/v1/leads
func (h *Handler) List(c *gin.Context) {
	leads, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	out := make([]transport.LeadResponse, 0, len(leads))
	for i := range leads {
		out = append(out, toResponse(&leads[i]))
	}
	httpkit.OK(c, out)
}

// GetByID handles GET /api/v1/leads/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	lead, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(lead))
}

// Update handles PATCH /api/v1/leads/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	lead, err := h.svc.Update(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(lead))
}

// Delete handles DELETE /api/v1/leads/:id
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

// RecordEngagement handles POST /api/v1/leads/:id/engagement
func (h *Handler) RecordEngagement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.EngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	lead, err := h.svc.RecordEngagement(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(lead))
}

// Score handles GET /api/v1/leads/:id/score. It grades fresh, persists and
// returns the full factor breakdown.
func (h *Handler) Score(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	score, err := h.svc.Score(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, score)
}

// GradeAll handles POST /api/v1/leads/grade
func (h *Handler) GradeAll(c *gin.Context) {
	graded, failed, err := h.svc.GradeAll(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"graded": graded, "failed": failed})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func toResponse(lead *repository.Lead) transport.LeadResponse {
	resp := transport.LeadResponse{
		ID:               lead.ID,
		FirstName:        lead.FirstName,
		LastName:         lead.LastName,
		Budget:           lead.Budget,
		PropertyViews:    lead.PropertyViews,
		EmailOpens:       lead.EmailOpens,
		ShowingsAttended: lead.ShowingsAttended,
		LastContactAt:    lead.LastContactAt,
		CreatedAt:        lead.CreatedAt,
		UpdatedAt:        lead.UpdatedAt,
	}
	if lead.Email != nil {
		resp.Email = *lead.Email
	}
	if lead.Phone != nil {
		resp.Phone = *lead.Phone
	}
	if lead.Source != nil {
		resp.Source = *lead.Source
	}
	if lead.TimelineText != nil {
		resp.TimelineText = *lead.TimelineText
	}
	if lead.Score != nil && lead.Grade != nil && lead.Classification != nil {
		summary := transport.ScoreSummary{
			TotalScore:     *lead.Score,
			Grade:          *lead.Grade,
			Classification: *lead.Classification,
			ScoredAt:       lead.ScoredAt,
		}
		if lead.Recommendation != nil {
			summary.Recommendation = *lead.Recommendation
		}
		resp.Score = &summary
	}
	return resp
}
