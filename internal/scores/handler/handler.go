package handler

import (
	"net/http"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scores/service"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scores/transport"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/httpkit"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for factors, scoring and ranking.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new scores handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterFactorRoutes registers the factor catalog routes.
func (h *Handler) RegisterFactorRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListFactors)
	rg.POST("", h.RegisterFactor)
}

// RegisterScoringRoutes registers the ad-hoc scoring routes.
func (h *Handler) RegisterScoringRoutes(rg *gin.RouterGroup) {
	rg.POST("/score", h.Score)
	rg.POST("/rank", h.Rank)
}

// ListFactors handles GET /api/v1/factors?category=...
func (h *Handler) ListFactors(c *gin.Context) {
	factors, err := h.svc.ListFactors(c.Query("category"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, factors)
}

// RegisterFactor handles POST /api/v1/factors
func (h *Handler) RegisterFactor(c *gin.Context) {
	var req transport.RegisterFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	factor, err := h.svc.RegisterFactor(req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, factor)
}

// Score handles POST /api/v1/scoring/score
func (h *Handler) Score(c *gin.Context) {
	var req transport.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	score, err := h.svc.Score(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, score)
}

// Rank handles POST /api/v1/scoring/rank
func (h *Handler) Rank(c *gin.Context) {
	var req transport.RankRequest
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
