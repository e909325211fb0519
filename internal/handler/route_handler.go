package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harsh15-create/real-unfoldindia-backend/internal/application"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/domain/route"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/response"
)

// RouteRequest is the request body for route planning.
type RouteRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
}

// RouteHandler handles HTTP requests for route planning.
type RouteHandler struct {
	service *application.RouteService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(service *application.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// RegisterRoutes registers the route-planning endpoint on the given group.
func (h *RouteHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/api/route", h.ComputeRoutes)
}

// ComputeRoutes handles POST /api/route. It computes driving routes between
// two Indian places and returns up to three alternatives ranked by safety
// score. The optional mode field ("day", default, or "night") shifts
// penalty weights toward isolation and rural-road risk.
func (h *RouteHandler) ComputeRoutes(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "invalid request body")
		return
	}

	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	if origin == "" || destination == "" {
		response.UnprocessableEntity(c, "origin and destination are required")
		return
	}

	mode, err := route.ParseMode(req.Mode)
	if err != nil {
		response.UnprocessableEntity(c, "mode must be 'day' or 'night'")
		return
	}

	result, err := h.service.PlanRoutes(c.Request.Context(), origin, destination, mode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
