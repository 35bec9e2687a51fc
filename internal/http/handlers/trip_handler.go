// README: Trip handlers: crew/amplitude info and maps-based distance pre-fill.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"autocar/internal/maps"
	"autocar/internal/modules/trip"
)

type TripHandler struct {
	rules     trip.Rules
	estimator *maps.Estimator // nil when no API key is configured
}

func NewTripHandler(rules trip.Rules, estimator *maps.Estimator) *TripHandler {
	return &TripHandler{rules: rules, estimator: estimator}
}

type tripInfoReq struct {
	DistanceKm float64          `json:"distance_km"`
	Service    trip.ServiceType `json:"service"`
	Departure  time.Time        `json:"departure"`
	Return     time.Time        `json:"return"`
}

// Info recomputes driver count and amplitude for the quote form; the form
// calls it on every time/date/service change.
func (h *TripHandler) Info(c *gin.Context) {
	var req tripInfoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !req.Service.Valid() {
		writeError(c, http.StatusBadRequest, "unknown service type")
		return
	}
	info := trip.ComputeInfo(req.DistanceKm, req.Service, req.Departure, req.Return, h.rules)
	writeJSON(c, http.StatusOK, info)
}

type estimateReq struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// Estimate pre-fills the distance field from two addresses via the routing
// API. Purely a convenience; operators can always type the distance.
func (h *TripHandler) Estimate(c *gin.Context) {
	if h.estimator == nil {
		writeError(c, http.StatusServiceUnavailable, "route estimation not configured")
		return
	}
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Origin == "" || req.Destination == "" {
		writeError(c, http.StatusBadRequest, "origin and destination are required")
		return
	}
	est, err := h.estimator.Estimate(c.Request.Context(), req.Origin, req.Destination)
	if err != nil {
		writeError(c, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, est)
}

type departmentReq struct {
	Address string `json:"address"`
}

// Department exposes the postal-code parser so the form can show the region
// surcharge before a full computation.
func (h *TripHandler) Department(c *gin.Context) {
	var req departmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	dept, ok := trip.ExtractDepartment(req.Address)
	writeJSON(c, http.StatusOK, gin.H{"department": dept, "found": ok})
}
