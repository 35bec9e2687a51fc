// README: Rates handler: snapshot reload after rate-table edits.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autocar/internal/modules/rates"
)

type RatesHandler struct {
	rates *rates.Service
}

func NewRatesHandler(svc *rates.Service) *RatesHandler {
	return &RatesHandler{rates: svc}
}

// Reload rebuilds the snapshot from the configuration store. In-flight
// calculations keep the snapshot they started with.
func (h *RatesHandler) Reload(c *gin.Context) {
	snap, err := h.rates.Reload(c.Request.Context())
	if err != nil {
		writeTariffError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"one_way_brackets":  len(snap.OneWay),
		"day_trip_brackets": len(snap.DayTrip),
		"vehicle_classes":   len(snap.Vehicles),
		"regions":           len(snap.Regions),
	})
}
