// README: Tariff handler: the quote form's price suggestion endpoint.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autocar/internal/modules/rates"
	"autocar/internal/modules/tariff"
)

type TariffHandler struct {
	rates  *rates.Service
	tariff *tariff.Service
}

func NewTariffHandler(ratesSvc *rates.Service, tariffSvc *tariff.Service) *TariffHandler {
	return &TariffHandler{rates: ratesSvc, tariff: tariffSvc}
}

// Compute prices a trip against the current rate snapshot and returns the
// suggested sale price with its full breakdown.
func (h *TariffHandler) Compute(c *gin.Context) {
	var params tariff.Params
	if err := c.ShouldBindJSON(&params); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	snap, err := h.rates.Snapshot()
	if err != nil {
		writeTariffError(c, err)
		return
	}

	result, err := h.tariff.Compute(params, snap)
	if err != nil {
		writeTariffError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, result)
}
