// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autocar/internal/modules/rates"
	"autocar/internal/modules/tariff"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeTariffError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tariff.ErrBadParams):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, rates.ErrNotLoaded):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, rates.ErrBadGrid):
		// A broken grid is an operations problem, not the caller's.
		writeError(c, http.StatusInternalServerError, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
