// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autocar/internal/http/handlers"
	"autocar/internal/http/middleware"
	"autocar/internal/maps"
	"autocar/internal/modules/rates"
	"autocar/internal/modules/tariff"
	"autocar/internal/modules/trip"
)

type RouterDeps struct {
	Rates     *rates.Service
	Tariff    *tariff.Service
	TripRules trip.Rules
	Estimator *maps.Estimator
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	tariffHandler := handlers.NewTariffHandler(deps.Rates, deps.Tariff)
	r.POST("/api/tariffs/compute", tariffHandler.Compute)

	tripHandler := handlers.NewTripHandler(deps.TripRules, deps.Estimator)
	r.POST("/api/trips/info", tripHandler.Info)
	r.POST("/api/trips/estimate", tripHandler.Estimate)
	r.POST("/api/trips/department", tripHandler.Department)

	ratesHandler := handlers.NewRatesHandler(deps.Rates)
	r.POST("/api/rates/reload", ratesHandler.Reload)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
