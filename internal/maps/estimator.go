package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// Estimator handles interactions with the Google Maps Directions API. It only
// pre-fills the distance field of the quote form; the tariff engine itself
// never performs network I/O.
type Estimator struct {
	client *maps.Client
}

// NewEstimator creates a new Estimator with the given API key.
func NewEstimator(apiKey string) (*Estimator, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Estimator{client: client}, nil
}

// Estimate is a driving-route estimate between two free-text addresses.
type Estimate struct {
	DistanceKm float64       `json:"distance_km"`
	Duration   time.Duration `json:"duration"`
	Summary    string        `json:"summary"`
}

// Estimate returns the driving distance and duration from origin to
// destination, biased to France.
func (e *Estimator) Estimate(ctx context.Context, origin, destination string) (Estimate, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Language:    "fr",
		Region:      "FR",
	}

	routes, _, err := e.client.Directions(ctx, r)
	if err != nil {
		return Estimate{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return Estimate{}, fmt.Errorf("no route found")
	}

	leg := routes[0].Legs[0]
	return Estimate{
		DistanceKm: float64(leg.Distance.Meters) / 1000,
		Duration:   leg.Duration,
		Summary:    routes[0].Summary,
	}, nil
}
