// README: Tariff computation inputs, rules and the operator-facing breakdown.
package tariff

import (
	"fmt"
	"time"

	"autocar/internal/modules/trip"
	"autocar/internal/types"
)

// Params describes one trip to price. Immutable per calculation; the quote
// form sends the whole set on every change.
type Params struct {
	DistanceKm float64          `json:"distance_km"`
	Service    trip.ServiceType `json:"service"`
	// Amplitude is the operator's explicit column choice for a same-day round
	// trip (picking the split-duty column when a break is scheduled). Empty
	// means derive it from the timing.
	Amplitude trip.Amplitude `json:"amplitude,omitempty"`
	// Days is the trip duration for the multi-day services.
	Days int `json:"days,omitempty"`
	// VehicleCode is an explicit operator override of the vehicle class.
	VehicleCode  string `json:"vehicle_code,omitempty"`
	Passengers   int    `json:"passengers"`
	VehicleCount int    `json:"vehicle_count"`
	// DepartureAddress is free text; the department is parsed out of it.
	DepartureAddress string    `json:"departure_address"`
	Departure        time.Time `json:"departure"`
	Return           time.Time `json:"return"`
	// ExtraRegionPercent is a manual surcharge added on top of the looked-up
	// regional percentage, not a replacement.
	ExtraRegionPercent float64 `json:"extra_region_percent,omitempty"`
}

// Rules carries the business constants the grids do not encode. Values come
// from the operational configuration.
type Rules struct {
	Trip trip.Rules
	// ForfaitKmMax is the distance at or below which a same-day round trip is
	// priced as a flat call-out instead of by bracket.
	ForfaitKmMax int
	// ForfaitPrice is that flat call-out price.
	ForfaitPrice types.Money
	// ExtraKmPrice is charged per out-of-grid kilometre, doubled for the
	// return leg.
	ExtraKmPrice types.Money
	// RelayDriverCost is the fixed cost of a second driver.
	RelayDriverCost types.Money
}

// Breakdown is a first-class output: the admin UI shows every intermediate
// quantity next to the final price, and every degraded default lands in
// Notes so a human can catch it.
type Breakdown struct {
	BasePrice    types.Money `json:"base_price"`
	Column       string      `json:"column"`
	Forfait      bool        `json:"forfait"`
	BracketKmMin int         `json:"bracket_km_min"`
	BracketKmMax int         `json:"bracket_km_max"`

	OutOfGrid          bool        `json:"out_of_grid"`
	OutOfGridKm        int         `json:"out_of_grid_km"`
	OutOfGridSurcharge types.Money `json:"out_of_grid_surcharge"`

	ExtraDays          int         `json:"extra_days"`
	ExtraDaySupplement types.Money `json:"extra_day_supplement"`

	VehicleCode  string  `json:"vehicle_code"`
	VehicleLabel string  `json:"vehicle_label"`
	Coefficient  float64 `json:"coefficient"`
	VehicleCount int     `json:"vehicle_count"`

	RegionCode          string  `json:"region_code"`
	RegionName          string  `json:"region_name"`
	RegionPercent       float64 `json:"region_percent"`
	ManualRegionPercent float64 `json:"manual_region_percent"`

	DriverCount     int         `json:"driver_count"`
	TwoDriverReason string      `json:"two_driver_reason,omitempty"`
	RelayCost       types.Money `json:"relay_cost"`

	Notes []string `json:"notes,omitempty"`
}

func (b *Breakdown) note(format string, args ...any) {
	b.Notes = append(b.Notes, fmt.Sprintf(format, args...))
}

// Result is the compositor's full answer: the suggested sale price plus the
// breakdown behind it. Operators may still override the price on the quote.
type Result struct {
	Price     types.Money `json:"price"`
	Breakdown Breakdown   `json:"breakdown"`
}
