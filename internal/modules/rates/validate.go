// README: Structural validation of a rate snapshot; bad grids are fatal.
package rates

import (
	"errors"
	"fmt"
	"sort"
)

// ErrBadGrid marks a malformed rate configuration. A calculation built on a
// broken grid has real monetary consequences, so these are rejected outright
// instead of being priced on a guess.
var ErrBadGrid = errors.New("malformed rate configuration")

// Validate checks the structural invariants of every table: closed ascending
// contiguous brackets, coefficients of at least 1, non-negative surcharges,
// and vehicle capacity bands that cover every passenger count from 1 up
// without overlap.
func (s *Snapshot) Validate() error {
	if err := validateBrackets("aller_simple", brackets(s.OneWay, func(r OneWayRow) Bracket { return r.Bracket })); err != nil {
		return err
	}
	if err := validateBrackets("ar_journee", brackets(s.DayTrip, func(r DayTripRow) Bracket { return r.Bracket })); err != nil {
		return err
	}
	if err := validateBrackets("ar_sejour_mad", brackets(s.MultiDayStandby, func(r MultiDayRow) Bracket { return r.Bracket })); err != nil {
		return err
	}
	if err := validateBrackets("ar_sejour_sans_mad", brackets(s.MultiDayNoStandby, func(r MultiDayRow) Bracket { return r.Bracket })); err != nil {
		return err
	}
	if err := s.validateVehicles(); err != nil {
		return err
	}
	for code, r := range s.Regions {
		if r.Percent < 0 {
			return fmt.Errorf("%w: region %s has negative surcharge %.2f%%", ErrBadGrid, code, r.Percent)
		}
	}
	return nil
}

func brackets[T any](rows []T, bracketOf func(T) Bracket) []Bracket {
	out := make([]Bracket, len(rows))
	for i, r := range rows {
		out[i] = bracketOf(r)
	}
	return out
}

func validateBrackets(table string, bs []Bracket) error {
	if len(bs) == 0 {
		return fmt.Errorf("%w: table %s is empty", ErrBadGrid, table)
	}
	for i, b := range bs {
		if b.KmMin > b.KmMax {
			return fmt.Errorf("%w: table %s bracket %d has km_min %d > km_max %d",
				ErrBadGrid, table, i, b.KmMin, b.KmMax)
		}
		if i == 0 {
			continue
		}
		if b.KmMin != bs[i-1].KmMax+1 {
			return fmt.Errorf("%w: table %s brackets %d-%d are not contiguous ([%d,%d] then [%d,%d])",
				ErrBadGrid, table, i-1, i, bs[i-1].KmMin, bs[i-1].KmMax, b.KmMin, b.KmMax)
		}
	}
	return nil
}

func (s *Snapshot) validateVehicles() error {
	if len(s.Vehicles) == 0 {
		return fmt.Errorf("%w: no vehicle classes defined", ErrBadGrid)
	}
	sorted := make([]VehicleClass, len(s.Vehicles))
	copy(sorted, s.Vehicles)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PlacesMin < sorted[j].PlacesMin })

	if sorted[0].PlacesMin > 1 {
		return fmt.Errorf("%w: no vehicle class covers %d passenger(s)", ErrBadGrid, 1)
	}
	for i, v := range sorted {
		if v.PlacesMin > v.PlacesMax {
			return fmt.Errorf("%w: vehicle class %s has places_min %d > places_max %d",
				ErrBadGrid, v.Code, v.PlacesMin, v.PlacesMax)
		}
		if v.Coefficient < 1 {
			return fmt.Errorf("%w: vehicle class %s has coefficient %.2f below 1",
				ErrBadGrid, v.Code, v.Coefficient)
		}
		if i == 0 {
			continue
		}
		if v.PlacesMin != sorted[i-1].PlacesMax+1 {
			return fmt.Errorf("%w: vehicle classes %s and %s overlap or leave a capacity gap",
				ErrBadGrid, sorted[i-1].Code, v.Code)
		}
	}
	return nil
}
