// README: Rate grid models: bracket rows, vehicle classes, region surcharges.
package rates

import (
	"autocar/internal/modules/trip"
	"autocar/internal/types"
)

// Bracket is a closed kilometre interval. Rows of a grid are contiguous,
// non-overlapping and sorted ascending (next.KmMin == prev.KmMax + 1).
type Bracket struct {
	KmMin int `json:"km_min"`
	KmMax int `json:"km_max"`
}

func (b Bracket) Contains(km int) bool {
	return km >= b.KmMin && km <= b.KmMax
}

// OneWayRow prices a simple transfer; a single tax-included public price.
type OneWayRow struct {
	Bracket
	Price types.Money `json:"prix_public"`
}

// DayTripRow prices a same-day round trip, one optional price per amplitude
// column. A nil price means that amplitude is not offered at this distance.
type DayTripRow struct {
	Bracket
	Price8h      *types.Money `json:"prix_8h"`
	Price10h     *types.Money `json:"prix_10h"`
	Price12h     *types.Money `json:"prix_12h"`
	Price9hBreak *types.Money `json:"prix_9h_coupure"`
}

// PriceFor returns the price of the given amplitude column, nil when the
// column is not offered at this distance.
func (r DayTripRow) PriceFor(a trip.Amplitude) *types.Money {
	switch a {
	case trip.Amplitude8h:
		return r.Price8h
	case trip.Amplitude10h:
		return r.Price10h
	case trip.Amplitude12h:
		return r.Price12h
	case trip.Amplitude9hBreak:
		return r.Price9hBreak
	}
	return nil
}

// MultiDayRow prices a round trip over several days, with or without the
// vehicle on standby (MAD). Columns cover 2 to 6 days; longer stays pay the
// 6-day price plus ExtraDayPrice per additional day.
type MultiDayRow struct {
	Bracket
	Price2Days    *types.Money `json:"prix_2j"`
	Price3Days    *types.Money `json:"prix_3j"`
	Price4Days    *types.Money `json:"prix_4j"`
	Price5Days    *types.Money `json:"prix_5j"`
	Price6Days    *types.Money `json:"prix_6j"`
	ExtraDayPrice *types.Money `json:"prix_jour_supp"`
}

const (
	minDayColumn = 2
	maxDayColumn = 6
)

// PriceFor returns the price for the day column the given duration clamps to,
// along with the clamped day count. Durations beyond the last column clamp to
// it; the per-extra-day supplement is the compositor's business.
func (r MultiDayRow) PriceFor(days int) (*types.Money, int) {
	if days < minDayColumn {
		days = minDayColumn
	}
	if days > maxDayColumn {
		days = maxDayColumn
	}
	switch days {
	case 2:
		return r.Price2Days, 2
	case 3:
		return r.Price3Days, 3
	case 4:
		return r.Price4Days, 4
	case 5:
		return r.Price5Days, 5
	}
	return r.Price6Days, 6
}

// VehicleClass is a passenger-capacity band with its price coefficient.
// Capacity bands are non-overlapping and jointly cover every count from 1 up.
type VehicleClass struct {
	Code        string  `json:"code"`
	Label       string  `json:"label"`
	PlacesMin   int     `json:"places_min"`
	PlacesMax   int     `json:"places_max"`
	Coefficient float64 `json:"coefficient"`
	// GrandeCapacite marks the double-decker class, which some departments
	// cannot be served with.
	GrandeCapacite bool `json:"grande_capacite"`
}

// RegionSurcharge is a per-department price adjustment. Departments without
// an entry have no surcharge and accept every vehicle class.
type RegionSurcharge struct {
	Code             string  `json:"region_code"`
	Name             string  `json:"region_nom"`
	Percent          float64 `json:"majoration_percent"`
	GrandeCapaciteOK bool    `json:"grande_capacite_dispo"`
}

// Snapshot is one coherent, immutable view of every rate table. It is built
// once by the loader, validated, and shared read-only between concurrent
// calculations; a refresh produces a whole new Snapshot.
type Snapshot struct {
	OneWay            []OneWayRow
	DayTrip           []DayTripRow
	MultiDayStandby   []MultiDayRow
	MultiDayNoStandby []MultiDayRow
	Vehicles          []VehicleClass
	Regions           map[string]RegionSurcharge
}

// Lookup finds the row whose bracket contains km. A km beyond the last
// bracket returns the last row together with the excess kilometres, never a
// miss: out-of-grid distances are extrapolated, not dropped.
func Lookup[T any](rows []T, km int, bracketOf func(T) Bracket) (row T, excessKm int, ok bool) {
	if len(rows) == 0 {
		var zero T
		return zero, 0, false
	}
	for _, r := range rows {
		if bracketOf(r).Contains(km) {
			return r, 0, true
		}
	}
	last := rows[len(rows)-1]
	if km > bracketOf(last).KmMax {
		return last, km - bracketOf(last).KmMax, true
	}
	var zero T
	return zero, 0, false
}

// VehicleByCode resolves an explicit operator override.
func (s *Snapshot) VehicleByCode(code string) (VehicleClass, bool) {
	for _, v := range s.Vehicles {
		if v.Code == code {
			return v, true
		}
	}
	return VehicleClass{}, false
}

// VehicleForPassengers picks the class whose capacity band contains the
// passenger count. Counts above every band fall into the largest class.
func (s *Snapshot) VehicleForPassengers(n int) (VehicleClass, bool) {
	if n < 1 || len(s.Vehicles) == 0 {
		return VehicleClass{}, false
	}
	var largest VehicleClass
	for _, v := range s.Vehicles {
		if n >= v.PlacesMin && n <= v.PlacesMax {
			return v, true
		}
		if v.PlacesMax > largest.PlacesMax {
			largest = v
		}
	}
	if n > largest.PlacesMax {
		return largest, true
	}
	return VehicleClass{}, false
}

// LargestDispatchable returns the biggest class allowed everywhere, used when
// the double-decker cannot be sent into the departure region.
func (s *Snapshot) LargestDispatchable() (VehicleClass, bool) {
	var best VehicleClass
	found := false
	for _, v := range s.Vehicles {
		if v.GrandeCapacite {
			continue
		}
		if !found || v.PlacesMax > best.PlacesMax {
			best = v
			found = true
		}
	}
	return best, found
}

// Region looks up the surcharge entry for a department code.
func (s *Snapshot) Region(dept string) (RegionSurcharge, bool) {
	r, ok := s.Regions[dept]
	return r, ok
}
