// README: Price compositor: bracket lookup, coefficients, surcharges, relay cost.
package tariff

import (
	"errors"
	"fmt"
	"math"

	"autocar/internal/modules/rates"
	"autocar/internal/modules/trip"
	"autocar/internal/types"
)

var ErrBadParams = errors.New("invalid trip parameters")

type Service struct {
	rules Rules
}

func NewService(rules Rules) *Service {
	return &Service{rules: rules}
}

// Compute turns trip parameters and a rate snapshot into a suggested sale
// price with a full breakdown. Missing data (no bracket, unknown vehicle,
// absent region entry) degrades to documented defaults surfaced in the
// breakdown notes; only a structurally broken grid is an error. Pure: same
// params and snapshot always give byte-identical output.
func (s *Service) Compute(p Params, snap *rates.Snapshot) (Result, error) {
	if snap == nil {
		return Result{}, fmt.Errorf("%w: no rate snapshot", ErrBadParams)
	}
	if !p.Service.Valid() {
		return Result{}, fmt.Errorf("%w: unknown service type %q", ErrBadParams, p.Service)
	}
	if p.DistanceKm <= 0 {
		return Result{}, fmt.Errorf("%w: distance %.1f km", ErrBadParams, p.DistanceKm)
	}
	if p.Amplitude != "" && !p.Amplitude.Valid() {
		return Result{}, fmt.Errorf("%w: unknown amplitude column %q", ErrBadParams, p.Amplitude)
	}
	if err := snap.Validate(); err != nil {
		return Result{}, err
	}

	b := Breakdown{VehicleCount: p.VehicleCount, Coefficient: 1}
	if b.VehicleCount < 1 {
		b.VehicleCount = 1
	}

	info := trip.ComputeInfo(p.DistanceKm, p.Service, p.Departure, p.Return, s.rules.Trip)
	b.DriverCount = info.DriverCount
	b.TwoDriverReason = info.TwoDriverReason

	region, regionFound := s.resolveRegion(p, snap, &b)
	vehicle := s.resolveVehicle(p, snap, region, regionFound, &b)
	b.VehicleCode = vehicle.Code
	b.VehicleLabel = vehicle.Label
	if vehicle.Coefficient > 0 {
		b.Coefficient = vehicle.Coefficient
	}

	base := s.basePrice(p, snap, info, &b)
	b.BasePrice = base

	// Composition order mirrors the quote form: grid price, vehicle
	// coefficient, vehicle count, regional percentage. Rounded to the cent
	// after every multiplicative step.
	total := base.MulRound(b.Coefficient)
	total = total.MulInt(int64(b.VehicleCount))
	if pct := b.RegionPercent + b.ManualRegionPercent; pct != 0 {
		total = total.MulRound(1 + pct/100)
	}

	// Out-of-grid kilometres are billed flat per km, doubled for the return
	// leg, independent of coefficient and region.
	if b.OutOfGridKm > 0 {
		b.OutOfGridSurcharge = s.rules.ExtraKmPrice.MulInt(int64(b.OutOfGridKm)).MulInt(2)
		total = total.Add(b.OutOfGridSurcharge)
	}

	if b.DriverCount == 2 {
		b.RelayCost = s.rules.RelayDriverCost
		total = total.Add(b.RelayCost)
	}

	return Result{Price: total, Breakdown: b}, nil
}

func (s *Service) resolveRegion(p Params, snap *rates.Snapshot, b *Breakdown) (rates.RegionSurcharge, bool) {
	b.ManualRegionPercent = p.ExtraRegionPercent

	dept, ok := trip.ExtractDepartment(p.DepartureAddress)
	if !ok {
		b.note("no postal code found in departure address; no regional surcharge applied")
		return rates.RegionSurcharge{}, false
	}
	b.RegionCode = dept

	region, found := snap.Region(dept)
	if !found {
		b.note("department %s has no surcharge entry; 0%% applied", dept)
		return rates.RegionSurcharge{}, false
	}
	b.RegionName = region.Name
	b.RegionPercent = region.Percent
	return region, true
}

// resolveVehicle picks the vehicle class: explicit override first, capacity
// match second. An override too small for the passenger count is replaced;
// upsizing is the operator's prerogative and kept. When the double-decker
// cannot be dispatched into the departure region, the largest ordinary class
// is substituted and the vehicle count raised to cover the group.
func (s *Service) resolveVehicle(p Params, snap *rates.Snapshot, region rates.RegionSurcharge, regionFound bool, b *Breakdown) rates.VehicleClass {
	var cls rates.VehicleClass
	resolved := false

	if p.VehicleCode != "" {
		if c, ok := snap.VehicleByCode(p.VehicleCode); ok {
			cls, resolved = c, true
			if p.Passengers > 0 && p.Passengers > c.PlacesMax {
				if byCap, ok := snap.VehicleForPassengers(p.Passengers); ok {
					b.note("class %s cannot seat %d passengers; %s used instead", c.Code, p.Passengers, byCap.Code)
					cls = byCap
				}
			}
		} else {
			b.note("unknown vehicle class %q", p.VehicleCode)
		}
	}

	if !resolved && p.Passengers > 0 {
		if c, ok := snap.VehicleForPassengers(p.Passengers); ok {
			cls, resolved = c, true
		}
	}
	if !resolved {
		b.note("no vehicle class resolved; coefficient 1.00 applied")
		return rates.VehicleClass{Coefficient: 1}
	}

	if cls.GrandeCapacite && regionFound && !region.GrandeCapaciteOK {
		if sub, ok := snap.LargestDispatchable(); ok {
			count := b.VehicleCount
			if p.Passengers > 0 && sub.PlacesMax > 0 {
				needed := int(math.Ceil(float64(p.Passengers) / float64(sub.PlacesMax)))
				if needed > count {
					count = needed
				}
			}
			b.note("double-decker not dispatchable in %s (%s); %d x %s planned instead",
				region.Name, region.Code, count, sub.Code)
			b.VehicleCount = count
			cls = sub
		}
	}
	return cls
}

// basePrice performs the bracket lookup and column selection, recording the
// bracket bounds, out-of-grid excess and every degraded default.
func (s *Service) basePrice(p Params, snap *rates.Snapshot, info trip.Info, b *Breakdown) types.Money {
	km := int(math.Round(p.DistanceKm))

	switch p.Service {
	case trip.ServiceOneWay:
		b.Column = "prix_public"
		row, excess, ok := rates.Lookup(snap.OneWay, km, func(r rates.OneWayRow) rates.Bracket { return r.Bracket })
		if !ok {
			b.note("no one-way bracket covers %d km; base price 0, manual pricing required", km)
			return types.EUR(0)
		}
		recordBracket(b, row.Bracket, excess)
		return row.Price

	case trip.ServiceDayTrip:
		if km <= s.rules.ForfaitKmMax {
			// Very short outings are a minimum call-out, not a distance price.
			b.Forfait = true
			b.Column = "forfait"
			b.note("distance %d km at or below the %d km threshold; flat call-out price applied", km, s.rules.ForfaitKmMax)
			return s.rules.ForfaitPrice
		}
		row, excess, ok := rates.Lookup(snap.DayTrip, km, func(r rates.DayTripRow) rates.Bracket { return r.Bracket })
		if !ok {
			b.note("no day-trip bracket covers %d km; base price 0, manual pricing required", km)
			return types.EUR(0)
		}
		recordBracket(b, row.Bracket, excess)

		column := p.Amplitude
		if column == "" {
			column = info.Amplitude
			if info.AmplitudeExceeded {
				b.note("day amplitude %.1fh is beyond the 12h column; split-duty column assumed", info.DayAmplitude.Hours())
			}
		}
		b.Column = string(column)

		price := row.PriceFor(column)
		if price == nil {
			b.note("no %s price in bracket [%d,%d]; base price 0, manual pricing required", column, row.KmMin, row.KmMax)
			return types.EUR(0)
		}
		return *price

	case trip.ServiceMultiDayStandby, trip.ServiceMultiDayNoStandby:
		table := snap.MultiDayStandby
		if p.Service == trip.ServiceMultiDayNoStandby {
			table = snap.MultiDayNoStandby
		}
		row, excess, ok := rates.Lookup(table, km, func(r rates.MultiDayRow) rates.Bracket { return r.Bracket })
		if !ok {
			b.note("no multi-day bracket covers %d km; base price 0, manual pricing required", km)
			return types.EUR(0)
		}
		recordBracket(b, row.Bracket, excess)

		days := p.Days
		price, clamped := row.PriceFor(days)
		b.Column = fmt.Sprintf("%dj", clamped)
		if days < clamped {
			b.note("day count %d below the %d-day column; %d-day price applied", days, clamped, clamped)
		}

		base := types.EUR(0)
		if price != nil {
			base = *price
		} else {
			b.note("no %d-day price in bracket [%d,%d]; base price 0, manual pricing required", clamped, row.KmMin, row.KmMax)
		}

		if days > clamped {
			b.ExtraDays = days - clamped
			if row.ExtraDayPrice != nil {
				b.ExtraDaySupplement = row.ExtraDayPrice.MulInt(int64(b.ExtraDays))
				base = base.Add(b.ExtraDaySupplement)
			} else {
				b.note("no per-extra-day supplement in bracket [%d,%d]; %d extra day(s) unpriced", row.KmMin, row.KmMax, b.ExtraDays)
			}
		}
		return base
	}

	// Unreachable: Service validity is checked in Compute.
	return types.EUR(0)
}

func recordBracket(b *Breakdown, br rates.Bracket, excessKm int) {
	b.BracketKmMin = br.KmMin
	b.BracketKmMax = br.KmMax
	if excessKm > 0 {
		b.OutOfGrid = true
		b.OutOfGridKm = excessKm
		b.note("distance exceeds the grid maximum of %d km by %d km; top bracket extrapolated", br.KmMax, excessKm)
	}
}
