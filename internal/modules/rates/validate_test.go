// README: Grid validation and bracket lookup tests.
package rates

import (
	"errors"
	"testing"

	"autocar/internal/types"
)

func eur(v float64) *types.Money {
	m := types.FromEuros(v)
	return &m
}

func goodSnapshot() *Snapshot {
	return &Snapshot{
		OneWay: []OneWayRow{
			{Bracket: Bracket{0, 49}, Price: types.FromEuros(180)},
			{Bracket: Bracket{50, 99}, Price: types.FromEuros(260)},
			{Bracket: Bracket{100, 150}, Price: types.FromEuros(390)},
			{Bracket: Bracket{151, 300}, Price: types.FromEuros(620)},
		},
		DayTrip: []DayTripRow{
			{Bracket: Bracket{0, 49}, Price8h: eur(420), Price10h: eur(480)},
			{Bracket: Bracket{50, 150}, Price8h: eur(450), Price10h: eur(520), Price12h: eur(590), Price9hBreak: eur(560)},
			{Bracket: Bracket{151, 300}, Price8h: eur(520), Price10h: eur(590), Price9hBreak: eur(630)},
		},
		MultiDayStandby: []MultiDayRow{
			{Bracket: Bracket{0, 150}, Price2Days: eur(900), Price3Days: eur(1250), Price4Days: eur(1580), Price5Days: eur(1890), Price6Days: eur(2180), ExtraDayPrice: eur(150)},
			{Bracket: Bracket{151, 300}, Price2Days: eur(1100), Price3Days: eur(1500), Price4Days: eur(1870), Price5Days: eur(2220), Price6Days: eur(2550), ExtraDayPrice: eur(180)},
		},
		MultiDayNoStandby: []MultiDayRow{
			{Bracket: Bracket{0, 150}, Price2Days: eur(780), Price3Days: eur(1060), Price4Days: eur(1320), Price5Days: eur(1560), Price6Days: eur(1780)},
			{Bracket: Bracket{151, 300}, Price2Days: eur(960), Price3Days: eur(1290), Price4Days: eur(1600), Price5Days: eur(1890), Price6Days: eur(2160), ExtraDayPrice: eur(160)},
		},
		Vehicles: []VehicleClass{
			{Code: "minicar", Label: "Minicar", PlacesMin: 1, PlacesMax: 19, Coefficient: 1.0},
			{Code: "autocar", Label: "Autocar standard", PlacesMin: 20, PlacesMax: 63, Coefficient: 1.15},
			{Code: "etage", Label: "Autocar a etage", PlacesMin: 64, PlacesMax: 93, Coefficient: 1.40, GrandeCapacite: true},
		},
		Regions: map[string]RegionSurcharge{
			"69": {Code: "69", Name: "Rhone", Percent: 8, GrandeCapaciteOK: true},
			"74": {Code: "74", Name: "Haute-Savoie", Percent: 12, GrandeCapaciteOK: false},
			"75": {Code: "75", Name: "Paris", Percent: 15, GrandeCapaciteOK: true},
		},
	}
}

func TestValidate_GoodSnapshot(t *testing.T) {
	if err := goodSnapshot().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidate_BadSnapshots(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"empty table", func(s *Snapshot) { s.OneWay = nil }},
		{"inverted bracket", func(s *Snapshot) { s.OneWay[1].Bracket = Bracket{99, 50} }},
		{"bracket gap", func(s *Snapshot) { s.DayTrip[1].Bracket = Bracket{60, 150} }},
		{"overlapping brackets", func(s *Snapshot) { s.MultiDayStandby[1].Bracket = Bracket{140, 300} }},
		{"coefficient below 1", func(s *Snapshot) { s.Vehicles[1].Coefficient = 0.9 }},
		{"capacity gap", func(s *Snapshot) { s.Vehicles[1].PlacesMin = 25 }},
		{"capacity overlap", func(s *Snapshot) { s.Vehicles[1].PlacesMin = 15 }},
		{"nobody seats one passenger", func(s *Snapshot) { s.Vehicles[0].PlacesMin = 5 }},
		{"negative region surcharge", func(s *Snapshot) {
			s.Regions["69"] = RegionSurcharge{Code: "69", Percent: -3}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := goodSnapshot()
			tt.mutate(snap)
			err := snap.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrBadGrid) {
				t.Errorf("Validate() = %v, want ErrBadGrid", err)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	snap := goodSnapshot()
	bracketOf := func(r OneWayRow) Bracket { return r.Bracket }

	tests := []struct {
		name       string
		km         int
		wantMin    int
		wantExcess int
		wantOK     bool
	}{
		{"first bracket", 10, 0, 0, true},
		{"bracket edge low", 100, 100, 0, true},
		{"bracket edge high", 150, 100, 0, true},
		{"last bracket", 200, 151, 0, true},
		{"out of grid", 350, 151, 50, true},
		{"just past the grid", 301, 151, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, excess, ok := Lookup(snap.OneWay, tt.km, bracketOf)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%d) ok = %v, want %v", tt.km, ok, tt.wantOK)
			}
			if row.KmMin != tt.wantMin || excess != tt.wantExcess {
				t.Errorf("Lookup(%d) = bracket [%d,%d] excess %d, want km_min %d excess %d",
					tt.km, row.KmMin, row.KmMax, excess, tt.wantMin, tt.wantExcess)
			}
		})
	}

	if _, _, ok := Lookup(nil, 10, bracketOf); ok {
		t.Error("Lookup on an empty table should miss")
	}
}

func TestVehicleForPassengers_TotalCoverage(t *testing.T) {
	snap := goodSnapshot()
	for n := 1; n <= 93; n++ {
		matches := 0
		for _, v := range snap.Vehicles {
			if n >= v.PlacesMin && n <= v.PlacesMax {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("passenger count %d matches %d classes, want exactly 1", n, matches)
		}
	}

	// Counts above every band fall into the largest class.
	v, ok := snap.VehicleForPassengers(120)
	if !ok || v.Code != "etage" {
		t.Errorf("VehicleForPassengers(120) = (%v, %v), want the double-decker", v.Code, ok)
	}

	if _, ok := snap.VehicleForPassengers(0); ok {
		t.Error("VehicleForPassengers(0) should miss")
	}
}

func TestMultiDayPriceFor_Clamping(t *testing.T) {
	row := goodSnapshot().MultiDayStandby[0]

	tests := []struct {
		days        int
		wantClamped int
		wantEuros   float64
	}{
		{1, 2, 900},
		{2, 2, 900},
		{4, 4, 1580},
		{6, 6, 2180},
		{9, 6, 2180},
	}
	for _, tt := range tests {
		price, clamped := row.PriceFor(tt.days)
		if clamped != tt.wantClamped {
			t.Errorf("PriceFor(%d) clamped to %d, want %d", tt.days, clamped, tt.wantClamped)
		}
		if price == nil || price.Euros() != tt.wantEuros {
			t.Errorf("PriceFor(%d) = %v, want %.2f EUR", tt.days, price, tt.wantEuros)
		}
	}
}

func TestLargestDispatchable(t *testing.T) {
	snap := goodSnapshot()
	v, ok := snap.LargestDispatchable()
	if !ok || v.Code != "autocar" {
		t.Errorf("LargestDispatchable() = (%v, %v), want autocar", v.Code, ok)
	}
}
