// README: Scenario definitions: a seeded snapshot and the trips priced against it.
package main

import (
	"fmt"
	"time"

	"autocar/internal/modules/rates"
	"autocar/internal/modules/tariff"
	"autocar/internal/modules/trip"
	"autocar/internal/types"
)

type Result struct {
	Name   string
	Status string
	Note   string
}

type Scenario struct {
	Name      string
	Params    tariff.Params
	WantCents int64
}

func runScenarios(verbose bool) []Result {
	svc := tariff.NewService(demoRules())
	snap := demoSnapshot()

	var results []Result
	for _, sc := range scenarios() {
		res := Result{Name: sc.Name, Status: "PASS"}
		out, err := svc.Compute(sc.Params, snap)
		switch {
		case err != nil:
			res.Status = "FAIL"
			res.Note = err.Error()
		case out.Price.Amount != sc.WantCents:
			res.Status = "FAIL"
			res.Note = fmt.Sprintf("got %s, want %d cents", out.Price, sc.WantCents)
		}

		fmt.Printf("%-7s %s", res.Status, res.Name)
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
		if verbose && err == nil {
			fmt.Printf("        base=%s coef=%.2f x%d region=%.1f%% relay=%s notes=%v\n",
				out.Breakdown.BasePrice, out.Breakdown.Coefficient, out.Breakdown.VehicleCount,
				out.Breakdown.RegionPercent, out.Breakdown.RelayCost, out.Breakdown.Notes)
		}
		results = append(results, res)
	}
	return results
}

func demoRules() tariff.Rules {
	return tariff.Rules{
		Trip: trip.Rules{
			AvgSpeedKmh:   70,
			MaxDailyDrive: 9 * time.Hour,
			MaxAmplitude:  10 * time.Hour,
		},
		ForfaitKmMax:    50,
		ForfaitPrice:    types.FromEuros(390),
		ExtraKmPrice:    types.FromEuros(1.50),
		RelayDriverCost: types.FromEuros(280),
	}
}

func eur(v float64) *types.Money {
	m := types.FromEuros(v)
	return &m
}

func demoSnapshot() *rates.Snapshot {
	return &rates.Snapshot{
		OneWay: []rates.OneWayRow{
			{Bracket: rates.Bracket{KmMin: 0, KmMax: 49}, Price: types.FromEuros(180)},
			{Bracket: rates.Bracket{KmMin: 50, KmMax: 99}, Price: types.FromEuros(260)},
			{Bracket: rates.Bracket{KmMin: 100, KmMax: 150}, Price: types.FromEuros(390)},
			{Bracket: rates.Bracket{KmMin: 151, KmMax: 300}, Price: types.FromEuros(620)},
		},
		DayTrip: []rates.DayTripRow{
			{Bracket: rates.Bracket{KmMin: 0, KmMax: 49}, Price8h: eur(420), Price10h: eur(480)},
			{Bracket: rates.Bracket{KmMin: 50, KmMax: 150}, Price8h: eur(450), Price10h: eur(520), Price12h: eur(590), Price9hBreak: eur(560)},
			{Bracket: rates.Bracket{KmMin: 151, KmMax: 300}, Price8h: eur(520), Price10h: eur(590), Price12h: eur(660), Price9hBreak: eur(630)},
		},
		MultiDayStandby: []rates.MultiDayRow{
			{Bracket: rates.Bracket{KmMin: 0, KmMax: 150}, Price2Days: eur(900), Price3Days: eur(1250), Price4Days: eur(1580), Price5Days: eur(1890), Price6Days: eur(2180), ExtraDayPrice: eur(150)},
			{Bracket: rates.Bracket{KmMin: 151, KmMax: 300}, Price2Days: eur(1100), Price3Days: eur(1500), Price4Days: eur(1870), Price5Days: eur(2220), Price6Days: eur(2550), ExtraDayPrice: eur(180)},
		},
		MultiDayNoStandby: []rates.MultiDayRow{
			{Bracket: rates.Bracket{KmMin: 0, KmMax: 150}, Price2Days: eur(780), Price3Days: eur(1060), Price4Days: eur(1320), Price5Days: eur(1560), Price6Days: eur(1780), ExtraDayPrice: eur(120)},
			{Bracket: rates.Bracket{KmMin: 151, KmMax: 300}, Price2Days: eur(960), Price3Days: eur(1290), Price4Days: eur(1600), Price5Days: eur(1890), Price6Days: eur(2160), ExtraDayPrice: eur(160)},
		},
		Vehicles: []rates.VehicleClass{
			{Code: "minicar", Label: "Minicar", PlacesMin: 1, PlacesMax: 19, Coefficient: 1.0},
			{Code: "autocar", Label: "Autocar standard", PlacesMin: 20, PlacesMax: 63, Coefficient: 1.15},
			{Code: "etage", Label: "Autocar a etage", PlacesMin: 64, PlacesMax: 93, Coefficient: 1.40, GrandeCapacite: true},
		},
		Regions: map[string]rates.RegionSurcharge{
			"69": {Code: "69", Name: "Rhone", Percent: 8, GrandeCapaciteOK: true},
			"74": {Code: "74", Name: "Haute-Savoie", Percent: 12, GrandeCapaciteOK: false},
			"75": {Code: "75", Name: "Paris", Percent: 15, GrandeCapaciteOK: true},
			"2A": {Code: "2A", Name: "Corse-du-Sud", Percent: 20, GrandeCapaciteOK: false},
		},
	}
}

func scenarios() []Scenario {
	dep := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	return []Scenario{
		{
			Name: "school outing, short one-way",
			Params: tariff.Params{
				DistanceKm: 35, Service: trip.ServiceOneWay,
				Passengers: 45, VehicleCount: 1,
				DepartureAddress: "12 cours Lafayette 69003 Lyon",
				Departure:        dep, Return: dep.Add(4 * time.Hour),
			},
			// 180.00 x 1.15 = 207.00, x1.08 = 223.56
			WantCents: 22356,
		},
		{
			Name: "day trip under the forfeit threshold",
			Params: tariff.Params{
				DistanceKm: 40, Service: trip.ServiceDayTrip,
				Passengers: 15, VehicleCount: 1,
				Departure: dep.Add(time.Hour), Return: dep.Add(9 * time.Hour),
			},
			WantCents: 39000,
		},
		{
			Name: "long day trip with relay driver",
			Params: tariff.Params{
				DistanceKm: 120, Service: trip.ServiceDayTrip,
				Passengers: 15, VehicleCount: 1,
				Departure: dep.Add(-time.Hour), Return: dep.Add(10 * time.Hour),
			},
			// 11h amplitude: 590.00 on the 12h column + 280.00 relay
			WantCents: 87000,
		},
		{
			Name: "ski transfer beyond the grid",
			Params: tariff.Params{
				DistanceKm: 350, Service: trip.ServiceOneWay,
				Passengers: 15, VehicleCount: 1,
				DepartureAddress: "2 avenue de la Gare 74000 Annecy",
				Departure:        dep, Return: dep.Add(6 * time.Hour),
			},
			// 620.00 x 1.12 = 694.40, + 50 x 1.50 x 2 = 844.40
			WantCents: 84440,
		},
		{
			Name: "week-long tour with standby vehicle",
			Params: tariff.Params{
				DistanceKm: 200, Service: trip.ServiceMultiDayStandby,
				Days:       7,
				Passengers: 50, VehicleCount: 1,
				DepartureAddress: "Gare de Bercy 75012 Paris",
				Departure:        dep, Return: dep.AddDate(0, 0, 6),
			},
			// (2550.00 + 180.00) x 1.15 = 3139.50, x1.15 = 3610.43
			WantCents: 361043,
		},
	}
}
