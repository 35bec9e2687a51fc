// README: Rate store backed by PostgreSQL (the external configuration store).
package rates

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"autocar/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// LoadSnapshot reads every rate table except region surcharges, which the
// snapshot service fetches through its cache. The result is not yet
// validated; Service.Reload validates before publishing it.
func (s *Store) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{Regions: map[string]RegionSurcharge{}}

	if err := s.loadOneWay(ctx, snap); err != nil {
		return nil, fmt.Errorf("load one-way grid: %w", err)
	}
	if err := s.loadDayTrip(ctx, snap); err != nil {
		return nil, fmt.Errorf("load day-trip grid: %w", err)
	}
	if err := s.loadMultiDay(ctx, snap); err != nil {
		return nil, fmt.Errorf("load multi-day grids: %w", err)
	}
	if err := s.loadVehicles(ctx, snap); err != nil {
		return nil, fmt.Errorf("load vehicle classes: %w", err)
	}
	return snap, nil
}

func (s *Store) loadOneWay(ctx context.Context, snap *Snapshot) error {
	rows, err := s.db.Query(ctx, `
        SELECT km_min, km_max, prix_public
        FROM grille_aller_simple
        ORDER BY km_min`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r OneWayRow
		var price float64
		if err := rows.Scan(&r.KmMin, &r.KmMax, &price); err != nil {
			return err
		}
		r.Price = types.FromEuros(price)
		snap.OneWay = append(snap.OneWay, r)
	}
	return rows.Err()
}

func (s *Store) loadDayTrip(ctx context.Context, snap *Snapshot) error {
	rows, err := s.db.Query(ctx, `
        SELECT km_min, km_max, prix_8h, prix_10h, prix_12h, prix_9h_coupure
        FROM grille_ar_journee
        ORDER BY km_min`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r DayTripRow
		var p8, p10, p12, p9c sql.NullFloat64
		if err := rows.Scan(&r.KmMin, &r.KmMax, &p8, &p10, &p12, &p9c); err != nil {
			return err
		}
		r.Price8h = toMoneyPtr(p8)
		r.Price10h = toMoneyPtr(p10)
		r.Price12h = toMoneyPtr(p12)
		r.Price9hBreak = toMoneyPtr(p9c)
		snap.DayTrip = append(snap.DayTrip, r)
	}
	return rows.Err()
}

func (s *Store) loadMultiDay(ctx context.Context, snap *Snapshot) error {
	rows, err := s.db.Query(ctx, `
        SELECT mad, km_min, km_max, prix_2j, prix_3j, prix_4j, prix_5j, prix_6j, prix_jour_supp
        FROM grille_ar_sejour
        ORDER BY mad, km_min`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r MultiDayRow
		var mad bool
		var p2, p3, p4, p5, p6, extra sql.NullFloat64
		if err := rows.Scan(&mad, &r.KmMin, &r.KmMax, &p2, &p3, &p4, &p5, &p6, &extra); err != nil {
			return err
		}
		r.Price2Days = toMoneyPtr(p2)
		r.Price3Days = toMoneyPtr(p3)
		r.Price4Days = toMoneyPtr(p4)
		r.Price5Days = toMoneyPtr(p5)
		r.Price6Days = toMoneyPtr(p6)
		r.ExtraDayPrice = toMoneyPtr(extra)
		if mad {
			snap.MultiDayStandby = append(snap.MultiDayStandby, r)
		} else {
			snap.MultiDayNoStandby = append(snap.MultiDayNoStandby, r)
		}
	}
	return rows.Err()
}

func (s *Store) loadVehicles(ctx context.Context, snap *Snapshot) error {
	rows, err := s.db.Query(ctx, `
        SELECT code, libelle, places_min, places_max, coefficient, grande_capacite
        FROM classes_vehicule
        ORDER BY places_min`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var v VehicleClass
		if err := rows.Scan(&v.Code, &v.Label, &v.PlacesMin, &v.PlacesMax, &v.Coefficient, &v.GrandeCapacite); err != nil {
			return err
		}
		snap.Vehicles = append(snap.Vehicles, v)
	}
	return rows.Err()
}

// LoadRegionSurcharges reads the per-department surcharge table. Exposed on
// its own because the snapshot service caches this table separately.
func (s *Store) LoadRegionSurcharges(ctx context.Context) (map[string]RegionSurcharge, error) {
	rows, err := s.db.Query(ctx, `
        SELECT code_region, nom_region, pourcentage, grande_capacite_dispo
        FROM majorations_region`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]RegionSurcharge{}
	for rows.Next() {
		var r RegionSurcharge
		if err := rows.Scan(&r.Code, &r.Name, &r.Percent, &r.GrandeCapaciteOK); err != nil {
			return nil, err
		}
		out[r.Code] = r
	}
	return out, rows.Err()
}

func toMoneyPtr(v sql.NullFloat64) *types.Money {
	if !v.Valid {
		return nil
	}
	m := types.FromEuros(v.Float64)
	return &m
}
