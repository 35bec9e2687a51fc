// README: Snapshot service: loads, validates and atomically publishes rate tables.
package rates

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrNotLoaded is returned when a caller asks for a snapshot before the first
// successful load.
var ErrNotLoaded = errors.New("rate tables not loaded")

// Service owns the current snapshot. Calculations read whatever snapshot is
// published when they start; a reload swaps the pointer wholesale so in-flight
// calculations never observe a partially updated grid.
type Service struct {
	store *Store
	cache *RegionCache
	snap  atomic.Pointer[Snapshot]
}

func NewService(store *Store, cache *RegionCache) *Service {
	return &Service{store: store, cache: cache}
}

// Snapshot returns the currently published snapshot.
func (s *Service) Snapshot() (*Snapshot, error) {
	snap := s.snap.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap, nil
}

// Install validates a snapshot and publishes it. Used by Reload and by
// callers that build snapshots out of band (tests, the scenario runner).
func (s *Service) Install(snap *Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	s.snap.Store(snap)
	return nil
}

// Reload builds a fresh snapshot from the configuration store and publishes
// it. The previous snapshot stays live until the new one passes validation.
func (s *Service) Reload(ctx context.Context) (*Snapshot, error) {
	snap, err := s.store.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	regions, err := s.LoadRegionSurcharges(ctx)
	if err != nil {
		return nil, err
	}
	snap.Regions = regions
	if err := s.Install(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// LoadRegionSurcharges fetches the region table, preferring the Redis cache
// and falling back to the configuration store on a miss. Cache write errors
// are swallowed: the authoritative data already made it back to the caller.
func (s *Service) LoadRegionSurcharges(ctx context.Context) (map[string]RegionSurcharge, error) {
	if s.cache != nil {
		if regions, hit, err := s.cache.Get(ctx); err == nil && hit {
			return regions, nil
		}
	}
	regions, err := s.store.LoadRegionSurcharges(ctx)
	if err != nil {
		return nil, fmt.Errorf("region surcharges: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, regions)
	}
	return regions, nil
}
