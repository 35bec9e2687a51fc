// README: Region cache tests against an in-memory redis.
package rates

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupCache(t *testing.T) (*RegionCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRegionCache(rdb, time.Hour), mr
}

func TestRegionCache_MissThenHit(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	if _, hit, err := cache.Get(ctx); err != nil || hit {
		t.Fatalf("Get on empty cache = (hit=%v, err=%v), want miss", hit, err)
	}

	regions := map[string]RegionSurcharge{
		"69": {Code: "69", Name: "Rhone", Percent: 8, GrandeCapaciteOK: true},
		"2A": {Code: "2A", Name: "Corse-du-Sud", Percent: 20, GrandeCapaciteOK: false},
	}
	if err := cache.Set(ctx, regions); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, hit, err := cache.Get(ctx)
	if err != nil || !hit {
		t.Fatalf("Get after Set = (hit=%v, err=%v), want hit", hit, err)
	}
	if len(got) != 2 || got["2A"].Percent != 20 || got["69"].Name != "Rhone" {
		t.Errorf("cached regions round-trip mismatch: %+v", got)
	}
}

func TestRegionCache_CorruptPayloadIsAMiss(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	mr.Set(regionCacheKey, "{not json")
	if _, hit, err := cache.Get(ctx); err != nil || hit {
		t.Errorf("Get with corrupt payload = (hit=%v, err=%v), want silent miss", hit, err)
	}
}

func TestRegionCache_Invalidate(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, map[string]RegionSurcharge{"75": {Code: "75", Percent: 15}}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if _, hit, _ := cache.Get(ctx); hit {
		t.Error("Get after Invalidate should miss")
	}
}

func TestService_InstallRejectsBadGrid(t *testing.T) {
	svc := NewService(nil, nil)

	if _, err := svc.Snapshot(); err != ErrNotLoaded {
		t.Fatalf("Snapshot before load = %v, want ErrNotLoaded", err)
	}

	bad := goodSnapshot()
	bad.OneWay = nil
	if err := svc.Install(bad); err == nil {
		t.Fatal("Install of a broken grid should fail")
	}
	if _, err := svc.Snapshot(); err != ErrNotLoaded {
		t.Error("a rejected snapshot must not be published")
	}

	if err := svc.Install(goodSnapshot()); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if _, err := svc.Snapshot(); err != nil {
		t.Errorf("Snapshot after Install = %v, want nil", err)
	}
}
