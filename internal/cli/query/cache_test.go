package query

import (
	"context"
	"errors"
	"testing"
)

func TestFetch_CachesUntilInvalidated(t *testing.T) {
	c := NewCache()
	ctx := context.Background()
	calls := 0
	fn := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"s1", "s2"}, nil
	}

	key := Key("agency-series")
	for i := 0; i < 3; i++ {
		got, err := Fetch(ctx, c, key, fn)
		if err != nil || len(got) != 2 {
			t.Fatalf("Fetch #%d: %v %v", i, got, err)
		}
	}
	if calls != 1 {
		t.Fatalf("fetch fn called %d times, want 1", calls)
	}

	c.Invalidate(key)
	if _, err := Fetch(ctx, c, key, fn); err != nil {
		t.Fatalf("refetch: %v", err)
	}
	if calls != 2 {
		t.Fatalf("invalidate must force a refetch, calls=%d", calls)
	}
}

func TestFetch_ErrorsAreNotCached(t *testing.T) {
	c := NewCache()
	ctx := context.Background()
	calls := 0
	fn := func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("boom")
		}
		return 42, nil
	}

	if _, err := Fetch(ctx, c, "k", fn); err == nil {
		t.Fatalf("first fetch must fail")
	}
	got, err := Fetch(ctx, c, "k", fn)
	if err != nil || got != 42 {
		t.Fatalf("retry after error: %d %v", got, err)
	}
}

func TestInvalidate_IsIdempotent(t *testing.T) {
	c := NewCache()
	ctx := context.Background()
	_, _ = Fetch(ctx, c, Key("shipment", "s1"), func(ctx context.Context) (string, error) { return "v", nil })

	// multiple invalidations of the same (or an absent) key are harmless
	c.Invalidate(Key("shipment", "s1"), Key("shipments"))
	c.Invalidate(Key("shipment", "s1"))
	if c.Has(Key("shipment", "s1")) {
		t.Fatalf("key must be gone")
	}
}

func TestKey_JoinsParts(t *testing.T) {
	if Key("agency-series-assets", "sr-1") != "agency-series-assets/sr-1" {
		t.Fatalf("key format changed: %q", Key("agency-series-assets", "sr-1"))
	}
}
