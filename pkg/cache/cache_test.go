package cache

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get = %q, %v, %v; want miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestMemoryCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(4)

	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Fatal("empty cache hit")
	}
	if err := c.Set(ctx, "a", []byte("svg"), 0); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "a")
	if err != nil || !hit || string(data) != "svg" {
		t.Errorf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("hit after Delete")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache(4)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "short", []byte("x"), time.Minute)
	_ = c.Set(ctx, "forever", []byte("y"), 0)

	now = now.Add(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry returned")
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without ttl expired")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestMemoryCacheEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)

	_ = c.Set(ctx, "a", []byte("a"), 0)
	_ = c.Set(ctx, "b", []byte("b"), 0)
	c.Get(ctx, "a")
	_ = c.Set(ctx, "c", []byte("c"), 0)

	if _, hit, _ := c.Get(ctx, "b"); hit {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, hit, _ := c.Get(ctx, k); !hit {
			t.Errorf("%s missing", k)
		}
	}

	// Overwriting an existing key does not evict.
	_ = c.Set(ctx, "a", []byte("a2"), 0)
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestMemoryCacheDefaultSize(t *testing.T) {
	if c := NewMemoryCache(0); c.max != DefaultMaxEntries {
		t.Errorf("max = %d, want %d", c.max, DefaultMaxEntries)
	}
}

func TestMemoryCacheConcurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(8)
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := string(rune('a' + i%10))
			_ = c.Set(ctx, key, []byte(key), time.Minute)
			c.Get(ctx, key)
		}()
	}
	wg.Wait()
	if c.Len() > 8 {
		t.Errorf("Len = %d, exceeds bound", c.Len())
	}
	_ = c.Close()
	if c.Len() != 0 {
		t.Error("Close did not empty the cache")
	}
}

func TestArtifactKey(t *testing.T) {
	base := ArtifactKeyOpts{Group: "gamma0(5)", Choice: "distance", Seed: 42, Limit: 2000, Format: "svg"}
	k1 := ArtifactKey(base)
	if k1 != ArtifactKey(base) {
		t.Error("ArtifactKey is not deterministic")
	}
	if !strings.HasPrefix(k1, "artifact:") || len(k1) != len("artifact:")+64 {
		t.Errorf("ArtifactKey = %q", k1)
	}

	changed := base
	changed.Labels = true
	if ArtifactKey(changed) == k1 {
		t.Error("labels do not change the key")
	}
	changed = base
	changed.Format = "tex"
	if ArtifactKey(changed) == k1 {
		t.Error("format does not change the key")
	}
}

func TestHash(t *testing.T) {
	if Hash([]byte("hello")) != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if Hash([]byte("hello")) == Hash([]byte("world")) {
		t.Error("different inputs should produce different hashes")
	}
	if len(Hash(nil)) != 64 {
		t.Errorf("Hash length = %d, want 64", len(Hash(nil)))
	}
}
