package feed

import (
	"testing"
	"time"
)

func TestMemoryCache_ServesFreshEntries(t *testing.T) {
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	cache := NewMemoryCache(WithClock(clock))
	cache.Put("https://rss.arxiv.org/rss/cs.AI", []byte("payload"))

	got, ok := cache.Get("https://rss.arxiv.org/rss/cs.AI")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(got) != "payload" {
		t.Errorf("expected 'payload', got %q", got)
	}
}

func TestMemoryCache_ExpiresAtTTL(t *testing.T) {
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	cache := NewMemoryCache(WithClock(clock))
	cache.Put("key", []byte("payload"))

	// Just under the window is still valid.
	now = now.Add(24*time.Hour - time.Second)
	if _, ok := cache.Get("key"); !ok {
		t.Error("entry should be valid strictly less than 24h after capture")
	}

	// Exactly at the boundary the entry is treated as absent.
	now = now.Add(time.Second)
	if _, ok := cache.Get("key"); ok {
		t.Error("entry should be expired at the TTL boundary")
	}
}

func TestMemoryCache_MissOnUnknownKey(t *testing.T) {
	cache := NewMemoryCache()
	if _, ok := cache.Get("never-stored"); ok {
		t.Error("expected cache miss")
	}
}

func TestMemoryCache_OverwriteRefreshesTimestamp(t *testing.T) {
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	cache := NewMemoryCache(WithClock(clock), WithTTL(time.Hour))
	cache.Put("key", []byte("old"))

	now = now.Add(2 * time.Hour)
	cache.Put("key", []byte("new"))

	got, ok := cache.Get("key")
	if !ok {
		t.Fatal("expected cache hit after overwrite")
	}
	if string(got) != "new" {
		t.Errorf("expected 'new', got %q", got)
	}
}
