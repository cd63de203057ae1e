package speech

import (
	"fmt"
	"testing"

	"github.com/reenas3520-oss/yahoooo-study/speech/audio"
)

func testBuffer(t *testing.T, samples int) *audio.Buffer {
	t.Helper()
	buf, err := audio.NewBuffer(make([]byte, samples*audio.BytesPerSample))
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	return buf
}

// TestCachePutGet tests basic storage and retrieval.
func TestCachePutGet(t *testing.T) {
	c := NewCache(8)
	buf := testBuffer(t, 240)

	if _, ok := c.Get("hello"); ok {
		t.Error("Get() on empty cache reported a hit")
	}

	c.Put("hello", buf)
	got, ok := c.Get("hello")
	if !ok {
		t.Fatal("Get() missed after Put()")
	}
	if got != buf {
		t.Error("Get() returned a different buffer")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if c.Size() != buf.Size() {
		t.Errorf("Size() = %d, want %d", c.Size(), buf.Size())
	}
}

// TestCachePutKeepsFirstBuffer tests that a key maps to at most one entry.
func TestCachePutKeepsFirstBuffer(t *testing.T) {
	c := NewCache(8)
	first := testBuffer(t, 240)
	second := testBuffer(t, 480)

	c.Put("hello", first)
	c.Put("hello", second)

	got, ok := c.Get("hello")
	if !ok {
		t.Fatal("Get() missed")
	}
	if got != first {
		t.Error("second Put() replaced the original buffer")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

// TestCacheIgnoresInvalidPut tests that empty keys and nil buffers are
// never stored.
func TestCacheIgnoresInvalidPut(t *testing.T) {
	c := NewCache(8)
	c.Put("", testBuffer(t, 240))
	c.Put("hello", nil)
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

// TestCacheEvictsLeastRecentlyUsed tests the bounded LRU policy.
func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(3)
	for i := 0; i < 3; i++ {
		c.Put(fmt.Sprintf("entry-%d", i), testBuffer(t, 240))
	}

	// Touch entry-0 so entry-1 becomes the eviction candidate.
	if _, ok := c.Get("entry-0"); !ok {
		t.Fatal("Get(entry-0) missed")
	}

	c.Put("entry-3", testBuffer(t, 240))

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if _, ok := c.Get("entry-1"); ok {
		t.Error("least recently used entry survived eviction")
	}
	for _, key := range []string{"entry-0", "entry-2", "entry-3"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("Get(%s) missed, want hit", key)
		}
	}
}

// TestCacheStats tests hit and miss accounting.
func TestCacheStats(t *testing.T) {
	c := NewCache(8)
	c.Put("hello", testBuffer(t, 240))

	c.Get("hello")
	c.Get("hello")
	c.Get("absent")

	hits, misses := c.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("Stats() = (%d, %d), want (2, 1)", hits, misses)
	}
}

// TestCacheClear tests the full reset.
func TestCacheClear(t *testing.T) {
	c := NewCache(8)
	c.Put("hello", testBuffer(t, 240))
	c.Put("world", testBuffer(t, 240))

	c.Clear()

	if c.Len() != 0 || c.Size() != 0 {
		t.Errorf("after Clear(): Len() = %d, Size() = %d, want 0, 0", c.Len(), c.Size())
	}
	if _, ok := c.Get("hello"); ok {
		t.Error("Get() hit after Clear()")
	}
}
