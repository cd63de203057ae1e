package speech

import (
	"container/list"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/reenas3520-oss/yahoooo-study/speech/audio"
)

// Cache maps normalized spoken text to decoded audio buffers. Entries are
// never mutated; a bounded LRU keeps a long session from holding every
// utterance ever synthesized. The playback controller is the only writer.
type Cache struct {
	mu         sync.RWMutex
	maxEntries int
	entries    map[string]*list.Element
	order      *list.List // front = most recently used
	totalBytes int64

	hits   int64
	misses int64
}

type cacheEntry struct {
	key string
	buf *audio.Buffer
}

// NewCache creates a cache holding at most maxEntries buffers.
func NewCache(maxEntries int) *Cache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Cache{
		maxEntries: maxEntries,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
	}
}

// Get returns the buffer for a normalized text, if present.
func (c *Cache) Get(key string) (*audio.Buffer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.order.MoveToFront(el)
	c.hits++
	return el.Value.(*cacheEntry).buf, true
}

// Put stores a buffer under its normalized text. A key maps to at most one
// entry; storing an existing key keeps the first buffer.
func (c *Cache) Put(key string, buf *audio.Buffer) {
	if key == "" || buf == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&cacheEntry{key: key, buf: buf})
	c.entries[key] = el
	c.totalBytes += buf.Size()

	for c.order.Len() > c.maxEntries {
		c.evictOldest()
	}
}

// evictOldest removes the least recently used entry. Caller holds the lock.
func (c *Cache) evictOldest() {
	el := c.order.Back()
	if el == nil {
		return
	}
	entry := el.Value.(*cacheEntry)
	c.order.Remove(el)
	delete(c.entries, entry.key)
	c.totalBytes -= entry.buf.Size()
	log.Debug("evicted cached audio",
		"size", humanize.Bytes(uint64(entry.buf.Size())),
		"cached", humanize.Bytes(uint64(c.totalBytes)),
		"entries", c.order.Len())
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.order.Len()
}

// Size returns the total bytes of cached audio.
func (c *Cache) Size() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.totalBytes
}

// Stats returns hit and miss counters.
func (c *Cache) Stats() (hits, misses int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Clear drops every entry. Used on full session resets.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.order.Init()
	c.totalBytes = 0
}
