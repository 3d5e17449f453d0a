package render

import (
	"fmt"
	"sync"

	"github.com/ironsheep/chess-mcp/internal/board"
)

// DefaultCacheSize is the number of boards a Cache keeps when not told otherwise.
const DefaultCacheSize = 64

// Cache provides thread-safe caching of rendered boards to avoid redrawing
// the same position.
//
// Entries are keyed by the position's FEN and every option that changes the
// picture. When the cache is full the oldest entry is dropped first.
//
// Cached images are shared between callers. Treat BoardImage.PNG as read-only.
//
// # Example Usage
//
//	cache := render.NewCache(render.DefaultCacheSize)
//	img, err := cache.Render(pos, render.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	cache.Clear() // Optional: free memory
type Cache struct {
	mu     sync.RWMutex
	max    int
	images map[string]*BoardImage
	order  []string
}

// NewCache creates an empty cache holding at most max boards. A max below 1
// means DefaultCacheSize.
func NewCache(max int) *Cache {
	if max < 1 {
		max = DefaultCacheSize
	}
	return &Cache{
		max:    max,
		images: make(map[string]*BoardImage),
	}
}

// Render returns the cached image for pos and opts, drawing it on a miss.
// Options that draw the same picture share one entry. Failed renders are not
// cached.
func (c *Cache) Render(pos *board.Position, opts Options) (*BoardImage, error) {
	opts, err := normalize(opts)
	if err != nil {
		return nil, err
	}
	key := cacheKey(pos, opts)

	c.mu.RLock()
	if img, ok := c.images[key]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := Render(pos, opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.images[key]; !ok {
		for len(c.order) >= c.max {
			delete(c.images, c.order[0])
			c.order = c.order[1:]
		}
		c.order = append(c.order, key)
	}
	c.images[key] = img
	return img, nil
}

// Len reports the number of cached boards.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear removes all boards from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*BoardImage)
	c.order = nil
	c.mu.Unlock()
}

// cacheKey expects normalized options.
func cacheKey(pos *board.Position, opts Options) string {
	return fmt.Sprintf("%s|%d|%s|%v|%s|%s",
		pos.FEN(), opts.SquareSize, opts.Perspective, opts.Highlight,
		opts.LightColor, opts.DarkColor)
}
