package imageio

import (
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/darkframe/lutforge/internal/engine"
	"github.com/disintegration/imaging"
)

// Cache provides thread-safe caching of decoded pixel buffers to avoid
// redundant disk reads.
//
// Buffers are keyed by the exact path string used to load them. Processing
// functions never mutate their input, so a cached buffer can be shared by
// any number of concurrent operations.
//
// # Memory Management
//
// Cached buffers remain in memory until explicitly removed via Evict() or
// Clear(). Long-running processes handling many images should evict entries
// they are done with.
type Cache struct {
	mu      sync.RWMutex
	buffers map[string]*engine.Buffer
}

// NewCache creates an empty buffer cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{
		buffers: make(map[string]*engine.Buffer),
	}
}

// Load retrieves a buffer from the cache or decodes it from disk if not
// cached. JPEG files are auto-rotated from their EXIF orientation before
// caching, so the buffer always has the display orientation.
func (c *Cache) Load(path string) (*engine.Buffer, error) {
	c.mu.RLock()
	if buf, ok := c.buffers[path]; ok {
		c.mu.RUnlock()
		return buf, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	buf, err := ToBuffer(img)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.buffers[path] = buf
	c.mu.Unlock()

	return buf, nil
}

// Clear removes all buffers from the cache, freeing the associated memory.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.buffers = make(map[string]*engine.Buffer)
	c.mu.Unlock()
}

// Evict removes a specific buffer from the cache by its path. Unknown paths
// are ignored.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.buffers, path)
	c.mu.Unlock()
}

// Info contains metadata about an image file on disk.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoded format name, e.g. "png" or "jpeg".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// ReadInfo returns image metadata without decoding the full pixel data.
// The format is detected from the file contents, not the extension.
func ReadInfo(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &Info{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
