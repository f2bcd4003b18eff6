package imageio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP decoder (read-only)
)

// Load reads and decodes an image file. The format is detected from the
// file contents, not the extension.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", path, err)
	}
	return img, nil
}

// Save encodes an image to path. If format is non-empty it names the
// encoder ("png", "jpg", ...); otherwise the format is negotiated from
// the path's extension. Parent directories are created as needed.
func Save(img image.Image, path, format string) error {
	if format == "" {
		format = filepath.Ext(path)
	}
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("unsupported output format %q: %w", strings.TrimPrefix(format, "."), err)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := imaging.Encode(out, img, f); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode %q: %w", path, err)
	}
	return out.Close()
}

// SupportedFormats lists the format names accepted for encoding.
func SupportedFormats() []string {
	return []string{"jpg", "jpeg", "png", "gif", "tif", "tiff", "bmp"}
}

// FormatSupported reports whether a format name or extension is accepted
// for encoding.
func FormatSupported(format string) bool {
	_, err := imaging.FormatFromExtension(format)
	return err == nil
}

// NextOutputName returns the first unused auto-numbered output filename
// ("output1.png", "output2.png", ...) in dir. An empty dir means the
// current directory.
func NextOutputName(dir string) string {
	for n := 1; ; n++ {
		name := filepath.Join(dir, fmt.Sprintf("output%d.png", n))
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return name
		}
	}
}

// ImageCache provides thread-safe caching of decoded images keyed by file
// path, so repeated operations on the same file decode it once. Cached
// images stay in memory until Evict or Clear.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty cache ready for concurrent use.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the cached image for path, decoding and caching it on
// first use. Different path spellings of the same file cache separately.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes one cached image; missing paths are a no-op.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear drops every cached image.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Format        string `json:"format"` // by extension; "unknown" if unrecognized
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// Info loads an image through the cache and reports its dimensions,
// extension-negotiated format name, and file size.
func Info(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromExtension(filepath.Ext(path)); err == nil {
		format = strings.ToLower(f.String())
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
