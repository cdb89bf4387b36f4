package raster

import (
	"fmt"
	"log/slog"
)

// ReadFile reads an entire file's contents given its path. It is the
// injection point for the generic byte-oriented file I/O the loader treats
// as an external collaborator rather than something this package owns.
type ReadFile func(path string) ([]byte, error)

// TextureCache maps file paths to decoded Textures. Lookups are by
// byte-exact path string; the cache holds entries in load order (never
// LRU) and never evicts, satisfying the invariant that a Texture's pixel
// buffer outlives every DrawCall referencing it for the process lifetime.
//
// A language-neutral singly-linked cache is naturally expressed as an
// ordered map; TextureCache keeps a slice alongside the map only to
// preserve load order for diagnostics, not for lookup.
type TextureCache struct {
	byPath map[string]*Texture
	order  []string
	read   ReadFile
	log    *slog.Logger
}

// NewTextureCache constructs an empty cache. read supplies the
// out-of-scope "read entire file" operation; if log is nil,
// slog.Default() is used.
func NewTextureCache(read ReadFile, log *slog.Logger) *TextureCache {
	if log == nil {
		log = slog.Default()
	}
	return &TextureCache{byPath: make(map[string]*Texture), read: read, log: log}
}

// Get returns the Texture for path, decoding and caching it on first access.
// Calling Get twice with the same path returns the same *Texture and reads
// the underlying file at most once.
func (c *TextureCache) Get(path string) (*Texture, error) {
	if tex, ok := c.byPath[path]; ok {
		c.log.Debug("texture cache hit", "path", path)
		return tex, nil
	}
	c.log.Debug("texture cache miss, decoding", "path", path)
	raw, err := c.read(path)
	if err != nil {
		return nil, fmt.Errorf("raster: reading texture %q: %w", path, err)
	}
	tex, err := DecodeBMP(raw)
	if err != nil {
		return nil, fmt.Errorf("raster: decoding texture %q: %w", path, err)
	}
	c.byPath[path] = tex
	c.order = append(c.order, path)
	return tex, nil
}

// Len returns the number of distinct textures loaded so far.
func (c *TextureCache) Len() int { return len(c.order) }
