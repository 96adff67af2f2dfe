package ubershader

import "fmt"

// Cache owns a loaded archive and materializes its shader variants on
// demand. Each spec index is compiled through the engine at most once per
// load; repeated lookups that resolve to the same index return the same
// handle without touching the engine.
//
// Lifecycle: NewCache, Load once, any number of Material/DefaultMaterial
// calls, ReleaseAll, Close. Loading twice, looking up before loading, or
// closing with live materials are programming errors and panic.
//
// A Cache is single-owner. Callers that share one across goroutines must
// provide their own mutual exclusion; the bundled engines are themselves
// safe for concurrent use by multiple caches.
type Cache struct {
	engine    Engine
	archive   *Archive
	materials []MaterialID
	closed    bool
	stats     CacheStats
}

// CacheStats describes the work a cache has performed.
type CacheStats struct {
	// Lookups counts Material and DefaultMaterial calls.
	Lookups int

	// Hits counts lookups resolved to an already compiled material.
	Hits int

	// Misses counts lookups no spec satisfied.
	Misses int

	// Compiles counts successful engine compilations.
	Compiles int
}

// NewCache returns an empty cache that compiles materials through engine.
func NewCache(engine Engine) *Cache {
	if engine == nil {
		panic("ubershader: NewCache with nil engine")
	}
	return &Cache{engine: engine}
}

// Load decodes an archive (raw or compressed bytes, see DecodeArchive) and
// allocates one empty material slot per spec. Structural problems return a
// *FormatError and leave the cache unloaded.
//
// Load panics if an archive is already loaded or the cache is closed.
func (c *Cache) Load(data []byte) error {
	if c.closed {
		panic("ubershader: Cache.Load after Close")
	}
	if c.archive != nil {
		panic("ubershader: Cache.Load with archive already loaded")
	}
	a, err := DecodeArchive(data)
	if err != nil {
		return err
	}
	c.archive = a
	c.materials = make([]MaterialID, a.SpecCount())
	return nil
}

// Material returns the runtime material of the first spec that satisfies
// req, compiling it through the engine on first use. It returns ErrNoMatch
// when no spec satisfies req. A failed compile is not memoized; a later
// lookup retries.
//
// Material panics if called before Load or after Close.
func (c *Cache) Material(req *Requirements) (MaterialID, error) {
	c.mustBeLoaded("Material")
	c.stats.Lookups++

	idx, ok := c.archive.FindSpec(req)
	if !ok {
		c.stats.Misses++
		return InvalidMaterial, ErrNoMatch
	}
	return c.materialAt(idx)
}

// DefaultMaterial returns the material of spec index 0, compiling it on
// first use. Archives place their most permissive variant first, so this
// is the fallback when no requirements are known. It returns ErrNoMatch
// when the archive is empty.
//
// DefaultMaterial panics if called before Load or after Close.
func (c *Cache) DefaultMaterial() (MaterialID, error) {
	c.mustBeLoaded("DefaultMaterial")
	c.stats.Lookups++

	if c.archive.SpecCount() == 0 {
		c.stats.Misses++
		return InvalidMaterial, ErrNoMatch
	}
	return c.materialAt(0)
}

// materialAt returns the memoized material for spec idx, compiling it if
// the slot is still empty.
func (c *Cache) materialAt(idx int) (MaterialID, error) {
	if id := c.materials[idx]; id != InvalidMaterial {
		c.stats.Hits++
		return id, nil
	}

	id, err := c.engine.CompileMaterial(c.archive.Spec(idx).Package())
	if err != nil {
		return InvalidMaterial, fmt.Errorf("ubershader: compiling spec %d: %w", idx, err)
	}
	c.stats.Compiles++
	c.materials[idx] = id
	Logger().Debug("compiled material", "spec", idx, "material", id)
	return id, nil
}

// ReleaseAll destroys every live material through the engine and clears
// the slots. The cache stays usable; the next lookup recompiles.
func (c *Cache) ReleaseAll() {
	for i, id := range c.materials {
		if id != InvalidMaterial {
			c.engine.DestroyMaterial(id)
			c.materials[i] = InvalidMaterial
		}
	}
}

// Close marks the cache unusable. Discarding a cache with live materials
// is a programming error: Close panics unless ReleaseAll ran first.
// Closing an already closed cache is a no-op.
func (c *Cache) Close() error {
	for _, id := range c.materials {
		if id != InvalidMaterial {
			panic("ubershader: Cache closed with live materials; call ReleaseAll first")
		}
	}
	c.closed = true
	c.archive = nil
	c.materials = nil
	return nil
}

// SpecCount returns the number of specs in the loaded archive, or 0 when
// nothing is loaded.
func (c *Cache) SpecCount() int {
	if c.archive == nil {
		return 0
	}
	return c.archive.SpecCount()
}

// Archive returns the loaded archive view, or nil when nothing is loaded.
func (c *Cache) Archive() *Archive {
	return c.archive
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	return c.stats
}

// mustBeLoaded panics when the cache cannot serve lookups.
func (c *Cache) mustBeLoaded(op string) {
	if c.closed {
		panic("ubershader: Cache." + op + " after Close")
	}
	if c.archive == nil {
		panic("ubershader: Cache." + op + " before Load")
	}
}
