package crc

import (
	"runtime"
	"sync"

	"github.com/chronos-tachyon/assert"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"
)

// CacheOption represents a configuration option for NewCache.
type CacheOption func(*cacheOptions)

type cacheOptions struct {
	capacity    int
	concurrency int
	modelOpts   []Option
	tracers     []Tracer
	registerer  prometheus.Registerer
}

func (o *cacheOptions) reset() {
	*o = cacheOptions{}
}

func (o *cacheOptions) apply(opts []CacheOption) {
	for _, opt := range opts {
		opt(o)
	}
}

func (o *cacheOptions) populateDefaults() {
	if o.concurrency == 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	if o.capacity == 0 {
		o.capacity = NumPresets() + 4*o.concurrency
	}
}

// WithCapacity specifies the maximum number of Engines held by the Cache.
// Default: the number of presets plus 4 per expected concurrent user.
func WithCapacity(capacity int) CacheOption {
	assert.Assertf(capacity > 0, "capacity %d must be positive", capacity)
	return func(o *cacheOptions) { o.capacity = capacity }
}

// WithConcurrency specifies the expected number of concurrent users of the
// Cache, which feeds into the default capacity.  Default: GOMAXPROCS.
func WithConcurrency(concurrency int) CacheOption {
	assert.Assertf(concurrency > 0, "concurrency %d must be positive", concurrency)
	return func(o *cacheOptions) { o.concurrency = concurrency }
}

// WithModelOptions specifies the Options passed to New for every Engine that
// the Cache constructs.  Completely replaces any previous list.
func WithModelOptions(opts ...Option) CacheOption {
	tmp := make([]Option, len(opts))
	copy(tmp, opts)
	return func(o *cacheOptions) { o.modelOpts = tmp }
}

// WithCacheTracers specifies the list of Tracer instances which will receive
// cache Events.  Completely replaces any previous list.
func WithCacheTracers(tracers ...Tracer) CacheOption {
	for _, tr := range tracers {
		assert.NotNil(&tr)
	}
	tmp := make([]Tracer, len(tracers))
	copy(tmp, tracers)
	return func(o *cacheOptions) { o.tracers = tmp }
}

// WithRegisterer specifies the prometheus.Registerer with which the Cache
// registers its metrics.  Default: none.
func WithRegisterer(reg prometheus.Registerer) CacheOption {
	return func(o *cacheOptions) { o.registerer = reg }
}

type cacheMetrics struct {
	hits    prometheus.Counter
	misses  prometheus.Counter
	flushes prometheus.Counter
	entries prometheus.Gauge
}

func newCacheMetrics(reg prometheus.Registerer) *cacheMetrics {
	factory := promauto.With(reg)
	return &cacheMetrics{
		hits: factory.NewCounter(prometheus.CounterOpts{
			Name: "crc_cache_hits_total",
			Help: "Number of CRC engine lookups served from the cache.",
		}),
		misses: factory.NewCounter(prometheus.CounterOpts{
			Name: "crc_cache_misses_total",
			Help: "Number of CRC engine lookups that required construction.",
		}),
		flushes: factory.NewCounter(prometheus.CounterOpts{
			Name: "crc_cache_flushes_total",
			Help: "Number of times the CRC engine cache was emptied.",
		}),
		entries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "crc_cache_entries",
			Help: "Number of CRC engines currently cached.",
		}),
	}
}

// Cache memoizes Engines by preset identity or custom Definition.
//
// When an insertion finds the Cache at capacity, every entry is dropped
// before the new one is stored.  Concurrent misses on the same key share one
// construction; racing insertions of different keys are last-write-wins.
type Cache struct {
	capacity  int
	modelOpts []Option
	tracers   []Tracer
	metrics   *cacheMetrics
	group     singleflight.Group

	mu      sync.RWMutex
	entries map[string]Engine
}

// NewCache constructs and returns a new Cache.
func NewCache(opts ...CacheOption) *Cache {
	var o cacheOptions
	o.reset()
	o.apply(opts)
	o.populateDefaults()

	return &Cache{
		capacity:  o.capacity,
		modelOpts: o.modelOpts,
		tracers:   o.tracers,
		metrics:   newCacheMetrics(o.registerer),
		entries:   make(map[string]Engine, o.capacity),
	}
}

// Capacity returns the maximum number of entries.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Len returns the current number of entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Get returns the Engine for the named preset in the given width family.
// name may omit the "CRC-<width>/" prefix.
func (c *Cache) Get(width uint, name string) (Engine, error) {
	def, found := LookupFamilyPreset(width, name)
	if !found {
		return nil, UnknownPresetError{Width: width, Name: name}
	}
	return c.lookup(def.Key().String(), def)
}

// Resolve returns the Engine for the named preset in any width family.
func (c *Cache) Resolve(name string) (Engine, error) {
	def, found := LookupPreset(name)
	if !found {
		return nil, UnknownPresetError{Name: name}
	}
	return c.lookup(def.Key().String(), def)
}

// GetDefinition returns the Engine for an arbitrary Definition.  Custom
// Definitions are keyed by their full parameter set, so two Definitions that
// share a name but differ in parameters do not collide.
func (c *Cache) GetDefinition(def Definition) (Engine, error) {
	return c.lookup("custom:"+def.String(), def)
}

// Flush drops every entry.
func (c *Cache) Flush() {
	c.mu.Lock()
	c.entries = make(map[string]Engine, c.capacity)
	c.mu.Unlock()

	c.metrics.flushes.Inc()
	c.metrics.entries.Set(0)
	c.emit(CacheFlushEvent, Key{}, 0)
}

func (c *Cache) lookup(key string, def Definition) (Engine, error) {
	c.mu.RLock()
	engine, found := c.entries[key]
	size := len(c.entries)
	c.mu.RUnlock()

	if found {
		c.metrics.hits.Inc()
		c.emit(CacheHitEvent, def.Key(), size)
		return engine, nil
	}

	c.metrics.misses.Inc()
	c.emit(CacheMissEvent, def.Key(), size)

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		engine, err := New(def, c.modelOpts...)
		if err != nil {
			return nil, err
		}
		c.insert(key, engine)
		return engine, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Engine), nil
}

func (c *Cache) insert(key string, engine Engine) {
	c.mu.Lock()
	_, exists := c.entries[key]
	flushed := !exists && len(c.entries) >= c.capacity
	if flushed {
		c.entries = make(map[string]Engine, c.capacity)
	}
	c.entries[key] = engine
	size := len(c.entries)
	c.mu.Unlock()

	if flushed {
		c.metrics.flushes.Inc()
		c.emit(CacheFlushEvent, engine.Key(), 0)
	}
	c.metrics.entries.Set(float64(size))
	c.emit(CacheInsertEvent, engine.Key(), size)
}

func (c *Cache) emit(t EventType, key Key, size int) {
	emitEvent(c.tracers, Event{
		Type:          t,
		Key:           key,
		CacheSize:     size,
		CacheCapacity: c.capacity,
	})
}
