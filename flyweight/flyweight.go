package flyweight

import (
	"sort"
	"strings"
)

// Key returns the canonical cache key for an attribute tuple: the attributes
// sorted lexicographically, joined with an underscore.
//
// Because the tuple is sorted first, two tuples that are permutations of
// each other collide on the same key. Callers relying on attribute order to
// distinguish entries must not: ["BMW","M5","red"] and ["red","BMW","M5"]
// identify the same cache entry.
func Key(attributes []string) string {
	sorted := make([]string, len(attributes))
	copy(sorted, attributes)
	sort.Strings(sorted)
	return strings.Join(sorted, "_")
}

// Flyweight wraps one shared, immutable attribute tuple.
//
// A Flyweight is only ever handed out by a Factory; all requests that map
// to the same canonical key receive the same *Flyweight.
type Flyweight struct {
	shared []string
}

// Shared returns a copy of the shared attribute tuple, preserving the
// original attribute order it was first created with.
func (f *Flyweight) Shared() []string {
	out := make([]string, len(f.shared))
	copy(out, f.shared)
	return out
}

// Operation combines the cached shared state with caller-supplied unique
// state into a display line. The unique state is never cached.
func (f *Flyweight) Operation(unique ...string) string {
	return "shared [" + strings.Join(f.shared, " ") + "] unique [" + strings.Join(unique, " ") + "]"
}

// Factory caches Flyweights by canonical key.
//
// The zero value is not usable; construct with NewFactory. A Factory is an
// explicit instance: pass it to whoever needs it rather than reaching for a
// global.
type Factory struct {
	pool map[string]*Flyweight
}

// NewFactory constructs a Factory, optionally pre-populated with the given
// shared-state tuples.
func NewFactory(seed ...[]string) *Factory {
	f := &Factory{pool: make(map[string]*Flyweight, len(seed))}
	for _, attrs := range seed {
		f.GetOrCreate(attrs...)
	}
	return f
}

// GetOrCreate returns the cached Flyweight for the attribute tuple, creating
// and storing one on first request.
//
// It always succeeds and is identity-stable: repeated calls with the same
// tuple (or any permutation of it, per Key) return the same pointer. The
// only side effect is that a miss grows the cache by one entry; nothing is
// ever evicted.
func (f *Factory) GetOrCreate(attributes ...string) *Flyweight {
	k := Key(attributes)
	if fw, ok := f.pool[k]; ok {
		return fw
	}

	shared := make([]string, len(attributes))
	copy(shared, attributes)
	fw := &Flyweight{shared: shared}
	f.pool[k] = fw
	return fw
}

// Get returns the cached Flyweight for the tuple without creating one.
func (f *Factory) Get(attributes ...string) (*Flyweight, bool) {
	fw, ok := f.pool[Key(attributes)]
	return fw, ok
}

// Size reports the number of cached entries.
func (f *Factory) Size() int { return len(f.pool) }

// List enumerates the stored canonical keys, for diagnostics.
//
// No caller requires an ordering guarantee; keys are returned sorted so
// diagnostic output is stable.
func (f *Factory) List() []string {
	keys := make([]string, 0, len(f.pool))
	for k := range f.pool {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
