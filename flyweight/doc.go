// Package flyweight demonstrates the Flyweight pattern: a cache mapping a
// canonical key (derived from a tuple of shared attributes) to a single
// immutable value object, so that many logical entities reference one copy
// of their common state.
//
// The cache lives behind an explicit Factory instance handed to callers.
// There is deliberately no package-level singleton and no implicit
// lifecycle: construct a Factory, pass it around, and let it go out of
// scope when done. Entries are created lazily on first request and never
// evicted, which is acceptable only because the example is illustrative.
//
// Terminology used here:
//
//   - shared state: attribute data common to many entities, cached once
//   - unique state: per-entity data supplied at call time, never cached
//
// Quick usage
//
//	f := flyweight.NewFactory(
//		[]string{"BMW", "M5", "red"},
//		[]string{"BMW", "X6", "white"},
//	)
//
//	fw := f.GetOrCreate("BMW", "M5", "red") // reuses the seeded entry
//	fmt.Println(fw.Operation("CL234IR", "James Doe"))
package flyweight
