// Package patterns is a catalogue of small, explicit design-pattern
// demonstrations for Go.
//
// This repository explores a handful of classic structural, creational and
// behavioral patterns, each as a self-contained package:
//
//   - composite: a tree of leaves and branches rendered by a recursive walk
//   - flyweight: a shared-state cache behind an explicit factory
//   - builder: a step-sequenced assembler with an optional director
//   - bridge: an abstraction hierarchy decoupled from its implementations
//   - memento: snapshot/restore of an originator's state via a caretaker
//
// The goal is pedagogy, not production machinery: no shared runtime, no
// persistence, no concurrency, and an intentionally small surface area per
// package. Every package is independent; none calls into another.
//
// Each pattern ships with a narrated, runnable client harness:
//
//	go run ./cmd/patterns composite
//	go run ./cmd/patterns flyweight
//
// See subpackages:
//   - composite, flyweight, builder, bridge, memento: the pattern libraries
//   - cmd/patterns: the demo runner, one subcommand per pattern
package patterns
