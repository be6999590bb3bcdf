// Package memento demonstrates the Memento pattern: saving and restoring an
// Originator's state without revealing how that state is stored.
//
// The Memento interface exposes only metadata (name, date). Its state
// accessor is unexported, so a Caretaker can file and replay snapshots but
// can never read or forge the state they carry; only the Originator gets
// back inside its own mementos.
package memento
