package memento

import (
	"math/rand/v2"
	"time"
)

// dateLayout keeps snapshot names readable and sortable.
const dateLayout = "2006-01-02 15:04:05"

// Memento carries one saved state plus display metadata.
//
// The state accessor is unexported: callers outside this package (and any
// caretaker) see only Name and Date.
type Memento interface {
	// Name returns a display label: the creation date plus a state preview.
	Name() string

	// Date returns the creation timestamp.
	Date() string

	state() string
}

// snapshot is the concrete memento produced by Originator.Save.
type snapshot struct {
	st   string
	date string
}

func (s snapshot) Name() string {
	preview := s.st
	if len(preview) > 9 {
		preview = preview[:9]
	}
	return s.date + " / (" + preview + "...)"
}

func (s snapshot) Date() string { return s.date }

func (s snapshot) state() string { return s.st }

// Originator holds state that changes over time and knows how to package it
// into, and recover it from, a Memento.
//
// The state is a single opaque string for the sake of simplicity.
type Originator struct {
	st string
}

// NewOriginator constructs an Originator with an initial state.
func NewOriginator(state string) *Originator {
	return &Originator{st: state}
}

// State returns the current state.
func (o *Originator) State() string { return o.st }

// DoSomething mutates the state, standing in for real business logic.
// Callers wanting to roll back should Save before calling it.
func (o *Originator) DoSomething() {
	o.st = randomState(30)
}

// Save packages the current state into a Memento.
func (o *Originator) Save() Memento {
	return snapshot{st: o.st, date: time.Now().Format(dateLayout)}
}

// Restore replaces the current state with the one carried by m.
// A nil memento is ignored.
func (o *Originator) Restore(m Memento) {
	if m == nil {
		return
	}
	o.st = m.state()
}

const alphanum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func randomState(length int) string {
	out := make([]byte, length)
	for i := range out {
		out[i] = alphanum[rand.IntN(len(alphanum))]
	}
	return string(out)
}

// Caretaker files mementos for one Originator and replays them on demand.
// It never looks inside a memento; it works with the Memento interface only.
type Caretaker struct {
	originator *Originator
	history    []Memento
}

// NewCaretaker constructs a Caretaker for originator.
func NewCaretaker(originator *Originator) *Caretaker {
	return &Caretaker{originator: originator}
}

// Backup saves the originator's current state onto the history stack.
func (c *Caretaker) Backup() {
	c.history = append(c.history, c.originator.Save())
}

// Undo pops the most recent memento and restores the originator from it.
// It is a no-op when the history is empty.
func (c *Caretaker) Undo() {
	if len(c.history) == 0 {
		return
	}
	last := c.history[len(c.history)-1]
	c.history = c.history[:len(c.history)-1]
	c.originator.Restore(last)
}

// History returns the filed mementos, oldest first.
func (c *Caretaker) History() []Memento {
	out := make([]Memento, len(c.history))
	copy(out, c.history)
	return out
}
