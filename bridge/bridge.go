// Package bridge demonstrates the Bridge pattern: an abstraction hierarchy
// and an implementation hierarchy that vary independently, linked by a
// single reference from abstraction to implementation.
package bridge

// Implementation provides the primitive operations an Abstraction builds on.
// It does not have to mirror the Abstraction's interface.
type Implementation interface {
	OperationImplementation() string
}

// ImplementationA is the platform-A variant.
type ImplementationA struct{}

func (ImplementationA) OperationImplementation() string {
	return "ImplementationA: here's the result on platform A"
}

// ImplementationB is the platform-B variant.
type ImplementationB struct{}

func (ImplementationB) OperationImplementation() string {
	return "ImplementationB: here's the result on platform B"
}

// Abstraction is the control side of the bridge: it delegates real work to
// whichever Implementation it was constructed with.
type Abstraction struct {
	impl Implementation
}

// NewAbstraction links an Abstraction to impl.
func NewAbstraction(impl Implementation) *Abstraction {
	return &Abstraction{impl: impl}
}

// Operation runs the base high-level operation on top of the implementation.
func (a *Abstraction) Operation() string {
	return "Abstraction: base operation with:\n" + a.impl.OperationImplementation()
}

// ExtendedAbstraction extends the abstraction side without touching any
// Implementation.
type ExtendedAbstraction struct {
	Abstraction
}

// NewExtendedAbstraction links an ExtendedAbstraction to impl.
func NewExtendedAbstraction(impl Implementation) *ExtendedAbstraction {
	return &ExtendedAbstraction{Abstraction: Abstraction{impl: impl}}
}

// Operation shadows the base operation with the extended variant.
func (e *ExtendedAbstraction) Operation() string {
	return "ExtendedAbstraction: extended operation with:\n" + e.impl.OperationImplementation()
}
