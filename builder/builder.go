package builder

import (
	"strconv"
	"strings"
)

// Builder is the step contract shared by all concrete builders.
//
// Each step appends one labeled part to the product under construction.
// Product retrieval is intentionally not part of the contract: different
// concrete builders may produce unrelated product types, so each exposes
// its own getter.
type Builder interface {
	ProducePartA()
	ProducePartB()
	ProducePartC()
}

// NotImplementedError reports a builder step that was invoked without a
// concrete override.
type NotImplementedError struct{ Step string }

// Error implements the error interface.
func (e NotImplementedError) Error() string {
	// Example: builder: step "ProducePartA" not implemented
	return "builder: step " + strconv.Quote(e.Step) + " not implemented"
}

// UnimplementedBuilder is an embeddable Builder whose every step panics with
// NotImplementedError.
//
// Embed it in a partial builder to satisfy the Builder interface while only
// overriding the steps that matter; invoking a non-overridden step is a
// fatal, unrecovered contract violation.
type UnimplementedBuilder struct{}

// ProducePartA implements Builder by panicking.
func (UnimplementedBuilder) ProducePartA() { panic(NotImplementedError{Step: "ProducePartA"}) }

// ProducePartB implements Builder by panicking.
func (UnimplementedBuilder) ProducePartB() { panic(NotImplementedError{Step: "ProducePartB"}) }

// ProducePartC implements Builder by panicking.
func (UnimplementedBuilder) ProducePartC() { panic(NotImplementedError{Step: "ProducePartC"}) }

// Product is an assembled result: an ordered list of labeled parts.
type Product struct {
	parts []string
}

// Parts returns a copy of the part list in assembly order.
func (p *Product) Parts() []string {
	out := make([]string, len(p.parts))
	copy(out, p.parts)
	return out
}

// ListParts returns a display line for the part list.
func (p *Product) ListParts() string {
	return "Product parts: " + strings.Join(p.parts, ", ")
}

// ConcreteBuilder assembles a Product part by part.
//
// The zero value is ready to use.
type ConcreteBuilder struct {
	parts []string
}

// NewConcreteBuilder constructs a ConcreteBuilder with an empty accumulator.
func NewConcreteBuilder() *ConcreteBuilder { return &ConcreteBuilder{} }

// ProducePartA implements Builder.
func (b *ConcreteBuilder) ProducePartA() { b.parts = append(b.parts, "PartA1") }

// ProducePartB implements Builder.
func (b *ConcreteBuilder) ProducePartB() { b.parts = append(b.parts, "PartB1") }

// ProducePartC implements Builder.
func (b *ConcreteBuilder) ProducePartC() { b.parts = append(b.parts, "PartC1") }

// GetProduct returns the product accumulated so far and resets the builder
// for the next assembly. A second retrieval without intervening steps yields
// an empty product.
func (b *ConcreteBuilder) GetProduct() *Product {
	p := &Product{parts: b.parts}
	b.parts = nil
	return p
}

// Director replays fixed step sequences against its current builder.
//
// A Director is an optional convenience: clients may drive a Builder's steps
// directly. It holds a single builder reference which can be repointed at
// any time via SetBuilder.
type Director struct {
	builder Builder
}

// NewDirector constructs a Director with no builder attached.
func NewDirector() *Director { return &Director{} }

// SetBuilder repoints the director at b.
func (d *Director) SetBuilder(b Builder) { d.builder = b }

// BuildMinimalViableProduct runs the smallest useful sequence: part A only.
// It is a no-op when no builder is attached.
func (d *Director) BuildMinimalViableProduct() {
	if d.builder == nil {
		return
	}
	d.builder.ProducePartA()
}

// BuildFullFeaturedProduct runs every step in order: parts A, B, then C.
// It is a no-op when no builder is attached.
func (d *Director) BuildFullFeaturedProduct() {
	if d.builder == nil {
		return
	}
	d.builder.ProducePartA()
	d.builder.ProducePartB()
	d.builder.ProducePartC()
}
