// Package builder demonstrates the Builder pattern: a step-sequenced
// assembler that accumulates labeled parts into a product, plus an optional
// Director that replays fixed step subsequences against whichever builder
// it currently points at.
//
// Retrieving the built product resets the builder's accumulator, so one
// builder instance can assemble many products in sequence.
//
// UnimplementedBuilder illustrates the contract-violation case: a step
// invoked without a concrete override fails fast with NotImplementedError.
// That panic is illustrative of an interface-contract violation, not an
// error-handling strategy to imitate.
package builder
