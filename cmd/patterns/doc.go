// Command patterns runs the narrated demo for each pattern in the
// catalogue.
//
// Each subcommand is the pattern's client harness: it builds the objects
// the way a caller would and prints human-readable narration lines to
// stdout. The wording is illustrative, not a contract; the exit code is 0
// on normal completion.
//
// Usage:
//
//	patterns composite
//	patterns flyweight
//	patterns builder
//	patterns bridge
//	patterns memento
//
// There are no flags and no environment variables: the only input is which
// example to run.
package main
