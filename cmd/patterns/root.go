package main

import "github.com/spf13/cobra"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Narrated design-pattern demos",
	Long: `patterns runs a narrated demo for each pattern in the catalogue.

Every demo is a small client harness around one library package; it prints
what it does step by step and exits. Demos are independent of each other.

Available demos:
  patterns composite     A tree of leaves and branches, rendered recursively
  patterns flyweight     A shared-state cache behind an explicit factory
  patterns builder       A step-sequenced assembler with a director
  patterns bridge        Abstractions decoupled from their implementations
  patterns memento       Snapshot and restore of an originator's state`,
}
