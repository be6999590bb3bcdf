package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sghaida/patterns/bridge"
)

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Run the Bridge demo",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		// Any abstraction works with any implementation; the pairing is
		// fixed once, at link time.
		base := bridge.NewAbstraction(bridge.ImplementationA{})
		fmt.Fprintf(out, "%s\n\n", base.Operation())

		extended := bridge.NewExtendedAbstraction(bridge.ImplementationB{})
		fmt.Fprintln(out, extended.Operation())
	},
}

func init() {
	rootCmd.AddCommand(bridgeCmd)
}
