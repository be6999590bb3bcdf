package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sghaida/patterns/composite"
)

var compositeCmd = &cobra.Command{
	Use:   "composite",
	Short: "Run the Composite demo",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		// A single leaf works on its own.
		simple := composite.NewLeaf()
		fmt.Fprintln(out, "Client: I've got a simple component:")
		fmt.Fprintf(out, "RESULT: %s\n\n", simple.Render())

		// A tree of two sub-branches, built by explicit Add calls.
		tree := composite.NewBranch()
		for i := 0; i < 2; i++ {
			sub := composite.NewBranch()
			sub.Add(composite.NewLeaf())
			sub.Add(composite.NewLeaf())
			tree.Add(sub)
		}
		fmt.Fprintln(out, "Client: Now I've got a composite tree:")
		fmt.Fprintf(out, "RESULT: %s\n\n", tree.Render())

		// The client can manage any component without checking its kind;
		// IsComposite is only needed to decide where attachment is useful.
		fmt.Fprintln(out, "Client: I can attach a component to the tree without checking its class:")
		if tree.IsComposite() {
			tree.Add(simple)
		}
		fmt.Fprintf(out, "RESULT: %s\n", tree.Render())
	},
}

func init() {
	rootCmd.AddCommand(compositeCmd)
}
