package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sghaida/patterns/builder"
)

var builderCmd = &cobra.Command{
	Use:   "builder",
	Short: "Run the Builder demo",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		b := builder.NewConcreteBuilder()
		director := builder.NewDirector()
		director.SetBuilder(b)

		// The director replays fixed sequences against its current builder.
		fmt.Fprintln(out, "Standard basic product:")
		director.BuildMinimalViableProduct()
		fmt.Fprintf(out, "%s\n\n", b.GetProduct().ListParts())

		fmt.Fprintln(out, "Standard full featured product:")
		director.BuildFullFeaturedProduct()
		fmt.Fprintf(out, "%s\n\n", b.GetProduct().ListParts())

		// The builder works without a director as well: the client picks
		// its own step sequence.
		fmt.Fprintln(out, "Custom product:")
		b.ProducePartA()
		b.ProducePartC()
		fmt.Fprintln(out, b.GetProduct().ListParts())
	},
}

func init() {
	rootCmd.AddCommand(builderCmd)
}
