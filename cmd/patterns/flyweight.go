package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sghaida/patterns/flyweight"
)

var flyweightCmd = &cobra.Command{
	Use:   "flyweight",
	Short: "Run the Flyweight demo",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		// The factory is an explicit instance seeded with the states the
		// application expects to share; it is passed to whoever needs it.
		factory := flyweight.NewFactory(
			[]string{"Chevrolet", "Camaro2018", "pink"},
			[]string{"Mercedes Benz", "C300", "black"},
			[]string{"Mercedes Benz", "C500", "red"},
			[]string{"BMW", "M5", "red"},
			[]string{"BMW", "X6", "white"},
		)
		listFlyweights(out, factory)

		// Unique state (plates, owner) is supplied per call and never cached.
		addCarToPoliceDatabase(out, factory, "CL234IR", "James Doe", "BMW", "M5", "red")
		addCarToPoliceDatabase(out, factory, "CL234IR", "James Doe", "BMW", "X1", "red")

		listFlyweights(out, factory)
	},
}

func listFlyweights(out io.Writer, factory *flyweight.Factory) {
	fmt.Fprintf(out, "Factory: I have %d flyweights:\n", factory.Size())
	for _, key := range factory.List() {
		fmt.Fprintln(out, key)
	}
	fmt.Fprintln(out)
}

func addCarToPoliceDatabase(out io.Writer, factory *flyweight.Factory, plates, owner, brand, model, color string) {
	fmt.Fprintln(out, "Client: Adding a car to the database.")
	fw := factory.GetOrCreate(brand, model, color)
	fmt.Fprintf(out, "%s\n\n", fw.Operation(plates, owner))
}

func init() {
	rootCmd.AddCommand(flyweightCmd)
}
