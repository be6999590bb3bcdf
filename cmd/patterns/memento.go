package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sghaida/patterns/memento"
)

var mementoCmd = &cobra.Command{
	Use:   "memento",
	Short: "Run the Memento demo",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		originator := memento.NewOriginator("Super-duper-super-puper-super.")
		caretaker := memento.NewCaretaker(originator)
		fmt.Fprintf(out, "Originator: my initial state is: %s\n", originator.State())

		// Back up before every risky operation.
		for i := 0; i < 3; i++ {
			fmt.Fprintln(out, "\nCaretaker: saving originator's state...")
			caretaker.Backup()
			originator.DoSomething()
			fmt.Fprintf(out, "Originator: my state has changed to: %s\n", originator.State())
		}

		fmt.Fprintln(out, "\nCaretaker: here's the list of mementos:")
		for _, m := range caretaker.History() {
			fmt.Fprintln(out, m.Name())
		}

		fmt.Fprintln(out, "\nClient: now, let's roll back!")
		caretaker.Undo()
		fmt.Fprintf(out, "Originator: my state has changed to: %s\n", originator.State())

		fmt.Fprintln(out, "\nClient: once more!")
		caretaker.Undo()
		fmt.Fprintf(out, "Originator: my state has changed to: %s\n", originator.State())
	},
}

func init() {
	rootCmd.AddCommand(mementoCmd)
}
