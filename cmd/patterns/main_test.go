package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests execute each subcommand end to end and assert on the stable
// parts of the narration (the RESULT lines and counters). Wording of the
// surrounding prose is illustrative and deliberately not pinned down.

// -------------------------
// composite
// -------------------------

func TestCompositeCmd(t *testing.T) {
	out := executeCommand(t, "composite")

	assert.Contains(t, out, "RESULT: Leaf\n")
	assert.Contains(t, out, "RESULT: Branch(Branch(Leaf Leaf) Branch(Leaf Leaf))\n")
	assert.Contains(t, out, "RESULT: Branch(Branch(Leaf Leaf) Branch(Leaf Leaf) Leaf)\n")
}

// -------------------------
// flyweight
// -------------------------

func TestFlyweightCmd(t *testing.T) {
	out := executeCommand(t, "flyweight")

	// Seeded with five states; the M5/red request reuses an entry, the
	// X1/red request adds the sixth.
	assert.Contains(t, out, "Factory: I have 5 flyweights:")
	assert.Contains(t, out, "Factory: I have 6 flyweights:")

	assert.Contains(t, out, "shared [BMW M5 red] unique [CL234IR James Doe]")
	assert.Contains(t, out, "shared [BMW X1 red] unique [CL234IR James Doe]")

	assert.Contains(t, out, "BMW_M5_red")
	assert.Contains(t, out, "BMW_X1_red")
	assert.Equal(t, 2, strings.Count(out, "Client: Adding a car to the database."))
}

// -------------------------
// builder
// -------------------------

func TestBuilderCmd(t *testing.T) {
	out := executeCommand(t, "builder")

	assert.Contains(t, out, "Standard basic product:\nProduct parts: PartA1\n")
	assert.Contains(t, out, "Standard full featured product:\nProduct parts: PartA1, PartB1, PartC1\n")
	assert.Contains(t, out, "Custom product:\nProduct parts: PartA1, PartC1\n")
}

// -------------------------
// bridge
// -------------------------

func TestBridgeCmd(t *testing.T) {
	out := executeCommand(t, "bridge")

	assert.Contains(t, out, "Abstraction: base operation with:\nImplementationA: here's the result on platform A")
	assert.Contains(t, out, "ExtendedAbstraction: extended operation with:\nImplementationB: here's the result on platform B")
}

// -------------------------
// memento
// -------------------------

func TestMementoCmd(t *testing.T) {
	out := executeCommand(t, "memento")

	assert.Contains(t, out, "Originator: my initial state is: Super-duper-super-puper-super.")
	assert.Equal(t, 3, strings.Count(out, "Caretaker: saving originator's state..."))
	assert.Contains(t, out, "Caretaker: here's the list of mementos:")
	assert.Equal(t, 2, strings.Count(out, "Client:"))
	// Three mutations plus two undo restores.
	assert.Equal(t, 5, strings.Count(out, "Originator: my state has changed to:"))
}

// -------------------------
// root
// -------------------------

func TestRootCmd_ListsDemos(t *testing.T) {
	out := executeCommand(t, "--help")

	for _, sub := range []string{"composite", "flyweight", "builder", "bridge", "memento"} {
		assert.Contains(t, out, sub)
	}
}

func TestUnknownSubcommand_Fails(t *testing.T) {
	rootCmd.SetArgs([]string{"nope"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
