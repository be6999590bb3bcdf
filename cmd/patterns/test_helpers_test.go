package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// executeCommand runs the root command with args and returns everything the
// demo wrote. The shared rootCmd is redirected per call, so tests using this
// helper must not run in parallel.
func executeCommand(t *testing.T, args ...string) string {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute())
	return buf.String()
}
