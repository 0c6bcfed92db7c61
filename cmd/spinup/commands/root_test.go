package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHelpShortCircuits(t *testing.T) {
	// --help must print usage and succeed without touching the provider;
	// the root command never reaches the launch path.
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"--help"})

	err := RootCmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "sensible defaults")
	assert.Contains(t, out.String(), "spinup presets")
}

func TestRootAcceptsBareTokens(t *testing.T) {
	// Malformed tokens are ignored by the resolver, so they must not be
	// rejected earlier as unknown subcommands. The trailing --help keeps
	// the run from reaching the provider.
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"junk", "--help"})

	err := RootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "sensible defaults")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"version"})

	err := RootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "spinup dev")
}
