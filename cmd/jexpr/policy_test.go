package main

import (
	"testing"

	"github.com/HyperLuna/jexpr/certify"
	"github.com/stretchr/testify/require"
)

func TestParsePolicyFile(t *testing.T) {
	data := []byte(`
preset: strict
allow:
  mutation: true
  calls: false
params: [order, g]
global: g
`)
	file, err := parsePolicyFile(data)
	require.NoError(t, err)
	require.Equal(t, []string{"order", "g"}, file.Params)
	require.Equal(t, "g", file.Global)

	p := file.policy()
	require.Equal(t, certify.Policy{AllowMutation: true}, p)
}

func TestParsePolicyFileDefaults(t *testing.T) {
	file, err := parsePolicyFile([]byte("{}"))
	require.NoError(t, err)
	require.Equal(t, certify.Baseline, file.policy())
}

func TestParsePolicyFilePermissivePreset(t *testing.T) {
	file, err := parsePolicyFile([]byte("preset: permissive\nallow:\n  this: false\n"))
	require.NoError(t, err)
	p := file.policy()
	require.False(t, p.AllowThis)
	require.True(t, p.AllowCalls)
	require.True(t, p.AllowMutation)
}

func TestParsePolicyFileUnknownPreset(t *testing.T) {
	_, err := parsePolicyFile([]byte("preset: lenient\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown policy preset "lenient"`)
}

func TestParsePolicyFileInvalidYAML(t *testing.T) {
	_, err := parsePolicyFile([]byte(":\t:"))
	require.Error(t, err)
}
