package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup_ConfigFile(t *testing.T) {
	resetGlobals()
	configPath = writeTemp(t, "orgctl.yaml", "search:\n  mask_start: 4\n  span: 3\noutput:\n  format: tree\n")

	require.NoError(t, setup(rootCmd, nil))
	require.Equal(t, 4, cfg.Search.MaskStart)
	require.Equal(t, 3, cfg.Search.Span)
	require.Equal(t, "tree", cfg.Output.Format)
	require.False(t, cfg.Cipher.Strict)
}

func TestSetup_JSONOverridesFormat(t *testing.T) {
	resetGlobals()
	jsonOut = true

	require.NoError(t, setup(rootCmd, nil))
	require.Equal(t, "json", cfg.Output.Format)
}

func TestSetup_InvalidConfig(t *testing.T) {
	resetGlobals()
	configPath = writeTemp(t, "orgctl.yaml", "output:\n  format: xml\n")

	require.Error(t, setup(rootCmd, nil))
}

func TestSetup_EnvMaskStart(t *testing.T) {
	resetGlobals()
	t.Setenv("ORGCTL_MASK_START", "12")

	require.NoError(t, setup(rootCmd, nil))
	require.Equal(t, 12, cfg.Search.MaskStart)
}
