package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streamgo-dev/streamgo/internal/config"
)

func TestParseDefaults(t *testing.T) {
	cfg := config.Parse(nil)
	require.Equal(t, "0.0.0.0:8502", cfg.Addr)
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.RunOnSave)
	require.Equal(t, "*", cfg.AllowedOrigins)
}

func TestParseFlags(t *testing.T) {
	cfg := config.Parse([]string{
		"-addr", ":9000",
		"-log-level", "debug",
		"-run-on-save",
		"-allowed-origins", "https://a.example,https://b.example",
	})
	require.Equal(t, ":9000", cfg.Addr)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.RunOnSave)
	require.Equal(t, "https://a.example,https://b.example", cfg.AllowedOrigins)
}

func TestParseVersionAndHelpFlags(t *testing.T) {
	cfg := config.Parse([]string{"-version"})
	require.True(t, cfg.ShowVersion)

	cfg = config.Parse([]string{"-help"})
	require.True(t, cfg.ShowHelp)
}
