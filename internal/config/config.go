// Package config parses streamgo's CLI flags into a Settings value.
package config

import (
	"flag"
	"fmt"
)

const Version = "0.1.0"

// Settings holds all CLI configuration for the server.
type Settings struct {
	ShowVersion bool
	ShowHelp    bool

	Addr     string
	LogLevel string

	// RunOnSave holds the -run-on-save flag. It is not passed to
	// sessions: SessionStatusChanged always reports run_on_save=false.
	RunOnSave bool

	// AllowedOrigins feeds /_stcore/host-config's allowedOrigins field.
	AllowedOrigins string

	// MetricsURL feeds /_stcore/host-config's metricsUrl field.
	MetricsURL string
}

// Parse parses CLI flags and returns settings.
func Parse(args []string) *Settings {
	fs := flag.NewFlagSet("streamgo", flag.ExitOnError)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help information")
	addr := fs.String("addr", "0.0.0.0:8502", "Address to listen on")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn, error")
	runOnSave := fs.Bool("run-on-save", false, "Run-on-save setting (not sent to clients; sessions report false)")
	allowedOrigins := fs.String("allowed-origins", "*", "Comma-separated list of allowed origins for host-config")
	metricsURL := fs.String("metrics-url", "", "metricsUrl value reported by host-config")

	fs.Parse(args)

	return &Settings{
		ShowVersion:    *showVersion,
		ShowHelp:       *showHelp,
		Addr:           *addr,
		LogLevel:       *logLevel,
		RunOnSave:      *runOnSave,
		AllowedOrigins: *allowedOrigins,
		MetricsURL:     *metricsURL,
	}
}

// PrintHelp writes usage information to stdout.
func PrintHelp() {
	fmt.Print(`streamgo - a reactive dashboard server

Usage:
  streamgo [flags]

Flags:
  -addr string              Address to listen on (default "0.0.0.0:8502")
  -log-level string         debug, info, warn, error (default "info")
  -run-on-save               Run-on-save setting (not sent to clients; sessions report false)
  -allowed-origins string   Comma-separated allowedOrigins for host-config (default "*")
  -metrics-url string       metricsUrl value reported by host-config
  -version                   Show version information
  -help                      Show help information
`)
}
