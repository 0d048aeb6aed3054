package testpayloads

import (
	"fmt"
	"os"

	"github.com/sorilab/sori/pkg/logger"
)

// SetupLogging initializes the logger for a CLI run.
func SetupLogging(level string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := logger.SetLevelString(level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// ShowHelp prints usage information for the payload test tool.
func ShowHelp() {
	os.Stdout.WriteString(`Sori Payload Test Tool
======================

Generates synthetic pronunciation-assessment payloads across casing
conventions and speaker profiles, runs them through the feedback engine,
and verifies the output invariants.

Usage:
  go run cmd/test-payloads/main.go [options]

Options:
  -payloads int
        Number of payloads to generate (default 1000)
  -tone string
        Feedback tone: emotive, plain, cute, fun (default "emotive")
  -output string
        Optional file to dump the generated payloads as JSON
  -log-level string
        Log level: debug, info, warn, error (default "info")
  -verbose
        Log every verified payload
  -help
        Show this help message

Examples:
  # Run with default settings
  go run cmd/test-payloads/main.go

  # Generate more payloads in a different tone
  go run cmd/test-payloads/main.go -payloads 50000 -tone plain

  # Keep the generated payloads for replay
  go run cmd/test-payloads/main.go -output payloads.json
`)
}
