package probe

import (
	"fmt"
	"os"

	"github.com/okian/pubgate/pkg/logger"
)

// SetupLogging initializes the global logger with the given format and level.
func SetupLogging(format, level string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := logger.SetFormat(format); err != nil {
		return err
	}
	return logger.SetLevelString(level)
}

// ShowHelp prints usage information for the probe.
func ShowHelp() {
	os.Stdout.WriteString(`pubgate probe
=============

Smoke-tests a running gateway: checks /healthz, calls every resource route,
verifies status codes and response keys, and checks that parameterised routes
reject missing parameters with 400.

Usage:
  go run ./cmd/probe [options]

Options:
  -url string
        Base URL of the gateway (default "http://localhost:8000")
  -workers int
        Number of concurrent workers (default 4)
  -rps float
        Requests per second across all workers, 0 for unpaced (default 5)
  -timeout duration
        HTTP request timeout (default 10s)
  -name string
        Name sent to /age/ and /country/ (default "France")
  -country string
        Country sent to /universities/ routes (default "Japan")
  -type string
        Activity type sent to /bored/ (default "education")
  -skip-quotes
        Skip /quotes/ when the gateway runs with quotes disabled
  -log-format string
        text or json (default "text")
  -verbose
        Log every check
  -help
        Show this help message

A 503 from a resource route counts as degraded, not failed: the gateway is
reporting an upstream outage correctly. Any other unexpected status, a missing
key, or an unreadable body fails the run with exit status 1.
`)
}
