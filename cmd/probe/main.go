package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/pubgate/internal/probe"
)

const defaultRunTimeout = 2 * time.Minute

func main() {
	var (
		baseURL      = flag.String("url", probe.DefaultBaseURL, "Base URL of the gateway")
		workers      = flag.Int("workers", probe.DefaultWorkers, "Number of concurrent workers")
		rps          = flag.Float64("rps", probe.DefaultRPS, "Requests per second across all workers, 0 for unpaced")
		timeout      = flag.Duration("timeout", probe.DefaultTimeout, "HTTP request timeout")
		name         = flag.String("name", probe.DefaultName, "Name sent to /age/ and /country/")
		country      = flag.String("country", probe.DefaultCountry, "Country sent to /universities/ routes")
		activityType = flag.String("type", probe.DefaultActivityType, "Activity type sent to /bored/")
		skipQuotes   = flag.Bool("skip-quotes", false, "Skip /quotes/")
		logFormat    = flag.String("log-format", "text", "Log format: text or json")
		verbose      = flag.Bool("verbose", false, "Log every check")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		probe.ShowHelp()
		return
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	if err := probe.SetupLogging(*logFormat, level); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, defaultRunTimeout)
	defer cancel()

	config := &probe.Config{
		BaseURL:      *baseURL,
		Workers:      *workers,
		RPS:          *rps,
		Timeout:      *timeout,
		Name:         *name,
		Country:      *country,
		ActivityType: *activityType,
		SkipQuotes:   *skipQuotes,
		Verbose:      *verbose,
	}

	if _, _, err := probe.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Probe failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
