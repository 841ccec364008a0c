package probe

import "time"

// Config holds configuration for a probe run.
type Config struct {
	BaseURL      string        // Base URL of the gateway
	Workers      int           // Number of concurrent workers
	RPS          float64       // Request pacing; zero or less disables it
	Timeout      time.Duration // HTTP request timeout
	Name         string        // Value sent to /age/ and /country/
	Country      string        // Value sent to /universities/ routes
	ActivityType string        // Value sent to /bored/
	SkipQuotes   bool          // Skip /quotes/ when the gateway disables it
	Verbose      bool          // Log every check
}

// Check is one request the probe makes and what it expects back.
type Check struct {
	Name string
	Path string
	// Statuses lists acceptable status codes. The first one is the nominal one.
	Statuses []int
	// Keys must all be present in a nominal JSON object response.
	Keys []string
}

// Result is the outcome of one check.
type Result struct {
	Check     Check
	Status    int
	RequestID string
	Duration  time.Duration
	Degraded  bool
	Err       error
}

// Passed reports whether the check met its expectations.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Stats holds run statistics.
type Stats struct {
	Total     int
	Passed    int
	Failed    int
	Degraded  int // acceptable non-nominal status, e.g. 503 from a flaky upstream
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}
