package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/okian/pubgate/pkg/logger"
	"golang.org/x/time/rate"
)

// Run checks the gateway's health, then runs every check concurrently and
// returns the statistics and per-check results in plan order.
func Run(ctx context.Context, config *Config) (*Stats, []Result, error) {
	stats := &Stats{
		StartTime: time.Now(),
	}
	log := logger.Named("probe")

	log.Info(ctx, "starting gateway probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("workers", config.Workers),
		logger.Float64("rps", config.RPS),
		logger.Duration("timeout", config.Timeout),
		logger.Bool("skipQuotes", config.SkipQuotes))

	client := newHTTPClient(config.Timeout)
	baseURL := strings.TrimSuffix(config.BaseURL, "/")

	if err := checkServiceHealth(ctx, client, baseURL); err != nil {
		return nil, nil, err
	}
	log.Info(ctx, "gateway is healthy")

	results := runChecks(ctx, config, client, baseURL, Checks(config))

	for _, r := range results {
		stats.Total++
		switch {
		case !r.Passed():
			stats.Failed++
			log.Warn(ctx, "check failed",
				logger.String("check", r.Check.Name),
				logger.Int("status", r.Status),
				logger.String("requestId", r.RequestID),
				logger.Error(r.Err))
			continue
		case r.Degraded:
			stats.Degraded++
		}
		stats.Passed++
		if config.Verbose {
			log.Info(ctx, "check passed",
				logger.String("check", r.Check.Name),
				logger.Int("status", r.Status),
				logger.Bool("degraded", r.Degraded),
				logger.Duration("took", r.Duration))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, log, stats)

	if stats.Failed > 0 {
		return stats, results, fmt.Errorf("%w: %d of %d", ErrChecksFailed, stats.Failed, stats.Total)
	}
	return stats, results, nil
}

// checkServiceHealth verifies the gateway answers /healthz with status ok.
func checkServiceHealth(ctx context.Context, client *HTTPClient, baseURL string) error {
	status, body, _, err := client.Get(ctx, baseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	var doc struct {
		Status string `json:"status"`
	}
	if status != 200 || json.Unmarshal(body, &doc) != nil || doc.Status != "ok" {
		return fmt.Errorf("%w: /healthz answered %d", ErrUnhealthy, status)
	}
	return nil
}

// runChecks fans the checks out to a worker pool paced by a rate limiter.
func runChecks(ctx context.Context, config *Config, client *HTTPClient, baseURL string, checks []Check) []Result {
	results := make([]Result, len(checks))

	limit := rate.Inf
	if config.RPS > 0 {
		limit = rate.Limit(config.RPS)
	}
	limiter := rate.NewLimiter(limit, 1)

	workers := config.Workers
	if workers < 1 {
		workers = 1
	}

	indexChan := make(chan int, workers*workerChanFactor)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range indexChan {
				check := checks[index]
				if err := limiter.Wait(ctx); err != nil {
					results[index] = Result{Check: check, Err: err}
					continue
				}
				results[index] = runCheck(ctx, client, baseURL, check)
			}
		}()
	}

	for i := range checks {
		indexChan <- i
	}
	close(indexChan)
	wg.Wait()

	return results
}

func runCheck(ctx context.Context, client *HTTPClient, baseURL string, check Check) Result {
	start := time.Now()
	status, body, requestID, err := client.Get(ctx, baseURL+check.Path)
	r := Result{
		Check:     check,
		Status:    status,
		RequestID: requestID,
		Duration:  time.Since(start),
	}
	if err != nil {
		r.Err = err
		return r
	}
	r.Degraded, r.Err = verify(check, status, body)
	return r
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	log.Info(ctx, "final statistics",
		logger.Int("checks", stats.Total),
		logger.Int("passed", stats.Passed),
		logger.Int("degraded", stats.Degraded),
		logger.Int("failed", stats.Failed),
		logger.Duration("duration", stats.Duration))
}
