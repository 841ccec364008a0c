// Package service provides the gateway service that implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/pubgate/internal/adapters/upstream"
	"github.com/okian/pubgate/internal/domain/model"
	"github.com/okian/pubgate/internal/domain/normalize"
	"github.com/okian/pubgate/internal/domain/types"
	"github.com/okian/pubgate/pkg/logger"
	"github.com/okian/pubgate/pkg/metrics"
)

// ErrUnavailable is returned for every upstream or normalization failure.
var ErrUnavailable = errors.New("upstream unavailable")

// Upstream is the set of raw upstream calls the service composes.
type Upstream interface {
	Dog(ctx context.Context) (model.DogImage, error)
	Cat(ctx context.Context) ([]model.CatImage, error)
	Joke(ctx context.Context) (model.Joke, error)
	Advice(ctx context.Context) (model.AdviceSlip, error)
	Age(ctx context.Context, name string) (model.AgePrediction, error)
	Country(ctx context.Context, name string) ([]model.Country, error)
	Universities(ctx context.Context, country string) ([]model.University, error)
	Bored(ctx context.Context, activityType string) ([]model.Activity, error)
	Quotes(ctx context.Context) ([]model.Quote, error)
}

// Service implements the API dependencies for the gateway.
type Service struct {
	mu sync.RWMutex

	client        Upstream
	quotesEnabled bool
	timeout       time.Duration

	started   bool
	startedAt time.Time

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithClient sets the upstream client.
func WithClient(c Upstream) Option {
	return func(s *Service) {
		if c != nil {
			s.client = c
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithQuotesEnabled toggles the quotes operation.
func WithQuotesEnabled(enabled bool) Option {
	return func(s *Service) {
		s.quotesEnabled = enabled
	}
}

// WithUpstreamTimeout records the configured upstream timeout for stats.
func WithUpstreamTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		quotesEnabled: true,
		timeout:       upstream.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = upstream.New(upstream.WithTimeout(s.timeout))
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	return s
}

// Start marks the service as serving.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "gateway service started",
		logger.Bool("quotesEnabled", s.quotesEnabled),
		logger.Duration("upstreamTimeout", s.timeout),
	)
	return nil
}

// Stop marks the service as stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "gateway service stopped")
}

// QuotesEnabled reports whether the quotes operation is served.
func (s *Service) QuotesEnabled() bool {
	return s.quotesEnabled
}

// Dog returns a random dog image.
func (s *Service) Dog(ctx context.Context) (types.DogImage, error) {
	raw, err := s.client.Dog(ctx)
	if err != nil {
		return types.DogImage{}, s.fail(ctx, upstream.NameDog, err)
	}
	out, err := normalize.Dog(raw)
	if err != nil {
		return types.DogImage{}, s.fail(ctx, upstream.NameDog, err)
	}
	return out, nil
}

// Cat returns a random cat image.
func (s *Service) Cat(ctx context.Context) (types.CatImage, error) {
	raw, err := s.client.Cat(ctx)
	if err != nil {
		return types.CatImage{}, s.fail(ctx, upstream.NameCat, err)
	}
	out, err := normalize.Cat(raw)
	if err != nil {
		return types.CatImage{}, s.fail(ctx, upstream.NameCat, err)
	}
	return out, nil
}

// Joke returns a random joke.
func (s *Service) Joke(ctx context.Context) (types.Joke, error) {
	raw, err := s.client.Joke(ctx)
	if err != nil {
		return types.Joke{}, s.fail(ctx, upstream.NameJoke, err)
	}
	out, err := normalize.Joke(raw)
	if err != nil {
		return types.Joke{}, s.fail(ctx, upstream.NameJoke, err)
	}
	return out, nil
}

// Advice returns a random piece of advice.
func (s *Service) Advice(ctx context.Context) (types.Advice, error) {
	raw, err := s.client.Advice(ctx)
	if err != nil {
		return types.Advice{}, s.fail(ctx, upstream.NameAdvice, err)
	}
	out, err := normalize.Advice(raw)
	if err != nil {
		return types.Advice{}, s.fail(ctx, upstream.NameAdvice, err)
	}
	return out, nil
}

// Age predicts the age for name.
func (s *Service) Age(ctx context.Context, name string) (types.AgePrediction, error) {
	raw, err := s.client.Age(ctx, name)
	if err != nil {
		return types.AgePrediction{}, s.fail(ctx, upstream.NameAge, err)
	}
	out, err := normalize.Age(raw)
	if err != nil {
		return types.AgePrediction{}, s.fail(ctx, upstream.NameAge, err)
	}
	return out, nil
}

// Country returns facts about the first country matching name.
func (s *Service) Country(ctx context.Context, name string) (types.CountryDetail, error) {
	raw, err := s.client.Country(ctx, name)
	if err != nil {
		return types.CountryDetail{}, s.fail(ctx, upstream.NameCountry, err)
	}
	out, err := normalize.Country(raw)
	if err != nil {
		return types.CountryDetail{}, s.fail(ctx, upstream.NameCountry, err)
	}
	return out, nil
}

// Universities lists universities under the requested country name.
func (s *Service) Universities(ctx context.Context, country string) (types.CountryUniversities, error) {
	raw, err := s.client.Universities(ctx, country)
	if err != nil {
		return types.CountryUniversities{}, s.fail(ctx, upstream.NameUniversities, err)
	}
	out, err := normalize.Universities(country, raw)
	if err != nil {
		return types.CountryUniversities{}, s.fail(ctx, upstream.NameUniversities, err)
	}
	return out, nil
}

// UniversitiesGrouped lists universities under the country name reported by
// the upstream's first record.
func (s *Service) UniversitiesGrouped(ctx context.Context, country string) (types.CountryUniversities, error) {
	raw, err := s.client.Universities(ctx, country)
	if err != nil {
		return types.CountryUniversities{}, s.fail(ctx, upstream.NameUniversities, err)
	}
	out, err := normalize.UniversitiesGrouped(raw)
	if err != nil {
		return types.CountryUniversities{}, s.fail(ctx, upstream.NameUniversities, err)
	}
	return out, nil
}

// Bored suggests an activity of the given type.
func (s *Service) Bored(ctx context.Context, activityType string) (types.Activity, error) {
	raw, err := s.client.Bored(ctx, activityType)
	if err != nil {
		return types.Activity{}, s.fail(ctx, upstream.NameBored, err)
	}
	out, err := normalize.Bored(raw)
	if err != nil {
		return types.Activity{}, s.fail(ctx, upstream.NameBored, err)
	}
	return out, nil
}

// Quote returns a random quote.
func (s *Service) Quote(ctx context.Context) (types.Quote, error) {
	raw, err := s.client.Quotes(ctx)
	if err != nil {
		return types.Quote{}, s.fail(ctx, upstream.NameQuotes, err)
	}
	out, err := normalize.Quote(raw)
	if err != nil {
		return types.Quote{}, s.fail(ctx, upstream.NameQuotes, err)
	}
	return out, nil
}

// fail logs the cause and returns it wrapped with ErrUnavailable.
func (s *Service) fail(ctx context.Context, name string, err error) error {
	if errors.Is(err, normalize.ErrNormalize) {
		metrics.RecordNormalizeFailure(name)
	}
	s.logger.Warn(ctx, "upstream request failed",
		logger.String("upstream", name),
		logger.Error(err),
	)
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, name, err)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":           s.started,
		"quotesEnabled":     s.quotesEnabled,
		"upstreamTimeoutMs": s.timeout.Milliseconds(),
	}
	if s.started {
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
	}
	if c, ok := s.client.(interface{ Endpoints() upstream.Endpoints }); ok {
		e := c.Endpoints()
		stats["upstreams"] = map[string]string{
			upstream.NameDog:          e.Dog,
			upstream.NameCat:          e.Cat,
			upstream.NameJoke:         e.Joke,
			upstream.NameAdvice:       e.Advice,
			upstream.NameAge:          e.Age,
			upstream.NameCountry:      e.Country,
			upstream.NameUniversities: e.Universities,
			upstream.NameBored:        e.Bored,
			upstream.NameQuotes:       e.Quotes,
		}
	}
	return stats
}
