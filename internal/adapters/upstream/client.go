// Package upstream calls the third-party public APIs behind the gateway.
//
// Each operation makes exactly one GET with a bounded timeout and decodes the
// JSON body into its raw model. There is no retry and no caching.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/okian/pubgate/internal/domain/model"
	"github.com/okian/pubgate/pkg/logger"
	"github.com/okian/pubgate/pkg/metrics"
)

// Upstream names, used in errors, logs and metric labels.
const (
	NameDog          = "dog"
	NameCat          = "cat"
	NameJoke         = "joke"
	NameAdvice       = "advice"
	NameAge          = "age"
	NameCountry      = "country"
	NameUniversities = "universities"
	NameBored        = "bored"
	NameQuotes       = "quotes"
)

// Defaults.
const (
	DefaultTimeout      = 5 * time.Second
	DefaultMaxBodyBytes = 1 << 20
	userAgent           = "pubgate/1.0"
)

// Client performs upstream calls.
type Client struct {
	http         *http.Client
	endpoints    Endpoints
	timeout      time.Duration
	maxBodyBytes int64
	logger       logger.Logger
}

// New creates a Client with the public endpoints and a 5s timeout.
func New(opts ...Option) *Client {
	c := &Client{
		endpoints:    DefaultEndpoints(),
		timeout:      DefaultTimeout,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	if c.logger == nil {
		c.logger = logger.Nop()
	}
	return c
}

// Endpoints returns the configured upstream URLs.
func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// Timeout returns the per-call timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Dog fetches a random dog image.
func (c *Client) Dog(ctx context.Context) (model.DogImage, error) {
	var out model.DogImage
	err := c.get(ctx, NameDog, c.endpoints.Dog, nil, &out)
	return out, err
}

// Cat fetches a random cat image search result.
func (c *Client) Cat(ctx context.Context) ([]model.CatImage, error) {
	var out []model.CatImage
	err := c.get(ctx, NameCat, c.endpoints.Cat, nil, &out)
	return out, err
}

// Joke fetches a random joke.
func (c *Client) Joke(ctx context.Context) (model.Joke, error) {
	var out model.Joke
	err := c.get(ctx, NameJoke, c.endpoints.Joke, nil, &out)
	return out, err
}

// Advice fetches a random advice slip.
func (c *Client) Advice(ctx context.Context) (model.AdviceSlip, error) {
	var out model.AdviceSlip
	err := c.get(ctx, NameAdvice, c.endpoints.Advice, nil, &out)
	return out, err
}

// Age predicts the age for a first name.
func (c *Client) Age(ctx context.Context, name string) (model.AgePrediction, error) {
	var out model.AgePrediction
	err := c.get(ctx, NameAge, c.endpoints.Age, url.Values{"name": {name}}, &out)
	return out, err
}

// Country looks a country up by name. The name is appended to the base URL as
// an escaped path segment.
func (c *Client) Country(ctx context.Context, name string) ([]model.Country, error) {
	var out []model.Country
	target := strings.TrimSuffix(c.endpoints.Country, "/") + "/" + url.PathEscape(name)
	err := c.get(ctx, NameCountry, target, nil, &out)
	return out, err
}

// Universities lists the universities of a country.
func (c *Client) Universities(ctx context.Context, country string) ([]model.University, error) {
	var out []model.University
	err := c.get(ctx, NameUniversities, c.endpoints.Universities, url.Values{"country": {country}}, &out)
	return out, err
}

// Bored lists activities of the given type.
func (c *Client) Bored(ctx context.Context, activityType string) ([]model.Activity, error) {
	var out []model.Activity
	err := c.get(ctx, NameBored, c.endpoints.Bored, url.Values{"type": {activityType}}, &out)
	return out, err
}

// Quotes fetches a random quote.
func (c *Client) Quotes(ctx context.Context) ([]model.Quote, error) {
	var out []model.Quote
	err := c.get(ctx, NameQuotes, c.endpoints.Quotes, nil, &out)
	return out, err
}

// get issues one GET and decodes the JSON body into target.
func (c *Client) get(ctx context.Context, name, rawURL string, query url.Values, target any) (err error) {
	const op = "upstream.get"
	start := time.Now()
	defer func() {
		outcome := metrics.OutcomeSuccess
		switch {
		case errors.Is(err, ErrTimeout):
			outcome = metrics.OutcomeTimeout
		case err != nil:
			outcome = metrics.OutcomeError
		}
		took := time.Since(start)
		metrics.RecordUpstreamRequest(name, outcome, float64(took.Milliseconds()))
		c.logger.Debug(ctx, "upstream call finished",
			logger.String("upstream", name),
			logger.String("outcome", outcome),
			logger.Duration("took", took),
		)
	}()

	reqURL, err := c.buildURL(rawURL, query)
	if err != nil {
		return newError(name, op, ErrUpstream, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return newError(name, op, ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return newError(name, op, classify(ctx, err), err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return newError(name, op, classify(ctx, err), err)
	}
	if int64(len(body)) > c.maxBodyBytes {
		return newError(name, op, ErrUpstream, fmt.Errorf("body exceeds %d bytes", c.maxBodyBytes))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(name, op, ErrUpstream, &StatusError{Code: resp.StatusCode})
	}
	if err := json.Unmarshal(body, target); err != nil {
		return newError(name, op, ErrUpstream, fmt.Errorf("decode body: %w", err))
	}
	return nil
}

func (c *Client) buildURL(rawURL string, query url.Values) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// classify maps a transport error to ErrTimeout or ErrUpstream.
func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	return ErrUpstream
}

// StatusError records a non-2xx upstream status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return "unexpected status " + strconv.Itoa(e.Code)
}
