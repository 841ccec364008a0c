// Package config defines gateway configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Loading layers defaults, an optional YAML file and PUBGATE_* env vars.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"context"
	"time"
)

// Default upstream endpoints.
const (
	DefaultDogURL          = "https://dog.ceo/api/breeds/image/random"
	DefaultCatURL          = "https://api.thecatapi.com/v1/images/search"
	DefaultJokeURL         = "https://official-joke-api.appspot.com/random_joke"
	DefaultAdviceURL       = "https://api.adviceslip.com/advice"
	DefaultAgeURL          = "https://api.agify.io/"
	DefaultCountryURL      = "https://restcountries.com/v3.1/name/"
	DefaultUniversitiesURL = "http://universities.hipolabs.com/search"
	DefaultBoredURL        = "https://bored-api.appbrewery.com/filter"
	DefaultQuotesURL       = "https://zenquotes.io/api/random"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// UpstreamTimeoutMS bounds every upstream call.
	UpstreamTimeoutMS int `koanf:"upstream_timeout_ms"`

	// MaxBodyBytes caps how much of an upstream body is read.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	// QuotesEnabled registers the /quotes/ route.
	QuotesEnabled bool `koanf:"quotes_enabled"`

	DogURL          string `koanf:"dog_url"`
	CatURL          string `koanf:"cat_url"`
	JokeURL         string `koanf:"joke_url"`
	AdviceURL       string `koanf:"advice_url"`
	AgeURL          string `koanf:"age_url"`
	CountryURL      string `koanf:"country_url"`
	UniversitiesURL string `koanf:"universities_url"`
	BoredURL        string `koanf:"bored_url"`
	QuotesURL       string `koanf:"quotes_url"`
}

// New creates a Config populated with defaults. Context is accepted first to
// follow the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		Addr:              ":8000",
		UpstreamTimeoutMS: 5000,
		MaxBodyBytes:      1 << 20,
		QuotesEnabled:     true,
		DogURL:            DefaultDogURL,
		CatURL:            DefaultCatURL,
		JokeURL:           DefaultJokeURL,
		AdviceURL:         DefaultAdviceURL,
		AgeURL:            DefaultAgeURL,
		CountryURL:        DefaultCountryURL,
		UniversitiesURL:   DefaultUniversitiesURL,
		BoredURL:          DefaultBoredURL,
		QuotesURL:         DefaultQuotesURL,
	}
}

// UpstreamTimeout returns UpstreamTimeoutMS as a duration.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutMS) * time.Millisecond
}

// upstreamURLs lists every configured upstream URL keyed by its config key.
func (c *Config) upstreamURLs() []namedURL {
	return []namedURL{
		{"dog_url", c.DogURL},
		{"cat_url", c.CatURL},
		{"joke_url", c.JokeURL},
		{"advice_url", c.AdviceURL},
		{"age_url", c.AgeURL},
		{"country_url", c.CountryURL},
		{"universities_url", c.UniversitiesURL},
		{"bored_url", c.BoredURL},
		{"quotes_url", c.QuotesURL},
	}
}

type namedURL struct {
	key   string
	value string
}
