package upstream

import (
	"net/http"
	"time"

	"github.com/okian/pubgate/pkg/logger"
)

// Endpoints holds one base URL per upstream API.
type Endpoints struct {
	Dog          string
	Cat          string
	Joke         string
	Advice       string
	Age          string
	Country      string
	Universities string
	Bored        string
	Quotes       string
}

// DefaultEndpoints returns the public upstream URLs.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Dog:          "https://dog.ceo/api/breeds/image/random",
		Cat:          "https://api.thecatapi.com/v1/images/search",
		Joke:         "https://official-joke-api.appspot.com/random_joke",
		Advice:       "https://api.adviceslip.com/advice",
		Age:          "https://api.agify.io/",
		Country:      "https://restcountries.com/v3.1/name/",
		Universities: "http://universities.hipolabs.com/search",
		Bored:        "https://bored-api.appbrewery.com/filter",
		Quotes:       "https://zenquotes.io/api/random",
	}
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoints replaces the upstream URLs. Empty entries keep their default.
func WithEndpoints(e Endpoints) Option {
	return func(c *Client) {
		set := func(dst *string, v string) {
			if v != "" {
				*dst = v
			}
		}
		set(&c.endpoints.Dog, e.Dog)
		set(&c.endpoints.Cat, e.Cat)
		set(&c.endpoints.Joke, e.Joke)
		set(&c.endpoints.Advice, e.Advice)
		set(&c.endpoints.Age, e.Age)
		set(&c.endpoints.Country, e.Country)
		set(&c.endpoints.Universities, e.Universities)
		set(&c.endpoints.Bored, e.Bored)
		set(&c.endpoints.Quotes, e.Quotes)
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient sets the HTTP client. The per-call timeout still applies
// through the request context.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithMaxBodyBytes caps how much of a response body is read.
func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}
