package probe

import (
	"net/http"
	"net/url"

	"github.com/okian/pubgate/internal/domain/validation"
)

// Checks returns the probe plan for cfg: every resource route with its
// nominal keys, then every parameterised route called without parameters.
func Checks(cfg *Config) []Check {
	served := []int{http.StatusOK, http.StatusServiceUnavailable}
	query := func(path, key, value string) string {
		return path + "?" + url.Values{key: {value}}.Encode()
	}

	checks := []Check{
		{Name: "dog", Path: "/dog/", Statuses: served, Keys: []string{"image_url"}},
		{Name: "cat", Path: "/cat/", Statuses: served, Keys: []string{"image_url", "width", "height"}},
		{Name: "joke", Path: "/joke/", Statuses: served, Keys: []string{"setup", "punchline"}},
		{Name: "advice", Path: "/advice/", Statuses: served, Keys: []string{"advice"}},
		{Name: "age", Path: query("/age/", "name", cfg.Name), Statuses: served, Keys: []string{"name", "predicted_age"}},
		{Name: "country", Path: query("/country/", "name", cfg.Name), Statuses: served,
			Keys: []string{"name", "capital", "population", "flag", "region"}},
		{Name: "universities", Path: query("/universities/", "country", cfg.Country), Statuses: served,
			Keys: []string{"country", "universities"}},
		{Name: "universities_pro", Path: query("/universities/pro/", "country", cfg.Country), Statuses: served,
			Keys: []string{"country", "universities"}},
		{Name: "bored", Path: query("/bored/", "type", cfg.ActivityType), Statuses: served,
			Keys: []string{"activity", "type", "participants"}},
	}
	if !cfg.SkipQuotes {
		checks = append(checks, Check{Name: "quotes", Path: "/quotes/", Statuses: served, Keys: []string{"quote", "author"}})
	}

	for _, r := range []struct {
		name   string
		path   string
		schema validation.Schema
	}{
		{"age", "/age/", validation.NameQuery},
		{"country", "/country/", validation.NameQuery},
		{"universities", "/universities/", validation.CountryQuery},
		{"universities_pro", "/universities/pro/", validation.CountryQuery},
		{"bored", "/bored/", validation.BoredQuery},
	} {
		keys := []string{"error"}
		for _, name := range r.schema.Names() {
			keys = append(keys, "fields."+name)
		}
		checks = append(checks, Check{
			Name:     r.name + "_missing_params",
			Path:     r.path,
			Statuses: []int{http.StatusBadRequest},
			Keys:     keys,
		})
	}
	return checks
}
