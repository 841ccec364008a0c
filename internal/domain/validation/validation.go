// Package validation checks query parameters against per-endpoint schemas
// before any upstream call is made.
package validation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Validation messages.
const (
	msgRequired  = "this field is required"
	msgMinLength = "ensure this field has at least %d characters"
)

// Field declares one query parameter.
type Field struct {
	Name      string
	Required  bool
	MinLength int
}

// Schema is the ordered list of fields an endpoint accepts.
type Schema []Field

// Predeclared schemas.
var (
	None         = Schema{}
	NameQuery    = Schema{{Name: "name", Required: true}}
	CountryQuery = Schema{{Name: "country", Required: true, MinLength: 1}}
	BoredQuery   = Schema{{Name: "type", Required: true, MinLength: 1}}
)

// Params holds the validated subset of the query.
type Params map[string]string

// Get returns the validated value for name, or "" if it was not supplied.
func (p Params) Get(name string) string {
	return p[name]
}

// Validate checks values against the schema. Unknown parameters are ignored.
// All failing fields are reported together.
func (s Schema) Validate(values url.Values) (Params, error) {
	params := make(Params, len(s))
	var fields map[string]string

	fail := func(name, msg string) {
		if fields == nil {
			fields = make(map[string]string)
		}
		fields[name] = msg
	}

	for _, f := range s {
		raw, present := values[f.Name]
		value := ""
		if present && len(raw) > 0 {
			value = strings.TrimSpace(raw[0])
		}

		if value == "" {
			if f.Required {
				fail(f.Name, msgRequired)
			}
			continue
		}
		if f.MinLength > 0 && utf8.RuneCountInString(value) < f.MinLength {
			fail(f.Name, fmt.Sprintf(msgMinLength, f.MinLength))
			continue
		}
		params[f.Name] = value
	}

	if fields != nil {
		return nil, &Error{Fields: fields}
	}
	return params, nil
}

// Names returns the declared field names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}
