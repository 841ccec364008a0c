package probe

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// verify checks status and body against c. A status other than the nominal
// one but still listed is reported as degraded and its body is not inspected.
func verify(c Check, status int, body []byte) (degraded bool, err error) {
	if !slices.Contains(c.Statuses, status) {
		return false, fmt.Errorf("%w: %s answered %d, want one of %v", ErrUnexpectedStatus, c.Path, status, c.Statuses)
	}
	if status != c.Statuses[0] {
		return true, nil
	}
	if len(c.Keys) == 0 {
		return false, nil
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrBadBody, c.Path, err)
	}
	for _, key := range c.Keys {
		if !hasKey(doc, key) {
			return false, fmt.Errorf("%w: %s lacks %q", ErrMissingKey, c.Path, key)
		}
	}
	return false, nil
}

// hasKey resolves a dotted key through nested objects.
func hasKey(doc map[string]any, key string) bool {
	head, rest, nested := strings.Cut(key, ".")
	v, ok := doc[head]
	if !ok {
		return false
	}
	if !nested {
		return true
	}
	child, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasKey(child, rest)
}
