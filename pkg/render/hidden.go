package render

import (
	"fmt"
	"sort"
	"strings"
)

// HiddenField represents a hidden input submitted alongside the visible
// fields, such as a CSRF token.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs a hidden field carrying the provided token. Callers
// supply the input name their backend expects (for example
// "csrfmiddlewaretoken" or "_csrf").
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// Attributes serialises the hidden input attributes.
func (h HiddenField) Attributes() string {
	return Attributes(map[string]string{
		"type":  "hidden",
		"name":  h.Name,
		"value": h.Value,
	})
}

// SortedHiddenFields normalises and sorts hidden fields for deterministic
// output. Empty names are dropped; later fields win on name collisions.
func SortedHiddenFields(fields ...HiddenField) []HiddenField {
	if len(fields) == 0 {
		return nil
	}

	clean := make(map[string]string, len(fields))
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		clean[name] = field.Value
	}
	if len(clean) == 0 {
		return nil
	}

	names := make([]string, 0, len(clean))
	for name := range clean {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]HiddenField, 0, len(names))
	for _, name := range names {
		result = append(result, HiddenField{Name: name, Value: clean[name]})
	}
	return result
}
