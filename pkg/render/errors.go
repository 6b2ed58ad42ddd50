package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-qaforms/pkg/bootstrap"
	"github.com/goliatone/go-qaforms/pkg/model"
)

// Bootstrap markers applied to fields that carry errors.
const (
	ClassInvalid    = "is-invalid"
	AttrAriaInvalid = "aria-invalid"
)

// ErrorMapping splits an error payload into field-level and form-level
// messages keyed by field name.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload resolves error keys (plain names, dotted paths or JSON
// pointers such as "/body/email") to the form's field names. Keys such as
// "__all__" or "non_field_errors", and keys naming no field, become
// form-level errors so messages are not lost.
func MapErrorPayload(form *model.Form, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string][]string),
	}
	if len(payload) == 0 {
		return ErrorMapping{}
	}

	names := make(map[string]struct{})
	if form != nil {
		for _, field := range form.Fields {
			if name := strings.TrimSpace(field.Name); name != "" {
				names[name] = struct{}{}
			}
		}
	}

	for rawPath, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		name, ok := resolveErrorPath(rawPath, names)
		if !ok {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		mapping.Fields[name] = append(mapping.Fields[name], normalized...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// MarkInvalid appends the Bootstrap invalid class and aria-invalid to every
// field that has errors in mapping. It returns the number of fields marked.
func MarkInvalid(form *model.Form, mapping ErrorMapping) int {
	if form == nil || len(mapping.Fields) == 0 {
		return 0
	}
	marked := 0
	for idx := range form.Fields {
		field := &form.Fields[idx]
		if len(mapping.Fields[field.Name]) == 0 {
			continue
		}
		if field.Attrs == nil {
			field.Attrs = make(map[string]string)
		}
		bootstrap.AppendClass(field.Attrs, ClassInvalid)
		field.Attrs[AttrAriaInvalid] = "true"
		marked++
	}
	return marked
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func resolveErrorPath(raw string, names map[string]struct{}) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return "", false
	}
	if _, ok := names[trimmed]; ok {
		return trimmed, true
	}

	segments := stripNumericSegments(dropWrapperSegments(parsePathSegments(trimmed)))
	if len(segments) == 0 {
		return "", false
	}
	if _, ok := names[segments[0]]; ok {
		return segments[0], true
	}
	return "", false
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = clean[1:]
	}

	replacer := strings.NewReplacer("[", ".", "]", "")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func dropWrapperSegments(segments []string) []string {
	out := segments
	for len(out) > 0 {
		switch strings.ToLower(out[0]) {
		case "body", "request", "payload", "data", "attributes":
			out = out[1:]
			continue
		}
		break
	}
	return out
}

func stripNumericSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
