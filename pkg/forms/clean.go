package forms

import (
	"fmt"
	"net/mail"
	"net/url"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-qaforms/pkg/model"
)

// MetadataMatches names another field whose submitted value must be equal,
// e.g. a password confirmation.
const MetadataMatches = "matches"

// Validation messages.
const (
	MsgRequired      = "This field is required."
	MsgMaxLength     = "Ensure this value has at most %d characters (it has %d)."
	MsgInvalidEmail  = "Enter a valid email address."
	MsgInvalidChoice = "Select a valid choice. %s is not one of the available choices."
	MsgMismatch      = "The two %s fields didn't match."
)

// ValidationError collects messages keyed by field name.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "forms: validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("forms: validation failed for %s", strings.Join(names, ", "))
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Clean validates submitted values against the form definition and returns
// the values of known fields, trimmed unless the field keeps whitespace. Unknown keys are dropped. The error, if
// any, is a *ValidationError.
func Clean(form *model.Form, values url.Values) (url.Values, error) {
	cleaned := url.Values{}
	if form == nil {
		return cleaned, nil
	}
	verr := &ValidationError{}

	for _, field := range form.Fields {
		submitted := normaliseValues(field, values[field.Name])
		if len(submitted) == 0 {
			if field.Required {
				verr.add(field.Name, MsgRequired)
			}
			continue
		}

		switch field.Kind {
		case model.KindCheckbox:
			if !truthy(submitted[0]) {
				if field.Required {
					verr.add(field.Name, MsgRequired)
				}
				continue
			}
			submitted = []string{"true"}
		case model.KindSelect, model.KindRadioGroup, model.KindMultiSelect:
			if field.Kind != model.KindMultiSelect {
				submitted = submitted[:1]
			}
			if bad, ok := invalidChoice(field, submitted); ok {
				verr.add(field.Name, fmt.Sprintf(MsgInvalidChoice, bad))
				continue
			}
		default:
			submitted = submitted[:1]
		}

		value := submitted[0]
		if field.MaxLength > 0 {
			if count := utf8.RuneCountInString(value); count > field.MaxLength {
				verr.add(field.Name, fmt.Sprintf(MsgMaxLength, field.MaxLength, count))
				continue
			}
		}
		if strings.EqualFold(field.Format, "email") {
			if !validEmail(value) {
				verr.add(field.Name, MsgInvalidEmail)
				continue
			}
		}
		cleaned[field.Name] = submitted
	}

	for _, field := range form.Fields {
		other := strings.TrimSpace(field.Metadata[MetadataMatches])
		if other == "" {
			continue
		}
		if _, ok := cleaned[field.Name]; !ok {
			continue
		}
		if _, ok := cleaned[other]; !ok {
			continue
		}
		if cleaned.Get(other) != cleaned.Get(field.Name) {
			verr.add(field.Name, fmt.Sprintf(MsgMismatch, matchNoun(field)))
		}
	}

	if len(verr.Fields) > 0 {
		return cleaned, verr
	}
	return cleaned, nil
}

func normaliseValues(field model.Field, values []string) []string {
	keep := field.KeepsWhitespace()
	out := make([]string, 0, len(values))
	for _, value := range values {
		if !keep {
			value = strings.TrimSpace(value)
		}
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}

func truthy(value string) bool {
	switch strings.ToLower(value) {
	case "", "0", "false", "off", "no":
		return false
	default:
		return true
	}
}

func invalidChoice(field model.Field, values []string) (string, bool) {
	if len(field.Options) == 0 {
		return "", false
	}
	allowed := make(map[string]struct{}, len(field.Options))
	for _, option := range field.Options {
		allowed[option.Value] = struct{}{}
	}
	for _, value := range values {
		if _, ok := allowed[value]; !ok {
			return value, true
		}
	}
	return "", false
}

// validEmail accepts a bare addr-spec only; display names and angle
// brackets are rejected.
func validEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == value
}

func matchNoun(field model.Field) string {
	if strings.EqualFold(field.Format, "password") {
		return "password"
	}
	return field.Name
}
