// Package qaforms builds Bootstrap-styled form models for the Q&A app. It
// re-exports the engine from pkg/forms for callers that only need the common
// entry points.
package qaforms

import (
	"context"
	"net/url"

	"github.com/goliatone/go-qaforms/pkg/forms"
	"github.com/goliatone/go-qaforms/pkg/model"
	theme "github.com/goliatone/go-theme"
)

// Form is a decorated form instance.
type Form = model.Form

// Field is a single form field with its presentation attributes.
type Field = model.Field

// Request selects a form and its locale/theme.
type Request = forms.Request

// ValidationError aliases forms.ValidationError returned by Clean.
type ValidationError = forms.ValidationError

// NewEngine exposes the engine constructor from the top-level module.
func NewEngine(options ...forms.Option) *forms.Engine {
	return forms.New(options...)
}

// Build constructs an engine with options and builds the requested form.
func Build(ctx context.Context, formID, locale string, options ...forms.Option) (*Form, error) {
	return forms.New(options...).Build(ctx, forms.Request{FormID: formID, Locale: locale})
}

// Clean validates submitted values against form.
func Clean(form *Form, values url.Values) (url.Values, error) {
	return forms.Clean(form, values)
}

// WithThemeSelector passes a go-theme selector through to the engine so
// theme tokens can override the default bootstrap classes.
func WithThemeSelector(selector theme.ThemeSelector) forms.Option {
	return forms.WithThemeSelector(selector)
}
