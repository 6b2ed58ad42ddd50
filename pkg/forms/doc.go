// Package forms is the form engine of the question-and-answer application.
// It instantiates form definitions, resolves field kinds, localises text and
// composes the bootstrap decorator with any caller-supplied decorators before
// applying per-field attribute defaults. Clean validates submitted values
// against the same definitions.
//
// Typical usage:
//
//	engine := forms.New(forms.WithTextareaRows(6))
//	form, err := engine.Build(ctx, forms.Request{FormID: forms.FormQuestion, Locale: "ja"})
//	cleaned, err := forms.Clean(form, r.PostForm)
package forms
