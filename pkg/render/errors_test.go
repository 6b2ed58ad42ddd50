package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-qaforms/pkg/model"
	"github.com/goliatone/go-qaforms/pkg/render"
)

func signupForm() *model.Form {
	return &model.Form{
		ID: "signup",
		Fields: []model.Field{
			{Name: "username", Attrs: map[string]string{"class": "form-control"}},
			{Name: "email"},
			{Name: "password1", Attrs: map[string]string{"class": "form-control"}},
			{Name: "password2", Attrs: map[string]string{"class": "form-control"}},
		},
	}
}

func TestMapErrorPayload(t *testing.T) {
	payload := map[string][]string{
		"username":                   {"A user with that username already exists."},
		"/body/email":                {"Enter a valid email address.", " Enter a valid email address. "},
		"$.data.password2[0]":        {"The two password fields didn't match."},
		"__all__":                    {"Please correct the errors below."},
		"non_field_errors":           {"Form level error"},
		"request/body/unknown-field": {"Should fall back to form errors"},
		"password1":                  {"   "},
	}

	mapped := render.MapErrorPayload(signupForm(), payload)

	wantFields := map[string][]string{
		"username":  {"A user with that username already exists."},
		"email":     {"Enter a valid email address."},
		"password2": {"The two password fields didn't match."},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{"Form level error", "Please correct the errors below.", "Should fall back to form errors"}
	if diff := cmp.Diff(wantForm, mapped.Form, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}

	if empty := render.MapErrorPayload(signupForm(), nil); empty.Fields != nil || empty.Form != nil {
		t.Fatalf("expected empty mapping, got %#v", empty)
	}
}

func TestMarkInvalid(t *testing.T) {
	form := signupForm()
	mapping := render.ErrorMapping{Fields: map[string][]string{
		"email":     {"Enter a valid email address."},
		"password2": {"The two password fields didn't match."},
	}}

	if got := render.MarkInvalid(form, mapping); got != 2 {
		t.Fatalf("marked %d fields, want 2", got)
	}

	want := map[string]map[string]string{
		"username":  {"class": "form-control"},
		"email":     {"class": "is-invalid", "aria-invalid": "true"},
		"password1": {"class": "form-control"},
		"password2": {"class": "form-control is-invalid", "aria-invalid": "true"},
	}
	got := make(map[string]map[string]string, len(form.Fields))
	for _, field := range form.Fields {
		got[field.Name] = field.Attrs
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}
