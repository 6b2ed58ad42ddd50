package bootstrap

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-qaforms/pkg/model"
	theme "github.com/goliatone/go-theme"
)

func TestDecorate_ClassByKind(t *testing.T) {
	cases := []struct {
		kind   model.Kind
		expect string
	}{
		{kind: model.KindSelect, expect: "form-select"},
		{kind: model.KindMultiSelect, expect: "form-select"},
		{kind: model.KindCheckbox, expect: "form-check-input"},
		{kind: model.KindTristateSelect, expect: "form-check-input"},
		{kind: model.KindRadioGroup, expect: "form-check-input"},
		{kind: model.KindFile, expect: "form-control"},
		{kind: model.KindText, expect: "form-control"},
		{kind: model.KindTextarea, expect: "form-control"},
		{kind: model.Kind("color-picker"), expect: "form-control"},
		{kind: model.Kind(""), expect: "form-control"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.kind), func(t *testing.T) {
			t.Parallel()
			fields := []model.Field{{Name: "f", Kind: tc.kind}}
			Decorate(fields, DefaultTextareaRows)

			class := fields[0].Attrs[model.AttrClass]
			if class != tc.expect {
				t.Fatalf("class for %q: want %q, got %q", tc.kind, tc.expect, class)
			}
			if got := ClassFor(tc.kind); got != tc.expect {
				t.Fatalf("ClassFor(%q): want %q, got %q", tc.kind, tc.expect, got)
			}
		})
	}
}

func TestDecorate_SelectNeverGetsFormControl(t *testing.T) {
	fields := []model.Field{
		{Name: "role", Kind: model.KindSelect},
		{Name: "tags", Kind: model.KindMultiSelect},
	}
	Decorate(fields, DefaultTextareaRows)

	for _, field := range fields {
		tokens := strings.Fields(field.Attrs[model.AttrClass])
		for _, token := range tokens {
			if token == "form-control" {
				t.Fatalf("field %q should not carry form-control: %q", field.Name, field.Attrs[model.AttrClass])
			}
		}
	}
}

func TestDecorate_TextareaRows(t *testing.T) {
	fields := []model.Field{
		{Name: "body", Kind: model.KindTextarea},
		{Name: "content", Kind: model.KindTextarea, Attrs: map[string]string{"rows": "8"}},
		{Name: "title", Kind: model.KindText},
	}
	Decorate(fields, 4)

	if got := fields[0].Attrs[model.AttrRows]; got != "4" {
		t.Fatalf("default rows: want %q, got %q", "4", got)
	}
	if got := fields[1].Attrs[model.AttrRows]; got != "8" {
		t.Fatalf("explicit rows must survive: want %q, got %q", "8", got)
	}
	if _, ok := fields[2].Attrs[model.AttrRows]; ok {
		t.Fatalf("text input should not receive rows")
	}
}

func TestDecorate_PlaceholderAndAriaLabel(t *testing.T) {
	fields := []model.Field{
		{Name: "title", Kind: model.KindText, Label: "Title"},
		{Name: "email", Kind: model.KindText, Label: "Email", Attrs: map[string]string{"placeholder": "you@example.com"}},
		{Name: "agree", Kind: model.KindCheckbox, Label: "Agree"},
		{Name: "notes", Kind: model.KindText, Attrs: map[string]string{"aria-label": "Notes area"}, Label: "Notes"},
	}
	Decorate(fields, DefaultTextareaRows)

	want := []map[string]string{
		{"class": "form-control", "placeholder": "Title", "aria-label": "Title"},
		{"class": "form-control", "placeholder": "you@example.com", "aria-label": "Email"},
		{"class": "form-check-input", "placeholder": "Agree", "aria-label": "Agree"},
		{"class": "form-control", "placeholder": "Notes", "aria-label": "Notes area"},
	}
	for idx, field := range fields {
		if diff := cmp.Diff(want[idx], field.Attrs); diff != "" {
			t.Fatalf("field %q attrs mismatch (-want +got):\n%s", field.Name, diff)
		}
	}
}

func TestDecorate_Scenarios(t *testing.T) {
	cases := []struct {
		name  string
		field model.Field
		want  map[string]string
	}{
		{
			name: "textarea with explicit rows",
			field: model.Field{
				Name:  "content",
				Kind:  model.KindTextarea,
				Label: "Content",
				Attrs: map[string]string{"rows": "8"},
			},
			want: map[string]string{
				"rows":        "8",
				"class":       "form-control",
				"placeholder": "Content",
				"aria-label":  "Content",
			},
		},
		{
			name:  "unlabelled checkbox",
			field: model.Field{Name: "subscribe", Kind: model.KindCheckbox, Attrs: map[string]string{}},
			want:  map[string]string{"class": "form-check-input"},
		},
		{
			name: "select keeps custom class",
			field: model.Field{
				Name:  "role",
				Kind:  model.KindSelect,
				Label: "Role",
				Attrs: map[string]string{"class": "custom"},
			},
			want: map[string]string{
				"class":       "custom form-select",
				"placeholder": "Role",
				"aria-label":  "Role",
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fields := []model.Field{tc.field.Clone()}
			Decorate(fields, 6)
			if diff := cmp.Diff(tc.want, fields[0].Attrs); diff != "" {
				t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Class tokens are appended without de-duplication; a second pass repeats
// them.
func TestDecorate_NotIdempotent(t *testing.T) {
	fields := []model.Field{
		{Name: "title", Kind: model.KindText},
		{Name: "role", Kind: model.KindSelect, Attrs: map[string]string{"class": "custom"}},
	}
	Decorate(fields, DefaultTextareaRows)
	Decorate(fields, DefaultTextareaRows)

	if got := fields[0].Attrs[model.AttrClass]; got != "form-control form-control" {
		t.Fatalf("want duplicated token, got %q", got)
	}
	if got := fields[1].Attrs[model.AttrClass]; got != "custom form-select form-select" {
		t.Fatalf("want duplicated token after custom class, got %q", got)
	}
}

func TestAppendClass(t *testing.T) {
	attrs := map[string]string{}
	AppendClass(attrs, "a")
	AppendClass(attrs, "b")
	if got := attrs["class"]; got != "a b" {
		t.Fatalf("want %q, got %q", "a b", got)
	}

	padded := map[string]string{"class": "  x  "}
	AppendClass(padded, "y")
	if got := padded["class"]; got != "x   y" {
		t.Fatalf("want inner spacing preserved, got %q", got)
	}

	AppendClass(nil, "ignored")
}

func TestDecorateWith_ThemedTable(t *testing.T) {
	manifest := &theme.Manifest{
		Name: "compact",
		Tokens: map[string]string{
			TokenSelectClass:  "form-select form-select-sm",
			TokenControlClass: "  ",
		},
	}
	table := ClassTableFromManifest(manifest)

	fields := []model.Field{
		{Name: "role", Kind: model.KindSelect},
		{Name: "title", Kind: model.KindText},
		{Name: "agree", Kind: model.KindCheckbox},
	}
	DecorateWith(fields, DefaultTextareaRows, table)

	got := []string{
		fields[0].Attrs["class"],
		fields[1].Attrs["class"],
		fields[2].Attrs["class"],
	}
	want := []string{"form-select form-select-sm", "form-control", "form-check-input"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("themed classes mismatch (-want +got):\n%s", diff)
	}
}

func TestClassTableFromManifest_Nil(t *testing.T) {
	if diff := cmp.Diff(DefaultClassTable(), ClassTableFromManifest(nil)); diff != "" {
		t.Fatalf("nil manifest should yield defaults (-want +got):\n%s", diff)
	}
}

func TestClassTableFromTokens_VariantOverride(t *testing.T) {
	manifest := theme.Manifest{
		Name:   "acme",
		Tokens: map[string]string{TokenCheckClass: "form-check-input acme"},
		Variants: map[string]theme.Variant{
			"compact": {Tokens: map[string]string{TokenControlClass: "form-control form-control-sm"}},
		},
	}

	want := ClassTable{
		Select:  "form-select",
		Check:   "form-check-input acme",
		Control: "form-control form-control-sm",
	}
	if diff := cmp.Diff(want, ClassTableFromTokens(manifest.TokensForVariant("compact"))); diff != "" {
		t.Fatalf("variant table mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultClassTable(), ClassTableFromTokens(nil)); diff != "" {
		t.Fatalf("nil tokens should yield defaults (-want +got):\n%s", diff)
	}
}
