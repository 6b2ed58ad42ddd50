package model

import "strings"

// Kind is the closed set of input categories a field can render as. Values
// outside the enumeration are tolerated and treated as KindText by consumers.
type Kind string

const (
	KindText           Kind = "text"
	KindTextarea       Kind = "textarea"
	KindSelect         Kind = "select"
	KindMultiSelect    Kind = "multi_select"
	KindCheckbox       Kind = "checkbox"
	KindTristateSelect Kind = "tristate_select"
	KindRadioGroup     Kind = "radio_group"
	KindFile           Kind = "file"
)

// Kinds lists every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindText,
		KindTextarea,
		KindSelect,
		KindMultiSelect,
		KindCheckbox,
		KindTristateSelect,
		KindRadioGroup,
		KindFile,
	}
}

// Known reports whether k is part of the enumeration.
func (k Kind) Known() bool {
	switch k {
	case KindText, KindTextarea, KindSelect, KindMultiSelect,
		KindCheckbox, KindTristateSelect, KindRadioGroup, KindFile:
		return true
	default:
		return false
	}
}

// ParseKind normalises a raw kind name. Dashes and spaces are accepted in place
// of underscores ("multi-select", "radio group"). Unknown names are returned
// as-is with ok=false so callers can decide whether to fall back.
func ParseKind(raw string) (Kind, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)
	kind := Kind(name)
	return kind, kind.Known()
}

// FieldType is the data type backing a field. The widget registry uses it to
// pick a Kind when the definition does not name one.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeArray   FieldType = "array"
)

// Presentation attribute names written by decorators.
const (
	AttrClass        = "class"
	AttrPlaceholder  = "placeholder"
	AttrAriaLabel    = "aria-label"
	AttrRows         = "rows"
	AttrAutocomplete = "autocomplete"
)

// MetadataTitleKey is the form metadata entry holding the title translation
// key.
const MetadataTitleKey = "titleKey"

// MetadataStrip set to "false" keeps leading and trailing whitespace in
// submitted values.
const MetadataStrip = "strip"

// Choice is a single option of a select or radio field.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Field models one input of a form. Attrs holds presentation attributes only;
// submitted data lives outside the model.
type Field struct {
	Name           string            `json:"name"`
	Kind           Kind              `json:"kind"`
	Type           FieldType         `json:"type,omitempty"`
	Format         string            `json:"format,omitempty"`
	Label          string            `json:"label,omitempty"`
	LabelKey       string            `json:"labelKey,omitempty"`
	PlaceholderKey string            `json:"placeholderKey,omitempty"`
	HelpText       string            `json:"helpText,omitempty"`
	Required       bool              `json:"required"`
	MaxLength      int               `json:"maxLength,omitempty"`
	Options        []Choice          `json:"options,omitempty"`
	Attrs          map[string]string `json:"attrs,omitempty"`
	// Defaults are applied after decoration, only for attributes that are
	// still absent.
	Defaults map[string]string `json:"defaults,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Attr returns the attribute value and whether it is set.
func (f Field) Attr(name string) (string, bool) {
	if f.Attrs == nil {
		return "", false
	}
	value, ok := f.Attrs[name]
	return value, ok
}

// KeepsWhitespace reports whether submitted values must be kept verbatim.
// Password fields never strip; other fields opt out with strip: "false".
func (f Field) KeepsWhitespace() bool {
	if strings.EqualFold(strings.TrimSpace(f.Format), "password") {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(f.Metadata[MetadataStrip]), "false")
}

// SetDefaultAttr stores value under name unless the attribute already exists.
func (f *Field) SetDefaultAttr(name, value string) {
	if f == nil {
		return
	}
	if f.Attrs == nil {
		f.Attrs = make(map[string]string)
	}
	if _, exists := f.Attrs[name]; exists {
		return
	}
	f.Attrs[name] = value
}

// Clone returns a deep copy so form instances never share attribute maps.
func (f Field) Clone() Field {
	out := f
	out.Options = append([]Choice(nil), f.Options...)
	out.Attrs = cloneStringMap(f.Attrs)
	out.Defaults = cloneStringMap(f.Defaults)
	out.Metadata = cloneStringMap(f.Metadata)
	return out
}

// Form is the top-level representation the engine hands to decorators and
// callers.
type Form struct {
	ID       string            `json:"id"`
	Title    string            `json:"title,omitempty"`
	Fields   []Field           `json:"fields"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Field returns a pointer to the named field so callers can adjust it in
// place.
func (f *Form) Field(name string) (*Field, bool) {
	if f == nil {
		return nil, false
	}
	for idx := range f.Fields {
		if f.Fields[idx].Name == name {
			return &f.Fields[idx], true
		}
	}
	return nil, false
}

// Clone deep-copies the form and all of its fields.
func (f Form) Clone() Form {
	out := f
	out.Metadata = cloneStringMap(f.Metadata)
	if f.Fields != nil {
		out.Fields = make([]Field, len(f.Fields))
		for idx, field := range f.Fields {
			out.Fields[idx] = field.Clone()
		}
	}
	return out
}

func cloneStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
