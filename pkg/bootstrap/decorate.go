package bootstrap

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-qaforms/pkg/model"
)

// DefaultTextareaRows is the row count given to textareas that do not declare
// one.
const DefaultTextareaRows = 6

// Decorate styles every field with the Bootstrap class table. Attribute maps
// are mutated in place and allocated when nil.
func Decorate(fields []model.Field, defaultTextareaRows int) {
	DecorateWith(fields, defaultTextareaRows, DefaultClassTable())
}

// DecorateWith styles fields using a custom class table. Blank table entries
// fall back to the Bootstrap tokens.
func DecorateWith(fields []model.Field, defaultTextareaRows int, table ClassTable) {
	table = table.withDefaults()
	for idx := range fields {
		decorateField(&fields[idx], defaultTextareaRows, table)
	}
}

func decorateField(field *model.Field, rows int, table ClassTable) {
	if field.Attrs == nil {
		field.Attrs = make(map[string]string)
	}

	AppendClass(field.Attrs, table.tokenFor(field.Kind))
	if field.Kind == model.KindTextarea {
		if _, ok := field.Attrs[model.AttrRows]; !ok {
			field.Attrs[model.AttrRows] = strconv.Itoa(rows)
		}
	}

	if field.Label == "" {
		return
	}
	if _, ok := field.Attrs[model.AttrPlaceholder]; !ok {
		field.Attrs[model.AttrPlaceholder] = field.Label
	}
	if _, ok := field.Attrs[model.AttrAriaLabel]; !ok {
		field.Attrs[model.AttrAriaLabel] = field.Label
	}
}

// ClassFor returns the Bootstrap class token for kind. Unknown kinds use the
// form-control fallback.
func ClassFor(kind model.Kind) string {
	return DefaultClassTable().tokenFor(kind)
}

func (t ClassTable) tokenFor(kind model.Kind) string {
	switch kind {
	case model.KindSelect, model.KindMultiSelect:
		return t.Select
	case model.KindCheckbox, model.KindTristateSelect:
		return t.Check
	case model.KindRadioGroup:
		return t.Check
	case model.KindFile:
		return t.Control
	case model.KindText, model.KindTextarea:
		return t.Control
	default:
		return t.Control
	}
}

// AppendClass joins token onto the existing class attribute. Tokens already
// present are appended again.
func AppendClass(attrs map[string]string, token string) {
	if attrs == nil {
		return
	}
	attrs[model.AttrClass] = strings.TrimSpace(attrs[model.AttrClass] + " " + token)
}
