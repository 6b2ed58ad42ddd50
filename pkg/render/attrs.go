package render

import (
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-qaforms/pkg/model"
)

// ControlID returns the id attribute used for a field's control.
func ControlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "id_" + trimmed
}

// Attributes serialises attrs as space separated key="value" pairs sorted by
// name. Values are HTML escaped; empty names are skipped.
func Attributes(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var builder strings.Builder
	for idx, name := range names {
		if idx > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(html.EscapeString(strings.TrimSpace(name)))
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(attrs[name]))
		builder.WriteByte('"')
	}
	return builder.String()
}

// FieldAttributes serialises the decorated attributes of field together with
// the name, id, maxlength and required attributes derived from its
// definition. Explicit presentation attributes win over derived ones.
func FieldAttributes(field model.Field) string {
	attrs := make(map[string]string, len(field.Attrs)+3)
	if name := strings.TrimSpace(field.Name); name != "" {
		attrs["name"] = name
		attrs["id"] = ControlID(name)
	}
	if field.MaxLength > 0 {
		attrs["maxlength"] = strconv.Itoa(field.MaxLength)
	}
	for key, value := range field.Attrs {
		attrs[key] = value
	}

	out := Attributes(attrs)
	if field.Required {
		if out != "" {
			out += " "
		}
		out += "required"
	}
	return out
}
