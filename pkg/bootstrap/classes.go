package bootstrap

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ClassToken is a typed identifier for the Bootstrap classes applied to
// controls.
type ClassToken string

const (
	ClassSelect  ClassToken = "form-select"
	ClassCheck   ClassToken = "form-check-input"
	ClassControl ClassToken = "form-control"
)

// Theme token names read by ClassTableFromTokens.
const (
	TokenSelectClass  = "forms.class.select"
	TokenCheckClass   = "forms.class.check"
	TokenControlClass = "forms.class.control"
)

// ClassTable maps the three control families onto class tokens.
type ClassTable struct {
	Select  string
	Check   string
	Control string
}

// DefaultClassTable returns the stock Bootstrap tokens.
func DefaultClassTable() ClassTable {
	return ClassTable{
		Select:  string(ClassSelect),
		Check:   string(ClassCheck),
		Control: string(ClassControl),
	}
}

// ClassTableFromManifest overlays the manifest's base tokens on the default
// table. Use ClassTableFromTokens with Selection.Tokens to honour a variant.
func ClassTableFromManifest(manifest *theme.Manifest) ClassTable {
	if manifest == nil {
		return DefaultClassTable()
	}
	return ClassTableFromTokens(manifest.Tokens)
}

// ClassTableFromTokens overlays theme tokens on the default table. Blank or
// missing tokens keep the Bootstrap defaults.
func ClassTableFromTokens(tokens map[string]string) ClassTable {
	table := DefaultClassTable()
	if token := strings.TrimSpace(tokens[TokenSelectClass]); token != "" {
		table.Select = token
	}
	if token := strings.TrimSpace(tokens[TokenCheckClass]); token != "" {
		table.Check = token
	}
	if token := strings.TrimSpace(tokens[TokenControlClass]); token != "" {
		table.Control = token
	}
	return table
}

func (t ClassTable) withDefaults() ClassTable {
	defaults := DefaultClassTable()
	if strings.TrimSpace(t.Select) == "" {
		t.Select = defaults.Select
	}
	if strings.TrimSpace(t.Check) == "" {
		t.Check = defaults.Check
	}
	if strings.TrimSpace(t.Control) == "" {
		t.Control = defaults.Control
	}
	return t
}
