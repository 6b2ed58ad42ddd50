// Package model defines the typed form model shared by the form engine and the
// decorators that style it. A Form owns an ordered slice of Field values; each
// Field carries a closed Kind, an optional Label and a mutable Attrs map of
// presentation attributes (class, placeholder, aria-label, rows,
// autocomplete). Decorators receive a *Form and mutate it in place; they must
// not retain references to the fields beyond the call.
package model
