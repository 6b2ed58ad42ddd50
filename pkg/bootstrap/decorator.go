package bootstrap

import "github.com/goliatone/go-qaforms/pkg/model"

// Option configures a Decorator.
type Option func(*Decorator)

// WithTextareaRows overrides the default textarea row count. Non-positive
// values are ignored.
func WithTextareaRows(rows int) Option {
	return func(d *Decorator) {
		if rows > 0 {
			d.rows = rows
		}
	}
}

// WithClassTable swaps the class tokens, e.g. for a themed table built with
// ClassTableFromManifest.
func WithClassTable(table ClassTable) Option {
	return func(d *Decorator) {
		d.table = table.withDefaults()
	}
}

// Decorator adapts Decorate to the model.Decorator contract so the form engine
// can compose it with other decorators.
type Decorator struct {
	rows  int
	table ClassTable
}

var _ model.Decorator = (*Decorator)(nil)

// NewDecorator constructs a Decorator using the Bootstrap defaults.
func NewDecorator(options ...Option) *Decorator {
	d := &Decorator{
		rows:  DefaultTextareaRows,
		table: DefaultClassTable(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d
}

// Rows reports the textarea row count the decorator applies.
func (d *Decorator) Rows() int {
	if d == nil {
		return DefaultTextareaRows
	}
	return d.rows
}

// Decorate implements model.Decorator.
func (d *Decorator) Decorate(form *model.Form) error {
	if d == nil || form == nil {
		return nil
	}
	DecorateWith(form.Fields, d.rows, d.table)
	return nil
}
