package forms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-qaforms/pkg/bootstrap"
	"github.com/goliatone/go-qaforms/pkg/formdef"
	"github.com/goliatone/go-qaforms/pkg/i18n"
	"github.com/goliatone/go-qaforms/pkg/model"
	"github.com/goliatone/go-qaforms/pkg/widgets"
	theme "github.com/goliatone/go-theme"
)

// Application form ids shipped with the embedded definitions.
const (
	FormQuestion = "question"
	FormAnswer   = "answer"
	FormSignup   = "signup"
)

// Option customises the engine configuration.
type Option func(*Engine)

// WithStore injects the definition store. Defaults to the embedded
// definitions.
func WithStore(store *formdef.Store) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithRegistry injects the widget registry used to resolve missing kinds.
func WithRegistry(registry *widgets.Registry) Option {
	return func(e *Engine) {
		e.registry = registry
	}
}

// WithTextareaRows sets the row count for textareas without an explicit one.
func WithTextareaRows(rows int) Option {
	return func(e *Engine) {
		if rows > 0 {
			e.rows = rows
		}
	}
}

// WithDecorators registers decorators that run after the bootstrap styling.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(e *Engine) {
		if len(decorators) == 0 {
			return
		}
		e.decorators = append(e.decorators, decorators...)
	}
}

// WithTranslator overrides the message catalog used for localisation.
func WithTranslator(t i18n.Translator) Option {
	return func(e *Engine) {
		e.translator = t
	}
}

// WithMissingTranslationHandler controls the text used for untranslated keys.
func WithMissingTranslationHandler(handler i18n.MissingTranslationHandler) Option {
	return func(e *Engine) {
		e.onMissing = handler
	}
}

// WithThemeSelector resolves per-request themes whose manifest tokens
// override the bootstrap class table.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(e *Engine) {
		e.themes = selector
	}
}

// WithLogger sets the structured logger. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine builds decorated form instances from definitions. Every Build call
// works on a fresh copy of the definition, so concurrent builds never share
// fields.
type Engine struct {
	store      *formdef.Store
	registry   *widgets.Registry
	rows       int
	decorators []model.Decorator
	translator i18n.Translator
	onMissing  i18n.MissingTranslationHandler
	themes     theme.ThemeSelector
	logger     *slog.Logger
	initErr    error
}

// New constructs an Engine applying any provided options. Missing
// dependencies fall back to the embedded definitions, the built-in widget
// registry and the embedded message catalog.
func New(options ...Option) *Engine {
	e := &Engine{
		rows: bootstrap.DefaultTextareaRows,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	e.applyDefaults()
	return e
}

// Request selects the form to build and the per-request presentation
// context.
type Request struct {
	// FormID names the definition to instantiate.
	FormID string
	// Locale selects translations. Empty keeps the definition's text.
	Locale string
	// Theme and Variant are passed to the theme selector when one is
	// configured.
	Theme   string
	Variant string
}

// Build instantiates and decorates the requested form: kinds are resolved,
// text is localised, bootstrap classes are applied, extra decorators run and
// finally per-field defaults fill attributes that are still absent.
func (e *Engine) Build(ctx context.Context, req Request) (*model.Form, error) {
	if ctx == nil {
		return nil, errors.New("forms: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.initErr != nil {
		return nil, e.initErr
	}

	id := strings.TrimSpace(req.FormID)
	if id == "" {
		return nil, errors.New("forms: form id is required")
	}

	form, err := e.store.Form(id)
	if err != nil {
		return nil, fmt.Errorf("forms: %w", err)
	}

	if err := e.registry.Decorate(&form); err != nil {
		return nil, fmt.Errorf("forms: resolve kinds: %w", err)
	}

	if locale := strings.TrimSpace(req.Locale); locale != "" {
		i18n.Localize(&form, locale, e.translator, e.onMissing)
	}

	table, err := e.classTable(req)
	if err != nil {
		return nil, err
	}

	styling := bootstrap.NewDecorator(
		bootstrap.WithTextareaRows(e.rows),
		bootstrap.WithClassTable(table),
	)
	if err := styling.Decorate(&form); err != nil {
		return nil, fmt.Errorf("forms: decorate form: %w", err)
	}

	for _, decorator := range e.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(&form); err != nil {
			return nil, fmt.Errorf("forms: decorate form: %w", err)
		}
	}

	applyDefaults(&form)

	e.logger.Debug("form built",
		slog.String("form", form.ID),
		slog.String("locale", req.Locale),
		slog.Int("fields", len(form.Fields)),
	)
	return &form, nil
}

// Forms returns the ids the engine can build.
func (e *Engine) Forms() []string {
	return e.store.IDs()
}

func (e *Engine) classTable(req Request) (bootstrap.ClassTable, error) {
	if e.themes == nil {
		return bootstrap.DefaultClassTable(), nil
	}
	selection, err := e.themes.Select(req.Theme, req.Variant)
	if err != nil {
		return bootstrap.ClassTable{}, fmt.Errorf("forms: select theme %q: %w", req.Theme, err)
	}
	if selection == nil {
		return bootstrap.DefaultClassTable(), nil
	}
	e.logger.Debug("theme selected",
		slog.String("theme", selection.Theme),
		slog.String("variant", selection.Variant),
	)
	return bootstrap.ClassTableFromTokens(selection.Tokens()), nil
}

func applyDefaults(form *model.Form) {
	for idx := range form.Fields {
		field := &form.Fields[idx]
		for name, value := range field.Defaults {
			field.SetDefaultAttr(name, value)
		}
	}
}

func (e *Engine) applyDefaults() {
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.registry == nil {
		e.registry = widgets.NewRegistry()
	}
	if e.rows <= 0 {
		e.rows = bootstrap.DefaultTextareaRows
	}
	if e.store == nil {
		store, err := formdef.Embedded()
		if err != nil {
			e.initErr = fmt.Errorf("forms: load embedded definitions: %w", err)
			return
		}
		e.store = store
	}
	if e.translator == nil {
		catalog, err := i18n.DefaultCatalog()
		if err != nil {
			e.initErr = fmt.Errorf("forms: load embedded catalog: %w", err)
			return
		}
		e.translator = catalog
	}
}
