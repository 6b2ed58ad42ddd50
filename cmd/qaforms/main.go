package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-qaforms/pkg/formdef"
	"github.com/goliatone/go-qaforms/pkg/forms"
	"github.com/goliatone/go-qaforms/pkg/model"
	"github.com/goliatone/go-qaforms/pkg/prompt"
	"github.com/goliatone/go-qaforms/pkg/render"
)

const (
	csrfFieldName   = "csrfmiddlewaretoken"
	msgCorrectBelow = "Please correct the errors below."
)

func main() {
	formID := flag.String("form", forms.FormQuestion, "form id to build")
	locale := flag.String("locale", "", "locale used to translate labels (e.g. ja)")
	rows := flag.Int("rows", 0, "row count for textareas without one")
	defs := flag.String("defs", "", "directory of form definitions (embedded definitions if empty)")
	format := flag.String("format", "attrs", "output format: attrs or json")
	csrf := flag.String("csrf", "", "CSRF token emitted as a hidden input in attrs output")
	fill := flag.Bool("fill", false, "prompt for values in the terminal and validate them")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), logger, os.Stdout, config{
		formID: *formID,
		locale: *locale,
		rows:   *rows,
		defs:   *defs,
		format: *format,
		csrf:   *csrf,
		fill:   *fill,
	}); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		logger.Error("qaforms failed", slog.Any("error", err))
		os.Exit(1)
	}
}

type config struct {
	formID string
	locale string
	rows   int
	defs   string
	format string
	csrf   string
	fill   bool
	// driver answers -fill prompts; nil uses the survey terminal driver.
	driver prompt.Driver
}

func run(ctx context.Context, logger *slog.Logger, out io.Writer, cfg config) error {
	options := []forms.Option{
		forms.WithLogger(logger),
		forms.WithTextareaRows(cfg.rows),
	}
	if dir := strings.TrimSpace(cfg.defs); dir != "" {
		store, err := formdef.LoadFS(os.DirFS(dir))
		if err != nil {
			return fmt.Errorf("load definitions from %s: %w", dir, err)
		}
		options = append(options, forms.WithStore(store))
	}

	engine := forms.New(options...)
	form, err := engine.Build(ctx, forms.Request{FormID: cfg.formID, Locale: cfg.locale})
	if err != nil {
		return err
	}

	hidden := hiddenFields(cfg)
	if cfg.fill {
		driver := cfg.driver
		if driver == nil {
			driver = prompt.NewSurveyDriver()
		}
		return fillForm(ctx, logger, out, form, driver, hidden)
	}
	return writeForm(out, form, cfg.format, hidden)
}

func hiddenFields(cfg config) []render.HiddenField {
	if token := strings.TrimSpace(cfg.csrf); token != "" {
		return render.SortedHiddenFields(render.CSRFToken(csrfFieldName, token))
	}
	return nil
}

// fillForm prompts for every field and prints the cleaned values as JSON.
// Invalid submissions are logged and the form is printed again with the
// offending fields marked invalid.
func fillForm(ctx context.Context, logger *slog.Logger, out io.Writer, form *model.Form, driver prompt.Driver, hidden []render.HiddenField) error {
	values, err := prompt.Fill(ctx, form, driver)
	if err != nil {
		return err
	}
	cleaned, err := forms.Clean(form, values)
	var verr *forms.ValidationError
	if errors.As(err, &verr) {
		mapping := render.MapErrorPayload(form, verr.Fields)
		render.MarkInvalid(form, mapping)

		names := make([]string, 0, len(mapping.Fields))
		for name := range mapping.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			for _, message := range mapping.Fields[name] {
				logger.Warn("invalid value", slog.String("field", name), slog.String("message", message))
			}
		}

		for _, message := range render.MergeFormErrors(mapping.Form, msgCorrectBelow) {
			fmt.Fprintf(out, "! %s\n", message)
		}
		if werr := writeForm(out, form, "attrs", hidden); werr != nil {
			return werr
		}
		return err
	}
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(cleaned)
}

func writeForm(out io.Writer, form *model.Form, format string, hidden []render.HiddenField) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(form)
	case "", "attrs":
		if form.Title != "" {
			fmt.Fprintf(out, "# %s\n", form.Title)
		}
		for _, field := range hidden {
			fmt.Fprintf(out, "%s [hidden] %s\n", field.Name, field.Attributes())
		}
		for _, field := range form.Fields {
			fmt.Fprintf(out, "%s [%s] %s\n", field.Name, field.Kind, render.FieldAttributes(field))
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
