package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-qaforms/pkg/forms"
	"github.com/goliatone/go-qaforms/pkg/prompt"
)

type scriptedDriver struct {
	inputs []string
}

func (d *scriptedDriver) next() string {
	if len(d.inputs) == 0 {
		return ""
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out
}

func (d *scriptedDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	return d.next(), nil
}

func (d *scriptedDriver) Password(context.Context, prompt.InputConfig) (string, error) {
	return d.next(), nil
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, nil
}

func (d *scriptedDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	return 0, nil
}

func (d *scriptedDriver) MultiSelect(context.Context, prompt.SelectConfig) ([]int, error) {
	return nil, nil
}

func (d *scriptedDriver) TextArea(context.Context, prompt.InputConfig) (string, error) {
	return d.next(), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_AttrsOutput(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), discardLogger(), &out, config{formID: "answer", format: "attrs"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := `content [textarea] aria-label="Content" class="form-control" id="id_content" name="content" placeholder="Content" required rows="6"`
	if !strings.Contains(out.String(), want) {
		t.Fatalf("output missing %q:\n%s", want, out.String())
	}
}

func TestRun_DefinitionsDirectory(t *testing.T) {
	dir := t.TempDir()
	def := "forms:\n  contact:\n    fields:\n      - name: message\n        kind: textarea\n"
	if err := os.WriteFile(filepath.Join(dir, "contact.yaml"), []byte(def), 0o644); err != nil {
		t.Fatalf("write definition: %v", err)
	}

	var out bytes.Buffer
	err := run(context.Background(), discardLogger(), &out, config{formID: "contact", defs: dir, rows: 3, format: "json"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{`"id": "contact"`, `"rows": "3"`, `"class": "form-control"`} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("json output missing %s:\n%s", want, out.String())
		}
	}
}

func TestRun_Errors(t *testing.T) {
	if err := run(context.Background(), discardLogger(), io.Discard, config{formID: "answer", format: "xml"}); err == nil {
		t.Fatalf("expected unknown format error")
	}
	if err := run(context.Background(), discardLogger(), io.Discard, config{formID: "missing"}); err == nil {
		t.Fatalf("expected missing form error")
	}
}

func TestRun_CSRFHiddenInput(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), discardLogger(), &out, config{formID: "answer", csrf: " tok123 "})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := `csrfmiddlewaretoken [hidden] name="csrfmiddlewaretoken" type="hidden" value="tok123"`
	if !strings.Contains(out.String(), want) {
		t.Fatalf("output missing %q:\n%s", want, out.String())
	}
}

func TestRun_FillValid(t *testing.T) {
	driver := &scriptedDriver{inputs: []string{"ada", "ada@example.com", " s3cret ", " s3cret "}}

	var out bytes.Buffer
	err := run(context.Background(), discardLogger(), &out, config{formID: "signup", fill: true, driver: driver})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{`"ada@example.com"`, `" s3cret "`} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("cleaned output missing %s:\n%s", want, out.String())
		}
	}
}

func TestRun_FillInvalidMarksFields(t *testing.T) {
	driver := &scriptedDriver{inputs: []string{"ada", "Ada <ada@example.com>", "one", "two"}}

	var logs, out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	err := run(context.Background(), logger, &out, config{formID: "signup", fill: true, driver: driver, csrf: "tok"})

	var verr *forms.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want *forms.ValidationError, got %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"! Please correct the errors below.",
		`csrfmiddlewaretoken [hidden] name="csrfmiddlewaretoken" type="hidden" value="tok"`,
		`email [text] aria-invalid="true" class="form-control is-invalid" id="id_email" name="email" placeholder="Email address" required`,
		`class="form-control is-invalid" id="id_password2"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "username ") && strings.Contains(line, "is-invalid") {
			t.Fatalf("valid field marked invalid: %s", line)
		}
	}

	emailAt := strings.Index(logs.String(), "field=email")
	passwordAt := strings.Index(logs.String(), "field=password2")
	if emailAt < 0 || passwordAt < 0 || emailAt > passwordAt {
		t.Fatalf("warnings missing or out of order:\n%s", logs.String())
	}
}
