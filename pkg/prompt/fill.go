package prompt

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-qaforms/pkg/model"
)

var tristateOptions = []string{"Unknown", "Yes", "No"}

// Fill prompts for every field of form in order and returns the collected
// values keyed by field name. Empty answers are omitted; answers are trimmed
// unless the field keeps whitespace.
func Fill(ctx context.Context, form *model.Form, driver Driver) (url.Values, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is nil")
	}
	values := url.Values{}
	if form == nil {
		return values, nil
	}

	for _, field := range form.Fields {
		answers, err := ask(ctx, field, driver)
		if err != nil {
			return values, fmt.Errorf("prompt: field %q: %w", field.Name, err)
		}
		keep := field.KeepsWhitespace()
		for _, answer := range answers {
			if !keep {
				answer = strings.TrimSpace(answer)
			}
			if answer != "" {
				values.Add(field.Name, answer)
			}
		}
	}
	return values, nil
}

func ask(ctx context.Context, field model.Field, driver Driver) ([]string, error) {
	message := promptMessage(field)
	help := promptHelp(field, message)

	switch field.Kind {
	case model.KindTextarea:
		out, err := driver.TextArea(ctx, InputConfig{Message: message, Help: help})
		return []string{out}, err
	case model.KindCheckbox:
		ok, err := driver.Confirm(ctx, ConfirmConfig{Message: message, Help: help})
		if err != nil || !ok {
			return nil, err
		}
		return []string{"true"}, nil
	case model.KindTristateSelect:
		idx, err := driver.Select(ctx, SelectConfig{Message: message, Options: tristateOptions, Help: help})
		if err != nil {
			return nil, err
		}
		switch idx {
		case 1:
			return []string{"true"}, nil
		case 2:
			return []string{"false"}, nil
		default:
			return nil, nil
		}
	case model.KindSelect, model.KindRadioGroup:
		idx, err := driver.Select(ctx, SelectConfig{Message: message, Options: choiceLabels(field), Help: help})
		if err != nil {
			return nil, err
		}
		return choiceValues(field, []int{idx}), nil
	case model.KindMultiSelect:
		indices, err := driver.MultiSelect(ctx, SelectConfig{Message: message, Options: choiceLabels(field), Help: help})
		if err != nil {
			return nil, err
		}
		return choiceValues(field, indices), nil
	default:
		if isPassword(field) {
			out, err := driver.Password(ctx, InputConfig{Message: message, Help: help})
			return []string{out}, err
		}
		out, err := driver.Input(ctx, InputConfig{Message: message, Help: help})
		return []string{out}, err
	}
}

func promptMessage(field model.Field) string {
	message := strings.TrimSpace(field.Label)
	if message == "" {
		message = strings.TrimSpace(field.Attrs[model.AttrPlaceholder])
	}
	if message == "" {
		message = field.Name
	}
	if field.Required {
		message += " *"
	}
	return message
}

func promptHelp(field model.Field, message string) string {
	if help := strings.TrimSpace(field.HelpText); help != "" {
		return help
	}
	placeholder := strings.TrimSpace(field.Attrs[model.AttrPlaceholder])
	if placeholder == "" || placeholder == strings.TrimSuffix(message, " *") {
		return ""
	}
	return placeholder
}

func isPassword(field model.Field) bool {
	if strings.EqualFold(field.Format, "password") {
		return true
	}
	switch field.Attrs[model.AttrAutocomplete] {
	case "new-password", "current-password":
		return true
	default:
		return false
	}
}

func choiceLabels(field model.Field) []string {
	out := make([]string, len(field.Options))
	for idx, option := range field.Options {
		out[idx] = option.Label
		if out[idx] == "" {
			out[idx] = option.Value
		}
	}
	return out
}

func choiceValues(field model.Field, indices []int) []string {
	var out []string
	for _, idx := range indices {
		if idx >= 0 && idx < len(field.Options) {
			out = append(out, field.Options[idx].Value)
		}
	}
	return out
}
