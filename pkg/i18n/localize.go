package i18n

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-qaforms/pkg/model"
)

// Localize translates the form title, field labels and placeholder defaults
// in place. Keys that cannot be resolved go through onMissing, which defaults
// to FallbackOnMissing.
func Localize(form *model.Form, locale string, t Translator, onMissing MissingTranslationHandler) {
	if form == nil {
		return
	}
	if onMissing == nil {
		onMissing = FallbackOnMissing
	}

	if key := strings.TrimSpace(form.Metadata[model.MetadataTitleKey]); key != "" {
		form.Title = translate(locale, key, form.Title, t, onMissing)
	}

	for idx := range form.Fields {
		localizeField(&form.Fields[idx], locale, t, onMissing)
	}
}

func localizeField(field *model.Field, locale string, t Translator, onMissing MissingTranslationHandler) {
	if key := strings.TrimSpace(field.LabelKey); key != "" {
		field.Label = translate(locale, key, field.Label, t, onMissing)
	}
	if key := strings.TrimSpace(field.PlaceholderKey); key != "" {
		if field.Defaults == nil {
			field.Defaults = make(map[string]string)
		}
		field.Defaults[model.AttrPlaceholder] = translate(locale, key, field.Defaults[model.AttrPlaceholder], t, onMissing)
	}
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	if t == nil {
		return onMissing(locale, key, fallback, ErrMissingTranslator)
	}
	result, err := t.Translate(locale, key)
	if err != nil {
		return onMissing(locale, key, fallback, err)
	}
	if strings.TrimSpace(result) == "" {
		return onMissing(locale, key, fallback, fmt.Errorf("%w: %s/%s is empty", ErrMissingTranslation, locale, key))
	}
	return result
}
