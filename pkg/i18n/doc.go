// Package i18n translates the user-facing strings of a form definition.
// Fields reference catalog entries through LabelKey and PlaceholderKey; Localize
// resolves them for a locale before the form is decorated, so the decorator
// derives placeholders and aria labels from translated text.
package i18n
