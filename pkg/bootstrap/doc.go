// Package bootstrap styles form fields with Bootstrap presentation
// attributes. Each field's kind selects a class token (form-select,
// form-check-input or form-control), textareas receive a default row count,
// and labelled fields get placeholder and aria-label defaults. Existing
// attributes are never replaced.
//
// Class tokens are appended without de-duplication, so decorating the same
// fields twice yields repeated tokens ("form-control form-control"). Callers
// must decorate a form instance once.
package bootstrap
