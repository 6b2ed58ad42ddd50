package formdef

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-qaforms/pkg/model"
)

// ErrFormNotFound is returned when a store has no definition for an id.
var ErrFormNotFound = errors.New("formdef: form not found")

// Store holds parsed form definitions keyed by form id.
type Store struct {
	mu    sync.RWMutex
	forms map[string]model.Form
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{forms: make(map[string]model.Form)}
}

// LoadFS walks the provided filesystem and parses JSON/YAML definition files.
// When fsys is nil or holds no definition files, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := NewStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("formdef: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for formID, raw := range doc.Forms {
			id := strings.TrimSpace(formID)
			if id == "" {
				return fmt.Errorf("formdef: file %s defines an empty form id", path)
			}
			form, err := normaliseForm(raw, id, path)
			if err != nil {
				return err
			}
			if err := store.Add(form); err != nil {
				return fmt.Errorf("formdef: file %s: %w", path, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Add registers a definition. Duplicate ids are rejected.
func (s *Store) Add(form model.Form) error {
	id := strings.TrimSpace(form.ID)
	if id == "" {
		return errors.New("formdef: form id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forms == nil {
		s.forms = make(map[string]model.Form)
	}
	if _, exists := s.forms[id]; exists {
		return fmt.Errorf("formdef: duplicate form %q", id)
	}
	form.ID = id
	s.forms[id] = form.Clone()
	return nil
}

// Form returns a deep copy of the definition so callers may mutate it freely.
func (s *Store) Form(id string) (model.Form, error) {
	if s == nil {
		return model.Form{}, fmt.Errorf("%w: %q", ErrFormNotFound, id)
	}
	s.mu.RLock()
	form, ok := s.forms[strings.TrimSpace(id)]
	s.mu.RUnlock()
	if !ok {
		return model.Form{}, fmt.Errorf("%w: %q", ErrFormNotFound, id)
	}
	return form.Clone(), nil
}

// IDs returns the sorted list of form ids.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any definitions.
func (s *Store) Empty() bool {
	if s == nil {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.forms) == 0
}

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Title    string            `json:"title" yaml:"title"`
	TitleKey string            `json:"titleKey" yaml:"titleKey"`
	Fields   []fieldFile       `json:"fields" yaml:"fields"`
	Metadata map[string]string `json:"metadata" yaml:"metadata"`
}

type fieldFile struct {
	Name           string            `json:"name" yaml:"name"`
	Kind           string            `json:"kind" yaml:"kind"`
	Type           string            `json:"type" yaml:"type"`
	Format         string            `json:"format" yaml:"format"`
	Label          string            `json:"label" yaml:"label"`
	LabelKey       string            `json:"labelKey" yaml:"labelKey"`
	PlaceholderKey string            `json:"placeholderKey" yaml:"placeholderKey"`
	HelpText       string            `json:"helpText" yaml:"helpText"`
	Required       bool              `json:"required" yaml:"required"`
	MaxLength      int               `json:"maxLength" yaml:"maxLength"`
	Options        []model.Choice    `json:"options" yaml:"options"`
	Attrs          map[string]string `json:"attrs" yaml:"attrs"`
	Defaults       map[string]string `json:"defaults" yaml:"defaults"`
	Metadata       map[string]string `json:"metadata" yaml:"metadata"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("formdef: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("formdef: parse %s: invalid JSON or YAML", source)
}

func normaliseForm(raw formFile, id, source string) (model.Form, error) {
	form := model.Form{
		ID:       id,
		Title:    sanitizeText(raw.Title),
		Fields:   make([]model.Field, 0, len(raw.Fields)),
		Metadata: cloneStringMap(raw.Metadata),
	}
	if key := strings.TrimSpace(raw.TitleKey); key != "" {
		if form.Metadata == nil {
			form.Metadata = make(map[string]string)
		}
		form.Metadata[MetadataTitleKey] = key
	}

	seen := make(map[string]struct{}, len(raw.Fields))
	for idx, entry := range raw.Fields {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return model.Form{}, fmt.Errorf("formdef: form %q (file %s) field %d has no name", id, source, idx)
		}
		if _, exists := seen[name]; exists {
			return model.Form{}, fmt.Errorf("formdef: form %q (file %s) defines duplicate field %q", id, source, name)
		}
		seen[name] = struct{}{}
		if entry.MaxLength < 0 {
			return model.Form{}, fmt.Errorf("formdef: form %q (file %s) field %q has negative maxLength", id, source, name)
		}

		field := model.Field{
			Name:           name,
			Type:           model.FieldType(strings.ToLower(strings.TrimSpace(entry.Type))),
			Format:         strings.TrimSpace(entry.Format),
			Label:          sanitizeText(entry.Label),
			LabelKey:       strings.TrimSpace(entry.LabelKey),
			PlaceholderKey: strings.TrimSpace(entry.PlaceholderKey),
			HelpText:       sanitizeText(entry.HelpText),
			Required:       entry.Required,
			MaxLength:      entry.MaxLength,
			Options:        normaliseOptions(entry.Options),
			Attrs:          normaliseAttrs(entry.Attrs),
			Defaults:       normaliseAttrs(entry.Defaults),
			Metadata:       cloneStringMap(entry.Metadata),
		}
		if raw := strings.TrimSpace(entry.Kind); raw != "" {
			// Unknown kinds are kept; the decorator treats them as text.
			field.Kind, _ = model.ParseKind(raw)
		}
		form.Fields = append(form.Fields, field)
	}

	return form, nil
}

// MetadataTitleKey stores the translation key for the form title.
const MetadataTitleKey = model.MetadataTitleKey

func normaliseOptions(options []model.Choice) []model.Choice {
	if len(options) == 0 {
		return nil
	}
	out := make([]model.Choice, 0, len(options))
	for _, option := range options {
		value := strings.TrimSpace(option.Value)
		label := sanitizeText(option.Label)
		if label == "" {
			label = value
		}
		out = append(out, model.Choice{Value: value, Label: label})
	}
	return out
}

func normaliseAttrs(attrs map[string]string) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for key, value := range attrs {
		name := strings.ToLower(strings.TrimSpace(key))
		if name == "" {
			continue
		}
		switch name {
		case model.AttrPlaceholder, model.AttrAriaLabel:
			value = sanitizeText(value)
		}
		out[name] = value
	}
	return out
}

func cloneStringMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
