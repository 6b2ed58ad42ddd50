package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-qaforms/pkg/model"
)

// Metadata keys consulted during resolution.
const (
	MetadataWidget   = "widget"
	MetadataNullable = "nullable"
)

// Matcher decides whether a kind applies to the supplied field.
type Matcher func(field model.Field) bool

type rule struct {
	kind     model.Kind
	priority int
	match    Matcher
	order    int
}

// Registry picks a field kind for definitions that do not declare one. Higher
// priority wins; ties fall back to registration order. Fields that match no
// rule resolve to model.KindText.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher for kind with the provided priority.
func (r *Registry) Register(kind model.Kind, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	if strings.TrimSpace(string(kind)) == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		kind:     kind,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the kind for field. An explicit Kind or widget metadata hint
// is honoured before matcher evaluation; ok is false only when the text
// fallback was used.
func (r *Registry) Resolve(field model.Field) (model.Kind, bool) {
	if field.Kind != "" {
		return field.Kind, true
	}
	if explicit := explicitKind(field); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return model.KindText, false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.kind, true
		}
	}
	return model.KindText, false
}

// Decorate implements model.Decorator, writing the resolved kind onto every
// field that lacks one.
func (r *Registry) Decorate(form *model.Form) error {
	if form == nil {
		return nil
	}
	for idx := range form.Fields {
		kind, _ := r.Resolve(form.Fields[idx])
		form.Fields[idx].Kind = kind
	}
	return nil
}

func explicitKind(field model.Field) model.Kind {
	if field.Metadata == nil {
		return ""
	}
	raw := strings.TrimSpace(field.Metadata[MetadataWidget])
	if raw == "" {
		return ""
	}
	kind, _ := model.ParseKind(raw)
	return kind
}

func (r *Registry) registerBuiltins() {
	r.Register(model.KindTristateSelect, 90, func(field model.Field) bool {
		return field.Type == model.FieldTypeBoolean && metadataFlag(field, MetadataNullable)
	})

	r.Register(model.KindCheckbox, 85, func(field model.Field) bool {
		return field.Type == model.FieldTypeBoolean
	})

	r.Register(model.KindMultiSelect, 80, func(field model.Field) bool {
		return field.Type == model.FieldTypeArray && len(field.Options) > 0
	})

	r.Register(model.KindRadioGroup, 75, func(field model.Field) bool {
		return len(field.Options) > 0 && normalizedFormat(field) == "radio"
	})

	r.Register(model.KindSelect, 70, func(field model.Field) bool {
		return len(field.Options) > 0
	})

	r.Register(model.KindFile, 60, func(field model.Field) bool {
		switch normalizedFormat(field) {
		case "binary", "file":
			return true
		default:
			return false
		}
	})

	r.Register(model.KindTextarea, 50, func(field model.Field) bool {
		switch normalizedFormat(field) {
		case "textarea", "multiline", "text":
			return true
		default:
			return false
		}
	})
}

func normalizedFormat(field model.Field) string {
	return strings.ToLower(strings.TrimSpace(field.Format))
}

func metadataFlag(field model.Field, key string) bool {
	if field.Metadata == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(field.Metadata[key]), "true")
}
