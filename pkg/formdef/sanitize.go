package formdef

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips markup from user-facing strings. Entities are decoded
// before sanitising so escaped tags are stripped too, then decoded again to
// return plain text. The result is not HTML safe: render.Attributes escapes
// it on output.
func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(html.UnescapeString(raw))
	if trimmed == "" {
		return ""
	}
	cleaned := textSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
