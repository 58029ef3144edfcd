package listbox

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-combobox/pkg/config"
)

// Sanitizer cleans option content before it is emitted as markup.
type Sanitizer interface {
	Sanitize(content string) string
}

// SanitizerFunc adapts a function to Sanitizer.
type SanitizerFunc func(content string) string

// Sanitize calls fn(content).
func (fn SanitizerFunc) Sanitize(content string) string {
	if fn == nil {
		return content
	}
	return fn(content)
}

var (
	ugcOnce      sync.Once
	ugcPolicy    *bluemonday.Policy
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

// SanitizerFor returns the sanitizer matching policy. Unknown policies fall
// back to the UGC policy.
func SanitizerFor(policy config.ContentPolicy) Sanitizer {
	switch config.ContentPolicy(strings.ToLower(strings.TrimSpace(string(policy)))) {
	case config.ContentPolicyTrusted:
		return SanitizerFunc(func(content string) string { return content })
	case config.ContentPolicyStrict:
		return SanitizerFunc(func(content string) string {
			return strictSanitizer().Sanitize(content)
		})
	default:
		return SanitizerFunc(func(content string) string {
			return ugcSanitizer().Sanitize(content)
		})
	}
}

func ugcSanitizer() *bluemonday.Policy {
	ugcOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		policy.AllowElements("svg", "path", "span", "img")
		ugcPolicy = policy
	})
	return ugcPolicy
}

func strictSanitizer() *bluemonday.Policy {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
