// Package resolver translates normalized issues into the field-keyed error
// map form libraries consume: one entry per field, carrying the first error
// code plus a message looked up through the i18n layer, optionally
// aggregating every code that fired for the field.
package resolver

import (
	"fmt"
	"strconv"
	"strings"

	veriform "github.com/veriform/veriform"
	"github.com/veriform/veriform/i18n"
)

// RootField keys issues that apply to the whole value rather than a field.
const RootField = "root"

// FieldError is the per-field entry of the resolved error map.
type FieldError struct {
	// Type is the code of the first issue reported for the field.
	Type string `json:"type"`
	// Message is the translated text for Type.
	Message string `json:"message"`
	// Types aggregates every code that fired for the field when
	// Options.AllErrors is set, keyed by code.
	Types map[string]string `json:"types,omitempty"`
}

// Options configures Resolve.
type Options struct {
	// AllErrors populates FieldError.Types with every code per field,
	// supporting "show all errors for this field" UX.
	AllErrors bool
	// Translator overrides the message lookup; nil uses the package default.
	Translator i18n.Translator
}

// Resolve groups issues by field path. Paths render dotted with numeric array
// indices ("items.2.price"); root-level issues key under RootField. The first
// issue per field wins the Type/Message slot, matching form-library
// first-error semantics.
func Resolve(issues veriform.Issues, opts ...Options) map[string]FieldError {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	tr := opt.Translator
	if tr == nil {
		tr = i18n.Default()
	}
	out := make(map[string]FieldError, len(issues))
	for _, issue := range issues {
		field := fieldName(issue.Path)
		msg := tr.Message(issue.Code, issue.Params)
		entry, seen := out[field]
		if !seen {
			entry = FieldError{Type: issue.Code, Message: msg}
		}
		if opt.AllErrors {
			if entry.Types == nil {
				entry.Types = make(map[string]string)
			}
			entry.Types[issue.Code] = msg
		}
		out[field] = entry
	}
	return out
}

func fieldName(p veriform.Path) string {
	if len(p) == 0 {
		return RootField
	}
	parts := make([]string, len(p))
	for i, seg := range p {
		switch s := seg.(type) {
		case int:
			parts[i] = strconv.Itoa(s)
		case string:
			parts[i] = s
		default:
			parts[i] = fmt.Sprintf("%v", seg)
		}
	}
	return strings.Join(parts, ".")
}
