// Package engine defines the boundary to the structural type-checking engine:
// the Type descriptor callers invoke, and the RawFailure records it reports.
// Structural and constraint matching itself is delegated to
// go-playground/validator; this package only shapes schemas as a small
// tagged-variant AST and translates the checker's output into the raw-failure
// vocabulary the rest of the library formats.
package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Delimiter joins the expectations of a multi-reason failure into a single
// RawFailure. A field that violates several independent rules at once (for
// example three password rules) is reported as one compound record; consumers
// split on this rune.
const Delimiter = "◦"

// RawFailure is one unformatted validation failure as reported by the engine.
type RawFailure struct {
	// Path locates the failure inside the checked structure. Segments are
	// string keys or int array indices; empty for root-level failures.
	Path []any
	// Expected describes the violated constraint as prose. May contain
	// Delimiter when several sub-constraints failed at once.
	Expected string
	// Actual describes the received value. Best-effort.
	Actual string
	// Code is the engine-internal classification ("predicate", "required",
	// a constraint tag). Loosely typed; optional.
	Code string
	// Message is an engine-generated human-readable message. Optional.
	Message string
	// Rule is the literal constraint value that was violated (for example
	// the minimum length). Optional.
	Rule any
}

// Failures is the collection a failed check yields. It implements error so
// engine results can travel through error-shaped plumbing unchanged.
type Failures []RawFailure

// Summary renders a human-readable digest of all failures, one per line.
func (fs Failures) Summary() string {
	b := &strings.Builder{}
	for i, f := range fs {
		if i > 0 {
			b.WriteString("\n")
		}
		at := renderPath(f.Path)
		if at != "" {
			fmt.Fprintf(b, "%s must be %s", at, f.Expected)
		} else {
			fmt.Fprintf(b, "must be %s", f.Expected)
		}
		if f.Actual != "" {
			fmt.Fprintf(b, " (was %s)", f.Actual)
		}
	}
	return b.String()
}

func (fs Failures) Error() string { return fs.Summary() }

// Type is a compiled schema descriptor. Check returns the accepted (possibly
// coerced) value, or the failures that reject it. Implementations are
// immutable after construction and safe for concurrent use.
type Type interface {
	Check(v any) (any, Failures)
}

func renderPath(path []any) string {
	if len(path) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for i, seg := range path {
		switch s := seg.(type) {
		case int:
			fmt.Fprintf(b, "[%d]", s)
		default:
			if i > 0 {
				b.WriteString(".")
			}
			fmt.Fprintf(b, "%v", s)
		}
	}
	return b.String()
}

// prefixPaths returns a copy of fs with seg prepended to every failure path.
func prefixPaths(fs Failures, seg any) Failures {
	out := make(Failures, len(fs))
	for i, f := range fs {
		p := make([]any, 0, len(f.Path)+1)
		p = append(p, seg)
		p = append(p, f.Path...)
		f.Path = p
		out[i] = f
	}
	return out
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func sortedKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
