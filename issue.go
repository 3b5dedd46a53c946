package veriform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path locates an issue inside the validated structure. Segments are string
// object keys or int array indices; the two are never coerced into each
// other. A nil Path means the issue applies to the root value.
type Path []any

// Key appends an object key segment.
func (p Path) Key(name string) Path {
	return append(append(Path{}, p...), name)
}

// Index appends an array index segment.
func (p Path) Index(i int) Path {
	return append(append(Path{}, p...), i)
}

// Pointer renders the path as a JSON Pointer (for example /items/2/price).
// The root path renders as "/".
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteString("/")
		switch s := seg.(type) {
		case int:
			b.WriteString(strconv.Itoa(s))
		case string:
			// escape '~' -> '~0', '/' -> '~1' per RFC6901
			b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1"))
		default:
			fmt.Fprintf(b, "%v", s)
		}
	}
	return b.String()
}

// Issue is a single normalized validation entry. It carries a stable
// taxonomy code plus optional constraint parameters; human-readable message
// text is a consumer concern (see the i18n package), never stored here.
type Issue struct {
	// Path is absent for root-level issues, never present-and-empty.
	Path Path `json:"path,omitempty"`
	// Code is one of the codes in codes.go, or an engine passthrough code
	// when no mapping rule matched.
	Code string `json:"code"`
	// Params carries structured constraint metadata (e.g. {"min": 8}) for
	// i18n and observability. Omitted when nothing was derived, never an
	// empty map.
	Params map[string]any `json:"params,omitempty"`
}

// Issues is a collection of validation entries that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path.Pointer())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Codes lists the issue codes in order.
func (iss Issues) Codes() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Code
	}
	return out
}

// ValidationError is returned by Schema.Parse when validation fails. It
// carries the full issue list from the failed validation.
type ValidationError struct {
	Issues Issues
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Issues.Codes(), ", ")
}

// AsValidationError extracts a *ValidationError using errors.As internally.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
