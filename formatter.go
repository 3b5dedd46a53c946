package veriform

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/veriform/veriform/engine"
)

// Formatter converts raw engine failures into normalized issues. base allows
// nested formatting calls to prefix every emitted path; implementations must
// be pure and must never fail — a formatting bug must not replace the
// original validation failure with a crash.
type Formatter interface {
	Format(failures engine.Failures, base Path) Issues
}

// DefaultFormatter is the built-in Formatter. It owns every prose-matching
// heuristic in the library: the engine does not expose a stable
// machine-readable reason for its format validators, only human-readable
// "expected" text, so classification has to pattern-match that text. Keeping
// all such rules here means swapping the engine touches exactly one type.
type DefaultFormatter struct{}

// Format maps each raw failure onto one or more issues. A failure whose
// expected text carries the compound delimiter fans out into one issue per
// fragment, all sharing the composed path but each independently classified
// and parameterized. An empty input yields an empty output.
func (DefaultFormatter) Format(failures engine.Failures, base Path) Issues {
	var out Issues
	for _, f := range failures {
		path := composePath(base, f.Path)
		if strings.Contains(f.Expected, engine.Delimiter) {
			for _, frag := range strings.Split(f.Expected, engine.Delimiter) {
				frag = strings.TrimSpace(frag)
				if frag == "" {
					continue
				}
				out = append(out, fragmentIssue(path, frag))
			}
			continue
		}
		out = append(out, failureIssue(path, f))
	}
	return out
}

func composePath(base Path, segs []any) Path {
	if len(base) == 0 && len(segs) == 0 {
		return nil
	}
	p := make(Path, 0, len(base)+len(segs))
	p = append(p, base...)
	p = append(p, segs...)
	return p
}

// failureIssue classifies a whole (non-compound) failure. Explicit engine
// codes win over text inference when present and unambiguous; the keyword
// scan over the expected prose comes next; length-constraint phrasing is the
// fallback scan; and anything still unmatched degrades to the engine's raw
// code, or invalid_type when there is none.
func failureIssue(path Path, f engine.RawFailure) Issue {
	code := inferCode(f)
	return Issue{Path: path, Code: code, Params: extractParams(code, f)}
}

func inferCode(f engine.RawFailure) string {
	switch f.Code {
	case "predicate":
		return CodePredicate
	case "required":
		return CodeRequired
	}
	// A failure that already carries a taxonomy code is authoritative; the
	// prose scans below exist for engines that report text only, and must
	// not reinterpret an explicit code ("invalid_price" phrases its rule
	// with "at most", which is not a number_max).
	if KnownCode(f.Code) {
		return f.Code
	}
	expected := strings.ToLower(f.Expected)
	if code, ok := formatCode(expected); ok {
		return code
	}
	switch {
	case strings.Contains(expected, "at least"):
		if strings.Contains(expected, "character") {
			return CodeStringMin
		}
		return CodeNumberMin
	case strings.Contains(expected, "at most"):
		if strings.Contains(expected, "character") {
			return CodeStringMax
		}
		return CodeNumberMax
	case strings.Contains(expected, "required"):
		return CodeRequired
	}
	if f.Code != "" {
		return f.Code
	}
	return CodeInvalidType
}

// formatCode scans lower-cased expected prose for format-validator names.
// Order matters: earlier keywords win, and "ip" runs last because it is the
// shortest and most collision-prone substring.
func formatCode(expected string) (string, bool) {
	switch {
	case strings.Contains(expected, "email"):
		return CodeInvalidEmail, true
	case strings.Contains(expected, "url"):
		return CodeInvalidURL, true
	case strings.Contains(expected, "uuid"):
		return CodeInvalidUUID, true
	case strings.Contains(expected, "date"):
		return CodeInvalidDate, true
	case strings.Contains(expected, "json"):
		return CodeInvalidJSON, true
	case strings.Contains(expected, "base64"):
		return CodeInvalidBase64, true
	case strings.Contains(expected, "hex"):
		return CodeInvalidHex, true
	case strings.Contains(expected, "integer"):
		return CodeNotInteger, true
	case strings.Contains(expected, "credit card"), strings.Contains(expected, "creditcard"):
		return CodeInvalidCreditCard, true
	case strings.Contains(expected, "ip"):
		if strings.Contains(expected, "v4") {
			return CodeInvalidIPv4, true
		}
		if strings.Contains(expected, "v6") {
			return CodeInvalidIPv6, true
		}
		return CodeInvalidIP, true
	}
	return "", false
}

// fragmentIssue classifies one piece of a split compound failure. Fragments
// describe individually violated sub-constraints ("at least 8 characters",
// "an uppercase letter"), so the rule set is narrower than the full-failure
// one and falls back to the generic predicate code. The character-class
// keywords run before the length keyword: "a special character" would
// otherwise be swallowed by the "character" test.
func fragmentIssue(path Path, frag string) Issue {
	lower := strings.ToLower(frag)
	var code string
	switch {
	case strings.Contains(lower, "uppercase"):
		code = CodePasswordNoUppercase
	case strings.Contains(lower, "lowercase"):
		code = CodePasswordNoLowercase
	case strings.Contains(lower, "number"), strings.Contains(lower, "digit"):
		code = CodePasswordNoNumber
	case strings.Contains(lower, "special"):
		code = CodePasswordNoSpecial
	case strings.Contains(lower, "character"):
		code = CodeStringMin
	default:
		code = CodePredicate
	}
	var params map[string]any
	if code == CodeStringMin {
		if n, ok := scanBound(minRe, lower); ok {
			params = map[string]any{"min": n}
		}
	}
	return Issue{Path: path, Code: code, Params: params}
}

var (
	minRe = regexp.MustCompile(`at least (\d+(?:\.\d+)?)`)
	maxRe = regexp.MustCompile(`at most (\d+(?:\.\d+)?)`)
)

// extractParams pulls constraint metadata for the inferred code. The engine's
// Rule field is preferred because it is exact; the number embedded in the
// prose is a fallback for engines that report text only. invalid_type issues
// surface the raw expected string so consumers can render "expected X"
// without a table of every possible X.
func extractParams(code string, f engine.RawFailure) map[string]any {
	switch code {
	case CodeStringMin, CodeNumberMin, CodeArrayMin, CodePasswordTooShort:
		return boundParam("min", f, minRe)
	case CodeStringMax, CodeNumberMax, CodeArrayMax:
		return boundParam("max", f, maxRe)
	case CodeStringLength, CodeArrayLength:
		if f.Rule != nil {
			return map[string]any{"expected": f.Rule}
		}
	case CodeInvalidType:
		if f.Expected != "" {
			return map[string]any{"expected": f.Expected}
		}
	}
	return nil
}

func boundParam(name string, f engine.RawFailure, re *regexp.Regexp) map[string]any {
	if f.Rule != nil {
		return map[string]any{name: f.Rule}
	}
	if n, ok := scanBound(re, strings.ToLower(f.Expected)); ok {
		return map[string]any{name: n}
	}
	return nil
}

func scanBound(re *regexp.Regexp, text string) (any, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	if n, err := strconv.Atoi(m[1]); err == nil {
		return n, true
	}
	if fl, err := strconv.ParseFloat(m[1], 64); err == nil {
		return fl, true
	}
	return nil, false
}
