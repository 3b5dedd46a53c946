package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// checker is the process-wide validator instance. go-playground/validator is
// safe for concurrent use and caches compiled tag pipelines, so a single
// instance is shared by every Type.
var checker = validator.New()

// kind selects how constraint tags are phrased for a primitive.
type kind int

const (
	kindString kind = iota
	kindNumber
	kindArray
)

// ---- primitives ----

type stringType struct {
	tag  string
	trim bool
}

// String returns a string primitive constrained by a validator tag expression
// (for example "required,email" or "min=3,max=40"). An empty tag accepts any
// string.
func String(tag string) Type { return stringType{tag: tag} }

// TrimmedString is String with leading/trailing whitespace removed before the
// constraints run. The trimmed value is what a successful check returns.
func TrimmedString(tag string) Type { return stringType{tag: tag, trim: true} }

func (t stringType) Check(v any) (any, Failures) {
	s, ok := v.(string)
	if !ok {
		return nil, Failures{invalidType("a string", v)}
	}
	if t.trim {
		s = strings.TrimSpace(s)
	}
	if t.tag != "" {
		if err := checker.Var(s, t.tag); err != nil {
			return nil, varFailures(err, kindString, s)
		}
	}
	return s, nil
}

type numberType struct {
	tag     string
	integer bool
}

// Number returns a numeric primitive constrained by a validator tag
// expression (for example "min=0" or "gt=0,lte=100").
func Number(tag string) Type { return numberType{tag: tag} }

// Integer is Number restricted to whole values.
func Integer(tag string) Type { return numberType{tag: tag, integer: true} }

func (t numberType) Check(v any) (any, Failures) {
	n, ok := asFloat(v)
	if !ok {
		return nil, Failures{invalidType("a number", v)}
	}
	if t.integer && n != float64(int64(n)) {
		return nil, Failures{{Expected: "an integer", Actual: describe(v), Code: "not_integer"}}
	}
	if t.tag != "" {
		if err := checker.Var(n, t.tag); err != nil {
			return nil, varFailures(err, kindNumber, n)
		}
	}
	return n, nil
}

type boolType struct{}

// Bool returns a boolean primitive.
func Bool() Type { return boolType{} }

func (boolType) Check(v any) (any, Failures) {
	b, ok := v.(bool)
	if !ok {
		return nil, Failures{invalidType("a boolean", v)}
	}
	return b, nil
}

type anyType struct{}

// Any accepts every value unchanged.
func Any() Type { return anyType{} }

func (anyType) Check(v any) (any, Failures) { return v, nil }

type patternType struct {
	re *regexp.Regexp
}

// Pattern returns a string primitive that must match re in full.
func Pattern(re *regexp.Regexp) Type { return patternType{re: re} }

func (t patternType) Check(v any) (any, Failures) {
	s, ok := v.(string)
	if !ok {
		return nil, Failures{invalidType("a string", v)}
	}
	if !t.re.MatchString(s) {
		return nil, Failures{{
			Expected: fmt.Sprintf("a string matching %s", t.re.String()),
			Actual:   describe(v),
			Code:     "string_pattern",
			Rule:     t.re.String(),
		}}
	}
	return s, nil
}

// ---- object ----

// UnknownPolicy controls how keys absent from the shape are handled.
type UnknownPolicy int

const (
	UnknownStrict UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                       // Drop unknown keys.
	UnknownPassthrough                 // Preserve unknown keys unchanged.
)

// Field is one property of an object shape.
type Field struct {
	Type     Type
	Optional bool
}

type objectType struct {
	fields  map[string]Field
	order   []string
	unknown UnknownPolicy
}

// ObjectShape builds an object Type from a field map. Iteration over missing
// required fields follows the sorted key order so failure lists stay
// deterministic.
func ObjectShape(fields map[string]Field, unknown UnknownPolicy) Type {
	order := make([]string, 0, len(fields))
	for k := range fields {
		order = append(order, k)
	}
	sort.Strings(order)
	return objectType{fields: fields, order: order, unknown: unknown}
}

func (t objectType) Check(v any) (any, Failures) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, Failures{invalidType("an object", v)}
	}
	out := make(map[string]any, len(m))
	var fs Failures
	for _, k := range t.order {
		f := t.fields[k]
		val, present := m[k]
		if !present {
			if !f.Optional {
				fs = append(fs, RawFailure{
					Path:     []any{k},
					Expected: "a value",
					Code:     "required",
					Message:  fmt.Sprintf("%s is required", k),
				})
			}
			continue
		}
		cv, cfs := f.Type.Check(val)
		if len(cfs) > 0 {
			fs = append(fs, prefixPaths(cfs, k)...)
			continue
		}
		out[k] = cv
	}
	for _, k := range sortedKeys(m) {
		if _, known := t.fields[k]; known {
			continue
		}
		switch t.unknown {
		case UnknownStrict:
			fs = append(fs, RawFailure{
				Path:     []any{k},
				Expected: "a known key",
				Actual:   describe(m[k]),
				Code:     "unexpected_key",
			})
		case UnknownPassthrough:
			out[k] = m[k]
		}
	}
	if len(fs) > 0 {
		return nil, fs
	}
	return out, nil
}

// StripUnknown returns a copy of t that drops unknown object keys instead of
// rejecting them. Non-object types are returned unchanged.
func StripUnknown(t Type) Type {
	if ot, ok := t.(objectType); ok {
		ot.unknown = UnknownStrip
		return ot
	}
	return t
}

// ---- array ----

type arrayType struct {
	elem Type
	min  int
	max  int // 0 means unbounded
}

// Array returns an array Type whose elements are checked against elem.
func Array(elem Type) Type { return arrayType{elem: elem} }

// BoundedArray is Array with length bounds; max <= 0 means unbounded.
func BoundedArray(elem Type, min, max int) Type {
	return arrayType{elem: elem, min: min, max: max}
}

func (t arrayType) Check(v any) (any, Failures) {
	s, ok := v.([]any)
	if !ok {
		return nil, Failures{invalidType("an array", v)}
	}
	var fs Failures
	if len(s) < t.min {
		fs = append(fs, RawFailure{
			Expected: fmt.Sprintf("%d or more items", t.min),
			Actual:   fmt.Sprintf("%d items", len(s)),
			Code:     "array_min",
			Rule:     t.min,
		})
	}
	if t.max > 0 && len(s) > t.max {
		fs = append(fs, RawFailure{
			Expected: fmt.Sprintf("%d or fewer items", t.max),
			Actual:   fmt.Sprintf("%d items", len(s)),
			Code:     "array_max",
			Rule:     t.max,
		})
	}
	out := make([]any, 0, len(s))
	for i, el := range s {
		cv, cfs := t.elem.Check(el)
		if len(cfs) > 0 {
			fs = append(fs, prefixPaths(cfs, i)...)
			continue
		}
		out = append(out, cv)
	}
	if len(fs) > 0 {
		return nil, fs
	}
	return out, nil
}

// ---- union ----

type unionType struct {
	alts []Type
}

// Union accepts a value when any alternative accepts it; alternatives are
// tried in order and the first success wins.
func Union(alts ...Type) Type { return unionType{alts: alts} }

func (t unionType) Check(v any) (any, Failures) {
	expected := make([]string, 0, len(t.alts))
	for _, alt := range t.alts {
		cv, fs := alt.Check(v)
		if len(fs) == 0 {
			return cv, nil
		}
		expected = append(expected, fs[0].Expected)
	}
	return nil, Failures{{
		Expected: strings.Join(expected, " or "),
		Actual:   describe(v),
		Code:     "invalid_type",
	}}
}

// ---- refinement ----

type refineType struct {
	inner    Type
	name     string
	expected string
	code     string
	pred     func(v any) bool
}

// Refine narrows inner with a custom predicate. expected is the prose emitted
// on rejection; code overrides the default "predicate" classification when
// non-empty.
func Refine(inner Type, name, expected, code string, pred func(v any) bool) Type {
	if code == "" {
		code = "predicate"
	}
	return refineType{inner: inner, name: name, expected: expected, code: code, pred: pred}
}

func (t refineType) Check(v any) (any, Failures) {
	cv, fs := t.inner.Check(v)
	if len(fs) > 0 {
		return nil, fs
	}
	if !t.pred(cv) {
		return nil, Failures{{
			Expected: t.expected,
			Actual:   describe(v),
			Code:     t.code,
			Message:  fmt.Sprintf("%s rejected the value", t.name),
		}}
	}
	return cv, nil
}

type narrowType struct {
	inner Type
	name  string
	unmet func(v any) []string
}

// Narrow narrows inner with a rule set that can fail several ways at once.
// unmet returns the prose expectations the value does not satisfy; when more
// than one rule fails they are reported as a single compound failure joined
// by Delimiter, matching how simultaneous rule violations surface to
// formatters.
func Narrow(inner Type, name string, unmet func(v any) []string) Type {
	return narrowType{inner: inner, name: name, unmet: unmet}
}

func (t narrowType) Check(v any) (any, Failures) {
	cv, fs := t.inner.Check(v)
	if len(fs) > 0 {
		return nil, fs
	}
	missing := t.unmet(cv)
	if len(missing) == 0 {
		return cv, nil
	}
	return nil, Failures{{
		Expected: strings.Join(missing, Delimiter),
		Actual:   describe(v),
		Code:     "predicate",
		Message:  fmt.Sprintf("%s rejected the value", t.name),
	}}
}

// ---- validator output translation ----

func invalidType(expected string, got any) RawFailure {
	return RawFailure{Expected: expected, Actual: describe(got), Code: "invalid_type"}
}

func varFailures(err error, k kind, got any) Failures {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Failures{{Expected: "a valid value", Actual: describe(got), Code: "predicate", Message: err.Error()}}
	}
	out := make(Failures, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, tagFailure(fe.Tag(), fe.Param(), k, got))
	}
	return out
}

// tagPhrases maps validator tags whose meaning is a named format onto the
// prose and classification the formatter layer expects. Tags absent from this
// table fall back to a generic phrasing carrying the tag as the engine code.
var tagPhrases = map[string]struct {
	expected string
	code     string
}{
	"required":                 {"a value", "required"},
	"email":                    {"a valid email address", "email"},
	"url":                      {"a valid url", "url"},
	"http_url":                 {"a valid url", "url"},
	"uuid":                     {"a valid uuid", "uuid"},
	"uuid4":                    {"a valid uuid", "uuid"},
	"datetime":                 {"a valid date", "datetime"},
	"json":                     {"valid json", "json"},
	"base64":                   {"a valid base64 string", "base64"},
	"hexadecimal":              {"a valid hex string", "hexadecimal"},
	"credit_card":              {"a valid credit card number", "credit_card"},
	"ip":                       {"a valid ip address", "ip"},
	"ip4_addr":                 {"a valid ipv4 address", "ip4_addr"},
	"ipv4":                     {"a valid ipv4 address", "ipv4"},
	"ip6_addr":                 {"a valid ipv6 address", "ip6_addr"},
	"ipv6":                     {"a valid ipv6 address", "ipv6"},
	"mac":                      {"a valid mac address", "invalid_mac"},
	"hostname_rfc1123":         {"a valid hostname", "invalid_hostname"},
	"fqdn":                     {"a valid hostname", "invalid_hostname"},
	"bic":                      {"a valid bic code", "invalid_bic"},
	"iso4217":                  {"a valid currency code", "invalid_currency"},
	"e164":                     {"a valid phone number", "invalid_phone"},
	"ssn":                      {"a valid social security number", "invalid_ssn"},
	"postcode_iso3166_alpha2":  {"a valid postal code", "invalid_postal_code"},
	"boolean":                  {"a boolean", "invalid_type"},
}

func tagFailure(tag, param string, k kind, got any) RawFailure {
	if p, ok := tagPhrases[tag]; ok {
		return RawFailure{Expected: p.expected, Actual: describe(got), Code: p.code}
	}
	switch tag {
	case "min", "gte":
		return boundFailure("at least", tag, param, k, got)
	case "max", "lte":
		return boundFailure("at most", tag, param, k, got)
	case "gt":
		if param == "0" && k == kindNumber {
			return RawFailure{Expected: "a positive number", Actual: describe(got), Code: "not_positive"}
		}
		return boundFailure("more than", tag, param, k, got)
	case "lt":
		if param == "0" && k == kindNumber {
			return RawFailure{Expected: "a negative number", Actual: describe(got), Code: "not_negative"}
		}
		return boundFailure("less than", tag, param, k, got)
	case "len":
		code := "string_length"
		unit := "characters"
		if k == kindArray {
			code = "array_length"
			unit = "items"
		}
		return RawFailure{
			Expected: fmt.Sprintf("exactly %s %s", param, unit),
			Actual:   describe(got),
			Code:     code,
			Rule:     numericRule(param),
		}
	}
	return RawFailure{
		Expected: fmt.Sprintf("a value satisfying %q", tag),
		Actual:   describe(got),
		Code:     tag,
	}
}

func boundFailure(phrase, tag, param string, k kind, got any) RawFailure {
	expected := fmt.Sprintf("%s %s", phrase, param)
	if k == kindString {
		expected += " characters"
	}
	return RawFailure{
		Expected: expected,
		Actual:   describe(got),
		Code:     tag,
		Rule:     numericRule(param),
	}
}

func numericRule(param string) any {
	if n, err := strconv.Atoi(param); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(param, 64); err == nil {
		return f
	}
	return param
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	}
	return 0, false
}
