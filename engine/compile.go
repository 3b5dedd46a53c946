package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Compile turns a schema definition into a Type. Accepted definitions:
//
//   - a Type, returned unchanged;
//   - a *regexp.Regexp, matched against the full string;
//   - a definition string ("string", "string.email", "number>=0", ...);
//   - a map[string]any object shape where each value is itself a definition
//     and a trailing "?" on a key marks the field optional;
//   - a single-element []any describing an array of that element definition.
//
// Definition errors are configuration mistakes and are reported here, at
// construction time, never during validation.
func Compile(def any) (Type, error) {
	switch d := def.(type) {
	case Type:
		return d, nil
	case *regexp.Regexp:
		return Pattern(d), nil
	case string:
		return compileString(d)
	case map[string]any:
		return compileShape(d)
	case []any:
		if len(d) != 1 {
			return nil, fmt.Errorf("engine: array definition must have exactly one element, got %d", len(d))
		}
		elem, err := Compile(d[0])
		if err != nil {
			return nil, err
		}
		return Array(elem), nil
	}
	return nil, fmt.Errorf("engine: unsupported definition %T", def)
}

// MustCompile is Compile that panics on definition errors.
func MustCompile(def any) Type {
	t, err := Compile(def)
	if err != nil {
		panic(err)
	}
	return t
}

// stringFormats maps "string.<format>" definitions onto validator tags.
var stringFormats = map[string]string{
	"email":  "required,email",
	"url":    "required,url",
	"uuid":   "required,uuid4",
	"date":   "required,datetime=2006-01-02",
	"json":   "required,json",
	"base64": "required,base64",
	"hex":    "required,hexadecimal",
}

var boundRe = regexp.MustCompile(`^(string|number|integer)\s*(>=|<=|>|<)\s*(-?\d+(?:\.\d+)?)$`)

func compileString(def string) (Type, error) {
	def = strings.TrimSpace(def)
	switch def {
	case "string":
		return String(""), nil
	case "number":
		return Number(""), nil
	case "integer":
		return Integer(""), nil
	case "boolean":
		return Bool(), nil
	case "any", "unknown":
		return Any(), nil
	}
	if rest, ok := strings.CutPrefix(def, "string."); ok {
		tag, known := stringFormats[rest]
		if !known {
			return nil, fmt.Errorf("engine: unknown string format %q", rest)
		}
		return String(tag), nil
	}
	if m := boundRe.FindStringSubmatch(def); m != nil {
		return compileBound(m[1], m[2], m[3])
	}
	return nil, fmt.Errorf("engine: cannot compile definition %q", def)
}

func compileBound(base, op, bound string) (Type, error) {
	var tag string
	switch op {
	case ">=":
		tag = "min=" + bound
	case "<=":
		tag = "max=" + bound
	case ">":
		tag = "gt=" + bound
	case "<":
		tag = "lt=" + bound
	}
	switch base {
	case "string":
		if _, err := strconv.Atoi(bound); err != nil {
			return nil, fmt.Errorf("engine: string length bound must be an integer, got %q", bound)
		}
		return String(tag), nil
	case "number":
		return Number(tag), nil
	case "integer":
		return Integer(tag), nil
	}
	return nil, fmt.Errorf("engine: cannot compile bound on %q", base)
}

func compileShape(shape map[string]any) (Type, error) {
	fields := make(map[string]Field, len(shape))
	for key, def := range shape {
		optional := false
		if name, ok := strings.CutSuffix(key, "?"); ok {
			key = name
			optional = true
		}
		if key == "" {
			return nil, fmt.Errorf("engine: empty field name in object shape")
		}
		t, err := Compile(def)
		if err != nil {
			return nil, fmt.Errorf("engine: field %q: %w", key, err)
		}
		fields[key] = Field{Type: t, Optional: optional}
	}
	return ObjectShape(fields, UnknownStrict), nil
}
