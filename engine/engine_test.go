package engine_test

import (
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/veriform/veriform/engine"
)

func TestString_TagFailures(t *testing.T) {
	cases := []struct {
		name     string
		typ      engine.Type
		in       any
		wantCode string
		wantExp  string
	}{
		{"wrong type", engine.String(""), 42, "invalid_type", "a string"},
		{"required", engine.String("required"), "", "required", "a value"},
		{"email", engine.String("required,email"), "nope", "email", "a valid email address"},
		{"url", engine.String("required,url"), "notaurl", "url", "a valid url"},
		{"uuid", engine.String("required,uuid4"), "zzz", "uuid", "a valid uuid"},
		{"date", engine.String("required,datetime=2006-01-02"), "yesterday", "datetime", "a valid date"},
		{"json", engine.String("required,json"), "{broken", "json", "valid json"},
		{"base64", engine.String("required,base64"), "%%%", "base64", "a valid base64 string"},
		{"hex", engine.String("required,hexadecimal"), "xyz", "hexadecimal", "a valid hex string"},
		{"credit card", engine.String("required,credit_card"), "1234", "credit_card", "a valid credit card number"},
		{"ipv4", engine.String("required,ip4_addr"), "999.1.1.1", "ip4_addr", "a valid ipv4 address"},
		{"mac", engine.String("required,mac"), "nope", "invalid_mac", "a valid mac address"},
		{"hostname", engine.String("required,hostname_rfc1123"), "-bad-", "invalid_hostname", "a valid hostname"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, fs := tc.typ.Check(tc.in)
			if len(fs) != 1 {
				t.Fatalf("expected 1 failure, got %v", fs)
			}
			if fs[0].Code != tc.wantCode {
				t.Fatalf("expected code %q, got %q", tc.wantCode, fs[0].Code)
			}
			if fs[0].Expected != tc.wantExp {
				t.Fatalf("expected prose %q, got %q", tc.wantExp, fs[0].Expected)
			}
		})
	}
}

func TestString_Bounds(t *testing.T) {
	_, fs := engine.String("min=3").Check("ab")
	if len(fs) != 1 || fs[0].Expected != "at least 3 characters" || fs[0].Rule != 3 {
		t.Fatalf("unexpected min failure: %+v", fs)
	}
	_, fs = engine.String("max=2").Check("abc")
	if len(fs) != 1 || fs[0].Expected != "at most 2 characters" || fs[0].Rule != 2 {
		t.Fatalf("unexpected max failure: %+v", fs)
	}
	if _, fs := engine.String("min=2,max=4").Check("abc"); len(fs) != 0 {
		t.Fatalf("in-bounds value rejected: %v", fs)
	}
}

func TestTrimmedString(t *testing.T) {
	v, fs := engine.TrimmedString("min=3").Check("  abc  ")
	if len(fs) != 0 {
		t.Fatalf("unexpected failures: %v", fs)
	}
	if v != "abc" {
		t.Fatalf("expected trimmed value, got %q", v)
	}
	// The constraint applies to the trimmed value.
	if _, fs := engine.TrimmedString("min=3").Check("  a  "); len(fs) != 1 {
		t.Fatalf("expected min failure on trimmed value, got %v", fs)
	}
}

func TestNumber(t *testing.T) {
	if _, fs := engine.Number("min=0").Check(float64(3)); len(fs) != 0 {
		t.Fatalf("unexpected failures: %v", fs)
	}
	_, fs := engine.Number("min=0").Check(float64(-5))
	if len(fs) != 1 || fs[0].Expected != "at least 0" || fs[0].Rule != 0 {
		t.Fatalf("unexpected failure: %+v", fs)
	}
	_, fs = engine.Number("").Check("three")
	if len(fs) != 1 || fs[0].Code != "invalid_type" {
		t.Fatalf("expected invalid_type, got %v", fs)
	}
	_, fs = engine.Number("gt=0").Check(float64(0))
	if len(fs) != 1 || fs[0].Code != "not_positive" {
		t.Fatalf("expected not_positive, got %v", fs)
	}
}

func TestInteger(t *testing.T) {
	if _, fs := engine.Integer("").Check(float64(4)); len(fs) != 0 {
		t.Fatalf("whole float must pass: %v", fs)
	}
	_, fs := engine.Integer("").Check(4.5)
	if len(fs) != 1 || fs[0].Code != "not_integer" || fs[0].Expected != "an integer" {
		t.Fatalf("expected not_integer, got %v", fs)
	}
}

func TestObjectShape(t *testing.T) {
	shape := engine.ObjectShape(map[string]engine.Field{
		"name": {Type: engine.String("required")},
		"age":  {Type: engine.Number("min=0"), Optional: true},
	}, engine.UnknownStrict)

	v, fs := shape.Check(map[string]any{"name": "ada"})
	if len(fs) != 0 {
		t.Fatalf("unexpected failures: %v", fs)
	}
	if !reflect.DeepEqual(v, map[string]any{"name": "ada"}) {
		t.Fatalf("unexpected value %v", v)
	}

	_, fs = shape.Check(map[string]any{})
	if len(fs) != 1 || fs[0].Code != "required" || !reflect.DeepEqual(fs[0].Path, []any{"name"}) {
		t.Fatalf("expected required at [name], got %+v", fs)
	}

	_, fs = shape.Check(map[string]any{"name": "ada", "zzz": 1, "aaa": 2})
	if len(fs) != 2 {
		t.Fatalf("expected 2 unknown-key failures, got %v", fs)
	}
	// Unknown keys are reported in sorted order for deterministic output.
	if !reflect.DeepEqual(fs[0].Path, []any{"aaa"}) || !reflect.DeepEqual(fs[1].Path, []any{"zzz"}) {
		t.Fatalf("expected sorted unknown keys, got %+v", fs)
	}

	_, fs = shape.Check("not an object")
	if len(fs) != 1 || fs[0].Expected != "an object" {
		t.Fatalf("expected object type failure, got %v", fs)
	}
}

func TestObjectShape_UnknownPolicies(t *testing.T) {
	shape := engine.ObjectShape(map[string]engine.Field{
		"name": {Type: engine.String("required")},
	}, engine.UnknownPassthrough)
	v, fs := shape.Check(map[string]any{"name": "ada", "extra": true})
	if len(fs) != 0 {
		t.Fatalf("passthrough must accept unknown keys: %v", fs)
	}
	if v.(map[string]any)["extra"] != true {
		t.Fatalf("passthrough must keep unknown keys: %v", v)
	}

	stripped := engine.StripUnknown(engine.ObjectShape(map[string]engine.Field{
		"name": {Type: engine.String("required")},
	}, engine.UnknownStrict))
	v, fs = stripped.Check(map[string]any{"name": "ada", "extra": true})
	if len(fs) != 0 {
		t.Fatalf("strip must accept unknown keys: %v", fs)
	}
	if _, kept := v.(map[string]any)["extra"]; kept {
		t.Fatalf("strip must drop unknown keys: %v", v)
	}
}

func TestArray(t *testing.T) {
	arr := engine.Array(engine.String("required,email"))
	_, fs := arr.Check([]any{"a@example.com", "nope", "b@example.com"})
	if len(fs) != 1 {
		t.Fatalf("expected 1 failure, got %v", fs)
	}
	if !reflect.DeepEqual(fs[0].Path, []any{1}) {
		t.Fatalf("expected int index path, got %v", fs[0].Path)
	}

	bounded := engine.BoundedArray(engine.Any(), 2, 3)
	_, fs = bounded.Check([]any{"one"})
	if len(fs) != 1 || fs[0].Code != "array_min" || fs[0].Rule != 2 {
		t.Fatalf("expected array_min, got %+v", fs)
	}
	_, fs = bounded.Check([]any{1, 2, 3, 4})
	if len(fs) != 1 || fs[0].Code != "array_max" || fs[0].Rule != 3 {
		t.Fatalf("expected array_max, got %+v", fs)
	}
}

func TestUnion(t *testing.T) {
	u := engine.Union(engine.String("required,uuid4"), engine.Number("min=0"))
	if _, fs := u.Check(float64(5)); len(fs) != 0 {
		t.Fatalf("number branch must accept: %v", fs)
	}
	_, fs := u.Check(true)
	if len(fs) != 1 || fs[0].Code != "invalid_type" {
		t.Fatalf("expected single invalid_type failure, got %v", fs)
	}
	if !strings.Contains(fs[0].Expected, " or ") {
		t.Fatalf("union failure must list alternatives, got %q", fs[0].Expected)
	}
}

func TestRefine(t *testing.T) {
	even := engine.Refine(engine.Integer(""), "even", "an even number", "", func(v any) bool {
		return int64(v.(float64))%2 == 0
	})
	if _, fs := even.Check(float64(4)); len(fs) != 0 {
		t.Fatalf("unexpected failures: %v", fs)
	}
	_, fs := even.Check(float64(3))
	if len(fs) != 1 || fs[0].Code != "predicate" || fs[0].Expected != "an even number" {
		t.Fatalf("expected predicate failure, got %+v", fs)
	}

	coded := engine.Refine(engine.Integer(""), "port", "a valid port", "invalid_port", func(v any) bool { return false })
	_, fs = coded.Check(float64(99999))
	if fs[0].Code != "invalid_port" {
		t.Fatalf("expected code override, got %+v", fs)
	}
}

// TestNarrow_CompoundFailure: several simultaneously violated rules surface
// as one failure joined by the delimiter.
func TestNarrow_CompoundFailure(t *testing.T) {
	rules := engine.Narrow(engine.String("required"), "password", func(v any) []string {
		s := v.(string)
		var unmet []string
		if len(s) < 8 {
			unmet = append(unmet, "at least 8 characters")
		}
		if strings.ToLower(s) == s {
			unmet = append(unmet, "an uppercase letter")
		}
		return unmet
	})

	if _, fs := rules.Check("LongEnough"); len(fs) != 0 {
		t.Fatalf("unexpected failures: %v", fs)
	}

	_, fs := rules.Check("abc")
	if len(fs) != 1 {
		t.Fatalf("compound violations must be one failure, got %v", fs)
	}
	want := "at least 8 characters" + engine.Delimiter + "an uppercase letter"
	if fs[0].Expected != want {
		t.Fatalf("expected %q, got %q", want, fs[0].Expected)
	}
	if fs[0].Code != "predicate" {
		t.Fatalf("expected predicate code, got %q", fs[0].Code)
	}
}

func TestPattern(t *testing.T) {
	p := engine.Pattern(regexp.MustCompile(`^[A-Z]{3}$`))
	if _, fs := p.Check("ABC"); len(fs) != 0 {
		t.Fatalf("unexpected failures: %v", fs)
	}
	_, fs := p.Check("abc")
	if len(fs) != 1 || fs[0].Code != "string_pattern" {
		t.Fatalf("expected string_pattern, got %+v", fs)
	}
	if !strings.Contains(fs[0].Expected, "^[A-Z]{3}$") {
		t.Fatalf("expected prose to carry the pattern, got %q", fs[0].Expected)
	}
}

func TestFailures_Summary(t *testing.T) {
	fs := engine.Failures{
		{Path: []any{"user", "email"}, Expected: "a valid email address", Actual: `"nope"`},
		{Path: []any{"tags", 0}, Expected: "a string"},
	}
	sum := fs.Summary()
	if !strings.Contains(sum, "user.email must be a valid email address") {
		t.Fatalf("unexpected summary %q", sum)
	}
	if !strings.Contains(sum, `(was "nope")`) {
		t.Fatalf("summary must carry the actual value, got %q", sum)
	}
}
