package engine_test

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/veriform/veriform/engine"
)

func TestCompile_Strings(t *testing.T) {
	cases := []struct {
		def    string
		accept any
		reject any
	}{
		{"string", "hello", 42},
		{"number", float64(3), "three"},
		{"integer", float64(3), 3.5},
		{"boolean", true, "true"},
		{"string.email", "a@example.com", "nope"},
		{"string.uuid", "f47ac10b-58cc-4372-a567-0e02b2c3d479", "xxx"},
		{"string.url", "https://example.com", "not a url"},
		{"string.date", "2026-08-28", "tomorrow"},
		{"number>=0", float64(0), float64(-1)},
		{"number<=10", float64(10), float64(11)},
		{"string>=3", "abc", "ab"},
		{"integer>0", float64(1), float64(0)},
	}
	for _, tc := range cases {
		t.Run(tc.def, func(t *testing.T) {
			typ, err := engine.Compile(tc.def)
			if err != nil {
				t.Fatalf("compile %q: %v", tc.def, err)
			}
			if _, fs := typ.Check(tc.accept); len(fs) != 0 {
				t.Fatalf("%q must accept %v, got %v", tc.def, tc.accept, fs)
			}
			if _, fs := typ.Check(tc.reject); len(fs) == 0 {
				t.Fatalf("%q must reject %v", tc.def, tc.reject)
			}
		})
	}
}

func TestCompile_Shape(t *testing.T) {
	typ, err := engine.Compile(map[string]any{
		"email": "string.email",
		"age?":  "number>=0",
		"tags":  []any{"string"},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	v, fs := typ.Check(map[string]any{
		"email": "a@example.com",
		"tags":  []any{"go", "validation"},
	})
	if len(fs) != 0 {
		t.Fatalf("unexpected failures: %v", fs)
	}
	m := v.(map[string]any)
	if !reflect.DeepEqual(m["tags"], []any{"go", "validation"}) {
		t.Fatalf("unexpected tags %v", m["tags"])
	}

	_, fs = typ.Check(map[string]any{"email": "a@example.com", "tags": []any{1}})
	if len(fs) != 1 || !reflect.DeepEqual(fs[0].Path, []any{"tags", 0}) {
		t.Fatalf("expected failure at tags[0], got %+v", fs)
	}
}

func TestCompile_Regex(t *testing.T) {
	typ, err := engine.Compile(regexp.MustCompile(`^[A-Z]{3}$`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, fs := typ.Check("USD"); len(fs) != 0 {
		t.Fatalf("unexpected failures: %v", fs)
	}
	if _, fs := typ.Check("usd"); len(fs) == 0 {
		t.Fatalf("expected rejection")
	}
}

func TestCompile_ConfigurationErrors(t *testing.T) {
	bad := []any{
		"string.unheard_of",
		"number>>3",
		"string>=abc",
		42,
		[]any{},
		[]any{"string", "number"},
		map[string]any{"?": "string"},
	}
	for _, def := range bad {
		if _, err := engine.Compile(def); err == nil {
			t.Fatalf("expected configuration error for %#v", def)
		}
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("MustCompile must panic on bad definitions")
		}
	}()
	engine.MustCompile("string.unheard_of")
}
