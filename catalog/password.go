package catalog

import (
	"fmt"
	"unicode"

	veriform "github.com/veriform/veriform"
	"github.com/veriform/veriform/engine"
)

// PasswordOptions configures the strong-password schema. The zero value is
// normalized to a minimum length of 8 with every character class required.
type PasswordOptions struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumber    bool
	RequireSpecial   bool
	// FailFast reports only the first violated rule instead of all of them.
	FailFast bool
}

// DefaultPasswordOptions are the options Password applies when given the
// zero value.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumber:    true,
		RequireSpecial:   true,
	}
}

// Password accepts a string satisfying the configured strength rules. A
// value violating several rules at once is reported by the engine as one
// compound failure, which the formatter fans out into one issue per rule;
// with FailFast only the first violated rule is reported.
func Password(opts PasswordOptions) *veriform.Schema[string] {
	if opts == (PasswordOptions{}) {
		opts = DefaultPasswordOptions()
	}
	if opts.MinLength <= 0 {
		opts.MinLength = 8
	}
	t := engine.Narrow(engine.String("required"), "password", func(v any) []string {
		return unmetPasswordRules(v.(string), opts)
	})
	return veriform.New[string](t, veriform.WithName("password"))
}

// StrongPassword is Password with the default rule set.
func StrongPassword() *veriform.Schema[string] {
	return Password(DefaultPasswordOptions())
}

func unmetPasswordRules(s string, opts PasswordOptions) []string {
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	rules := []struct {
		failed   bool
		expected string
	}{
		{len(s) < opts.MinLength, fmt.Sprintf("at least %d characters", opts.MinLength)},
		{opts.RequireUppercase && !upper, "an uppercase letter"},
		{opts.RequireLowercase && !lower, "a lowercase letter"},
		{opts.RequireNumber && !digit, "a number"},
		{opts.RequireSpecial && !special, "a special character"},
	}
	var unmet []string
	for _, rule := range rules {
		if !rule.failed {
			continue
		}
		unmet = append(unmet, rule.expected)
		if opts.FailFast {
			break
		}
	}
	return unmet
}

// passwordMatch rejects an object whose two password fields differ. The
// failure is attached to the confirmation field.
type passwordMatch struct {
	inner   engine.Type
	field   string
	confirm string
}

// WithPasswordMatch wraps an object type with a cross-field check that the
// confirmation field equals the password field.
func WithPasswordMatch(inner engine.Type, field, confirm string) engine.Type {
	return passwordMatch{inner: inner, field: field, confirm: confirm}
}

func (t passwordMatch) Check(v any) (any, engine.Failures) {
	cv, fs := t.inner.Check(v)
	if len(fs) > 0 {
		return nil, fs
	}
	m, ok := cv.(map[string]any)
	if !ok {
		return cv, nil
	}
	if m[t.field] != m[t.confirm] {
		return nil, engine.Failures{{
			Path:     []any{t.confirm},
			Expected: "both passwords to match",
			Code:     "passwords_dont_match",
		}}
	}
	return cv, nil
}
