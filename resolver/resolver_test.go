package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	veriform "github.com/veriform/veriform"
	"github.com/veriform/veriform/resolver"
)

func TestResolve(t *testing.T) {
	issues := veriform.Issues{
		{Path: veriform.Path{"email"}, Code: veriform.CodeInvalidEmail},
		{Path: veriform.Path{"items", 2, "price"}, Code: veriform.CodeNumberMin, Params: map[string]any{"min": 0}},
		{Code: veriform.CodeUnexpectedKey},
	}

	out := resolver.Resolve(issues)
	require.Len(t, out, 3)

	assert.Equal(t, veriform.CodeInvalidEmail, out["email"].Type)
	assert.Equal(t, "must be a valid email address", out["email"].Message)
	assert.Nil(t, out["email"].Types)

	assert.Equal(t, "must be at least 0", out["items.2.price"].Message)
	assert.Equal(t, veriform.CodeUnexpectedKey, out[resolver.RootField].Type)
}

func TestResolve_FirstErrorWins(t *testing.T) {
	issues := veriform.Issues{
		{Path: veriform.Path{"password"}, Code: veriform.CodeStringMin, Params: map[string]any{"min": 8}},
		{Path: veriform.Path{"password"}, Code: veriform.CodePasswordNoUppercase},
	}

	out := resolver.Resolve(issues)
	require.Len(t, out, 1)
	assert.Equal(t, veriform.CodeStringMin, out["password"].Type)
	assert.Equal(t, "must be at least 8 characters", out["password"].Message)
}

func TestResolve_AllErrors(t *testing.T) {
	issues := veriform.Issues{
		{Path: veriform.Path{"password"}, Code: veriform.CodeStringMin, Params: map[string]any{"min": 8}},
		{Path: veriform.Path{"password"}, Code: veriform.CodePasswordNoUppercase},
		{Path: veriform.Path{"password"}, Code: veriform.CodePasswordNoNumber},
	}

	out := resolver.Resolve(issues, resolver.Options{AllErrors: true})
	entry := out["password"]
	assert.Equal(t, veriform.CodeStringMin, entry.Type)
	require.Len(t, entry.Types, 3)
	assert.Equal(t, "password must contain an uppercase letter", entry.Types[veriform.CodePasswordNoUppercase])
}

type codeOnly struct{}

func (codeOnly) Message(code string, _ map[string]any) string { return code }

func TestResolve_CustomTranslator(t *testing.T) {
	issues := veriform.Issues{{Path: veriform.Path{"email"}, Code: veriform.CodeInvalidEmail}}
	out := resolver.Resolve(issues, resolver.Options{Translator: codeOnly{}})
	assert.Equal(t, veriform.CodeInvalidEmail, out["email"].Message)
}

func TestResolve_Empty(t *testing.T) {
	assert.Empty(t, resolver.Resolve(nil))
}
