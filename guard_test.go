package veriform_test

import (
	"context"
	"testing"

	veriform "github.com/veriform/veriform"
	"github.com/veriform/veriform/engine"
)

// TestGuard_Discrimination: wrapped schemas expose the safe-parse
// capability, raw engine types do not, and AsSafeParser bridges both.
func TestGuard_Discrimination(t *testing.T) {
	ctx := context.Background()
	raw := engine.String("required,email")
	wrapped := veriform.New[string](raw)

	if !veriform.IsSchema(wrapped) {
		t.Fatalf("wrapped schema must be recognized")
	}
	if veriform.IsSchema(raw) {
		t.Fatalf("raw engine type must not be recognized as wrapped")
	}
	if veriform.IsSchema("nonsense") {
		t.Fatalf("arbitrary values must not be recognized")
	}

	sp, ok := veriform.AsSafeParser(wrapped)
	if !ok {
		t.Fatalf("wrapped schema must coerce")
	}
	if r := sp.SafeParseAny(ctx, "user@example.com"); !r.Success {
		t.Fatalf("expected success, got %v", r.Issues)
	}

	sp, ok = veriform.AsSafeParser(raw)
	if !ok {
		t.Fatalf("raw engine type must coerce via wrapping")
	}
	if r := sp.SafeParseAny(ctx, "nope"); r.Success || r.Issues[0].Code != veriform.CodeInvalidEmail {
		t.Fatalf("expected invalid_email, got %+v", r)
	}

	if _, ok := veriform.AsSafeParser(42); ok {
		t.Fatalf("non-schema values must not coerce")
	}
}

// TestGuard_ErasedIssuesMatch: type erasure preserves the issue list.
func TestGuard_ErasedIssuesMatch(t *testing.T) {
	ctx := context.Background()
	s := veriform.New[string](engine.String("required,uuid4"))
	direct := s.SafeParse(ctx, "not-a-uuid")
	erased := s.SafeParseAny(ctx, "not-a-uuid")
	if direct.Success || erased.Success {
		t.Fatalf("both paths must fail")
	}
	if len(direct.Issues) != len(erased.Issues) || direct.Issues[0].Code != erased.Issues[0].Code {
		t.Fatalf("issue lists diverge: %v vs %v", direct.Issues, erased.Issues)
	}
}
