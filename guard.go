package veriform

import (
	"context"

	"github.com/veriform/veriform/engine"
)

// SafeParser is the type-erased capability adapters use to discriminate a
// wrapped schema from a raw engine type: anything exposing a safe-parse shape
// is treated as already wrapped.
type SafeParser interface {
	SafeParseAny(ctx context.Context, v any) Result[any]
}

// SafeParseAny erases T so a Schema can cross adapter boundaries that cannot
// be generic.
func (s *Schema[T]) SafeParseAny(ctx context.Context, v any) Result[any] {
	r := s.Validate(ctx, v)
	if !r.Success {
		return Fail[any](r.Issues)
	}
	return OK[any](r.Data)
}

// IsSchema reports whether v carries the safe-parse capability, i.e. is a
// wrapped schema rather than a raw engine type.
func IsSchema(v any) bool {
	_, ok := v.(SafeParser)
	return ok
}

// AsSafeParser coerces v into a SafeParser. Wrapped schemas are returned
// as-is; raw engine types are wrapped on the spot with the default
// configuration. Anything else reports false.
func AsSafeParser(v any) (SafeParser, bool) {
	switch s := v.(type) {
	case SafeParser:
		return s, true
	case engine.Type:
		return New[any](s), true
	}
	return nil, false
}
