package veriform

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/veriform/veriform/engine"
)

// Schema wraps an engine type descriptor behind the uniform
// validate/parse/safe-parse contract. Instances are immutable after
// construction and safe to share across concurrent validations: Validate is a
// pure function of its input.
type Schema[T any] struct {
	typ       engine.Type
	name      string
	desc      string
	formatter Formatter
	debug     *zap.Logger
}

// Option configures a Schema at construction time.
type Option func(*config)

type config struct {
	name         string
	desc         string
	formatter    Formatter
	debug        *zap.Logger
	stripUnknown bool
}

// WithName attaches a diagnostic name, surfaced in debug logs.
func WithName(name string) Option { return func(c *config) { c.name = name } }

// WithDescription attaches a human-readable description.
func WithDescription(desc string) Option { return func(c *config) { c.desc = desc } }

// WithFormatter replaces the DefaultFormatter with a custom implementation of
// the same Format contract.
func WithFormatter(f Formatter) Option { return func(c *config) { c.formatter = f } }

// WithDebug enables diagnostic logging of validation failures on the given
// logger. Nothing is logged on the success path.
func WithDebug(log *zap.Logger) Option { return func(c *config) { c.debug = log } }

// WithStripUnknown drops unknown object keys instead of rejecting them.
func WithStripUnknown() Option { return func(c *config) { c.stripUnknown = true } }

// New wraps an engine type. The zero configuration uses the
// DefaultFormatter, strict unknown-key handling, and no debug logging.
func New[T any](t engine.Type, opts ...Option) *Schema[T] {
	c := config{formatter: DefaultFormatter{}}
	for _, opt := range opts {
		opt(&c)
	}
	if c.stripUnknown {
		t = engine.StripUnknown(t)
	}
	return &Schema[T]{
		typ:       t,
		name:      c.name,
		desc:      c.desc,
		formatter: c.formatter,
		debug:     c.debug,
	}
}

// Define compiles a schema definition (see engine.Compile) and wraps it.
// Definition errors are configuration mistakes and surface here, never at
// validation time.
func Define[T any](def any, opts ...Option) (*Schema[T], error) {
	t, err := engine.Compile(def)
	if err != nil {
		return nil, err
	}
	return New[T](t, opts...), nil
}

// MustDefine is Define that panics on definition errors.
func MustDefine[T any](def any, opts ...Option) *Schema[T] {
	s, err := Define[T](def, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name reports the diagnostic name, possibly empty.
func (s *Schema[T]) Name() string { return s.name }

// Description reports the attached description, possibly empty.
func (s *Schema[T]) Description() string { return s.desc }

// Validate runs the underlying engine and normalizes any failures through
// the configured Formatter. The engine may coerce the value (for example
// trimming a string), so success data is the accepted value, not necessarily
// the input.
func (s *Schema[T]) Validate(ctx context.Context, v any) Result[T] {
	out, fails := s.typ.Check(v)
	if len(fails) > 0 {
		issues := s.formatter.Format(fails, nil)
		if s.debug != nil {
			s.debug.Debug("validation failed",
				zap.String("schema", s.name),
				zap.Int("issues", len(issues)),
				zap.Strings("codes", issues.Codes()),
			)
		}
		return Fail[T](issues)
	}
	if out == nil {
		// The engine accepted a null; a type assertion on a nil interface
		// never succeeds, so map it to the zero T instead of failing.
		var zero T
		return OK(zero)
	}
	data, ok := out.(T)
	if !ok {
		// The engine accepted the value but it does not narrow to T; this
		// is a schema/type parameter mismatch, not bad data.
		return Fail[T](Issues{{
			Code:   CodeNarrow,
			Params: map[string]any{"expected": fmt.Sprintf("%T", data)},
		}})
	}
	return OK(data)
}

// Parse validates v and returns the accepted value, or a *ValidationError
// carrying the full issue list.
func (s *Schema[T]) Parse(ctx context.Context, v any) (T, error) {
	r := s.Validate(ctx, v)
	if !r.Success {
		var zero T
		return zero, &ValidationError{Issues: r.Issues}
	}
	return r.Data, nil
}

// SafeParse is a pure alias of Validate. It exists so callers who think in
// "safe versus throwing" terms have a name for each side.
func (s *Schema[T]) SafeParse(ctx context.Context, v any) Result[T] {
	return s.Validate(ctx, v)
}
