package veriform

// Package veriform normalizes validation failures into a stable,
// consumer-friendly shape:
//
// - A closed error-code taxonomy (codes.go) so consumers key i18n tables by
//   code instead of parsing free text
// - The Issue Formatter, which maps raw engine failures onto {path, code,
//   params} issues: path composition, prose-based code inference, constraint
//   parameter extraction, and fan-out splitting of compound failures
// - A Schema wrapper exposing the Validate/Parse/SafeParse contract over any
//   engine type, with a discriminated Result and a typed ValidationError
//
// Design policy:
// - Keep the public contract in the root package; the engine boundary lives
//   under engine/, prebuilt validators under catalog/, and adapters under
//   middleware/ and resolver/.
// - All prose-matching heuristics live in DefaultFormatter; swapping the
//   underlying engine touches exactly one type.
//
// Typical usage:
//
//	s := veriform.MustDefine[map[string]any](map[string]any{
//		"email": "string.email",
//		"age":   "number>=0",
//	})
//	r := s.SafeParse(ctx, input)
//	if !r.Success {
//		render(r.Issues)
//	}
