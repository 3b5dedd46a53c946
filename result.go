package veriform

// Result is the discriminated outcome of a validation. Exactly one variant is
// populated: Data when Success is true, a non-empty Issues list otherwise.
// The shape is JSON-serializable so it can travel unchanged between services
// and frontend form code.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Issues  Issues `json:"issues,omitempty"`
}

// OK builds the success variant.
func OK[T any](v T) Result[T] {
	return Result[T]{Success: true, Data: v}
}

// Fail builds the failure variant. An empty issue list is promoted to a
// single invalid_type issue so the non-empty invariant holds even for buggy
// callers.
func Fail[T any](iss Issues) Result[T] {
	if len(iss) == 0 {
		iss = Issues{{Code: CodeInvalidType}}
	}
	return Result[T]{Success: false, Issues: iss}
}

// Err converts the failure variant into a *ValidationError, or nil for the
// success variant.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	return &ValidationError{Issues: r.Issues}
}
