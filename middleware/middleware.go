// Package middleware translates the validation contract into net/http
// request handling: request bodies are parsed against a schema, failures
// become a normalized 400 response, and accepted values travel to the
// handler through the request context. The middleware is a plain
// func(http.Handler) http.Handler and mounts on any chi-compatible router.
package middleware

import (
	"context"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"

	veriform "github.com/veriform/veriform"
)

// ctxKeyValidated is the context key for the accepted request body.
type ctxKeyValidated struct{}

// validated boxes the accepted value so a stored nil (a valid null body)
// stays distinguishable from the key being absent.
type validated struct{ value any }

// ContextWithValidated attaches an accepted value to the context.
func ContextWithValidated(ctx context.Context, v any) context.Context {
	return context.WithValue(ctx, ctxKeyValidated{}, validated{value: v})
}

// ValidatedFromContext retrieves the accepted value stored by ValidateJSON.
// ok reports whether the middleware ran, even when the accepted value is nil.
func ValidatedFromContext(ctx context.Context) (any, bool) {
	box, ok := ctx.Value(ctxKeyValidated{}).(validated)
	return box.value, ok
}

// ErrorHandler lets a route override the default 400 response. It receives
// the normalized issues plus the native request/response pair and must write
// the full response itself.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, issues veriform.Issues)

// Options configures ValidateJSON.
type Options struct {
	ErrorHandler ErrorHandler
}

// errorBody is the normalized HTTP error payload.
type errorBody struct {
	Success bool        `json:"success"`
	Error   errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Issues  veriform.Issues `json:"issues"`
}

// ValidateJSON parses the request body as JSON and validates it against
// schema, which may be a wrapped *veriform.Schema or a raw engine.Type (the
// latter is wrapped with the default configuration). On success the accepted
// value is stored in the request context; on failure the error handler runs,
// defaulting to a 400 with the normalized body. An unusable schema argument
// is a configuration mistake and panics at mount time.
func ValidateJSON(schema any, opts ...Options) func(http.Handler) http.Handler {
	sp, ok := veriform.AsSafeParser(schema)
	if !ok {
		panic(fmt.Sprintf("middleware: schema must be a veriform schema or engine type, got %T", schema))
	}
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				respond(w, r, opt, veriform.Issues{{
					Code:   veriform.CodeInvalidJSON,
					Params: map[string]any{"expected": "a json request body"},
				}})
				return
			}
			res := sp.SafeParseAny(r.Context(), body)
			if !res.Success {
				respond(w, r, opt, res.Issues)
				return
			}
			ctx := ContextWithValidated(r.Context(), res.Data)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respond(w http.ResponseWriter, r *http.Request, opt Options, issues veriform.Issues) {
	if opt.ErrorHandler != nil {
		opt.ErrorHandler(w, r, issues)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(errorBody{
		Success: false,
		Error: errorDetail{
			Code:    "VALIDATION_ERROR",
			Message: fmt.Sprintf("Validation failed: %d issue(s)", len(issues)),
			Issues:  issues,
		},
	})
}
