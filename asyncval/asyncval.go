// Package asyncval wraps expensive external checks (uniqueness lookups,
// remote verifications) as validators producing normalized issues, with an
// injected cache guarding redundant calls. These are application-level
// compositions over the core contract, not part of the formatter itself.
package asyncval

import (
	"context"
	"fmt"
	"time"

	veriform "github.com/veriform/veriform"
	"github.com/veriform/veriform/cache"
)

// CheckFunc performs the underlying external check. ok reports whether the
// value is acceptable; err signals the dependency itself failed, which is
// not a validation outcome and is returned to the caller unwrapped.
type CheckFunc func(ctx context.Context, value string) (ok bool, err error)

// Validator runs a cached business-rule check.
type Validator struct {
	name  string
	check CheckFunc
	code  string
	cache cache.Cache
	ttl   time.Duration
}

// Option configures New.
type Option func(*Validator)

// WithCache installs the cache and per-entry TTL guarding the check.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(v *Validator) {
		v.cache = c
		v.ttl = ttl
	}
}

// WithCode overrides the issue code emitted on rejection (default "custom").
func WithCode(code string) Option {
	return func(v *Validator) { v.code = code }
}

// New builds a Validator named name around check. Without WithCache every
// call performs the underlying check.
func New(name string, check CheckFunc, opts ...Option) *Validator {
	v := &Validator{name: name, check: check, code: veriform.CodeCustom}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks value, consulting the cache first. Cached outcomes are
// reused whether they were acceptances or rejections. A dependency error is
// returned as-is and is never converted into an issue: the caller decides
// whether to degrade or fail the request.
func (v *Validator) Validate(ctx context.Context, value string) (veriform.Issues, error) {
	key := v.name + ":" + value
	if v.cache != nil {
		if hit, found := v.cache.Get(ctx, key); found {
			if ok, _ := hit.(bool); ok {
				return nil, nil
			}
			return v.reject(), nil
		}
	}
	ok, err := v.check(ctx, value)
	if err != nil {
		return nil, fmt.Errorf("asyncval: %s: %w", v.name, err)
	}
	if v.cache != nil {
		v.cache.Set(ctx, key, ok, v.ttl)
	}
	if ok {
		return nil, nil
	}
	return v.reject(), nil
}

func (v *Validator) reject() veriform.Issues {
	return veriform.Issues{{
		Code:   v.code,
		Params: map[string]any{"rule": v.name},
	}}
}
