package asyncval_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	veriform "github.com/veriform/veriform"
	"github.com/veriform/veriform/asyncval"
	"github.com/veriform/veriform/cache"
)

func TestValidator_NoCache(t *testing.T) {
	ctx := context.Background()
	calls := 0
	v := asyncval.New("username_available", func(ctx context.Context, value string) (bool, error) {
		calls++
		return value != "taken", nil
	})

	iss, err := v.Validate(ctx, "free")
	require.NoError(t, err)
	assert.Nil(t, iss)

	iss, err = v.Validate(ctx, "taken")
	require.NoError(t, err)
	require.Len(t, iss, 1)
	assert.Equal(t, veriform.CodeCustom, iss[0].Code)
	assert.Equal(t, "username_available", iss[0].Params["rule"])
	assert.Equal(t, 2, calls, "without a cache every call checks")
}

func TestValidator_CachesBothOutcomes(t *testing.T) {
	ctx := context.Background()
	calls := 0
	v := asyncval.New("username_available",
		func(ctx context.Context, value string) (bool, error) {
			calls++
			return value != "taken", nil
		},
		asyncval.WithCache(cache.NewMemory(10), time.Minute),
	)

	for i := 0; i < 3; i++ {
		iss, err := v.Validate(ctx, "free")
		require.NoError(t, err)
		assert.Nil(t, iss)
	}
	for i := 0; i < 3; i++ {
		iss, err := v.Validate(ctx, "taken")
		require.NoError(t, err)
		assert.Len(t, iss, 1, "rejections are cached too")
	}
	assert.Equal(t, 2, calls, "one underlying check per distinct value")
}

func TestValidator_CustomCode(t *testing.T) {
	ctx := context.Background()
	v := asyncval.New("email_unique",
		func(ctx context.Context, value string) (bool, error) { return false, nil },
		asyncval.WithCode("email_taken"),
	)

	iss, err := v.Validate(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, iss, 1)
	assert.Equal(t, "email_taken", iss[0].Code)
}

func TestValidator_DependencyError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("service unavailable")
	calls := 0
	v := asyncval.New("remote",
		func(ctx context.Context, value string) (bool, error) {
			calls++
			return false, boom
		},
		asyncval.WithCache(cache.NewMemory(10), time.Minute),
	)

	iss, err := v.Validate(ctx, "x")
	require.ErrorIs(t, err, boom)
	assert.Nil(t, iss, "dependency outages are not validation outcomes")

	// Errors are never cached; the next call retries the dependency.
	_, _ = v.Validate(ctx, "x")
	assert.Equal(t, 2, calls)
}
