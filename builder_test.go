package sievebench_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sievebench"
	"github.com/hupe1980/sievebench/sieve"
)

func TestBuilder_Defaults(t *testing.T) {
	// Defaults allocate the full 100M-cell array; just check that an
	// explicit small configuration builds.
	b, err := sievebench.New(sieve.KindMutex).
		SieveLimit(100).
		PrimeLimit(10).
		Build()
	require.NoError(t, err)
	assert.Equal(t, sieve.KindMutex, b.Strategy().Kind())
	assert.Equal(t, int64(100), b.Strategy().Len())
}

func TestBuilder_Validation(t *testing.T) {
	tests := []struct {
		name    string
		builder sievebench.Builder
		wantErr error
	}{
		{
			name:    "zero threads",
			builder: sievebench.New(sieve.KindMutex).SieveLimit(100).Threads(0),
			wantErr: sievebench.ErrInvalidThreadCount,
		},
		{
			name:    "negative threads",
			builder: sievebench.New(sieve.KindMutex).SieveLimit(100).Threads(-3),
			wantErr: sievebench.ErrInvalidThreadCount,
		},
		{
			name:    "zero sieve limit",
			builder: sievebench.New(sieve.KindAtomic).SieveLimit(0),
			wantErr: sievebench.ErrInvalidSieveLimit,
		},
		{
			name:    "prime limit below 2",
			builder: sievebench.New(sieve.KindAtomic).SieveLimit(100).PrimeLimit(1),
			wantErr: sievebench.ErrInvalidPrimeLimit,
		},
		{
			name:    "prime limit above sieve limit",
			builder: sievebench.New(sieve.KindAtomic).SieveLimit(100).PrimeLimit(200),
			wantErr: sievebench.ErrInvalidPrimeLimit,
		},
		{
			name:    "zero lock granularity",
			builder: sievebench.New(sieve.KindSpinlock).SieveLimit(100).PrimeLimit(10).LockGranularity(-1),
			wantErr: sievebench.ErrInvalidLockGranularity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, expected %v", err, tt.wantErr)
		})
	}
}

func TestBuilder_Immutable(t *testing.T) {
	base := sievebench.New(sieve.KindAtomic).SieveLimit(100).PrimeLimit(10)

	a := base.Threads(2)
	b := base.Threads(3)

	ba, err := a.Build()
	require.NoError(t, err)
	bb, err := b.Build()
	require.NoError(t, err)

	// Both derive from the same base without affecting each other.
	ra, err := ba.Run(context.Background())
	require.NoError(t, err)
	rb, err := bb.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, ra.Threads)
	assert.Equal(t, 3, rb.Threads)
}

func TestBuilder_ProgressEvery(t *testing.T) {
	b, err := sievebench.New(sieve.KindAtomic).
		SieveLimit(1000).
		PrimeLimit(32).
		ProgressEvery(time.Millisecond).
		Logger(sievebench.NoopLogger()).
		Build()
	require.NoError(t, err)

	_, err = b.Run(context.Background())
	require.NoError(t, err)
}
