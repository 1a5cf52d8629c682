package sievebench

import "errors"

var (
	// ErrInvalidThreadCount is returned when the worker count is not positive.
	ErrInvalidThreadCount = errors.New("thread count must be positive")

	// ErrInvalidSieveLimit is returned when the sieve array size is not positive.
	ErrInvalidSieveLimit = errors.New("sieve limit must be positive")

	// ErrInvalidPrimeLimit is returned when the prime candidate bound is
	// below 2 or exceeds the sieve limit.
	ErrInvalidPrimeLimit = errors.New("prime limit must be at least 2 and no larger than the sieve limit")

	// ErrInvalidLockGranularity is returned when the cells-per-lock ratio is
	// not positive.
	ErrInvalidLockGranularity = errors.New("lock granularity must be positive")
)
