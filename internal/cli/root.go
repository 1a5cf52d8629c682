// Package cli implements the sievebench command line interface.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/sievebench"
	"github.com/hupe1980/sievebench/sieve"
	"github.com/hupe1980/sievebench/snapshot"
	"github.com/hupe1980/sievebench/verify"
)

const version = "0.1.0"

const (
	shortDesc = "Parallel sieve synchronization benchmark"
	longDesc  = `Benchmark a parallel Sieve of Eratosthenes under four synchronization
disciplines. All workers share one composite-marker array; the strategy
selects how concurrent access to it is mediated:

  mutex      lock table of sync.Mutex, one lock per block of cells
  spinlock   same lock table over a busy-wait test-and-set lock
  atomic     per-cell atomic loads and stores
  unsafe     plain loads and stores (a deliberate data race)

The unsafe strategy demonstrates unsynchronized shared mutation; its result
may be incorrect and differs between runs. That is the point.`
)

// NewRootCmd builds the sievebench root command.
func NewRootCmd(name string) *cobra.Command {
	var (
		sieveLimit      int64
		primeLimit      int64
		lockGranularity int64
		runVerify       bool
		snapshotPath    string
		codecName       string
		logLevel        string
		logFormat       string
		progressEvery   time.Duration
	)

	cmd := &cobra.Command{
		Use:           name + " <thread_count> <strategy>",
		Short:         shortDesc,
		Long:          longDesc,
		Args:          cobra.ExactArgs(2),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			threads, err := strconv.Atoi(args[0])
			if err != nil || threads < 1 {
				return fmt.Errorf("invalid thread count %q: expected a positive integer", args[0])
			}

			kind, err := sieve.ParseKind(args[1])
			if err != nil {
				return fmt.Errorf("%w (expected one of: mutex, spinlock, atomic, unsafe)", err)
			}

			codec, err := snapshot.ParseCodec(codecName)
			if err != nil {
				return err
			}

			handler, err := createHandler(cmd.ErrOrStderr(), logLevel, logFormat)
			if err != nil {
				return err
			}
			logger := sievebench.NewLogger(handler)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Selected version: %s\n", kind.Title())
			fmt.Fprintf(out, "Running with %d threads...\n", threads)

			b, err := sievebench.New(kind).
				Threads(threads).
				SieveLimit(sieveLimit).
				PrimeLimit(primeLimit).
				LockGranularity(lockGranularity).
				Logger(logger).
				ProgressEvery(progressEvery).
				Build()
			if err != nil {
				return err
			}

			result, err := b.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Execution time: %g seconds\n", result.Seconds())

			if snapshotPath != "" {
				if err := writeSnapshot(snapshotPath, b.Strategy(), codec); err != nil {
					return err
				}
				fmt.Fprintf(out, "Snapshot written to %s (%s)\n", snapshotPath, codec)
			}

			if runVerify {
				report := verify.Run(b.Strategy(), primeLimit)
				fmt.Fprintf(out, "Verification: %d composites, %d missing, %d extra\n",
					report.Composites, report.Missing, report.Extra)
				if !report.Clean() {
					if kind != sieve.KindUnsafe {
						return fmt.Errorf("%s result diverged from reference (missing=%d extra=%d, first mismatches %v)",
							kind, report.Missing, report.Extra, report.Samples)
					}
					// Divergence is tolerated for unsafe; it is the
					// phenomenon under study.
					fmt.Fprintf(out, "Note: unsafe result diverged from reference, first mismatches %v\n",
						report.Samples)
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&sieveLimit, "sieve-limit", sieve.DefaultLimit, "sieve array size (composites are marked below this bound)")
	flags.Int64Var(&primeLimit, "prime-limit", sievebench.DefaultPrimeLimit, "exclusive upper bound of the scanned prime candidates")
	flags.Int64Var(&lockGranularity, "lock-granularity", sieve.DefaultLockGranularity, "cells per lock for the mutex and spinlock strategies")
	flags.BoolVar(&runVerify, "verify", false, "verify the result against a single-threaded reference run")
	flags.StringVar(&snapshotPath, "snapshot", "", "write the final mark array to this file")
	flags.StringVar(&codecName, "codec", "zstd", "snapshot compression codec (none, lz4, zstd)")
	flags.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	flags.DurationVar(&progressEvery, "progress", 0, "emit debug-level progress logs at this interval (0 disables)")

	return cmd
}

func writeSnapshot(path string, t sieve.Tester, codec snapshot.Codec) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := snapshot.Write(f, t, codec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
