package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sievebench/internal/cli"
	"github.com/hupe1980/sievebench/snapshot"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := cli.NewRootCmd("sievebench_test")
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// Small instance flags so CLI tests finish instantly.
func smallArgs(extra ...string) []string {
	args := []string{"--sieve-limit", "1000", "--prime-limit", "32"}
	return append(args, extra...)
}

func TestRootCmd_Run(t *testing.T) {
	for _, strategy := range []string{"mutex", "spinlock", "atomic", "unsafe"} {
		t.Run(strategy, func(t *testing.T) {
			stdout, _, err := execute(t, append(smallArgs(), "2", strategy)...)
			require.NoError(t, err)
			assert.Contains(t, stdout, "Selected version:")
			assert.Contains(t, stdout, "Running with 2 threads...")
			assert.Contains(t, stdout, "Execution time:")
		})
	}
}

func TestRootCmd_SelectedVersionLabel(t *testing.T) {
	stdout, _, err := execute(t, append(smallArgs(), "1", "spinlock")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Selected version: Spinlock")
}

func TestRootCmd_WrongArgCount(t *testing.T) {
	_, _, err := execute(t, "2")
	require.Error(t, err)

	_, _, err = execute(t, "2", "mutex", "surplus")
	require.Error(t, err)
}

func TestRootCmd_BadThreadCount(t *testing.T) {
	for _, count := range []string{"zero", "0", "-4", "1.5"} {
		_, _, err := execute(t, append(smallArgs(), count, "mutex")...)
		require.Error(t, err, "thread count %q should be rejected", count)
		assert.Contains(t, err.Error(), "thread count")
	}
}

func TestRootCmd_UnknownStrategy(t *testing.T) {
	_, _, err := execute(t, append(smallArgs(), "2", "rwmutex")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestRootCmd_Verify(t *testing.T) {
	stdout, _, err := execute(t, append(smallArgs(), "--verify", "3", "atomic")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Verification:")
	assert.Contains(t, stdout, "0 missing, 0 extra")
}

func TestRootCmd_Snapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marks.bin")

	stdout, _, err := execute(t, append(smallArgs(),
		"--snapshot", path, "--codec", "lz4", "2", "mutex")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Snapshot written to")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	m, err := snapshot.Read(f)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), m.Len())
	assert.True(t, m.Test(4), "4 should be marked composite")
	assert.False(t, m.Test(7), "7 is prime")
}

func TestRootCmd_BadFlags(t *testing.T) {
	_, _, err := execute(t, append(smallArgs(), "--codec", "gzip", "2", "mutex")...)
	require.Error(t, err)

	_, _, err = execute(t, append(smallArgs(), "--log-level", "loud", "2", "mutex")...)
	require.Error(t, err)

	_, _, err = execute(t, append(smallArgs(), "--log-format", "xml", "2", "mutex")...)
	require.Error(t, err)
}

func TestRootCmd_Version(t *testing.T) {
	stdout, stderr, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Regexp(t, `\d+\.\d+\.\d+`, stdout)
	assert.Empty(t, stderr)
}
