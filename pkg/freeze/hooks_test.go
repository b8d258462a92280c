package freeze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunHooksNoop(t *testing.T) {
	require.NoError(t, RunHooks(testContext(), "pre-build", t.TempDir(), nil))
}

func TestRunHooksRunsInDir(t *testing.T) {
	dir := t.TempDir()

	err := RunHooks(testContext(), "pre-build", dir, []string{"echo hello > marker.txt"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "marker.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(data))
}

func TestRunHooksStopsOnFailure(t *testing.T) {
	dir := t.TempDir()

	err := RunHooks(testContext(), "pre-build", dir, []string{
		"false",
		"echo too-late > after.txt",
	})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "after.txt"))
	require.True(t, os.IsNotExist(statErr))
}

func TestRunHooksParseError(t *testing.T) {
	err := RunHooks(testContext(), "pre-build", t.TempDir(), []string{"if then fi"})
	require.Error(t, err)
}
