package freeze

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := zerolog.Nop()
	return WithLogger(context.Background(), &logger)
}

func TestCleanRemovesLeftovers(t *testing.T) {
	dir := t.TempDir()
	cfg := &BuildConfig{ScriptPath: "app.py", OutputName: "app.exe", WorkDir: dir}
	paths := DerivePaths(cfg)

	require.NoError(t, os.MkdirAll(filepath.Join(paths.DistDir, "nested"), 0770))
	require.NoError(t, os.WriteFile(filepath.Join(paths.DistDir, "nested", "stale"), []byte("old"), 0660))
	require.NoError(t, os.MkdirAll(paths.BuildDir, 0770))
	require.NoError(t, os.WriteFile(paths.SpecFile, []byte("# spec"), 0660))

	require.NoError(t, Clean(testContext(), paths))

	for _, item := range []string{paths.DistDir, paths.BuildDir, paths.SpecFile} {
		_, err := os.Stat(item)
		require.True(t, os.IsNotExist(err), "%s should be gone", item)
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := &BuildConfig{ScriptPath: "app.py", OutputName: "app.exe", WorkDir: dir}
	paths := DerivePaths(cfg)

	require.NoError(t, Clean(testContext(), paths))
	require.NoError(t, Clean(testContext(), paths))
}
