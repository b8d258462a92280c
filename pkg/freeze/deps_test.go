package freeze

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/require"
)

type countingInstaller struct {
	calls int
	err   error
}

func (i *countingInstaller) Install(ctx context.Context, packages []string) error {
	i.calls++
	return i.err
}

func depsTestConfig(t *testing.T) *BuildConfig {
	t.Helper()

	cfg := NewConfig()
	cfg.ScriptPath = "app.py"
	cfg.WorkDir = t.TempDir()
	require.NoError(t, cfg.Finalize())
	return cfg
}

func TestInstallDepsWritesStamp(t *testing.T) {
	cfg := depsTestConfig(t)
	installer := &countingInstaller{}

	require.NoError(t, InstallDeps(testContext(), cfg, installer, false))
	require.Equal(t, 1, installer.calls)

	_, err := os.Stat(filepath.Join(cfg.WorkDir, stampFileName))
	require.NoError(t, err)
}

func TestInstallDepsSkipsUnchangedPackages(t *testing.T) {
	cfg := depsTestConfig(t)
	installer := &countingInstaller{}

	require.NoError(t, InstallDeps(testContext(), cfg, installer, false))
	require.NoError(t, InstallDeps(testContext(), cfg, installer, false))
	require.Equal(t, 1, installer.calls)
}

func TestInstallDepsForceReinstalls(t *testing.T) {
	cfg := depsTestConfig(t)
	installer := &countingInstaller{}

	require.NoError(t, InstallDeps(testContext(), cfg, installer, false))
	require.NoError(t, InstallDeps(testContext(), cfg, installer, true))
	require.Equal(t, 2, installer.calls)
}

func TestInstallDepsReactsToPackageChanges(t *testing.T) {
	cfg := depsTestConfig(t)
	installer := &countingInstaller{}

	require.NoError(t, InstallDeps(testContext(), cfg, installer, false))

	cfg.Packages = append(cfg.Packages, "lxml")
	require.NoError(t, InstallDeps(testContext(), cfg, installer, false))
	require.Equal(t, 2, installer.calls)
}

func TestInstallDepsReportsFailures(t *testing.T) {
	cfg := depsTestConfig(t)
	installer := &countingInstaller{err: eris.New("no network")}

	err := InstallDeps(testContext(), cfg, installer, false)
	require.ErrorIs(t, err, ErrDependencyInstall)

	// a failed install must not leave a stamp behind
	_, statErr := os.Stat(filepath.Join(cfg.WorkDir, stampFileName))
	require.True(t, os.IsNotExist(statErr))
}
