package freeze

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScriptBase(t *testing.T) {
	require.Equal(t, "app", ScriptBase("app.py"))
	require.Equal(t, "rs_fr_lookup_v10", ScriptBase("scripts/rs_fr_lookup_v10.py"))
	require.Equal(t, "noext", ScriptBase("noext"))
}

func TestExpectedArtifact(t *testing.T) {
	expected := filepath.Join("work", "dist", "app"+ExeSuffix())
	require.Equal(t, expected, ExpectedArtifact("work", "app.py"))

	// the artifact name follows the script, not the configured output name
	expected = filepath.Join(".", "dist", "lookup"+ExeSuffix())
	require.Equal(t, expected, ExpectedArtifact(".", "some/dir/lookup.py"))
}

func TestDerivePaths(t *testing.T) {
	cfg := &BuildConfig{
		ScriptPath: "app.py",
		OutputName: "app.exe",
		WorkDir:    "work",
	}

	paths := DerivePaths(cfg)
	require.Equal(t, filepath.Join("work", "dist"), paths.DistDir)
	require.Equal(t, filepath.Join("work", "build"), paths.BuildDir)
	require.Equal(t, filepath.Join("work", "app.spec"), paths.SpecFile)
	require.Equal(t, filepath.Join("work", "dist", "app"+ExeSuffix()), paths.ExpectedExe)
	require.Equal(t, filepath.Join("work", "app.exe"), paths.FinalExe)
}

func TestDerivePathsDeterministic(t *testing.T) {
	cfg := &BuildConfig{ScriptPath: "app.py", OutputName: "app.exe", WorkDir: "."}

	first := DerivePaths(cfg)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, DerivePaths(cfg))
	}
}
