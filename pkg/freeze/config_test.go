package freeze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDataMapping(t *testing.T) {
	mapping, err := ParseDataMapping("input.csv;.")
	require.NoError(t, err)
	require.Equal(t, DataMapping{Source: "input.csv", Dest: "."}, mapping)

	mapping, err = ParseDataMapping("input.csv")
	require.NoError(t, err)
	require.Equal(t, DataMapping{Source: "input.csv", Dest: "."}, mapping)

	mapping, err = ParseDataMapping("assets/logo.png;assets")
	require.NoError(t, err)
	require.Equal(t, "assets/logo.png;assets", mapping.String())

	_, err = ParseDataMapping("")
	require.Error(t, err)

	_, err = ParseDataMapping(";dest")
	require.Error(t, err)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	require.True(t, cfg.Onefile)
	require.Equal(t, "python", cfg.Python)
	require.Equal(t, "pyinstaller", cfg.Tool)
	require.Equal(t, "3.10", cfg.PythonVersion)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "pyfreeze.yml")
	content := `script: rs_fr_lookup_v10.py
output: rs_fr_lookup_v10.exe
onefile: false
data:
  - input.csv;.
packages:
  - pyinstaller
  - requests
hooks:
  pre:
    - echo hi
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0660))

	cfg, err := LoadConfig(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "rs_fr_lookup_v10.py", cfg.ScriptPath)
	require.Equal(t, "rs_fr_lookup_v10.exe", cfg.OutputName)
	require.False(t, cfg.Onefile)
	require.Equal(t, []DataMapping{{Source: "input.csv", Dest: "."}}, cfg.DataFiles)
	require.Equal(t, []string{"pyinstaller", "requests"}, cfg.Packages)
	require.Equal(t, []string{"echo hi"}, cfg.Hooks.Pre)
}

func TestFinalize(t *testing.T) {
	cfg := NewConfig()
	cfg.ScriptPath = "app.py"

	require.NoError(t, cfg.Finalize())
	require.Equal(t, "app"+ExeSuffix(), cfg.OutputName)
	require.Equal(t, DefaultPackages, cfg.Packages)
	require.Equal(t, ".", cfg.WorkDir)
}

func TestFinalizeRejectsMissingScript(t *testing.T) {
	cfg := NewConfig()
	require.Error(t, cfg.Finalize())
}

func TestFinalizeRejectsUnknownExtension(t *testing.T) {
	cfg := NewConfig()
	cfg.ScriptPath = "app.exe"
	require.Error(t, cfg.Finalize())
}

func TestFinalizeRejectsPathOutputName(t *testing.T) {
	cfg := NewConfig()
	cfg.ScriptPath = "app.py"
	cfg.OutputName = "sub/app.exe"
	require.Error(t, cfg.Finalize())
}
