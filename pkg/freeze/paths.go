package freeze

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Directory and file names the packager is known to use. The whole output
// layout assumption lives in this file so it can be adjusted in one place if
// the tool ever changes its conventions.
const (
	distDirName  = "dist"
	buildDirName = "build"
	specFileExt  = ".spec"
)

// ArtifactPaths contains every path the pipeline touches, all derived
// deterministically from a BuildConfig.
type ArtifactPaths struct {
	DistDir     string
	BuildDir    string
	SpecFile    string
	ExpectedExe string
	FinalExe    string
}

// ExeSuffix returns the executable suffix for the host platform.
func ExeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}

// ScriptBase returns the script's file name without directory or extension.
func ScriptBase(scriptPath string) string {
	base := filepath.Base(scriptPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ExpectedArtifact returns the path where the packager will place the frozen
// executable: the dist directory joined with the script's base name, source
// extension replaced by the platform suffix.
func ExpectedArtifact(workDir, scriptPath string) string {
	return filepath.Join(workDir, distDirName, ScriptBase(scriptPath)+ExeSuffix())
}

// DerivePaths computes all artifact paths for the given config.
func DerivePaths(cfg *BuildConfig) ArtifactPaths {
	base := ScriptBase(cfg.ScriptPath)

	return ArtifactPaths{
		DistDir:     filepath.Join(cfg.WorkDir, distDirName),
		BuildDir:    filepath.Join(cfg.WorkDir, buildDirName),
		SpecFile:    filepath.Join(cfg.WorkDir, base+specFileExt),
		ExpectedExe: ExpectedArtifact(cfg.WorkDir, cfg.ScriptPath),
		FinalExe:    filepath.Join(cfg.WorkDir, cfg.OutputName),
	}
}

// scriptOnDisk resolves the script path relative to the work directory.
func (c *BuildConfig) scriptOnDisk() string {
	if filepath.IsAbs(c.ScriptPath) {
		return c.ScriptPath
	}
	return filepath.Join(c.WorkDir, c.ScriptPath)
}
