package freeze

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// DefaultConfigName is looked up in the working directory when no config file
// is passed explicitly.
const DefaultConfigName = "pyfreeze.yml"

// DefaultPackages are installed before every build unless the config lists
// its own set. The packager itself must always be part of this list.
var DefaultPackages = []string{"pyinstaller", "requests", "beautifulsoup4", "pandas", "certifi"}

var knownScriptExts = []string{".py", ".pyw"}

// NewConfig returns a BuildConfig with all defaults applied.
func NewConfig() *BuildConfig {
	return &BuildConfig{
		Onefile:       true,
		Python:        "python",
		PythonVersion: "3.10",
		Tool:          "pyinstaller",
		WorkDir:       ".",
	}
}

// LoadConfig reads the given YAML file on top of the defaults. An empty path
// falls back to DefaultConfigName if that file exists; running without any
// config file is fine as long as the script is set through flags.
func LoadConfig(path string) (*BuildConfig, error) {
	cfg := NewConfig()

	if path == "" {
		if _, err := os.Stat(DefaultConfigName); err != nil {
			if !eris.Is(err, os.ErrNotExist) {
				return nil, eris.Wrapf(err, "failed to check %s", DefaultConfigName)
			}
			return cfg, nil
		}
		path = DefaultConfigName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "could not open file %s", path)
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to parse %s", path)
	}

	return cfg, nil
}

// Finalize fills derived defaults and checks the parts of the config that can
// be validated without touching the filesystem.
func (c *BuildConfig) Finalize() error {
	if c.ScriptPath == "" {
		return eris.New("no script configured; pass --script or set script in the config file")
	}

	ext := strings.ToLower(filepath.Ext(c.ScriptPath))
	known := false
	for _, candidate := range knownScriptExts {
		if ext == candidate {
			known = true
			break
		}
	}
	if !known {
		return eris.Errorf("%s does not look like a script (expected one of %s)",
			c.ScriptPath, strings.Join(knownScriptExts, ", "))
	}

	if c.WorkDir == "" {
		c.WorkDir = "."
	}
	if c.OutputName == "" {
		c.OutputName = ScriptBase(c.ScriptPath) + ExeSuffix()
	}
	if strings.ContainsAny(c.OutputName, `/\`) {
		return eris.Errorf("output name %s must be a plain file name", c.OutputName)
	}
	if c.Python == "" {
		c.Python = "python"
	}
	if c.Tool == "" {
		c.Tool = "pyinstaller"
	}
	if len(c.Packages) == 0 {
		c.Packages = append([]string{}, DefaultPackages...)
	}

	return nil
}
