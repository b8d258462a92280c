package freeze

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// DataMapping describes a resource file that should be bundled into the
// executable. The packager expects mappings in "source;dest" form where dest
// is a path relative to the bundle root.
type DataMapping struct {
	Source string
	Dest   string
}

// ParseDataMapping parses the "source;dest" form used by the packager and the
// --add-data flag. A missing destination defaults to the bundle root.
func ParseDataMapping(raw string) (DataMapping, error) {
	if raw == "" {
		return DataMapping{}, eris.New("empty data mapping")
	}

	pos := strings.LastIndex(raw, ";")
	if pos == -1 {
		return DataMapping{Source: raw, Dest: "."}, nil
	}

	mapping := DataMapping{Source: raw[:pos], Dest: raw[pos+1:]}
	if mapping.Source == "" {
		return DataMapping{}, eris.Errorf("data mapping %q has no source", raw)
	}
	if mapping.Dest == "" {
		mapping.Dest = "."
	}

	return mapping, nil
}

func (m DataMapping) String() string {
	return m.Source + ";" + m.Dest
}

// UnmarshalYAML accepts the scalar "source;dest" form in config files.
func (m *DataMapping) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := ParseDataMapping(raw)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// Hooks are shell lines that run around the packaging step.
type Hooks struct {
	Pre  []string `yaml:"pre,omitempty"`
	Post []string `yaml:"post,omitempty"`
}

// BuildConfig carries everything a single build needs. It's constructed once
// per invocation from the config file and CLI flags and then consumed by Run.
type BuildConfig struct {
	ScriptPath    string        `yaml:"script"`
	OutputName    string        `yaml:"output,omitempty"`
	Onefile       bool          `yaml:"onefile"`
	DataFiles     []DataMapping `yaml:"data,omitempty"`
	Packages      []string      `yaml:"packages,omitempty"`
	PythonVersion string        `yaml:"pythonVersion,omitempty"`
	Python        string        `yaml:"python,omitempty"`
	Tool          string        `yaml:"tool,omitempty"`
	WorkDir       string        `yaml:"workdir,omitempty"`
	Timeout       time.Duration `yaml:"-"`
	Hooks         Hooks         `yaml:"hooks,omitempty"`
}

// BuildResult describes the published artifact.
type BuildResult struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// CommandRunner executes an external command with inherited stdio. A nonzero
// exit status is returned as *ToolExitError.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Installer makes the build-time packages available in the environment.
// Implementations must be idempotent.
type Installer interface {
	Install(ctx context.Context, packages []string) error
}
