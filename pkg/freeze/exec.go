package freeze

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/rotisserie/eris"
)

// ExecRunner runs commands through os/exec with stdio handed through to the
// caller's terminal so tool output stays visible.
type ExecRunner struct {
	Dir string
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ToolExitError{Tool: name, Code: exitErr.ExitCode()}
	}

	return eris.Wrapf(err, "failed to run %s", name)
}

// PipInstaller installs packages through the interpreter's pip module. The
// install-or-upgrade call is idempotent; pip resolves already-satisfied
// packages on its own.
type PipInstaller struct {
	Python string
	Runner CommandRunner
}

func (p PipInstaller) Install(ctx context.Context, packages []string) error {
	args := append([]string{"-m", "pip", "install", "--upgrade"}, packages...)
	return p.Runner.Run(ctx, p.Python, args...)
}
