package freeze

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// Category errors for the individual pipeline stages. Every stage failure is
// wrapped around one of these so callers can tell which stage aborted the
// build without parsing messages.
var (
	ErrSourceMissing     = eris.New("source script not found")
	ErrDependencyInstall = eris.New("dependency install failed")
	ErrPackagingTool     = eris.New("packaging tool failed")
	ErrArtifactMissing   = eris.New("expected build artifact not found")
	ErrPublish           = eris.New("artifact publish failed")
)

// ToolExitError reports a nonzero exit status from an external command.
type ToolExitError struct {
	Tool string
	Code int
}

func (e *ToolExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.Code)
}

// Is matches ErrPackagingTool so errors.Is can classify tool failures while
// errors.As still exposes the exit code.
func (e *ToolExitError) Is(target error) bool {
	return target == ErrPackagingTool
}
