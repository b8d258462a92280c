package freeze

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

func hookExecHandler(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		if len(args) > 0 {
			switch args[0] {
			case "mv", "rm", "mkdir":
				// always use our cross-platform implementation for these
				// operations to make sure they behave consistently
				args = append([]string{"pyfreeze"}, args...)
			}
		}

		return next(ctx, args)
	}
}

var defaultOpenHandler = interp.DefaultOpenHandler()

func hookOpenHandler(ctx context.Context, path string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	if path == "/dev/null" {
		path = os.DevNull
	}

	return defaultOpenHandler(ctx, path, flag, perm)
}

// RunHooks executes the given shell lines in the work directory. Lines run
// with -e semantics: the first failing command aborts the hook and the build.
func RunHooks(ctx context.Context, name, dir string, lines []string) error {
	if len(lines) == 0 {
		return nil
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.ExecHandlers(hookExecHandler),
		interp.OpenHandler(hookOpenHandler),
		interp.StdIO(nil, os.Stdout, os.Stderr),
		interp.Params("-e"),
	)
	if err != nil {
		return eris.Wrap(err, "failed to initialize hook runner")
	}

	parser := syntax.NewParser()
	for idx, line := range lines {
		file, err := parser.Parse(strings.NewReader(line), fmt.Sprintf("%s:%d", name, idx))
		if err != nil {
			return eris.Wrapf(err, "failed to parse hook command %s", line)
		}

		for _, stmt := range file.Stmts {
			log(ctx).Info().
				Str("stage", name).
				Bool("command", true).
				Msg(line)

			err = runner.Run(ctx, stmt)
			if err != nil {
				return eris.Wrapf(err, "hook command failed: %s", line)
			}

			if runner.Exited() {
				return nil
			}
		}
	}

	return nil
}
