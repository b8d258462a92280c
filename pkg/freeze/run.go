package freeze

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// Options controls a single Run invocation. Runner and Installer default to
// the real process-based implementations; tests substitute fakes.
type Options struct {
	Runner    CommandRunner
	Installer Installer
	DryRun    bool
	Force     bool
	SkipDeps  bool
}

// Run drives the whole pipeline: validate, install deps, clean the workspace,
// assemble the packager arguments, invoke the tool, verify the artifact and
// publish it under the configured name. Every step is fatal on error; there
// is no retry and no partial success.
func Run(ctx context.Context, cfg *BuildConfig, opts Options) (*BuildResult, error) {
	err := cfg.Finalize()
	if err != nil {
		return nil, err
	}

	if opts.Runner == nil {
		opts.Runner = ExecRunner{Dir: cfg.WorkDir}
	}
	if opts.Installer == nil {
		opts.Installer = PipInstaller{Python: cfg.Python, Runner: opts.Runner}
	}

	script := cfg.scriptOnDisk()
	_, err = os.Stat(script)
	if err != nil {
		if eris.Is(err, os.ErrNotExist) {
			return nil, eris.Wrapf(ErrSourceMissing, "no script at %s", script)
		}
		return nil, eris.Wrapf(err, "could not stat %s", script)
	}

	log(ctx).Info().
		Str("script", cfg.ScriptPath).
		Str("output", cfg.OutputName).
		Str("python", cfg.PythonVersion).
		Msg("starting build")

	if opts.SkipDeps {
		log(ctx).Info().Str("stage", "deps").Msg("install step skipped")
	} else if !opts.DryRun {
		err = InstallDeps(ctx, cfg, opts.Installer, opts.Force)
		if err != nil {
			return nil, err
		}
	}

	paths := DerivePaths(cfg)
	if !opts.DryRun {
		err = Clean(ctx, paths)
		if err != nil {
			return nil, err
		}
	}

	args := PackagerArgs(cfg)
	log(ctx).Info().
		Str("stage", "package").
		Bool("command", true).
		Msg(cfg.Tool + " " + strings.Join(args, " "))

	if opts.DryRun {
		return nil, nil
	}

	err = RunHooks(ctx, "pre-build", cfg.WorkDir, cfg.Hooks.Pre)
	if err != nil {
		return nil, err
	}

	toolCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		toolCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	err = opts.Runner.Run(toolCtx, cfg.Tool, args...)
	if err != nil {
		var exitErr *ToolExitError
		if errors.As(err, &exitErr) {
			return nil, eris.Wrapf(err, "packaging %s failed", cfg.ScriptPath)
		}
		return nil, eris.Wrapf(ErrPackagingTool, "failed to invoke %s: %v", cfg.Tool, err)
	}

	err = Verify(paths)
	if err != nil {
		return nil, err
	}

	result, err := Publish(ctx, paths)
	if err != nil {
		return nil, err
	}

	err = RunHooks(ctx, "post-build", cfg.WorkDir, cfg.Hooks.Post)
	if err != nil {
		return nil, err
	}

	log(ctx).Info().
		Str("artifact", result.Name).
		Int64("size", result.Size).
		Time("modified", result.ModTime).
		Msg("build complete")

	return result, nil
}
