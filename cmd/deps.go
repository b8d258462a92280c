package cmd

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/partlookup/pyfreeze/pkg"
	"github.com/partlookup/pyfreeze/pkg/freeze"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Installs or upgrades the build dependencies",
	Long: `Installs the packages listed in the config (or the default set) through
pip. The result is recorded in a stamp file so unchanged package sets are
skipped on the next run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadBuildConfig(cmd)
		if err != nil {
			return err
		}

		// deps doesn't need a script; fill in a placeholder so the shared
		// config validation passes.
		if cfg.ScriptPath == "" {
			cfg.ScriptPath = "unused.py"
		}
		err = cfg.Finalize()
		if err != nil {
			return err
		}

		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return err
		}

		logger := zerolog.New(NewConsoleWriter())
		ctx := freeze.WithLogger(context.Background(), &logger)

		pkg.PrintTask("Installing build dependencies")
		runner := freeze.ExecRunner{Dir: cfg.WorkDir}
		installer := freeze.PipInstaller{Python: cfg.Python, Runner: runner}
		err = freeze.InstallDeps(ctx, cfg, installer, force)
		if err != nil {
			return err
		}

		pkg.PrintTask("Done")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(depsCmd)

	depsCmd.Flags().StringP("config", "c", "", "path to the YAML build config (default: pyfreeze.yml if present)")
	depsCmd.Flags().BoolP("force", "f", false, "reinstall even if the stamp file says nothing changed")
}
