package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/partlookup/pyfreeze/pkg"
	"github.com/partlookup/pyfreeze/pkg/freeze"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Freezes the configured script into a standalone executable",
	Long: `Runs the full pipeline: install build dependencies, clean previous build
artifacts, invoke the packaging tool, verify the produced executable and copy
it to its final name in the work directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadBuildConfig(cmd)
		if err != nil {
			return err
		}

		opts := freeze.Options{}
		opts.DryRun, err = cmd.Flags().GetBool("dry")
		if err != nil {
			return err
		}
		opts.Force, err = cmd.Flags().GetBool("force")
		if err != nil {
			return err
		}
		opts.SkipDeps, err = cmd.Flags().GetBool("skip-deps")
		if err != nil {
			return err
		}

		logger := zerolog.New(NewConsoleWriter())
		ctx := freeze.WithLogger(context.Background(), &logger)

		result, err := freeze.Run(ctx, cfg, opts)
		if err != nil {
			return err
		}

		if result != nil {
			pkg.PrintTask("Build finished")
			pkg.PrintSubtask(fmt.Sprintf("%s (%d bytes, modified %s)",
				result.Path, result.Size, result.ModTime.Format("2006-01-02 15:04:05")))
		}

		return nil
	},
}

// loadBuildConfig reads the YAML config (if any) and applies flag overrides
// on top. Only flags the user actually set override file values.
func loadBuildConfig(cmd *cobra.Command) (*freeze.BuildConfig, error) {
	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := freeze.LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("script") {
		cfg.ScriptPath, _ = flags.GetString("script")
	}
	if flags.Changed("output") {
		cfg.OutputName, _ = flags.GetString("output")
	}
	if flags.Changed("onefile") {
		cfg.Onefile, _ = flags.GetBool("onefile")
	}
	if flags.Changed("python") {
		cfg.PythonVersion, _ = flags.GetString("python")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("add-data") {
		raw, _ := flags.GetStringArray("add-data")
		cfg.DataFiles = cfg.DataFiles[:0]
		for _, item := range raw {
			mapping, err := freeze.ParseDataMapping(item)
			if err != nil {
				return nil, err
			}
			cfg.DataFiles = append(cfg.DataFiles, mapping)
		}
	}

	return cfg, nil
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("config", "c", "", "path to the YAML build config (default: pyfreeze.yml if present)")
	buildCmd.Flags().StringP("script", "s", "", "path of the script to freeze")
	buildCmd.Flags().StringP("output", "o", "", "name of the final executable (default: script name)")
	buildCmd.Flags().Bool("onefile", true, "produce a single executable instead of a folder")
	buildCmd.Flags().StringArray("add-data", nil, "bundle a resource file, \"source;dest\" form (repeatable)")
	buildCmd.Flags().String("python", "3.10", "targeted Python version (informational)")
	buildCmd.Flags().Duration("timeout", 0, "abort the packaging tool after this duration (0 = no limit)")
	buildCmd.Flags().Bool("skip-deps", false, "skip the dependency install step")
	buildCmd.Flags().BoolP("dry", "n", false, "dry run; only print the packager command, don't execute anything")
	buildCmd.Flags().BoolP("force", "f", false, "reinstall dependencies even if they appear up to date")
}
