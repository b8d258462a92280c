package cmd

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/partlookup/pyfreeze/pkg/freeze"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Removes artifacts left over from previous builds",
	Long: `Deletes the distribution directory, the intermediate build directory and
the stale packager spec file for the configured script.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadBuildConfig(cmd)
		if err != nil {
			return err
		}

		err = cfg.Finalize()
		if err != nil {
			return err
		}

		logger := zerolog.New(NewConsoleWriter())
		ctx := freeze.WithLogger(context.Background(), &logger)

		return freeze.Clean(ctx, freeze.DerivePaths(cfg))
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringP("config", "c", "", "path to the YAML build config (default: pyfreeze.yml if present)")
	cleanCmd.Flags().StringP("script", "s", "", "path of the script whose artifacts should be removed")
}
