package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pyfreeze",
	Short: "Build orchestrator for frozen Python executables",
	Long: `pyfreeze drives the packaging of a Python script into a standalone
executable: it installs the build dependencies, cleans old build artifacts,
invokes the packaging tool, verifies its output and publishes the result
under a stable name.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
