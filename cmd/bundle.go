package cmd

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/partlookup/pyfreeze/pkg"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle archive_name content_directory",
	Short: "Packs a directory-mode build output into a distribution archive",
	Long: `Pass the name of the archive that should be generated and the directory
with the intended contents, usually the dist folder of a build that ran with
--onefile=false. The format is picked from the extension: .zip, .tar.gz,
.tar.xz or .tar.br.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return eris.New("Expected 2 arguments!")
		}

		return pkg.WriteBundle(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(bundleCmd)
}
