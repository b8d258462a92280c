package freeze

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
)

// Clean removes leftovers from a previous run: the distribution directory,
// the intermediate build directory and the stale spec file. Each build has to
// start from an empty state or the artifact check could pass on old output.
func Clean(ctx context.Context, paths ArtifactPaths) error {
	for _, item := range []string{paths.DistDir, paths.BuildDir, paths.SpecFile} {
		_, err := os.Stat(item)
		if err != nil {
			if eris.Is(err, os.ErrNotExist) {
				continue
			}
			return eris.Wrapf(err, "could not stat %s", item)
		}

		log(ctx).Info().Str("stage", "clean").Msgf("removing %s", item)
		err = os.RemoveAll(item)
		if err != nil {
			return eris.Wrapf(err, "could not delete %s", item)
		}
	}

	return nil
}
