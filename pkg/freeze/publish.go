package freeze

import (
	"context"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/schollz/progressbar/v3"
)

func getProgressBar(length int64, desc string) *progressbar.ProgressBar {
	if os.Getenv("CI") == "true" {
		return progressbar.NewOptions64(length, progressbar.OptionSetVisibility(false))
	}

	return progressbar.DefaultBytes(length, desc)
}

// Verify checks that the packager produced the executable it was expected to
// produce. This is the only gate between the tool run and publishing.
func Verify(paths ArtifactPaths) error {
	_, err := os.Stat(paths.ExpectedExe)
	if err != nil {
		if eris.Is(err, os.ErrNotExist) {
			return eris.Wrapf(ErrArtifactMissing, "expected %s but the packager did not create it", paths.ExpectedExe)
		}
		return eris.Wrapf(err, "could not stat %s", paths.ExpectedExe)
	}

	return nil
}

// Publish copies the verified artifact to its final name, overwriting any
// previous build, and returns the published file's metadata.
func Publish(ctx context.Context, paths ArtifactPaths) (*BuildResult, error) {
	in, err := os.Open(paths.ExpectedExe)
	if err != nil {
		return nil, eris.Wrapf(ErrPublish, "could not open %s: %v", paths.ExpectedExe, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return nil, eris.Wrapf(ErrPublish, "could not stat %s: %v", paths.ExpectedExe, err)
	}

	out, err := os.OpenFile(paths.FinalExe, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode()|0700)
	if err != nil {
		return nil, eris.Wrapf(ErrPublish, "could not create %s: %v", paths.FinalExe, err)
	}

	bar := getProgressBar(info.Size(), "      publish")
	_, err = io.Copy(io.MultiWriter(out, bar), in)
	bar.Finish()
	if err != nil {
		out.Close()
		return nil, eris.Wrapf(ErrPublish, "failed to copy %s to %s: %v", paths.ExpectedExe, paths.FinalExe, err)
	}

	err = out.Close()
	if err != nil {
		return nil, eris.Wrapf(ErrPublish, "failed to finish writing %s: %v", paths.FinalExe, err)
	}

	final, err := os.Stat(paths.FinalExe)
	if err != nil {
		return nil, eris.Wrapf(ErrPublish, "could not stat %s: %v", paths.FinalExe, err)
	}

	return &BuildResult{
		Path:    paths.FinalExe,
		Name:    final.Name(),
		Size:    final.Size(),
		ModTime: final.ModTime(),
	}, nil
}
