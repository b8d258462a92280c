package freeze

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// stampFileName records the last successfully installed package set so
// repeated builds can skip the install step.
const stampFileName = "pyfreeze.stamps"

func stampToken(cfg *BuildConfig) string {
	return cfg.Python + "#" + strings.Join(cfg.Packages, " ")
}

func readStamps(workDir string) (map[string]string, error) {
	stamps := map[string]string{}
	stampPath := filepath.Join(workDir, stampFileName)

	data, err := os.ReadFile(stampPath)
	if err != nil {
		if !eris.Is(err, os.ErrNotExist) {
			return nil, eris.Wrapf(err, "failed to read stamps file %s", stampPath)
		}
		return stamps, nil
	}

	err = json.Unmarshal(data, &stamps)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to parse JSON file %s", stampPath)
	}

	return stamps, nil
}

func writeStamps(workDir string, stamps map[string]string) error {
	stampPath := filepath.Join(workDir, stampFileName)
	data, err := json.Marshal(stamps)
	if err != nil {
		return eris.Wrap(err, "failed to serialize stamps")
	}

	err = os.WriteFile(stampPath, data, os.FileMode(0660))
	if err != nil {
		return eris.Wrapf(err, "failed to write %s", stampPath)
	}

	return nil
}

// InstallDeps brings the build-time packages up to date. The step is skipped
// when the stamp file shows the same package set was installed before, unless
// force is set. Stamp bookkeeping failures are logged but never fail a build.
func InstallDeps(ctx context.Context, cfg *BuildConfig, installer Installer, force bool) error {
	token := stampToken(cfg)
	stamps, err := readStamps(cfg.WorkDir)
	if err != nil {
		log(ctx).Warn().Msg(err.Error())
		stamps = map[string]string{}
	}

	if !force && stamps["packages"] == token {
		log(ctx).Info().Str("stage", "deps").Msg("packages unchanged, skipping install")
		return nil
	}

	err = installer.Install(ctx, cfg.Packages)
	if err != nil {
		return eris.Wrapf(ErrDependencyInstall, "could not install %s: %v",
			strings.Join(cfg.Packages, ", "), err)
	}

	stamps["packages"] = token
	err = writeStamps(cfg.WorkDir, stamps)
	if err != nil {
		log(ctx).Warn().Msg(err.Error())
	}

	return nil
}
