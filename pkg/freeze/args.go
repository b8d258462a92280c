package freeze

// PackagerArgs assembles the packager's argument list. The order is fixed:
// mode flags first, then one --add-data pair per mapping in input order, the
// script path always last since the tool treats it as positional.
func PackagerArgs(cfg *BuildConfig) []string {
	args := make([]string, 0, 4+2*len(cfg.DataFiles))

	if cfg.Onefile {
		args = append(args, "--onefile")
	}
	args = append(args, "--noconfirm", "--console")

	for _, mapping := range cfg.DataFiles {
		args = append(args, "--add-data", mapping.String())
	}

	return append(args, cfg.ScriptPath)
}
