package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long: "Create the configuration directory and write config.yaml with the\n" +
			"effective settings. An existing config.yaml is left untouched.",
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	path := filepath.Join(a.configDir, configFileExt)
	written, err := writeConfigIfMissing(path, a.cfg)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	if written {
		a.logger.Info("config written", "path", path, "variant", a.cfg.Variant)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
	return nil
}
