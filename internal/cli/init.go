package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stockpile/internal/catalog"
	"github.com/mesh-intelligence/stockpile/internal/logging"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	LogLevel        string          `yaml:"log_level"`
	LayoutDir       string          `yaml:"layout_dir,omitempty"`
	DefaultMaxStack uint            `yaml:"default_max_stack"`
	StrictItems     bool            `yaml:"strict_items"`
	Items           []catalog.Entry `yaml:"items"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and a default config.yaml if none exists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(a.configDir, 0o755); err != nil {
				return sysError(fmt.Errorf("create config directory: %w", err))
			}

			path := filepath.Join(a.configDir, configFileExt)
			created, err := writeConfigIfMissing(path)
			if err != nil {
				return sysError(fmt.Errorf("write config: %w", err))
			}
			a.logger.Info("init finished", zap.String("path", path), zap.Bool("created", created))

			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
			}
			return nil
		},
	}
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	cfg := configFile{
		LogLevel:        logging.DefaultLevel,
		DefaultMaxStack: catalog.DefaultMaxStack,
		Items:           []catalog.Entry{},
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
