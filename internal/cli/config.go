package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/stockpile/internal/logging"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyLogLevel  = "log_level"
	cfgKeyLayoutDir = "layout_dir"

	envLogLevel = "STOCKPILE_LOG_LEVEL"
)

// loadConfig reads config.yaml from configDir using Viper. A missing
// config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, logging.DefaultLevel)
	if err := v.BindEnv(cfgKeyLogLevel, envLogLevel); err != nil {
		return nil, fmt.Errorf("bind %s: %w", envLogLevel, err)
	}
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
