package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/records/pkg/types"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// envPrefix scopes environment overrides, e.g. RECORDS_VARIANT.
	envPrefix = "RECORDS"

	cfgKeyVariant  = "variant"
	cfgKeyLogLevel = "log_level"
)

// configHeader is written above the marshaled settings by "records init".
const configHeader = `# records CLI configuration
#
# variant:   tuple | array
# log_level: debug | info | warn | error
`

// loadConfig reads config.yaml from configDir using v. A missing file is not
// an error: defaults apply. Precedence is flag > env > config.yaml > default.
func loadConfig(v *viper.Viper, configDir string) (types.Config, error) {
	v.SetDefault(cfgKeyVariant, types.DefaultVariant)
	v.SetDefault(cfgKeyLogLevel, types.DefaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Variant:  v.GetString(cfgKeyVariant),
		LogLevel: v.GetString(cfgKeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// writeConfigIfMissing writes cfg to path unless the file already exists.
// It reports whether a file was written.
func writeConfigIfMissing(path string, cfg types.Config) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
