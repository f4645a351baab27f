package types

import "errors"

// Config holds the settings the records CLI reads from config.yaml.
type Config struct {
	Variant  string `json:"variant" yaml:"variant"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Defaults applied when config.yaml leaves a key unset.
const (
	DefaultVariant  = VariantArray
	DefaultLogLevel = LogLevelInfo
)

// Supported log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config validation errors.
var (
	ErrLogLevelUnknown = errors.New("unknown log level")
)

var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() Config {
	return Config{Variant: DefaultVariant, LogLevel: DefaultLogLevel}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. An empty LogLevel is accepted and means
// DefaultLogLevel.
func (c Config) Validate() error {
	if c.Variant == "" {
		return ErrVariantEmpty
	}
	if !IsValidVariant(c.Variant) {
		return ErrVariantUnknown
	}
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
