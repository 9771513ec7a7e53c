package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. WCT_WEBCAMS_DEVID
const EnvPrefix = "WCT"

// flagKeys maps command-line flags onto configuration keys
var flagKeys = map[string]string{
	"devid": "webcams.devid",
}

// Load loads the configuration from file, environment and flags.
// A missing config file is only an error when configPath is set.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("error binding flag %s: %w", name, err)
				}
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".wct"))
		}

		// Check /etc
		v.AddConfigPath("/etc/wct/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && configPath == "":
			// Defaults, environment and flags are enough
		case configPath != "" && os.IsNotExist(err):
			return nil, fmt.Errorf("config file not found: %w", err)
		default:
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// webcams.travel defaults
	v.SetDefault("webcams.devid", "")
	v.SetDefault("webcams.url", "http://api.webcams.travel/rest")
	v.SetDefault("webcams.timeout", "30s")
	v.SetDefault("webcams.user_agent", "")

	// Output defaults
	v.SetDefault("output.pretty", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Webcams.DevID == "" || cfg.Webcams.DevID == "your-devid-here" {
		return fmt.Errorf("webcams.devid must be set to a valid developer ID")
	}

	if cfg.Webcams.URL == "" {
		return fmt.Errorf("webcams.url is required")
	}

	if cfg.Webcams.Timeout < 0 {
		return fmt.Errorf("webcams.timeout must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
