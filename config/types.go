package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Webcams WebcamsConfig `mapstructure:"webcams"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// WebcamsConfig holds webcams.travel API connection details
type WebcamsConfig struct {
	DevID     string        `mapstructure:"devid"`
	URL       string        `mapstructure:"url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// OutputConfig controls how payloads are printed
type OutputConfig struct {
	Pretty bool `mapstructure:"pretty"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
