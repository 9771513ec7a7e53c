package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Webcams: WebcamsConfig{
			DevID:   "abc123",
			URL:     "http://api.webcams.travel/rest",
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "missing devid",
			mutate:  func(cfg *Config) { cfg.Webcams.DevID = "" },
			wantErr: "webcams.devid",
		},
		{
			name:    "placeholder devid",
			mutate:  func(cfg *Config) { cfg.Webcams.DevID = "your-devid-here" },
			wantErr: "webcams.devid",
		},
		{
			name:    "missing url",
			mutate:  func(cfg *Config) { cfg.Webcams.URL = "" },
			wantErr: "webcams.url",
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *Config) { cfg.Webcams.Timeout = -time.Second },
			wantErr: "webcams.timeout",
		},
		{
			name:   "zero timeout",
			mutate: func(cfg *Config) { cfg.Webcams.Timeout = 0 },
		},
		{
			name:    "invalid level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: "invalid logging level: verbose",
		},
		{
			name:    "invalid format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: "invalid logging format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
webcams:
  devid: file-devid
  timeout: 5s
output:
  pretty: false
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "file-devid", cfg.Webcams.DevID)
	assert.Equal(t, "http://api.webcams.travel/rest", cfg.Webcams.URL)
	assert.Equal(t, 5*time.Second, cfg.Webcams.Timeout)
	assert.Empty(t, cfg.Webcams.UserAgent)
	assert.False(t, cfg.Output.Pretty)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadFlagOverridesFile(t *testing.T) {
	path := writeConfig(t, "webcams:\n  devid: file-devid\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("devid", "", "developer ID")
	require.NoError(t, flags.Parse([]string{"--devid", "flag-devid"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "flag-devid", cfg.Webcams.DevID)
}

func TestLoadUnchangedFlagKeepsFile(t *testing.T) {
	path := writeConfig(t, "webcams:\n  devid: file-devid\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("devid", "", "developer ID")

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "file-devid", cfg.Webcams.DevID)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "webcams:\n  devid: file-devid\n")
	t.Setenv("WCT_WEBCAMS_DEVID", "env-devid")
	t.Setenv("WCT_LOGGING_LEVEL", "warn")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "env-devid", cfg.Webcams.DevID)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}

func TestLoadWithoutFileRequiresDevID(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webcams.devid")

	t.Setenv("WCT_WEBCAMS_DEVID", "env-only")
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "env-only", cfg.Webcams.DevID)
}
