package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Configuration keys. Each doubles as the root command's flag name and, upper
// cased with an ESTATE_ prefix, as its environment variable.
const (
	KeyServer         = "server"
	KeyNonInteractive = "non-interactive"
	KeySessionFile    = "session-file"
	KeyLogLevel       = "log-level"
	KeyToken          = "token"
)

// Defaults.
const (
	DefaultServerURL = "http://localhost:3000"
	DefaultLogLevel  = "warn"
	EnvPrefix        = "ESTATE"
)

// Settings are the resolved user settings.
type Settings struct {
	ServerURL      string
	NonInteractive bool
	SessionFile    string
	LogLevel       string
	// Token is an ephemeral bearer token that bypasses the session file.
	Token string
}

// NewViper returns a viper instance reading ESTATE_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyServer, DefaultServerURL)
	v.SetDefault(KeyNonInteractive, false)
	v.SetDefault(KeySessionFile, "")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyToken, "")
	return v
}

// DefaultDir returns ~/.estate.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".estate"), nil
}

// Load reads settings from v. An explicit configFile must exist; otherwise
// ~/.estate/config.yaml is read when present.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	s := &Settings{
		ServerURL:      strings.TrimSpace(v.GetString(KeyServer)),
		NonInteractive: v.GetBool(KeyNonInteractive),
		SessionFile:    v.GetString(KeySessionFile),
		LogLevel:       v.GetString(KeyLogLevel),
		Token:          strings.TrimSpace(v.GetString(KeyToken)),
	}

	if s.ServerURL == "" {
		return nil, errors.New("server URL is required")
	}
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
	return s, nil
}
