package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultServerURL, s.ServerURL)
	assert.Equal(t, DefaultLogLevel, s.LogLevel)
	assert.False(t, s.NonInteractive)
	assert.Empty(t, s.Token)
}

// TestLoad_WithEnvironmentVariables tests that ESTATE_ prefixed environment variables work
func TestLoad_WithEnvironmentVariables(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ESTATE_SERVER", "http://env:9090")
	t.Setenv("ESTATE_NON_INTERACTIVE", "1")
	t.Setenv("ESTATE_TOKEN", "env-token")
	t.Setenv("ESTATE_LOG_LEVEL", "debug")

	s, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "http://env:9090", s.ServerURL)
	assert.True(t, s.NonInteractive)
	assert.Equal(t, "env-token", s.Token)
	assert.Equal(t, "debug", s.LogLevel)
}

// TestLoad_WithConfigFile tests config file loading
func TestLoad_WithConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "estatectl.yaml")
	configContent := `
server: "http://file:8888"
session-file: "/tmp/estate-session.json"
log-level: info
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	s, err := Load(NewViper(), configPath)
	require.NoError(t, err)

	assert.Equal(t, "http://file:8888", s.ServerURL)
	assert.Equal(t, "/tmp/estate-session.json", s.SessionFile)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoad_DefaultConfigFileInHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".estate"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".estate", "config.yaml"), []byte("server: http://home:1\n"), 0644))

	s, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "http://home:1", s.ServerURL)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ESTATE_SERVER", "http://env:9090")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(KeyServer, DefaultServerURL, "")
	require.NoError(t, flags.Parse([]string{"--server", "http://flag:7070"}))

	v := NewViper()
	require.NoError(t, v.BindPFlags(flags))

	s, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "http://flag:7070", s.ServerURL)
}

func TestLoad_EmptyServerRejected(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ESTATE_SERVER", " ")

	_, err := Load(NewViper(), "")
	assert.Error(t, err)
}
