package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/twodice/internal/game/dice"
)

func validConfig() Config {
	return Config{
		Telnet: TelnetConfig{
			Host:         "0.0.0.0",
			Port:         4200,
			ReadTimeout:  10 * time.Minute,
			WriteTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Game: GameConfig{
			MaxPlayers:          6,
			DefaultDistribution: "Real",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestTelnetAddr(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "0.0.0.0:4200", cfg.Telnet.Addr())
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, dice.Real, cfg.Game.Distribution())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
telnet:
  host: 127.0.0.1
  port: 4321
  read_timeout: 5m
  write_timeout: 10s
logging:
  level: debug
  format: console
game:
  max_players: 4
  default_distribution: Uniform
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Telnet.Host)
	assert.Equal(t, 4321, cfg.Telnet.Port)
	assert.Equal(t, 5*time.Minute, cfg.Telnet.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 4, cfg.Game.MaxPlayers)
	assert.Equal(t, dice.Uniform, cfg.Game.Distribution())
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	err := os.WriteFile(path, []byte(`
telnet:
  port: 9999
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Telnet.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 6, cfg.Game.MaxPlayers)
	assert.Equal(t, "Real", cfg.Game.DefaultDistribution)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestValidate_BadTelnetPort(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := validConfig()
		cfg.Telnet.Port = rapid.OneOf(
			rapid.IntRange(-1000, 0),
			rapid.IntRange(65536, 100000),
		).Draw(rt, "port")
		assert.Error(rt, cfg.Validate())
	})
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadLogFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadDistribution(t *testing.T) {
	cfg := validConfig()
	cfg.Game.DefaultDistribution = "real"
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadMaxPlayers(t *testing.T) {
	cfg := validConfig()
	cfg.Game.MaxPlayers = 0
	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeTimeouts(t *testing.T) {
	cfg := validConfig()
	cfg.Telnet.ReadTimeout = -time.Second
	assert.Error(t, cfg.Validate())
}
