package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/vovakirdan/t2048/internal/storage"
)

// ServerConfig configures `t2048 serve`.
type ServerConfig struct {
	LogLevel  string          `yaml:"log-level" env:"T2048_LOG_LEVEL" env-default:"info"`
	SSH       SSHConfig       `yaml:"ssh"`
	WebSocket WebSocketConfig `yaml:"websocket"`
	Store     StoreConfig     `yaml:"store"`
	// GameConfigPath points at a game config file for every session.
	GameConfigPath string `yaml:"game-config" env:"T2048_GAME_CONFIG"`
}

// SSHConfig configures the SSH front end.
type SSHConfig struct {
	Enabled     bool          `yaml:"enabled" env:"T2048_SSH_ENABLED" env-default:"true"`
	Address     string        `yaml:"address" env:"T2048_SSH_ADDR" env-default:":23234"`
	HostKeyPath string        `yaml:"host-key" env:"T2048_SSH_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle-timeout" env:"T2048_SSH_IDLE_TIMEOUT" env-default:"30m"`
}

// WebSocketConfig configures the WebSocket front end.
type WebSocketConfig struct {
	Enabled bool   `yaml:"enabled" env:"T2048_WS_ENABLED" env-default:"false"`
	Address string `yaml:"address" env:"T2048_WS_ADDR" env-default:":8080"`
}

// StoreConfig selects the statistics backend.
type StoreConfig struct {
	Backend   string `yaml:"backend" env:"T2048_STORE" env-default:"sqlite"`
	Path      string `yaml:"path" env:"T2048_DB" env-default:"~/.t2048/t2048.db"`
	RedisAddr string `yaml:"redis-addr" env:"T2048_REDIS_ADDR" env-default:"localhost:6379"`
}

// Storage converts the store settings for storage.Open.
func (c StoreConfig) Storage() storage.Config {
	return storage.Config{
		Backend:   c.Backend,
		Path:      c.Path,
		RedisAddr: c.RedisAddr,
	}
}

// LoadServer reads path when given, otherwise the environment alone.
// Environment variables override file values.
func LoadServer(path string) (ServerConfig, error) {
	var cfg ServerConfig

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return ServerConfig{}, fmt.Errorf("config: unable to load server config: %w", err)
	}
	return cfg, nil
}
