package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"RAINET_LOG_LEVEL" env-default:"info"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"RAINET_REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"RAINET_REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"RAINET_REDIS_PORT" env-default:"6379"`
}

// Game holds the defaults used to set up a new match.
type Game struct {
	StartingTeam string      `yaml:"starting-team" env:"RAINET_STARTING_TEAM"`
	Arrangement  Arrangement `yaml:"arrangement"`
}

// Arrangement lists, per team, how many links are dealt before each virus.
type Arrangement struct {
	Top    []int `yaml:"top" env:"RAINET_ARRANGEMENT_TOP" env-default:"4" env-separator:","`
	Bottom []int `yaml:"bottom" env:"RAINET_ARRANGEMENT_BOTTOM" env-default:"4" env-separator:","`
}

// Load reads the config file at path. A missing file falls back to the
// environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err = cleanenv.ReadConfig(path, config); err != nil {
				return nil, fmt.Errorf("unable to load config file: %w", err)
			}

			return config, nil
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read config from environment: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
