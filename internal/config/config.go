package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"HANGMAN_LOG_LEVEL" env-default:"warn"`
	Redis    Redis  `yaml:"redis"`
}

// Redis holds the optional live-game snapshot store. Disabled means in-memory.
type Redis struct {
	Enabled bool   `yaml:"enabled" env:"HANGMAN_REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"HANGMAN_REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"HANGMAN_REDIS_PORT" env-default:"6379"`
}

// MustLoad reads path when it exists and falls back to the environment otherwise.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
