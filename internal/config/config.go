package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
	SQLite   SQLite  `yaml:"sqlite"`
	Players  Players `yaml:"players"`
}

type Storage struct {
	Driver  string        `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	Key     string        `yaml:"key" env:"STORAGE_KEY" env-default:"ticTacToeScores"`
	Timeout time.Duration `yaml:"timeout" env:"STORAGE_TIMEOUT" env-default:"2s"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	DB   int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type SQLite struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"~/.tictactoe/scores.db"`
}

type Players struct {
	X string `yaml:"x" env:"PLAYER_X_NAME"`
	O string `yaml:"o" env:"PLAYER_O_NAME"`
}

// Load reads the yaml file at path and applies environment overrides.
// A missing file is not an error: defaults and environment are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch that.Storage.Driver {
	case DriverMemory, DriverRedis, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, that.Storage.Driver)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
