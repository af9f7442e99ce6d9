package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"log"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Exchange Exchange
	Log      Log
	Metrics  Metrics

	// Local is read from the private per-machine file, never from the environment
	Local Local
}

type Exchange struct {
	APIKey      string `env:"EXCHANGE_API_KEY"`
	URL         string `env:"EXCHANGE_API_URL" env-default:"https://v6.exchangerate-api.com/v6"`
	Base        string `env:"EXCHANGE_BASE" env-default:"JPY"`
	ZeroDecimal string `env:"EXCHANGE_ZERO_DECIMAL" env-default:"KRW"`
	Precision   int    `env:"EXCHANGE_PRECISION" env-default:"5"`
	LocalPath   string `env:"EXCHANGE_CONFIG_PATH" env-default:"config.local.yaml"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" env-default:"warn"`
}

type Metrics struct {
	Addr string `env:"METRICS_ADDR"`
}

// Local holds values read only from the local config file.
type Local struct {
	APIKey string `yaml:"api_key"`
}

func NewConfig() *Config {
	_ = godotenv.Load(".env")

	cfg, err := Load()
	if err != nil {
		log.Fatal("Error reading config: ", err)
	}

	return cfg
}

// Load reads the environment and, when present, the local config file.
func Load() (*Config, error) {
	const op = "config.Load"

	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, errors.Wrap(err, op)
	}

	local, err := readLocal(cfg.Exchange.LocalPath)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	cfg.Local = local

	return cfg, nil
}

func readLocal(path string) (Local, error) {
	var local Local

	if path == "" {
		return local, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return local, nil
		}
		return local, err
	}

	if err := cleanenv.ReadConfig(path, &local); err != nil {
		return local, err
	}

	return local, nil
}

// APIKey returns the key from the local config file, falling back to the environment.
func (c *Config) APIKey() string {
	if key := strings.TrimSpace(c.Local.APIKey); key != "" {
		return key
	}

	return strings.TrimSpace(c.Exchange.APIKey)
}

func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
