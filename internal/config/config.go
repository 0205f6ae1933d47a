package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Transport TransportConfig `yaml:"transport"`
	Store     StoreConfig     `yaml:"store"`
	Auth      AuthConfig      `yaml:"auth"`
	Events    EventsConfig    `yaml:"events"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DBConfig points at the snapshot database. An empty path keeps state in memory only.
type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"` // "stdio" or "http"
}

type StoreConfig struct {
	Mode     string `yaml:"mode"` // "permissive" or "strict"
	SeedPath string `yaml:"seed_path"`
}

type AuthConfig struct {
	Token string `yaml:"token"`
}

// EventsConfig enables AMQP change events when AMQPURL is set.
type EventsConfig struct {
	AMQPURL  string `yaml:"amqp_url"`
	Exchange string `yaml:"exchange"`
}

// Load reads configuration from an optional .env file, an optional YAML file
// and environment variables, in increasing precedence.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "creativehub.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Transport: TransportConfig{
			Mode: "http",
		},
		Store: StoreConfig{
			Mode: "permissive",
		},
		Events: EventsConfig{
			Exchange: "creativehub.changes",
		},
	}

	if err := loadEnvFile(os.Getenv("CREATIVEHUB_ENV_FILE")); err != nil {
		return Config{}, err
	}

	if path := os.Getenv("CREATIVEHUB_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("CREATIVEHUB_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("CREATIVEHUB_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CREATIVEHUB_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath, ok := os.LookupEnv("CREATIVEHUB_DB_PATH"); ok {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("CREATIVEHUB_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("CREATIVEHUB_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if mode := os.Getenv("CREATIVEHUB_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if mode := os.Getenv("CREATIVEHUB_STORE_MODE"); mode != "" {
		cfg.Store.Mode = mode
	}
	if seed := os.Getenv("CREATIVEHUB_SEED_PATH"); seed != "" {
		cfg.Store.SeedPath = seed
	}
	if token := os.Getenv("CREATIVEHUB_AUTH_TOKEN"); token != "" {
		cfg.Auth.Token = token
	}
	if url := os.Getenv("CREATIVEHUB_AMQP_URL"); url != "" {
		cfg.Events.AMQPURL = url
	}
	if exchange := os.Getenv("CREATIVEHUB_AMQP_EXCHANGE"); exchange != "" {
		cfg.Events.Exchange = exchange
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	switch c.Transport.Mode {
	case "stdio", "http":
	default:
		return fmt.Errorf("invalid transport mode %q", c.Transport.Mode)
	}
	switch c.Store.Mode {
	case "permissive", "strict":
	default:
		return fmt.Errorf("invalid store mode %q", c.Store.Mode)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// loadEnvFile loads path, or ./.env when path is empty. A missing default
// file is not an error. Variables already set in the environment win.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file: %w", err)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
