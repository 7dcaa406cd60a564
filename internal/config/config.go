package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Client   ClientConfig   `mapstructure:"client"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port                  int           `mapstructure:"port" validate:"min=1,max=65535"`
	CORS                  CORSConfig    `mapstructure:"cors"`
	MaxConcurrentRequests int64         `mapstructure:"max_concurrent_requests" validate:"min=1"`
	Metrics               MetricsConfig `mapstructure:"metrics"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=memory mysql postgres sqlite"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"min=0,max=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	SQLitePath      string            `mapstructure:"sqlite_path"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
	ConnectAttempts uint              `mapstructure:"connect_attempts" validate:"min=1"`
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Source is empty for the embedded default set, a file path, or an http(s) URL.
	Source string `mapstructure:"source" validate:"omitempty,seedsource"`
}

type ClientConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"url"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/glossary")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.max_concurrent_requests", 10)
	v.SetDefault("server.metrics.enabled", true)
	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.database", "glossary")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.sqlite_path", "glossary.db")
	v.SetDefault("database.connect_attempts", 5)
	v.SetDefault("seed.enabled", true)
	v.SetDefault("seed.source", "")
	v.SetDefault("client.base_url", "http://localhost:8080")
	v.SetDefault("log.level", "info")

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("client.base_url", "GLOSSARY_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind GLOSSARY_BASE_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
