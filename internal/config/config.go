package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Transit TransitConfig
	Export  ExportConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type TransitConfig struct {
	BaseURL        string
	RequestTimeout int // seconds
}

type ExportConfig struct {
	Creator string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if _, err := os.Stat(".env"); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Transit: TransitConfig{
			BaseURL:        viper.GetString("TRANSIT_API_BASE_URL"),
			RequestTimeout: viper.GetInt("TRANSIT_API_TIMEOUT"),
		},
		Export: ExportConfig{
			Creator: viper.GetString("GPX_CREATOR"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Transit.BaseURL == "" {
		cfg.Transit.BaseURL = "https://api.carrismetropolitana.pt"
	}
	if cfg.Transit.RequestTimeout == 0 {
		cfg.Transit.RequestTimeout = 30
	}
	if cfg.Export.Creator == "" {
		cfg.Export.Creator = "route-trajectory-service"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
