// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds the docview server configuration
type Config struct {
	HTTPPort          int    `mapstructure:"http_port"`
	MaxUploadMB       int64  `mapstructure:"max_upload_mb"`
	LogFile           string `mapstructure:"log_file"`
	SessionTTLMinutes int    `mapstructure:"session_ttl_minutes"`
}

// MaxUploadBytes returns the upload size cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// LoadConfig loads configuration from file and environment
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("config")

	// Set default values
	v.SetDefault("http_port", 8080)
	v.SetDefault("max_upload_mb", 32)
	v.SetDefault("log_file", "./docview.log")
	v.SetDefault("session_ttl_minutes", 60)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("No config file found, using defaults")
			} else {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	// Allow environment variables
	v.SetEnvPrefix("DOCVIEW")
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.HTTPPort <= 0 || config.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid http_port: %d", config.HTTPPort)
	}
	if config.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("invalid max_upload_mb: %d", config.MaxUploadMB)
	}

	return &config, nil
}
