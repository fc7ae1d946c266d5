package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration values from config.yaml.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Data      DataConfig      `mapstructure:"data"`
	Session   SessionConfig   `mapstructure:"session"`
	Storage   StorageConfig   `mapstructure:"storage"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains server specific configurations.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DataConfig locates the flat dataset document.
type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// SessionConfig selects and configures the session store backend.
type SessionConfig struct {
	Backend       string      `mapstructure:"backend"` // "redis" or "memory"
	SecureCookies bool        `mapstructure:"secureCookies"`
	Redis         RedisConfig `mapstructure:"redis"`
}

// RedisConfig contains Redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// StorageConfig selects and configures the media uploader backend.
type StorageConfig struct {
	Backend   string   `mapstructure:"backend"` // "local" or "s3"
	UploadDir string   `mapstructure:"uploadDir"`
	S3        S3Config `mapstructure:"s3"`
}

// S3Config contains S3-related configuration settings.
type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	Prefix          string `mapstructure:"prefix"`
	AccessKeyId     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
}

// RateLimitConfig configures the upload rate limiter.
type RateLimitConfig struct {
	WindowSeconds int `mapstructure:"windowSeconds"`
	Max           int `mapstructure:"max"`
}

// LoggingConfig contains logging level settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from config.yaml using Viper.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)

	v.SetDefault("server.port", 3000)
	v.SetDefault("data.dir", "data")
	v.SetDefault("session.backend", "memory")
	v.SetDefault("session.redis.addr", "localhost:6379")
	v.SetDefault("storage.backend", "local")
	v.SetDefault("storage.uploadDir", "public/uploads")
	v.SetDefault("ratelimit.windowSeconds", 60)
	v.SetDefault("ratelimit.max", 10)
	v.SetDefault("logging.level", "info")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %v", err)
	}

	if config.Storage.Backend == "s3" && (config.Storage.S3.AccessKeyId == "" || config.Storage.S3.SecretAccessKey == "") {
		return nil, fmt.Errorf("S3 credentials are missing. Please check your configuration")
	}

	return config, nil
}
