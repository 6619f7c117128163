// Package config provides types for handling configuration parameters.
package config

import (
	"flag"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config handles server-related constants and parameters.
type Config struct {
	ServerConfig  *ServerConfig
	StorageConfig *StorageConfig
	SecretConfig  *SecretConfig
	GeoConfig     *GeoConfig
	LimiterConfig *LimiterConfig
}

// ServerConfig defines default server-related constants and parameters and overwrites them with environment variables.
type ServerConfig struct {
	ServerAddress string `env:"SERVER_ADDRESS" env-default:":8080"`
	BaseURL       string `env:"BASE_URL" env-default:"http://localhost:8080"`
	UploadPath    string `env:"UPLOAD_PATH" env-default:"static"`
}

// StorageConfig retrieves storage-related parameters from environment.
type StorageConfig struct {
	DatabaseDSN string `env:"DATABASE_DSN" env-default:""`
}

// SecretConfig retrieves secrets for session cookie ciphering from environment.
type SecretConfig struct {
	UserKey   string `env:"USER_KEY" env-default:"jds__63h3_7ds"`
	SessionID string `env:"SESSION_ID" env-default:"scissor_session"`
}

// GeoConfig retrieves external geolocation service parameters from environment.
type GeoConfig struct {
	IPEchoURL  string `env:"IP_ECHO_URL" env-default:"https://api.ipify.org"`
	GeoAPIURL  string `env:"GEO_API_URL" env-default:"https://api.db-ip.com/v2/free"`
	TimeoutSec int    `env:"GEO_TIMEOUT_SEC" env-default:"2"`
}

// LimiterConfig retrieves link creation quota parameters from environment.
type LimiterConfig struct {
	RedisDSN string `env:"REDIS_DSN" env-default:""`
	DayQuota int64  `env:"DAY_QUOTA" env-default:"10"`
}

// NewDefaultConfiguration sets up a total configuration.
func NewDefaultConfiguration() (*Config, error) {
	serverCfg := ServerConfig{}
	if err := cleanenv.ReadEnv(&serverCfg); err != nil {
		return nil, err
	}
	storageCfg := StorageConfig{}
	if err := cleanenv.ReadEnv(&storageCfg); err != nil {
		return nil, err
	}
	secretCfg := SecretConfig{}
	if err := cleanenv.ReadEnv(&secretCfg); err != nil {
		return nil, err
	}
	geoCfg := GeoConfig{}
	if err := cleanenv.ReadEnv(&geoCfg); err != nil {
		return nil, err
	}
	limiterCfg := LimiterConfig{}
	if err := cleanenv.ReadEnv(&limiterCfg); err != nil {
		return nil, err
	}
	return &Config{
		ServerConfig:  &serverCfg,
		StorageConfig: &storageCfg,
		SecretConfig:  &secretCfg,
		GeoConfig:     &geoCfg,
		LimiterConfig: &limiterCfg,
	}, nil
}

// ParseFlags parses command line arguments and stores them.
func (c *Config) ParseFlags() {
	flag.StringVar(&c.ServerConfig.ServerAddress, "a", c.ServerConfig.ServerAddress, "Server address")
	flag.StringVar(&c.ServerConfig.BaseURL, "b", c.ServerConfig.BaseURL, "Base url")
	flag.StringVar(&c.StorageConfig.DatabaseDSN, "d", c.StorageConfig.DatabaseDSN, "PSQL DB connection DSN")
	flag.StringVar(&c.LimiterConfig.RedisDSN, "r", c.LimiterConfig.RedisDSN, "Redis connection DSN for the creation quota")
	flag.StringVar(&c.ServerConfig.UploadPath, "u", c.ServerConfig.UploadPath, "QR image upload path")
	flag.Parse()
}
