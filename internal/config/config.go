package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds process-level settings. Values come from environment
// variables (ADDR, STORAGE_DRIVER, DATABASE_URL, REDIS_ADDR, JWT_SECRET),
// with an optional config.yaml in the working directory.
type Config struct {
	Addr          string
	StorageDriver string // "memory" or "postgres"
	DatabaseURL   string
	RedisAddr     string
	JWTSecret     string
}

// Load reads the configuration, applying defaults for anything unset.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("storage_driver", "memory")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("jwt_secret", "super-secret-key") // override in prod
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		Addr:          v.GetString("addr"),
		StorageDriver: strings.ToLower(v.GetString("storage_driver")),
		DatabaseURL:   v.GetString("database_url"),
		RedisAddr:     v.GetString("redis_addr"),
		JWTSecret:     v.GetString("jwt_secret"),
	}, nil
}
