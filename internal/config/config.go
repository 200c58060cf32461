package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the process needs at startup. Every field without a
// default is mandatory: the server refuses to start on a missing value instead
// of falling back to a checked-in credential.
type Config struct {
	DatabaseDSN       string
	RedisAddr         string
	RedisPassword     string
	ServerAddr        string
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
	CORSOrigins       string
}

var required = []string{
	"DATABASE_DSN",
	"REDIS_ADDR",
	"JWT_SECRET",
	"ADMIN_EMAIL",
	"ADMIN_PASSWORD_HASH",
}

// LoadConfig reads .env (if present) and the environment, then fails closed on
// any missing required key.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		// .env is optional; the environment alone may carry everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !strings.Contains(err.Error(), "no such file") {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
	}
	v.AutomaticEnv()

	v.SetDefault("PORT", ":8080")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	var missing []string
	for _, key := range required {
		if v.GetString(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return &Config{
		DatabaseDSN:       v.GetString("DATABASE_DSN"),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		ServerAddr:        v.GetString("PORT"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		AdminEmail:        strings.ToLower(strings.TrimSpace(v.GetString("ADMIN_EMAIL"))),
		AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		CORSOrigins:       v.GetString("CORS_ORIGINS"),
	}, nil
}
