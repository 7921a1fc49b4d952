package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds everything sourced from the environment. All fields except
// Port are required; Load fails fast so a misconfigured server never starts.
type Config struct {
	DatabaseHostname string
	DatabasePort     string
	DatabaseUsername string
	DatabasePassword string
	DatabaseName     string

	SecretKey   string
	Algorithm   string
	TokenExpiry time.Duration
	Port        string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseHostname: os.Getenv("DATABASE_HOSTNAME"),
		DatabasePort:     os.Getenv("DATABASE_PORT"),
		DatabaseUsername: os.Getenv("DATABASE_USERNAME"),
		DatabasePassword: os.Getenv("DATABASE_PASSWORD"),
		DatabaseName:     os.Getenv("DATABASE_NAME"),
		SecretKey:        os.Getenv("SECRET_KEY"),
		Algorithm:        os.Getenv("ALGORITHM"),
		Port:             os.Getenv("PORT"),
	}

	required := map[string]string{
		"DATABASE_HOSTNAME": cfg.DatabaseHostname,
		"DATABASE_PORT":     cfg.DatabasePort,
		"DATABASE_USERNAME": cfg.DatabaseUsername,
		"DATABASE_PASSWORD": cfg.DatabasePassword,
		"DATABASE_NAME":     cfg.DatabaseName,
		"SECRET_KEY":        cfg.SecretKey,
	}

	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("environment variable %s is not set", name)
		}
	}

	if cfg.Algorithm == "" {
		cfg.Algorithm = "HS256"
	}

	minutes := 60
	if raw := os.Getenv("ACCESS_TOKEN_EXPIRATION_MINUTES"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRATION_MINUTES: %q", raw)
		}
		minutes = parsed
	}
	cfg.TokenExpiry = time.Duration(minutes) * time.Minute

	if cfg.Port == "" {
		cfg.Port = "8000"
		log.Println("PORT not set, defaulting to 8000")
	}

	return cfg, nil
}

// DSN builds the postgres connection string from the database fields.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DatabaseHostname,
		c.DatabaseUsername,
		c.DatabasePassword,
		c.DatabaseName,
		c.DatabasePort,
	)
}
