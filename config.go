package main

import (
	"fmt"
	"os"
)

// Config holds all environment variables for the admin API.
type Config struct {
	Env               string // "production" switches to JSON logging
	Port              string // default 8080
	MongoURL          string
	MongoDB           string // default "boutique"
	RedisURL          string // default redis://localhost:6379
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string // bcrypt hash of the admin password
	CORSOrigin        string // dashboard origin, default http://localhost:3000
}

// LoadConfig reads environment variables into a Config and validates the
// required fields.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Env:               os.Getenv("APP_ENV"),
		Port:              os.Getenv("PORT"),
		MongoURL:          os.Getenv("MONGO_URL"),
		MongoDB:           os.Getenv("MONGO_DB"),
		RedisURL:          os.Getenv("REDIS_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		CORSOrigin:        os.Getenv("CORS_ORIGIN"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "boutique"
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://localhost:6379"
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "http://localhost:3000"
	}

	if cfg.MongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AdminEmail == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL is required")
	}
	if cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}

	return cfg, nil
}
