// Package config loads environment-driven settings for the application.
// File: config/config.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"mapao-magazine/logger"
)

// DevAdminPassword is the development fallback used when ADMIN_PASSWORD is
// unset. It must never survive into a real deployment; Load warns loudly
// whenever it is in effect.
const DevAdminPassword = "mapao-admin-dev"

// ------------------------ configuration model ------------------------

// Config holds every recognized environment option with its default.
type Config struct {
	Env       string `env:"ENV" envDefault:"development"`
	Port      int    `env:"PORT" envDefault:"8080"`
	SecretKey string `env:"SECRET_KEY" envDefault:"mapao_magazine_secret_key_2024"`

	// Hosted relational store
	DatabaseURL string `env:"DATABASE_URL"`

	// Object storage for magazine assets
	StorageEndpoint  string `env:"STORAGE_ENDPOINT"`
	StorageAccessKey string `env:"STORAGE_ACCESS_KEY"`
	StorageSecretKey string `env:"STORAGE_SECRET_KEY"`
	StorageBucket    string `env:"STORAGE_BUCKET" envDefault:"magazine-assets"`
	StorageUseSSL    bool   `env:"STORAGE_USE_SSL" envDefault:"true"`

	// Outbound email. MAIL_USE_TLS is accepted for compatibility with
	// existing deployments; net/smtp negotiates STARTTLS automatically
	// whenever the server advertises it, so the flag is not consulted.
	MailServer        string `env:"MAIL_SERVER" envDefault:"smtp.gmail.com"`
	MailPort          int    `env:"MAIL_PORT" envDefault:"587"`
	MailUseTLS        bool   `env:"MAIL_USE_TLS" envDefault:"true"`
	MailUsername      string `env:"MAIL_USERNAME" envDefault:"mapaoliteraryjournal@gmail.com"`
	MailPassword      string `env:"MAIL_PASSWORD"`
	MailDefaultSender string `env:"MAIL_DEFAULT_SENDER" envDefault:"mapaoliteraryjournal@gmail.com"`

	// Admin credentials. When AdminPasswordHash (bcrypt) is set it takes
	// precedence and the plaintext password is ignored.
	AdminUsername     string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword     string `env:"ADMIN_PASSWORD"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

// ------------------------ loading ------------------------

// Load reads .env (when present) and parses the environment into a Config.
func Load() (*Config, error) {
	// missing .env is fine; real deployments configure the process directly
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("Load: no .env file found, using process environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		cfg.AdminPassword = DevAdminPassword
		logger.Warn.Println("Load: ADMIN_PASSWORD not set, falling back to the development password - do not run like this in production")
	}
	if cfg.DatabaseURL == "" {
		logger.Warn.Println("Load: DATABASE_URL not set, the site will serve empty content")
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// MailConfigured reports whether outbound email has working credentials.
func (c *Config) MailConfigured() bool {
	return c.MailServer != "" && c.MailUsername != "" && c.MailPassword != ""
}
