package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	DatabaseURL string
	JWTSecret   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	WorkerCount int

	S3Bucket   string
	S3Region   string
	S3Endpoint string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
}

// Load reads configuration from the environment and validates it. A local
// .env file is honored when present; in Docker/CI the variables come from
// the environment itself.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:      os.Getenv("HTTP_ADDR"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		S3Region:      os.Getenv("S3_REGION"),
		S3Endpoint:    os.Getenv("S3_ENDPOINT"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		MailFrom:      os.Getenv("MAIL_FROM"),
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	cfg.RedisDB = 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: invalid REDIS_DB: %v", err)
		}
		cfg.RedisDB = n
	}

	cfg.WorkerCount = 1
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: invalid WORKER_COUNT %q", v)
		}
		cfg.WorkerCount = n
	}

	cfg.SMTPPort = 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: invalid SMTP_PORT %q", v)
		}
		cfg.SMTPPort = n
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("config: DATABASE_URL is required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	if strings.TrimSpace(c.RedisAddr) == "" {
		return fmt.Errorf("config: REDIS_ADDR is required")
	}
	if strings.TrimSpace(c.S3Bucket) == "" {
		return fmt.Errorf("config: S3_BUCKET is required")
	}
	if strings.TrimSpace(c.SMTPHost) == "" {
		return fmt.Errorf("config: SMTP_HOST is required")
	}
	if strings.TrimSpace(c.MailFrom) == "" {
		return fmt.Errorf("config: MAIL_FROM is required")
	}
	return nil
}
