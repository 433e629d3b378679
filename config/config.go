package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	Local = "local"
	Prod  = "prod"
)

type App struct {
	Env         string
	Hostname    string
	Port        string
	MetricsPort string
}

type Database struct {
	Username string
	Password string
	Endpoint string
	Name     string
	SSLMode  string
}

type Slack struct {
	SiteBotToken      string
	CommentsChannelID string
}

type Config struct {
	App      App
	Database Database
	Slack    Slack
}

func New() *Config {
	godotenv.Load()

	return &Config{
		App: App{
			Env:         getEnv("APP_ENV", Local),
			Hostname:    getEnv("APP_HOSTNAME", "localhost"),
			Port:        getEnv("APP_PORT", "8080"),
			MetricsPort: getEnv("APP_METRICS_PORT", "9090"),
		},
		Database: Database{
			Username: getEnv("DB_USERNAME", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Endpoint: getEnv("DB_ENDPOINT", "localhost:5432"),
			Name:     getEnv("DB_NAME", "site"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Slack: Slack{
			SiteBotToken:      getEnv("SLACK_SITE_BOT_TOKEN", ""),
			CommentsChannelID: getEnv("SLACK_COMMENTS_CHANNEL_ID", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
