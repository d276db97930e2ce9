package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	GatewayBaseURL string
	ReturnAddr     string
	ReturnBaseURL  string
	SessionFile    string
	Currency       string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".foodctl-session"
	}
	return filepath.Join(home, ".foodctl", "session")
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		GatewayBaseURL: getenv("GATEWAY_BASEURL", "http://localhost:8080"),
		ReturnAddr:     getenv("RETURN_ADDR", ":3000"),
		ReturnBaseURL:  getenv("RETURN_BASEURL", "http://localhost:3000"),
		SessionFile:    getenv("SESSION_FILE", defaultSessionFile()),
		Currency:       getenv("CURRENCY", "inr"),
	}
	log.Printf("[config] GATEWAY_BASEURL=%s", cfg.GatewayBaseURL)
	log.Printf("[config] RETURN_BASEURL=%s", cfg.ReturnBaseURL)
	log.Printf("[config] SESSION_FILE=%s", cfg.SessionFile)
	return cfg
}
