package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/tastybites/counter/internal/hours"
)

type Config struct {
	OpenTime   string
	CloseTime  string
	ReceiptDir string
	MenuFile   string
	LogLevel   string
	LogOutput  string
}

// Load reads settings from the environment, after merging an optional .env
// file. Without any overrides the counter runs on its built-in defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		OpenTime:   getEnv("OPEN_TIME", "08:00"),
		CloseTime:  getEnv("CLOSE_TIME", "22:00"),
		ReceiptDir: getEnv("RECEIPT_DIR", "."),
		MenuFile:   getEnv("MENU_FILE", ""),
		LogLevel:   getEnv("LOG_LEVEL", "warn"),
		LogOutput:  getEnv("LOG_OUTPUT", "stderr"),
	}
}

// Hours parses the opening window.
func (c *Config) Hours() (hours.Window, error) {
	open, err := hours.Parse(c.OpenTime)
	if err != nil {
		return hours.Window{}, fmt.Errorf("OPEN_TIME: %w", err)
	}
	closing, err := hours.Parse(c.CloseTime)
	if err != nil {
		return hours.Window{}, fmt.Errorf("CLOSE_TIME: %w", err)
	}
	return hours.Window{Open: open, Close: closing}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
