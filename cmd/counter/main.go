package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/tastybites/counter/internal/config"
	"github.com/tastybites/counter/internal/logging"
	"github.com/tastybites/counter/internal/menu"
	"github.com/tastybites/counter/internal/service"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	window, err := cfg.Hours()
	if err != nil {
		logger.Fatal("invalid opening hours", zap.Error(err))
	}

	items, err := loadMenu(cfg.MenuFile)
	if err != nil {
		logger.Fatal("load menu", zap.String("file", cfg.MenuFile), zap.Error(err))
	}

	counter := service.NewCounter(menu.NewCatalog(items), window, cfg.ReceiptDir, logger, time.Now)
	if _, err := counter.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		logger.Error("counter stopped", zap.Error(err))
	}
}

// loadMenu reads the seed file when one is configured, otherwise the
// built-in menu.
func loadMenu(path string) ([]menu.Item, error) {
	if path == "" {
		return menu.DefaultItems(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return menu.ReadYAML(f)
}
