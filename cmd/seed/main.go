package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tastybites/counter/internal/logging"
	"github.com/tastybites/counter/internal/menu"
)

func main() {
	// CLI flags
	out := flag.String("out", "", "Menu file to write")
	force := flag.Bool("force", false, "Overwrite an existing menu file")
	flag.Parse()

	// Fall back to environment, then default
	if *out == "" {
		*out = os.Getenv("MENU_FILE")
	}
	if *out == "" {
		*out = "menu.yaml"
	}

	logger, err := logging.New("info", "stderr")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	written, err := seedMenu(*out, *force)
	if err != nil {
		logger.Fatal("seed menu", zap.String("file", *out), zap.Error(err))
	}
	if !written {
		logger.Info("menu file already exists, skipping", zap.String("file", *out))
		return
	}
	logger.Info("menu file written", zap.String("file", *out), zap.Int("items", len(menu.DefaultItems())))
}

// seedMenu writes the built-in menu to path unless the file exists and
// force is false.
func seedMenu(path string, force bool) (bool, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("open: %w", err)
	}

	if err := menu.WriteYAML(f, menu.DefaultItems()); err != nil {
		f.Close()
		return false, err
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close: %w", err)
	}
	return true, nil
}
