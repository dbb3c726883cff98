package main

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"InkOverlay/internal/config"
	"InkOverlay/internal/logx"
	"InkOverlay/internal/ui"
)

// ConfigEnv names a config file overriding the default location.
const ConfigEnv = "INKOVERLAY_CONFIG"

func configPath() string {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "inkoverlay.toml"
	}
	return filepath.Join(dir, "inkoverlay", "config.toml")
}

func main() {
	path := configPath()
	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("Using default settings: %v", err)
	}

	level, err := cfg.Level()
	if err != nil {
		log.Printf("Invalid log level, using info: %v", err)
		level = slog.LevelInfo
	}
	logx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	logx.L().Info("[MAIN] starting", "config", path, "eraser_radius", cfg.Eraser.Radius)

	ui.RunApp(cfg)
}
