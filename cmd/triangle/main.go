// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command triangle draws a green triangle in a window, or renders a single
// frame of it to a PNG or BMP file with -snapshot.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/triangle"
	"github.com/gogpu/triangle/internal/app"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		width      = flag.Int("width", 0, "window width (overrides config)")
		height     = flag.Int("height", 0, "window height (overrides config)")
		title      = flag.String("title", "", "window title (overrides config)")
		snapshot   = flag.String("snapshot", "", "render one frame to this .png or .bmp file and exit")
		softwareFl = flag.Bool("software", false, "render the snapshot on the CPU")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	triangle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := triangle.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = triangle.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *width > 0 || *height > 0 {
		w, h := cfg.Width, cfg.Height
		if *width > 0 {
			w = *width
		}
		if *height > 0 {
			h = *height
		}
		cfg = cfg.WithSize(w, h)
	}
	if *title != "" {
		cfg = cfg.WithTitle(*title)
	}

	if *snapshot != "" {
		mode := app.SnapshotAuto
		if *softwareFl {
			mode = app.SnapshotSoftware
		}
		img, err := app.RenderSnapshot(cfg, mode)
		if err != nil {
			log.Fatalf("Failed to render snapshot: %v", err)
		}
		if err := app.WriteImage(*snapshot, img); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Snapshot saved to %s (%dx%d, %s)", *snapshot, cfg.Width, cfg.Height, mode)
		return
	}

	if err := app.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
