package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/worldedit"
	"github.com/milk9111/worldedit/assets"
)

func main() {
	configPath := flag.String("config", "editmode.yaml", "Editor config file")
	spriteDir := flag.String("sprites", "", "Sprite directory (overrides config)")
	layoutPath := flag.String("layout", "", "World layout file (overrides config)")
	flag.Parse()

	log.Println("Edit mode starting...")

	cfg, err := worldedit.LoadConfig(*configPath)
	if err != nil {
		log.Printf("load config: %v; using defaults", err)
	}
	if *spriteDir != "" {
		cfg.SpriteDir = *spriteDir
	}
	if *layoutPath != "" {
		cfg.LayoutPath = *layoutPath
	}

	idx, err := assets.NewIndex(cfg.SpriteDir)
	if err != nil {
		log.Fatalf("Failed to scan sprites in %s: %v", cfg.SpriteDir, err)
	}

	store := &worldedit.Store{Path: cfg.LayoutPath, Backups: cfg.Backups}
	layout, fresh, err := store.Load()
	if err != nil {
		log.Printf("load layout: %v; starting empty", err)
	} else if fresh {
		log.Printf("no layout at %s yet; starting empty", cfg.LayoutPath)
	}

	session := worldedit.NewSession(layout, idx, store, cfg)

	watcher, err := assets.NewWatcher(cfg.SpriteDir)
	if err != nil {
		log.Printf("sprite watching disabled: %v", err)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	game := NewEditModeGame(session, idx, watcher)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("worldedit")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
