package worldedit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing_file_gives_defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "editmode.yaml"))
		if err != nil {
			t.Fatalf("missing config should not error: %v", err)
		}
		if cfg != DefaultConfig() {
			t.Fatalf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("partial_file_overlays_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "editmode.yaml")
		src := "design_width: 2560\ndesign_height: 1440\ngrid_size: 16\n"
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if cfg.DesignWidth != 2560 || cfg.DesignHeight != 1440 || cfg.GridSize != 16 {
			t.Fatalf("overrides not applied: %+v", cfg)
		}
		def := DefaultConfig()
		if cfg.TileSize != def.TileSize || cfg.LayoutPath != def.LayoutPath || cfg.Backups != def.Backups {
			t.Fatalf("unset fields should keep defaults: %+v", cfg)
		}
	})

	t.Run("radius_bounds_stay_ordered", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "editmode.yaml")
		if err := os.WriteFile(path, []byte("wander_radius_min: 600\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if cfg.WanderRadiusMax < cfg.WanderRadiusMin {
			t.Fatalf("max %v below min %v", cfg.WanderRadiusMax, cfg.WanderRadiusMin)
		}
	})

	t.Run("malformed_yaml_errors_with_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "editmode.yaml")
		if err := os.WriteFile(path, []byte("grid_size: [oops\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadConfig(path)
		if err == nil {
			t.Fatalf("expected parse error")
		}
		if cfg != DefaultConfig() {
			t.Fatalf("expected defaults on parse error, got %+v", cfg)
		}
	})
}
