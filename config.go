package worldedit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the editor's tunables, loaded from editmode.yaml. Zero
// fields fall back to the defaults, so a partial file only overrides what it
// names.
type Config struct {
	DesignWidth        int     `yaml:"design_width"`
	DesignHeight       int     `yaml:"design_height"`
	GridSize           int     `yaml:"grid_size"`
	TileSize           int     `yaml:"tile_size"`
	SpriteDir          string  `yaml:"sprite_dir"`
	LayoutPath         string  `yaml:"layout_path"`
	Backups            int     `yaml:"backups"`
	WanderRadiusMin    float64 `yaml:"wander_radius_min"`
	WanderRadiusMax    float64 `yaml:"wander_radius_max"`
	WaypointPickRadius float64 `yaml:"waypoint_pick_radius"`
}

// DefaultConfig returns the compiled-in settings.
func DefaultConfig() Config {
	return Config{
		DesignWidth:        1920,
		DesignHeight:       1080,
		GridSize:           32,
		TileSize:           32,
		SpriteDir:          "assets/sprites",
		LayoutPath:         "layouts/world_layout.json",
		Backups:            5,
		WanderRadiusMin:    20,
		WanderRadiusMax:    500,
		WaypointPickRadius: 15,
	}
}

// LoadConfig reads filename and overlays it on the defaults. A missing file
// is not an error; the defaults come back as-is.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("worldedit: load %s: %w", filename, err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("worldedit: unmarshal %s: %w", filename, err)
	}
	cfg.merge(file)
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if o.DesignWidth > 0 {
		c.DesignWidth = o.DesignWidth
	}
	if o.DesignHeight > 0 {
		c.DesignHeight = o.DesignHeight
	}
	if o.GridSize > 0 {
		c.GridSize = o.GridSize
	}
	if o.TileSize > 0 {
		c.TileSize = o.TileSize
	}
	if o.SpriteDir != "" {
		c.SpriteDir = o.SpriteDir
	}
	if o.LayoutPath != "" {
		c.LayoutPath = o.LayoutPath
	}
	if o.Backups > 0 {
		c.Backups = o.Backups
	}
	if o.WanderRadiusMin > 0 {
		c.WanderRadiusMin = o.WanderRadiusMin
	}
	if o.WanderRadiusMax > 0 {
		c.WanderRadiusMax = o.WanderRadiusMax
	}
	if o.WaypointPickRadius > 0 {
		c.WaypointPickRadius = o.WaypointPickRadius
	}
	if c.WanderRadiusMax < c.WanderRadiusMin {
		c.WanderRadiusMax = c.WanderRadiusMin
	}
}
