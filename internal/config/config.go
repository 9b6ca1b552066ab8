// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import "fmt"

// DoomConfig contains all tunables for the first-person raycaster.
type DoomConfig struct {
	Screen   DoomScreen   `yaml:"screen"`
	World    DoomWorld    `yaml:"world"`
	Movement DoomMovement `yaml:"movement"`
}

// DoomScreen defines the offscreen render resolution used by the screenshot
// path. Terminal play derives its resolution from the terminal size.
type DoomScreen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DoomWorld defines the map grid and texture parameters.
type DoomWorld struct {
	GridSize    int     `yaml:"grid_size"`    // Square map side length in cells
	TextureSize int     `yaml:"texture_size"` // Square texture side length in pixels
	FOVScale    float64 `yaml:"fov_scale"`    // Camera plane magnitude (0.66 ≈ 66°)
}

// DoomMovement defines per-tick movement magnitudes.
type DoomMovement struct {
	MoveSpeed float64 `yaml:"move_speed"` // Cells per tick while walking
	RotSpeed  float64 `yaml:"rot_speed"`  // Radians per tick while turning
}

// Validate checks the config for values the renderer cannot work with.
func (c DoomConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive, got %dx%d",
			c.Screen.Width, c.Screen.Height)
	}
	if c.World.GridSize < 3 {
		return fmt.Errorf("config: grid_size must be at least 3, got %d", c.World.GridSize)
	}
	// The texture generators carve features at size/8 granularity, so anything
	// smaller has no pattern to draw.
	if c.World.TextureSize < 8 || c.World.TextureSize&(c.World.TextureSize-1) != 0 {
		return fmt.Errorf("config: texture_size must be a power of two of at least 8, got %d",
			c.World.TextureSize)
	}
	if c.World.FOVScale <= 0 {
		return fmt.Errorf("config: fov_scale must be positive, got %g", c.World.FOVScale)
	}
	if c.Movement.MoveSpeed <= 0 || c.Movement.RotSpeed <= 0 {
		return fmt.Errorf("config: movement speeds must be positive")
	}
	return nil
}

// MuncherConfig contains all tunables for the pellet maze game.
type MuncherConfig struct {
	MoveEveryTicks int `yaml:"move_every_ticks"` // Ticks between player moves
	PelletScore    int `yaml:"pellet_score"`     // Points per pellet
	LevelBonus     int `yaml:"level_bonus"`      // Points for clearing a level
}

// Validate checks the config for unplayable values.
func (c MuncherConfig) Validate() error {
	if c.MoveEveryTicks <= 0 {
		return fmt.Errorf("config: move_every_ticks must be positive, got %d", c.MoveEveryTicks)
	}
	if c.PelletScore <= 0 {
		return fmt.Errorf("config: pellet_score must be positive, got %d", c.PelletScore)
	}
	return nil
}
