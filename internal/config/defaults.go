package config

import _ "embed"

//go:embed defaults/doom.yaml
var defaultDoomYAML []byte

//go:embed defaults/muncher.yaml
var defaultMuncherYAML []byte

// DefaultDoom returns the hardcoded raycaster defaults, matching
// defaults/doom.yaml. Used as a last resort and by tests.
func DefaultDoom() DoomConfig {
	return DoomConfig{
		Screen:   DoomScreen{Width: 960, Height: 720},
		World:    DoomWorld{GridSize: 32, TextureSize: 64, FOVScale: 0.66},
		Movement: DoomMovement{MoveSpeed: 0.12, RotSpeed: 0.07},
	}
}

// DefaultMuncher returns the hardcoded pellet maze defaults, matching
// defaults/muncher.yaml.
func DefaultMuncher() MuncherConfig {
	return MuncherConfig{
		MoveEveryTicks: 6,
		PelletScore:    10,
		LevelBonus:     100,
	}
}
