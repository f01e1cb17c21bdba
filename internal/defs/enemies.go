// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific kind of enemy.
type EnemyDefinition struct {
	Kind       EnemyKind      `yaml:"kind"`
	Name       string         `yaml:"name"`
	Health     float64        `yaml:"health"`
	Damage     float64        `yaml:"damage"`
	Speed      float64        `yaml:"speed"`
	Radius     float64        `yaml:"radius"`
	XP         int            `yaml:"xp"`
	DropChance float64        `yaml:"drop_chance"`
	Crystal    Category       `yaml:"crystal"`
	Visuals    Visuals        `yaml:"visuals"`
	Behavior   BehaviorParams `yaml:"behavior"`
}

// BehaviorParams are the per-kind movement knobs. Each kind reads only its own.
type BehaviorParams struct {
	// fiery
	TrailInterval float64 `yaml:"trail_interval"`
	// fighter
	DashInterval   float64 `yaml:"dash_interval"`
	DashDuration   float64 `yaml:"dash_duration"`
	DashMultiplier float64 `yaml:"dash_multiplier"`
	// gravitational
	PullRadius   float64 `yaml:"pull_radius"`
	PullStrength float64 `yaml:"pull_strength"`
	// fast_purple
	ZigzagAmplitude float64 `yaml:"zigzag_amplitude"`
	ZigzagFrequency float64 `yaml:"zigzag_frequency"`
	// builder
	BuildRange float64 `yaml:"build_range"`
	BuildTime  float64 `yaml:"build_time"`
	// tower
	SpawnInterval float64   `yaml:"spawn_interval"`
	SpawnKind     EnemyKind `yaml:"spawn_kind"`
	// champion
	SlamInterval float64 `yaml:"slam_interval"`
	SlamRadius   float64 `yaml:"slam_radius"`
}

// Visuals contains parameters for rendering an enemy.
type Visuals struct {
	Color color.RGBA `yaml:"color"`
}
