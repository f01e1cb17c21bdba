// internal/config/settings.go
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds the tunables of a run. Gameplay tables (enemy stats, powers)
// live in the defs library; these are the knobs around them.
type Settings struct {
	Seed            int64            `yaml:"seed"`
	MaxDeltaTime    float64          `yaml:"max_delta_time"`
	SpatialCellSize float64          `yaml:"spatial_cell_size"`
	DespawnDistance float64          `yaml:"despawn_distance"`
	Player          PlayerSettings   `yaml:"player"`
	Spawning        SpawnSettings    `yaml:"spawning"`
	Crystals        CrystalSettings  `yaml:"crystals"`
	Champions       ChampionSettings `yaml:"champions"`
	Burning         BurningSettings  `yaml:"burning"`
	StartingPowers  []string         `yaml:"starting_powers"`
}

// PlayerSettings configures the player avatar.
type PlayerSettings struct {
	MaxHealth       float64 `yaml:"max_health"`
	Speed           float64 `yaml:"speed"`
	Radius          float64 `yaml:"radius"`
	Invulnerability float64 `yaml:"invulnerability"`
}

// SpawnSettings configures the wave spawner.
type SpawnSettings struct {
	InitialInterval float64 `yaml:"initial_interval"`
	MinInterval     float64 `yaml:"min_interval"`
	RampPerMinute   float64 `yaml:"ramp_per_minute"`
	SpawnDistance   float64 `yaml:"spawn_distance"`
	MaxEnemies      int     `yaml:"max_enemies"`
	BatchSize       int     `yaml:"batch_size"`
}

// CrystalSettings configures pickups and supercharge rewards.
type CrystalSettings struct {
	PickupRadius        float64 `yaml:"pickup_radius"`
	MagnetRadius        float64 `yaml:"magnet_radius"`
	PerSupercharge      int     `yaml:"per_supercharge"`
	SuperchargeDuration float64 `yaml:"supercharge_duration"`
	SuperchargeBonus    int     `yaml:"supercharge_bonus"`
	// HasteMagnitude is the extra movement speed a kinetic supercharge gives.
	HasteMagnitude      float64 `yaml:"haste_magnitude"`
}

// ChampionSettings configures crystal-orbit fusion.
type ChampionSettings struct {
	OrbitRadius      float64 `yaml:"orbit_radius"`
	FuseTime         float64 `yaml:"fuse_time"`
	FuseCount        int     `yaml:"fuse_count"`
	HealthMultiplier float64 `yaml:"health_multiplier"`
	XPMultiplier     float64 `yaml:"xp_multiplier"`
}

// BurningSettings configures damage to enemies in burning panic.
type BurningSettings struct {
	DPS float64 `yaml:"dps"`
}

// DefaultSettings returns the hardcoded settings used when the embedded YAML fails to parse.
func DefaultSettings() Settings {
	return Settings{
		Seed:            0,
		MaxDeltaTime:    MaxDeltaTime,
		SpatialCellSize: SpatialCellSize,
		DespawnDistance: DespawnDistance,
		Player: PlayerSettings{
			MaxHealth:       PlayerMaxHealth,
			Speed:           PlayerSpeed,
			Radius:          PlayerRadius,
			Invulnerability: PlayerInvulnerability,
		},
		Spawning: SpawnSettings{
			InitialInterval: 1.2,
			MinInterval:     0.25,
			RampPerMinute:   0.15,
			SpawnDistance:   700,
			MaxEnemies:      400,
			BatchSize:       2,
		},
		Crystals: CrystalSettings{
			PickupRadius:        CrystalPickupRadius,
			MagnetRadius:        CrystalMagnetRadius,
			PerSupercharge:      CrystalsPerSupercharge,
			SuperchargeDuration: 8,
			SuperchargeBonus:    1,
			HasteMagnitude:      0.25,
		},
		Champions: ChampionSettings{
			OrbitRadius:      70,
			FuseTime:         4,
			FuseCount:        5,
			HealthMultiplier: 1.5,
			XPMultiplier:     2,
		},
		Burning:        BurningSettings{DPS: 12},
		StartingPowers: []string{"fireball"},
	}
}

// LoadSettings loads run settings.
// Search order: customPath -> ~/.crystal-survivors/settings.yaml -> ./configs/settings.yaml -> embedded default
func LoadSettings(customPath string) (Settings, error) {
	cfg := DefaultSettings()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read settings %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse settings %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userPath := userConfigPath("settings.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultSettings()
		}
	}

	if data, err := os.ReadFile("configs/settings.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultSettings()
	}

	if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
		return DefaultSettings(), nil
	}
	return cfg, cfg.Validate()
}

// ParseSettings decodes YAML on top of the defaults and validates the result.
func ParseSettings(data []byte) (Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse settings: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the simulation cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.MaxDeltaTime <= 0:
		return fmt.Errorf("%w: max_delta_time must be positive, got %v", ErrInvalidSettings, s.MaxDeltaTime)
	case s.SpatialCellSize <= 0:
		return fmt.Errorf("%w: spatial_cell_size must be positive, got %v", ErrInvalidSettings, s.SpatialCellSize)
	case s.DespawnDistance <= 0:
		return fmt.Errorf("%w: despawn_distance must be positive", ErrInvalidSettings)
	case s.Player.MaxHealth <= 0 || s.Player.Radius < 0 || s.Player.Speed < 0:
		return fmt.Errorf("%w: player stats out of range", ErrInvalidSettings)
	case s.Spawning.InitialInterval <= 0 || s.Spawning.MinInterval <= 0:
		return fmt.Errorf("%w: spawn intervals must be positive", ErrInvalidSettings)
	case s.Crystals.HasteMagnitude < 0:
		return fmt.Errorf("%w: crystals.haste_magnitude must not be negative", ErrInvalidSettings)
	case s.Crystals.PerSupercharge <= 0 || s.Crystals.SuperchargeDuration <= 0:
		return fmt.Errorf("%w: crystal supercharge settings must be positive", ErrInvalidSettings)
	case s.Champions.FuseCount < 2 || s.Champions.FuseTime <= 0:
		return fmt.Errorf("%w: champions need fuse_count >= 2 and positive fuse_time", ErrInvalidSettings)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crystal-survivors", filename)
}
