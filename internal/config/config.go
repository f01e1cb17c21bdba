// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.1 // longest simulated step during a frame hitch

	SpatialCellSize = 100.0
	DespawnDistance = 1600.0

	// Status effects
	KnockbackDamping       = 0.9  // per tick
	KnockbackScale         = 10.0 // position += impulse * dt * scale
	KnockbackEpsilon       = 0.01
	HurtFlashDuration      = 0.1
	DeliriumPhaseDuration  = 0.8
	BurningPanicSpeed      = 220.0
	BurningTrailInterval   = 0.2
	BurningPanicTurnChance = 0.05
	BurningPanicMaxTurn    = math.Pi / 4

	// Effects
	RingBandHalfWidth       = 20.0
	CryostasisFreezeTime    = 2.0
	CryostasisTickInterval  = 0.05
	CryostasisAmplification = 4.0
	CryostasisBeamSpread    = 0.3 // radians between neighbouring refracted beams
	CryostasisBeamGrowth    = 0.5 // seconds per extra refracted beam
	CrucibleTickInterval    = 0.25
	ShieldRehitCooldown     = 0.5
	TrailDuration           = 1.5
	TrailRadius             = 18.0
	TrailTickInterval       = 0.25
	ExplosionDuration       = 0.2
	ExplosionRadius         = 45.0
	ExplosionDamage         = 15.0
	TrailDamage             = 4.0
	SlamDuration            = 0.3
	ShieldHitRadius         = 14.0

	// Player
	PlayerRadius          = 15.0
	PlayerSpeed           = 200.0
	PlayerMaxHealth       = 100.0
	PlayerInvulnerability = 0.5
	BaseXPToLevel         = 10
	XPLevelGrowth         = 1.35

	// Crystals
	CrystalRadius          = 8.0
	CrystalPickupRadius    = 30.0
	CrystalMagnetRadius    = 120.0
	CrystalMagnetSpeed     = 320.0
	CrystalsPerSupercharge = 5
	CrystalAttractRange    = 250.0 // small enemies start circling a crystal this close
	OrbitReach             = 1.3   // orbit time counts within OrbitRadius * OrbitReach

	// Camera
	CameraFollowRate = 6.0

	// UI
	ClickCooldown = 200 // ms between accepted clicks on a HUD button
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GridLineColor    = color.RGBA{40, 40, 60, 255}
	PlayerColor      = color.RGBA{240, 240, 240, 255}
	HurtFlashColor   = color.RGBA{255, 255, 255, 255}
	FrozenColor      = color.RGBA{170, 220, 255, 255}
	BurningColor     = color.RGBA{255, 120, 0, 255}
	DeliriousColor   = color.RGBA{200, 120, 255, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	HealthFillColor  = color.RGBA{220, 60, 60, 220}
	XPFillColor      = color.RGBA{70, 100, 120, 220}
	IndicatorStroke  = color.RGBA{240, 240, 240, 255}
	ShieldColor      = color.RGBA{120, 200, 255, 200}
	BeamColor        = color.RGBA{150, 230, 255, 255}
	RingColor        = color.RGBA{180, 220, 255, 160}
	CrucibleColor    = color.RGBA{255, 90, 40, 255}
	PauseOverlay     = color.RGBA{0, 0, 0, 128}
	CategoryColors   = map[string]color.RGBA{
		"heat":    {255, 110, 40, 255},
		"frost":   {120, 200, 255, 255},
		"psyche":  {200, 120, 255, 255},
		"kinetic": {230, 230, 120, 255},
	}
)

// XPForNextLevel returns the experience needed to advance past level.
func XPForNextLevel(level int) int {
	need := float64(BaseXPToLevel)
	for i := 1; i < level; i++ {
		need *= XPLevelGrowth
	}
	return int(need + 0.5)
}
