// internal/component/player.go
package component

import (
	"math"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/status"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
)

// MaxDamageReduction caps the reduction passives can give.
const MaxDamageReduction = 0.6

// Player is the avatar: movement, health, inventory and levelling.
type Player struct {
	Position
	Radius    float64
	Health    float64
	MaxHealth float64
	BaseSpeed float64

	// Movement direction set by input, already normalised.
	MoveX, MoveY float64
	// External drift for this frame (gravitational pull). Consumed by Update.
	PullX, PullY float64

	Invulnerable    float64
	InvulnDuration  float64
	DamageReduction float64
	SpeedBonus      float64
	Dead            bool
	Flash           DamageFlash

	Level         int
	XP            int
	XPToNextLevel int
	UpgradePoints int

	Crystals map[defs.Category]int
	// Powers maps power id to its stored level. Passive upgrades count per
	// category and shorten cooldowns of that category.
	Powers          map[string]int
	PowerOrder      []string
	PassiveUpgrades map[defs.Category]int

	Effects *status.Manager
}

// NewPlayer creates a level-1 player at the origin.
func NewPlayer(cfg config.PlayerSettings) *Player {
	return &Player{
		Radius:          cfg.Radius,
		Health:          cfg.MaxHealth,
		MaxHealth:       cfg.MaxHealth,
		BaseSpeed:       cfg.Speed,
		InvulnDuration:  cfg.Invulnerability,
		Level:           1,
		XPToNextLevel:   config.XPForNextLevel(1),
		Crystals:        make(map[defs.Category]int),
		Powers:          make(map[string]int),
		PassiveUpgrades: make(map[defs.Category]int),
		Effects:         status.NewManager(),
	}
}

// SetMovement sets the desired direction. Any vector is normalised;
// (0, 0) stops the player.
func (p *Player) SetMovement(dx, dy float64) {
	p.MoveX, p.MoveY = geom.Normalize(dx, dy)
}

// Speed returns the movement speed with passive and haste bonuses.
func (p *Player) Speed() float64 {
	return p.BaseSpeed * (1 + p.SpeedBonus) * p.Effects.Multiplier(status.Haste)
}

// Update moves the player and counts timers down.
func (p *Player) Update(dt float64) {
	if p.Dead {
		return
	}
	p.Effects.Update(dt)
	p.Flash.Update(dt)
	if p.Invulnerable > 0 {
		p.Invulnerable = math.Max(0, p.Invulnerable-dt)
	}
	speed := p.Speed()
	p.X += p.MoveX*speed*dt + p.PullX*dt
	p.Y += p.MoveY*speed*dt + p.PullY*dt
	p.PullX, p.PullY = 0, 0
}

// TakeDamage applies amount after damage reduction and starts the
// invulnerability window. It returns the damage actually dealt, 0 while
// invulnerable.
func (p *Player) TakeDamage(amount float64) float64 {
	if p.Dead || p.Invulnerable > 0 || amount <= 0 {
		return 0
	}
	applied := amount * (1 - geom.Clamp(p.DamageReduction, 0, MaxDamageReduction))
	p.Health -= applied
	p.Invulnerable = p.InvulnDuration
	p.Flash.Trigger(config.HurtFlashDuration)
	if p.Health <= 0 {
		p.Health = 0
		p.Dead = true
	}
	return applied
}

// AddXP adds experience and returns how many levels were gained.
func (p *Player) AddXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	p.XP += amount
	gained := 0
	for p.XP >= p.XPToNextLevel {
		p.XP -= p.XPToNextLevel
		p.Level++
		p.UpgradePoints++
		p.XPToNextLevel = config.XPForNextLevel(p.Level)
		gained++
	}
	return gained
}

// PowerLevel returns the stored level of a power, 0 when not owned.
func (p *Player) PowerLevel(id string) int {
	return p.Powers[id]
}

// GrantPower adds a power at level 1 or raises its level by one, up to max.
// It reports whether anything changed.
func (p *Player) GrantPower(id string, maxLevel int) bool {
	lvl, owned := p.Powers[id]
	if !owned {
		p.Powers[id] = 1
		p.PowerOrder = append(p.PowerOrder, id)
		return true
	}
	if lvl >= maxLevel {
		return false
	}
	p.Powers[id] = lvl + 1
	return true
}

// HealthRatio returns health/maxHealth.
func (p *Player) HealthRatio() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return geom.Clamp(p.Health/p.MaxHealth, 0, 1)
}

// Circle returns the collision shape.
func (p *Player) Circle() geom.Circle {
	return geom.Circle{X: p.X, Y: p.Y, R: p.Radius}
}
