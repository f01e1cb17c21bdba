package component

import (
	"image/color"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/types"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
)

// Enemy is one hostile entity. Every variant shares this record; Kind selects
// the movement function and Params carries the kind's tuning.
type Enemy struct {
	ID   types.EntityID
	Kind defs.EnemyKind
	Position
	Radius     float64
	Health     float64
	MaxHealth  float64
	Damage     float64
	BaseSpeed  float64
	XP         int
	Color      color.RGBA
	DropChance float64
	Crystal    defs.Category

	// Dead is set by the first damage that crosses zero. The enemy stays in
	// its collection until the end-of-frame compaction.
	Dead bool
	// CryostasisInvulnerable is held by a cryostasis beam while the enemy is
	// its anchor.
	CryostasisInvulnerable bool

	Flash    DamageFlash
	Status   StatusState
	Behavior BehaviorState
	Params   defs.BehaviorParams
}

// BehaviorState holds the per-kind timers. Each kind touches only its own fields.
type BehaviorState struct {
	// fighter
	DashTimer     float64
	DashRemaining float64
	// fast_purple
	ZigzagTime float64
	// fiery
	TrailTimer float64
	// builder
	BuildTimer float64
	Building   bool
	// tower
	SpawnTimer float64
	// champion
	SlamTimer float64
	// small enemies circling a crystal
	OrbitCrystal types.EntityID
	OrbitTime    float64
	OrbitAngle   float64
}

// NewEnemy builds an enemy at (x, y) from its definition.
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, x, y float64) *Enemy {
	e := &Enemy{
		ID:         id,
		Kind:       def.Kind,
		Position:   Position{X: x, Y: y},
		Radius:     def.Radius,
		Health:     def.Health,
		MaxHealth:  def.Health,
		Damage:     def.Damage,
		BaseSpeed:  def.Speed,
		XP:         def.XP,
		Color:      def.Visuals.Color,
		DropChance: def.DropChance,
		Crystal:    def.Crystal,
		Params:     def.Behavior,
	}
	e.Behavior.DashTimer = def.Behavior.DashInterval
	e.Behavior.TrailTimer = def.Behavior.TrailInterval
	e.Behavior.BuildTimer = def.Behavior.BuildTime
	e.Behavior.SpawnTimer = def.Behavior.SpawnInterval
	e.Behavior.SlamTimer = def.Behavior.SlamInterval
	return e
}

// Circle returns the collision shape.
func (e *Enemy) Circle() geom.Circle {
	return geom.Circle{X: e.X, Y: e.Y, R: e.Radius}
}

// Alive reports whether the enemy still takes part in the frame.
func (e *Enemy) Alive() bool {
	return !e.Dead
}

// HealthRatio returns health/maxHealth clamped to [0, 1].
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return geom.Clamp(e.Health/e.MaxHealth, 0, 1)
}

// TakeDamage subtracts amount and reports whether health reached zero.
// Health is not clamped. An enemy anchoring a cryostasis beam ignores damage.
func (e *Enemy) TakeDamage(amount float64) bool {
	if e.CryostasisInvulnerable {
		return false
	}
	e.Health -= amount
	e.Flash.Trigger(config.HurtFlashDuration)
	return e.Health <= 0
}

// IsStationary reports whether the kind never moves on its own.
func (e *Enemy) IsStationary() bool {
	return e.Kind == defs.EnemyTower
}
