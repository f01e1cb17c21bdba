// internal/effect/area.go
package effect

import (
	"image/color"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/types"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
)

// AreaKind tags where an area came from, mostly for drawing.
type AreaKind int

const (
	AreaPool AreaKind = iota
	AreaWell
	AreaTrail
	AreaExplosion
	AreaSlam
)

// AreaEffect is a circular zone. Slow and pull apply every tick; damage is
// gated by CanDamage once per DamageInterval.
type AreaEffect struct {
	Kind           AreaKind
	X, Y           float64
	Radius         float64
	Duration       float64
	Age            float64
	Damage         float64
	DamageInterval float64
	Slow           float64
	SlowDuration   float64
	Pull           float64
	Category       defs.Category
	Color          color.RGBA

	// CreatorID is never affected when ExcludeCreator is set.
	CreatorID      types.EntityID
	ExcludeCreator bool
	DamagesEnemies bool
	DamagesPlayer  bool

	damageTimer float64
}

// NewPowerArea builds a zone for a power cast at (x, y).
func NewPowerArea(kind AreaKind, x, y float64, category defs.Category, stats defs.PowerStats) *AreaEffect {
	interval := stats.Interval
	if interval <= 0 {
		interval = stats.Duration
	}
	return &AreaEffect{
		Kind:           kind,
		X:              x,
		Y:              y,
		Radius:         stats.Radius,
		Duration:       stats.Duration,
		Damage:         stats.Damage,
		DamageInterval: interval,
		Slow:           stats.Slow,
		SlowDuration:   stats.SlowDuration,
		Pull:           stats.Pull,
		Category:       category,
		DamagesEnemies: true,
	}
}

// NewTrail builds the burning patch a fiery or panicking enemy leaves behind.
// Fiery trails hurt the player; panic trails hurt other enemies.
func NewTrail(x, y float64, creator types.EntityID, hurtsPlayer bool) *AreaEffect {
	return &AreaEffect{
		Kind:           AreaTrail,
		X:              x,
		Y:              y,
		Radius:         config.TrailRadius,
		Duration:       config.TrailDuration,
		Damage:         config.TrailDamage,
		DamageInterval: config.TrailTickInterval,
		Category:       defs.CategoryHeat,
		Color:          config.BurningColor,
		CreatorID:      creator,
		ExcludeCreator: true,
		DamagesEnemies: !hurtsPlayer,
		DamagesPlayer:  hurtsPlayer,
	}
}

// NewExplosion builds a one-shot blast that damages enemies.
func NewExplosion(x, y, damage float64) *AreaEffect {
	return &AreaEffect{
		Kind:           AreaExplosion,
		X:              x,
		Y:              y,
		Radius:         config.ExplosionRadius,
		Duration:       config.ExplosionDuration,
		Damage:         damage,
		DamageInterval: config.ExplosionDuration * 2,
		Category:       defs.CategoryHeat,
		Color:          config.CrucibleColor,
		DamagesEnemies: true,
	}
}

// NewSlam builds a champion's ground slam. It only hurts the player.
func NewSlam(x, y, radius, damage float64, creator types.EntityID) *AreaEffect {
	return &AreaEffect{
		Kind:           AreaSlam,
		X:              x,
		Y:              y,
		Radius:         radius,
		Duration:       config.SlamDuration,
		Damage:         damage,
		DamageInterval: config.SlamDuration * 2,
		CreatorID:      creator,
		ExcludeCreator: true,
		DamagesPlayer:  true,
	}
}

// Update ages the area and returns false once it has expired.
func (a *AreaEffect) Update(dt float64) bool {
	a.Age += dt
	a.damageTimer -= dt
	return a.Age < a.Duration
}

// CanDamage reports whether a damage tick is due and, if so, starts the next
// interval. Call it once per frame.
func (a *AreaEffect) CanDamage() bool {
	if a.damageTimer > 0 {
		return false
	}
	a.damageTimer = a.DamageInterval
	return true
}

// Affects reports whether e is inside the zone and eligible.
func (a *AreaEffect) Affects(e *component.Enemy) bool {
	if e.Dead {
		return false
	}
	if a.ExcludeCreator && e.ID == a.CreatorID {
		return false
	}
	return geom.CircleCircle(geom.Circle{X: a.X, Y: a.Y, R: a.Radius}, e.Circle())
}

// AffectEnemy applies the per-tick slow and pull. It ignores the damage gate.
func (a *AreaEffect) AffectEnemy(e *component.Enemy, dt float64) {
	if a.Slow > 0 && a.SlowDuration > 0 {
		e.ApplySlow(a.Slow, a.SlowDuration)
	}
	if a.Pull > 0 && !e.IsStationary() {
		dx, dy := a.X-e.X, a.Y-e.Y
		dist := geom.Distance(0, 0, dx, dy)
		step := a.Pull * dt
		if step > dist {
			step = dist
		}
		nx, ny := geom.Normalize(dx, dy)
		e.X += nx * step
		e.Y += ny * step
	}
}

// AffectsPlayer reports whether the area can hurt a player occupying c.
func (a *AreaEffect) AffectsPlayer(c geom.Circle) bool {
	return a.DamagesPlayer && geom.CircleCircle(geom.Circle{X: a.X, Y: a.Y, R: a.Radius}, c)
}

// Progress returns age/duration in [0, 1].
func (a *AreaEffect) Progress() float64 {
	if a.Duration <= 0 {
		return 1
	}
	return geom.Clamp(a.Age/a.Duration, 0, 1)
}
