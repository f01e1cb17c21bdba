// internal/effect/projectile.go
package effect

import (
	"image/color"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/types"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
)

// Projectile flies in a straight line and damages what it touches.
type Projectile struct {
	X, Y         float64
	VX, VY       float64
	Radius       float64
	Damage       float64
	Lifetime     float64
	Age          float64
	Pierce       bool
	Knockback    float64
	Slow         float64
	SlowDuration float64
	PowerID      string
	Category     defs.Category
	Color        color.RGBA

	hit map[types.EntityID]struct{}
}

// NewProjectile launches a projectile from (x, y) along angle using the
// power's stats at the casting level.
func NewProjectile(x, y, angle float64, powerID string, category defs.Category, stats defs.PowerStats) *Projectile {
	vx, vy := geom.FromAngle(angle, stats.Speed)
	return &Projectile{
		X:            x,
		Y:            y,
		VX:           vx,
		VY:           vy,
		Radius:       stats.Radius,
		Damage:       stats.Damage,
		Lifetime:     stats.Duration,
		Pierce:       stats.Pierce,
		Knockback:    stats.Knockback,
		Slow:         stats.Slow,
		SlowDuration: stats.SlowDuration,
		PowerID:      powerID,
		Category:     category,
		hit:          make(map[types.EntityID]struct{}),
	}
}

// Update moves the projectile. It returns false once the lifetime is spent.
func (p *Projectile) Update(dt float64) bool {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Age += dt
	return p.Age < p.Lifetime
}

// CheckCollision tests e against the projectile. On a first contact it
// applies knockback and slow, and reports whether the projectile is used up.
// Damage is left to the caller.
func (p *Projectile) CheckCollision(e *component.Enemy) (hit, consume bool) {
	if e.Dead {
		return false, false
	}
	if _, done := p.hit[e.ID]; done {
		return false, false
	}
	if !geom.CircleCircle(geom.Circle{X: p.X, Y: p.Y, R: p.Radius}, e.Circle()) {
		return false, false
	}
	p.hit[e.ID] = struct{}{}
	if p.Knockback > 0 {
		e.ApplyKnockback(p.VX, p.VY, p.Knockback)
	}
	if p.Slow > 0 && p.SlowDuration > 0 {
		e.ApplySlow(p.Slow, p.SlowDuration)
	}
	return true, !p.Pierce
}
