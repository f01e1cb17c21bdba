package effect

import (
	"math"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/types"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
)

// RingEffect is an expanding annulus that hits each enemy at most once.
type RingEffect struct {
	X, Y         float64
	MaxRadius    float64
	Duration     float64
	Age          float64
	Damage       float64
	Knockback    float64
	Slow         float64
	SlowDuration float64
	Category     defs.Category

	hit map[types.EntityID]struct{}
}

// NewRing starts a ring at (x, y).
func NewRing(x, y float64, category defs.Category, stats defs.PowerStats) *RingEffect {
	return &RingEffect{
		X:            x,
		Y:            y,
		MaxRadius:    stats.Radius,
		Duration:     stats.Duration,
		Damage:       stats.Damage,
		Knockback:    stats.Knockback,
		Slow:         stats.Slow,
		SlowDuration: stats.SlowDuration,
		Category:     category,
		hit:          make(map[types.EntityID]struct{}),
	}
}

// Update grows the ring and returns false when it has reached full size.
func (r *RingEffect) Update(dt float64) bool {
	r.Age += dt
	return r.Age < r.Duration
}

// CurrentRadius is age/duration of the maximum radius.
func (r *RingEffect) CurrentRadius() float64 {
	if r.Duration <= 0 {
		return r.MaxRadius
	}
	return geom.Clamp(r.Age/r.Duration, 0, 1) * r.MaxRadius
}

// CheckCollision reports a first hit on e when its centre lies within the
// band around the current radius. Knockback pushes outward.
func (r *RingEffect) CheckCollision(e *component.Enemy) bool {
	if e.Dead {
		return false
	}
	if _, done := r.hit[e.ID]; done {
		return false
	}
	d := geom.Distance(r.X, r.Y, e.X, e.Y)
	if math.Abs(d-r.CurrentRadius()) > config.RingBandHalfWidth {
		return false
	}
	r.hit[e.ID] = struct{}{}
	if r.Knockback > 0 {
		e.ApplyKnockback(e.X-r.X, e.Y-r.Y, r.Knockback)
	}
	if r.Slow > 0 && r.SlowDuration > 0 {
		e.ApplySlow(r.Slow, r.SlowDuration)
	}
	return true
}
