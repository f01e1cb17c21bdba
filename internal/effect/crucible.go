// internal/effect/crucible.go
package effect

import (
	"sort"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
)

// Phase thresholds as a fraction of the crucible's duration.
const (
	CrucibleDeliriumAt   = 0.3
	CrucibleImmobilizeAt = 0.7
	CrucibleBurstAt      = 0.9
)

// Burst is a detonation requested by the crucible's final phase.
type Burst struct {
	X, Y   float64
	Damage float64
}

// CrucibleEffect is a stationary psyche field that runs through three
// latched triggers over its life: delirium, immobilize, then burst.
type CrucibleEffect struct {
	X, Y            float64
	Radius          float64
	Duration        float64
	Age             float64
	Damage          float64
	ImmobilizeCount int
	StatusDuration  float64

	tickTimer       float64
	deliriumFired   bool
	immobilizeFired bool
	burstFired      bool
}

// NewCrucible places a crucible at (x, y).
func NewCrucible(x, y float64, stats defs.PowerStats) *CrucibleEffect {
	return &CrucibleEffect{
		X:               x,
		Y:               y,
		Radius:          stats.Radius,
		Duration:        stats.Duration,
		Damage:          stats.Damage,
		ImmobilizeCount: stats.IntCount(),
		StatusDuration:  stats.Value,
	}
}

// Update ages the crucible and returns false once it is over.
func (c *CrucibleEffect) Update(dt float64) bool {
	c.Age += dt
	c.tickTimer -= dt
	return c.Age < c.Duration
}

// Progress returns age/duration in [0, 1].
func (c *CrucibleEffect) Progress() float64 {
	if c.Duration <= 0 {
		return 1
	}
	return geom.Clamp(c.Age/c.Duration, 0, 1)
}

// Intensity follows the glow curve: dim up to 0.3 over the first 40%,
// brighten to 1 by 70%, then fade to 0.
func (c *CrucibleEffect) Intensity() float64 {
	p := c.Progress()
	switch {
	case p < 0.4:
		return 0.3 * p / 0.4
	case p < 0.7:
		return 0.3 + 0.7*(p-0.4)/0.3
	default:
		return geom.Clamp(1-(p-0.7)/0.3, 0, 1)
	}
}

// DamageTick returns the damage due this frame, scaled by intensity.
// ok is false between ticks.
func (c *CrucibleEffect) DamageTick() (amount float64, ok bool) {
	if c.tickTimer > 0 {
		return 0, false
	}
	c.tickTimer = config.CrucibleTickInterval
	amount = c.Damage * c.Intensity()
	return amount, amount > 0
}

// Contains reports whether e is alive and inside the field.
func (c *CrucibleEffect) Contains(e *component.Enemy) bool {
	return !e.Dead && geom.CircleCircle(geom.Circle{X: c.X, Y: c.Y, R: c.Radius}, e.Circle())
}

// ApplyPhases fires every trigger whose threshold has been passed and that
// has not fired yet. candidates should cover the field; anything outside it
// is ignored. It returns the bursts the caller must detonate.
func (c *CrucibleEffect) ApplyPhases(candidates []*component.Enemy, rng component.Rand) []Burst {
	p := c.Progress()

	if !c.deliriumFired && p >= CrucibleDeliriumAt {
		c.deliriumFired = true
		for _, e := range candidates {
			if c.Contains(e) {
				e.ApplyDelirious(c.StatusDuration, rng)
			}
		}
	}

	if !c.immobilizeFired && p >= CrucibleImmobilizeAt {
		c.immobilizeFired = true
		inside := make([]*component.Enemy, 0, len(candidates))
		for _, e := range candidates {
			if c.Contains(e) && !e.Status.PermanentlyFrozen && !e.IsStationary() {
				inside = append(inside, e)
			}
		}
		sort.SliceStable(inside, func(i, j int) bool {
			return geom.DistanceSq(c.X, c.Y, inside[i].X, inside[i].Y) < geom.DistanceSq(c.X, c.Y, inside[j].X, inside[j].Y)
		})
		if len(inside) > c.ImmobilizeCount {
			inside = inside[:c.ImmobilizeCount]
		}
		for _, e := range inside {
			e.ApplyImmobilize(c.StatusDuration)
		}
	}

	var bursts []Burst
	if !c.burstFired && p >= CrucibleBurstAt {
		c.burstFired = true
		for _, e := range candidates {
			if !c.Contains(e) || e.Status.ImmobilizeTime <= 0 {
				continue
			}
			bursts = append(bursts, Burst{X: e.X, Y: e.Y, Damage: config.ExplosionDamage})
			e.ApplyBurningPanic(c.StatusDuration, rng)
		}
	}
	return bursts
}

// Fired reports which triggers have gone off.
func (c *CrucibleEffect) Fired() (delirium, immobilize, burst bool) {
	return c.deliriumFired, c.immobilizeFired, c.burstFired
}
