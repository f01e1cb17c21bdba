// internal/effect/cryostasis.go
package effect

import (
	"math"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
)

// RefractedBeam is one damaging ray cast from the frozen anchor.
type RefractedBeam struct {
	X1, Y1, X2, Y2 float64
	Angle          float64
}

// BeamHit is the enemy a refracted beam struck this tick.
type BeamHit struct {
	Enemy  *component.Enemy
	Damage float64
}

// CryostasisBeam links the caster to an anchor enemy. After the freeze time
// the anchor is frozen for good and a growing fan of refracted beams sweeps
// from it, steered by the caster's movement.
type CryostasisBeam struct {
	CasterX, CasterY float64
	Target           *component.Enemy
	Duration         float64
	Age              float64
	Damage           float64
	BeamLength       float64
	MaxBeams         int

	freezeTriggered bool
	collapsed       bool
	baseCasterAngle float64
	tickTimer       float64
}

// NewCryostasisBeam aims a beam from the caster at target.
func NewCryostasisBeam(casterX, casterY float64, target *component.Enemy, stats defs.PowerStats) *CryostasisBeam {
	return &CryostasisBeam{
		CasterX:    casterX,
		CasterY:    casterY,
		Target:     target,
		Duration:   stats.Duration,
		Damage:     stats.Damage,
		BeamLength: stats.Radius,
		MaxBeams:   stats.IntCount(),
	}
}

// SetCaster updates where the caster stands. Call it every frame.
func (b *CryostasisBeam) SetCaster(x, y float64) {
	b.CasterX, b.CasterY = x, y
}

// Update ages the beam. A beam whose anchor died before freezing collapses.
func (b *CryostasisBeam) Update(dt float64) bool {
	if b.collapsed {
		return false
	}
	if b.Target == nil || (b.Target.Dead && !b.freezeTriggered) {
		b.collapsed = true
		return false
	}
	b.Age += dt
	if b.freezeTriggered {
		b.tickTimer -= dt
	}
	return b.Age < b.Duration
}

// ShouldTriggerFreeze reports that the freeze time has passed and the caller
// should freeze the anchor now.
func (b *CryostasisBeam) ShouldTriggerFreeze() bool {
	return !b.freezeTriggered && !b.collapsed && b.Target != nil && !b.Target.Dead &&
		b.Age >= config.CryostasisFreezeTime
}

// MarkFreezeTriggered latches the freeze and makes the anchor invulnerable
// for as long as the beam lasts.
func (b *CryostasisBeam) MarkFreezeTriggered() {
	if b.freezeTriggered {
		return
	}
	b.freezeTriggered = true
	b.baseCasterAngle = geom.AngleTo(b.Target.X, b.Target.Y, b.CasterX, b.CasterY)
	b.Target.CryostasisInvulnerable = true
	b.tickTimer = 0
}

// Frozen reports whether the freeze has been triggered.
func (b *CryostasisBeam) Frozen() bool {
	return b.freezeTriggered
}

// Intensity ramps from 0 to 1 over the freeze time.
func (b *CryostasisBeam) Intensity() float64 {
	if b.freezeTriggered {
		return 1
	}
	return geom.Clamp(b.Age/config.CryostasisFreezeTime, 0, 1)
}

// BeamCount is the number of refracted beams currently active.
func (b *CryostasisBeam) BeamCount() int {
	if !b.freezeTriggered {
		return 0
	}
	n := 1 + int(math.Floor((b.Age-config.CryostasisFreezeTime)/config.CryostasisBeamGrowth))
	if n < 1 {
		n = 1
	}
	if n > b.MaxBeams {
		n = b.MaxBeams
	}
	return n
}

// Beams returns the refracted beams. They point away from the caster and
// their heading swings by four times the caster's angular movement around
// the anchor.
func (b *CryostasisBeam) Beams() []RefractedBeam {
	n := b.BeamCount()
	if n == 0 {
		return nil
	}
	casterAngle := geom.AngleTo(b.Target.X, b.Target.Y, b.CasterX, b.CasterY)
	delta := geom.WrapAngle(casterAngle - b.baseCasterAngle)
	center := b.baseCasterAngle + math.Pi + config.CryostasisAmplification*delta

	beams := make([]RefractedBeam, n)
	for i := range beams {
		angle := center + (float64(i)-float64(n-1)/2)*config.CryostasisBeamSpread
		dx, dy := geom.FromAngle(angle, b.BeamLength)
		beams[i] = RefractedBeam{
			X1: b.Target.X, Y1: b.Target.Y,
			X2: b.Target.X + dx, Y2: b.Target.Y + dy,
			Angle: angle,
		}
	}
	return beams
}

// CheckHits returns, once per tick interval, the nearest live non-anchor
// enemy intersected by each refracted beam. Beams do not pierce.
func (b *CryostasisBeam) CheckHits(candidates []*component.Enemy) []BeamHit {
	if !b.freezeTriggered || b.tickTimer > 0 {
		return nil
	}
	b.tickTimer = config.CryostasisTickInterval

	var hits []BeamHit
	for _, beam := range b.Beams() {
		var nearest *component.Enemy
		best := math.MaxFloat64
		for _, e := range candidates {
			if e.Dead || e == b.Target {
				continue
			}
			hit, along := geom.SegmentCircle(beam.X1, beam.Y1, beam.X2, beam.Y2, e.Circle())
			if hit && along < best {
				best = along
				nearest = e
			}
		}
		if nearest != nil {
			hits = append(hits, BeamHit{Enemy: nearest, Damage: b.Damage})
		}
	}
	return hits
}

// Release gives the anchor back its vulnerability. Call it when the beam ends.
func (b *CryostasisBeam) Release() {
	if b.Target != nil {
		b.Target.CryostasisInvulnerable = false
	}
}
