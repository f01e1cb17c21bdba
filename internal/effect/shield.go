package effect

import (
	"math"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/types"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
)

// OrbitalShield circles the player and strikes enemies it passes through.
// Each enemy can be struck again only after ShieldRehitCooldown.
type OrbitalShield struct {
	X, Y         float64
	Angle        float64
	OrbitRadius  float64
	AngularSpeed float64
	Radius       float64
	Damage       float64
	Knockback    float64
	Duration     float64
	Age          float64

	cooldowns map[types.EntityID]float64
}

// NewOrbitalShield creates a shield at angle around (cx, cy).
func NewOrbitalShield(cx, cy, angle float64, stats defs.PowerStats) *OrbitalShield {
	s := &OrbitalShield{
		Angle:        angle,
		OrbitRadius:  stats.Radius,
		AngularSpeed: stats.Speed,
		Radius:       config.ShieldHitRadius,
		Damage:       stats.Damage,
		Knockback:    stats.Knockback,
		Duration:     stats.Duration,
		cooldowns:    make(map[types.EntityID]float64),
	}
	s.Follow(cx, cy)
	return s
}

// Follow places the shield on its orbit around (cx, cy).
func (s *OrbitalShield) Follow(cx, cy float64) {
	dx, dy := geom.FromAngle(s.Angle, s.OrbitRadius)
	s.X, s.Y = cx+dx, cy+dy
}

// Update advances the orbit angle and re-hit timers. Call Follow afterwards
// with the player's position.
func (s *OrbitalShield) Update(dt float64) bool {
	s.Angle = math.Mod(s.Angle+s.AngularSpeed*dt, 2*math.Pi)
	s.Age += dt
	for id, left := range s.cooldowns {
		left -= dt
		if left <= 0 {
			delete(s.cooldowns, id)
		} else {
			s.cooldowns[id] = left
		}
	}
	return s.Age < s.Duration
}

// CheckCollision reports a strike on e and starts its re-hit cooldown.
func (s *OrbitalShield) CheckCollision(e *component.Enemy) bool {
	if e.Dead {
		return false
	}
	if _, cooling := s.cooldowns[e.ID]; cooling {
		return false
	}
	if !geom.CircleCircle(geom.Circle{X: s.X, Y: s.Y, R: s.Radius}, e.Circle()) {
		return false
	}
	s.cooldowns[e.ID] = config.ShieldRehitCooldown
	if s.Knockback > 0 {
		e.ApplyKnockback(e.X-s.X, e.Y-s.Y, s.Knockback)
	}
	return true
}
