// internal/component/status_effect.go
package component

import (
	"math"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
)

// DeliriumPhase is what a delirious enemy is currently doing.
type DeliriumPhase int

const (
	DeliriumChase DeliriumPhase = iota
	DeliriumWander
)

// SlowEffect scales speed by 1-Amount while Time > 0.
type SlowEffect struct {
	Amount float64
	Time   float64
}

// Knockback is an impulse integrated into position and damped every tick.
type Knockback struct {
	VX, VY float64
}

// Delirium alternates between chasing and wandering.
type Delirium struct {
	Time          float64
	Phase         DeliriumPhase
	PhaseTimer    float64
	PhaseDuration float64
	WanderAngle   float64
}

// BurningPanic is forced erratic movement that leaves a trail.
type BurningPanic struct {
	Time          float64
	Angle         float64
	Speed         float64
	TrailTimer    float64
	TrailInterval float64
}

// StatusState is the status-effect bundle every enemy carries.
type StatusState struct {
	Slow              SlowEffect
	Knockback         Knockback
	Delirium          Delirium
	ImmobilizeTime    float64
	PermanentlyFrozen bool
	Burning           BurningPanic
}

// ApplySlow keeps the strongest amount and the longest time seen.
func (e *Enemy) ApplySlow(amount, duration float64) {
	amount = geom.Clamp(amount, 0, 1)
	s := &e.Status.Slow
	s.Amount = math.Max(s.Amount, amount)
	s.Time = math.Max(s.Time, duration)
}

// ApplyKnockback adds force along (dirX, dirY) to the pending impulse.
func (e *Enemy) ApplyKnockback(dirX, dirY, force float64) {
	nx, ny := geom.Normalize(dirX, dirY)
	e.Status.Knockback.VX += nx * force
	e.Status.Knockback.VY += ny * force
}

// ApplyDelirious extends delirium. Becoming delirious picks a random phase
// and wander heading.
func (e *Enemy) ApplyDelirious(duration float64, rng Rand) {
	if duration <= 0 {
		return
	}
	d := &e.Status.Delirium
	if d.Time <= 0 {
		d.Phase = DeliriumChase
		if rng.Float64() < 0.5 {
			d.Phase = DeliriumWander
		}
		d.WanderAngle = rng.Angle()
		d.PhaseTimer = 0
		d.PhaseDuration = config.DeliriumPhaseDuration
	}
	d.Time = math.Max(d.Time, duration)
}

// ApplyImmobilize extends the immobilize timer. It has no effect once frozen.
func (e *Enemy) ApplyImmobilize(duration float64) {
	if e.Status.PermanentlyFrozen {
		return
	}
	e.Status.ImmobilizeTime = math.Max(e.Status.ImmobilizeTime, duration)
}

// ApplyPermanentFreeze latches the enemy in place for the rest of its life.
// There is no way back. A panic already running plays out first, since
// burning outranks the freeze in the movement order.
func (e *Enemy) ApplyPermanentFreeze() {
	e.Status.PermanentlyFrozen = true
	e.Status.ImmobilizeTime = 0
}

// ApplyBurningPanic sets the panic timer to duration, replacing whatever was
// left, and breaks immobilize. Frozen enemies cannot panic.
func (e *Enemy) ApplyBurningPanic(duration float64, rng Rand) {
	if e.Status.PermanentlyFrozen || duration <= 0 {
		return
	}
	e.Status.Burning = BurningPanic{
		Time:          duration,
		Angle:         rng.Angle(),
		Speed:         config.BurningPanicSpeed,
		TrailTimer:    config.BurningTrailInterval,
		TrailInterval: config.BurningTrailInterval,
	}
	e.Status.ImmobilizeTime = 0
}

// CanMove reports whether the enemy may move by itself this tick.
func (e *Enemy) CanMove() bool {
	return !e.Status.PermanentlyFrozen && e.Status.ImmobilizeTime <= 0
}

// IsBurning reports whether burning panic is active.
func (e *Enemy) IsBurning() bool {
	return e.Status.Burning.Time > 0
}

// IsDelirious reports whether delirium is active.
func (e *Enemy) IsDelirious() bool {
	return e.Status.Delirium.Time > 0
}

// IsSlowed reports whether a slow is active.
func (e *Enemy) IsSlowed() bool {
	return e.Status.Slow.Time > 0
}

// CurrentSpeed returns the base speed reduced by any active slow.
func (e *Enemy) CurrentSpeed() float64 {
	if e.Status.Slow.Time > 0 {
		return e.BaseSpeed * (1 - e.Status.Slow.Amount)
	}
	return e.BaseSpeed
}

// TickStatus counts every status timer down by dt.
func (e *Enemy) TickStatus(dt float64, rng Rand) {
	s := &e.Status
	e.Flash.Update(dt)

	if s.Slow.Time > 0 {
		s.Slow.Time -= dt
		if s.Slow.Time <= 0 {
			s.Slow = SlowEffect{}
		}
	}

	if s.ImmobilizeTime > 0 {
		s.ImmobilizeTime = math.Max(0, s.ImmobilizeTime-dt)
	}

	if s.Delirium.Time > 0 {
		d := &s.Delirium
		d.Time -= dt
		d.PhaseTimer += dt
		if d.PhaseTimer >= d.PhaseDuration {
			d.PhaseTimer = 0
			if d.Phase == DeliriumChase {
				d.Phase = DeliriumWander
				d.WanderAngle = rng.Angle()
			} else {
				d.Phase = DeliriumChase
			}
		}
		if d.Time <= 0 {
			*d = Delirium{}
		}
	}

	if s.Burning.Time > 0 {
		s.Burning.Time -= dt
		if s.Burning.Time <= 0 {
			s.Burning = BurningPanic{}
		}
	}
}

// StepForcedMovement runs whichever status currently governs movement.
// Priority is burning panic, then immobilized or frozen, then delirium.
// handled is false when none applies and the kind's own movement should run.
// trail reports that a burning enemy is due to drop a trail.
func (e *Enemy) StepForcedMovement(dt, targetX, targetY float64, rng Rand) (handled, trail bool) {
	s := &e.Status
	switch {
	case s.Burning.Time > 0:
		b := &s.Burning
		if rng.Float64() < config.BurningPanicTurnChance {
			b.Angle += (rng.Float64()*2 - 1) * config.BurningPanicMaxTurn
		}
		e.MoveAlong(b.Angle, b.Speed*dt)
		b.TrailTimer -= dt
		if b.TrailTimer <= 0 {
			b.TrailTimer += b.TrailInterval
			trail = true
		}
		return true, trail
	case !e.CanMove():
		return true, false
	case s.Delirium.Time > 0:
		if s.Delirium.Phase == DeliriumChase {
			e.MoveToward(targetX, targetY, e.CurrentSpeed()*dt)
		} else {
			e.MoveAlong(s.Delirium.WanderAngle, e.CurrentSpeed()*dt)
		}
		return true, false
	}
	return false, false
}

// IntegrateKnockback moves the enemy by its impulse and damps it. It runs
// every tick whatever the movement state.
func (e *Enemy) IntegrateKnockback(dt float64) {
	k := &e.Status.Knockback
	if k.VX == 0 && k.VY == 0 {
		return
	}
	e.X += k.VX * dt * config.KnockbackScale
	e.Y += k.VY * dt * config.KnockbackScale
	k.VX *= config.KnockbackDamping
	k.VY *= config.KnockbackDamping
	if math.Abs(k.VX) < config.KnockbackEpsilon && math.Abs(k.VY) < config.KnockbackEpsilon {
		k.VX, k.VY = 0, 0
	}
}
