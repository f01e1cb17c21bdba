// internal/system/enemy_behavior.go
package system

import (
	"math"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
)

// updateEnemy runs one tick for e: status timers, then the status-governed
// movement or the kind's own behaviour, then knockback.
func (m *EnemyManager) updateEnemy(e *component.Enemy, dt, tx, ty float64, ctx *EnemyContext) {
	e.TickStatus(dt, m.rng)

	handled, trail := e.StepForcedMovement(dt, tx, ty, m.rng)
	if trail {
		m.result.Trails = append(m.result.Trails, TrailRequest{X: e.X, Y: e.Y, Creator: e.ID})
	}
	if handled {
		e.Behavior.OrbitCrystal = 0
		e.Behavior.OrbitTime = 0
	} else {
		m.behave(e, dt, tx, ty, ctx)
	}

	// Fiery trails keep coming while the enemy is held in place.
	if e.Kind == defs.EnemyFiery && !e.IsBurning() && !e.Status.PermanentlyFrozen {
		e.Behavior.TrailTimer -= dt
		if e.Behavior.TrailTimer <= 0 {
			e.Behavior.TrailTimer = e.Params.TrailInterval
			m.result.Trails = append(m.result.Trails, TrailRequest{X: e.X, Y: e.Y, Creator: e.ID, HurtsPlayer: true})
		}
	}

	if !e.IsStationary() {
		e.IntegrateKnockback(dt)
	}
}

func (m *EnemyManager) behave(e *component.Enemy, dt, tx, ty float64, ctx *EnemyContext) {
	speed := e.CurrentSpeed()

	switch e.Kind {
	case defs.EnemySmall:
		if m.orbitCrystal(e, dt, speed, ctx) {
			return
		}
		e.MoveToward(tx, ty, speed*dt)

	case defs.EnemyMedium, defs.EnemyLarge, defs.EnemyFiery:
		e.MoveToward(tx, ty, speed*dt)

	case defs.EnemyFighter:
		b := &e.Behavior
		if b.DashRemaining > 0 {
			b.DashRemaining -= dt
			speed *= e.Params.DashMultiplier
		} else {
			b.DashTimer -= dt
			if b.DashTimer <= 0 {
				b.DashTimer = e.Params.DashInterval
				b.DashRemaining = e.Params.DashDuration
			}
		}
		e.MoveToward(tx, ty, speed*dt)

	case defs.EnemyGravitational:
		e.MoveToward(tx, ty, speed*dt)
		if ctx != nil && ctx.Player != nil {
			p := ctx.Player
			d := geom.Distance(p.X, p.Y, e.X, e.Y)
			if d > 0 && d <= e.Params.PullRadius {
				nx, ny := geom.Normalize(e.X-p.X, e.Y-p.Y)
				falloff := 1 - d/e.Params.PullRadius
				p.PullX += nx * e.Params.PullStrength * falloff
				p.PullY += ny * e.Params.PullStrength * falloff
			}
		}

	case defs.EnemyFastPurple:
		e.Behavior.ZigzagTime += dt
		heading := geom.AngleTo(e.X, e.Y, tx, ty) +
			e.Params.ZigzagAmplitude*math.Sin(e.Behavior.ZigzagTime*e.Params.ZigzagFrequency)
		e.MoveAlong(heading, speed*dt)

	case defs.EnemyBuilder:
		if geom.Distance(e.X, e.Y, tx, ty) > e.Params.BuildRange {
			e.Behavior.Building = false
			e.MoveToward(tx, ty, speed*dt)
			return
		}
		e.Behavior.Building = true
		e.Behavior.BuildTimer -= dt
		if e.Behavior.BuildTimer <= 0 {
			// The builder turns into the tower it was building.
			m.result.Spawns = append(m.result.Spawns, SpawnRequest{Kind: defs.EnemyTower, X: e.X, Y: e.Y, Source: e.ID})
			m.MarkDead(e)
		}

	case defs.EnemyChampion:
		e.MoveToward(tx, ty, speed*dt)
		b := &e.Behavior
		if b.SlamTimer > 0 {
			b.SlamTimer -= dt
		}
		if b.SlamTimer <= 0 && geom.Distance(e.X, e.Y, tx, ty) <= e.Params.SlamRadius+e.Radius {
			b.SlamTimer = e.Params.SlamInterval
			m.result.Slams = append(m.result.Slams, SlamRequest{
				X: e.X, Y: e.Y, Radius: e.Params.SlamRadius, Damage: e.Damage, Creator: e.ID,
			})
		}

	case defs.EnemyTower:
		e.Behavior.SpawnTimer -= dt
		if e.Behavior.SpawnTimer <= 0 {
			e.Behavior.SpawnTimer = e.Params.SpawnInterval
			ox, oy := geom.FromAngle(m.rng.Angle(), e.Radius*2)
			m.result.Spawns = append(m.result.Spawns, SpawnRequest{
				Kind: e.Params.SpawnKind, X: e.X + ox, Y: e.Y + oy, Source: e.ID,
			})
		}
	}
}

// orbitCrystal makes a small enemy circle the nearest uncollected crystal in
// range. Time spent on the orbit counts toward fusing into a champion.
func (m *EnemyManager) orbitCrystal(e *component.Enemy, dt, speed float64, ctx *EnemyContext) bool {
	if ctx == nil || ctx.OrbitRadius <= 0 {
		return false
	}
	var target *component.Crystal
	best := config.CrystalAttractRange * config.CrystalAttractRange
	for _, c := range ctx.Crystals {
		if c.Gone() {
			continue
		}
		if d := geom.DistanceSq(e.X, e.Y, c.X, c.Y); d <= best {
			best = d
			target = c
		}
	}
	b := &e.Behavior
	if target == nil {
		b.OrbitCrystal = 0
		b.OrbitTime = 0
		return false
	}
	if b.OrbitCrystal != target.ID {
		b.OrbitCrystal = target.ID
		b.OrbitTime = 0
		b.OrbitAngle = geom.AngleTo(target.X, target.Y, e.X, e.Y)
	}

	b.OrbitAngle += speed / ctx.OrbitRadius * dt
	ox, oy := geom.FromAngle(b.OrbitAngle, ctx.OrbitRadius)
	e.MoveToward(target.X+ox, target.Y+oy, speed*dt)

	if geom.Distance(e.X, e.Y, target.X, target.Y) <= ctx.OrbitRadius*config.OrbitReach {
		b.OrbitTime += dt
	}
	return true
}
