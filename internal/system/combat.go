package system

import (
	"github.com/charmbracelet/log"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/effect"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/entity"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/event"
)

// Damage sources reported in events.
const (
	SourceProjectile = "projectile"
	SourceArea       = "area"
	SourceCrucible   = "crucible"
	SourceBeam       = "beam"
	SourceRing       = "ring"
	SourceShield     = "shield"
	SourceBurning    = "burning"
	SourceTrail      = "trail"
	SourceSlam       = "slam"
)

// CombatSystem resolves every effect against the enemies in the grid and runs
// the kill pipeline.
type CombatSystem struct {
	world        *entity.World
	enemies      *EnemyManager
	grid         *EnemyGrid
	dispatcher   *event.Dispatcher
	rng          component.Rand
	largestEnemy float64
	buf          []*component.Enemy
}

// NewCombatSystem creates the combat system. largestEnemyRadius widens grid
// queries so that an effect touching an enemy's edge still finds it.
func NewCombatSystem(world *entity.World, enemies *EnemyManager, grid *EnemyGrid,
	dispatcher *event.Dispatcher, rng component.Rand, largestEnemyRadius float64) *CombatSystem {
	return &CombatSystem{
		world:        world,
		enemies:      enemies,
		grid:         grid,
		dispatcher:   dispatcher,
		rng:          rng,
		largestEnemy: largestEnemyRadius,
	}
}

// DamageEnemy deals amount to e. The first hit that takes health to zero
// marks e dead at once and sends the single EnemyKilled event for it; later
// hits in the same frame find it dead and do nothing.
func (s *CombatSystem) DamageEnemy(e *component.Enemy, amount float64, source string) bool {
	if e.Dead || amount <= 0 {
		return false
	}
	if !e.TakeDamage(amount) {
		return false
	}
	s.enemies.MarkDead(e)
	s.recordKill(e, source)
	return true
}

func (s *CombatSystem) recordKill(e *component.Enemy, source string) {
	s.world.Kills++
	log.Debug("enemy killed", "id", e.ID, "kind", e.Kind, "source", source)
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{
		EnemyID:    e.ID,
		Kind:       e.Kind,
		X:          e.X,
		Y:          e.Y,
		XP:         e.XP,
		Source:     source,
		Crystal:    e.Crystal,
		DropChance: e.DropChance,
	}})
}

// DamagePlayer applies amount to the player and reports it.
func (s *CombatSystem) DamagePlayer(amount float64, source string) float64 {
	p := s.world.Player
	before := p.Health
	applied := p.TakeDamage(amount)
	if applied > 0 {
		s.dispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.PlayerDamagedData{
			Amount:       applied,
			HealthBefore: before,
			HealthAfter:  p.Health,
			Source:       source,
		}})
	}
	return applied
}

func (s *CombatSystem) query(x, y, radius float64) []*component.Enemy {
	s.buf = s.grid.QueryRadius(x, y, radius+s.largestEnemy, s.buf[:0])
	return s.buf
}

// ResolveProjectiles moves projectiles and applies their hits.
func (s *CombatSystem) ResolveProjectiles(dt float64) {
	s.world.Projectiles = entity.Filter(s.world.Projectiles, func(p *effect.Projectile) bool {
		if !p.Update(dt) {
			return false
		}
		for _, e := range s.query(p.X, p.Y, p.Radius) {
			hit, consume := p.CheckCollision(e)
			if !hit {
				continue
			}
			s.DamageEnemy(e, p.Damage, SourceProjectile)
			if consume {
				return false
			}
		}
		return true
	})
}

// ResolveAreas applies slow and pull every tick and damage when each area's
// interval comes round. Areas flagged for it also hurt the player.
func (s *CombatSystem) ResolveAreas(dt float64) {
	player := s.world.Player
	s.world.Areas = entity.Filter(s.world.Areas, func(a *effect.AreaEffect) bool {
		if !a.Update(dt) {
			return false
		}
		ready := a.CanDamage()
		if a.DamagesEnemies || a.Slow > 0 || a.Pull > 0 {
			for _, e := range s.query(a.X, a.Y, a.Radius) {
				if !a.Affects(e) {
					continue
				}
				a.AffectEnemy(e, dt)
				if ready && a.DamagesEnemies {
					s.DamageEnemy(e, a.Damage, areaSource(a))
				}
			}
		}
		if ready && a.AffectsPlayer(player.Circle()) {
			s.DamagePlayer(a.Damage, areaSource(a))
		}
		return true
	})
}

func areaSource(a *effect.AreaEffect) string {
	switch a.Kind {
	case effect.AreaTrail:
		return SourceTrail
	case effect.AreaSlam:
		return SourceSlam
	}
	return SourceArea
}

// ResolveCrucibles ticks crucible damage, fires their phase triggers and turns
// bursts into explosions.
func (s *CombatSystem) ResolveCrucibles(dt float64) {
	s.world.Crucibles = entity.Filter(s.world.Crucibles, func(c *effect.CrucibleEffect) bool {
		alive := c.Update(dt)
		candidates := s.query(c.X, c.Y, c.Radius)
		if amount, ok := c.DamageTick(); ok {
			for _, e := range candidates {
				if c.Contains(e) {
					s.DamageEnemy(e, amount, SourceCrucible)
				}
			}
		}
		for _, b := range c.ApplyPhases(candidates, s.rng) {
			s.world.Areas = append(s.world.Areas, effect.NewExplosion(b.X, b.Y, b.Damage))
		}
		return alive
	})
}

// ResolveBeams steers cryostasis beams, freezes anchors when due and applies
// refracted beam hits. Finished beams release their anchor.
func (s *CombatSystem) ResolveBeams(dt float64) {
	player := s.world.Player
	s.world.Beams = entity.Filter(s.world.Beams, func(b *effect.CryostasisBeam) bool {
		b.SetCaster(player.X, player.Y)
		if !b.Update(dt) {
			b.Release()
			return false
		}
		if b.ShouldTriggerFreeze() {
			b.Target.ApplyPermanentFreeze()
			b.MarkFreezeTriggered()
		}
		if b.Frozen() {
			for _, hit := range b.CheckHits(s.query(b.Target.X, b.Target.Y, b.BeamLength)) {
				s.DamageEnemy(hit.Enemy, hit.Damage, SourceBeam)
			}
		}
		return true
	})
}

// ResolveRings grows rings and applies their one-time hits.
func (s *CombatSystem) ResolveRings(dt float64) {
	s.world.Rings = entity.Filter(s.world.Rings, func(r *effect.RingEffect) bool {
		alive := r.Update(dt)
		for _, e := range s.query(r.X, r.Y, r.CurrentRadius()+config.RingBandHalfWidth) {
			if r.CheckCollision(e) {
				s.DamageEnemy(e, r.Damage, SourceRing)
			}
		}
		return alive
	})
}

// ResolveShields orbits shields around the player and applies their strikes.
func (s *CombatSystem) ResolveShields(dt float64) {
	player := s.world.Player
	s.world.Shields = entity.Filter(s.world.Shields, func(sh *effect.OrbitalShield) bool {
		alive := sh.Update(dt)
		sh.Follow(player.X, player.Y)
		if !alive {
			return false
		}
		for _, e := range s.query(sh.X, sh.Y, sh.Radius) {
			if sh.CheckCollision(e) {
				s.DamageEnemy(e, sh.Damage, SourceShield)
			}
		}
		return true
	})
}

// ApplyBurning damages every panicking enemy.
func (s *CombatSystem) ApplyBurning(dt, dps float64) {
	s.enemies.ApplyBurningDamage(dt, dps, func(e *component.Enemy) {
		s.recordKill(e, SourceBurning)
	})
}

// ResolvePlayerCollisions applies contact damage from enemies to the player.
func (s *CombatSystem) ResolvePlayerCollisions() {
	s.enemies.CheckPlayerCollisions(s.world.Player, func(e *component.Enemy) {
		s.DamagePlayer(e.Damage, string(e.Kind))
	})
}
