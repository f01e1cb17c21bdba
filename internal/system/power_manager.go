// internal/system/power_manager.go
package system

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/effect"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/entity"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/event"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
)

const (
	// PassiveCooldownStep is the cooldown cut per passive upgrade in a category.
	PassiveCooldownStep = 0.08
	// MaxPassiveCooldownCut caps the cut from passive upgrades.
	MaxPassiveCooldownCut = 0.5
	// projectileSpread is the angle between projectiles of one volley.
	projectileSpread = 0.15
	// fallbackCastDistance places ground effects this far away when there is no target.
	fallbackCastDistance = 120.0
)

// PowerManager runs the cooldown table and turns the player's powers into
// effects in the world.
type PowerManager struct {
	lib        *defs.Library
	world      *entity.World
	enemies    *EnemyManager
	dispatcher *event.Dispatcher
	rng        component.Rand

	cooldowns       map[string]float64
	lastShieldAngle float64
}

// NewPowerManager creates a power manager.
func NewPowerManager(lib *defs.Library, world *entity.World, enemies *EnemyManager,
	dispatcher *event.Dispatcher, rng component.Rand) *PowerManager {
	return &PowerManager{
		lib:        lib,
		world:      world,
		enemies:    enemies,
		dispatcher: dispatcher,
		rng:        rng,
		cooldowns:  make(map[string]float64),
	}
}

// Update counts cooldowns down and casts every active power that is ready.
// Passive powers refresh their modifier every tick.
func (m *PowerManager) Update(dt float64) {
	player := m.world.Player
	for _, id := range player.PowerOrder {
		def, err := m.lib.Power(id)
		if err != nil {
			log.Warn("player holds a power with no definition", "power", id, "err", err)
			continue
		}
		if def.Passive {
			m.updatePassivePower(def)
			continue
		}
		m.updateActivePower(def, dt)
	}
}

func (m *PowerManager) updateActivePower(def defs.PowerDefinition, dt float64) {
	left := m.cooldowns[def.ID] - dt
	if left > 0 {
		m.cooldowns[def.ID] = left
		return
	}
	cast, err := m.CastPower(def.ID)
	if err != nil {
		log.Warn("cast failed", "power", def.ID, "err", err)
	}
	if !cast {
		// Stay ready and try again next frame.
		m.cooldowns[def.ID] = 0
		return
	}
	m.cooldowns[def.ID] = m.currentCooldown(def)
}

func (m *PowerManager) updatePassivePower(def defs.PowerDefinition) {
	stats := def.Stats(m.EffectiveLevel(def))
	player := m.world.Player
	switch def.ID {
	case "stone_skin":
		player.DamageReduction = math.Min(component.MaxDamageReduction, stats.Value)
	case "swiftness":
		player.SpeedBonus = stats.Value
	}
}

// EffectiveLevel is the stored level plus any supercharge bonus for the
// power's category. It is 0 for powers the player does not hold.
func (m *PowerManager) EffectiveLevel(def defs.PowerDefinition) int {
	player := m.world.Player
	lvl := player.PowerLevel(def.ID)
	if lvl == 0 {
		return 0
	}
	return lvl + player.Effects.BonusLevels(def.Category)
}

// CurrentCooldown returns the cooldown the power would get if cast now.
func (m *PowerManager) CurrentCooldown(id string) (float64, error) {
	def, err := m.lib.Power(id)
	if err != nil {
		return 0, err
	}
	return m.currentCooldown(def), nil
}

func (m *PowerManager) currentCooldown(def defs.PowerDefinition) float64 {
	level := m.EffectiveLevel(def)
	if level < 1 {
		level = 1
	}
	cut := math.Min(MaxPassiveCooldownCut, PassiveCooldownStep*float64(m.world.Player.PassiveUpgrades[def.Category]))
	return def.Cooldown(level) * (1 - cut)
}

// RemainingCooldown returns the seconds left before the power fires again.
func (m *PowerManager) RemainingCooldown(id string) float64 {
	return math.Max(0, m.cooldowns[id])
}

// CastPower fires the power now, regardless of its cooldown, and reports
// whether anything was spawned. A power with nothing to aim at may decline.
func (m *PowerManager) CastPower(id string) (bool, error) {
	def, err := m.lib.Power(id)
	if err != nil {
		return false, err
	}
	if def.Passive {
		return false, fmt.Errorf("power %q is passive", id)
	}
	level := m.EffectiveLevel(def)
	if level < 1 {
		return false, fmt.Errorf("power %q is not held", id)
	}
	stats := def.Stats(level)

	var cast bool
	switch def.Kind {
	case defs.PowerProjectile:
		cast = m.castProjectiles(def, stats)
	case defs.PowerRing:
		cast = m.castRing(def, stats)
	case defs.PowerArea:
		cast = m.castArea(def, stats)
	case defs.PowerCrucible:
		cast = m.castCrucible(stats)
	case defs.PowerBeam:
		cast = m.castCryostasis(stats)
	case defs.PowerShield:
		cast = m.castShield(stats)
	default:
		return false, fmt.Errorf("%w: power %q has unknown kind %q", defs.ErrInvalidDefinition, id, def.Kind)
	}
	if cast {
		m.dispatcher.Dispatch(event.Event{Type: event.PowerCast, Data: event.PowerCastData{PowerID: id, Level: level}})
	}
	return cast, nil
}

// aimAngle points at the nearest target, or anywhere when there is none.
func (m *PowerManager) aimAngle() float64 {
	p := m.world.Player
	if target := m.enemies.Nearest(p.X, p.Y, nil); target != nil {
		return geom.AngleTo(p.X, p.Y, target.X, target.Y)
	}
	return m.rng.Angle()
}

// aimPoint is the nearest target's position, or a random point near the player.
func (m *PowerManager) aimPoint() (float64, float64) {
	p := m.world.Player
	if target := m.enemies.Nearest(p.X, p.Y, nil); target != nil {
		return target.X, target.Y
	}
	dx, dy := geom.FromAngle(m.rng.Angle(), fallbackCastDistance)
	return p.X + dx, p.Y + dy
}

func (m *PowerManager) castProjectiles(def defs.PowerDefinition, stats defs.PowerStats) bool {
	p := m.world.Player
	n := stats.IntCount()
	center := m.aimAngle()
	for i := 0; i < n; i++ {
		angle := center + (float64(i)-float64(n-1)/2)*projectileSpread
		proj := effect.NewProjectile(p.X, p.Y, angle, def.ID, def.Category, stats)
		m.world.Projectiles = append(m.world.Projectiles, proj)
	}
	return true
}

func (m *PowerManager) castRing(def defs.PowerDefinition, stats defs.PowerStats) bool {
	p := m.world.Player
	m.world.Rings = append(m.world.Rings, effect.NewRing(p.X, p.Y, def.Category, stats))
	return true
}

func (m *PowerManager) castArea(def defs.PowerDefinition, stats defs.PowerStats) bool {
	kind := effect.AreaPool
	if stats.Pull > 0 {
		kind = effect.AreaWell
	}
	x, y := m.aimPoint()
	m.world.Areas = append(m.world.Areas, effect.NewPowerArea(kind, x, y, def.Category, stats))
	return true
}

func (m *PowerManager) castCrucible(stats defs.PowerStats) bool {
	x, y := m.aimPoint()
	m.world.Crucibles = append(m.world.Crucibles, effect.NewCrucible(x, y, stats))
	return true
}

// castCryostasis needs an anchor. Frozen enemies and current anchors are skipped;
// with nothing to anchor on, the power stays ready.
func (m *PowerManager) castCryostasis(stats defs.PowerStats) bool {
	p := m.world.Player
	target := m.enemies.Nearest(p.X, p.Y, func(e *component.Enemy) bool {
		return !e.Status.PermanentlyFrozen && !e.CryostasisInvulnerable
	})
	if target == nil {
		return false
	}
	m.world.Beams = append(m.world.Beams, effect.NewCryostasisBeam(p.X, p.Y, target, stats))
	return true
}

// castShield adds one shield while under the level's cap, spaced evenly after
// the previous one.
func (m *PowerManager) castShield(stats defs.PowerStats) bool {
	maxShields := stats.IntCount()
	if len(m.world.Shields) >= maxShields {
		return false
	}
	m.lastShieldAngle = geom.WrapAngle(m.lastShieldAngle + 2*math.Pi/float64(maxShields))
	p := m.world.Player
	m.world.Shields = append(m.world.Shields, effect.NewOrbitalShield(p.X, p.Y, m.lastShieldAngle, stats))
	return true
}
