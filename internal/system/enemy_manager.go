// internal/system/enemy_manager.go
package system

import (
	"math"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/entity"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/types"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/spatial"
)

// EnemyGrid is the broad-phase grid over live enemies.
type EnemyGrid = spatial.Grid[*component.Enemy]

// EnemyContext is what enemy behaviours may read or nudge besides their target.
type EnemyContext struct {
	Player      *component.Player
	Crystals    []*component.Crystal
	OrbitRadius float64
}

// TrailRequest asks for a burning patch at (X, Y).
type TrailRequest struct {
	X, Y        float64
	Creator     types.EntityID
	HurtsPlayer bool
}

// SpawnRequest asks for a new enemy of Kind at (X, Y).
type SpawnRequest struct {
	Kind   defs.EnemyKind
	X, Y   float64
	Source types.EntityID
}

// SlamRequest asks for a champion's ground slam.
type SlamRequest struct {
	X, Y    float64
	Radius  float64
	Damage  float64
	Creator types.EntityID
}

// UpdateResult collects what enemies asked the world to create this frame.
// The slices are reused between frames; copy anything kept past the next Update.
type UpdateResult struct {
	Trails []TrailRequest
	Spawns []SpawnRequest
	Slams  []SlamRequest
}

func (r *UpdateResult) reset() {
	r.Trails = r.Trails[:0]
	r.Spawns = r.Spawns[:0]
	r.Slams = r.Slams[:0]
}

// EnemyManager owns every live enemy: regular variants, champions and towers.
// Enemies are marked dead from anywhere during a frame and physically removed
// once, by RemoveDeadEnemies.
type EnemyManager struct {
	regular   []*component.Enemy
	champions []*component.Enemy
	towers    []*component.Enemy
	rng       component.Rand
	result    UpdateResult
}

// NewEnemyManager creates an empty manager.
func NewEnemyManager(rng component.Rand) *EnemyManager {
	return &EnemyManager{rng: rng}
}

// Add puts e into the collection for its kind.
func (m *EnemyManager) Add(e *component.Enemy) {
	switch e.Kind {
	case defs.EnemyChampion:
		m.champions = append(m.champions, e)
	case defs.EnemyTower:
		m.towers = append(m.towers, e)
	default:
		m.regular = append(m.regular, e)
	}
}

// MarkDead flags e without touching the collections.
func (m *EnemyManager) MarkDead(e *component.Enemy) {
	e.Dead = true
}

// RemoveDeadEnemies compacts every collection and returns how many were removed.
func (m *EnemyManager) RemoveDeadEnemies() int {
	before := m.Count()
	alive := func(e *component.Enemy) bool { return !e.Dead }
	m.regular = entity.Filter(m.regular, alive)
	m.champions = entity.Filter(m.champions, alive)
	m.towers = entity.Filter(m.towers, alive)
	return before - m.Count()
}

// Update advances every live enemy toward (targetX, targetY) and returns the
// trail, spawn and slam requests they made.
func (m *EnemyManager) Update(dt, targetX, targetY float64, ctx *EnemyContext) UpdateResult {
	m.result.reset()
	m.Each(func(e *component.Enemy) {
		if e.Dead {
			return
		}
		m.updateEnemy(e, dt, targetX, targetY, ctx)
	})
	return m.result
}

// ApplyBurningDamage deals dps*dt to every enemy in burning panic, whatever set
// it burning. onKill runs for each enemy this kills, after it is marked dead.
func (m *EnemyManager) ApplyBurningDamage(dt, dps float64, onKill func(e *component.Enemy)) {
	m.Each(func(e *component.Enemy) {
		if e.Dead || !e.IsBurning() {
			return
		}
		if e.TakeDamage(dps * dt) {
			m.MarkDead(e)
			if onKill != nil {
				onKill(e)
			}
		}
	})
}

// PopulateSpatialGrid clears grid and inserts every live enemy.
func (m *EnemyManager) PopulateSpatialGrid(grid *EnemyGrid) {
	grid.Clear()
	m.Each(func(e *component.Enemy) {
		if !e.Dead {
			grid.Insert(e)
		}
	})
}

// DespawnFarEnemies removes enemies farther than maxDist from (x, y) without
// awarding anything. Beam anchors are kept. It returns how many were removed.
func (m *EnemyManager) DespawnFarEnemies(x, y, maxDist float64) int {
	limit := maxDist * maxDist
	marked := 0
	m.Each(func(e *component.Enemy) {
		if e.Dead || e.CryostasisInvulnerable {
			return
		}
		if geom.DistanceSq(x, y, e.X, e.Y) > limit {
			m.MarkDead(e)
			marked++
		}
	})
	if marked > 0 {
		m.RemoveDeadEnemies()
	}
	return marked
}

// CheckPlayerCollisions calls onHit for every live enemy that deals contact
// damage and overlaps the player. Invulnerability is the player's concern.
func (m *EnemyManager) CheckPlayerCollisions(player *component.Player, onHit func(e *component.Enemy)) {
	pc := player.Circle()
	m.Each(func(e *component.Enemy) {
		if e.Dead || e.Damage <= 0 {
			return
		}
		if geom.CircleCircle(pc, e.Circle()) {
			onHit(e)
		}
	})
}

// Nearest returns the closest live regular enemy or champion to (x, y).
// Towers are never auto-targeted.
func (m *EnemyManager) Nearest(x, y float64, accept func(e *component.Enemy) bool) *component.Enemy {
	var best *component.Enemy
	bestDist := math.MaxFloat64
	scan := func(list []*component.Enemy) {
		for _, e := range list {
			if e.Dead || (accept != nil && !accept(e)) {
				continue
			}
			if d := geom.DistanceSq(x, y, e.X, e.Y); d < bestDist {
				bestDist = d
				best = e
			}
		}
	}
	scan(m.regular)
	scan(m.champions)
	return best
}

// Each calls fn for every enemy in every collection, dead or alive.
// fn must not add enemies.
func (m *EnemyManager) Each(fn func(e *component.Enemy)) {
	for _, e := range m.regular {
		fn(e)
	}
	for _, e := range m.champions {
		fn(e)
	}
	for _, e := range m.towers {
		fn(e)
	}
}

// Count returns the number of enemies held, including ones marked dead this frame.
func (m *EnemyManager) Count() int {
	return len(m.regular) + len(m.champions) + len(m.towers)
}

// Regular returns the backing slice of regular enemies. Read only.
func (m *EnemyManager) Regular() []*component.Enemy {
	return m.regular
}
