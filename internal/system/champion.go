// internal/system/champion.go
package system

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/entity"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/event"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/types"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
)

// ChampionSystem fuses enemies that have circled the same crystal long
// enough into a champion standing on that crystal.
type ChampionSystem struct {
	world      *entity.World
	enemies    *EnemyManager
	spawner    *Spawner
	dispatcher *event.Dispatcher
	cfg        config.ChampionSettings
}

// NewChampionSystem creates the system.
func NewChampionSystem(world *entity.World, enemies *EnemyManager, spawner *Spawner,
	dispatcher *event.Dispatcher, cfg config.ChampionSettings) *ChampionSystem {
	return &ChampionSystem{world: world, enemies: enemies, spawner: spawner, dispatcher: dispatcher, cfg: cfg}
}

// Update checks every crystal for enough ripe orbiters and fuses them.
// Fused enemies leave without a kill; the crystal is consumed.
func (s *ChampionSystem) Update() {
	ripe := make(map[types.EntityID][]*component.Enemy)
	for _, e := range s.enemies.Regular() {
		if e.Dead || e.Status.PermanentlyFrozen || e.CryostasisInvulnerable ||
			e.Behavior.OrbitCrystal == 0 || e.Behavior.OrbitTime < s.cfg.FuseTime {
			continue
		}
		ripe[e.Behavior.OrbitCrystal] = append(ripe[e.Behavior.OrbitCrystal], e)
	}

	crystalIDs := make([]types.EntityID, 0, len(ripe))
	for id := range ripe {
		crystalIDs = append(crystalIDs, id)
	}
	sort.Slice(crystalIDs, func(i, j int) bool { return crystalIDs[i] < crystalIDs[j] })

	for _, id := range crystalIDs {
		orbiters := ripe[id]
		if len(orbiters) < s.cfg.FuseCount {
			continue
		}
		crystal := s.world.Crystal(id)
		if crystal == nil {
			continue
		}
		orbiters = s.inReach(crystal, orbiters)
		if len(orbiters) < s.cfg.FuseCount {
			continue
		}
		sort.Slice(orbiters, func(i, j int) bool { return orbiters[i].ID < orbiters[j].ID })
		s.fuse(crystal, orbiters[:s.cfg.FuseCount])
	}
}

// inReach keeps the orbiters still circling close enough to the crystal.
func (s *ChampionSystem) inReach(crystal *component.Crystal, orbiters []*component.Enemy) []*component.Enemy {
	reach := s.cfg.OrbitRadius * config.OrbitReach
	kept := orbiters[:0]
	for _, e := range orbiters {
		if geom.DistanceSq(e.X, e.Y, crystal.X, crystal.Y) <= reach*reach {
			kept = append(kept, e)
		}
	}
	return kept
}

func (s *ChampionSystem) fuse(crystal *component.Crystal, orbiters []*component.Enemy) {
	champ, err := s.spawner.Spawn(defs.EnemyChampion, crystal.X, crystal.Y)
	if err != nil {
		log.Warn("champion fusion failed", "err", err)
		return
	}
	var health float64
	var xp int
	for _, e := range orbiters {
		health += e.MaxHealth
		xp += e.XP
		s.enemies.MarkDead(e)
	}
	champ.MaxHealth += health * s.cfg.HealthMultiplier
	champ.Health = champ.MaxHealth
	champ.XP += int(float64(xp) * s.cfg.XPMultiplier)
	champ.Crystal = crystal.Category
	crystal.Consumed = true

	log.Debug("champion fused", "id", champ.ID, "crystal", crystal.ID, "fused", len(orbiters))
	s.dispatcher.Dispatch(event.Event{Type: event.ChampionFused, Data: event.ChampionFusedData{
		ChampionID: champ.ID,
		CrystalID:  crystal.ID,
		Fused:      len(orbiters),
		X:          champ.X,
		Y:          champ.Y,
	}})
}
