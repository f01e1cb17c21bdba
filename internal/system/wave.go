package system

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/effect"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/entity"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/utils"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
)

// WaveSystem spawns enemies on a ring around the player. The interval
// shrinks as the run goes on and the spawn table changes by minute.
type WaveSystem struct {
	lib        *defs.Library
	world      *entity.World
	enemies    *EnemyManager
	spawner    *Spawner
	rng        *utils.PRNGService
	cfg        config.SpawnSettings
	spawnTimer float64
}

// NewWaveSystem creates the wave spawner.
func NewWaveSystem(lib *defs.Library, world *entity.World, enemies *EnemyManager, spawner *Spawner,
	rng *utils.PRNGService, cfg config.SpawnSettings) *WaveSystem {
	return &WaveSystem{
		lib:     lib,
		world:   world,
		enemies: enemies,
		spawner: spawner,
		rng:     rng,
		cfg:     cfg,
	}
}

// SpawnInterval returns the seconds between batches at the current run time.
func (s *WaveSystem) SpawnInterval() float64 {
	minutes := s.world.GameTime / 60
	interval := s.cfg.InitialInterval * math.Pow(1-s.cfg.RampPerMinute, minutes)
	return math.Max(s.cfg.MinInterval, interval)
}

// Update advances the spawn timer and spawns due batches.
func (s *WaveSystem) Update(deltaTime float64) {
	s.spawnTimer += deltaTime
	interval := s.SpawnInterval()
	for s.spawnTimer >= interval {
		s.spawnTimer -= interval
		s.spawnBatch()
	}
}

func (s *WaveSystem) spawnBatch() {
	if s.cfg.MaxEnemies > 0 && s.enemies.Count() >= s.cfg.MaxEnemies {
		return
	}
	phase := s.lib.SpawnPhase(s.world.GameTime)
	p := s.world.Player
	for i := 0; i < s.cfg.BatchSize; i++ {
		kind := s.rng.ChooseWeighted(phase.Entries)
		dx, dy := geom.FromAngle(s.rng.Angle(), s.cfg.SpawnDistance)
		if _, err := s.spawner.Spawn(kind, p.X+dx, p.Y+dy); err != nil {
			log.Warn("spawn failed", "kind", kind, "err", err)
		}
	}
}

// HandleRequests turns what enemies asked for this frame into world objects:
// tower spawns and builder towers, burning trails and champion slams.
func (s *WaveSystem) HandleRequests(res UpdateResult) {
	for _, req := range res.Spawns {
		if req.Kind != defs.EnemyTower && s.cfg.MaxEnemies > 0 && s.enemies.Count() >= s.cfg.MaxEnemies {
			continue
		}
		if _, err := s.spawner.Spawn(req.Kind, req.X, req.Y); err != nil {
			log.Warn("requested spawn failed", "kind", req.Kind, "source", req.Source, "err", err)
		}
	}
	for _, t := range res.Trails {
		s.world.Areas = append(s.world.Areas, effect.NewTrail(t.X, t.Y, t.Creator, t.HurtsPlayer))
	}
	for _, sl := range res.Slams {
		s.world.Areas = append(s.world.Areas, effect.NewSlam(sl.X, sl.Y, sl.Radius, sl.Damage, sl.Creator))
	}
}
