package system

import (
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/entity"
)

// Spawner turns enemy kinds into live enemies.
type Spawner struct {
	lib     *defs.Library
	world   *entity.World
	enemies *EnemyManager
}

// NewSpawner creates a spawner.
func NewSpawner(lib *defs.Library, world *entity.World, enemies *EnemyManager) *Spawner {
	return &Spawner{lib: lib, world: world, enemies: enemies}
}

// Spawn creates an enemy of kind at (x, y) and hands it to the manager.
func (s *Spawner) Spawn(kind defs.EnemyKind, x, y float64) (*component.Enemy, error) {
	def, err := s.lib.Enemy(kind)
	if err != nil {
		return nil, err
	}
	e := component.NewEnemy(s.world.NewEntity(), def, x, y)
	s.enemies.Add(e)
	return e, nil
}
