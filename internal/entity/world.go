// internal/entity/world.go
package entity

import (
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/effect"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/types"
)

// World owns everything in a run except the enemies, which live in the
// EnemyManager. Collections are plain slices compacted once per frame.
type World struct {
	GameTime float64
	NextID   types.EntityID
	Player   *component.Player

	Projectiles []*effect.Projectile
	Areas       []*effect.AreaEffect
	Rings       []*effect.RingEffect
	Crucibles   []*effect.CrucibleEffect
	Beams       []*effect.CryostasisBeam
	Shields     []*effect.OrbitalShield
	Crystals    []*component.Crystal

	Kills int
}

// NewWorld creates a world around player.
func NewWorld(player *component.Player) *World {
	return &World{
		NextID: 1,
		Player: player,
	}
}

// NewEntity issues a fresh ID. IDs are never reused within a run.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddCrystal drops a crystal at (x, y).
func (w *World) AddCrystal(category defs.Category, x, y float64) *component.Crystal {
	c := &component.Crystal{
		ID:       w.NewEntity(),
		Category: category,
		Position: component.Position{X: x, Y: y},
		Radius:   config.CrystalRadius,
	}
	w.Crystals = append(w.Crystals, c)
	return c
}

// Crystal finds a crystal still lying in the world by ID.
func (w *World) Crystal(id types.EntityID) *component.Crystal {
	for _, c := range w.Crystals {
		if c.ID == id && !c.Gone() {
			return c
		}
	}
	return nil
}

// RemoveGoneCrystals drops collected and consumed crystals.
func (w *World) RemoveGoneCrystals() {
	w.Crystals = Filter(w.Crystals, func(c *component.Crystal) bool { return !c.Gone() })
}

// Filter keeps the items for which keep returns true, reusing the backing
// array. Items past the new length are zeroed so they can be collected.
func Filter[T any](items []T, keep func(T) bool) []T {
	n := 0
	for _, it := range items {
		if keep(it) {
			items[n] = it
			n++
		}
	}
	var zero T
	for i := n; i < len(items); i++ {
		items[i] = zero
	}
	return items[:n]
}
