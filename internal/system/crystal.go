// internal/system/crystal.go
package system

import (
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/entity"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/event"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/status"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
)

// CrystalSystem drops crystals on kills, pulls nearby ones toward the player
// and handles pickup and supercharge rewards.
type CrystalSystem struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	rng        component.Rand
	cfg        config.CrystalSettings
}

// NewCrystalSystem creates the system and subscribes it to kills.
func NewCrystalSystem(world *entity.World, dispatcher *event.Dispatcher, rng component.Rand, cfg config.CrystalSettings) *CrystalSystem {
	s := &CrystalSystem{world: world, dispatcher: dispatcher, rng: rng, cfg: cfg}
	dispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

// OnEvent rolls a drop for every kill.
func (s *CrystalSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	data, ok := e.Data.(event.EnemyKilledData)
	if !ok || !data.Crystal.Valid() || data.DropChance <= 0 {
		return
	}
	if data.DropChance >= 1 || s.rng.Float64() < data.DropChance {
		s.world.AddCrystal(data.Crystal, data.X, data.Y)
	}
}

// Update moves crystals in magnet range toward the player and collects the
// ones in pickup range.
func (s *CrystalSystem) Update(dt float64) {
	p := s.world.Player
	if p.Dead {
		return
	}
	for _, c := range s.world.Crystals {
		if c.Gone() {
			continue
		}
		c.Age += dt
		d := geom.Distance(p.X, p.Y, c.X, c.Y)
		if d <= s.cfg.PickupRadius+p.Radius {
			s.collect(c)
			continue
		}
		if d <= s.cfg.MagnetRadius {
			c.MoveToward(p.X, p.Y, config.CrystalMagnetSpeed*dt)
		}
	}
	s.world.RemoveGoneCrystals()
}

func (s *CrystalSystem) collect(c *component.Crystal) {
	c.Collected = true
	p := s.world.Player
	p.Crystals[c.Category]++
	total := p.Crystals[c.Category]
	if s.cfg.PerSupercharge > 0 && total%s.cfg.PerSupercharge == 0 {
		p.Effects.Add(status.Effect{
			Type:        status.Supercharge,
			Category:    c.Category,
			Duration:    s.cfg.SuperchargeDuration,
			BonusLevels: s.cfg.SuperchargeBonus,
		})
		if c.Category == defs.CategoryKinetic && s.cfg.HasteMagnitude > 0 {
			p.Effects.Add(status.Effect{
				Type:      status.Haste,
				Category:  c.Category,
				Duration:  s.cfg.SuperchargeDuration,
				Magnitude: s.cfg.HasteMagnitude,
			})
		}
	}
	s.dispatcher.Dispatch(event.Event{Type: event.CrystalCollected, Data: event.CrystalCollectedData{
		CrystalID: c.ID,
		Category:  c.Category,
		Total:     total,
	}})
}
