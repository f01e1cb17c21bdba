// internal/system/player_system.go
package system

import (
	"github.com/charmbracelet/log"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/entity"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/event"
)

// PlayerSystem awards experience for kills and announces level ups.
type PlayerSystem struct {
	world      *entity.World
	dispatcher *event.Dispatcher
}

// NewPlayerSystem creates the system and subscribes it to kills.
func NewPlayerSystem(world *entity.World, dispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{world: world, dispatcher: dispatcher}
	dispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

// OnEvent handles the events the system subscribed to.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	data, ok := e.Data.(event.EnemyKilledData)
	if !ok {
		return
	}
	player := s.world.Player
	gained := player.AddXP(data.XP)
	for i := gained - 1; i >= 0; i-- {
		level := player.Level - i
		log.Info("level up", "level", level)
		s.dispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: event.LevelUpData{Level: level}})
	}
}
