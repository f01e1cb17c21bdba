// internal/state/pause_state.go
package state

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/app"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/ui"
)

var _ State = (*PauseState)(nil)

// upgradeAction is what happens when a menu line is chosen.
type upgradeAction struct {
	unlock   string
	upgrade  string
	category defs.Category
}

// PauseState freezes the run over the last game frame and offers the
// upgrade menu. Unpausing returns to the previous game state.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	menu          *ui.UpgradeMenu
	actions       []upgradeAction
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		menu:          ui.NewUpgradeMenu(config.ScreenWidth/2-220, 180, 440),
	}
}

func (s *PauseState) Enter() {
	s.rebuild()
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.resume()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.previousState.pauseButton.Contains(x, y) {
			s.resume()
			return
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		s.menu.MoveUp()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		s.menu.MoveDown()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.choose(s.menu.Selected)
	}
}

func (s *PauseState) resume() {
	game := s.previousState.Game()
	game.HandlePauseClick()
	s.previousState.pauseButton.TogglePause()
	s.stateMachine.SetState(s.previousState)
}

func (s *PauseState) choose(i int) {
	if i < 0 || i >= len(s.actions) {
		return
	}
	game := s.previousState.Game()
	a := s.actions[i]
	var err error
	switch {
	case a.unlock != "":
		err = game.UnlockPower(a.unlock)
	case a.upgrade != "":
		err = game.UpgradePower(a.upgrade)
	default:
		err = game.UpgradePassive(a.category)
	}
	s.menu.Message = ""
	if err != nil {
		log.Debug("upgrade rejected", "err", err)
		s.menu.Message = rejectionMessage(err)
	}
	s.previousState.snapshot = game.Snapshot()
	s.rebuild()
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, app.ErrNotEnoughCrystals):
		return "not enough crystals"
	case errors.Is(err, app.ErrNoUpgradePoints):
		return "no upgrade points"
	case errors.Is(err, app.ErrPowerMaxLevel):
		return "already at max level"
	}
	return err.Error()
}

// rebuild lists every power the player could buy or raise, then one passive
// line per category.
func (s *PauseState) rebuild() {
	game := s.previousState.Game()
	p := game.World.Player
	var opts []ui.MenuOption
	s.actions = s.actions[:0]

	for _, def := range game.Lib.Powers() {
		clr := config.CategoryColors[string(def.Category)]
		lvl := p.PowerLevel(def.ID)
		switch {
		case lvl == 0:
			opts = append(opts, ui.MenuOption{
				Label:   "Unlock " + def.Name,
				Detail:  fmt.Sprintf("%d %s crystals", def.Cost, def.Category),
				Color:   clr,
				Enabled: p.Crystals[def.Category] >= def.Cost,
			})
			s.actions = append(s.actions, upgradeAction{unlock: def.ID})
		case lvl < def.MaxLevel:
			opts = append(opts, ui.MenuOption{
				Label:   fmt.Sprintf("Upgrade %s to %d", def.Name, lvl+1),
				Detail:  "1 point",
				Color:   clr,
				Enabled: p.UpgradePoints > 0,
			})
			s.actions = append(s.actions, upgradeAction{upgrade: def.ID})
		}
	}
	for _, cat := range defs.Categories {
		opts = append(opts, ui.MenuOption{
			Label:   fmt.Sprintf("Faster %s cooldowns (rank %d)", cat, p.PassiveUpgrades[cat]),
			Detail:  "1 point",
			Color:   config.CategoryColors[string(cat)],
			Enabled: p.UpgradePoints > 0,
		})
		s.actions = append(s.actions, upgradeAction{category: cat})
	}
	s.menu.SetOptions(opts)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlay, false)
	drawCentered(screen, "PAUSED", 140)
	drawCentered(screen, fmt.Sprintf("%d upgrade points  -  arrows to choose, Enter to buy, P to resume",
		s.previousState.snapshot.Player.UpgradePoints), 160)
	s.menu.Draw(screen)
}

func (s *PauseState) Exit() {}
