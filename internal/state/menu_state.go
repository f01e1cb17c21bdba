// internal/state/menu_state.go
package state

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/ui"
)

// MenuState is the title screen. Space starts a run.
type MenuState struct {
	sm       *StateMachine
	settings config.Settings
	lib      *defs.Library
	err      error
}

func NewMenuState(sm *StateMachine, settings config.Settings, lib *defs.Library) *MenuState {
	return &MenuState{sm: sm, settings: settings, lib: lib}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	gs, err := NewGameState(m.sm, m.settings, m.lib)
	if err != nil {
		log.Error("cannot start run", "err", err)
		m.err = err
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCentered(screen, "SURVIVE", config.ScreenHeight/2-40)
	drawCentered(screen, "WASD to move  -  P to pause and spend upgrades  -  Tab toggles powers", config.ScreenHeight/2)
	drawCentered(screen, "press SPACE to start", config.ScreenHeight/2+30)
	if m.err != nil {
		drawCentered(screen, m.err.Error(), config.ScreenHeight/2+70)
	}
}

func (m *MenuState) Exit() {}

func drawCentered(screen *ebiten.Image, s string, y int) {
	b := text.BoundString(ui.DefaultFace, s)
	text.Draw(screen, s, ui.DefaultFace, (config.ScreenWidth-b.Dx())/2, y, config.TextLightColor)
}
