// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/app"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/camera"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/ui"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/render"
)

var speedStateColors = []color.RGBA{
	{120, 200, 120, 255},
	{230, 200, 80, 255},
	{230, 100, 80, 255},
}

// GameState runs one game and draws it with the HUD on top.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	settings config.Settings
	lib      *defs.Library
	camera   *camera.Camera
	renderer *render.WorldRenderer

	healthIndicator  *ui.PlayerHealthIndicator
	levelIndicator   *ui.PlayerLevelIndicator
	crystalIndicator *ui.CrystalIndicator
	powerPanel       *ui.PowerPanel
	speedButton      *ui.SpeedButton
	pauseButton      *ui.PauseButton

	snapshot      app.Snapshot
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, settings config.Settings, lib *defs.Library) (*GameState, error) {
	gameLogic, err := app.NewGame(settings, lib)
	if err != nil {
		return nil, err
	}
	cam := camera.New(config.ScreenWidth, config.ScreenHeight)
	gs := &GameState{
		sm:               sm,
		game:             gameLogic,
		settings:         settings,
		lib:              lib,
		camera:           cam,
		renderer:         render.NewWorldRenderer(cam),
		healthIndicator:  ui.NewPlayerHealthIndicator(20, 20),
		levelIndicator:   ui.NewPlayerLevelIndicator(20, 44),
		crystalIndicator: ui.NewCrystalIndicator(config.ScreenWidth-250, 20, 150, 40, settings.Crystals.PerSupercharge),
		powerPanel:       ui.NewPowerPanel(20, 320, config.ScreenHeight),
		speedButton:      ui.NewSpeedButton(config.ScreenWidth-50, 40, 14, speedStateColors),
		pauseButton:      ui.NewPauseButton(config.ScreenWidth-50, 100, 14, config.TextLightColor, config.XPFillColor),
	}
	gs.snapshot = gameLogic.Snapshot()
	return gs, nil
}

// Game exposes the running game to the pause screen.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(g.game.IsPaused())
}

func (g *GameState) Update(deltaTime float64) {
	if g.game.IsOver() {
		g.updateGameOver()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.handlePauseClick()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.powerPanel.Toggle()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.handleUIClick(x, y) {
			return
		}
	}

	g.game.SetMovement(readMovement())
	g.game.Update(deltaTime)
	g.snapshot = g.game.Snapshot()

	g.camera.Follow(g.snapshot.Player.X, g.snapshot.Player.Y, deltaTime)
	g.powerPanel.Update(deltaTime, len(g.snapshot.Powers))
}

// readMovement maps WASD and the arrow keys to a direction. The player
// normalizes diagonals.
func readMovement() (float64, float64) {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	return dx, dy
}

// handleUIClick reports whether the click landed on a HUD button.
func (g *GameState) handleUIClick(x, y int) bool {
	if time.Since(g.lastClickTime) < config.ClickCooldown*time.Millisecond {
		return g.speedButton.Contains(x, y) || g.pauseButton.Contains(x, y)
	}
	switch {
	case g.speedButton.Contains(x, y):
		g.game.HandleSpeedClick()
		g.speedButton.ToggleState()
	case g.pauseButton.Contains(x, y):
		g.handlePauseClick()
	default:
		return false
	}
	g.lastClickTime = time.Now()
	return true
}

func (g *GameState) handlePauseClick() {
	g.game.HandlePauseClick()
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) updateGameOver() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if next, err := NewGameState(g.sm, g.settings, g.lib); err == nil {
			g.sm.SetState(next)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.sm.SetState(NewMenuState(g.sm, g.settings, g.lib))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, &g.snapshot)
	g.DrawUI(screen)
	if g.snapshot.GameOver {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlay, false)
		drawCentered(screen, "YOU DIED", config.ScreenHeight/2-30)
		drawCentered(screen, fmt.Sprintf("survived %s  -  level %d  -  %d kills",
			formatTime(g.snapshot.Time), g.snapshot.Player.Level, g.snapshot.Kills), config.ScreenHeight/2)
		drawCentered(screen, "R to restart, Esc for the menu", config.ScreenHeight/2+30)
	}
}

// DrawUI draws the HUD without the world.
func (g *GameState) DrawUI(screen *ebiten.Image) {
	s := &g.snapshot
	p := s.Player
	g.healthIndicator.Draw(screen, p.Health, p.MaxHealth, p.HealthRatio, p.Flash)
	g.levelIndicator.Draw(screen, p.Level, p.XP, p.XPToNextLevel, p.UpgradePoints)
	g.crystalIndicator.Draw(screen, p.Crystals, p.Supercharged)
	g.powerPanel.Draw(screen, s.Powers)
	g.speedButton.Draw(screen, s.Speed)
	g.pauseButton.Draw(screen)
	drawCentered(screen, fmt.Sprintf("%s   kills %d", formatTime(s.Time), s.Kills), 24)
}

func (g *GameState) Exit() {}

func formatTime(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
