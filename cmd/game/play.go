package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/state"
)

var flagSkipMenu bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window.

Controls:
  WASD/Arrows - Move
  P/Esc       - Pause and open the upgrade menu
  Tab         - Show or hide the power panel
  R           - Restart (after game over)`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start the run immediately")
}

// AppGame adapts the state machine to ebiten.Game.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	maxDeltaTime   float64
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > a.maxDeltaTime {
		deltaTime = a.maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func runPlay(cmd *cobra.Command, args []string) error {
	settings, lib, err := loadRun()
	if err != nil {
		return err
	}

	sm := state.NewStateMachine()
	if flagSkipMenu {
		gs, err := state.NewGameState(sm, settings, lib)
		if err != nil {
			return err
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, settings, lib))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		maxDeltaTime:   settings.MaxDeltaTime,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Survive")
	return ebiten.RunGame(app)
}
