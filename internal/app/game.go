// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/entity"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/event"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/system"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/utils"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/spatial"
)

var (
	ErrPowerOwned         = errors.New("power already owned")
	ErrPowerNotOwned      = errors.New("power not owned")
	ErrPowerMaxLevel      = errors.New("power at max level")
	ErrNotEnoughCrystals  = errors.New("not enough crystals")
	ErrNoUpgradePoints    = errors.New("no upgrade points")
	ErrUnknownCategory    = errors.New("unknown category")
	speedMultiplierStates = []int{1, 2, 4}
)

// Game holds one run and advances it frame by frame.
type Game struct {
	Settings        config.Settings
	Lib             *defs.Library
	World           *entity.World
	Enemies         *system.EnemyManager
	Grid            *system.EnemyGrid
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	Spawner        *system.Spawner
	CombatSystem   *system.CombatSystem
	PowerManager   *system.PowerManager
	PlayerSystem   *system.PlayerSystem
	CrystalSystem  *system.CrystalSystem
	ChampionSystem *system.ChampionSystem
	WaveSystem     *system.WaveSystem

	SpeedMultiplier int

	enemyCtx  system.EnemyContext
	speedIdx  int
	isPaused  bool
	gameOver  bool
	lastFrame system.UpdateResult
}

// NewGame builds a run from settings and a definition library.
func NewGame(settings config.Settings, lib *defs.Library) (*Game, error) {
	if lib == nil {
		return nil, errors.New("definition library is nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if largest := lib.LargestRadius(); settings.SpatialCellSize < 2*largest {
		return nil, fmt.Errorf("%w: spatial cell size %.1f is below twice the largest enemy radius %.1f",
			config.ErrInvalidSettings, settings.SpatialCellSize, largest)
	}

	rng := utils.NewPRNGService(settings.Seed)
	player := component.NewPlayer(settings.Player)
	world := entity.NewWorld(player)
	eventDispatcher := event.NewDispatcher()
	enemies := system.NewEnemyManager(rng)
	grid := spatial.NewGrid[*component.Enemy](settings.SpatialCellSize)
	spawner := system.NewSpawner(lib, world, enemies)

	g := &Game{
		Settings:        settings,
		Lib:             lib,
		World:           world,
		Enemies:         enemies,
		Grid:            grid,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Spawner:         spawner,
		SpeedMultiplier: 1,
	}
	g.CombatSystem = system.NewCombatSystem(world, enemies, grid, eventDispatcher, rng, lib.LargestRadius())
	g.PowerManager = system.NewPowerManager(lib, world, enemies, eventDispatcher, rng)
	g.PlayerSystem = system.NewPlayerSystem(world, eventDispatcher)
	g.CrystalSystem = system.NewCrystalSystem(world, eventDispatcher, rng, settings.Crystals)
	g.ChampionSystem = system.NewChampionSystem(world, enemies, spawner, eventDispatcher, settings.Champions)
	g.WaveSystem = system.NewWaveSystem(lib, world, enemies, spawner, rng, settings.Spawning)
	g.enemyCtx = system.EnemyContext{Player: player, OrbitRadius: settings.Champions.OrbitRadius}

	for _, id := range settings.StartingPowers {
		def, err := lib.Power(id)
		if err != nil {
			return nil, fmt.Errorf("starting power: %w", err)
		}
		player.GrantPower(def.ID, def.MaxLevel)
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.LevelUp, listener)
	eventDispatcher.Subscribe(event.ChampionFused, listener)

	log.Debug("game created", "seed", rng.Seed(), "powers", settings.StartingPowers)
	return g, nil
}

// GameEventListener logs the milestones of a run.
type GameEventListener struct {
	game *Game
}

// OnEvent implements event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelUp:
		if data, ok := e.Data.(event.LevelUpData); ok {
			log.Debug("upgrade point available", "level", data.Level, "points", l.game.World.Player.UpgradePoints)
		}
	case event.ChampionFused:
		if data, ok := e.Data.(event.ChampionFusedData); ok {
			log.Info("champion appeared", "id", data.ChampionID, "t", l.game.World.GameTime)
		}
	}
}

// Update progresses the game by one frame. dt is clamped to MaxDeltaTime;
// a raised speed multiplier runs that many clamped steps.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused || g.gameOver || deltaTime <= 0 {
		return
	}
	if deltaTime > g.Settings.MaxDeltaTime {
		deltaTime = g.Settings.MaxDeltaTime
	}
	for i := 0; i < g.SpeedMultiplier && !g.gameOver; i++ {
		g.step(deltaTime)
	}
}

func (g *Game) step(dt float64) {
	w := g.World
	p := w.Player

	p.Update(dt)

	g.enemyCtx.Crystals = w.Crystals
	g.lastFrame = g.Enemies.Update(dt, p.X, p.Y, &g.enemyCtx)
	g.WaveSystem.HandleRequests(g.lastFrame)
	g.WaveSystem.Update(dt)
	g.ChampionSystem.Update()

	g.PowerManager.Update(dt)

	g.Enemies.PopulateSpatialGrid(g.Grid)
	g.CombatSystem.ResolveProjectiles(dt)
	g.CombatSystem.ResolveAreas(dt)
	g.CombatSystem.ResolveCrucibles(dt)
	g.CombatSystem.ResolveBeams(dt)
	g.CombatSystem.ResolveRings(dt)
	g.CombatSystem.ResolveShields(dt)
	g.CombatSystem.ApplyBurning(dt, g.Settings.Burning.DPS)

	g.Enemies.RemoveDeadEnemies()
	g.CombatSystem.ResolvePlayerCollisions()
	g.CrystalSystem.Update(dt)
	g.Enemies.DespawnFarEnemies(p.X, p.Y, g.Settings.DespawnDistance)

	w.GameTime += dt
	if p.Dead && !g.gameOver {
		g.gameOver = true
		log.Info("game over", "time", w.GameTime, "level", p.Level, "kills", w.Kills)
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{
			Time:  w.GameTime,
			Level: p.Level,
			Kills: w.Kills,
		}})
	}
}

// --- Public Accessors & Mutators ---

// SetMovement forwards the input direction to the player.
func (g *Game) SetMovement(dx, dy float64) {
	g.World.Player.SetMovement(dx, dy)
}

// UnlockPower buys a power the player does not have with crystals of its category.
func (g *Game) UnlockPower(id string) error {
	def, err := g.Lib.Power(id)
	if err != nil {
		return err
	}
	p := g.World.Player
	if p.PowerLevel(id) > 0 {
		return fmt.Errorf("%w: %s", ErrPowerOwned, id)
	}
	if p.Crystals[def.Category] < def.Cost {
		return fmt.Errorf("%w: %s needs %d %s", ErrNotEnoughCrystals, id, def.Cost, def.Category)
	}
	p.Crystals[def.Category] -= def.Cost
	p.GrantPower(def.ID, def.MaxLevel)
	log.Info("power unlocked", "power", id)
	return nil
}

// UpgradePower spends an upgrade point to raise an owned power by one level.
func (g *Game) UpgradePower(id string) error {
	def, err := g.Lib.Power(id)
	if err != nil {
		return err
	}
	p := g.World.Player
	lvl := p.PowerLevel(id)
	switch {
	case lvl == 0:
		return fmt.Errorf("%w: %s", ErrPowerNotOwned, id)
	case lvl >= def.MaxLevel:
		return fmt.Errorf("%w: %s", ErrPowerMaxLevel, id)
	case p.UpgradePoints < 1:
		return ErrNoUpgradePoints
	}
	p.UpgradePoints--
	p.GrantPower(def.ID, def.MaxLevel)
	return nil
}

// UpgradePassive spends an upgrade point on cooldown reduction for a category.
func (g *Game) UpgradePassive(category defs.Category) error {
	if !category.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	p := g.World.Player
	if p.UpgradePoints < 1 {
		return ErrNoUpgradePoints
	}
	p.UpgradePoints--
	p.PassiveUpgrades[category]++
	return nil
}

// HandleSpeedClick cycles the simulation speed between 1x, 2x and 4x.
func (g *Game) HandleSpeedClick() {
	g.speedIdx = (g.speedIdx + 1) % len(speedMultiplierStates)
	g.SpeedMultiplier = speedMultiplierStates[g.speedIdx]
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

// IsPaused returns the current pause state.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

// IsOver reports whether the player has died.
func (g *Game) IsOver() bool {
	return g.gameOver
}

func (g *Game) GetGameTime() float64 {
	return g.World.GameTime
}
