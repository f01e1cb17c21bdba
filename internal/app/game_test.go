package app

import (
	"errors"
	"math"
	"testing"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/event"
)

func newTestGame(t *testing.T, mutate func(s *config.Settings)) *Game {
	t.Helper()
	lib, err := defs.Default()
	if err != nil {
		t.Fatalf("defs.Default: %v", err)
	}
	settings := config.DefaultSettings()
	settings.Seed = 7
	if mutate != nil {
		mutate(&settings)
	}
	g, err := NewGame(settings, lib)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestNewGameValidation(t *testing.T) {
	lib, err := defs.Default()
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name   string
		mutate func(s *config.Settings)
		want   error
	}{
		{"cell too small", func(s *config.Settings) { s.SpatialCellSize = lib.LargestRadius() }, config.ErrInvalidSettings},
		{"bad delta", func(s *config.Settings) { s.MaxDeltaTime = 0 }, config.ErrInvalidSettings},
		{"unknown power", func(s *config.Settings) { s.StartingPowers = []string{"meteor"} }, defs.ErrUnknownPower},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := config.DefaultSettings()
			tc.mutate(&s)
			if _, err := NewGame(s, lib); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestStartingPowersGranted(t *testing.T) {
	g := newTestGame(t, nil)
	if g.World.Player.PowerLevel("fireball") != 1 {
		t.Fatal("starting power not granted")
	}
	snap := g.Snapshot()
	if len(snap.Powers) != 1 || snap.Powers[0].ID != "fireball" {
		t.Errorf("snapshot powers = %+v", snap.Powers)
	}
}

func TestDeltaTimeClamped(t *testing.T) {
	g := newTestGame(t, nil)
	g.Update(5)
	if got := g.GetGameTime(); math.Abs(got-g.Settings.MaxDeltaTime) > 1e-12 {
		t.Errorf("GameTime = %v, expected %v", got, g.Settings.MaxDeltaTime)
	}
	g.Update(-1)
	g.Update(0)
	if got := g.GetGameTime(); math.Abs(got-g.Settings.MaxDeltaTime) > 1e-12 {
		t.Errorf("non-positive dt advanced time to %v", got)
	}
}

func TestPauseAndSpeed(t *testing.T) {
	g := newTestGame(t, nil)
	g.HandlePauseClick()
	g.Update(0.05)
	if g.GetGameTime() != 0 {
		t.Fatal("paused game advanced")
	}
	g.HandlePauseClick()
	g.HandleSpeedClick()
	if g.SpeedMultiplier != 2 {
		t.Fatalf("SpeedMultiplier = %d", g.SpeedMultiplier)
	}
	g.Update(0.05)
	if math.Abs(g.GetGameTime()-0.1) > 1e-12 {
		t.Errorf("GameTime = %v at 2x", g.GetGameTime())
	}
	g.HandleSpeedClick()
	g.HandleSpeedClick()
	if g.SpeedMultiplier != 1 {
		t.Errorf("speed did not cycle back, got %d", g.SpeedMultiplier)
	}
}

func runScripted(g *Game, frames int) {
	for i := 0; i < frames; i++ {
		angle := float64(i) / 90
		g.SetMovement(math.Cos(angle), math.Sin(angle))
		g.Update(1.0 / 60)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	a := newTestGame(t, nil)
	b := newTestGame(t, nil)
	runScripted(a, 1200)
	runScripted(b, 1200)

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Kills != sb.Kills || len(sa.Enemies) != len(sb.Enemies) {
		t.Fatalf("runs diverged: kills %d/%d enemies %d/%d", sa.Kills, sb.Kills, len(sa.Enemies), len(sb.Enemies))
	}
	if sa.Player.X != sb.Player.X || sa.Player.Y != sb.Player.Y || sa.Player.Health != sb.Player.Health {
		t.Errorf("player diverged: %+v vs %+v", sa.Player.CircleView, sb.Player.CircleView)
	}
	for i := range sa.Enemies {
		if sa.Enemies[i].ID != sb.Enemies[i].ID || sa.Enemies[i].X != sb.Enemies[i].X {
			t.Fatalf("enemy %d diverged", i)
		}
	}
	if a.World.NextID != b.World.NextID {
		t.Errorf("NextID %d vs %d", a.World.NextID, b.World.NextID)
	}
}

func TestRunSpawnsAndKills(t *testing.T) {
	g := newTestGame(t, func(s *config.Settings) {
		s.Player.MaxHealth = 1e9
	})
	runScripted(g, 60*60)
	snap := g.Snapshot()
	if len(snap.Enemies) == 0 {
		t.Error("no enemies after a minute")
	}
	if snap.Kills == 0 {
		t.Error("fireball never killed anything")
	}
	for _, e := range snap.Enemies {
		if math.IsNaN(e.X) || math.IsNaN(e.Y) {
			t.Fatalf("enemy %d at NaN", e.ID)
		}
	}
}

func TestGameOverDispatchedOnce(t *testing.T) {
	g := newTestGame(t, func(s *config.Settings) { s.StartingPowers = nil })
	rec := event.NewRecorder(g.EventDispatcher)
	p := g.World.Player
	p.Health = 0.5
	if _, err := g.Spawner.Spawn(defs.EnemyMedium, p.X+1, p.Y); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		g.Update(1.0 / 60)
	}
	if !g.IsOver() {
		t.Fatal("player survived contact at 0.5 health")
	}
	if rec.Counts[event.GameOver] != 1 {
		t.Errorf("GameOver events = %d", rec.Counts[event.GameOver])
	}
	stopped := g.GetGameTime()
	g.Update(1.0 / 60)
	if g.GetGameTime() != stopped {
		t.Error("time advanced after game over")
	}
	if !g.Snapshot().GameOver {
		t.Error("snapshot not flagged")
	}
}

func TestUnlockAndUpgrade(t *testing.T) {
	g := newTestGame(t, nil)
	p := g.World.Player
	nova, _ := g.Lib.Power("frost_nova")

	if err := g.UnlockPower("frost_nova"); !errors.Is(err, ErrNotEnoughCrystals) {
		t.Fatalf("unlock without crystals: %v", err)
	}
	p.Crystals[nova.Category] = nova.Cost
	if err := g.UnlockPower("frost_nova"); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if p.Crystals[nova.Category] != 0 || p.PowerLevel("frost_nova") != 1 {
		t.Errorf("after unlock: crystals %d level %d", p.Crystals[nova.Category], p.PowerLevel("frost_nova"))
	}
	if err := g.UnlockPower("frost_nova"); !errors.Is(err, ErrPowerOwned) {
		t.Errorf("second unlock: %v", err)
	}

	if err := g.UpgradePower("frost_nova"); !errors.Is(err, ErrNoUpgradePoints) {
		t.Errorf("upgrade without points: %v", err)
	}
	p.UpgradePoints = 2
	if err := g.UpgradePower("frost_nova"); err != nil || p.PowerLevel("frost_nova") != 2 {
		t.Errorf("upgrade: %v, level %d", err, p.PowerLevel("frost_nova"))
	}
	if err := g.UpgradePower("ice_lance"); !errors.Is(err, ErrPowerNotOwned) {
		t.Errorf("upgrade unowned: %v", err)
	}
	p.Powers["frost_nova"] = nova.MaxLevel
	if err := g.UpgradePower("frost_nova"); !errors.Is(err, ErrPowerMaxLevel) {
		t.Errorf("upgrade past max: %v", err)
	}
	if err := g.UpgradePower("meteor"); !errors.Is(err, defs.ErrUnknownPower) {
		t.Errorf("unknown power: %v", err)
	}
}

func TestUpgradePassive(t *testing.T) {
	g := newTestGame(t, nil)
	p := g.World.Player
	if err := g.UpgradePassive(defs.CategoryHeat); !errors.Is(err, ErrNoUpgradePoints) {
		t.Fatalf("no points: %v", err)
	}
	p.UpgradePoints = 1
	before, _ := g.PowerManager.CurrentCooldown("fireball")
	if err := g.UpgradePassive(defs.CategoryHeat); err != nil {
		t.Fatal(err)
	}
	after, _ := g.PowerManager.CurrentCooldown("fireball")
	if after >= before {
		t.Errorf("cooldown %v -> %v", before, after)
	}
	if err := g.UpgradePassive(defs.CategoryAll); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("wildcard category accepted: %v", err)
	}
}
