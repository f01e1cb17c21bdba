// internal/app/headless.go
package app

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
)

// Steering returns the movement direction for a frame of a headless run.
type Steering func(frame int, g *Game) (dx, dy float64)

// CircleSteering walks the player in a slow circle, which keeps enemies
// trailing behind and crystals within reach.
func CircleSteering(frame int, _ *Game) (float64, float64) {
	angle := float64(frame) / 90
	return math.Cos(angle), math.Sin(angle)
}

// Simulate runs the game without a window for duration seconds of game time
// at a fixed step. Upgrade points and crystals are spent with AutoSpend when
// autoSpend is set. It returns the number of frames run.
func (g *Game) Simulate(duration, dt float64, steer Steering, autoSpend bool) int {
	if dt <= 0 {
		return 0
	}
	frames := 0
	for g.World.GameTime < duration && !g.gameOver {
		if steer != nil {
			g.SetMovement(steer(frames, g))
		}
		g.Update(dt)
		if autoSpend {
			g.AutoSpend()
		}
		frames++
		if g.isPaused {
			break
		}
	}
	return frames
}

// AutoSpend tries to buy every locked power it holds crystals for, then spends upgrade points
// on the lowest owned power, falling back to the passive of the category
// with the most owned powers.
func (g *Game) AutoSpend() {
	p := g.World.Player
	for _, def := range g.Lib.Powers() {
		if p.PowerLevel(def.ID) > 0 || p.Crystals[def.Category] == 0 {
			continue
		}
		if err := g.UnlockPower(def.ID); err != nil {
			log.Debug("auto unlock rejected", "power", def.ID, "err", err)
		}
	}
	for p.UpgradePoints > 0 {
		best := ""
		bestLevel := 0
		for _, id := range p.PowerOrder {
			def, err := g.Lib.Power(id)
			if err != nil {
				continue
			}
			lvl := p.PowerLevel(id)
			if lvl < def.MaxLevel && (best == "" || lvl < bestLevel) {
				best, bestLevel = id, lvl
			}
		}
		if best != "" {
			if err := g.UpgradePower(best); err != nil {
				return
			}
			continue
		}
		if err := g.UpgradePassive(g.favouriteCategory()); err != nil {
			return
		}
	}
}

func (g *Game) favouriteCategory() defs.Category {
	counts := make(map[defs.Category]int)
	for _, id := range g.World.Player.PowerOrder {
		if def, err := g.Lib.Power(id); err == nil {
			counts[def.Category]++
		}
	}
	best := defs.Categories[0]
	for _, cat := range defs.Categories {
		if counts[cat] > counts[best] {
			best = cat
		}
	}
	return best
}
