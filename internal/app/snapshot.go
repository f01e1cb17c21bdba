package app

import (
	"image/color"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/effect"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/status"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/types"
)

// Snapshot is a read-only copy of what a renderer needs for one frame.
// Nothing in it points back into the simulation.
type Snapshot struct {
	Time     float64
	Kills    int
	GameOver bool
	Paused   bool
	Speed    int

	Player      PlayerView
	Enemies     []EnemyView
	Projectiles []CircleView
	Areas       []AreaView
	Rings       []CircleView
	Crucibles   []CrucibleView
	Beams       []BeamView
	Shields     []CircleView
	Crystals    []CircleView
	Powers      []PowerView
}

// CircleView is anything drawn as a filled circle.
type CircleView struct {
	X, Y, Radius float64
	Color        color.RGBA
}

type PlayerView struct {
	CircleView
	HealthRatio   float64
	Health        float64
	MaxHealth     float64
	Flash         bool
	Invulnerable  bool
	Level         int
	XP            int
	XPToNextLevel int
	UpgradePoints int
	Crystals      map[defs.Category]int
	Supercharged  map[defs.Category]float64
}

type EnemyView struct {
	CircleView
	ID           types.EntityID
	Kind         defs.EnemyKind
	HealthRatio  float64
	Flash        bool
	Frozen       bool
	Immobilized  bool
	Burning      bool
	Delirious    bool
	Slowed       bool
	Invulnerable bool
	Building     bool
}

// AreaView carries the fade progress in [0, 1].
type AreaView struct {
	CircleView
	Kind     effect.AreaKind
	Progress float64
}

type CrucibleView struct {
	CircleView
	Intensity float64
}

type LineView struct {
	X1, Y1, X2, Y2 float64
}

// BeamView is a cryostasis beam: the caster line plus any refracted beams.
type BeamView struct {
	Main      LineView
	Refracted []LineView
	Intensity float64
	Frozen    bool
}

type PowerView struct {
	ID             string
	Name           string
	Category       defs.Category
	Passive        bool
	Level          int
	EffectiveLevel int
	MaxLevel       int
	Cooldown       float64
	Remaining      float64
}

func categoryColor(c defs.Category) color.RGBA {
	if col, ok := config.CategoryColors[string(c)]; ok {
		return col
	}
	return config.TextLightColor
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	p := w.Player
	s := Snapshot{
		Time:     w.GameTime,
		Kills:    w.Kills,
		GameOver: g.gameOver,
		Paused:   g.isPaused,
		Speed:    g.SpeedMultiplier,
	}

	s.Player = PlayerView{
		CircleView:    CircleView{X: p.X, Y: p.Y, Radius: p.Radius, Color: config.PlayerColor},
		HealthRatio:   p.HealthRatio(),
		Health:        p.Health,
		MaxHealth:     p.MaxHealth,
		Flash:         p.Flash.Active(),
		Invulnerable:  p.Invulnerable > 0,
		Level:         p.Level,
		XP:            p.XP,
		XPToNextLevel: p.XPToNextLevel,
		UpgradePoints: p.UpgradePoints,
		Crystals:      make(map[defs.Category]int, len(p.Crystals)),
		Supercharged:  make(map[defs.Category]float64),
	}
	for cat, n := range p.Crystals {
		s.Player.Crystals[cat] = n
	}
	for _, e := range p.Effects.Active() {
		if e.Type == status.Supercharge {
			s.Player.Supercharged[e.Category] = e.Remaining
		}
	}

	g.Enemies.Each(func(e *component.Enemy) {
		if e.Dead {
			return
		}
		s.Enemies = append(s.Enemies, enemyView(e))
	})

	for _, pr := range w.Projectiles {
		s.Projectiles = append(s.Projectiles, CircleView{X: pr.X, Y: pr.Y, Radius: pr.Radius, Color: pr.Color})
	}
	for _, a := range w.Areas {
		s.Areas = append(s.Areas, AreaView{
			CircleView: CircleView{X: a.X, Y: a.Y, Radius: a.Radius, Color: a.Color},
			Kind:       a.Kind,
			Progress:   a.Progress(),
		})
	}
	for _, r := range w.Rings {
		s.Rings = append(s.Rings, CircleView{X: r.X, Y: r.Y, Radius: r.CurrentRadius(), Color: config.RingColor})
	}
	for _, c := range w.Crucibles {
		s.Crucibles = append(s.Crucibles, CrucibleView{
			CircleView: CircleView{X: c.X, Y: c.Y, Radius: c.Radius, Color: config.CrucibleColor},
			Intensity:  c.Intensity(),
		})
	}
	for _, b := range w.Beams {
		bv := BeamView{
			Main:      LineView{X1: b.CasterX, Y1: b.CasterY, X2: b.Target.X, Y2: b.Target.Y},
			Intensity: b.Intensity(),
			Frozen:    b.Frozen(),
		}
		for _, rb := range b.Beams() {
			bv.Refracted = append(bv.Refracted, LineView{X1: rb.X1, Y1: rb.Y1, X2: rb.X2, Y2: rb.Y2})
		}
		s.Beams = append(s.Beams, bv)
	}
	for _, sh := range w.Shields {
		s.Shields = append(s.Shields, CircleView{X: sh.X, Y: sh.Y, Radius: sh.Radius, Color: config.ShieldColor})
	}
	for _, c := range w.Crystals {
		s.Crystals = append(s.Crystals, CircleView{X: c.X, Y: c.Y, Radius: c.Radius, Color: categoryColor(c.Category)})
	}

	for _, id := range p.PowerOrder {
		def, err := g.Lib.Power(id)
		if err != nil {
			continue
		}
		pv := PowerView{
			ID:             def.ID,
			Name:           def.Name,
			Category:       def.Category,
			Passive:        def.Passive,
			Level:          p.PowerLevel(id),
			EffectiveLevel: g.PowerManager.EffectiveLevel(def),
			MaxLevel:       def.MaxLevel,
		}
		if !def.Passive {
			pv.Cooldown, _ = g.PowerManager.CurrentCooldown(id)
			pv.Remaining = g.PowerManager.RemainingCooldown(id)
		}
		s.Powers = append(s.Powers, pv)
	}
	return s
}

func enemyView(e *component.Enemy) EnemyView {
	st := &e.Status
	return EnemyView{
		CircleView:   CircleView{X: e.X, Y: e.Y, Radius: e.Radius, Color: e.Color},
		ID:           e.ID,
		Kind:         e.Kind,
		HealthRatio:  e.HealthRatio(),
		Flash:        e.Flash.Active(),
		Frozen:       st.PermanentlyFrozen,
		Immobilized:  st.ImmobilizeTime > 0,
		Burning:      e.IsBurning(),
		Delirious:    e.IsDelirious(),
		Slowed:       e.IsSlowed(),
		Invulnerable: e.CryostasisInvulnerable,
		Building:     e.Behavior.Building,
	}
}
