// pkg/render/world_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/app"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/camera"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/effect"
)

const gridSpacing = 100.0

// WorldRenderer draws a Snapshot in world space through a camera.
type WorldRenderer struct {
	cam *camera.Camera
}

func NewWorldRenderer(cam *camera.Camera) *WorldRenderer {
	return &WorldRenderer{cam: cam}
}

// Draw renders one frame, back to front.
func (r *WorldRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	screen.Fill(config.BackgroundColor)
	r.drawGrid(screen)

	for _, a := range snap.Areas {
		r.drawArea(screen, a)
	}
	for _, c := range snap.Crucibles {
		fill := WithAlpha(c.Color, 0.15+0.45*c.Intensity)
		r.fillCircle(screen, c.X, c.Y, c.Radius, fill)
		r.strokeCircle(screen, c.X, c.Y, c.Radius, 2, c.Color)
	}
	for _, c := range snap.Crystals {
		r.fillCircle(screen, c.X, c.Y, c.Radius, c.Color)
	}
	for _, ring := range snap.Rings {
		r.strokeCircle(screen, ring.X, ring.Y, ring.Radius, float32(config.RingBandHalfWidth/2), ring.Color)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, b := range snap.Beams {
		r.drawBeam(screen, b)
	}
	for _, p := range snap.Projectiles {
		r.fillCircle(screen, p.X, p.Y, p.Radius, p.Color)
	}
	for _, s := range snap.Shields {
		r.fillCircle(screen, s.X, s.Y, s.Radius, s.Color)
	}
	r.drawPlayer(screen, snap.Player)
}

func (r *WorldRenderer) drawGrid(screen *ebiten.Image) {
	w, h := r.cam.ScreenW, r.cam.ScreenH
	left, top := r.cam.ScreenToWorld(0, 0)
	right, bottom := r.cam.ScreenToWorld(w, h)
	for x := math.Floor(left/gridSpacing) * gridSpacing; x <= right; x += gridSpacing {
		sx, _ := r.cam.WorldToScreen(x, 0)
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(h), 1, config.GridLineColor, false)
	}
	for y := math.Floor(top/gridSpacing) * gridSpacing; y <= bottom; y += gridSpacing {
		_, sy := r.cam.WorldToScreen(0, y)
		vector.StrokeLine(screen, 0, float32(sy), float32(w), float32(sy), 1, config.GridLineColor, false)
	}
}

func (r *WorldRenderer) drawArea(screen *ebiten.Image, a app.AreaView) {
	fade := 1 - a.Progress
	switch a.Kind {
	case effect.AreaWell:
		r.fillCircle(screen, a.X, a.Y, a.Radius, WithAlpha(a.Color, 0.25*fade+0.1))
		r.strokeCircle(screen, a.X, a.Y, a.Radius*(1-0.5*math.Mod(a.Progress*4, 1)), 2, a.Color)
	case effect.AreaExplosion, effect.AreaSlam:
		r.fillCircle(screen, a.X, a.Y, a.Radius, WithAlpha(a.Color, 0.8*fade))
	default:
		r.fillCircle(screen, a.X, a.Y, a.Radius, WithAlpha(a.Color, 0.5*fade+0.1))
	}
}

func (r *WorldRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	if !r.cam.Visible(e.X, e.Y, e.Radius) {
		return
	}
	body := e.Color
	switch {
	case e.Frozen:
		body = config.FrozenColor
	case e.Burning:
		body = Mix(body, config.BurningColor, 0.6)
	case e.Delirious:
		body = Mix(body, config.DeliriousColor, 0.5)
	case e.Immobilized:
		body = Mix(body, config.FrozenColor, 0.4)
	case e.Slowed:
		body = Mix(body, config.FrozenColor, 0.2)
	}
	if e.Flash {
		body = config.HurtFlashColor
	}
	r.fillCircle(screen, e.X, e.Y, e.Radius, body)
	if e.Invulnerable {
		r.strokeCircle(screen, e.X, e.Y, e.Radius+3, 2, config.BeamColor)
	}
	if e.Building {
		r.strokeCircle(screen, e.X, e.Y, e.Radius+2, 1, config.IndicatorStroke)
	}
	if e.HealthRatio < 1 {
		sx, sy := r.cam.WorldToScreen(e.X, e.Y)
		rad := r.cam.Scale(e.Radius)
		x := float32(sx - rad)
		y := float32(sy - rad - 6)
		width := float32(rad * 2)
		vector.DrawFilledRect(screen, x, y, width, 3, DarkenColor(config.HealthFillColor), false)
		vector.DrawFilledRect(screen, x, y, width*float32(e.HealthRatio), 3, config.HealthFillColor, false)
	}
}

func (r *WorldRenderer) drawBeam(screen *ebiten.Image, b app.BeamView) {
	width := float32(2 + 4*b.Intensity)
	r.line(screen, b.Main, width, config.BeamColor)
	for _, rb := range b.Refracted {
		r.line(screen, rb, width*0.6, WithAlpha(config.BeamColor, 0.8))
	}
}

func (r *WorldRenderer) drawPlayer(screen *ebiten.Image, p app.PlayerView) {
	body := p.Color
	if p.Flash {
		body = config.HurtFlashColor
	} else if p.Invulnerable {
		body = WithAlpha(body, 0.6)
	}
	r.fillCircle(screen, p.X, p.Y, p.Radius, body)
	r.strokeCircle(screen, p.X, p.Y, p.Radius, 1.5, config.IndicatorStroke)
}

func (r *WorldRenderer) fillCircle(screen *ebiten.Image, x, y, radius float64, clr color.Color) {
	sx, sy := r.cam.WorldToScreen(x, y)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r.cam.Scale(radius)), clr, true)
}

func (r *WorldRenderer) strokeCircle(screen *ebiten.Image, x, y, radius float64, width float32, clr color.Color) {
	sx, sy := r.cam.WorldToScreen(x, y)
	vector.StrokeCircle(screen, float32(sx), float32(sy), float32(r.cam.Scale(radius)), width, clr, true)
}

func (r *WorldRenderer) line(screen *ebiten.Image, l app.LineView, width float32, clr color.Color) {
	x1, y1 := r.cam.WorldToScreen(l.X1, l.Y1)
	x2, y2 := r.cam.WorldToScreen(l.X2, l.Y2)
	vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), width, clr, true)
}
