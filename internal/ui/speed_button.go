package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/render"
)

// SpeedButton is the fast-forward button. Each state has its own colour.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image, multiplier int) {
	triangleSize := b.Size * pulseScale(b.LastClickTime)
	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	left := []render.Point{
		{X: b.X - width, Y: b.Y - height/2},
		{X: b.X, Y: b.Y},
		{X: b.X - width, Y: b.Y + height/2},
	}
	right := []render.Point{
		{X: b.X - width + offset, Y: b.Y - height/2},
		{X: b.X + offset, Y: b.Y},
		{X: b.X - width + offset, Y: b.Y + height/2},
	}
	for _, tri := range [][]render.Point{left, right} {
		render.FillPolygon(screen, tri, clr)
		render.StrokePolygon(screen, tri, 1, color.White)
	}
	drawTextCentered(screen, fmt.Sprintf("x%d", multiplier), int(b.X), int(b.Y+height/2+10), config.TextLightColor)
}

// Contains uses a circle for the hit test since the shape is irregular.
func (b *SpeedButton) Contains(x, y int) bool {
	return inCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
}

// pulseScale grows a button briefly after a click and decays back to 1.
func pulseScale(lastClick time.Time) float32 {
	if lastClick.IsZero() {
		return 1
	}
	elapsed := time.Since(lastClick).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func inCircle(x, y int, cx, cy, r float32) bool {
	dx := float32(x) - cx
	dy := float32(y) - cy
	return dx*dx+dy*dy <= r*r
}
