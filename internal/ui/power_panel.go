// internal/ui/power_panel.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/app"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/render"
)

const (
	powerRowHeight  = 22
	powerBarWidth   = 90
	panelPadding    = 8
	panelAnimSpeed  = 10.0
	panelHiddenPeek = 4
)

var panelBackground = color.RGBA{30, 30, 45, 200}

// PowerPanel lists the owned powers with their cooldowns. It slides in from
// the bottom edge when shown and back out when hidden.
type PowerPanel struct {
	X, Width       float32
	ScreenHeight   float32
	IsVisible      bool
	currentY       float32
	targetY        float32
	animationSpeed float32
}

func NewPowerPanel(x, width, screenHeight float32) *PowerPanel {
	return &PowerPanel{
		X:              x,
		Width:          width,
		ScreenHeight:   screenHeight,
		IsVisible:      true,
		currentY:       screenHeight,
		targetY:        screenHeight,
		animationSpeed: panelAnimSpeed,
	}
}

func (p *PowerPanel) Toggle() {
	p.IsVisible = !p.IsVisible
}

// Update moves the panel toward its target for the given number of rows.
func (p *PowerPanel) Update(deltaTime float64, rows int) {
	height := p.height(rows)
	if p.IsVisible {
		p.targetY = p.ScreenHeight - height
	} else {
		p.targetY = p.ScreenHeight - panelHiddenPeek
	}
	step := float32(deltaTime) * p.animationSpeed
	if step > 1 {
		step = 1
	}
	p.currentY += (p.targetY - p.currentY) * step
}

func (p *PowerPanel) height(rows int) float32 {
	return float32(rows)*powerRowHeight + panelPadding*2
}

func (p *PowerPanel) Draw(screen *ebiten.Image, powers []app.PowerView) {
	if len(powers) == 0 || p.currentY >= p.ScreenHeight {
		return
	}
	h := p.height(len(powers))
	vector.DrawFilledRect(screen, p.X, p.currentY, p.Width, h, panelBackground, true)
	vector.StrokeRect(screen, p.X, p.currentY, p.Width, h, 1, config.IndicatorStroke, true)

	y := p.currentY + panelPadding
	for _, pw := range powers {
		clr := config.CategoryColors[string(pw.Category)]
		level := fmt.Sprintf("%d/%d", pw.Level, pw.MaxLevel)
		if pw.EffectiveLevel > pw.Level {
			level = fmt.Sprintf("%d(+%d)/%d", pw.Level, pw.EffectiveLevel-pw.Level, pw.MaxLevel)
		}
		drawText(screen, pw.Name, int(p.X+panelPadding), int(y+2), clr)
		drawText(screen, level, int(p.X+p.Width-powerBarWidth-panelPadding-70), int(y+2), config.TextLightColor)

		barX := p.X + p.Width - powerBarWidth - panelPadding
		barY := y + 4
		if pw.Passive {
			drawText(screen, "passive", int(barX), int(y+2), render.WithAlpha(config.TextLightColor, 0.6))
		} else {
			vector.DrawFilledRect(screen, barX, barY, powerBarWidth, 8, render.DarkenColor(clr), true)
			ready := 1.0
			if pw.Cooldown > 0 {
				ready = 1 - pw.Remaining/pw.Cooldown
			}
			vector.DrawFilledRect(screen, barX, barY, float32(powerBarWidth*ready), 8, clr, true)
		}
		y += powerRowHeight
	}
}
