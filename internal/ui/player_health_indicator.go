// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/render"
)

const (
	healthBarWidth  = 220
	healthBarHeight = 16
)

// PlayerHealthIndicator draws the player's health bar.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw fills the bar by ratio and flashes it while the player is hurt.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth, ratio float64, flash bool) {
	fill := config.HealthFillColor
	if flash {
		fill = config.HurtFlashColor
	}
	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, render.DarkenColor(config.HealthFillColor), true)
	if ratio > 0 {
		vector.DrawFilledRect(screen, i.X, i.Y, float32(healthBarWidth*ratio), healthBarHeight, fill, true)
	}
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, borderWidth, borderColor, true)
	drawTextCentered(screen, fmt.Sprintf("%.0f / %.0f", health, maxHealth),
		int(i.X+healthBarWidth/2), int(i.Y+healthBarHeight/2), config.TextLightColor)
}
