// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
)

// PlayerLevelIndicator shows the player's level, experience and unspent points.
type PlayerLevelIndicator struct {
	X, Y float32
}

const (
	xpBarWidth      = 220
	xpBarHeight     = 10
	pointRectWidth  = 12
	pointRectHeight = 8
	pointRectGap    = 5
	maxPointRects   = 8
	borderWidth     = 1
)

var borderColor = color.White

func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// Draw draws the XP bar with the level to its right and one small box per
// unspent upgrade point underneath.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext, points int) {
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor, true)

	fillRatio := 0.0
	if xpToNext > 0 {
		fillRatio = float64(currentXP) / float64(xpToNext)
	}
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, config.XPFillColor, true)
	}
	drawText(screen, fmt.Sprintf("Lv %d", level), int(i.X+xpBarWidth+8), int(i.Y-2), config.TextLightColor)

	rectY := i.Y + xpBarHeight + 6
	for j := 0; j < points && j < maxPointRects; j++ {
		rectX := i.X + float32(j)*(pointRectWidth+pointRectGap)
		vector.DrawFilledRect(screen, rectX, rectY, pointRectWidth, pointRectHeight, config.XPFillColor, true)
		vector.StrokeRect(screen, rectX, rectY, pointRectWidth, pointRectHeight, borderWidth, borderColor, true)
	}
	if points > maxPointRects {
		drawText(screen, fmt.Sprintf("+%d", points-maxPointRects),
			int(i.X+maxPointRects*(pointRectWidth+pointRectGap)), int(rectY-2), config.TextLightColor)
	}
}
