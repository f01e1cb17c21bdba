// internal/ui/crystal_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/render"
)

// CrystalIndicator shows one bar per crystal category. A bar fills toward
// the next supercharge and glows while that category is supercharged.
type CrystalIndicator struct {
	X, Y          float32
	Width, Height float32
	BarWidth      float32
	Spacing       float32
	PerCharge     int
}

func NewCrystalIndicator(x, y, width, height float32, perCharge int) *CrystalIndicator {
	n := float32(len(defs.Categories))
	const spacing = 10
	return &CrystalIndicator{
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		BarWidth:  (width - spacing*(n-1)) / n,
		Spacing:   spacing,
		PerCharge: perCharge,
	}
}

func (i *CrystalIndicator) Draw(screen *ebiten.Image, counts map[defs.Category]int, supercharged map[defs.Category]float64) {
	startX := i.X
	for _, cat := range defs.Categories {
		clr := config.CategoryColors[string(cat)]
		vector.DrawFilledRect(screen, startX, i.Y, i.BarWidth, i.Height, render.DarkenColor(render.WithAlpha(clr, 0.5)), true)

		if i.PerCharge > 0 {
			pct := float32(counts[cat]%i.PerCharge) / float32(i.PerCharge)
			if pct > 0 {
				fillHeight := i.Height * pct
				vector.DrawFilledRect(screen, startX, i.Y+i.Height-fillHeight, i.BarWidth, fillHeight, clr, true)
			}
		}
		stroke := float32(borderWidth)
		if _, ok := supercharged[cat]; ok {
			stroke = 3
		}
		vector.StrokeRect(screen, startX, i.Y, i.BarWidth, i.Height, stroke, clr, true)
		drawTextCentered(screen, fmt.Sprint(counts[cat]), int(startX+i.BarWidth/2), int(i.Y+i.Height+10), config.TextLightColor)

		startX += i.BarWidth + i.Spacing
	}
}
