// internal/ui/font.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the bitmap face every HUD widget uses.
var DefaultFace font.Face = basicfont.Face7x13

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	b := text.BoundString(DefaultFace, s)
	text.Draw(screen, s, DefaultFace, x, y-b.Min.Y, clr)
}

// drawTextCentered draws s centred on (x, y).
func drawTextCentered(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	b := text.BoundString(DefaultFace, s)
	text.Draw(screen, s, DefaultFace, x-b.Dx()/2, y-b.Dy()/2-b.Min.Y, clr)
}

func textWidth(s string) int {
	return text.BoundString(DefaultFace, s).Dx()
}
