// internal/ui/upgrade_menu.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/render"
)

// MenuOption is one selectable line of the upgrade menu.
type MenuOption struct {
	Label   string
	Detail  string
	Color   color.RGBA
	Enabled bool
}

// UpgradeMenu is a keyboard-driven list.
type UpgradeMenu struct {
	X, Y, Width float32
	Options     []MenuOption
	Selected    int
	Message     string
}

const menuRowHeight = 24

func NewUpgradeMenu(x, y, width float32) *UpgradeMenu {
	return &UpgradeMenu{X: x, Y: y, Width: width}
}

// SetOptions replaces the list and keeps the cursor in range.
func (m *UpgradeMenu) SetOptions(opts []MenuOption) {
	m.Options = opts
	if m.Selected >= len(opts) {
		m.Selected = len(opts) - 1
	}
	if m.Selected < 0 {
		m.Selected = 0
	}
}

func (m *UpgradeMenu) MoveUp() {
	if len(m.Options) == 0 {
		return
	}
	m.Selected = (m.Selected - 1 + len(m.Options)) % len(m.Options)
}

func (m *UpgradeMenu) MoveDown() {
	if len(m.Options) == 0 {
		return
	}
	m.Selected = (m.Selected + 1) % len(m.Options)
}

func (m *UpgradeMenu) Draw(screen *ebiten.Image) {
	h := float32(len(m.Options))*menuRowHeight + 2*panelPadding
	vector.DrawFilledRect(screen, m.X, m.Y, m.Width, h, panelBackground, true)
	vector.StrokeRect(screen, m.X, m.Y, m.Width, h, 1, config.IndicatorStroke, true)

	y := m.Y + panelPadding
	for i, opt := range m.Options {
		if i == m.Selected {
			vector.DrawFilledRect(screen, m.X+2, y, m.Width-4, menuRowHeight-2, render.WithAlpha(opt.Color, 0.3), true)
		}
		clr := config.TextLightColor
		if !opt.Enabled {
			clr = render.WithAlpha(clr, 0.4)
		}
		drawText(screen, opt.Label, int(m.X+panelPadding), int(y+5), clr)
		b := textWidth(opt.Detail)
		drawText(screen, opt.Detail, int(m.X+m.Width-panelPadding)-b, int(y+5), clr)
		y += menuRowHeight
	}
	if m.Message != "" {
		drawText(screen, m.Message, int(m.X+panelPadding), int(y+panelPadding), config.HurtFlashColor)
	}
}
