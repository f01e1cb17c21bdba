// internal/camera/camera.go
package camera

import (
	"math"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/utils"
)

// Camera maps world coordinates to screen pixels. (X, Y) is the world point
// drawn at the centre of the screen.
type Camera struct {
	X, Y    float64
	Zoom    float64
	ScreenW float64
	ScreenH float64
}

// New creates a camera centred on the origin at zoom 1.
func New(screenW, screenH int) *Camera {
	return &Camera{Zoom: 1, ScreenW: float64(screenW), ScreenH: float64(screenH)}
}

func (c *Camera) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

// WorldToScreen converts a world point to screen pixels.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	z := c.zoom()
	return (wx-c.X)*z + c.ScreenW/2, (wy-c.Y)*z + c.ScreenH/2
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	z := c.zoom()
	return (sx-c.ScreenW/2)/z + c.X, (sy-c.ScreenH/2)/z + c.Y
}

// Scale converts a world length to pixels.
func (c *Camera) Scale(length float64) float64 {
	return length * c.zoom()
}

// Follow eases the camera toward (x, y). The step is frame-rate independent.
func (c *Camera) Follow(x, y, dt float64) {
	t := utils.Clamp01(1 - math.Exp(-config.CameraFollowRate*dt))
	c.X = utils.Lerp(c.X, x, t)
	c.Y = utils.Lerp(c.Y, y, t)
}

// Visible reports whether a circle in world space overlaps the screen.
func (c *Camera) Visible(wx, wy, radius float64) bool {
	sx, sy := c.WorldToScreen(wx, wy)
	r := c.Scale(radius)
	return sx+r >= 0 && sy+r >= 0 && sx-r <= c.ScreenW && sy-r <= c.ScreenH
}
