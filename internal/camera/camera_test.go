package camera

import (
	"math"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		cam    Camera
		wx, wy float64
	}{
		{"identity", Camera{Zoom: 1, ScreenW: 800, ScreenH: 600}, 12, -40},
		{"offset", Camera{X: 300, Y: -200, Zoom: 1, ScreenW: 1280, ScreenH: 720}, -1000, 55.5},
		{"zoomed in", Camera{X: 10, Y: 10, Zoom: 2.5, ScreenW: 1280, ScreenH: 720}, 17.25, 3},
		{"zoomed out", Camera{X: -5, Y: 9, Zoom: 0.3, ScreenW: 640, ScreenH: 480}, 4000, -4000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sx, sy := tc.cam.WorldToScreen(tc.wx, tc.wy)
			wx, wy := tc.cam.ScreenToWorld(sx, sy)
			if math.Abs(wx-tc.wx) > 1e-9 || math.Abs(wy-tc.wy) > 1e-9 {
				t.Errorf("round trip (%v,%v) -> (%v,%v)", tc.wx, tc.wy, wx, wy)
			}
		})
	}
}

func TestCentreMapsToScreenMiddle(t *testing.T) {
	c := &Camera{X: 50, Y: 80, Zoom: 3, ScreenW: 1280, ScreenH: 720}
	sx, sy := c.WorldToScreen(50, 80)
	if sx != 640 || sy != 360 {
		t.Errorf("centre at (%v,%v)", sx, sy)
	}
}

func TestFollowConverges(t *testing.T) {
	c := New(1280, 720)
	for i := 0; i < 300; i++ {
		c.Follow(100, -100, 1.0/60)
	}
	if math.Abs(c.X-100) > 0.01 || math.Abs(c.Y+100) > 0.01 {
		t.Errorf("camera at (%v,%v)", c.X, c.Y)
	}
	before := c.X
	c.Follow(200, -100, 0)
	if c.X != before {
		t.Error("zero dt moved the camera")
	}
}

func TestVisible(t *testing.T) {
	c := New(800, 600)
	if !c.Visible(0, 0, 1) {
		t.Error("centre not visible")
	}
	if c.Visible(1000, 0, 10) {
		t.Error("far point visible")
	}
	if !c.Visible(405, 0, 10) {
		t.Error("circle overlapping the edge not visible")
	}
}
