package render

import (
	"image/color"
	"testing"
)

func TestMix(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{200, 100, 50, 255}
	tests := []struct {
		t    float64
		want color.RGBA
	}{
		{0, a},
		{1, b},
		{0.5, color.RGBA{100, 50, 25, 255}},
		{-3, a},
		{7, b},
	}
	for _, tc := range tests {
		if got := Mix(a, b, tc.t); got != tc.want {
			t.Errorf("Mix(%v) = %v, expected %v", tc.t, got, tc.want)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{200, 100, 50, 200}
	if got := WithAlpha(c, 0.5); got != (color.RGBA{100, 50, 25, 100}) {
		t.Errorf("WithAlpha = %v", got)
	}
	if got := WithAlpha(c, 2); got != c {
		t.Errorf("WithAlpha clamps, got %v", got)
	}
	if got := DarkenColor(c); got.A != c.A || got.R != 100 {
		t.Errorf("DarkenColor = %v", got)
	}
}
