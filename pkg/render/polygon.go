package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteImage *ebiten.Image

func whiteSource() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

// Point is a screen-space vertex.
type Point struct {
	X, Y float32
}

func polygonPath(pts []Point) *vector.Path {
	path := &vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(p.X, p.Y)
		} else {
			path.LineTo(p.X, p.Y)
		}
	}
	path.Close()
	return path
}

// FillPolygon fills the closed polygon through pts.
func FillPolygon(dst *ebiten.Image, pts []Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	vs, is := polygonPath(pts).AppendVerticesAndIndicesForFilling(nil, nil)
	tint(vs, clr)
	dst.DrawTriangles(vs, is, whiteSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// StrokePolygon outlines the closed polygon through pts.
func StrokePolygon(dst *ebiten.Image, pts []Point, width float32, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	vs, is := polygonPath(pts).AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	tint(vs, clr)
	dst.DrawTriangles(vs, is, whiteSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// tint sets every vertex to clr. Vertex colours are premultiplied.
func tint(vs []ebiten.Vertex, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
}
