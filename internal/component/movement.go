package component

import "github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"

// Position is a world-space location in pixels.
type Position struct {
	X, Y float64
}

// Center returns the position as a point.
func (p Position) Center() (float64, float64) {
	return p.X, p.Y
}

// MoveToward steps the position toward (tx, ty) by at most dist.
// It never overshoots the target.
func (p *Position) MoveToward(tx, ty, dist float64) {
	dx, dy := tx-p.X, ty-p.Y
	remaining := geom.Distance(0, 0, dx, dy)
	if remaining <= dist {
		if remaining > 0 {
			p.X, p.Y = tx, ty
		}
		return
	}
	nx, ny := geom.Normalize(dx, dy)
	p.X += nx * dist
	p.Y += ny * dist
}

// MoveAlong steps the position along angle by dist.
func (p *Position) MoveAlong(angle, dist float64) {
	dx, dy := geom.FromAngle(angle, dist)
	p.X += dx
	p.Y += dy
}

// Rand is the randomness a status effect needs. utils.PRNGService satisfies it.
type Rand interface {
	Float64() float64
	Angle() float64
}
