// internal/component/crystal.go
package component

import (
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/types"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/geom"
)

// Crystal is a pickup lying in the world.
type Crystal struct {
	ID       types.EntityID
	Category defs.Category
	Position
	Radius    float64
	Age       float64
	Collected bool
	// Consumed is set when orbiting enemies fused on this crystal.
	Consumed bool
}

// Gone reports whether the crystal should be removed.
func (c *Crystal) Gone() bool {
	return c.Collected || c.Consumed
}

// Circle returns the pickup shape.
func (c *Crystal) Circle() geom.Circle {
	return geom.Circle{X: c.X, Y: c.Y, R: c.Radius}
}
