// pkg/geom/collision.go
package geom

// Circle is a collision circle.
type Circle struct {
	X, Y, R float64
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// CircleCircle reports whether two circles overlap. Touching counts as overlap.
func CircleCircle(a, b Circle) bool {
	r := a.R + b.R
	return DistanceSq(a.X, a.Y, b.X, b.Y) <= r*r
}

// CircleRect reports whether a circle overlaps a rectangle.
func CircleRect(c Circle, r Rect) bool {
	nx := Clamp(c.X, r.X, r.X+r.W)
	ny := Clamp(c.Y, r.Y, r.Y+r.H)
	return DistanceSq(c.X, c.Y, nx, ny) <= c.R*c.R
}

// PointInCircle reports whether (x, y) lies inside or on c.
func PointInCircle(x, y float64, c Circle) bool {
	return DistanceSq(x, y, c.X, c.Y) <= c.R*c.R
}

// ClosestPointOnSegment returns the point of segment (x1,y1)-(x2,y2) closest to (px, py)
// and its parameter t in [0, 1]. A degenerate segment returns its start.
func ClosestPointOnSegment(x1, y1, x2, y2, px, py float64) (cx, cy, t float64) {
	dx := x2 - x1
	dy := y2 - y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return x1, y1, 0
	}
	t = Clamp(((px-x1)*dx+(py-y1)*dy)/lenSq, 0, 1)
	return x1 + dx*t, y1 + dy*t, t
}

// SegmentCircle tests a segment against a circle using the closest point on the segment.
// On a hit it returns the distance from the segment start to that closest point,
// which callers use to pick the nearest of several intersected circles.
func SegmentCircle(x1, y1, x2, y2 float64, c Circle) (hit bool, along float64) {
	cx, cy, _ := ClosestPointOnSegment(x1, y1, x2, y2, c.X, c.Y)
	if DistanceSq(cx, cy, c.X, c.Y) > c.R*c.R {
		return false, 0
	}
	return true, Distance(x1, y1, cx, cy)
}
