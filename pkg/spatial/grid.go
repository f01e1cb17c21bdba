package spatial

import "math"

// DefaultCellSize is about twice the radius of the largest regular enemy.
const DefaultCellSize = 100.0

// Item is anything the grid can bucket.
type Item interface {
	Center() (x, y float64)
}

type cellKey struct {
	cx, cy int
}

// Grid is an unbounded uniform grid for broad-phase collision queries.
// It is rebuilt every frame: Clear, then Insert every live item. Entries are
// never pruned incrementally, so a grid that skipped its rebuild holds stale data.
//
// Queries return a superset of the items within the query radius; callers
// apply their own exact distance test.
type Grid[T Item] struct {
	cellSize float64
	cells    map[cellKey][]T
	count    int
}

// NewGrid creates a grid. cellSize must exceed twice the largest item radius
// for Nearby to be free of false negatives; non-positive sizes fall back to DefaultCellSize.
func NewGrid[T Item](cellSize float64) *Grid[T] {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid[T]{
		cellSize: cellSize,
		cells:    make(map[cellKey][]T),
	}
}

// CellSize returns the configured cell edge length.
func (g *Grid[T]) CellSize() float64 {
	return g.cellSize
}

// Len returns the number of inserted items.
func (g *Grid[T]) Len() int {
	return g.count
}

func (g *Grid[T]) key(x, y float64) cellKey {
	return cellKey{
		cx: int(math.Floor(x / g.cellSize)),
		cy: int(math.Floor(y / g.cellSize)),
	}
}

// Clear empties every cell. Cells that were already empty since the previous
// Clear are dropped so the map does not grow without bound as the world scrolls.
func (g *Grid[T]) Clear() {
	for k, bucket := range g.cells {
		if len(bucket) == 0 {
			delete(g.cells, k)
			continue
		}
		var zero T
		for i := range bucket {
			bucket[i] = zero
		}
		g.cells[k] = bucket[:0]
	}
	g.count = 0
}

// Insert buckets an item by its center.
func (g *Grid[T]) Insert(item T) {
	x, y := item.Center()
	k := g.key(x, y)
	g.cells[k] = append(g.cells[k], item)
	g.count++
}

// Nearby returns every item in the 3x3 block of cells around (x, y).
func (g *Grid[T]) Nearby(x, y float64) []T {
	return g.NearbyBuf(x, y, nil)
}

// NearbyBuf is Nearby appending into buf to avoid per-call allocation.
func (g *Grid[T]) NearbyBuf(x, y float64, buf []T) []T {
	k := g.key(x, y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			buf = append(buf, g.cells[cellKey{k.cx + dx, k.cy + dy}]...)
		}
	}
	return buf
}

// QueryRadius returns every item in cells overlapping the bounding square of the
// query circle, padded by one cell. Use it when the radius exceeds the cell size.
func (g *Grid[T]) QueryRadius(x, y, radius float64, buf []T) []T {
	if radius <= g.cellSize {
		return g.NearbyBuf(x, y, buf)
	}
	lo := g.key(x-radius, y-radius)
	hi := g.key(x+radius, y+radius)
	for cy := lo.cy - 1; cy <= hi.cy+1; cy++ {
		for cx := lo.cx - 1; cx <= hi.cx+1; cx++ {
			buf = append(buf, g.cells[cellKey{cx, cy}]...)
		}
	}
	return buf
}

// NearbyBrute is the O(n) reference query: every item whose center lies within
// radius of (x, y). It serves small populations and tests.
func NearbyBrute[T Item](items []T, x, y, radius float64) []T {
	var out []T
	r2 := radius * radius
	for _, it := range items {
		ix, iy := it.Center()
		dx := ix - x
		dy := iy - y
		if dx*dx+dy*dy <= r2 {
			out = append(out, it)
		}
	}
	return out
}
