package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// cellKey addresses one uniform-grid cell.
type cellKey struct {
	X, Y int
}

// Grid is the uniform spatial index behind broad-phase collision lookup.
// Dynamic bodies live in buckets keyed by their current cell; static
// bodies sit in a separate list that every query appends in full, so a
// wall is a candidate no matter how far away it is. Each body carries a
// back-reference to its current cell, making a move one bucket splice
// instead of a scan over all buckets.
type Grid struct {
	cellSize float64
	cells    map[cellKey][]*Body
	statics  []*Body
}

// NewGrid creates a grid with the given cell size in world units.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 128
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]*Body),
	}
}

// CellSize returns the configured cell size.
func (g *Grid) CellSize() float64 { return g.cellSize }

// keyFor returns the cell containing a world position.
func (g *Grid) keyFor(p r2.Vec) cellKey {
	return cellKey{
		X: int(math.Floor(p.X / g.cellSize)),
		Y: int(math.Floor(p.Y / g.cellSize)),
	}
}

// Insert registers a body with the index.
func (g *Grid) Insert(b *Body) {
	if b.Static {
		g.statics = append(g.statics, b)
		return
	}
	k := g.keyFor(b.Pos)
	g.cells[k] = append(g.cells[k], b)
	b.cell = k
	b.inGrid = true
}

// Remove unregisters a body. Safe for bodies that were never inserted.
func (g *Grid) Remove(b *Body) {
	if b.Static {
		g.statics = spliceBody(g.statics, b)
		return
	}
	if !b.inGrid {
		return
	}
	g.dropFromCell(b)
	b.inGrid = false
}

// Move re-buckets a body after its position changed. Removal happens
// before reinsertion, so a body crossing a cell boundary is never lost.
func (g *Grid) Move(b *Body) {
	if b.Static {
		return
	}
	if !b.inGrid {
		g.Insert(b)
		return
	}
	k := g.keyFor(b.Pos)
	if k == b.cell {
		return
	}
	g.dropFromCell(b)
	g.cells[k] = append(g.cells[k], b)
	b.cell = k
}

// dropFromCell splices b out of its current bucket, deleting the bucket
// when it empties.
func (g *Grid) dropFromCell(b *Body) {
	bucket := spliceBody(g.cells[b.cell], b)
	if len(bucket) == 0 {
		delete(g.cells, b.cell)
	} else {
		g.cells[b.cell] = bucket
	}
}

// NearbyInto appends broad-phase candidates for b to dst and returns it:
// every body in the 3x3 block of cells centered on b's current position,
// plus every static body. b itself is included, from its own cell.
func (g *Grid) NearbyInto(dst []*Body, b *Body) []*Body {
	c := g.keyFor(b.Pos)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			dst = append(dst, g.cells[cellKey{X: c.X + dx, Y: c.Y + dy}]...)
		}
	}
	return append(dst, g.statics...)
}

// Nearby is NearbyInto with a fresh slice.
func (g *Grid) Nearby(b *Body) []*Body {
	return g.NearbyInto(make([]*Body, 0, 16), b)
}

// StaticCount returns the number of registered static bodies.
func (g *Grid) StaticCount() int { return len(g.statics) }

// OccupiedCells returns the number of non-empty dynamic buckets.
func (g *Grid) OccupiedCells() int { return len(g.cells) }

// MaxBucket returns the size of the largest dynamic bucket.
func (g *Grid) MaxBucket() int {
	maxLen := 0
	for _, bucket := range g.cells {
		if len(bucket) > maxLen {
			maxLen = len(bucket)
		}
	}
	return maxLen
}

// spliceBody removes the first occurrence of b from list, preserving
// order.
func spliceBody(list []*Body, b *Body) []*Body {
	for i, x := range list {
		if x == b {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
