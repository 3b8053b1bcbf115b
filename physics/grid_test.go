package physics

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func countBody(list []*Body, b *Body) int {
	n := 0
	for _, other := range list {
		if other == b {
			n++
		}
	}
	return n
}

func TestGridInsertAndQuery(t *testing.T) {
	g := NewGrid(128)
	b := &Body{ID: 1, Pos: r2.Vec{X: 200, Y: 300}}
	g.Insert(b)

	nearby := g.Nearby(b)
	if got := countBody(nearby, b); got != 1 {
		t.Errorf("body appears %d times in its own neighborhood, want 1", got)
	}
}

func TestGridNeighborhoodSpansCells(t *testing.T) {
	g := NewGrid(128)
	a := &Body{ID: 1, Pos: r2.Vec{X: 120, Y: 64}}
	b := &Body{ID: 2, Pos: r2.Vec{X: 136, Y: 64}}
	far := &Body{ID: 3, Pos: r2.Vec{X: 1000, Y: 1000}}
	g.Insert(a)
	g.Insert(b)
	g.Insert(far)

	nearby := g.Nearby(a)
	if countBody(nearby, b) != 1 {
		t.Error("body in adjacent cell missing from neighborhood")
	}
	if countBody(nearby, far) != 0 {
		t.Error("distant body should not appear in neighborhood")
	}
}

func TestGridMoveAcrossBoundary(t *testing.T) {
	g := NewGrid(128)
	b := &Body{ID: 1, Pos: r2.Vec{X: 100, Y: 100}}
	g.Insert(b)

	b.Pos = r2.Vec{X: 900, Y: 900}
	g.Move(b)

	nearby := g.Nearby(b)
	if got := countBody(nearby, b); got != 1 {
		t.Errorf("moved body appears %d times near new position, want 1", got)
	}

	probe := &Body{ID: 2, Pos: r2.Vec{X: 100, Y: 100}}
	if countBody(g.Nearby(probe), b) != 0 {
		t.Error("moved body still registered near old position")
	}
}

func TestGridMoveWithinCell(t *testing.T) {
	g := NewGrid(128)
	b := &Body{ID: 1, Pos: r2.Vec{X: 10, Y: 10}}
	g.Insert(b)

	b.Pos = r2.Vec{X: 50, Y: 50}
	g.Move(b)

	if got := countBody(g.Nearby(b), b); got != 1 {
		t.Errorf("body appears %d times after in-cell move, want 1", got)
	}
	if g.OccupiedCells() != 1 {
		t.Errorf("OccupiedCells = %d, want 1", g.OccupiedCells())
	}
}

func TestGridRemove(t *testing.T) {
	g := NewGrid(128)
	b := &Body{ID: 1, Pos: r2.Vec{X: 10, Y: 10}}
	g.Insert(b)
	g.Remove(b)

	probe := &Body{ID: 2, Pos: r2.Vec{X: 10, Y: 10}}
	if countBody(g.Nearby(probe), b) != 0 {
		t.Error("removed body still appears in queries")
	}
	if g.OccupiedCells() != 0 {
		t.Errorf("OccupiedCells = %d after removal, want 0", g.OccupiedCells())
	}
}

func TestGridStaticsReachEveryQuery(t *testing.T) {
	g := NewGrid(128)
	wall := &Body{ID: 1, Pos: r2.Vec{X: 0, Y: 0}, Static: true}
	g.Insert(wall)

	probe := &Body{ID: 2, Pos: r2.Vec{X: 50000, Y: 50000}}
	g.Insert(probe)

	if countBody(g.Nearby(probe), wall) != 1 {
		t.Error("static body missing from a query far outside its cell")
	}
	if g.StaticCount() != 1 {
		t.Errorf("StaticCount = %d, want 1", g.StaticCount())
	}
	if g.OccupiedCells() != 1 {
		t.Errorf("statics should not occupy buckets, OccupiedCells = %d", g.OccupiedCells())
	}
}

func TestGridStaticRemove(t *testing.T) {
	g := NewGrid(128)
	wall := &Body{ID: 1, Static: true}
	g.Insert(wall)
	g.Remove(wall)

	probe := &Body{ID: 2}
	if countBody(g.Nearby(probe), wall) != 0 {
		t.Error("removed static still appears in queries")
	}
	if g.StaticCount() != 0 {
		t.Errorf("StaticCount = %d after removal, want 0", g.StaticCount())
	}
}

func TestGridCellSizeFloor(t *testing.T) {
	g := NewGrid(0)
	if g.CellSize() != 128 {
		t.Errorf("CellSize = %f for zero input, want default 128", g.CellSize())
	}
}

func TestGridNegativeCoordinates(t *testing.T) {
	g := NewGrid(128)
	a := &Body{ID: 1, Pos: r2.Vec{X: -10, Y: -10}}
	b := &Body{ID: 2, Pos: r2.Vec{X: 10, Y: 10}}
	g.Insert(a)
	g.Insert(b)

	if countBody(g.Nearby(a), b) != 1 {
		t.Error("bodies straddling the origin should be neighbors")
	}
}

func TestGridMaxBucket(t *testing.T) {
	g := NewGrid(128)
	for i := 0; i < 5; i++ {
		g.Insert(&Body{ID: i, Pos: r2.Vec{X: 10, Y: 10}})
	}
	g.Insert(&Body{ID: 10, Pos: r2.Vec{X: 1000, Y: 1000}})

	if g.MaxBucket() != 5 {
		t.Errorf("MaxBucket = %d, want 5", g.MaxBucket())
	}
	if g.OccupiedCells() != 2 {
		t.Errorf("OccupiedCells = %d, want 2", g.OccupiedCells())
	}
}
