package bsp

import (
	"testing"

	"github.com/tumbleworld/core/math32"
	"github.com/tumbleworld/core/world"
)

// flatFloorWorld builds a single-lump, single-node world with one
// solid side: the plane y=0, matching the spec's "flat floor bounce"
// scenario geometry.
func flatFloorWorld() *world.World {
	w := world.New()
	w.Sides = []world.Side{{N: math32.Vector3{X: 0, Y: 1, Z: 0}, D: 0}}
	w.SidePool = []int{0}
	w.Lumps = []world.Lump{{S0: 0, SC: 1}}
	w.Nodes = []world.Node{{SI: world.None, NI: world.None, NJ: world.None, L0: 0, LC: 1}}
	w.Bodies = []world.Body{{NI: 0, PI: world.None}}
	return w
}

func TestTestFileFindsFloorContact(t *testing.T) {
	w := flatFloorWorld()
	ball := world.NewBall(0.25)
	ball.P = math32.Vector3{X: 0, Y: 1, Z: 0}
	ball.V = math32.Vector3{X: 0, Y: -5, Z: 0}

	c := TestFile(w, 0.2, ball)
	if math32.Abs(c.T-0.15) > 1e-3 {
		t.Errorf("contact time = %v, want ~0.15", c.T)
	}
}

func TestTestFileNoContactWhenFalling(t *testing.T) {
	w := flatFloorWorld()
	ball := world.NewBall(0.25)
	ball.P = math32.Vector3{X: 0, Y: 10, Z: 0}
	ball.V = math32.Vector3{X: 0, Y: -1, Z: 0}

	c := TestFile(w, 0.1, ball)
	if c.T < 0.1 {
		t.Errorf("contact time = %v, want >= dt (no contact within slice)", c.T)
	}
}

func TestTestForeNowInFront(t *testing.T) {
	side := &world.Side{N: math32.Vector3{X: 1, Y: 0, Z: 0}, D: 0}
	ball := world.NewBall(0.1)
	ball.P = math32.Vector3{X: 1, Y: 0, Z: 0}

	if !TestFore(1, ball, side, math32.Vector3{}, math32.Vector3{}) {
		t.Error("a ball already in front of the plane must pass TestFore")
	}
}

func TestTestForeApproachesWithinDt(t *testing.T) {
	side := &world.Side{N: math32.Vector3{X: 1, Y: 0, Z: 0}, D: 0}
	ball := world.NewBall(0.1)
	ball.P = math32.Vector3{X: -1, Y: 0, Z: 0}
	ball.V = math32.Vector3{X: 5, Y: 0, Z: 0}

	if !TestFore(1, ball, side, math32.Vector3{}, math32.Vector3{}) {
		t.Error("a ball closing on the front half-space within dt must pass TestFore")
	}
}

func TestTestForeNeverReaches(t *testing.T) {
	side := &world.Side{N: math32.Vector3{X: 1, Y: 0, Z: 0}, D: 0}
	ball := world.NewBall(0.1)
	ball.P = math32.Vector3{X: -10, Y: 0, Z: 0}
	ball.V = math32.Vector3{X: 0, Y: 1, Z: 0}

	if TestFore(1, ball, side, math32.Vector3{}, math32.Vector3{}) {
		t.Error("a ball far behind and moving parallel to the plane must fail TestFore")
	}
}

func TestTestBackNowBehind(t *testing.T) {
	side := &world.Side{N: math32.Vector3{X: 1, Y: 0, Z: 0}, D: 0}
	ball := world.NewBall(0.1)
	ball.P = math32.Vector3{X: -1, Y: 0, Z: 0}

	if !TestBack(1, ball, side, math32.Vector3{}, math32.Vector3{}) {
		t.Error("a ball already behind the plane must pass TestBack")
	}
}

// TestTestNodeRecursesIntoFrontChild builds a two-node tree: a root
// that splits on x=0 and a leaf front child owning a floor lump. A
// ball sitting in front of the split must have its contact found by
// recursing into that child.
func TestTestNodeRecursesIntoFrontChild(t *testing.T) {
	w := world.New()
	w.Sides = []world.Side{
		{N: math32.Vector3{X: 1, Y: 0, Z: 0}, D: 0}, // root split
		{N: math32.Vector3{X: 0, Y: 1, Z: 0}, D: 0}, // floor, owned by the leaf
	}
	w.SidePool = []int{0, 1}
	w.Lumps = []world.Lump{{S0: 1, SC: 1}}
	w.Nodes = []world.Node{
		{SI: 0, NI: 1, NJ: world.None, L0: 0, LC: 0},
		{SI: world.None, NI: world.None, NJ: world.None, L0: 0, LC: 1},
	}

	ball := world.NewBall(0.25)
	ball.P = math32.Vector3{X: 1, Y: 1, Z: 0}
	ball.V = math32.Vector3{X: 0, Y: -5, Z: 0}

	c := TestNode(w, 0.2, ball, 0, math32.Vector3{}, math32.Vector3{})
	if math32.Abs(c.T-0.15) > 1e-3 {
		t.Errorf("contact time = %v, want ~0.15 (recursed into the front child's floor)", c.T)
	}
}

func TestTestNodeSkipsUnreachableChild(t *testing.T) {
	w := world.New()
	w.Sides = []world.Side{
		{N: math32.Vector3{X: 1, Y: 0, Z: 0}, D: 0}, // root split
		{N: math32.Vector3{X: 0, Y: 1, Z: 0}, D: 0}, // floor, owned by the back leaf
	}
	w.SidePool = []int{0, 1}
	w.Lumps = []world.Lump{{S0: 1, SC: 1}}
	w.Nodes = []world.Node{
		{SI: 0, NI: world.None, NJ: 1, L0: 0, LC: 0},
		{SI: world.None, NI: world.None, NJ: world.None, L0: 0, LC: 1},
	}

	// Ball sits far in front, moving parallel to the split: it can
	// never reach the back child's floor lump within dt.
	ball := world.NewBall(0.25)
	ball.P = math32.Vector3{X: 10, Y: 1, Z: 0}
	ball.V = math32.Vector3{X: 0, Y: 1, Z: 0}

	c := TestNode(w, 0.2, ball, 0, math32.Vector3{}, math32.Vector3{})
	if c.T < 0.2 {
		t.Errorf("contact time = %v, want no hit: the back child's floor is unreachable", c.T)
	}
}

// TestTestLumpFindsEdgeContact exercises TestLump's edge/vertex branch
// (bsp.go:50-61), which no other test reaches: a lump with no sides,
// only a single edge, that a ball with positive radius falls onto.
func TestTestLumpFindsEdgeContact(t *testing.T) {
	w := world.New()
	w.Verts = []world.Vertex{
		{P: math32.Vector3{X: 0, Y: 0, Z: 0}},
		{P: math32.Vector3{X: 1, Y: 0, Z: 0}},
	}
	w.VertPool = []int{0, 1}
	w.Edges = []world.Edge{{VI: 0, VJ: 1}}
	w.EdgePool = []int{0}
	lump := &world.Lump{E0: 0, EC: 1}

	ball := world.NewBall(0.25)
	ball.P = math32.Vector3{X: 0.5, Y: 1, Z: 0}
	ball.V = math32.Vector3{X: 0, Y: -1, Z: 0}

	c := TestLump(w, 1.0, ball, lump, math32.Vector3{}, math32.Vector3{})
	if math32.Abs(c.T-0.75) > 1e-3 {
		t.Errorf("contact time = %v, want ~0.75 (edge contact, not missed)", c.T)
	}
}

// TestTestLumpFindsVertexContact exercises the vertex branch directly:
// a lump with no sides or edges, only a single vertex.
func TestTestLumpFindsVertexContact(t *testing.T) {
	w := world.New()
	w.Verts = []world.Vertex{{P: math32.Vector3{X: 0, Y: 0, Z: 0}}}
	w.VertPool = []int{0}
	lump := &world.Lump{V0: 0, VC: 1}

	ball := world.NewBall(0.25)
	ball.P = math32.Vector3{X: 0, Y: 1, Z: 0}
	ball.V = math32.Vector3{X: 0, Y: -1, Z: 0}

	c := TestLump(w, 1.0, ball, lump, math32.Vector3{}, math32.Vector3{})
	if math32.Abs(c.T-0.75) > 1e-3 {
		t.Errorf("contact time = %v, want ~0.75 (vertex contact)", c.T)
	}
}

func TestDetailLumpNeverHit(t *testing.T) {
	w := flatFloorWorld()
	w.Lumps[0].Flags = world.Detail

	ball := world.NewBall(0.25)
	ball.P = math32.Vector3{X: 0, Y: 1, Z: 0}
	ball.V = math32.Vector3{X: 0, Y: -5, Z: 0}

	c := TestFile(w, 0.2, ball)
	if c.T < 0.2 {
		t.Errorf("contact time = %v, want no hit against a detail lump", c.T)
	}
}
