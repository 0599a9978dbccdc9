// Package bsp implements the recursive spatial traversal that finds
// the earliest sphere-vs-geometry contact across a body's BSP tree and
// across every body in a world.
package bsp

import (
	"github.com/tumbleworld/core/geom"
	"github.com/tumbleworld/core/math32"
	"github.com/tumbleworld/core/world"
)

// Contact describes the earliest collision found by a test: the time
// within the queried interval, the contact point in world space, and
// the velocity of the surface that was hit (needed by the integrator
// to compute relative closing velocity at bounce time).
type Contact struct {
	T float32
	Q math32.Vector3
	V math32.Vector3
}

// noContact reports "no contact within dt"; its point and surface
// velocity are left zero.
func noContact(dt float32) Contact {
	return Contact{T: dt}
}

// TestLump finds the earliest contact between the moving sphere
// described by ball and the given lump, in the lump's moving frame
// (origin o, velocity w). Detail lumps are never solid. Vertices and
// edges are only tested when the ball has positive radius — a
// degenerate zero-radius ball only ever touches planes.
func TestLump(w *world.World, dt float32, ball *world.Ball, lump *world.Lump, o, wv math32.Vector3) Contact {
	if lump.Detail() {
		return noContact(dt)
	}

	best := noContact(dt)

	if ball.R > 0 {
		for i := 0; i < lump.VC; i++ {
			vi := w.VertPool[lump.V0+i]
			q := w.Verts[vi].P
			t, Q := geom.VertexSweep(o, q, wv, ball.P, ball.V, ball.R)
			if t < best.T {
				best = Contact{T: t, Q: Q, V: wv}
			}
		}

		for i := 0; i < lump.EC; i++ {
			ei := w.EdgePool[lump.E0+i]
			edge := w.Edges[ei]
			vi := w.Verts[edge.VI].P
			vj := w.Verts[edge.VJ].P
			var u math32.Vector3
			u.SubVectors(&vj, &vi)
			t, Q := geom.EdgeSweep(o, vi, u, wv, ball.P, ball.V, ball.R)
			if t < best.T {
				best = Contact{T: t, Q: Q, V: wv}
			}
		}
	}

	for i := 0; i < lump.SC; i++ {
		si := w.SidePool[lump.S0+i]
		side := w.Sides[si]
		t, Q := geom.SideSweep(o, wv, side.N, side.D, ball.P, ball.V, ball.R)
		if t >= best.T {
			continue
		}
		if !withinLump(w, lump, si, o, wv, t, Q) {
			continue
		}
		best = Contact{T: t, Q: Q, V: wv}
	}

	return best
}

// withinLump clips a candidate side contact to the lump's convex
// feasible region: the contact point T must lie within every other
// side's half-space, not merely on the struck plane's infinite
// extension.
func withinLump(w *world.World, lump *world.Lump, struckSide int, o, wv math32.Vector3, t float32, T math32.Vector3) bool {
	for i := 0; i < lump.SC; i++ {
		qi := w.SidePool[lump.S0+i]
		if qi == struckSide {
			continue
		}
		sq := w.Sides[qi]
		lhs := T.Dot(&sq.N) - o.Dot(&sq.N) - sq.N.Dot(&wv)*t
		if lhs > sq.D {
			return false
		}
	}
	return true
}

// TestFore reports whether a ball, tested in a node frame anchored at
// o and moving with velocity w, can possibly strike anything on the
// front side of the node's splitting plane: either it is not strictly
// behind the plane now, or it won't be after dt (accounting for
// radius r as clearance).
func TestFore(dt float32, ball *world.Ball, side *world.Side, o, wv math32.Vector3) bool {
	var q math32.Vector3
	q.SubVectors(&ball.P, &o)

	now := q.Dot(&side.N) - side.D + ball.R
	if now >= 0 {
		return true
	}

	var qDt math32.Vector3
	qDt.Copy(&ball.P)
	var vdt math32.Vector3
	vdt.Copy(&ball.V).MultiplyScalar(dt)
	qDt.Add(&vdt)
	qDt.Sub(&o)
	var wdt math32.Vector3
	wdt.Copy(&wv).MultiplyScalar(dt)
	qDt.Sub(&wdt)

	later := qDt.Dot(&side.N) - side.D + ball.R
	return later >= 0
}

// TestBack mirrors TestFore for the node's back child.
func TestBack(dt float32, ball *world.Ball, side *world.Side, o, wv math32.Vector3) bool {
	var q math32.Vector3
	q.SubVectors(&ball.P, &o)

	now := -(q.Dot(&side.N) - side.D) + ball.R
	if now >= 0 {
		return true
	}

	var qDt math32.Vector3
	qDt.Copy(&ball.P)
	var vdt math32.Vector3
	vdt.Copy(&ball.V).MultiplyScalar(dt)
	qDt.Add(&vdt)
	qDt.Sub(&o)
	var wdt math32.Vector3
	wdt.Copy(&wv).MultiplyScalar(dt)
	qDt.Sub(&wdt)

	later := -(qDt.Dot(&side.N) - side.D) + ball.R
	return later >= 0
}

// TestNode recursively tests a BSP node: every lump it owns directly,
// then its front child when TestFore allows it and its back child
// when TestBack allows it. A ball straddling the splitting plane can
// legitimately visit both children.
func TestNode(w *world.World, dt float32, ball *world.Ball, nodeIndex int, o, wv math32.Vector3) Contact {
	if nodeIndex == world.None {
		return noContact(dt)
	}
	n := &w.Nodes[nodeIndex]

	best := noContact(dt)
	for i := 0; i < n.LC; i++ {
		c := TestLump(w, best.T, ball, &w.Lumps[n.L0+i], o, wv)
		if c.T < best.T {
			best = c
		}
	}

	if n.Leaf() {
		return best
	}
	side := &w.Sides[n.SI]

	if n.NI != world.None && TestFore(dt, ball, side, o, wv) {
		c := TestNode(w, best.T, ball, n.NI, o, wv)
		if c.T < best.T {
			best = c
		}
	}
	if n.NJ != world.None && TestBack(dt, ball, side, o, wv) {
		c := TestNode(w, best.T, ball, n.NJ, o, wv)
		if c.T < best.T {
			best = c
		}
	}
	return best
}

// TestBody computes a body's current moving frame (position and
// velocity, from its path) and tests the ball against the body's BSP
// sub-root in that frame.
func TestBody(w *world.World, dt float32, ball *world.Ball, b *world.Body) Contact {
	o := geom.BodyPosition(w, b)
	wv := geom.BodyVelocity(w, b)
	return TestNode(w, dt, ball, b.NI, o, wv)
}

// TestFile is the minimum contact over every body in the world.
func TestFile(w *world.World, dt float32, ball *world.Ball) Contact {
	best := noContact(dt)
	for i := range w.Bodies {
		c := TestBody(w, best.T, ball, &w.Bodies[i])
		if c.T < best.T {
			best = c
		}
	}
	return best
}
