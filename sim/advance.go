package sim

import (
	"github.com/tumbleworld/core/geom"
	"github.com/tumbleworld/core/math32"
	"github.com/tumbleworld/core/world"
)

// advanceWorld moves every body's path time and every switch's
// countdown forward by nt. Called once per collision-loop iteration
// (with the slice consumed so far) and once more with the remaining
// time after the loop exits, so that body/switch state always tracks
// wall time within the frame even across multiple bounces.
func advanceWorld(w *world.World, nt float32) {
	for i := range w.Bodies {
		advanceBody(w, &w.Bodies[i], nt)
	}
	for i := range w.Switches {
		advanceSwitchTimer(w, i, nt)
	}
}

// advanceBody advances a body's elapsed path-segment time. A body
// whose path is disabled does not advance at all: it stands still
// wherever it was left in its cycle. On crossing the segment's
// duration, the body moves to the successor path and its elapsed time
// resets to exactly zero.
func advanceBody(w *world.World, b *world.Body, nt float32) {
	if b.PI == world.None {
		return
	}
	p := &w.Paths[b.PI]
	if !p.F {
		return
	}
	b.T += nt
	if b.T >= p.T {
		b.PI = p.PI
		b.T = 0
	}
}

// advanceSwitchTimer decrements an armed switch's countdown. Crossing
// zero resets every path reachable from the switch's target to the
// switch's default enable flag and restores the switch's own flag to
// that default.
func advanceSwitchTimer(w *world.World, idx int, nt float32) {
	x := &w.Switches[idx]
	if x.T <= 0 {
		return
	}
	x.T -= nt
	if x.T <= 0 {
		x.T = 0
		f0 := x.F0
		walkCycle(w, x.PI, func(pi int) { w.Paths[pi].F = f0 })
		x.F = f0
	}
}

// advanceBall integrates a ball's position over nt at its current
// velocity and rotates its render basis by its rolling spin, so the
// ball visibly rolls in the direction it travels.
func advanceBall(u *world.Ball, nt float32) {
	var dp math32.Vector3
	dp.Copy(&u.V).MultiplyScalar(nt)
	u.P.Add(&dp)
	geom.Rotate(&u.E, u.W, nt)
}
