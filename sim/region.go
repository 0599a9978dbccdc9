package sim

import (
	"github.com/tumbleworld/core/math32"
	"github.com/tumbleworld/core/world"
)

// ItemHit reports the first item the given ball is touching: distance
// from ball center to item position less than the sum of the ball's
// radius and itemR, and the item's type not already ItemNone (taken).
// Writes the item's position and returns its index; ok is false when
// nothing is touched. The caller — not this function — is responsible
// for flipping the item's type to ItemNone once it processes the pickup.
func ItemHit(w *world.World, ballIndex int, itemR float32) (itemIndex int, pos math32.Vector3, ok bool) {
	u := &w.Balls[ballIndex]
	for i := range w.Items {
		it := &w.Items[i]
		if it.T == world.ItemNone {
			continue
		}
		if u.P.DistanceTo(&it.P) < u.R+itemR {
			w.Dispatch(world.EventItem, world.ItemEventData{BallIndex: ballIndex, ItemIndex: i})
			return i, it.P, true
		}
	}
	return world.None, math32.Vector3{}, false
}

// GoalHit reports the first goal cylinder containing the ball: within
// horizontal radius z.R - ball.R of the goal center, and within the
// goal's vertical band.
func GoalHit(w *world.World, ballIndex int) (goalIndex int, ok bool) {
	u := &w.Balls[ballIndex]
	for i := range w.Goals {
		z := &w.Goals[i]
		if !inVerticalBand(u.P.Y, z.P.Y, world.GoalHeight) {
			continue
		}
		if horizontalDistance(u.P, z.P) < z.R-u.R {
			w.Dispatch(world.EventGoal, world.GoalEventData{BallIndex: ballIndex, GoalIndex: i})
			return i, true
		}
	}
	return world.None, false
}

// JumpState reports a ball's relationship to every jump cylinder: 0 if
// inside none, 2 if straddling a cylinder's wall, 1 if fully enclosed
// — in which case dest is the teleport destination that preserves the
// ball's offset from the jump's source center.
func JumpState(w *world.World, ballIndex int) (state int, dest math32.Vector3) {
	u := &w.Balls[ballIndex]
	for i := range w.Jumps {
		j := &w.Jumps[i]
		if !inVerticalBand(u.P.Y, j.P.Y, world.JumpHeight) {
			continue
		}
		d := horizontalDistance(u.P, j.P)
		if d-j.R < -u.R {
			var off math32.Vector3
			off.SubVectors(&u.P, &j.P)
			dest.Copy(&j.Q).Add(&off)
			w.Dispatch(world.EventJump, world.JumpEventData{BallIndex: ballIndex, JumpIndex: i, Dest: dest})
			return 1, dest
		}
		if d-j.R < u.R {
			return 2, math32.Vector3{}
		}
	}
	return 0, math32.Vector3{}
}

// SwitchEvent walks every switch, clearing the entered-flag of any the
// ball has left and, for any the ball has newly fully entered, toggling
// the switch and every path reachable from its target, arming its
// countdown if the toggle left it away from default. Returns true iff
// a *visible* switch toggled during this call — invisible switches
// still toggle their paths but never report a hit, and a switch
// already marked entered does not re-toggle while the ball stays put
// (the entered-flag debounce).
func SwitchEvent(w *world.World, ballIndex int) bool {
	u := &w.Balls[ballIndex]
	toggled := false

	for i := range w.Switches {
		x := &w.Switches[i]
		if x.T <= 0 && x.F != x.F0 {
			continue
		}

		inside := inVerticalBand(u.P.Y, x.P.Y, world.SwchHeight) &&
			horizontalDistance(u.P, x.P)-x.R < -u.R

		if !inside {
			x.Entered = false
			continue
		}
		if x.Entered {
			continue
		}

		x.Entered = true
		x.F = !x.F
		walkCycle(w, x.PI, func(pi int) { w.Paths[pi].F = !w.Paths[pi].F })
		if x.F != x.F0 {
			x.T = x.T0
		}
		if !x.Invisible {
			toggled = true
			w.Dispatch(world.EventSwitch, world.SwitchEventData{SwitchIndex: i})
		}
	}
	return toggled
}

func horizontalDistance(p, center math32.Vector3) float32 {
	dx := p.X - center.X
	dz := p.Z - center.Z
	return math32.Sqrt(dx*dx + dz*dz)
}

func inVerticalBand(y, base, height float32) bool {
	return y >= base && y <= base+height/2
}
