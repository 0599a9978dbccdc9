// Package sim implements the per-frame integrator and bounce
// resolution (spec component E), the cosmetic pendulum simulator (F),
// item/goal/jump/switch region predicates (G) and switch timers (H).
// It is the package that exposes the core's public operations: Step,
// ItemHit, GoalHit, JumpState, SwitchEvent, BodyPosition and
// BodyVelocity.
package sim

import (
	"github.com/tumbleworld/core/bsp"
	"github.com/tumbleworld/core/geom"
	"github.com/tumbleworld/core/math32"
	"github.com/tumbleworld/core/world"
)

// Step advances ball ballIndex by one tick under gravity g. It returns
// the maximum bounce energy produced this frame (0 if the ball never
// made contact) and the number of collision-resolution iterations the
// frame actually consumed (0..world.MaxBounceIterations), surfaced for
// a caller that wants diagnostic visibility into the bounded loop; the
// core itself never logs or reports anything per its own contract.
//
// rest, when non-nil, receives the rolling-friction rest-counter logic
// of the friction probe: passing nil suppresses that branch entirely
// and the ball only ever free-falls and bounces, never settles to a
// stop under rolling friction.
func Step(w *world.World, g math32.Vector3, dt float32, ballIndex int, rest *int) (bounceEnergy float32, iterations int) {
	u := &w.Balls[ballIndex]

	a := u.V
	v := u.V
	restBranch := false

	if rest != nil {
		restBranch = frictionProbe(w, g, dt, u, &v, rest)
	}

	if !restBranch {
		u.V = v
		var gdt math32.Vector3
		gdt.Copy(&g).MultiplyScalar(dt)
		u.V.Add(&gdt)
	}

	tt := dt
	for iterations < world.MaxBounceIterations {
		c := bsp.TestFile(w, tt, u)
		if c.T >= tt {
			break
		}

		advanceWorld(w, c.T)
		advanceBall(u, c.T)

		energy := bounce(u, c.Q, c.V, c.T)
		if energy > bounceEnergy {
			bounceEnergy = energy
		}

		tt -= c.T
		iterations++
	}

	advanceWorld(w, tt)
	advanceBall(u, tt)

	var dv math32.Vector3
	dv.SubVectors(&u.V, &a)
	pendulum(u, dv, g, dt)

	return bounceEnergy, iterations
}

// StepAll steps every ball in the world by dt under the same gravity,
// looping Step. Balls still never interact with each other; this is a
// convenience for callers driving a multi-ball frame, not a change to
// single-ball stepping semantics.
func StepAll(w *world.World, g math32.Vector3, dt float32, rest []int) []float32 {
	energies := make([]float32, len(w.Balls))
	for i := range w.Balls {
		var m *int
		if rest != nil {
			m = &rest[i]
		}
		energies[i], _ = Step(w, g, dt, i, m)
	}
	return energies
}

// frictionProbe implements the friction probe of the integrator: it
// temporarily substitutes gravity for the ball's velocity to ask
// whether the ball is resting against a surface whose normal is
// nearly aligned with gravity, and if so shrinks the ball's speed by
// dt (rolling friction). Step still adds gravity afterward unless the
// ball came fully to rest. v receives the velocity Step should restore afterward;
// returns true if friction brought the ball fully to rest this frame
// (the "rest branch"), in which case the caller must not add gravity
// afterward — the ball's velocity was already set to zero directly.
func frictionProbe(w *world.World, g math32.Vector3, dt float32, u *world.Ball, v *math32.Vector3, rest *int) bool {
	u.V = g
	c := bsp.TestFile(w, world.FrictionThreshold, u)
	if c.T >= world.FrictionThreshold {
		return false
	}

	var r math32.Vector3
	r.SubVectors(&c.Q, &u.P)

	rHat := r
	rHat.Normalize()
	gHat := g
	gHat.Normalize()
	if rHat.Dot(&gHat) <= world.RestAlignCos {
		return false
	}

	speed := v.Length() - dt
	if speed > 0 {
		v.Normalize()
		v.MultiplyScalar(speed)

		var slip math32.Vector3
		slip.SubVectors(&c.V, &u.V)
		rr := r.LengthSq()
		var w2 math32.Vector3
		w2.CrossVectors(&slip, &r)
		w2.MultiplyScalar(-1 / rr)
		u.W = w2
		return false
	}

	*v = math32.Vector3{}
	u.V = math32.Vector3{}
	*rest++
	return true
}

// BodyPosition returns the current world-space position of a body's
// moving frame, for caller rendering and for the integrator itself.
func BodyPosition(w *world.World, bodyIndex int) math32.Vector3 {
	return geom.BodyPosition(w, &w.Bodies[bodyIndex])
}

// BodyVelocity returns a body's current velocity, zero when its path
// is disabled.
func BodyVelocity(w *world.World, bodyIndex int) math32.Vector3 {
	return geom.BodyVelocity(w, &w.Bodies[bodyIndex])
}
