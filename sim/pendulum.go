package sim

import (
	"github.com/tumbleworld/core/geom"
	"github.com/tumbleworld/core/math32"
	"github.com/tumbleworld/core/world"
)

// pendulum advances a ball's cosmetic pendulum basis: an auxiliary
// orthonormal frame tracking a bob hanging below the ball's center,
// driven by effective acceleration (the step's net velocity change
// coupled against gravity) and lightly damped each frame. This has no
// effect on ball motion; it exists so a renderer can hang a rope or
// pendant from the ball and have it swing believably, and so replays
// driven by the same inputs reproduce it exactly.
func pendulum(u *world.Ball, dv, g math32.Vector3, dt float32) {
	if dt == 0 {
		return
	}

	var a math32.Vector3
	a.Copy(&dv).MultiplyScalar(world.PendulumCoupleK)
	var gdt math32.Vector3
	gdt.Copy(&g).MultiplyScalar(dt)
	a.Sub(&gdt)

	var f math32.Vector3
	f.Copy(&a).MultiplyScalar(world.PendulumMass / dt)

	var r math32.Vector3
	r.Copy(&u.PE[1]).MultiplyScalar(-u.R)

	var t math32.Vector3
	if r.Dot(&f) != 0 {
		t.CrossVectors(&f, &r)
	}

	var tdt math32.Vector3
	tdt.Copy(&t).MultiplyScalar(dt)
	u.PW.Add(&tdt)
	u.PW.MultiplyScalar(world.PendulumDampK)

	geom.Rotate(&u.PE, u.PW, dt)

	var vpar math32.Vector3
	vpar.Copy(&u.V).ProjectOnVector(&u.PE[1])

	var y math32.Vector3
	y.CrossVectors(&vpar, &u.PE[2])
	scalar := y.Dot(&u.PE[1])
	y.Copy(&u.PE[1]).MultiplyScalar(2 * scalar)

	geom.Rotate(&u.PE, y, 1)
}
