package sim

import (
	"github.com/tumbleworld/core/math32"
	"github.com/tumbleworld/core/world"
)

// bounce resolves a single contact between ball u and a surface point
// q moving with velocity wv: it sets the ball's new rolling spin from
// the relative closing velocity, reflects the ball's velocity across
// the contact normal with the module's restitution coefficient, and
// re-projects the ball's position onto the contact to remove residual
// penetration. Returns the normal-aligned closing speed at contact,
// used by the caller as bounce loudness.
//
// The restitution coefficient 1.7 is intentionally sub-elastic (the
// nominal elastic value is 2.0); this produces lively but damped
// bounces and must not be "corrected" upward.
func bounce(u *world.Ball, q, wv math32.Vector3, nt float32) float32 {
	var r math32.Vector3
	r.SubVectors(&u.P, &q)

	var nhat math32.Vector3
	nhat.Copy(&r).Normalize()

	var d math32.Vector3
	d.SubVectors(&u.V, &wv)

	rr := r.LengthSq()
	var spin math32.Vector3
	spin.CrossVectors(&d, &r)
	spin.MultiplyScalar(-1 / rr)
	u.W = spin

	wn := wv.Dot(&nhat)
	vn := u.V.Dot(&nhat)
	k := world.Restitution * (wn - vn)
	var dv math32.Vector3
	dv.Copy(&nhat).MultiplyScalar(k)
	u.V.Add(&dv)

	u.P.Copy(&q)
	var rn math32.Vector3
	rn.Copy(&nhat).MultiplyScalar(u.R)
	u.P.Add(&rn)

	return math32.Abs(nhat.Dot(&d))
}
