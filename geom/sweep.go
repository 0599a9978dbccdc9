package geom

import (
	"github.com/tumbleworld/core/math32"
	"github.com/tumbleworld/core/world"
)

// SphereTime solves ||P + t*V||^2 = r^2 and returns the earlier root,
// or world.Large when there is no real root or the earlier of two
// distinct roots is negative. A double root (zero discriminant) is
// returned as is, even when it is negative. The caller is
// responsible for translating its primitive into the frame where this
// quadratic applies: P is sphere-center-relative-to-primitive-origin,
// V is the relative velocity between sphere and primitive.
//
// When a = V.V is zero the division below is a deliberate compromise:
// it may produce +/-Inf or NaN rather than being special-cased out.
// An earlier guard against this (skipping a == 0) was tried upstream
// and caused missed low-velocity contacts; every caller already
// filters results against Large and dt, and a NaN compares false
// against both so it is treated as "no hit" for free.
func SphereTime(P, V math32.Vector3, r float32) float32 {
	a := V.Dot(&V)
	b := 2 * P.Dot(&V)
	c := P.Dot(&P) - r*r

	disc := b*b - 4*a*c
	if disc < 0 {
		return world.Large
	}
	if disc == 0 {
		return -b / (2 * a)
	}

	sq := math32.Sqrt(disc)
	t0 := (-b + sq) / (2 * a)
	t1 := (-b - sq) / (2 * a)
	t := math32.Min(t0, t1)
	if t < 0 {
		return world.Large
	}
	return t
}

// VertexSweep is the earliest contact time of a sphere (p, v, r) with
// a moving point anchored at o+q, moving with velocity w. Returns
// world.Large and an undefined point when the sphere is not
// approaching the point. Q receives the world-space contact point.
func VertexSweep(o, q, w, p, v math32.Vector3, r float32) (float32, math32.Vector3) {
	var d, e math32.Vector3
	d.SubVectors(&p, &o)
	d.Sub(&q)
	e.SubVectors(&v, &w)

	if d.Dot(&e) >= 0 {
		return world.Large, math32.Vector3{}
	}

	t := SphereTime(d, e, r)

	var Q math32.Vector3
	Q.Copy(&w).MultiplyScalar(t)
	Q.Add(&o)
	Q.Add(&q)
	return t, Q
}

// EdgeSweep is the earliest contact time of a sphere (p, v, r) with a
// moving segment anchored at o+q, directed along u, moving with
// velocity w. The quadratic is solved in the plane orthogonal to u by
// subtracting out each vector's component along u; the contact is
// only accepted if its parameter along the segment (s) lands strictly
// between the endpoints.
func EdgeSweep(o, q, u, w, p, v math32.Vector3, r float32) (float32, math32.Vector3) {
	var d, e math32.Vector3
	d.SubVectors(&p, &o)
	d.Sub(&q)
	e.SubVectors(&v, &w)

	du := d.Dot(&u)
	eu := e.Dot(&u)
	uu := u.Dot(&u)

	var P, V math32.Vector3
	P.Copy(&d)
	P.Sub(madVec(u, du/uu))
	V.Copy(&e)
	V.Sub(madVec(u, eu/uu))

	t := SphereTime(P, V, r)
	s := (du + eu*t) / uu

	if s > 0 && s < 1 {
		var Q math32.Vector3
		Q.Copy(&w).MultiplyScalar(t)
		Q.Add(&o)
		Q.Add(&q)
		Q.Add(madVec(u, s))
		return t, Q
	}
	return world.Large, math32.Vector3{}
}

// SideSweep is the earliest contact time of a sphere (p, v, r) with a
// moving half-space plane {x . n = d} anchored at o, moving with
// velocity w. The sphere must be approaching the plane (vn - wn < 0).
// If the sphere is already slightly penetrating when contact time
// would be negative, this reports an instant contact at t=0 rather
// than missing it, matching the reference policy of treating shallow
// penetration as immediate contact instead of tunneling through it.
func SideSweep(o, w, n math32.Vector3, d float32, p, v math32.Vector3, r float32) (float32, math32.Vector3) {
	vn := v.Dot(&n)
	wn := w.Dot(&n)

	if vn-wn >= 0 {
		return world.Large, math32.Vector3{}
	}

	on := o.Dot(&n)
	pn := p.Dot(&n)

	u := (r + d + on - pn) / (vn - wn)
	a := (d + on - pn) / (vn - wn)

	if u >= 0 {
		var Q math32.Vector3
		Q.Copy(&p).Add(madVec(v, u))
		Q.Add(madVec(n, -r))
		return u, Q
	}
	if a >= 0 {
		var Q math32.Vector3
		Q.Copy(&p)
		Q.Add(madVec(n, -r))
		return 0, Q
	}
	return world.Large, math32.Vector3{}
}

// madVec returns a*t, a scratch vector used to keep the sweeps above
// readable without mutating their inputs.
func madVec(a math32.Vector3, t float32) *math32.Vector3 {
	v := a
	v.MultiplyScalar(t)
	return &v
}
