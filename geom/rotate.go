package geom

import "github.com/tumbleworld/core/math32"

// Rotate advances an orthonormal basis E by an angular velocity w over
// dt: if w is non-zero, every column of E is rotated about the axis
// w/|w| by angle |w|*dt, then the basis is re-orthonormalized by three
// consecutive cross products. This keeps numerical drift below
// single-precision noise across thousands of steps without ever
// needing a full re-derivation of the basis from scratch.
func Rotate(E *[3]math32.Vector3, w math32.Vector3, dt float32) {
	speed := w.Length()
	if speed > 0 {
		axis := w
		axis.Normalize()

		var m math32.Matrix4
		m.MakeRotationAxis(&axis, speed*dt)

		for i := range E {
			E[i].ApplyMatrix4(&m)
		}
	}

	var e2, e1, e0 math32.Vector3
	e2.CrossVectors(&E[0], &E[1]).Normalize()
	e1.CrossVectors(&e2, &E[0]).Normalize()
	e0.CrossVectors(&e1, &e2).Normalize()
	E[0] = e0
	E[1] = e1
	E[2] = e2
}
