// Package geom implements the pure geometric building blocks the
// simulation core is built from: body path kinematics, continuous
// sphere-vs-primitive sweeps, and orthonormal basis rotation. Every
// function here except Rotate is a pure function of its arguments
// (plus the world's static arrays it reads); Rotate updates the basis
// it is given in place. Nothing in this package looks up and mutates
// a World's entities itself; sim calls into it and writes the results
// back.
package geom

import (
	"github.com/tumbleworld/core/math32"
	"github.com/tumbleworld/core/world"
)

// BodyPosition returns the current world-space position of a body's
// moving frame. A body with no path head sits at the origin of its
// own local space (callers combine this with static offsets as
// needed); a body on a path interpolates between the path's anchor
// and its successor's anchor according to the body's elapsed segment
// time, easing the blend when the path requests it.
func BodyPosition(w *world.World, b *world.Body) math32.Vector3 {
	if b.PI == world.None {
		return math32.Vector3{}
	}
	p := &w.Paths[b.PI]
	q := &w.Paths[p.PI]

	tau := b.T / p.T
	var d math32.Vector3
	d.SubVectors(&q.P, &p.P)

	alpha := tau
	if p.Smooth {
		alpha = erp(tau)
	}

	pos := p.P
	pos.Add(d.MultiplyScalar(alpha))
	return pos
}

// BodyVelocity returns the instantaneous velocity of a body's moving
// frame: the time-derivative of BodyPosition, but only while the
// underlying path is enabled. A disabled path reports zero velocity
// even though BodyPosition continues to reflect wherever it was left
// in its cycle — a disabled body stands still.
func BodyVelocity(w *world.World, b *world.Body) math32.Vector3 {
	if b.PI == world.None {
		return math32.Vector3{}
	}
	p := &w.Paths[b.PI]
	if !p.F {
		return math32.Vector3{}
	}
	q := &w.Paths[p.PI]

	tau := b.T / p.T
	var d math32.Vector3
	d.SubVectors(&q.P, &p.P)
	d.MultiplyScalar(1 / p.T)

	if p.Smooth {
		d.MultiplyScalar(derp(tau))
	}
	return d
}

// erp is the Hermite ease-in/ease-out blend with zero endpoint
// derivatives: 3*tau^2 - 2*tau^3.
func erp(tau float32) float32 {
	return 3*tau*tau - 2*tau*tau*tau
}

// derp is the derivative of erp with respect to tau: 6*tau - 6*tau^2.
func derp(tau float32) float32 {
	return 6*tau - 6*tau*tau
}
