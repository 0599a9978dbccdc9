package geom

import (
	"testing"

	"github.com/tumbleworld/core/math32"
	"github.com/tumbleworld/core/world"
)

func TestSphereTimeNoIntersection(t *testing.T) {
	// Sphere centered 10 units away, not moving: never intersects.
	// With V = 0 both a and b are zero, so the discriminant is zero and
	// the unguarded -b/(2a) yields NaN, which callers treat as no hit.
	P := math32.Vector3{X: 10, Y: 0, Z: 0}
	V := math32.Vector3{X: 0, Y: 0, Z: 0}
	got := SphereTime(P, V, 1)
	if !math32.IsNaN(got) {
		t.Errorf("SphereTime = %v, want NaN", got)
	}
}

func TestSphereTimeHeadOn(t *testing.T) {
	// Sphere 10 units away on X, closing at 1 unit/sec, radius 1: contacts at t=9.
	P := math32.Vector3{X: 10, Y: 0, Z: 0}
	V := math32.Vector3{X: -1, Y: 0, Z: 0}
	got := SphereTime(P, V, 1)
	if math32.Abs(got-9) > 1e-3 {
		t.Errorf("SphereTime = %v, want ~9", got)
	}
}

func TestSideSweepFlatFloor(t *testing.T) {
	// Floor at y=0, ball falling from y=1 with r=0.25 at v=(0,-5,0).
	n := math32.Vector3{X: 0, Y: 1, Z: 0}
	o := math32.Vector3{}
	wv := math32.Vector3{}
	p := math32.Vector3{X: 0, Y: 1, Z: 0}
	v := math32.Vector3{X: 0, Y: -5, Z: 0}
	tContact, _ := SideSweep(o, wv, n, 0, p, v, 0.25)
	// contact when p.y + t*v.y - r = 0 => 1 - 5t = 0.25 => t = 0.15
	if math32.Abs(tContact-0.15) > 1e-3 {
		t.Errorf("SideSweep time = %v, want ~0.15", tContact)
	}
}

func TestSideSweepNotApproaching(t *testing.T) {
	n := math32.Vector3{X: 0, Y: 1, Z: 0}
	o := math32.Vector3{}
	wv := math32.Vector3{}
	p := math32.Vector3{X: 0, Y: 1, Z: 0}
	v := math32.Vector3{X: 0, Y: 5, Z: 0} // moving away from the plane
	tContact, _ := SideSweep(o, wv, n, 0, p, v, 0.25)
	if tContact != world.Large {
		t.Errorf("SideSweep time = %v, want world.Large for a receding sphere", tContact)
	}
}

func TestEdgeSweepOrthogonalProjection(t *testing.T) {
	// A floor-aligned edge along u=(1,0,0), anchored at the origin.
	// d = p - o - q = (0.5, 1, 0): parallel component along u is 0.5,
	// so the correct orthogonal remainder is (0, 1, 0), not (1, 1, 0).
	u := math32.Vector3{X: 1, Y: 0, Z: 0}
	o := math32.Vector3{}
	q := math32.Vector3{}
	w := math32.Vector3{}
	p := math32.Vector3{X: 0.5, Y: 1, Z: 0}
	v := math32.Vector3{X: 0, Y: -1, Z: 0}

	tContact, Q := EdgeSweep(o, q, u, w, p, v, 0.25)
	// contact when p.y + t*v.y - r = 0 => 1 - t = 0.25 => t = 0.75
	if math32.Abs(tContact-0.75) > 1e-3 {
		t.Errorf("EdgeSweep time = %v, want ~0.75", tContact)
	}
	if math32.Abs(Q.X-0.5) > 1e-3 || math32.Abs(Q.Z) > 1e-3 {
		t.Errorf("EdgeSweep contact point = %v, want X~0.5, Z~0 (on the segment)", Q)
	}
}

func TestEdgeSweepOutsideSegmentMisses(t *testing.T) {
	// Same geometry, but anchored so the sphere's closest approach
	// lands beyond the segment's far endpoint (s > 1): no contact.
	u := math32.Vector3{X: 1, Y: 0, Z: 0}
	o := math32.Vector3{}
	q := math32.Vector3{}
	w := math32.Vector3{}
	p := math32.Vector3{X: 5, Y: 1, Z: 0}
	v := math32.Vector3{X: 0, Y: -1, Z: 0}

	tContact, _ := EdgeSweep(o, q, u, w, p, v, 0.25)
	if tContact != world.Large {
		t.Errorf("EdgeSweep time = %v, want world.Large for contact beyond the segment", tContact)
	}
}

func TestVertexSweepApproaching(t *testing.T) {
	o := math32.Vector3{}
	q := math32.Vector3{X: 5, Y: 0, Z: 0}
	wv := math32.Vector3{}
	p := math32.Vector3{X: 0, Y: 0, Z: 0}
	v := math32.Vector3{X: 1, Y: 0, Z: 0}
	tContact, _ := VertexSweep(o, q, wv, p, v, 1)
	if tContact == world.Large {
		t.Error("VertexSweep should find a contact for an approaching sphere")
	}
}
