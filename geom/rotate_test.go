package geom

import (
	"testing"

	"github.com/tumbleworld/core/math32"
)

func identityBasis() [3]math32.Vector3 {
	return [3]math32.Vector3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
}

func TestRotateNoSpinIsIdentity(t *testing.T) {
	E := identityBasis()
	Rotate(&E, math32.Vector3{}, 0.1)
	want := identityBasis()
	for i := range E {
		if !E[i].AlmostEquals(&want[i], 1e-4) {
			t.Errorf("E[%d] = %v, want %v", i, E[i], want[i])
		}
	}
}

func TestRotateStaysOrthonormal(t *testing.T) {
	E := identityBasis()
	w := math32.Vector3{X: 0.3, Y: 1.2, Z: -0.4}
	for i := 0; i < 1000; i++ {
		Rotate(&E, w, 0.016)
	}
	for i := 0; i < 3; i++ {
		length := E[i].Length()
		if math32.Abs(length-1) > 1e-3 {
			t.Errorf("E[%d] length = %v, want ~1 after 1000 steps", i, length)
		}
	}
	d01 := E[0].Dot(&E[1])
	d12 := E[1].Dot(&E[2])
	d20 := E[2].Dot(&E[0])
	if math32.Abs(d01) > 1e-3 || math32.Abs(d12) > 1e-3 || math32.Abs(d20) > 1e-3 {
		t.Errorf("basis not orthogonal after 1000 steps: %v %v %v", d01, d12, d20)
	}
}
