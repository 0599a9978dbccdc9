// Package fixture builds a world.World from a small, human-authorable
// YAML description. It exists to exercise the simulation core in
// tests and the demo CLI without a binary level compiler: the actual
// level-geometry format stays an external collaborator, per the
// core's own scope, but hand-written YAML fixtures let a test describe
// a floor plane or a switch cycle in a few readable lines.
//
// Cross-references in the document are plain integers, exactly like
// the world model they build: -1 means "none," matching world.None,
// and every other index refers to a position in the corresponding
// list. Lump and node ranges (S0/SC, L0/LC, ...) are given directly
// rather than reconstructed, since the document's lists already lay
// the flat arrays out in final order.
package fixture

import (
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/tumbleworld/core/math32"
	"github.com/tumbleworld/core/world"
)

// Vec3 is the YAML-friendly [x, y, z] encoding of a math32.Vector3.
type Vec3 struct {
	X, Y, Z float32
}

// UnmarshalYAML decodes a Vec3 from a three-element sequence.
func (v *Vec3) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var xyz [3]float32
	if err := unmarshal(&xyz); err != nil {
		return err
	}
	v.X, v.Y, v.Z = xyz[0], xyz[1], xyz[2]
	return nil
}

func (v Vec3) vector() math32.Vector3 {
	return math32.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// Doc is the YAML document shape: a flat description of every entity
// kind the world owns, in the same order the resulting world.World
// stores them.
type Doc struct {
	Vertices []Vec3 `yaml:"vertices"`
	Edges    []struct {
		VI, VJ int
	} `yaml:"edges"`
	Sides []struct {
		N Vec3    `yaml:"n"`
		D float32 `yaml:"d"`
	} `yaml:"sides"`
	// SidePool, EdgePool, VertPool are the world's index pools, given
	// directly; a lump's S0/SC etc. are offsets into these.
	SidePool []int `yaml:"side_pool"`
	EdgePool []int `yaml:"edge_pool"`
	VertPool []int `yaml:"vert_pool"`

	Lumps []struct {
		S0, SC int
		E0, EC int
		V0, VC int
		Detail bool
	} `yaml:"lumps"`
	Nodes []struct {
		Side       int `yaml:"side"`
		Front      int `yaml:"front"`
		Back       int `yaml:"back"`
		LumpStart  int `yaml:"lump_start"`
		LumpCount  int `yaml:"lump_count"`
	} `yaml:"nodes"`
	Bodies []struct {
		Node int `yaml:"node"`
		Path int `yaml:"path"`
	} `yaml:"bodies"`
	Balls []struct {
		P Vec3    `yaml:"p"`
		V Vec3    `yaml:"v"`
		R float32 `yaml:"r"`
	} `yaml:"balls"`
	Paths []struct {
		P      Vec3    `yaml:"p"`
		T      float32 `yaml:"t"`
		Next   int     `yaml:"next"`
		Enable bool    `yaml:"enable"`
		Smooth bool    `yaml:"smooth"`
	} `yaml:"paths"`
	Items []struct {
		P Vec3 `yaml:"p"`
		T int  `yaml:"t"`
	} `yaml:"items"`
	Goals []struct {
		P Vec3    `yaml:"p"`
		R float32 `yaml:"r"`
	} `yaml:"goals"`
	Jumps []struct {
		P Vec3    `yaml:"p"`
		R float32 `yaml:"r"`
		Q Vec3    `yaml:"q"`
	} `yaml:"jumps"`
	Switches []struct {
		P         Vec3    `yaml:"p"`
		R         float32 `yaml:"r"`
		T0        float32 `yaml:"t0"`
		F0        bool    `yaml:"f0"`
		Path      int     `yaml:"path"`
		Invisible bool    `yaml:"invisible"`
	} `yaml:"switches"`
}

// Load parses YAML-encoded fixture data and constructs a world.World
// from it.
func Load(data []byte) (*world.World, error) {
	var doc Doc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: parse yaml: %w", err)
	}
	return build(&doc), nil
}

func build(doc *Doc) *world.World {
	w := world.New()

	for _, v := range doc.Vertices {
		w.Verts = append(w.Verts, world.Vertex{P: v.vector()})
	}
	for _, e := range doc.Edges {
		w.Edges = append(w.Edges, world.Edge{VI: e.VI, VJ: e.VJ})
	}
	for _, s := range doc.Sides {
		w.Sides = append(w.Sides, world.Side{N: s.N.vector(), D: s.D})
	}

	w.SidePool = append(w.SidePool, doc.SidePool...)
	w.EdgePool = append(w.EdgePool, doc.EdgePool...)
	w.VertPool = append(w.VertPool, doc.VertPool...)

	for _, l := range doc.Lumps {
		var flags world.LumpFlag
		if l.Detail {
			flags |= world.Detail
		}
		w.Lumps = append(w.Lumps, world.Lump{
			S0: l.S0, SC: l.SC,
			E0: l.E0, EC: l.EC,
			V0: l.V0, VC: l.VC,
			Flags: flags,
		})
	}

	for _, n := range doc.Nodes {
		w.Nodes = append(w.Nodes, world.Node{
			SI: n.Side, NI: n.Front, NJ: n.Back,
			L0: n.LumpStart, LC: n.LumpCount,
		})
	}

	for _, b := range doc.Bodies {
		w.Bodies = append(w.Bodies, world.Body{NI: b.Node, PI: b.Path, T: 0})
	}

	for _, u := range doc.Balls {
		ball := world.NewBall(u.R)
		ball.P = u.P.vector()
		ball.V = u.V.vector()
		w.Balls = append(w.Balls, *ball)
	}

	for _, p := range doc.Paths {
		w.Paths = append(w.Paths, world.Path{
			P: p.P.vector(), T: p.T, PI: p.Next, F: p.Enable, Smooth: p.Smooth,
		})
	}

	for _, h := range doc.Items {
		w.Items = append(w.Items, world.Item{P: h.P.vector(), T: h.T})
	}
	for _, z := range doc.Goals {
		w.Goals = append(w.Goals, world.Goal{P: z.P.vector(), R: z.R})
	}
	for _, j := range doc.Jumps {
		w.Jumps = append(w.Jumps, world.Jump{P: j.P.vector(), R: j.R, Q: j.Q.vector()})
	}
	for _, x := range doc.Switches {
		w.Switches = append(w.Switches, world.Switch{
			P: x.P.vector(), R: x.R, T0: x.T0, F0: x.F0, F: x.F0,
			PI: x.Path, Invisible: x.Invisible,
		})
	}

	return w
}
