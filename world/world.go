// Package world holds the flat-array data model of a level: the static
// and moving geometry, balls, paths, items, goals, jumps and switches
// that the sim and bsp packages operate on. Every cross-reference
// between entities is a plain int index into one of the World's
// slices; there are no heap-pointer graphs and no cycles-as-ownership
// problems to manage.
//
// A World is assembled once by an external loader (not part of this
// module) and is thereafter mutated only by the sim package.
package world

import (
	"github.com/tumbleworld/core/event"
	"github.com/tumbleworld/core/math32"
)

// Index constants used throughout the flat arrays.
const (
	// None marks an absent reference (a -1 index).
	None = -1
)

// Physics and region constants that must match the host game.
const (
	GoalHeight = 2.0
	JumpHeight = 2.0
	SwchHeight = 2.0
	ItemNone   = 0

	Restitution        = 1.7
	FrictionThreshold  = 0.0005
	RestAlignCos       = 0.999
	MaxBounceIterations = 16
	Large              = 1e+5
	Small              = 1e-3

	PendulumMass    = 5.0
	PendulumCoupleK = 0.5
	PendulumDampK   = 0.995
)

// LumpFlag enumerates per-lump attribute bits.
type LumpFlag uint32

// Detail marks a lump as non-solid: it is never consulted by collision
// sweeps, only rendered (by a caller that cares).
const Detail LumpFlag = 1 << 0

// Vertex is a single point in a lump's boundary, referenced by index
// from the world's index pool.
type Vertex struct {
	P math32.Vector3
}

// Edge is a segment between two vertices, referenced by index.
type Edge struct {
	VI, VJ int
}

// Side is an oriented plane x·N = D bounding a lump; the lump interior
// is the half-space x·N <= D. N is unit length.
type Side struct {
	N math32.Vector3
	D float32
}

// Lump is a convex cell described by ranges into the index pool: S0/SC
// sides, E0/EC edges, V0/VC vertices, plus attribute flags.
type Lump struct {
	S0, SC int
	E0, EC int
	V0, VC int
	Flags  LumpFlag
}

// Detail reports whether this lump is marked non-solid.
func (l *Lump) Detail() bool {
	return l.Flags&Detail != 0
}

// Node is a BSP tree node. SI is the splitting side index (or None for
// a leaf), NI/NJ are the front/back child node indices (or None), and
// L0/LC is the range of lumps owned (tested) at this node.
type Node struct {
	SI     int
	NI, NJ int
	L0, LC int
}

// Leaf reports whether this node has no splitting plane.
func (n *Node) Leaf() bool {
	return n.SI == None
}

// Body is a rigid collection of BSP geometry, optionally animated by a
// path. NI is the index of this body's BSP sub-root in World.Nodes.
// PI is the path head (or None for static bodies); T is the elapsed
// time within the current path segment.
type Body struct {
	NI int
	PI int
	T  float32
}

// Ball is a moving sphere: position P, velocity V, radius R, rolling
// spin W, a render basis E (orthonormal, driven by spin) and a
// pendulum basis PE with its own angular velocity PW (orthonormal,
// driven by acceleration, cosmetic only).
type Ball struct {
	P math32.Vector3
	V math32.Vector3
	R float32
	W math32.Vector3

	E [3]math32.Vector3

	PW math32.Vector3
	PE [3]math32.Vector3
}

// NewBall returns a ball at rest at the origin with unit bases, radius r.
func NewBall(r float32) *Ball {
	u := &Ball{R: r}
	u.E = identityBasis()
	u.PE = identityBasis()
	return u
}

func identityBasis() [3]math32.Vector3 {
	return [3]math32.Vector3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
}

// Path is a directed edge in a cycle of keyframes: a body attached to
// path P animates from P's anchor toward the anchor of path PI over
// duration T, optionally smoothed by ease-in/ease-out (Smooth). F is
// the current enable flag: disabled paths hold position but report
// zero velocity.
type Path struct {
	P       math32.Vector3
	T       float32
	PI      int
	F       bool
	Smooth  bool
}

// Item is an inert pickup: position P and type T. T == ItemNone means
// "already taken."
type Item struct {
	P math32.Vector3
	T int
}

// Goal is a cylindrical finish volume: center P, radius R.
type Goal struct {
	P math32.Vector3
	R float32
}

// Jump is a teleport volume: source cylinder at P radius R, and a
// destination point Q. A ball fully inside is sent to Q plus its
// offset from P.
type Jump struct {
	P math32.Vector3
	R float32
	Q math32.Vector3
}

// Switch is a cylindrical trigger volume. Entering it while not
// already Entered flips F and every path reachable from PI, arming a
// countdown T back to F0 if the flip left F != F0. Invisible switches
// toggle paths without reporting a hit to the caller.
type Switch struct {
	P    math32.Vector3
	R    float32
	T    float32
	T0   float32
	F0   bool
	F    bool
	PI   int
	Invisible bool
	Entered   bool
}

// World owns every flat array describing a level: static/moving
// geometry, the index pool linking lumps and nodes back into
// vertices/edges/sides, and the dynamic entities (bodies, balls,
// paths, items, goals, jumps, switches) the sim package mutates each
// step. World embeds an event Dispatcher so callers can subscribe to
// switch/goal/jump/item notifications without the sim package needing
// to know anything about its caller.
type World struct {
	event.Dispatcher

	Verts []Vertex
	Edges []Edge
	Sides []Side
	Lumps []Lump
	Nodes []Node

	// Index pool referenced by lump/node ranges; entries are indices
	// into Verts/Edges/Sides depending on which range they back.
	VertPool []int
	EdgePool []int
	SidePool []int

	Bodies  []Body
	Balls   []Ball
	Paths   []Path
	Items   []Item
	Goals   []Goal
	Jumps   []Jump
	Switches []Switch
}

// New returns an empty world ready to be populated by a loader.
func New() *World {
	w := &World{}
	w.Dispatcher.Initialize()
	return w
}

// Event names dispatched by the sim package.
const (
	EventSwitch = "switch"
	EventGoal   = "goal"
	EventJump   = "jump"
	EventItem   = "item"
)

// SwitchEventData is dispatched on EventSwitch whenever a visible
// switch toggles.
type SwitchEventData struct {
	SwitchIndex int
}

// GoalEventData is dispatched on EventGoal whenever a ball is found
// within a goal cylinder.
type GoalEventData struct {
	BallIndex int
	GoalIndex int
}

// JumpEventData is dispatched on EventJump whenever a ball is fully
// enclosed by a jump cylinder.
type JumpEventData struct {
	BallIndex int
	JumpIndex int
	Dest      math32.Vector3
}

// ItemEventData is dispatched on EventItem whenever a ball picks up an
// item (the caller is responsible for clearing Items[i].T to ItemNone
// afterward; the core never does this itself, per its pure-geometry
// item_hit contract).
type ItemEventData struct {
	BallIndex int
	ItemIndex int
}
