package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tumbleworld/core/world"
)

func TestLoadFlatFloor(t *testing.T) {
	doc := []byte(`
sides:
  - n: [0, 1, 0]
    d: 0
side_pool: [0]
lumps:
  - s0: 0
    sc: 1
nodes:
  - side: -1
    front: -1
    back: -1
    lump_start: 0
    lump_count: 1
bodies:
  - node: 0
    path: -1
balls:
  - p: [0, 1, 0]
    v: [0, -5, 0]
    r: 0.25
`)
	w, err := Load(doc)
	require.NoError(t, err)
	require.Len(t, w.Balls, 1)
	require.Len(t, w.Bodies, 1)

	assert.Equal(t, float32(1), w.Sides[0].N.Y)
	assert.Equal(t, 1, w.Lumps[0].SC)
	assert.Equal(t, world.None, w.Nodes[0].SI)
	assert.Equal(t, 0, w.Bodies[0].NI)
	assert.Equal(t, world.None, w.Bodies[0].PI)
	assert.Equal(t, float32(0.25), w.Balls[0].R)
	assert.Equal(t, float32(-5), w.Balls[0].V.Y)
}

func TestLoadPathCycle(t *testing.T) {
	doc := []byte(`
paths:
  - p: [0, 0, 0]
    t: 2
    next: 1
    enable: true
  - p: [10, 0, 0]
    t: 2
    next: 0
    enable: true
bodies:
  - node: -1
    path: 0
`)
	w, err := Load(doc)
	require.NoError(t, err)
	require.Len(t, w.Paths, 2)

	assert.Equal(t, 1, w.Paths[0].PI)
	assert.Equal(t, 0, w.Paths[1].PI)
	assert.True(t, w.Paths[0].F)
	assert.Equal(t, world.None, w.Bodies[0].NI)
}

func TestLoadSwitchDefaultsFToF0(t *testing.T) {
	doc := []byte(`
switches:
  - p: [0, 0, 0]
    r: 1
    t0: 5
    f0: true
    path: -1
`)
	w, err := Load(doc)
	require.NoError(t, err)
	require.Len(t, w.Switches, 1)

	assert.True(t, w.Switches[0].F0)
	assert.True(t, w.Switches[0].F)
	assert.False(t, w.Switches[0].Invisible)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("sides: [this is not a list of side objects"))
	assert.Error(t, err)
}

func TestLoadEmptyDocumentProducesEmptyWorld(t *testing.T) {
	w, err := Load([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, w.Balls)
	assert.Empty(t, w.Bodies)
	assert.Empty(t, w.Sides)
}
