package mesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gmsh2fluent/utils"
)

var periodicSquareSurfaces = []SurfaceDescriptor{
	{Name: "walls", ID: 5, BC: utils.BCWall, Tag: 3},
	{Name: "right", ID: 4, BC: utils.BCPeriodicShadow, Tag: 2},
	{Name: "left", ID: 3, BC: utils.BCPeriodic, Tag: 1},
	{Name: "int", ID: 6, BC: utils.BCInterior, Tag: InteriorTag},
}

// periodicSquare maps the left edge {4,1} onto the right edge {3,2}
func periodicSquare(t *testing.T) *Mesh {
	t.Helper()
	m := unitSquare(t, 1, 3, 2, 3)
	require.NoError(t, m.AddPeriodicPair(1, 2))
	require.NoError(t, m.AddPeriodicPair(4, 3))
	return m
}

func TestPeriodicSinglePair(t *testing.T) {
	m := periodicSquare(t)
	topo, err := m.Build(VolumeDescriptor{Name: "fluid", ID: 2}, periodicSquareSurfaces, PhysicalTag)
	require.NoError(t, err)

	require.Len(t, topo.Periodic, 1)
	blk := topo.Periodic[0]
	assert.Equal(t, "left", blk.Periodic.Descriptor.Name)
	require.NotNil(t, blk.Shadow)
	assert.Equal(t, "right", blk.Shadow.Descriptor.Name)
	assert.Equal(t, []PeriodicPair{{Master: 1, Shadow: 2}}, blk.Pairs)

	cl := topo.Classification
	assert.Equal(t, 1, blk.Periodic.First)
	assert.Equal(t, 2, blk.Shadow.First)
	assert.Equal(t, 3, cl.Zones[2].First)
	assert.Equal(t, 4, cl.Zones[2].Last)
	assert.Equal(t, 5, cl.Interior.First)
}

func TestPeriodicMissingPartner(t *testing.T) {
	m := unitSquare(t, 1, 3, 2, 3)
	require.NoError(t, m.AddPeriodicPair(1, 2))
	_, err := m.Build(VolumeDescriptor{Name: "fluid", ID: 2}, periodicSquareSurfaces, PhysicalTag)
	var pe *PeriodicPairingError
	require.True(t, errors.As(err, &pe), "got %v", err)
	assert.Equal(t, ErrMissingPeriodicPartner, pe.Reason)
}

func TestPeriodicUnmatchedMaster(t *testing.T) {
	m := unitSquare(t, 1, 3, 2, 3)
	require.NoError(t, m.AddPeriodicPair(1, 2))
	require.NoError(t, m.AddPeriodicPair(4, 4))
	_, err := m.Build(VolumeDescriptor{Name: "fluid", ID: 2}, periodicSquareSurfaces, PhysicalTag)
	assert.True(t, errors.Is(err, ErrUnmatchedMaster))
}

func TestPeriodicShadowWithoutMaster(t *testing.T) {
	m := unitSquare(t, 3, 3, 2, 3)
	surfaces := []SurfaceDescriptor{
		{Name: "walls", ID: 5, BC: utils.BCWall, Tag: 3},
		{Name: "right", ID: 4, BC: utils.BCPeriodicShadow, Tag: 2},
		{Name: "int", ID: 6, BC: utils.BCInterior, Tag: InteriorTag},
	}
	// pairing only runs when some descriptor is periodic
	topo, err := m.Build(VolumeDescriptor{Name: "fluid", ID: 2}, surfaces, PhysicalTag)
	require.NoError(t, err)
	assert.Empty(t, topo.Periodic)
	shadows := topo.Classification.ZonesOf(utils.BCPeriodicShadow)
	require.Len(t, shadows, 1)
	assert.Len(t, shadows[0].Faces, 1)
}

// Swapping the roles of the two edges, with the periodic map inverted, links the same
// two faces
func TestPeriodicSwappedRoles(t *testing.T) {
	m := unitSquare(t, 1, 3, 2, 3)
	require.NoError(t, m.AddPeriodicPair(2, 1))
	require.NoError(t, m.AddPeriodicPair(3, 4))
	surfaces := []SurfaceDescriptor{
		{Name: "walls", ID: 5, BC: utils.BCWall, Tag: 3},
		{Name: "left", ID: 3, BC: utils.BCPeriodicShadow, Tag: 1},
		{Name: "right", ID: 4, BC: utils.BCPeriodic, Tag: 2},
		{Name: "int", ID: 6, BC: utils.BCInterior, Tag: InteriorTag},
	}
	topo, err := m.Build(VolumeDescriptor{Name: "fluid", ID: 2}, surfaces, PhysicalTag)
	require.NoError(t, err)

	require.Len(t, topo.Periodic, 1)
	blk := topo.Periodic[0]
	assert.Equal(t, "right", blk.Periodic.Descriptor.Name)
	require.NotNil(t, blk.Shadow)
	assert.Equal(t, "left", blk.Shadow.Descriptor.Name)
	assert.Equal(t, []PeriodicPair{{Master: 1, Shadow: 2}}, blk.Pairs)

	right, _ := NewFaceKey(2, 3)
	left, _ := NewFaceKey(4, 1)
	require.Len(t, blk.Periodic.Faces, 1)
	require.Len(t, blk.Shadow.Faces, 1)
	assert.Equal(t, right, blk.Periodic.Faces[0].Key)
	assert.Equal(t, left, blk.Shadow.Faces[0].Key)

	ref, err := periodicSquare(t).Build(VolumeDescriptor{Name: "fluid", ID: 2}, periodicSquareSurfaces, PhysicalTag)
	require.NoError(t, err)
	refBlk := ref.Periodic[0]
	assert.Equal(t, refBlk.Periodic.Faces[0].Key, blk.Shadow.Faces[0].Key)
	assert.Equal(t, refBlk.Shadow.Faces[0].Key, blk.Periodic.Faces[0].Key)
}

func TestPeriodicUnclaimedShadow(t *testing.T) {
	// two shadow edges on the right, only one master on the left
	m, err := NewMesh(2)
	require.NoError(t, err)
	coords := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {1, 2}, {0, 2}}
	for i, c := range coords {
		require.NoError(t, m.AddNode(i+1, c[0], c[1], 0))
	}
	require.NoError(t, m.AddElement(1, utils.Quad, 0, 0, []int{1, 2, 3, 4}))
	require.NoError(t, m.AddElement(2, utils.Quad, 0, 0, []int{4, 3, 5, 6}))
	markers := []struct {
		tag   int
		nodes []int
	}{
		{3, []int{1, 2}}, {2, []int{2, 3}}, {2, []int{3, 5}}, {3, []int{5, 6}},
		{1, []int{4, 1}}, {3, []int{6, 4}},
	}
	for i, mk := range markers {
		require.NoError(t, m.AddElement(10+i, utils.Line, mk.tag, 0, mk.nodes))
	}
	require.NoError(t, m.AddPeriodicPair(1, 2))
	require.NoError(t, m.AddPeriodicPair(4, 3))

	_, err = m.Build(VolumeDescriptor{Name: "fluid", ID: 2}, periodicSquareSurfaces, PhysicalTag)
	assert.True(t, errors.Is(err, ErrUnmatchedShadow))
}

func TestPeriodicAmbiguousShadow(t *testing.T) {
	// both master edges collapse onto the same shadow edge
	m, err := NewMesh(2)
	require.NoError(t, err)
	coords := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {1, 2}, {0, 2}}
	for i, c := range coords {
		require.NoError(t, m.AddNode(i+1, c[0], c[1], 0))
	}
	require.NoError(t, m.AddElement(1, utils.Quad, 0, 0, []int{1, 2, 3, 4}))
	require.NoError(t, m.AddElement(2, utils.Quad, 0, 0, []int{4, 3, 5, 6}))
	markers := []struct {
		tag   int
		nodes []int
	}{
		{3, []int{1, 2}}, {2, []int{2, 3}}, {3, []int{3, 5}}, {3, []int{5, 6}},
		{1, []int{4, 1}}, {1, []int{6, 4}},
	}
	for i, mk := range markers {
		require.NoError(t, m.AddElement(10+i, utils.Line, mk.tag, 0, mk.nodes))
	}
	require.NoError(t, m.AddPeriodicPair(1, 2))
	require.NoError(t, m.AddPeriodicPair(4, 3))
	require.NoError(t, m.AddPeriodicPair(6, 2))

	_, err = m.Build(VolumeDescriptor{Name: "fluid", ID: 2}, periodicSquareSurfaces, PhysicalTag)
	assert.True(t, errors.Is(err, ErrAmbiguousShadow))
}

func TestPeriodicMixedShadowZones(t *testing.T) {
	m, err := NewMesh(2)
	require.NoError(t, err)
	coords := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {1, 2}, {0, 2}}
	for i, c := range coords {
		require.NoError(t, m.AddNode(i+1, c[0], c[1], 0))
	}
	require.NoError(t, m.AddElement(1, utils.Quad, 0, 0, []int{1, 2, 3, 4}))
	require.NoError(t, m.AddElement(2, utils.Quad, 0, 0, []int{4, 3, 5, 6}))
	markers := []struct {
		tag   int
		nodes []int
	}{
		{3, []int{1, 2}}, {2, []int{2, 3}}, {7, []int{3, 5}}, {3, []int{5, 6}},
		{1, []int{4, 1}}, {1, []int{6, 4}},
	}
	for i, mk := range markers {
		require.NoError(t, m.AddElement(10+i, utils.Line, mk.tag, 0, mk.nodes))
	}
	require.NoError(t, m.AddPeriodicPair(1, 2))
	require.NoError(t, m.AddPeriodicPair(4, 3))
	require.NoError(t, m.AddPeriodicPair(6, 5))

	surfaces := append([]SurfaceDescriptor{
		{Name: "upper-right", ID: 7, BC: utils.BCPeriodicShadow, Tag: 7},
	}, periodicSquareSurfaces...)
	_, err = m.Build(VolumeDescriptor{Name: "fluid", ID: 2}, surfaces, PhysicalTag)
	assert.True(t, errors.Is(err, ErrMixedShadowZones))
}

func TestPeriodicNoPeriodicZones(t *testing.T) {
	m := unitSquare(t, 1, 2, 3, 4)
	surfaces := squareSurfaces(utils.BCWall, utils.BCWall, utils.BCWall, utils.BCWall)
	topo, err := m.Build(VolumeDescriptor{Name: "fluid", ID: 2}, surfaces, PhysicalTag)
	require.NoError(t, err)
	assert.Nil(t, topo.Periodic)
}
