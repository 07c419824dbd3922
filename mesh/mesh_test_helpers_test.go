package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notargets/gmsh2fluent/utils"
)

// unitSquare builds the unit square split into triangles (1,2,3) and (1,3,4), with
// one marker segment on each boundary edge. The records come out as
// {1,2} {2,3} {1,3} {3,4} {4,1}; {1,3} is the interior edge.
func unitSquare(t *testing.T, left, bottom, right, top int) *Mesh {
	t.Helper()
	m, err := NewMesh(2)
	require.NoError(t, err)
	addSquareNodes(t, m)
	require.NoError(t, m.AddElement(1, utils.Triangle, 100, 1, []int{1, 2, 3}))
	require.NoError(t, m.AddElement(2, utils.Triangle, 100, 1, []int{1, 3, 4}))
	require.NoError(t, m.AddElement(3, utils.Line, bottom, 11, []int{1, 2}))
	require.NoError(t, m.AddElement(4, utils.Line, right, 12, []int{2, 3}))
	require.NoError(t, m.AddElement(5, utils.Line, top, 13, []int{3, 4}))
	require.NoError(t, m.AddElement(6, utils.Line, left, 14, []int{4, 1}))
	return m
}

func addSquareNodes(t *testing.T, m *Mesh) {
	t.Helper()
	coords := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, c := range coords {
		require.NoError(t, m.AddNode(i+1, c[0], c[1], 0))
	}
}

// twoTets builds tetrahedra (1,2,3,4) and (2,3,4,5) sharing face {2,3,4}, with all
// six outer faces marked by tag
func twoTets(t *testing.T, tag int) *Mesh {
	t.Helper()
	m, err := NewMesh(3)
	require.NoError(t, err)
	coords := [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}}
	for i, c := range coords {
		require.NoError(t, m.AddNode(i+1, c[0], c[1], c[2]))
	}
	require.NoError(t, m.AddElement(1, utils.Tet, 100, 1, []int{1, 2, 3, 4}))
	require.NoError(t, m.AddElement(2, utils.Tet, 100, 1, []int{2, 4, 3, 5}))
	outer := [][]int{{1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 5}, {2, 4, 5}, {3, 4, 5}}
	for i, tri := range outer {
		require.NoError(t, m.AddElement(10+i, utils.Triangle, tag, 2, tri))
	}
	return m
}

func squareSurfaces(left, bottom, right, top utils.BCType) []SurfaceDescriptor {
	return []SurfaceDescriptor{
		{Name: "left", ID: 3, BC: left, Tag: 1},
		{Name: "bottom", ID: 4, BC: bottom, Tag: 2},
		{Name: "right", ID: 5, BC: right, Tag: 3},
		{Name: "top", ID: 6, BC: top, Tag: 4},
		{Name: "int", ID: 7, BC: utils.BCInterior, Tag: InteriorTag},
	}
}
