package mesh

import (
	"github.com/notargets/gmsh2fluent/utils"
)

// ElementRole says how an element kind takes part in a mesh of a given dimension
type ElementRole int

const (
	RoleUnsupported ElementRole = iota
	RoleVolume                  // contributes faces to the connectivity table
	RoleMarker                  // carries a boundary tag for one face
	RoleDropped                 // degenerate for this dimension, discarded at ingestion
)

func (r ElementRole) String() string {
	return [...]string{"Unsupported", "Volume", "Marker", "Dropped"}[r]
}

// Local face tables. Every face is wound so that its right-hand-rule normal points
// into the element; in 2D the normal of edge n0->n1 is z x (n1-n0).
var (
	lineFaces2D = [][]int{{0, 1}}
	triFaces2D  = [][]int{{0, 1}, {1, 2}, {2, 0}}
	quadFaces2D = [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}

	triFaces3D  = [][]int{{0, 1, 2}}
	quadFaces3D = [][]int{{0, 1, 2, 3}}
	tetFaces    = [][]int{
		{1, 3, 2}, // Face 0 (opposite node 0)
		{0, 2, 3}, // Face 1 (opposite node 1)
		{0, 3, 1}, // Face 2 (opposite node 2)
		{0, 1, 2}, // Face 3 (opposite node 3)
	}
	hexFaces = [][]int{
		{0, 1, 2, 3}, // Face 0 (bottom)
		{7, 6, 5, 4}, // Face 1 (top)
		{6, 7, 3, 2}, // Face 2
		{4, 5, 1, 0}, // Face 3
		{3, 7, 4, 0}, // Face 4
		{5, 6, 2, 1}, // Face 5
	}
	prismFaces = [][]int{
		{0, 1, 2},    // Face 0 (bottom tri)
		{5, 4, 3},    // Face 1 (top tri)
		{2, 1, 4, 5}, // Face 2 (quad)
		{2, 5, 3, 0}, // Face 3 (quad)
		{3, 4, 1, 0}, // Face 4 (quad)
	}
	pyramidFaces = [][]int{
		{0, 1, 2, 3}, // Face 0 (base quad)
		{4, 1, 0},    // Face 1 (tri)
		{4, 2, 1},    // Face 2 (tri)
		{4, 3, 2},    // Face 3 (tri)
		{4, 0, 3},    // Face 4 (tri)
	}
)

// Catalog holds the local face tables for one mesh dimension. Each Mesh owns its
// own Catalog, so meshes of different dimension can be converted side by side.
type Catalog struct {
	dim   int
	faces map[utils.ElementType][][]int
	roles map[utils.ElementType]ElementRole
	order []utils.ElementType // volume kinds in output numbering order
}

// NewCatalog returns the catalog for a 2D or 3D mesh
func NewCatalog(dim int) (*Catalog, error) {
	switch dim {
	case 2:
		return &Catalog{
			dim: dim,
			faces: map[utils.ElementType][][]int{
				utils.Line:     lineFaces2D,
				utils.Triangle: triFaces2D,
				utils.Quad:     quadFaces2D,
			},
			roles: map[utils.ElementType]ElementRole{
				utils.Line:     RoleMarker,
				utils.Triangle: RoleVolume,
				utils.Quad:     RoleVolume,
			},
			order: []utils.ElementType{utils.Triangle, utils.Quad},
		}, nil
	case 3:
		return &Catalog{
			dim: dim,
			faces: map[utils.ElementType][][]int{
				utils.Triangle: triFaces3D,
				utils.Quad:     quadFaces3D,
				utils.Tet:      tetFaces,
				utils.Hex:      hexFaces,
				utils.Prism:    prismFaces,
				utils.Pyramid:  pyramidFaces,
			},
			roles: map[utils.ElementType]ElementRole{
				utils.Line:     RoleDropped,
				utils.Triangle: RoleMarker,
				utils.Quad:     RoleMarker,
				utils.Tet:      RoleVolume,
				utils.Hex:      RoleVolume,
				utils.Prism:    RoleVolume,
				utils.Pyramid:  RoleVolume,
			},
			order: []utils.ElementType{utils.Tet, utils.Hex, utils.Prism, utils.Pyramid},
		}, nil
	default:
		return nil, structuralf(ErrBadDimension, "dimension %d, want 2 or 3", dim)
	}
}

// Dimension returns the mesh dimension the catalog was built for
func (c *Catalog) Dimension() int { return c.dim }

// Role reports how elements of kind et take part in the mesh
func (c *Catalog) Role(et utils.ElementType) ElementRole {
	return c.roles[et]
}

// LocalFaces returns the local-face node-index tuples of kind et
func (c *Catalog) LocalFaces(et utils.ElementType) ([][]int, error) {
	faces, ok := c.faces[et]
	if !ok {
		return nil, structuralf(ErrUnsupportedKind, "%s elements in a %dD mesh", et, c.dim)
	}
	return faces, nil
}

// VolumeOrder returns the volume kinds in the order their cells are numbered
func (c *Catalog) VolumeOrder() []utils.ElementType {
	return c.order
}
