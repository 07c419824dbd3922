package utils

import "fmt"

// ElementType represents the element kinds the converter understands
type ElementType int

const (
	Unknown ElementType = iota
	// 1D elements
	Line
	// 2D elements
	Triangle
	Quad
	// 3D elements
	Tet
	Hex
	Prism
	Pyramid
)

// String representation of element types
func (e ElementType) String() string {
	names := []string{
		"Unknown",
		"Line",
		"Triangle", "Quad",
		"Tet", "Hex", "Prism", "Pyramid",
	}
	if e >= 0 && int(e) < len(names) {
		return names[e]
	}
	return "Invalid"
}

// GetDimension returns the spatial dimension of the element
func (e ElementType) GetDimension() int {
	switch e {
	case Line:
		return 1
	case Triangle, Quad:
		return 2
	case Tet, Hex, Prism, Pyramid:
		return 3
	default:
		return -1
	}
}

// GetNumNodes returns the number of nodes for each element type
func (e ElementType) GetNumNodes() int {
	switch e {
	case Line:
		return 2
	case Triangle:
		return 3
	case Quad:
		return 4
	case Tet:
		return 4
	case Hex:
		return 8
	case Prism:
		return 6
	case Pyramid:
		return 5
	default:
		return 0
	}
}

// FluentCellType returns the Fluent cell-type code written in the cells section.
// Line elements never become cells and report 0.
func (e ElementType) FluentCellType() int {
	switch e {
	case Triangle:
		return 1
	case Tet:
		return 2
	case Quad:
		return 3
	case Hex:
		return 4
	case Pyramid:
		return 5
	case Prism:
		return 6
	default:
		return 0
	}
}

// GmshCode returns the Gmsh element-type number
func (e ElementType) GmshCode() int {
	for code, et := range gmshElementTypes {
		if et == e {
			return code
		}
	}
	return 0
}

// gmshElementTypes maps the first-order Gmsh element numbers onto ElementType.
// Gmsh 1 and Gmsh 2.2 share these codes.
var gmshElementTypes = map[int]ElementType{
	1: Line,     // 2-node line
	2: Triangle, // 3-node triangle
	3: Quad,     // 4-node quadrangle
	4: Tet,      // 4-node tetrahedron
	5: Hex,      // 8-node hexahedron
	6: Prism,    // 6-node prism
	7: Pyramid,  // 5-node pyramid
}

// GmshPoint is the Gmsh code of the 1-node point element, which carries no face
const GmshPoint = 15

// ElementTypeFromGmsh converts a Gmsh element code. Codes outside the first-order
// catalog (points, quadratic elements) return an error.
func ElementTypeFromGmsh(code int) (ElementType, error) {
	if et, ok := gmshElementTypes[code]; ok {
		return et, nil
	}
	return Unknown, fmt.Errorf("gmsh element type %d is not supported", code)
}
