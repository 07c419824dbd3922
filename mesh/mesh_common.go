package mesh

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gmsh2fluent/utils"
)

// Node is a mesh vertex
type Node struct {
	ID    int        // Id as given by the input
	Coord [3]float64 // x, y, z
	Seq   int        // 1-based output number, ingestion order
}

// Element is a volume or marker element
type Element struct {
	ID           int
	Type         utils.ElementType
	PhysicalTag  int
	GeometricTag int
	Nodes        []int // Node ids, order defines orientation
	Seq          int   // 1-based output number, 0 for markers

	Role     ElementRole
	faces    [][]int // Node ids of each local face, wound per the catalog
	FaceKeys []FaceKey
}

// FaceNodes returns the node ids of local face f in catalog winding order
func (e *Element) FaceNodes(f int) []int {
	return e.faces[f]
}

// NumFaces returns the number of local faces
func (e *Element) NumFaces() int {
	return len(e.faces)
}

// Mesh represents one unstructured mesh instance and owns its nodes and elements
type Mesh struct {
	catalog *Catalog

	nodes     []*Node
	nodeIndex map[int]int // node id -> position in nodes

	elements  []*Element // ingestion order, volume and marker
	elemIndex map[int]int

	periodic      map[int]int // master node id -> slave node id
	periodicOrder []int       // master ids in insertion order

	volume   []*Element // volume elements in sequence order, set by Number
	numbered bool
	dropped  int
}

// NewMesh creates an empty mesh of the given dimension
func NewMesh(dim int) (*Mesh, error) {
	cat, err := NewCatalog(dim)
	if err != nil {
		return nil, err
	}
	return &Mesh{
		catalog:   cat,
		nodeIndex: make(map[int]int),
		elemIndex: make(map[int]int),
		periodic:  make(map[int]int),
	}, nil
}

// Dimension returns the mesh dimension
func (m *Mesh) Dimension() int { return m.catalog.Dimension() }

// Catalog returns the face catalog of this mesh
func (m *Mesh) Catalog() *Catalog { return m.catalog }

// AddNode appends a node; its sequence number is its ingestion position
func (m *Mesh) AddNode(id int, x, y, z float64) error {
	if _, exists := m.nodeIndex[id]; exists {
		return structuralf(ErrDuplicateNode, "node %d", id)
	}
	if !utils.IsFinite(x, y, z) {
		return structuralf(ErrBadCoordinate, "node %d at (%g, %g, %g)", id, x, y, z)
	}
	nd := &Node{ID: id, Coord: [3]float64{x, y, z}, Seq: len(m.nodes) + 1}
	m.nodeIndex[id] = len(m.nodes)
	m.nodes = append(m.nodes, nd)
	return nil
}

// AddElement validates an element against the catalog and stores it. Elements that
// are degenerate for the mesh dimension are counted and discarded.
func (m *Mesh) AddElement(id int, et utils.ElementType, physTag, geomTag int, nodeIDs []int) error {
	if m.numbered {
		return fmt.Errorf("element %d added after numbering", id)
	}
	role := m.catalog.Role(et)
	switch role {
	case RoleDropped:
		m.dropped++
		return nil
	case RoleUnsupported:
		return structuralf(ErrUnsupportedKind, "element %d: %s in a %dD mesh", id, et, m.Dimension())
	}
	if _, exists := m.elemIndex[id]; exists {
		return structuralf(ErrDuplicateElement, "element %d", id)
	}
	if len(nodeIDs) != et.GetNumNodes() {
		return structuralf(ErrNodeCount, "element %d: %s needs %d nodes, got %d",
			id, et, et.GetNumNodes(), len(nodeIDs))
	}
	for _, nid := range nodeIDs {
		if _, ok := m.nodeIndex[nid]; !ok {
			return structuralf(ErrUnknownNode, "element %d references node %d", id, nid)
		}
	}

	local, err := m.catalog.LocalFaces(et)
	if err != nil {
		return err
	}
	elem := &Element{
		ID:           id,
		Type:         et,
		PhysicalTag:  physTag,
		GeometricTag: geomTag,
		Nodes:        append([]int(nil), nodeIDs...),
		Role:         role,
		faces:        make([][]int, len(local)),
		FaceKeys:     make([]FaceKey, len(local)),
	}
	for f, idx := range local {
		fn := make([]int, len(idx))
		for i, j := range idx {
			fn[i] = nodeIDs[j]
		}
		elem.faces[f] = fn
		if elem.FaceKeys[f], err = NewFaceKey(fn...); err != nil {
			return err
		}
	}
	m.elemIndex[id] = len(m.elements)
	m.elements = append(m.elements, elem)
	return nil
}

// AddPeriodicPair records that master node maps onto slave node
func (m *Mesh) AddPeriodicPair(master, slave int) error {
	if _, ok := m.nodeIndex[master]; !ok {
		return structuralf(ErrUnknownNode, "periodic master node %d", master)
	}
	if _, ok := m.nodeIndex[slave]; !ok {
		return structuralf(ErrUnknownNode, "periodic slave node %d", slave)
	}
	if _, exists := m.periodic[master]; !exists {
		m.periodicOrder = append(m.periodicOrder, master)
	}
	m.periodic[master] = slave
	return nil
}

// PeriodicPartner returns the slave node paired with a master node
func (m *Mesh) PeriodicPartner(master int) (int, bool) {
	slave, ok := m.periodic[master]
	return slave, ok
}

// PeriodicPairs returns the periodic map as (master, slave) pairs in insertion order
func (m *Mesh) PeriodicPairs() [][2]int {
	pairs := make([][2]int, len(m.periodicOrder))
	for i, master := range m.periodicOrder {
		pairs[i] = [2]int{master, m.periodic[master]}
	}
	return pairs
}

// Number assigns element sequence numbers: one contiguous block per volume kind, in
// the catalog's kind order, ingestion order within a block. It is idempotent.
func (m *Mesh) Number() {
	if m.numbered {
		return
	}
	m.volume = m.volume[:0]
	for _, et := range m.catalog.VolumeOrder() {
		for _, e := range m.elements {
			if e.Role == RoleVolume && e.Type == et {
				m.volume = append(m.volume, e)
				e.Seq = len(m.volume)
			}
		}
	}
	m.numbered = true
}

// Node looks a node up by id
func (m *Mesh) Node(id int) (*Node, bool) {
	idx, ok := m.nodeIndex[id]
	if !ok {
		return nil, false
	}
	return m.nodes[idx], true
}

// Element looks an element up by id
func (m *Mesh) Element(id int) (*Element, bool) {
	idx, ok := m.elemIndex[id]
	if !ok {
		return nil, false
	}
	return m.elements[idx], true
}

// Nodes returns the nodes in sequence order
func (m *Mesh) Nodes() []*Node { return m.nodes }

// Elements returns all kept elements in ingestion order
func (m *Mesh) Elements() []*Element { return m.elements }

// VolumeElements returns the volume elements in sequence order. Number must have run.
func (m *Mesh) VolumeElements() []*Element {
	m.Number()
	return m.volume
}

// MarkerElements returns the marker elements in ingestion order
func (m *Mesh) MarkerElements() []*Element {
	var markers []*Element
	for _, e := range m.elements {
		if e.Role == RoleMarker {
			markers = append(markers, e)
		}
	}
	return markers
}

// CountByType returns the number of volume elements of each kind in sequence order
func (m *Mesh) CountByType() []TypeCount {
	var counts []TypeCount
	for _, e := range m.VolumeElements() {
		if n := len(counts); n > 0 && counts[n-1].Type == e.Type {
			counts[n-1].Count++
			continue
		}
		counts = append(counts, TypeCount{Type: e.Type, Count: 1})
	}
	return counts
}

// TypeCount is the size of one contiguous block of cells
type TypeCount struct {
	Type  utils.ElementType
	Count int
}

// Dropped returns the number of degenerate elements discarded at ingestion
func (m *Mesh) Dropped() int { return m.dropped }

// Coordinates returns the node coordinates as an [nnodes x 3] matrix in node sequence
// order, multiplied by scale
func (m *Mesh) Coordinates(scale float64) *mat.Dense {
	if len(m.nodes) == 0 {
		return nil
	}
	data := make([]float64, 0, 3*len(m.nodes))
	for _, nd := range m.nodes {
		data = append(data, nd.Coord[:]...)
	}
	coords := mat.NewDense(len(m.nodes), 3, data)
	if scale != 1 {
		coords.Scale(scale, coords)
	}
	return coords
}

// BoundingBox returns the min and max coordinates over all nodes
func (m *Mesh) BoundingBox() (bb [2][3]float64) {
	coords := m.Coordinates(1)
	if coords == nil {
		return
	}
	col := make([]float64, len(m.nodes))
	for d := 0; d < 3; d++ {
		mat.Col(col, d, coords)
		bb[0][d] = floats.Min(col)
		bb[1][d] = floats.Max(col)
	}
	return
}

// PrintStatistics prints mesh statistics
func (m *Mesh) PrintStatistics(w io.Writer) {
	fmt.Fprintf(w, "Mesh Statistics:\n")
	fmt.Fprintf(w, "  Dimension: %d\n", m.Dimension())
	fmt.Fprintf(w, "  Nodes: %d\n", len(m.nodes))
	fmt.Fprintf(w, "  Volume elements: %d\n", len(m.VolumeElements()))
	fmt.Fprintf(w, "  Marker elements: %d\n", len(m.MarkerElements()))
	if m.dropped > 0 {
		fmt.Fprintf(w, "  Dropped elements: %d\n", m.dropped)
	}

	fmt.Fprintf(w, "  Element types:\n")
	for _, tc := range m.CountByType() {
		fmt.Fprintf(w, "    %s: %d\n", tc.Type, tc.Count)
	}

	bb := m.BoundingBox()
	fmt.Fprintf(w, "  Bounding box: [%g %g %g] - [%g %g %g]\n",
		bb[0][0], bb[0][1], bb[0][2], bb[1][0], bb[1][1], bb[1][2])

	if len(m.periodic) > 0 {
		fmt.Fprintf(w, "  Periodic node pairs: %d\n", len(m.periodic))
	}

	tags := make(map[int]int)
	for _, e := range m.MarkerElements() {
		tags[e.PhysicalTag]++
	}
	if len(tags) > 0 {
		keys := make([]int, 0, len(tags))
		for k := range tags {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		fmt.Fprintf(w, "  Marker physical tags:\n")
		for _, k := range keys {
			fmt.Fprintf(w, "    %d: %d\n", k, tags[k])
		}
	}
}
