package mesh

import (
	"fmt"
	"strings"
)

// TagSource selects which element tag column carries boundary conditions on marker
// elements
type TagSource int

const (
	PhysicalTag TagSource = iota
	GeometricTag
)

// ParseTagSource converts "physical" or "geometric" into a TagSource; an empty
// string selects PhysicalTag
func ParseTagSource(name string) (TagSource, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "physical":
		return PhysicalTag, nil
	case "geometric", "elementary":
		return GeometricTag, nil
	default:
		return PhysicalTag, fmt.Errorf("unknown boundary tag source %q", name)
	}
}

func (ts TagSource) String() string {
	if ts == GeometricTag {
		return "geometric"
	}
	return "physical"
}

func (ts TagSource) tagOf(e *Element) int {
	if ts == GeometricTag {
		return e.GeometricTag
	}
	return e.PhysicalTag
}

// FaceRef names one local face of a volume element
type FaceRef struct {
	Element *Element
	Local   int
}

// FaceRecord is one distinct face of the volume mesh
type FaceRecord struct {
	Key      FaceKey
	Owner    FaceRef
	Neighbor *FaceRef // nil on boundary faces

	BoundaryTag    int
	HasBoundaryTag bool
}

// IsInterior reports whether two volume elements share the face
func (r *FaceRecord) IsInterior() bool { return r.Neighbor != nil }

// Nodes returns the face node ids in the owner's winding order
func (r *FaceRecord) Nodes() []int {
	return r.Owner.Element.FaceNodes(r.Owner.Local)
}

// NeighborSeq returns the neighbor cell number, 0 on boundary faces
func (r *FaceRecord) NeighborSeq() int {
	if r.Neighbor == nil {
		return 0
	}
	return r.Neighbor.Element.Seq
}

// Connectivity is the face table of a mesh
type Connectivity struct {
	records []*FaceRecord
	index   map[FaceKey]int
	markers map[FaceKey]*Element
	source  TagSource
}

// Records returns the face records in creation order. Volume elements are scanned in
// sequence order and their faces in local order, so this order is reproducible.
func (c *Connectivity) Records() []*FaceRecord { return c.records }

// Lookup returns the record of a face identity
func (c *Connectivity) Lookup(key FaceKey) (*FaceRecord, bool) {
	idx, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.records[idx], true
}

// NumInterior returns the number of faces shared by two volume elements
func (c *Connectivity) NumInterior() (n int) {
	for _, r := range c.records {
		if r.IsInterior() {
			n++
		}
	}
	return
}

// BoundaryTagCounts returns the boundary face count per tag, tags in first-seen order
func (c *Connectivity) BoundaryTagCounts() (tags []int, counts map[int]int) {
	counts = make(map[int]int)
	for _, r := range c.records {
		if !r.HasBoundaryTag {
			continue
		}
		if _, seen := counts[r.BoundaryTag]; !seen {
			tags = append(tags, r.BoundaryTag)
		}
		counts[r.BoundaryTag]++
	}
	return
}

// BuildConnectivity builds the face table: interior faces get owner and neighbor,
// boundary faces get owner and the tag of the marker element covering them.
func BuildConnectivity(m *Mesh, source TagSource) (*Connectivity, error) {
	c := &Connectivity{
		index:   make(map[FaceKey]int),
		markers: make(map[FaceKey]*Element),
		source:  source,
	}

	for _, e := range m.MarkerElements() {
		key := e.FaceKeys[0]
		if prev, exists := c.markers[key]; exists && source.tagOf(prev) != source.tagOf(e) {
			return nil, structuralf(ErrConflictingMarkers, "face %s: element %d tag %d, element %d tag %d",
				key, prev.ID, source.tagOf(prev), e.ID, source.tagOf(e))
		}
		c.markers[key] = e
	}

	for _, e := range m.VolumeElements() {
		for f, key := range e.FaceKeys {
			idx, exists := c.index[key]
			if !exists {
				c.index[key] = len(c.records)
				c.records = append(c.records, &FaceRecord{
					Key:   key,
					Owner: FaceRef{Element: e, Local: f},
				})
				continue
			}
			rec := c.records[idx]
			if rec.Neighbor != nil {
				return nil, structuralf(ErrNonManifoldFace, "face %s shared by elements %d, %d and %d",
					key, rec.Owner.Element.ID, rec.Neighbor.Element.ID, e.ID)
			}
			rec.Neighbor = &FaceRef{Element: e, Local: f}
		}
	}

	for _, rec := range c.records {
		marker, tagged := c.markers[rec.Key]
		switch {
		case rec.Neighbor != nil && tagged:
			return nil, structuralf(ErrTaggedInteriorFace, "face %s between elements %d and %d has marker element %d",
				rec.Key, rec.Owner.Element.ID, rec.Neighbor.Element.ID, marker.ID)
		case rec.Neighbor == nil && !tagged:
			return nil, structuralf(ErrMissingBoundaryTag, "face %s of element %d",
				rec.Key, rec.Owner.Element.ID)
		case tagged:
			rec.BoundaryTag = source.tagOf(marker)
			rec.HasBoundaryTag = true
		}
	}
	return c, nil
}
