package mesh

import (
	"github.com/notargets/gmsh2fluent/utils"
)

// InteriorTag is the tag reserved for the interior descriptor
const InteriorTag = 0

// VolumeDescriptor names the cell zone
type VolumeDescriptor struct {
	Name string
	ID   int
}

// SurfaceDescriptor names a face zone and the boundary tag that selects its faces
type SurfaceDescriptor struct {
	Name string
	ID   int
	BC   utils.BCType
	Tag  int
}

// Zone is the set of faces written under one surface descriptor. First and Last are
// the inclusive 1-based output face indices; an empty zone has Last == First-1.
type Zone struct {
	Descriptor SurfaceDescriptor
	Faces      []*FaceRecord
	First      int
	Last       int
}

// FaceIndex returns the output index of the i'th face of the zone
func (z *Zone) FaceIndex(i int) int { return z.First + i }

// Classification holds the face zones in write order
type Classification struct {
	Surfaces []SurfaceDescriptor // caller order
	Zones    []*Zone             // periodic masters, shadows, ordinary boundaries, interior
	Interior *Zone
	NumFaces int
}

// ZonesOf returns the zones with the given BC type, in write order
func (cl *Classification) ZonesOf(bc utils.BCType) []*Zone {
	var zones []*Zone
	for _, z := range cl.Zones {
		if z.Descriptor.BC == bc {
			zones = append(zones, z)
		}
	}
	return zones
}

// Classify assigns every face record to a surface descriptor and lays the zones out
// into contiguous output ranges
func Classify(conn *Connectivity, surfaces []SurfaceDescriptor) (*Classification, error) {
	if err := validateDescriptors(surfaces); err != nil {
		return nil, err
	}

	zoneOf := make([]*Zone, len(surfaces))
	byTag := make(map[int]*Zone)
	var interior *Zone
	for i, s := range surfaces {
		z := &Zone{Descriptor: s}
		zoneOf[i] = z
		if s.BC == utils.BCInterior {
			interior = z
			continue
		}
		byTag[s.Tag] = z
	}

	for _, rec := range conn.Records() {
		if rec.IsInterior() {
			interior.Faces = append(interior.Faces, rec)
			continue
		}
		z, ok := byTag[rec.BoundaryTag]
		if !ok {
			return nil, classificationf(ErrUnmatchedTag, "tag %d on face %s of element %d",
				rec.BoundaryTag, rec.Key, rec.Owner.Element.ID)
		}
		z.Faces = append(z.Faces, rec)
	}

	cl := &Classification{
		Surfaces: append([]SurfaceDescriptor(nil), surfaces...),
		Interior: interior,
	}
	for _, bc := range []utils.BCType{utils.BCPeriodic, utils.BCPeriodicShadow} {
		for _, z := range zoneOf {
			if z.Descriptor.BC == bc {
				cl.Zones = append(cl.Zones, z)
			}
		}
	}
	for _, z := range zoneOf {
		switch z.Descriptor.BC {
		case utils.BCPeriodic, utils.BCPeriodicShadow, utils.BCInterior:
		default:
			cl.Zones = append(cl.Zones, z)
		}
	}
	cl.Zones = append(cl.Zones, interior)

	last := 0
	for _, z := range cl.Zones {
		z.First = last + 1
		z.Last = z.First + len(z.Faces) - 1
		last = z.Last
	}
	cl.NumFaces = last
	return cl, nil
}

func validateDescriptors(surfaces []SurfaceDescriptor) error {
	var (
		interiors int
		ids       = make(map[int]string)
		tags      = make(map[int]string)
	)
	for _, s := range surfaces {
		if !s.BC.IsValid() {
			return classificationf(ErrBadDescriptor, "surface %q has boundary type %d", s.Name, s.BC.Code())
		}
		if prev, dup := ids[s.ID]; dup {
			return classificationf(ErrDuplicateDescriptor, "id %d used by %q and %q", s.ID, prev, s.Name)
		}
		ids[s.ID] = s.Name
		if s.BC == utils.BCInterior {
			interiors++
			if s.Tag != InteriorTag {
				return classificationf(ErrBadDescriptor, "interior surface %q must use tag %d, has %d",
					s.Name, InteriorTag, s.Tag)
			}
			continue
		}
		if prev, dup := tags[s.Tag]; dup {
			return classificationf(ErrDuplicateDescriptor, "tag %d used by %q and %q", s.Tag, prev, s.Name)
		}
		tags[s.Tag] = s.Name
	}
	if interiors != 1 {
		return classificationf(ErrInteriorDescriptor, "found %d", interiors)
	}
	return nil
}
