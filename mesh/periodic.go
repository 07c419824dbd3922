package mesh

import (
	"github.com/notargets/gmsh2fluent/utils"
)

// PeriodicPair links a periodic face to its shadow by output face index
type PeriodicPair struct {
	Master int
	Shadow int
}

// PeriodicBlock holds the pairs of one periodic zone
type PeriodicBlock struct {
	Periodic *Zone
	Shadow   *Zone
	Pairs    []PeriodicPair // master enumeration order
}

type shadowFace struct {
	zone    *Zone
	index   int
	claimed bool
}

// ResolvePeriodic pairs every face of the periodic zones with the shadow face whose
// identity equals the face's node ids pushed through the periodic map
func ResolvePeriodic(m *Mesh, cl *Classification) ([]*PeriodicBlock, error) {
	masters := cl.ZonesOf(utils.BCPeriodic)
	shadows := cl.ZonesOf(utils.BCPeriodicShadow)
	if len(masters) == 0 {
		return nil, nil
	}

	shadowIndex := make(map[FaceKey]*shadowFace)
	for _, z := range shadows {
		for i, rec := range z.Faces {
			shadowIndex[rec.Key] = &shadowFace{zone: z, index: z.FaceIndex(i)}
		}
	}

	var blocks []*PeriodicBlock
	for _, z := range masters {
		blk := &PeriodicBlock{Periodic: z, Pairs: make([]PeriodicPair, 0, len(z.Faces))}
		for i, rec := range z.Faces {
			mirror, err := mirrorKey(m, rec)
			if err != nil {
				return nil, err
			}
			sf, ok := shadowIndex[mirror]
			if !ok {
				return nil, periodicf(ErrUnmatchedMaster, "face %s of zone %q maps to %s",
					rec.Key, z.Descriptor.Name, mirror)
			}
			if sf.claimed {
				return nil, periodicf(ErrAmbiguousShadow, "shadow face %s claimed again by face %s",
					mirror, rec.Key)
			}
			sf.claimed = true
			if blk.Shadow == nil {
				blk.Shadow = sf.zone
			} else if blk.Shadow != sf.zone {
				return nil, periodicf(ErrMixedShadowZones, "zone %q pairs with %q and %q",
					z.Descriptor.Name, blk.Shadow.Descriptor.Name, sf.zone.Descriptor.Name)
			}
			blk.Pairs = append(blk.Pairs, PeriodicPair{Master: z.FaceIndex(i), Shadow: sf.index})
		}
		blocks = append(blocks, blk)
	}

	for _, z := range shadows {
		for _, rec := range z.Faces {
			if !shadowIndex[rec.Key].claimed {
				return nil, periodicf(ErrUnmatchedShadow, "face %s of zone %q",
					rec.Key, z.Descriptor.Name)
			}
		}
	}
	return blocks, nil
}

func mirrorKey(m *Mesh, rec *FaceRecord) (FaceKey, error) {
	ids := rec.Key.IDs()
	for i, id := range ids {
		partner, ok := m.PeriodicPartner(id)
		if !ok {
			return FaceKey{}, periodicf(ErrMissingPeriodicPartner, "node %d of face %s", id, rec.Key)
		}
		ids[i] = partner
	}
	return NewFaceKey(ids...)
}
