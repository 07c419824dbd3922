package fluent

import (
	"bufio"
	"fmt"
	"io"

	"github.com/notargets/gmsh2fluent/mesh"
	"github.com/notargets/gmsh2fluent/utils"
)

// DefaultTitle is written as the leading comment when Options.Title is empty
const DefaultTitle = "Mesh converted by gmsh2fluent"

// cell type codes per line in mixed cell sections
const cellsPerLine = 9

// Options controls the text written for a mesh
type Options struct {
	Title string
	Scale float64 // coordinate multiplier, 0 means 1
	Gzip  bool    // WriteFile only
}

type writer struct {
	w   *bufio.Writer
	m   *mesh.Mesh
	err error
}

func (fw *writer) printf(format string, args ...interface{}) {
	if fw.err != nil {
		return
	}
	_, fw.err = fmt.Fprintf(fw.w, format, args...)
}

// Write serializes a built topology in the Fluent mesh text format. Face, cell and
// pairing integers are hexadecimal; zone-table ids are decimal.
func Write(w io.Writer, m *mesh.Mesh, topo *mesh.Topology, opts Options) error {
	fw := &writer{w: bufio.NewWriter(w), m: m}
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	dim := m.Dimension()

	fw.printf("(0 \"%s\")\n\n", title)
	fw.printf("(0 \"DIMENSION:\")\n")
	fw.printf("(2 %d)\n\n", dim)

	fw.writeNodes(m, scale)

	cl := topo.Classification
	fw.printf("(0 \"NUMBER OF FACES:\")\n")
	fw.printf("(13 (0 1 %x 0))\n\n", cl.NumFaces)

	var rest []*mesh.Zone
	for _, z := range cl.Zones {
		switch z.Descriptor.BC {
		case utils.BCPeriodic:
			fw.writeZone(fmt.Sprintf("PERIODIC FACES %s:", z.Descriptor.Name), z)
		case utils.BCPeriodicShadow:
			fw.writeZone(fmt.Sprintf("SHADOW FACES %s:", z.Descriptor.Name), z)
		default:
			rest = append(rest, z)
		}
	}
	for _, blk := range topo.Periodic {
		fw.writePairs(blk)
	}
	for _, z := range rest {
		fw.writeZone(fmt.Sprintf("SURFACE %s:", z.Descriptor.Name), z)
	}

	fw.writeCells(m, topo.Volume)
	fw.writeZoneTable(topo.Volume, cl.Surfaces)

	if fw.err != nil {
		return fmt.Errorf("writing fluent mesh: %w", fw.err)
	}
	if err := fw.w.Flush(); err != nil {
		return fmt.Errorf("writing fluent mesh: %w", err)
	}
	return nil
}

func (fw *writer) writeNodes(m *mesh.Mesh, scale float64) {
	nn := len(m.Nodes())
	dim := m.Dimension()
	fw.printf("(0 \"NODES:\")\n")
	fw.printf("(10(0 1 %x 1 %d))\n", nn, dim)
	fw.printf("(10(1 1 %x 1 %d)(\n", nn, dim)
	if coords := m.Coordinates(scale); coords != nil {
		for i := 0; i < nn; i++ {
			if dim == 3 {
				fw.printf("%.9f\t%.9f\t%.9f\n", coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
			} else {
				fw.printf("%.9f\t%.9f\n", coords.At(i, 0), coords.At(i, 1))
			}
		}
	}
	fw.printf("))\n\n")
}

func (fw *writer) writeZone(label string, z *mesh.Zone) {
	fw.printf("(0 \"%s\")\n", label)
	fw.printf("(13 (%x %x %x %x 0)(\n", z.Descriptor.ID, z.First, z.Last, z.Descriptor.BC.Code())
	for _, rec := range z.Faces {
		fw.writeFace(rec)
	}
	fw.printf("))\n\n")
}

func (fw *writer) writeFace(rec *mesh.FaceRecord) {
	nodes := rec.Nodes()
	fw.printf("%x", len(nodes))
	for _, id := range nodes {
		// AddElement rejects unknown node ids, so the lookup cannot miss
		nd, _ := fw.m.Node(id)
		fw.printf(" %x", nd.Seq)
	}
	fw.printf(" %x %x\n", rec.Owner.Element.Seq, rec.NeighborSeq())
}

func (fw *writer) writePairs(blk *mesh.PeriodicBlock) {
	fw.printf("(0 \"PERIODIC FACES PAIRS:\")\n")
	shadowID := 0
	if blk.Shadow != nil {
		shadowID = blk.Shadow.Descriptor.ID
	}
	fw.printf("(18 (%x %x %x %x)(\n", blk.Periodic.First, blk.Periodic.Last,
		blk.Periodic.Descriptor.ID, shadowID)
	for _, p := range blk.Pairs {
		fw.printf("%x %x\n", p.Master, p.Shadow)
	}
	fw.printf("))\n\n")
}

func (fw *writer) writeCells(m *mesh.Mesh, vol mesh.VolumeDescriptor) {
	counts := m.CountByType()
	total := 0
	for _, tc := range counts {
		total += tc.Count
	}
	fw.printf("(0 \"CELLS:\")\n")
	fw.printf("(12 (0 1 %x 0))\n", total)
	if len(counts) == 1 {
		fw.printf("(12 (%x 1 %x 1 %d))\n\n", vol.ID, total, counts[0].Type.FluentCellType())
		return
	}
	fw.printf("(12 (%x 1 %x 1 0)(\n", vol.ID, total)
	col := 0
	for _, tc := range counts {
		for i := 0; i < tc.Count; i++ {
			fw.printf(" %d", tc.Type.FluentCellType())
			col++
			if col%cellsPerLine == 0 {
				fw.printf("\n")
			}
		}
	}
	if col%cellsPerLine != 0 {
		fw.printf("\n")
	}
	fw.printf("))\n\n")
}

func (fw *writer) writeZoneTable(vol mesh.VolumeDescriptor, surfaces []mesh.SurfaceDescriptor) {
	fw.printf("(0 \"ZONES:\")\n")
	fw.printf("(45 (%d fluid %s)())\n", vol.ID, vol.Name)
	for _, s := range surfaces {
		fw.printf("(45 (%d %s %s)())\n", s.ID, s.BC, s.Name)
	}
}
