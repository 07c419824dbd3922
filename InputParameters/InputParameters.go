package InputParameters

import (
	"fmt"
	"io"

	"github.com/ghodss/yaml"

	"github.com/notargets/gmsh2fluent/mesh"
	"github.com/notargets/gmsh2fluent/utils"
)

// VolumeParameters names the cell zone
type VolumeParameters struct {
	Name string `json:"Name"`
	ID   int    `json:"ID"`
}

// SurfaceParameters describes one face zone. BC is a Fluent label or alias.
type SurfaceParameters struct {
	Name string `json:"Name"`
	ID   int    `json:"ID"`
	BC   string `json:"BC"`
	Tag  int    `json:"Tag"`
}

// CaseParameters obtained from the YAML case file
type CaseParameters struct {
	Title       string              `json:"Title"`
	Dimension   int                 `json:"Dimension"`
	Scale       float64             `json:"Scale"`
	BoundaryTag string              `json:"BoundaryTag"` // physical or geometric
	Volume      VolumeParameters    `json:"Volume"`
	Surfaces    []SurfaceParameters `json:"Surfaces"`
}

func (cp *CaseParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, cp); err != nil {
		return err
	}
	if cp.Dimension != 2 && cp.Dimension != 3 {
		return fmt.Errorf("Dimension must be 2 or 3, got %d", cp.Dimension)
	}
	if cp.Scale < 0 {
		return fmt.Errorf("Scale must not be negative, got %g", cp.Scale)
	}
	if _, err := cp.TagSource(); err != nil {
		return err
	}
	_, err := cp.SurfaceDescriptors()
	return err
}

// VolumeDescriptor returns the cell zone descriptor
func (cp *CaseParameters) VolumeDescriptor() mesh.VolumeDescriptor {
	return mesh.VolumeDescriptor{Name: cp.Volume.Name, ID: cp.Volume.ID}
}

// SurfaceDescriptors converts the surfaces in file order
func (cp *CaseParameters) SurfaceDescriptors() ([]mesh.SurfaceDescriptor, error) {
	surfaces := make([]mesh.SurfaceDescriptor, len(cp.Surfaces))
	for i, s := range cp.Surfaces {
		bc, err := utils.ParseBCName(s.BC)
		if err != nil {
			return nil, fmt.Errorf("surface %q: %w", s.Name, err)
		}
		surfaces[i] = mesh.SurfaceDescriptor{Name: s.Name, ID: s.ID, BC: bc, Tag: s.Tag}
	}
	return surfaces, nil
}

// TagSource returns the element tag column holding boundary tags
func (cp *CaseParameters) TagSource() (mesh.TagSource, error) {
	return mesh.ParseTagSource(cp.BoundaryTag)
}

func (cp *CaseParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", cp.Title)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Dimension\n", cp.Dimension)
	fmt.Fprintf(w, "%8.5f\t\t= Scale\n", cp.Scale)
	ts, _ := cp.TagSource()
	fmt.Fprintf(w, "[%s]\t\t\t= Boundary Tag\n", ts)
	fmt.Fprintf(w, "Volume[%s] = %d\n", cp.Volume.Name, cp.Volume.ID)
	for _, s := range cp.Surfaces {
		fmt.Fprintf(w, "Surface[%s] = id %d, bc %s, tag %d\n", s.Name, s.ID, s.BC, s.Tag)
	}
}
