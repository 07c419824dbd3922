package mesh

// Topology is the fully classified face description of a mesh, ready to be written
type Topology struct {
	Volume         VolumeDescriptor
	Connectivity   *Connectivity
	Classification *Classification
	Periodic       []*PeriodicBlock
}

// Build numbers the mesh, builds face connectivity, classifies boundary faces onto
// the surface descriptors and resolves periodic pairs. Any failure aborts the whole
// conversion.
func (m *Mesh) Build(vol VolumeDescriptor, surfaces []SurfaceDescriptor, source TagSource) (*Topology, error) {
	for _, s := range surfaces {
		if s.ID == vol.ID {
			return nil, classificationf(ErrDuplicateDescriptor, "id %d used by volume %q and surface %q",
				vol.ID, vol.Name, s.Name)
		}
	}
	m.Number()

	conn, err := BuildConnectivity(m, source)
	if err != nil {
		return nil, err
	}
	cl, err := Classify(conn, surfaces)
	if err != nil {
		return nil, err
	}
	blocks, err := ResolvePeriodic(m, cl)
	if err != nil {
		return nil, err
	}
	return &Topology{
		Volume:         vol,
		Connectivity:   conn,
		Classification: cl,
		Periodic:       blocks,
	}, nil
}
