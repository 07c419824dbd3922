package readers

import (
	"strings"

	"github.com/notargets/gmsh2fluent/mesh"
)

// readGmsh22 reads a Gmsh MSH 2.2 ASCII file. The reader is positioned on the
// opening $MeshFormat line.
func readGmsh22(lr *lineReader, msh *mesh.Mesh) error {
	if err := readMeshFormat22(lr); err != nil {
		return err
	}
	for lr.next() {
		var err error
		switch lr.text {
		case "$Nodes":
			err = readNodes22(lr, msh)
		case "$Elements":
			err = readElements22(lr, msh)
		case "$Periodic":
			err = readPeriodic22(lr, msh)
		default:
			// $PhysicalNames, data sections and anything else we have no use for
			if len(lr.text) > 1 && lr.text[0] == '$' {
				err = lr.skipTo("$End" + lr.text[1:])
			} else {
				err = lr.errorf("unexpected line %q", lr.text)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// readMeshFormat22 accepts "2.x 0 <datasize>", ASCII only
func readMeshFormat22(lr *lineReader) error {
	fields, err := lr.fields("$MeshFormat")
	if err != nil {
		return err
	}
	if len(fields) < 3 {
		return lr.errorf("invalid MeshFormat line %q", lr.text)
	}
	if !strings.HasPrefix(fields[0], "2.") {
		return lr.errorf("unsupported Gmsh format version %s", fields[0])
	}
	if fields[1] != "0" {
		return lr.errorf("binary Gmsh files are not supported")
	}
	return lr.skipTo("$EndMeshFormat")
}

func readNodes22(lr *lineReader, msh *mesh.Mesh) error {
	n, err := lr.count("$Nodes")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		fields, err := lr.fields("$Nodes")
		if err != nil {
			return err
		}
		if err := readNode(lr, msh, fields); err != nil {
			return err
		}
	}
	return lr.expect("$EndNodes")
}

// readElements22 parses "id type ntags tags... nodes...". The first tag is the
// physical group, the second the elementary (geometric) entity.
func readElements22(lr *lineReader, msh *mesh.Mesh) error {
	n, err := lr.count("$Elements")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		fields, err := lr.fields("$Elements")
		if err != nil {
			return err
		}
		if len(fields) < 3 {
			return lr.errorf("invalid element line %q", lr.text)
		}
		vals, err := lr.ints(fields)
		if err != nil {
			return err
		}
		id, code, numTags := vals[0], vals[1], vals[2]
		if numTags < 0 || len(vals) < 3+numTags {
			return lr.errorf("element %d: invalid tag count %d", id, numTags)
		}
		tags := vals[3 : 3+numTags]
		var phys, geom int
		if len(tags) > 0 {
			phys = tags[0]
		}
		if len(tags) > 1 {
			geom = tags[1]
		}
		if err := addElement(lr, msh, id, code, phys, geom, vals[3+numTags:]); err != nil {
			return err
		}
	}
	return lr.expect("$EndElements")
}

// readPeriodic22 reads the periodic links. Gmsh lists each pair as "slave master";
// the mesh stores master -> slave.
func readPeriodic22(lr *lineReader, msh *mesh.Mesh) error {
	links, err := lr.count("$Periodic")
	if err != nil {
		return err
	}
	for l := 0; l < links; l++ {
		header, err := lr.fields("$Periodic")
		if err != nil {
			return err
		}
		if len(header) < 3 {
			return lr.errorf("invalid periodic header %q", lr.text)
		}
		if !lr.next() {
			return lr.errorf("unexpected EOF in $Periodic")
		}
		// newer 2.2 writers put the affine transform before the node count
		if strings.HasPrefix(lr.text, "Affine") {
			if !lr.next() {
				return lr.errorf("unexpected EOF in $Periodic")
			}
		}
		vals, err := lr.ints(strings.Fields(lr.text))
		if err != nil {
			return err
		}
		if len(vals) != 1 || vals[0] < 0 {
			return lr.errorf("invalid periodic node count %q", lr.text)
		}
		for i := 0; i < vals[0]; i++ {
			fields, err := lr.fields("$Periodic")
			if err != nil {
				return err
			}
			if len(fields) < 2 {
				return lr.errorf("invalid periodic node line %q", lr.text)
			}
			pair, err := lr.ints(fields[:2])
			if err != nil {
				return err
			}
			if err := msh.AddPeriodicPair(pair[1], pair[0]); err != nil {
				return lr.wrap(err)
			}
		}
	}
	return lr.expect("$EndPeriodic")
}
