package readers

import (
	"github.com/notargets/gmsh2fluent/mesh"
)

// readGmsh1 reads the legacy Gmsh 1 format. The reader is positioned on the
// opening $NOD line.
//
//	$NOD / n / id x y z / $ENDNOD
//	$ELM / n / id type phys elem nnodes nodes... / $ENDELM
//	$PERNODES / n / id master slave / $ENDPERNODES
func readGmsh1(lr *lineReader, msh *mesh.Mesh) error {
	for {
		var err error
		switch lr.text {
		case "$NOD":
			err = readNodes1(lr, msh)
		case "$ELM":
			err = readElements1(lr, msh)
		case "$PERNODES":
			err = readPeriodic1(lr, msh)
		default:
			if len(lr.text) > 1 && lr.text[0] == '$' {
				err = lr.skipTo("$END" + lr.text[1:])
			} else {
				err = lr.errorf("unexpected line %q", lr.text)
			}
		}
		if err != nil {
			return err
		}
		if !lr.next() {
			return nil
		}
	}
}

func readNodes1(lr *lineReader, msh *mesh.Mesh) error {
	n, err := lr.count("$NOD")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		fields, err := lr.fields("$NOD")
		if err != nil {
			return err
		}
		if err := readNode(lr, msh, fields); err != nil {
			return err
		}
	}
	return lr.expect("$ENDNOD")
}

func readElements1(lr *lineReader, msh *mesh.Mesh) error {
	n, err := lr.count("$ELM")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		fields, err := lr.fields("$ELM")
		if err != nil {
			return err
		}
		if len(fields) < 5 {
			return lr.errorf("invalid element line %q", lr.text)
		}
		vals, err := lr.ints(fields)
		if err != nil {
			return err
		}
		id, code, phys, geom, nn := vals[0], vals[1], vals[2], vals[3], vals[4]
		if len(vals) != 5+nn {
			return lr.errorf("element %d declares %d nodes, lists %d", id, nn, len(vals)-5)
		}
		if err := addElement(lr, msh, id, code, phys, geom, vals[5:]); err != nil {
			return err
		}
	}
	return lr.expect("$ENDELM")
}

func readPeriodic1(lr *lineReader, msh *mesh.Mesh) error {
	n, err := lr.count("$PERNODES")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		fields, err := lr.fields("$PERNODES")
		if err != nil {
			return err
		}
		if len(fields) < 3 {
			return lr.errorf("invalid periodic node line %q", lr.text)
		}
		vals, err := lr.ints(fields[:3])
		if err != nil {
			return err
		}
		if err := msh.AddPeriodicPair(vals[1], vals[2]); err != nil {
			return lr.wrap(err)
		}
	}
	return lr.expect("$ENDPERNODES")
}
