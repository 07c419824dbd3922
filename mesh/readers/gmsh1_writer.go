package readers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/notargets/gmsh2fluent/mesh"
)

// WriteGmsh1 writes the mesh back out in Gmsh 1 format. Elements are renumbered from
// 1 in ingestion order; elements the mesh dropped at ingestion (segments of a 3D
// mesh) are gone. The periodic map goes into a $PERNODES section sorted by master.
func WriteGmsh1(w io.Writer, msh *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	var err error
	printf := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(bw, format, args...)
		}
	}

	nodes := msh.Nodes()
	printf("$NOD\n%d\n", len(nodes))
	for _, nd := range nodes {
		printf("%d\t%.8f\t%.8f\t%.8f\n", nd.ID, nd.Coord[0], nd.Coord[1], nd.Coord[2])
	}
	printf("$ENDNOD\n")

	elems := msh.Elements()
	printf("$ELM\n%d\n", len(elems))
	for i, e := range elems {
		printf("%d\t%d\t%d\t%d\t%d", i+1, e.Type.GmshCode(), e.PhysicalTag, e.GeometricTag, len(e.Nodes))
		for _, id := range e.Nodes {
			printf("\t%d", id)
		}
		printf("\n")
	}
	printf("$ENDELM\n")

	if pairs := msh.PeriodicPairs(); len(pairs) > 0 {
		sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
		printf("$PERNODES\n%d\n", len(pairs))
		for i, p := range pairs {
			printf("%d\t%d\t%d\n", i+1, p[0], p[1])
		}
		printf("$ENDPERNODES\n")
	}

	if err != nil {
		return err
	}
	return bw.Flush()
}

// WriteGmsh1File writes the mesh in Gmsh 1 format to filename
func WriteGmsh1File(filename string, msh *mesh.Mesh) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteGmsh1(file, msh); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", filename, err)
	}
	return file.Close()
}
