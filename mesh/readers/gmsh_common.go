package readers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/gmsh2fluent/mesh"
	"github.com/notargets/gmsh2fluent/utils"
)

// ReadGmsh reads a Gmsh 1 or Gmsh 2.2 ASCII mesh file into a new mesh of the given
// dimension. The format is detected from the first section.
func ReadGmsh(filename string, dim int) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	msh, err := Read(file, dim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return msh, nil
}

// Read parses a Gmsh 1 or Gmsh 2.2 ASCII mesh from r
func Read(r io.Reader, dim int) (*mesh.Mesh, error) {
	msh, err := mesh.NewMesh(dim)
	if err != nil {
		return nil, err
	}
	lr := newLineReader(r)
	if !lr.next() {
		if err := lr.sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("empty mesh file")
	}

	switch lr.text {
	case "$MeshFormat":
		err = readGmsh22(lr, msh)
	case "$NOD":
		err = readGmsh1(lr, msh)
	default:
		return nil, lr.errorf("unrecognized gmsh section %q", lr.text)
	}
	if err != nil {
		return nil, err
	}
	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return msh, nil
}

// lineReader walks the non-blank lines of a file and remembers the line number
// for error messages
type lineReader struct {
	sc   *bufio.Scanner
	line int
	text string
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	return &lineReader{sc: sc}
}

func (lr *lineReader) next() bool {
	for lr.sc.Scan() {
		lr.line++
		lr.text = strings.TrimSpace(lr.sc.Text())
		if lr.text != "" {
			return true
		}
	}
	return false
}

func (lr *lineReader) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("line %d: "+format, append([]interface{}{lr.line}, args...)...)
}

func (lr *lineReader) wrap(err error) error {
	return fmt.Errorf("line %d: %w", lr.line, err)
}

// fields advances to the next line of a section and splits it
func (lr *lineReader) fields(section string) ([]string, error) {
	if !lr.next() {
		return nil, lr.errorf("unexpected EOF in %s", section)
	}
	return strings.Fields(lr.text), nil
}

// count reads the entity count that opens most sections
func (lr *lineReader) count(section string) (int, error) {
	if !lr.next() {
		return 0, lr.errorf("unexpected EOF in %s", section)
	}
	n, err := strconv.Atoi(lr.text)
	if err != nil || n < 0 {
		return 0, lr.errorf("invalid %s count %q", section, lr.text)
	}
	return n, nil
}

func (lr *lineReader) expect(end string) error {
	if !lr.next() {
		return lr.errorf("unexpected EOF, expected %s", end)
	}
	if lr.text != end {
		return lr.errorf("expected %s, found %q", end, lr.text)
	}
	return nil
}

// skipTo discards lines up to and including the end marker
func (lr *lineReader) skipTo(end string) error {
	for lr.next() {
		if lr.text == end {
			return nil
		}
	}
	return lr.errorf("unexpected EOF, expected %s", end)
}

func (lr *lineReader) ints(fields []string) ([]int, error) {
	vals := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, lr.errorf("invalid integer %q", f)
		}
		vals[i] = v
	}
	return vals, nil
}

// readNode parses "id x y z"
func readNode(lr *lineReader, msh *mesh.Mesh, fields []string) error {
	if len(fields) < 4 {
		return lr.errorf("invalid node line %q", lr.text)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return lr.errorf("invalid node id %q", fields[0])
	}
	var xyz [3]float64
	for i := range xyz {
		if xyz[i], err = strconv.ParseFloat(fields[1+i], 64); err != nil {
			return lr.errorf("invalid coordinate %q", fields[1+i])
		}
	}
	if err := msh.AddNode(id, xyz[0], xyz[1], xyz[2]); err != nil {
		return lr.wrap(err)
	}
	return nil
}

// addElement converts a gmsh element code and hands the element to the store.
// Point elements carry no face and are skipped.
func addElement(lr *lineReader, msh *mesh.Mesh, id, code, physTag, geomTag int, nodeIDs []int) error {
	if code == utils.GmshPoint {
		return nil
	}
	et, err := utils.ElementTypeFromGmsh(code)
	if err != nil {
		return lr.wrap(&mesh.StructuralInputError{
			Reason: mesh.ErrUnsupportedKind,
			Detail: fmt.Sprintf("element %d: %v", id, err),
		})
	}
	if err := msh.AddElement(id, et, physTag, geomTag, nodeIDs); err != nil {
		return lr.wrap(err)
	}
	return nil
}
