package fluent

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/zeebo/blake3"

	"github.com/notargets/gmsh2fluent/mesh"
)

// OutputMode is the permission of written mesh files
const OutputMode os.FileMode = 0644

// Summary describes a written mesh file
type Summary struct {
	Path       string
	Nodes      int
	Cells      int
	Faces      int
	Zones      int
	Periodic   int    // number of periodic face pairs
	Bytes      int64  // uncompressed size
	Digest     string // blake3 of the uncompressed text, hex
	Compressed bool
}

type countingWriter struct {
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	cw.n += int64(len(p))
	return len(p), nil
}

// WriteFile writes the topology to path. The text goes to a temporary file in the
// destination directory that is renamed into place only after everything succeeded,
// so a failed conversion leaves no output behind. Output is gzip compressed when
// opts.Gzip is set or path ends in ".gz".
func WriteFile(path string, m *mesh.Mesh, topo *mesh.Topology, opts Options) (sum Summary, err error) {
	compressed := opts.Gzip || strings.HasSuffix(path, ".gz")

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return sum, fmt.Errorf("creating output for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	var (
		dest   io.Writer = tmp
		gz     *gzip.Writer
		hasher = blake3.New()
		count  = &countingWriter{}
	)
	if compressed {
		gz = gzip.NewWriter(tmp)
		dest = gz
	}
	if err = Write(io.MultiWriter(dest, hasher, count), m, topo, opts); err != nil {
		return sum, err
	}
	if gz != nil {
		if err = gz.Close(); err != nil {
			return sum, fmt.Errorf("compressing %s: %w", path, err)
		}
	}
	if err = tmp.Chmod(OutputMode); err != nil {
		return sum, fmt.Errorf("setting mode of %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return sum, fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return sum, fmt.Errorf("renaming output to %s: %w", path, err)
	}

	sum = Summarize(m, topo)
	sum.Path = path
	sum.Bytes = count.n
	sum.Digest = hex.EncodeToString(hasher.Sum(nil))
	sum.Compressed = compressed
	return sum, nil
}

// Summarize collects the counts of a built topology
func Summarize(m *mesh.Mesh, topo *mesh.Topology) Summary {
	sum := Summary{
		Nodes: len(m.Nodes()),
		Cells: len(m.VolumeElements()),
		Faces: topo.Classification.NumFaces,
		Zones: len(topo.Classification.Zones),
	}
	for _, blk := range topo.Periodic {
		sum.Periodic += len(blk.Pairs)
	}
	return sum
}
