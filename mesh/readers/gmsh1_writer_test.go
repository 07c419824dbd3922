package readers

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteGmsh1(t *testing.T) {
	msh, err := Read(strings.NewReader(squareGmsh22), 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteGmsh1(&buf, msh))
	assert.Equal(t, `$NOD
4
1	0.00000000	0.00000000	0.00000000
2	1.00000000	0.00000000	0.00000000
3	1.00000000	1.00000000	0.00000000
4	0.00000000	1.00000000	0.00000000
$ENDNOD
$ELM
6
1	2	100	7	3	1	2	3
2	2	100	7	3	1	3	4
3	1	3	11	2	1	2
4	1	2	12	2	2	3
5	1	3	13	2	3	4
6	1	1	14	2	4	1
$ENDELM
$PERNODES
2
1	1	2
2	4	3
$ENDPERNODES
`, buf.String())
}

// Segments of a 3D mesh are gone from the copy, and the periodic map is sorted
func TestWriteGmsh1Drops3DSegments(t *testing.T) {
	content := `$NOD
5
1 0 0 0
2 1 0 0
3 0 1 0
4 0 0 1
5 1 1 1
$ENDNOD
$ELM
4
7 4 1 1 4 1 2 3 4
8 1 5 5 2 1 2
9 2 5 5 3 1 2 3
10 1 5 5 2 2 3
$ENDELM
$PERNODES
2
1 5 4
2 2 3
$ENDPERNODES
`
	msh, err := Read(strings.NewReader(content), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, msh.Dropped())

	var buf bytes.Buffer
	require.NoError(t, WriteGmsh1(&buf, msh))
	out := buf.String()
	assert.Contains(t, out, "$ELM\n2\n1\t4\t1\t1\t4\t1\t2\t3\t4\n2\t2\t5\t5\t3\t1\t2\t3\n$ENDELM\n")
	assert.Contains(t, out, "$PERNODES\n2\n1\t2\t3\n2\t5\t4\n$ENDPERNODES\n")

	// the copy reads back to the same mesh
	path := filepath.Join(t.TempDir(), "copy.msh")
	require.NoError(t, WriteGmsh1File(path, msh))
	back, err := ReadGmsh(path, 3)
	require.NoError(t, err)
	assert.Len(t, back.Nodes(), 5)
	assert.Len(t, back.Elements(), 2)
	assert.Zero(t, back.Dropped())
	assert.Equal(t, [][2]int{{2, 3}, {5, 4}}, back.PeriodicPairs())
}
