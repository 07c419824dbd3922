package mesh

import (
	"fmt"
	"sort"
	"strings"
)

// MaxFaceNodes is the largest face the catalog produces (a quadrilateral)
const MaxFaceNodes = 4

// FaceKey identifies a face by its node-id set. Keys built from any permutation
// (or repetition) of the same ids compare equal with ==, so FaceKey is used directly
// as a map key.
type FaceKey struct {
	n   int
	ids [MaxFaceNodes]int
}

// NewFaceKey builds the canonical key of a face from its node ids
func NewFaceKey(ids ...int) (FaceKey, error) {
	var key FaceKey
	if len(ids) == 0 {
		return key, structuralf(ErrFaceSize, "empty face")
	}
	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Ints(sorted)

	for i, id := range sorted {
		if i > 0 && id == sorted[i-1] {
			continue
		}
		if key.n == MaxFaceNodes {
			return FaceKey{}, structuralf(ErrFaceSize, "face %v has more than %d distinct nodes",
				ids, MaxFaceNodes)
		}
		key.ids[key.n] = id
		key.n++
	}
	return key, nil
}

// Len returns the number of distinct nodes in the face
func (k FaceKey) Len() int { return k.n }

// IDs returns the sorted node ids
func (k FaceKey) IDs() []int {
	out := make([]int, k.n)
	copy(out, k.ids[:k.n])
	return out
}

// String renders the key as fixed-width hexadecimal ids joined by '-'
func (k FaceKey) String() string {
	parts := make([]string, k.n)
	for i := 0; i < k.n; i++ {
		parts[i] = fmt.Sprintf("%08x", k.ids[i])
	}
	return strings.Join(parts, "-")
}
