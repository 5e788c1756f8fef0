package core

import (
	"sync"

	"github.com/kamstrup/intmap"
)

// Matrix is a boolean occupancy pattern, row-major with top-left origin.
type Matrix [][]bool

// Rows returns the number of rows in the matrix.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns in the matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// PopCount returns the number of filled cells.
func (m Matrix) PopCount() int {
	n := 0
	for _, row := range m {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

// Equal returns true if two matrices have the same dimensions and contents.
func (m Matrix) Equal(other Matrix) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	for r := range m {
		for c := range m[r] {
			if m[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// rotated returns the matrix rotated 90 degrees clockwise.
func (m Matrix) rotated() Matrix {
	rows, cols := m.Rows(), m.Cols()
	out := make(Matrix, cols)
	for r := 0; r < cols; r++ {
		out[r] = make([]bool, rows)
		for c := 0; c < rows; c++ {
			out[r][c] = m[rows-1-c][r]
		}
	}
	return out
}

// mirrored returns the matrix flipped horizontally.
func (m Matrix) mirrored() Matrix {
	rows, cols := m.Rows(), m.Cols()
	out := make(Matrix, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			out[r][c] = m[r][cols-1-c]
		}
	}
	return out
}

// cropped returns the matrix trimmed to the minimal bounding box around its
// filled cells. Bounding boxes are always minimal before offset extraction.
func (m Matrix) cropped() Matrix {
	minR, minC := m.Rows(), m.Cols()
	maxR, maxC := -1, -1
	for r := range m {
		for c := range m[r] {
			if !m[r][c] {
				continue
			}
			if r < minR {
				minR = r
			}
			if r > maxR {
				maxR = r
			}
			if c < minC {
				minC = c
			}
			if c > maxC {
				maxC = c
			}
		}
	}
	if maxR < 0 {
		return Matrix{}
	}
	out := make(Matrix, maxR-minR+1)
	for r := range out {
		out[r] = make([]bool, maxC-minC+1)
		copy(out[r], m[minR+r][minC:maxC+1])
	}
	return out
}

// pack encodes a cropped matrix into a single integer: dimensions in the
// high bits, cell bits below. Catalog shapes never exceed 5x5, so the cell
// field fits in 25 bits with room to spare.
func (m Matrix) pack() uint64 {
	key := uint64(m.Rows())<<32 | uint64(m.Cols())<<26
	bit := 0
	for _, row := range m {
		for _, filled := range row {
			if filled {
				key |= 1 << bit
			}
			bit++
		}
	}
	return key
}

// Offset is a (row, column) pair relative to a shape's own top-left
// bounding box, marking a filled cell.
type Offset struct {
	Row, Col int
}

// Variation is one symmetry-distinct orientation of an archetype.
type Variation struct {
	Archetype ArchetypeID
	Pattern   Matrix
	offsets   []Offset
}

// Width returns the bounding-box width of the variation.
func (v Variation) Width() int {
	return v.Pattern.Cols()
}

// Height returns the bounding-box height of the variation.
func (v Variation) Height() int {
	return v.Pattern.Rows()
}

// CellCount returns the number of filled cells.
func (v Variation) CellCount() int {
	return len(v.offsets)
}

// Offsets returns a copy of the occupied-offset list.
func (v Variation) Offsets() []Offset {
	out := make([]Offset, len(v.offsets))
	copy(out, v.offsets)
	return out
}

var (
	variationMu    sync.Mutex
	variationCache = make(map[ArchetypeID][]Variation)
)

// Variations returns the deduplicated orientation set for an archetype, in
// a deterministic order: rotations 0/90/180/270 of the canonical matrix,
// then the same rotations of its horizontal mirror. The mirror pass is
// skipped entirely when some rotation already reproduces the mirrored
// matrix (the shape is achiral). Results are cached; the set is a pure
// function of the canonical matrix.
func Variations(a Archetype) []Variation {
	variationMu.Lock()
	defer variationMu.Unlock()

	if cached, ok := variationCache[a.ID]; ok {
		return cached
	}

	base := a.Canonical.cropped()
	orbit := rotations(base)

	mirror := base.mirrored().cropped()
	chiral := true
	for _, m := range orbit {
		if m.Equal(mirror) {
			chiral = false
			break
		}
	}
	if chiral {
		orbit = append(orbit, rotations(mirror)...)
	}

	seen := intmap.New[uint64, struct{}](len(orbit))
	variations := make([]Variation, 0, len(orbit))
	for _, m := range orbit {
		key := m.pack()
		if _, dup := seen.Get(key); dup {
			continue
		}
		seen.Put(key, struct{}{})
		variations = append(variations, Variation{
			Archetype: a.ID,
			Pattern:   m,
			offsets:   extractOffsets(m),
		})
	}

	variationCache[a.ID] = variations
	return variations
}

// rotations returns the four quarter-turn images of a matrix, cropped.
func rotations(m Matrix) []Matrix {
	out := make([]Matrix, 0, 4)
	cur := m
	for i := 0; i < 4; i++ {
		out = append(out, cur.cropped())
		cur = cur.rotated()
	}
	return out
}

// extractOffsets lists the filled cells of a cropped matrix in row-major order.
func extractOffsets(m Matrix) []Offset {
	offsets := make([]Offset, 0, m.PopCount())
	for r := range m {
		for c := range m[r] {
			if m[r][c] {
				offsets = append(offsets, Offset{Row: r, Col: c})
			}
		}
	}
	return offsets
}
