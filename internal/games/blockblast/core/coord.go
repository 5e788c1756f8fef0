package core

import (
	"errors"
	"fmt"
)

// Engine error taxonomy. Every failure the engine surfaces wraps one of
// these sentinels so callers can branch with errors.Is.
var (
	// ErrOutOfBounds is returned when a coordinate outside [0, size) is
	// constructed. Never silently clamped.
	ErrOutOfBounds = errors.New("blockblast: coordinate out of bounds")

	// ErrInvalidPlacement is returned by Commit when the block does not
	// fit at the requested anchor. The board is left untouched.
	ErrInvalidPlacement = errors.New("blockblast: invalid placement")

	// ErrInvalidSlot is returned by Tray.Consume for an empty or
	// out-of-range slot.
	ErrInvalidSlot = errors.New("blockblast: invalid tray slot")
)

// Coord is a validated (row, column) pair bound to a board dimension.
// Values outside [0, size) cannot exist; NewCoord is the only constructor.
type Coord struct {
	row, col int
}

// NewCoord creates a coordinate for a board of the given size.
func NewCoord(row, col, size int) (Coord, error) {
	if row < 0 || row >= size || col < 0 || col >= size {
		return Coord{}, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, size, size)
	}
	return Coord{row: row, col: col}, nil
}

// Row returns the row index.
func (c Coord) Row() int {
	return c.row
}

// Col returns the column index.
func (c Coord) Col() int {
	return c.col
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.row, c.col)
}
