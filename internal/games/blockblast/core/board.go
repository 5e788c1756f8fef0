package core

import "fmt"

// BoardCell is one cell of the occupancy grid. Color is meaningful only
// while Filled is true.
type BoardCell struct {
	Filled bool
	Color  BlockColor
}

// Board owns the N x N occupancy grid. It validates and commits placements
// and clears completed rows and columns. All coordinates are integers; no
// floating point enters the board.
//
// Cells are stored in row-major order: index = row*size + col.
type Board struct {
	size  int
	cells []BoardCell
}

// PlacementResult describes what a successful commit changed. The engine
// reports raw counts; the scoring collaborator owns the formula.
type PlacementResult struct {
	CellsPlaced  int
	ClearedRows  []int
	ClearedCols  []int
	CellsCleared int // Each cell counted once even at a row/column intersection
}

// Lines returns the total number of cleared lines, rows plus columns.
func (r PlacementResult) Lines() int {
	return len(r.ClearedRows) + len(r.ClearedCols)
}

// NewBoard creates an empty board of the given size.
func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]BoardCell, size*size),
	}
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.size
}

// Reset empties every cell. Used at session start and explicit restart.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = BoardCell{}
	}
}

// Cell returns the cell at a validated coordinate.
func (b *Board) Cell(c Coord) BoardCell {
	return b.cells[c.Row()*b.size+c.Col()]
}

// Cells returns a copy of the full grid in row-major order, for the
// rendering and persistence collaborators.
func (b *Board) Cells() []BoardCell {
	out := make([]BoardCell, len(b.cells))
	copy(out, b.cells)
	return out
}

// FilledCount returns the number of filled cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, cell := range b.cells {
		if cell.Filled {
			n++
		}
	}
	return n
}

// CanPlace reports whether every occupied offset of the block, anchored at
// the given coordinate, lands in-bounds on an empty cell. Pure: safe to
// call on every pointer move, from any number of speculative anchors.
func (b *Board) CanPlace(block *Block, anchor Coord) bool {
	for _, off := range block.Offsets() {
		row := anchor.Row() + off.Row
		col := anchor.Col() + off.Col
		if row >= b.size || col >= b.size {
			return false
		}
		if b.cells[row*b.size+col].Filled {
			return false
		}
	}
	return true
}

// Commit places the block at the anchor, then clears every row and column
// that became fully occupied, all as one atomic step. Fails with
// ErrInvalidPlacement and no mutation when the block does not fit. A cell
// belonging to both a cleared row and a cleared column is counted once.
func (b *Board) Commit(block *Block, anchor Coord) (PlacementResult, error) {
	if !b.CanPlace(block, anchor) {
		return PlacementResult{}, fmt.Errorf("%w: %s at %s", ErrInvalidPlacement, block.Archetype(), anchor)
	}

	offsets := block.Offsets()
	for _, off := range offsets {
		idx := (anchor.Row()+off.Row)*b.size + (anchor.Col() + off.Col)
		b.cells[idx] = BoardCell{Filled: true, Color: block.Color()}
	}

	result := PlacementResult{CellsPlaced: len(offsets)}

	for row := 0; row < b.size; row++ {
		if b.rowFull(row) {
			result.ClearedRows = append(result.ClearedRows, row)
		}
	}
	for col := 0; col < b.size; col++ {
		if b.colFull(col) {
			result.ClearedCols = append(result.ClearedCols, col)
		}
	}

	// Clear after detection so a cleared row cannot un-fill a column that
	// was complete at commit time.
	for _, row := range result.ClearedRows {
		for col := 0; col < b.size; col++ {
			idx := row*b.size + col
			if b.cells[idx].Filled {
				result.CellsCleared++
				b.cells[idx] = BoardCell{}
			}
		}
	}
	for _, col := range result.ClearedCols {
		for row := 0; row < b.size; row++ {
			idx := row*b.size + col
			if b.cells[idx].Filled {
				result.CellsCleared++
				b.cells[idx] = BoardCell{}
			}
		}
	}

	return result, nil
}

// HasAnyValidPlacement scans all anchors for a spot where the block fits.
// Used by the tray liveness guarantee and by game-over detection.
func (b *Board) HasAnyValidPlacement(block *Block) bool {
	maxRow := b.size - block.Height()
	maxCol := b.size - block.Width()
	for row := 0; row <= maxRow; row++ {
		for col := 0; col <= maxCol; col++ {
			anchor, err := NewCoord(row, col, b.size)
			if err != nil {
				continue
			}
			if b.CanPlace(block, anchor) {
				return true
			}
		}
	}
	return false
}

func (b *Board) rowFull(row int) bool {
	for col := 0; col < b.size; col++ {
		if !b.cells[row*b.size+col].Filled {
			return false
		}
	}
	return true
}

func (b *Board) colFull(col int) bool {
	for row := 0; row < b.size; row++ {
		if !b.cells[row*b.size+col].Filled {
			return false
		}
	}
	return true
}
