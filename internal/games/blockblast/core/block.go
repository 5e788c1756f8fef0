package core

// BlockColor is the display identity of a block, carried through to filled
// board cells so the rendering collaborator can color them.
type BlockColor uint8

const (
	BlockRed BlockColor = iota
	BlockGreen
	BlockYellow
	BlockBlue
	BlockMagenta
	BlockCyan
	BlockOrange
)

// blockColorCount is the number of palette entries the tray draws from.
const blockColorCount = 7

// Block pairs a chosen shape variation with a display color. Immutable
// once constructed; a tray slot holds at most one or is empty.
type Block struct {
	variation Variation
	color     BlockColor
}

// NewBlock creates a block from a variation and color.
func NewBlock(v Variation, c BlockColor) *Block {
	return &Block{variation: v, color: c}
}

// Archetype returns the identifier of the block's shape family.
func (b *Block) Archetype() ArchetypeID {
	return b.variation.Archetype
}

// Color returns the block's display color.
func (b *Block) Color() BlockColor {
	return b.color
}

// Width returns the bounding-box width in cells.
func (b *Block) Width() int {
	return b.variation.Width()
}

// Height returns the bounding-box height in cells.
func (b *Block) Height() int {
	return b.variation.Height()
}

// CellCount returns the number of occupied cells.
func (b *Block) CellCount() int {
	return b.variation.CellCount()
}

// Offsets returns the occupied-offset list relative to the block's own
// top-left bounding box. The returned slice is a copy.
func (b *Block) Offsets() []Offset {
	return b.variation.Offsets()
}

// FitsWithin reports whether the block's bounding box fits on a board of
// the given size at any anchor.
func (b *Block) FitsWithin(boardSize int) bool {
	return b.Width() <= boardSize && b.Height() <= boardSize
}
