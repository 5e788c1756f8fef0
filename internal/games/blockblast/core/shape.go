// Package core provides the core game logic for the block placement puzzle.
// This package is UI-agnostic and deterministic.
package core

import "fmt"

// ArchetypeID identifies a block family (e.g., domino, corner tromino).
type ArchetypeID string

// Catalog archetype identifiers. Stable: they appear in saved games and
// score records, so renaming one requires a legacy alias (see legacy.go).
const (
	ShapeSingle  ArchetypeID = "single"
	ShapeDomino  ArchetypeID = "domino"
	ShapeLine3   ArchetypeID = "line3"
	ShapeLine4   ArchetypeID = "line4"
	ShapeLine5   ArchetypeID = "line5"
	ShapeCorner  ArchetypeID = "corner"
	ShapeCorner3 ArchetypeID = "corner3"
	ShapeSquare2 ArchetypeID = "square2"
	ShapeSquare3 ArchetypeID = "square3"
	ShapeTee     ArchetypeID = "tee"
	ShapeSkew    ArchetypeID = "skew"
	ShapeEll     ArchetypeID = "ell"
	ShapePea     ArchetypeID = "pea"
	ShapeRect2x3 ArchetypeID = "rect2x3"
	ShapePlus    ArchetypeID = "plus"
)

// Archetype is a named polyomino family defined by one canonical occupancy
// matrix (row-major, top-left origin).
type Archetype struct {
	ID        ArchetypeID
	Label     string
	Canonical Matrix
}

// CellCount returns the number of filled cells in the canonical matrix.
func (a Archetype) CellCount() int {
	return a.Canonical.PopCount()
}

// archetypes is the canonical shape catalog, in a fixed order so that
// weighted draws and CLI listings are reproducible.
var archetypes = []Archetype{
	{ID: ShapeSingle, Label: "Single", Canonical: Matrix{
		{true},
	}},
	{ID: ShapeDomino, Label: "Domino", Canonical: Matrix{
		{true, true},
	}},
	{ID: ShapeLine3, Label: "Line 3", Canonical: Matrix{
		{true, true, true},
	}},
	{ID: ShapeLine4, Label: "Line 4", Canonical: Matrix{
		{true, true, true, true},
	}},
	{ID: ShapeLine5, Label: "Line 5", Canonical: Matrix{
		{true, true, true, true, true},
	}},
	{ID: ShapeCorner, Label: "Corner", Canonical: Matrix{
		{true, false},
		{true, true},
	}},
	{ID: ShapeCorner3, Label: "Big Corner", Canonical: Matrix{
		{true, false, false},
		{true, false, false},
		{true, true, true},
	}},
	{ID: ShapeSquare2, Label: "Square 2x2", Canonical: Matrix{
		{true, true},
		{true, true},
	}},
	{ID: ShapeSquare3, Label: "Square 3x3", Canonical: Matrix{
		{true, true, true},
		{true, true, true},
		{true, true, true},
	}},
	{ID: ShapeTee, Label: "Tee", Canonical: Matrix{
		{true, true, true},
		{false, true, false},
	}},
	{ID: ShapeSkew, Label: "Skew", Canonical: Matrix{
		{false, true, true},
		{true, true, false},
	}},
	{ID: ShapeEll, Label: "Ell", Canonical: Matrix{
		{true, false},
		{true, false},
		{true, true},
	}},
	{ID: ShapePea, Label: "Pea", Canonical: Matrix{
		{true, true},
		{true, true},
		{true, false},
	}},
	{ID: ShapeRect2x3, Label: "Rect 2x3", Canonical: Matrix{
		{true, true, true},
		{true, true, true},
	}},
	{ID: ShapePlus, Label: "Plus", Canonical: Matrix{
		{false, true, false},
		{true, true, true},
		{false, true, false},
	}},
}

// Archetypes returns the full catalog in its fixed order.
func Archetypes() []Archetype {
	out := make([]Archetype, len(archetypes))
	copy(out, archetypes)
	return out
}

// ArchetypeByID looks up an archetype by its current identifier.
func ArchetypeByID(id ArchetypeID) (Archetype, error) {
	for _, a := range archetypes {
		if a.ID == id {
			return a, nil
		}
	}
	return Archetype{}, fmt.Errorf("blockblast: unknown archetype %q", id)
}
