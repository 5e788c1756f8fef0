package core

import "fmt"

// legacyAliases maps identifiers from the superseded shape set onto the
// current catalog. The table is finite and explicit: older save data must
// decode to exactly one archetype, never by matching on name contents.
// Both skew spellings land on the same archetype because the current skew
// orbit contains the mirrored form.
var legacyAliases = map[string]ArchetypeID{
	"dot":       ShapeSingle,
	"twoLine":   ShapeDomino,
	"threeLine": ShapeLine3,
	"fourLine":  ShapeLine4,
	"fiveLine":  ShapeLine5,
	"lShape":    ShapeCorner,
	"bigLShape": ShapeCorner3,
	"square":    ShapeSquare2,
	"bigSquare": ShapeSquare3,
	"tShape":    ShapeTee,
	"sShape":    ShapeSkew,
	"zShape":    ShapeSkew,
	"jShape":    ShapeEll,
	"pShape":    ShapePea,
}

func init() {
	// The alias table is load-bearing for old save data; fail fast if an
	// entry stops resolving or starts shadowing a current identifier.
	for alias, id := range legacyAliases {
		if _, err := ArchetypeByID(id); err != nil {
			panic(fmt.Sprintf("blockblast: legacy alias %q points at missing archetype %q", alias, id))
		}
		if _, err := ArchetypeByID(ArchetypeID(alias)); err == nil {
			panic(fmt.Sprintf("blockblast: legacy alias %q shadows a current archetype", alias))
		}
	}
}

// DecodeLegacy resolves an identifier from any catalog generation to a
// current archetype. Current identifiers pass through; superseded ones go
// through the alias table; anything else is an error.
func DecodeLegacy(id string) (Archetype, error) {
	if a, err := ArchetypeByID(ArchetypeID(id)); err == nil {
		return a, nil
	}
	if current, ok := legacyAliases[id]; ok {
		a, err := ArchetypeByID(current)
		if err != nil {
			return Archetype{}, fmt.Errorf("blockblast: decoding legacy %q: %w", id, err)
		}
		return a, nil
	}
	return Archetype{}, fmt.Errorf("blockblast: unknown shape identifier %q", id)
}
