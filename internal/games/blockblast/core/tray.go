package core

import (
	"fmt"
	"math"
	"math/rand"
)

// refillRetryBudget bounds how many full resamples a refill may spend
// chasing the liveness guarantee before falling back to forcing a single
// cell into the first slot.
const refillRetryBudget = 8

// TrayRules is the difficulty-controlled knob set for the dispenser.
// Supplied by the config collaborator; the engine never hard-codes these
// beyond the defaults.
type TrayRules struct {
	Slots    int     // Number of concurrent offers
	MinCells int     // Smallest admissible archetype, in cells
	MaxCells int     // Largest admissible archetype, in cells
	Weight   float64 // Per-cell multiplier; >1 favors large shapes, <1 small
}

// DefaultTrayRules returns the classic-mode dispenser rules.
func DefaultTrayRules() TrayRules {
	return TrayRules{Slots: 3, MinCells: 1, MaxCells: 9, Weight: 1.0}
}

// Tray manages the fixed set of offered blocks. Slots are consumed
// individually and refilled only when every slot is empty at once.
type Tray struct {
	board *Board
	rules TrayRules
	rng   *rand.Rand
	slots []*Block
}

// NewTray creates a dispenser bound to a board and fills it.
func NewTray(board *Board, rules TrayRules, rng *rand.Rand) *Tray {
	if rules.Slots < 1 {
		rules.Slots = DefaultTrayRules().Slots
	}
	t := &Tray{
		board: board,
		rules: rules,
		rng:   rng,
		slots: make([]*Block, rules.Slots),
	}
	t.refill()
	return t
}

// Slots returns a read-only snapshot of the offers; empty slots are nil.
func (t *Tray) Slots() []*Block {
	out := make([]*Block, len(t.slots))
	copy(out, t.slots)
	return out
}

// Block returns the offer at a slot, or nil for empty or out-of-range
// slots. Out-of-range is not an error here: the surrounding UI probes
// indices liberally.
func (t *Tray) Block(slot int) *Block {
	if slot < 0 || slot >= len(t.slots) {
		return nil
	}
	return t.slots[slot]
}

// Empty reports whether every slot is currently empty.
func (t *Tray) Empty() bool {
	for _, b := range t.slots {
		if b != nil {
			return false
		}
	}
	return true
}

// Consume empties exactly the given slot. When that leaves all slots
// empty, the tray refills itself; the returned bool reports whether it
// did. Consuming an empty or out-of-range slot is an error.
func (t *Tray) Consume(slot int) (refilled bool, err error) {
	if slot < 0 || slot >= len(t.slots) {
		return false, fmt.Errorf("%w: index %d of %d", ErrInvalidSlot, slot, len(t.slots))
	}
	if t.slots[slot] == nil {
		return false, fmt.Errorf("%w: slot %d already empty", ErrInvalidSlot, slot)
	}
	t.slots[slot] = nil
	if t.Empty() {
		t.refill()
		return true, nil
	}
	return false, nil
}

// Reset force-regenerates all offers regardless of occupancy, bypassing
// the all-empty trigger. Used for explicit restarts.
func (t *Tray) Reset() {
	t.refill()
}

// refill draws a fresh full set of distinct archetypes. The set must keep
// the game live: at least one offer placeable on the current board. A
// bounded number of resamples chases that before the single-cell fallback.
func (t *Tray) refill() {
	var candidate []*Block
	for attempt := 0; attempt <= refillRetryBudget; attempt++ {
		candidate = t.draw()
		if t.anyPlaceable(candidate) {
			t.install(candidate)
			return
		}
	}

	// A single cell fits any board that still has an empty cell, which is
	// the only kind of board refill runs against short of full occupancy.
	single, _ := ArchetypeByID(ShapeSingle)
	candidate[0] = NewBlock(Variations(single)[0], t.randColor())
	t.install(candidate)
}

func (t *Tray) install(blocks []*Block) {
	copy(t.slots, blocks)
}

func (t *Tray) anyPlaceable(blocks []*Block) bool {
	for _, b := range blocks {
		if b != nil && t.board.HasAnyValidPlacement(b) {
			return true
		}
	}
	return false
}

// draw picks Slots archetypes without repetition, weighted by cell count,
// each with a uniformly random variation and color. Difficulty shrinking
// the eligible pool below the slot count relaxes the cell bounds for the
// surplus slots, never the no-repeat rule.
func (t *Tray) draw() []*Block {
	eligible := make([]Archetype, 0, len(archetypes))
	for _, a := range Archetypes() {
		cells := a.CellCount()
		if cells >= t.rules.MinCells && cells <= t.rules.MaxCells && a.Canonical.Rows() <= t.board.Size() && a.Canonical.Cols() <= t.board.Size() {
			eligible = append(eligible, a)
		}
	}

	blocks := make([]*Block, 0, t.rules.Slots)
	used := make(map[ArchetypeID]bool, t.rules.Slots)
	for len(blocks) < t.rules.Slots && len(used) < len(eligible) {
		a := t.weightedPick(eligible, used)
		used[a.ID] = true
		vars := Variations(a)
		v := vars[t.rng.Intn(len(vars))]
		blocks = append(blocks, NewBlock(v, t.randColor()))
	}

	// Pool exhausted: draw the surplus slots from the rest of the catalog,
	// ignoring the cell bounds but still without repetition.
	if len(blocks) < t.rules.Slots {
		rest := make([]Archetype, 0, len(archetypes))
		for _, a := range Archetypes() {
			if !used[a.ID] && a.Canonical.Rows() <= t.board.Size() && a.Canonical.Cols() <= t.board.Size() {
				rest = append(rest, a)
			}
		}
		for taken := 0; len(blocks) < t.rules.Slots && taken < len(rest); taken++ {
			a := t.weightedPick(rest, used)
			used[a.ID] = true
			vars := Variations(a)
			v := vars[t.rng.Intn(len(vars))]
			blocks = append(blocks, NewBlock(v, t.randColor()))
		}
	}

	// Only reachable when the whole board-fitting catalog is smaller than
	// the slot count; repeats are unavoidable then.
	for len(blocks) < t.rules.Slots {
		single, _ := ArchetypeByID(ShapeSingle)
		blocks = append(blocks, NewBlock(Variations(single)[0], t.randColor()))
	}
	return blocks
}

// weightedPick selects one unused archetype with probability proportional
// to Weight^(cellCount-1).
func (t *Tray) weightedPick(eligible []Archetype, used map[ArchetypeID]bool) Archetype {
	total := 0.0
	weights := make([]float64, len(eligible))
	for i, a := range eligible {
		if used[a.ID] {
			continue
		}
		w := math.Pow(t.rules.Weight, float64(a.CellCount()-1))
		weights[i] = w
		total += w
	}

	pick := t.rng.Float64() * total
	for i, a := range eligible {
		if used[a.ID] {
			continue
		}
		pick -= weights[i]
		if pick <= 0 {
			return a
		}
	}
	// Float drift: fall back to the last unused entry.
	for i := len(eligible) - 1; i >= 0; i-- {
		if !used[eligible[i].ID] {
			return eligible[i]
		}
	}
	return eligible[0]
}

func (t *Tray) randColor() BlockColor {
	return BlockColor(t.rng.Intn(blockColorCount))
}
