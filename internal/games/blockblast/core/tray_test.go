package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTray(t *testing.T, board *Board, rules TrayRules, seed int64) *Tray {
	t.Helper()
	return NewTray(board, rules, rand.New(rand.NewSource(seed)))
}

func TestTrayRefillDistinctArchetypes(t *testing.T) {
	board := NewBoard(8)
	for seed := int64(0); seed < 20; seed++ {
		tray := newTestTray(t, board, DefaultTrayRules(), seed)
		seen := make(map[ArchetypeID]bool)
		for i, block := range tray.Slots() {
			require.NotNil(t, block, "seed %d slot %d empty after refill", seed, i)
			assert.False(t, seen[block.Archetype()], "seed %d duplicates %s", seed, block.Archetype())
			seen[block.Archetype()] = true
		}
	}
}

func TestTrayLivenessAfterRefill(t *testing.T) {
	board := NewBoard(8)
	for seed := int64(0); seed < 20; seed++ {
		tray := newTestTray(t, board, DefaultTrayRules(), seed)
		assert.True(t, tray.anyPlaceable(tray.Slots()), "seed %d", seed)
	}
}

func TestTrayLivenessOnCrampedBoard(t *testing.T) {
	// Leave only the diagonal empty: no line ever completes while filling,
	// and afterwards nothing larger than a single cell fits anywhere.
	// Whatever the draw, some offer must still fit, which forces either a
	// resample hit or the single-cell fallback.
	board := NewBoard(5)
	single := blockWith(t, ShapeSingle, 1, 1)
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if row == col {
				continue
			}
			_, err := board.Commit(single, coord(t, row, col, 5))
			require.NoError(t, err)
		}
	}
	require.Equal(t, 20, board.FilledCount())

	for seed := int64(0); seed < 10; seed++ {
		tray := newTestTray(t, board, DefaultTrayRules(), seed)
		assert.True(t, tray.anyPlaceable(tray.Slots()), "seed %d", seed)
	}
}

func TestTrayConsume(t *testing.T) {
	board := NewBoard(8)
	tray := newTestTray(t, board, DefaultTrayRules(), 1)

	before := tray.Slots()
	refilled, err := tray.Consume(1)
	require.NoError(t, err)
	assert.False(t, refilled)

	after := tray.Slots()
	assert.Nil(t, after[1])
	assert.Same(t, before[0], after[0], "other slots must not be touched")
	assert.Same(t, before[2], after[2], "other slots must not be touched")

	// A consumed slot stays empty; no individual refill.
	_, err = tray.Consume(1)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestTrayConsumeOutOfRange(t *testing.T) {
	board := NewBoard(8)
	tray := newTestTray(t, board, DefaultTrayRules(), 1)

	_, err := tray.Consume(-1)
	assert.ErrorIs(t, err, ErrInvalidSlot)
	_, err = tray.Consume(3)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestTrayRefillsOnlyWhenAllEmpty(t *testing.T) {
	board := NewBoard(8)
	tray := newTestTray(t, board, DefaultTrayRules(), 2)

	refilled, err := tray.Consume(0)
	require.NoError(t, err)
	assert.False(t, refilled)

	refilled, err = tray.Consume(2)
	require.NoError(t, err)
	assert.False(t, refilled)

	refilled, err = tray.Consume(1)
	require.NoError(t, err)
	assert.True(t, refilled, "emptying the last slot triggers refill")

	for i, block := range tray.Slots() {
		assert.NotNil(t, block, "slot %d after refill", i)
	}
}

func TestTrayBlockProbing(t *testing.T) {
	board := NewBoard(8)
	tray := newTestTray(t, board, DefaultTrayRules(), 3)

	// Out-of-range probes are empty results, not failures.
	assert.Nil(t, tray.Block(-1))
	assert.Nil(t, tray.Block(99))
	assert.NotNil(t, tray.Block(0))

	_, err := tray.Consume(0)
	require.NoError(t, err)
	assert.Nil(t, tray.Block(0))
}

func TestTrayResetBypassesTrigger(t *testing.T) {
	board := NewBoard(8)
	tray := newTestTray(t, board, DefaultTrayRules(), 4)

	_, err := tray.Consume(0)
	require.NoError(t, err)
	require.Nil(t, tray.Block(0))

	tray.Reset()
	for i, block := range tray.Slots() {
		assert.NotNil(t, block, "slot %d after reset", i)
	}
}

func TestTrayHonorsCellRange(t *testing.T) {
	board := NewBoard(8)
	rules := TrayRules{Slots: 3, MinCells: 4, MaxCells: 5, Weight: 1.0}
	for seed := int64(0); seed < 10; seed++ {
		tray := newTestTray(t, board, rules, seed)
		for _, block := range tray.Slots() {
			require.NotNil(t, block)
			assert.GreaterOrEqual(t, block.CellCount(), 4)
			assert.LessOrEqual(t, block.CellCount(), 5)
		}
	}
}

func TestTrayNarrowPoolStaysDistinct(t *testing.T) {
	// MinCells 9 leaves square3 as the only eligible archetype, so the two
	// surplus slots must relax the cell bounds rather than repeat it.
	board := NewBoard(8)
	rules := TrayRules{Slots: 3, MinCells: 9, MaxCells: 9, Weight: 1.0}
	for seed := int64(0); seed < 20; seed++ {
		tray := newTestTray(t, board, rules, seed)
		seen := make(map[ArchetypeID]bool)
		for i, block := range tray.Slots() {
			require.NotNil(t, block, "seed %d slot %d empty after refill", seed, i)
			assert.False(t, seen[block.Archetype()], "seed %d duplicates %s", seed, block.Archetype())
			seen[block.Archetype()] = true
		}
		assert.True(t, seen[ShapeSquare3], "seed %d never offered the one eligible archetype", seed)
	}
}

func TestTraySlotsReturnsCopy(t *testing.T) {
	board := NewBoard(8)
	tray := newTestTray(t, board, DefaultTrayRules(), 5)

	slots := tray.Slots()
	slots[0] = nil
	assert.NotNil(t, tray.Block(0))
}
