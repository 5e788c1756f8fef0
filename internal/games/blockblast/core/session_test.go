package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionRecorder captures session events.
type sessionRecorder struct {
	placements []PlacementResult
	refills    int
	gameOvers  int
	finalScore int
}

func (r *sessionRecorder) Placed(result PlacementResult, anchor Coord) {
	r.placements = append(r.placements, result)
}

func (r *sessionRecorder) TrayRefilled(slots []*Block) {
	r.refills++
}

func (r *sessionRecorder) GameOver(score int) {
	r.gameOvers++
	r.finalScore = score
}

func TestSessionPlaceFromSlot(t *testing.T) {
	rec := &sessionRecorder{}
	s := NewSession(SessionConfig{BoardSize: 8, Seed: 7, Listener: rec})

	block := s.Tray().Block(0)
	require.NotNil(t, block)
	anchor := coord(t, 0, 0, 8)
	require.True(t, s.Board().CanPlace(block, anchor))

	result, err := s.PlaceFromSlot(0, anchor)
	require.NoError(t, err)

	assert.Equal(t, block.CellCount(), result.CellsPlaced)
	assert.Nil(t, s.Tray().Block(0), "slot consumed")
	assert.Equal(t, DefaultScorePolicy{}.Score(result, 8), s.Score())
	require.Len(t, rec.placements, 1)
}

func TestSessionPlaceFromEmptySlot(t *testing.T) {
	s := NewSession(SessionConfig{BoardSize: 8, Seed: 7})
	anchor := coord(t, 0, 0, 8)

	block := s.Tray().Block(1)
	require.NotNil(t, block)
	require.True(t, s.Board().CanPlace(block, anchor))
	_, err := s.PlaceFromSlot(1, anchor)
	require.NoError(t, err)

	_, err = s.PlaceFromSlot(1, coord(t, 0, 0, 8))
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, err = s.PlaceFromSlot(99, coord(t, 0, 0, 8))
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestSessionInvalidPlacementLeavesStateAlone(t *testing.T) {
	s := NewSession(SessionConfig{BoardSize: 8, Seed: 3})

	block := s.Tray().Block(0)
	require.NotNil(t, block)
	anchor := coord(t, 0, 0, 8)
	require.True(t, s.Board().CanPlace(block, anchor))

	_, err := s.PlaceFromSlot(0, anchor)
	require.NoError(t, err)
	scoreAfter := s.Score()
	filled := s.Board().FilledCount()

	// Slot 1's block dropped on the same spot cannot fit in full.
	next := s.Tray().Block(1)
	require.NotNil(t, next)
	if !s.Board().CanPlace(next, anchor) {
		_, err = s.PlaceFromSlot(1, anchor)
		assert.ErrorIs(t, err, ErrInvalidPlacement)
		assert.Equal(t, scoreAfter, s.Score())
		assert.Equal(t, filled, s.Board().FilledCount())
		assert.NotNil(t, s.Tray().Block(1), "slot must not be consumed on failure")
	}
}

func TestSessionTrayRefillEvent(t *testing.T) {
	rec := &sessionRecorder{}
	// Single-slot tray: every successful placement exhausts it.
	s := NewSession(SessionConfig{
		BoardSize: 8,
		Seed:      11,
		Rules:     TrayRules{Slots: 1, MinCells: 1, MaxCells: 4, Weight: 1.0},
		Listener:  rec,
	})

	block := s.Tray().Block(0)
	require.NotNil(t, block)
	_, err := s.PlaceFromSlot(0, coord(t, 2, 2, 8))
	require.NoError(t, err)

	assert.Equal(t, 1, rec.refills)
	assert.NotNil(t, s.Tray().Block(0), "tray refilled after exhaustion")
}

func TestSessionGameOver(t *testing.T) {
	rec := &sessionRecorder{}
	// Restricting the catalog to the 3x3 square leaves a one-archetype
	// pool, so the two-slot draw pads with the single cell: the tray is
	// deterministically [square3, single].
	s := NewSession(SessionConfig{
		BoardSize: 4,
		Seed:      5,
		Rules:     TrayRules{Slots: 2, MinCells: 9, MaxCells: 9, Weight: 1.0},
		Listener:  rec,
	})

	require.NotNil(t, s.Tray().Block(0))
	require.Equal(t, ShapeSquare3, s.Tray().Block(0).Archetype())
	require.NotNil(t, s.Tray().Block(1))
	require.Equal(t, ShapeSingle, s.Tray().Block(1).Archetype())

	// Fill everything except a staircase of paired holes. Every row and
	// column keeps two empty cells, so no commit along the way clears a
	// line, and no 3x3 region stays free.
	holes := map[[2]int]bool{
		{0, 0}: true, {0, 1}: true,
		{1, 1}: true, {1, 2}: true,
		{2, 2}: true, {2, 3}: true,
		{3, 3}: true, {3, 0}: true,
	}
	filler := blockWith(t, ShapeSingle, 1, 1)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if holes[[2]int{row, col}] {
				continue
			}
			_, err := s.Board().Commit(filler, coord(t, row, col, 4))
			require.NoError(t, err)
		}
	}

	// Placing the offered single leaves the square with nowhere to go.
	result, err := s.PlaceFromSlot(1, coord(t, 0, 0, 4))
	require.NoError(t, err)
	assert.Zero(t, result.Lines())

	assert.True(t, s.IsGameOver())
	assert.Equal(t, 1, rec.gameOvers)
	assert.Equal(t, s.Score(), rec.finalScore)
}

func TestSessionRestart(t *testing.T) {
	s := NewSession(SessionConfig{BoardSize: 8, Seed: 13})

	block := s.Tray().Block(0)
	require.NotNil(t, block)
	_, err := s.PlaceFromSlot(0, coord(t, 0, 0, 8))
	require.NoError(t, err)
	require.NotZero(t, s.Score())

	s.Restart()

	assert.Zero(t, s.Score())
	assert.False(t, s.IsGameOver())
	assert.Equal(t, 0, s.Board().FilledCount())
	for i, b := range s.Tray().Slots() {
		assert.NotNil(t, b, "slot %d after restart", i)
	}
	assert.Equal(t, DragIdle, s.Drag().Phase())
}

func TestSessionSnapshot(t *testing.T) {
	s := NewSession(SessionConfig{BoardSize: 8, Seed: 17})

	block := s.Tray().Block(2)
	require.NotNil(t, block)
	_, err := s.PlaceFromSlot(2, coord(t, 0, 0, 8))
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, 8, snap.BoardSize)
	assert.Len(t, snap.Cells, 64)
	assert.Equal(t, s.Score(), snap.Score)
	require.Len(t, snap.Tray, 3)
	assert.Nil(t, snap.Tray[2], "consumed slot is empty in the snapshot")
	require.NotNil(t, snap.Tray[0])
	assert.NotEmpty(t, snap.Tray[0].Archetype)

	filled := 0
	for _, cell := range snap.Cells {
		if cell.Filled {
			filled++
		}
	}
	assert.Equal(t, s.Board().FilledCount(), filled)
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := NewSession(SessionConfig{BoardSize: 8, Seed: 4242})
		anchors := [][2]int{{0, 0}, {5, 5}, {2, 4}}
		for slot := 0; slot < 3; slot++ {
			block := s.Tray().Block(slot)
			if block == nil {
				continue
			}
			a := coord(t, anchors[slot][0], anchors[slot][1], 8)
			if s.Board().CanPlace(block, a) {
				_, err := s.PlaceFromSlot(slot, a)
				require.NoError(t, err)
			}
		}
		return s.Snapshot()
	}

	first := run()
	second := run()

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Cells, second.Cells)
	require.Equal(t, len(first.Tray), len(second.Tray))
	for i := range first.Tray {
		if first.Tray[i] == nil {
			assert.Nil(t, second.Tray[i])
			continue
		}
		require.NotNil(t, second.Tray[i])
		assert.Equal(t, first.Tray[i].Archetype, second.Tray[i].Archetype)
	}
}
