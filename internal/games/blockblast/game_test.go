package blockblast

import (
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/core"
	blocks "github.com/vovakirdan/tui-blocks/internal/games/blockblast/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and input sequence must produce identical sessions
	cfg := testConfig(12345)

	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%17 == 0:
			inputSequence[i].Set(core.ActionCycle)
		case i%7 == 0:
			inputSequence[i].Set(core.ActionRight)
		case i%5 == 0:
			inputSequence[i].Set(core.ActionDown)
		case i%11 == 0:
			inputSequence[i].Set(core.ActionConfirm)
		}
	}

	run := func() blocks.Snapshot {
		g := New("classic", "Blocks Classic", 0)
		g.Reset(cfg)
		for _, in := range inputSequence {
			result := g.Step(in)
			if result.State.GameOver {
				break
			}
		}
		return g.session.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if len(snap1.Cells) != len(snap2.Cells) {
		t.Fatalf("Determinism failed: board sizes differ")
	}
	for i := range snap1.Cells {
		if snap1.Cells[i] != snap2.Cells[i] {
			t.Fatalf("Determinism failed: boards differ at cell %d", i)
		}
	}
	for i := range snap1.Tray {
		a, b := snap1.Tray[i], snap2.Tray[i]
		if (a == nil) != (b == nil) {
			t.Fatalf("Determinism failed: tray occupancy differs at slot %d", i)
		}
		if a != nil && (a.Archetype != b.Archetype || a.Color != b.Color) {
			t.Errorf("Determinism failed: tray offers differ at slot %d", i)
		}
	}
}

func TestGameReset(t *testing.T) {
	cfg := testConfig(42)

	g := New("classic", "Blocks Classic", 0)
	g.Reset(cfg)

	// Place a few blocks at the cursor
	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)

	for i := 0; i < 30; i++ {
		in := core.NewInputFrame()
		if i%2 == 0 {
			in.Set(core.ActionRight)
		} else {
			in.Set(core.ActionConfirm)
		}
		g.Step(in)
	}

	g.Reset(cfg)

	if g.session.Score() != 0 {
		t.Errorf("Reset should clear score, got %d", g.session.Score())
	}
	if g.session.Board().FilledCount() != 0 {
		t.Errorf("Reset should empty the board, got %d filled cells", g.session.Board().FilledCount())
	}
	if g.pieces != 0 || g.lines != 0 {
		t.Errorf("Reset should clear run stats, got pieces=%d lines=%d", g.pieces, g.lines)
	}
	if g.cursorRow != 0 || g.cursorCol != 0 {
		t.Errorf("Reset should home the cursor, got (%d,%d)", g.cursorRow, g.cursorCol)
	}
}

func TestGameModeSizes(t *testing.T) {
	cfg := testConfig(7)

	classic := New("classic", "Blocks Classic", 0)
	classic.Reset(cfg)
	if got := classic.session.Board().Size(); got != 8 {
		t.Errorf("classic board size = %d, want 8", got)
	}

	grand := New("grand", "Blocks Grand", 10)
	grand.Reset(cfg)
	if got := grand.session.Board().Size(); got != 10 {
		t.Errorf("grand board size = %d, want 10", got)
	}
}

func TestGameKeyboardPlacement(t *testing.T) {
	cfg := testConfig(99)

	g := New("classic", "Blocks Classic", 0)
	g.Reset(cfg)

	block := g.session.Tray().Block(g.selected)
	if block == nil {
		t.Fatal("expected an offer in the selected slot after reset")
	}
	want := block.CellCount()

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)

	if got := g.session.Board().FilledCount(); got != want {
		t.Errorf("FilledCount = %d after placing a %d-cell block at origin", got, want)
	}
	if g.pieces != 1 {
		t.Errorf("pieces = %d, want 1", g.pieces)
	}
	if g.session.Score() < want {
		t.Errorf("score = %d, want at least %d", g.session.Score(), want)
	}
}

func TestGameCursorClamped(t *testing.T) {
	cfg := testConfig(3)

	g := New("classic", "Blocks Classic", 0)
	g.Reset(cfg)

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	down := core.NewInputFrame()
	down.Set(core.ActionDown)
	for i := 0; i < 20; i++ {
		g.Step(right)
		g.Step(down)
	}

	size := g.session.Board().Size()
	block := g.session.Tray().Block(g.selected)
	if block == nil {
		t.Fatal("expected an offer in the selected slot")
	}
	if g.cursorCol+block.Width() > size || g.cursorRow+block.Height() > size {
		t.Errorf("cursor (%d,%d) lets a %dx%d block overflow the %d-board",
			g.cursorRow, g.cursorCol, block.Height(), block.Width(), size)
	}
}

func TestGamePointerDragPlacement(t *testing.T) {
	cfg := testConfig(21)

	g := New("classic", "Blocks Classic", 0)
	g.Reset(cfg)

	// Pick up the first offer from its tray slot
	block := g.session.Tray().Block(0)
	if block == nil {
		t.Fatal("expected an offer in slot 0 after reset")
	}
	touch := core.V(float64(g.trayX), float64(g.trayY))
	g.Pointer(core.PointerEvent{Phase: core.PointerPress, Pos: touch})

	if g.session.Drag().Phase() != blocks.DragActive {
		t.Fatal("press on an occupied slot should start a drag")
	}

	// Drop it with the block origin over the board origin
	drop := core.V(float64(g.boardX), float64(g.boardY))
	g.Pointer(core.PointerEvent{Phase: core.PointerMove, Pos: drop})
	g.Pointer(core.PointerEvent{Phase: core.PointerRelease, Pos: drop})

	if g.session.Drag().Phase() != blocks.DragIdle {
		t.Errorf("drag phase = %v after release, want idle", g.session.Drag().Phase())
	}
	if got := g.session.Board().FilledCount(); got != block.CellCount() {
		t.Errorf("FilledCount = %d after drop, want %d", got, block.CellCount())
	}
	if g.session.Tray().Block(0) != nil {
		t.Error("slot 0 should be consumed after a successful drop")
	}
}

func TestGamePointerDropOffBoardCancels(t *testing.T) {
	cfg := testConfig(21)

	g := New("classic", "Blocks Classic", 0)
	g.Reset(cfg)

	block := g.session.Tray().Block(0)
	if block == nil {
		t.Fatal("expected an offer in slot 0 after reset")
	}
	touch := core.V(float64(g.trayX), float64(g.trayY))
	g.Pointer(core.PointerEvent{Phase: core.PointerPress, Pos: touch})

	// Release far outside the board
	away := core.V(0, 0)
	g.Pointer(core.PointerEvent{Phase: core.PointerMove, Pos: away})
	g.Pointer(core.PointerEvent{Phase: core.PointerRelease, Pos: away})

	if g.session.Drag().Phase() != blocks.DragResetting {
		t.Errorf("drag phase = %v after bad drop, want resetting", g.session.Drag().Phase())
	}
	if g.session.Board().FilledCount() != 0 {
		t.Error("bad drop must not commit anything")
	}
	if g.session.Tray().Block(0) == nil {
		t.Error("bad drop must not consume the slot")
	}

	// The return animation finishes on the tick clock
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.session.Drag().Phase() != blocks.DragIdle {
		t.Errorf("drag phase = %v after return animation, want idle", g.session.Drag().Phase())
	}
}

func TestGameRenderSmoke(t *testing.T) {
	cfg := testConfig(5)

	g := New("classic", "Blocks Classic", 0)
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	// Board cells should be visible as either fill or grid dots
	found := false
	for y := 0; y < cfg.ScreenH && !found; y++ {
		for x := 0; x < cfg.ScreenW; x++ {
			if r := screen.Get(x, y); r == '·' || r == '█' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("rendered screen shows no board cells")
	}
}
