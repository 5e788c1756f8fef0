// Package blockblast provides the block puzzle game modes for the platform.
// It adapts the pure engine in blockblast/core to the registry.Game
// contract: keyboard cursor placement through the tick loop, and direct
// drag placement through the pointer stream.
package blockblast

import (
	"strconv"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
	platformcore "github.com/vovakirdan/tui-blocks/internal/core"
	blocks "github.com/vovakirdan/tui-blocks/internal/games/blockblast/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

const (
	cellW    = 2 // Each board cell is 2 chars wide
	cellH    = 1 // Each board cell is 1 line tall
	slotW    = 12
	trayRows = 5 // Tallest offered pattern is a vertical line of 5
)

// Game implements a block puzzle mode on top of the engine session.
type Game struct {
	modeID string
	title  string
	// fixedSize pins the board dimension for this mode; 0 follows config.
	fixedSize int

	cfg     config.BlocksConfig
	session *blocks.Session
	sched   *blocks.ManualScheduler
	tickDur time.Duration

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	// Status
	tick        uint64
	paused      bool
	lines       int
	pieces      int
	statusMsg   string
	statusUntil uint64

	// Keyboard placement state
	cursorRow int
	cursorCol int
	selected  int

	// Calculated layout
	boardX int
	boardY int
	trayX  int
	trayY  int
}

// Package-level variables for configuration
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

func init() {
	registry.Register("classic", func() registry.Game {
		return New("classic", "Blocks Classic", 0)
	})
	registry.Register("grand", func() registry.Game {
		return New("grand", "Blocks Grand", 10)
	})
}

// New creates a game mode. A fixedSize of 0 takes the board dimension
// from the loaded config.
func New(modeID, title string, fixedSize int) *Game {
	return &Game{
		modeID:    modeID,
		title:     title,
		fixedSize: fixedSize,
	}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.modeID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	cfg, err := config.LoadBlocks(configPath)
	if err != nil {
		cfg = config.DefaultBlocksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = cfg

	size := cfg.Board.Size
	if g.fixedSize > 0 {
		size = g.fixedSize
	}

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickDur = time.Second / time.Duration(tickRate)

	g.sched = blocks.NewManualScheduler()
	g.session = blocks.NewSession(blocks.SessionConfig{
		BoardSize: size,
		Rules: blocks.TrayRules{
			Slots:    cfg.Tray.Slots,
			MinCells: cfg.Tray.MinCells,
			MaxCells: cfg.Tray.MaxCells,
			Weight:   cfg.Tray.ComplexityWeight,
		},
		Seed:      rc.Seed,
		Listener:  g,
		Observer:  g,
		Hints:     blocks.StaticHints{HighRefresh: cfg.Motion.HighRefresh},
		Scheduler: g.sched,
	})

	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tick = 0
	g.paused = false
	g.lines = 0
	g.pieces = 0
	g.statusMsg = ""
	g.cursorRow = 0
	g.cursorCol = 0
	g.selected = 0

	g.calculateLayout()
}

// calculateLayout centers the board and the tray row below it.
func (g *Game) calculateLayout() {
	size := g.session.Board().Size()
	boardW := size * cellW
	slots := len(g.session.Tray().Slots())
	trayW := slots * slotW

	neededW := boardW + 4
	if trayW+4 > neededW {
		neededW = trayW + 4
	}
	neededH := hudHeight + 1 + size*cellH + 1 + trayRows + 1

	if g.screenW < neededW || g.screenH < neededH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.boardX = (g.screenW - boardW) / 2
	g.boardY = hudHeight + 1
	g.trayX = (g.screenW - trayW) / 2
	g.trayY = g.boardY + size*cellH + 1
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	// Deferred drag-return timers run on the tick clock.
	g.sched.Advance(g.tickDur)

	if input.Has(platformcore.ActionRestart) && g.session.IsGameOver() {
		g.session.Restart()
		g.lines = 0
		g.pieces = 0
		g.statusMsg = ""
		g.cursorRow = 0
		g.cursorCol = 0
		g.selected = 0
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.session.IsGameOver() || g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Slot selection
	if input.Has(platformcore.ActionSlot1) {
		g.selectSlot(0)
	}
	if input.Has(platformcore.ActionSlot2) {
		g.selectSlot(1)
	}
	if input.Has(platformcore.ActionSlot3) {
		g.selectSlot(2)
	}
	if input.Has(platformcore.ActionCycle) {
		g.cycleSlot()
	}

	// Cursor movement
	if input.Has(platformcore.ActionUp) {
		g.cursorRow--
	}
	if input.Has(platformcore.ActionDown) {
		g.cursorRow++
	}
	if input.Has(platformcore.ActionLeft) {
		g.cursorCol--
	}
	if input.Has(platformcore.ActionRight) {
		g.cursorCol++
	}
	g.clampCursor()

	// Place the selected block at the cursor
	if input.Has(platformcore.ActionConfirm) {
		g.placeAtCursor()
	}

	return platformcore.StepResult{State: g.State()}
}

// selectSlot moves selection to an occupied slot.
func (g *Game) selectSlot(slot int) {
	if g.session.Tray().Block(slot) != nil {
		g.selected = slot
		g.clampCursor()
	}
}

// cycleSlot advances selection to the next occupied slot.
func (g *Game) cycleSlot() {
	slots := g.session.Tray().Slots()
	for i := 1; i <= len(slots); i++ {
		next := (g.selected + i) % len(slots)
		if slots[next] != nil {
			g.selected = next
			g.clampCursor()
			return
		}
	}
}

// clampCursor keeps the cursor within positions where the selected block
// stays on the board.
func (g *Game) clampCursor() {
	size := g.session.Board().Size()
	maxRow := size - 1
	maxCol := size - 1
	if block := g.session.Tray().Block(g.selected); block != nil {
		maxRow = size - block.Height()
		maxCol = size - block.Width()
	}
	g.cursorRow = platformcore.Clamp(g.cursorRow, 0, maxRow)
	g.cursorCol = platformcore.Clamp(g.cursorCol, 0, maxCol)
}

// placeAtCursor commits the selected block at the keyboard cursor.
func (g *Game) placeAtCursor() {
	size := g.session.Board().Size()
	anchor, err := blocks.NewCoord(g.cursorRow, g.cursorCol, size)
	if err != nil {
		return
	}
	if _, err := g.session.PlaceFromSlot(g.selected, anchor); err != nil {
		g.flash("No room there")
		return
	}
	if g.session.Tray().Block(g.selected) == nil {
		g.cycleSlot()
	}
}

// Pointer handles mouse press, move, and release for direct drag placement.
func (g *Game) Pointer(ev platformcore.PointerEvent) {
	if g.tooSmall {
		return
	}
	drag := g.session.Drag()

	if g.session.IsGameOver() || g.paused {
		drag.Reset()
		return
	}

	pos := blocks.Vec{X: ev.Pos.X, Y: ev.Pos.Y}

	switch ev.Phase {
	case platformcore.PointerPress:
		slot, origin := g.hitTray(ev.Pos)
		if slot < 0 {
			return
		}
		block := g.session.Tray().Block(slot)
		if block == nil {
			return
		}
		g.selected = slot
		g.clampCursor()
		drag.Start(slot, block, pos, origin, float64(cellW))

	case platformcore.PointerMove:
		if drag.Phase() == blocks.DragActive {
			drag.Update(pos)
		}

	case platformcore.PointerRelease:
		if drag.Phase() != blocks.DragActive {
			return
		}
		slot := drag.Slot()
		anchor, ok := g.dropAnchor(drag)
		if !ok || !g.session.Board().CanPlace(drag.Block(), anchor) {
			drag.Cancel()
			return
		}
		drag.End(pos)
		if _, err := g.session.PlaceFromSlot(slot, anchor); err != nil {
			g.flash("No room there")
		}
	}
}

// hitTray returns the slot under the given position and the slot's block
// origin in screen coordinates, or -1 if the position misses every slot.
func (g *Game) hitTray(pos platformcore.Vec) (int, blocks.Vec) {
	slots := g.session.Tray().Slots()
	for i, block := range slots {
		if block == nil {
			continue
		}
		x0 := float64(g.trayX + i*slotW)
		y0 := float64(g.trayY)
		x1 := x0 + float64(block.Width()*cellW)
		y1 := y0 + float64(block.Height()*cellH)
		if pos.X >= x0 && pos.X < x1 && pos.Y >= y0 && pos.Y < y1 {
			return i, blocks.Vec{X: x0, Y: y0}
		}
	}
	return -1, blocks.Vec{}
}

// dropAnchor converts the dragged block's visual origin to the nearest
// board cell.
func (g *Game) dropAnchor(drag *blocks.Drag) (blocks.Coord, bool) {
	origin := drag.BlockOrigin()
	size := g.session.Board().Size()

	col := int((origin.X-float64(g.boardX))/float64(cellW) + 0.5)
	row := int((origin.Y-float64(g.boardY))/float64(cellH) + 0.5)

	anchor, err := blocks.NewCoord(row, col, size)
	if err != nil {
		return blocks.Coord{}, false
	}
	return anchor, true
}

// flash shows a transient status message for about a second.
func (g *Game) flash(msg string) {
	g.statusMsg = msg
	g.statusUntil = g.tick + 60
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.IsGameOver(),
		Paused:   g.paused,
	}
}

// RunStats reports totals for the current run, used by score persistence.
func (g *Game) RunStats() (lines, pieces int) {
	return g.lines, g.pieces
}

// Placed implements blocks.SessionListener.
func (g *Game) Placed(result blocks.PlacementResult, anchor blocks.Coord) {
	g.pieces++
	if n := result.Lines(); n > 0 {
		g.lines += n
		if n == 1 {
			g.flash("Line clear!")
		} else {
			g.flash(strconv.Itoa(n) + " lines!")
		}
	}
}

// TrayRefilled implements blocks.SessionListener.
func (g *Game) TrayRefilled(slots []*blocks.Block) {
	for i, block := range slots {
		if block != nil {
			g.selected = i
			break
		}
	}
	g.clampCursor()
}

// GameOver implements blocks.SessionListener.
func (g *Game) GameOver(score int) {}

// DragChanged implements blocks.DragObserver.
func (g *Game) DragChanged(slot int, block *blocks.Block, touch blocks.Vec) {}

// DragEnded implements blocks.DragObserver.
func (g *Game) DragEnded(slot int, block *blocks.Block, touch blocks.Vec) {}

// DragCancelled implements blocks.DragObserver.
func (g *Game) DragCancelled(slot int, block *blocks.Block, duration time.Duration) {
	g.flash("Returned to tray")
}
