package core

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
)

// SessionListener receives the engine's mutation events. The rendering,
// scoring and persistence collaborators subscribe here; the session holds
// no reference to any view.
type SessionListener interface {
	// Placed fires after every successful commit.
	Placed(result PlacementResult, anchor Coord)
	// TrayRefilled fires when the tray regenerated a full set of offers.
	TrayRefilled(slots []*Block)
	// GameOver fires once when no offered block has any valid placement.
	GameOver(score int)
}

// NopSessionListener ignores all events.
type NopSessionListener struct{}

func (NopSessionListener) Placed(PlacementResult, Coord) {}
func (NopSessionListener) TrayRefilled([]*Block)         {}
func (NopSessionListener) GameOver(int)                  {}

// SessionConfig carries the constructor-supplied collaborators.
// Zero values fall back to defaults.
type SessionConfig struct {
	BoardSize int
	Rules     TrayRules
	Seed      int64

	Policy    ScorePolicy
	Listener  SessionListener
	Observer  DragObserver
	Hints     MotionHints
	Scheduler Scheduler
	Logger    *log.Logger
}

// Session owns one game's board, tray and drag controller and wires the
// consume-refill-score cycle around commits. Single-threaded by contract:
// exactly one drag session and one board mutation in flight at a time.
type Session struct {
	board    *Board
	tray     *Tray
	drag     *Drag
	rng      *rand.Rand
	policy   ScorePolicy
	listener SessionListener

	score    int
	gameOver bool
}

// NewSession creates a session with an empty board and a full tray.
func NewSession(cfg SessionConfig) *Session {
	if cfg.BoardSize < 1 {
		cfg.BoardSize = 8
	}
	if cfg.Rules.Slots < 1 {
		cfg.Rules = DefaultTrayRules()
	}
	if cfg.Policy == nil {
		cfg.Policy = DefaultScorePolicy{}
	}
	if cfg.Listener == nil {
		cfg.Listener = NopSessionListener{}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	board := NewBoard(cfg.BoardSize)
	return &Session{
		board:    board,
		tray:     NewTray(board, cfg.Rules, rng),
		drag:     NewDrag(cfg.Observer, cfg.Hints, cfg.Scheduler, cfg.Logger),
		rng:      rng,
		policy:   cfg.Policy,
		listener: cfg.Listener,
	}
}

// Board exposes the grid for placement previews and snapshots.
func (s *Session) Board() *Board {
	return s.board
}

// Tray exposes the dispenser for offer snapshots.
func (s *Session) Tray() *Tray {
	return s.tray
}

// Drag exposes the drag controller.
func (s *Session) Drag() *Drag {
	return s.drag
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	return s.score
}

// IsGameOver reports whether no offered block fits anywhere.
func (s *Session) IsGameOver() bool {
	return s.gameOver
}

// PlaceFromSlot commits the offer in the given slot at the anchor, then
// consumes the slot, applies the score policy and re-evaluates game over.
// The board is untouched on any failure.
func (s *Session) PlaceFromSlot(slot int, anchor Coord) (PlacementResult, error) {
	block := s.tray.Block(slot)
	if block == nil {
		return PlacementResult{}, fmt.Errorf("%w: no block in slot %d", ErrInvalidSlot, slot)
	}

	result, err := s.board.Commit(block, anchor)
	if err != nil {
		return PlacementResult{}, err
	}

	// The slot was just verified occupied; Consume cannot fail here.
	refilled, _ := s.tray.Consume(slot)

	s.score += s.policy.Score(result, s.board.Size())
	s.listener.Placed(result, anchor)
	if refilled {
		s.listener.TrayRefilled(s.tray.Slots())
	}

	s.checkGameOver()
	return result, nil
}

// Restart resets board, tray, drag and score for a fresh game.
func (s *Session) Restart() {
	s.drag.Reset()
	s.board.Reset()
	s.tray.Reset()
	s.score = 0
	s.gameOver = false
}

// checkGameOver marks the session over when no occupied slot's block has
// any valid placement. Empty slots are skipped; an empty tray refills
// before this runs, so at least one offer always exists.
func (s *Session) checkGameOver() {
	if s.gameOver {
		return
	}
	for _, block := range s.tray.Slots() {
		if block != nil && s.board.HasAnyValidPlacement(block) {
			return
		}
	}
	s.gameOver = true
	s.listener.GameOver(s.score)
}
