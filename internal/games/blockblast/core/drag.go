package core

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Vec is a 2D vector in continuous screen space, used for pointer
// locations and the finger-to-block offset alike. The drag controller is
// the only part of the engine that reasons in floats; the board never
// sees one.
type Vec struct {
	X, Y float64
}

// Sub returns the component-wise difference of two vectors.
func (v Vec) Sub(other Vec) Vec {
	return Vec{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// DragPhase is the externally visible state of the drag controller.
type DragPhase int

const (
	// DragIdle means no session exists and Start is accepted.
	DragIdle DragPhase = iota
	// DragActive means a session is in flight.
	DragActive
	// DragResetting means a cancel animation is pending; the session is
	// logically still resetting and Start must be rejected until the
	// scheduled reset fires.
	DragResetting
)

// DragObserver receives drag notifications for the rendering and preview
// collaborators. The controller holds no view references; this contract is
// the whole boundary.
type DragObserver interface {
	// DragChanged fires on every pointer move while a session is active.
	DragChanged(slot int, block *Block, touch Vec)
	// DragEnded fires once when the pointer is released. The receiver owns
	// translating the final touch into a grid anchor and committing.
	DragEnded(slot int, block *Block, touch Vec)
	// DragCancelled requests a return-to-tray animation of the given
	// duration. The controller resets itself after that duration elapses.
	DragCancelled(slot int, block *Block, duration time.Duration)
}

// NopDragObserver ignores all notifications.
type NopDragObserver struct{}

func (NopDragObserver) DragChanged(int, *Block, Vec)             {}
func (NopDragObserver) DragEnded(int, *Block, Vec)               {}
func (NopDragObserver) DragCancelled(int, *Block, time.Duration) {}

// Drag converts a pointer press/move/release stream plus a remembered
// finger-to-block-origin offset into block origin positions. At most one
// session exists at a time; transitions attempted from the wrong state are
// warning-level no-ops because the upstream pointer source cannot
// guarantee strict ordering.
type Drag struct {
	phase        DragPhase
	slot         int
	block        *Block
	touch        Vec
	fingerOffset Vec     // Captured once at Start, never recomputed
	trayCellSize float64 // Cell size of the tray rendering at Start

	observer    DragObserver
	hints       MotionHints
	sched       Scheduler
	logger      *log.Logger
	cancelReset func()
}

// NewDrag creates an idle drag controller. A nil observer, hints,
// scheduler or logger falls back to no-op/real-time defaults.
func NewDrag(observer DragObserver, hints MotionHints, sched Scheduler, logger *log.Logger) *Drag {
	if observer == nil {
		observer = NopDragObserver{}
	}
	if hints == nil {
		hints = StaticHints{}
	}
	if sched == nil {
		sched = TimerScheduler{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Drag{
		phase:    DragIdle,
		slot:     -1,
		observer: observer,
		hints:    hints,
		sched:    sched,
		logger:   logger,
	}
}

// Phase returns the current controller state.
func (d *Drag) Phase() DragPhase {
	return d.phase
}

// IsDragging reports whether the given slot's block is the active session.
func (d *Drag) IsDragging(slot int) bool {
	return d.phase == DragActive && d.slot == slot
}

// Slot returns the active slot index, or -1 outside a session.
func (d *Drag) Slot() int {
	return d.slot
}

// Block returns the block being dragged, or nil outside a session.
func (d *Drag) Block() *Block {
	return d.block
}

// Touch returns the last seen pointer location.
func (d *Drag) Touch() Vec {
	return d.touch
}

// Start begins a session. It captures fingerOffset = touch - blockOrigin,
// the invariant the whole interaction preserves: the visual block always
// sits at currentTouch - fingerOffset no matter how erratically the
// pointer moves. trayCellSize is remembered for later offset rescaling.
// A no-op unless the controller is idle.
func (d *Drag) Start(slot int, block *Block, touch, blockOrigin Vec, trayCellSize float64) {
	if d.phase != DragIdle {
		d.logger.Warn("drag start ignored", "phase", d.phase, "slot", slot)
		return
	}
	if block == nil {
		d.logger.Warn("drag start ignored: nil block", "slot", slot)
		return
	}
	d.phase = DragActive
	d.slot = slot
	d.block = block
	d.touch = touch
	d.fingerOffset = touch.Sub(blockOrigin)
	d.trayCellSize = trayCellSize
}

// Update repositions the active session. No state transition; emits a
// drag-changed notification. A no-op when idle.
func (d *Drag) Update(touch Vec) {
	if d.phase != DragActive {
		d.logger.Warn("drag update ignored", "phase", d.phase)
		return
	}
	d.touch = touch
	d.observer.DragChanged(d.slot, d.block, touch)
}

// End finishes the session: updates the pointer, emits drag-ended, then
// unconditionally resets to idle. The caller translates the final touch
// into a grid anchor and commits; any snap-back after a failed commit is
// the caller's to arrange, the session is already gone.
func (d *Drag) End(touch Vec) {
	if d.phase != DragActive {
		d.logger.Warn("drag end ignored", "phase", d.phase)
		return
	}
	d.touch = touch
	d.observer.DragEnded(d.slot, d.block, touch)
	d.resetNow()
}

// Cancel requests a return-to-tray animation and schedules the
// authoritative reset for when it finishes. Until then the controller
// reports DragResetting and rejects Start: cancellation is asynchronous
// with a known, bounded delay. A no-op unless active.
func (d *Drag) Cancel() {
	if d.phase != DragActive {
		d.logger.Warn("drag cancel ignored", "phase", d.phase)
		return
	}
	d.phase = DragResetting
	duration := d.hints.ReturnDuration()
	d.observer.DragCancelled(d.slot, d.block, duration)
	d.cancelReset = d.sched.Schedule(duration, d.resetNow)
}

// Reset forces idle immediately from any state, cancelling any pending
// scheduled reset. For hard resets where the animated path is wrong.
func (d *Drag) Reset() {
	d.resetNow()
}

func (d *Drag) resetNow() {
	if d.cancelReset != nil {
		d.cancelReset()
		d.cancelReset = nil
	}
	d.phase = DragIdle
	d.slot = -1
	d.block = nil
	d.touch = Vec{}
	d.fingerOffset = Vec{}
	d.trayCellSize = 0
}

// BlockOrigin returns currentTouch - fingerOffset, the position the
// block's visual top-left should render at.
func (d *Drag) BlockOrigin() Vec {
	return d.touch.Sub(d.fingerOffset)
}

// ScaledFingerOffset rescales the captured offset for a rendering whose
// cell size differs from the tray's (the grid preview is usually larger).
// Returns the offset unscaled when either cell size is non-positive.
func (d *Drag) ScaledFingerOffset(targetCellSize float64) Vec {
	if targetCellSize <= 0 || d.trayCellSize <= 0 {
		return d.fingerOffset
	}
	return d.fingerOffset.Scale(targetCellSize / d.trayCellSize)
}
