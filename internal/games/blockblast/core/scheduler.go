package core

import (
	"sort"
	"time"
)

// Scheduler defers a task by a duration and hands back a cancel handle.
// The drag controller uses it for the cancel-animation reset so tests can
// advance virtual time instead of sleeping.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler runs tasks on real timers. The production scheduler.
type TimerScheduler struct{}

// Schedule fires fn after d on a one-shot timer.
func (TimerScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// ManualScheduler is a virtual-time scheduler for tests. Tasks run only
// when Advance moves the clock past their deadline.
type ManualScheduler struct {
	now   time.Duration
	tasks []*manualTask
}

type manualTask struct {
	at        time.Duration
	fn        func()
	cancelled bool
}

// NewManualScheduler creates a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule registers fn to run when the virtual clock reaches now+d.
func (s *ManualScheduler) Schedule(d time.Duration, fn func()) func() {
	task := &manualTask{at: s.now + d, fn: fn}
	s.tasks = append(s.tasks, task)
	return func() { task.cancelled = true }
}

// Advance moves the virtual clock forward and runs every due task in
// deadline order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.now += d

	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].at < s.tasks[j].at
	})

	remaining := s.tasks[:0]
	for _, task := range s.tasks {
		if task.cancelled {
			continue
		}
		if task.at <= s.now {
			task.fn()
			continue
		}
		remaining = append(remaining, task)
	}
	s.tasks = remaining
}

// Pending returns the number of scheduled, uncancelled tasks.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, task := range s.tasks {
		if !task.cancelled && task.at > s.now {
			n++
		}
	}
	return n
}

// MotionHints supplies animation timing derived from display capability.
// The engine consumes it only for the cancel-drag return animation.
type MotionHints interface {
	// ReturnDuration is how long the return-to-tray animation runs before
	// the drag session resets.
	ReturnDuration() time.Duration
}

// StaticHints is a fixed-capability MotionHints: faster easing on
// high-refresh displays, slower otherwise.
type StaticHints struct {
	HighRefresh bool
}

// ReturnDuration implements MotionHints.
func (h StaticHints) ReturnDuration() time.Duration {
	if h.HighRefresh {
		return 160 * time.Millisecond
	}
	return 280 * time.Millisecond
}
