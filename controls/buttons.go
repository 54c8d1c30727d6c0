package controls

import "github.com/rjuang/rum/scheduler"

// PressHandler is invoked with no arguments when a button press resolves to
// either a short press or a long press.
type PressHandler func()

// SimpleButton layers long-press detection on top of scheduler.Scheduler:
// on Down it schedules a long-press thunk after threshold; on Up, if the
// scheduler can still cancel that thunk, the release was short (fires
// onShort); otherwise the long-press thunk already fired (onLong already
// ran, onShort does not also fire).
type SimpleButton struct {
	sched       *scheduler.Scheduler
	thresholdMs int64
	onShort     PressHandler
	onLong      PressHandler
	pendingLong scheduler.Handle
	hasPending  bool
}

// NewSimpleButton creates a SimpleButton whose long-press fires after
// thresholdMs of being held.
func NewSimpleButton(sched *scheduler.Scheduler, thresholdMs int64, onShort, onLong PressHandler) *SimpleButton {
	return &SimpleButton{sched: sched, thresholdMs: thresholdMs, onShort: onShort, onLong: onLong}
}

// Down schedules the long-press detection window.
func (b *SimpleButton) Down() {
	b.pendingLong = b.sched.Schedule(func() {
		b.hasPending = false
		if b.onLong != nil {
			b.onLong()
		}
	}, b.thresholdMs)
	b.hasPending = true
}

// Up resolves the press: if the long-press thunk can still be canceled, the
// release was short.
func (b *SimpleButton) Up() {
	if !b.hasPending {
		return
	}
	if b.sched.Cancel(b.pendingLong) {
		b.hasPending = false
		if b.onShort != nil {
			b.onShort()
		}
	}
	// If Cancel returned false, the long-press thunk already ran and
	// already cleared hasPending; onShort must not also fire.
}

// IterableState is a forward/backward cyclic state used by ToggleStateButton
// (added from original_source/rum/states.py; the distillation at spec.md
// §4.5 mentions it only in passing as "an optional secondary state").
type IterableState struct {
	values  []string
	index   int
	reverse bool
}

// NewIterableState creates an IterableState cycling through values in the
// given direction.
func NewIterableState(values []string, reverse bool) *IterableState {
	if len(values) == 0 {
		panic("controls: IterableState requires at least one value")
	}
	return &IterableState{values: values, reverse: reverse}
}

// Current returns the current value.
func (s *IterableState) Current() string {
	return s.values[s.index]
}

// Advance moves to the next value (wrapping), in the configured direction,
// and returns the new current value.
func (s *IterableState) Advance() string {
	n := len(s.values)
	if s.reverse {
		s.index = (s.index - 1 + n) % n
	} else {
		s.index = (s.index + 1) % n
	}
	return s.Current()
}

// ToggleStateButton layers an IterableState on top of SimpleButton:
// short-press advances the primary state; long-press, if a secondary state
// was given, advances it instead.
type ToggleStateButton struct {
	*SimpleButton
	Primary   *IterableState
	Secondary *IterableState
}

// NewToggleStateButton creates a ToggleStateButton. secondary may be nil, in
// which case long-press is a no-op and onLongExtra is not called.
func NewToggleStateButton(sched *scheduler.Scheduler, thresholdMs int64, primary, secondary *IterableState, onShort, onLongExtra func(newValue string)) *ToggleStateButton {
	t := &ToggleStateButton{Primary: primary, Secondary: secondary}
	t.SimpleButton = NewSimpleButton(sched, thresholdMs,
		func() {
			v := primary.Advance()
			if onShort != nil {
				onShort(v)
			}
		},
		func() {
			if secondary == nil {
				return
			}
			v := secondary.Advance()
			if onLongExtra != nil {
				onLongExtra(v)
			}
		},
	)
	return t
}
