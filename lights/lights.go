// Package lights implements the Light abstractions of §4.5: on/off and
// colored light state with change-elision, plus blink and sequential
// animations built on package scheduler.
package lights

import "github.com/rjuang/rum/scheduler"

// BoolLight is anything that can report and set a boolean state with
// change-elision, the shape ColorToggleLight and OnOffLight both need.
type BoolLight interface {
	Get() bool
	Set(on bool, force bool)
}

// OnOffLight invokes either onFn or offFn on transitions (or always, if
// forceUpdate is passed to Set).
type OnOffLight struct {
	on    bool
	onFn  func()
	offFn func()
}

// NewOnOffLight creates an OnOffLight starting off.
func NewOnOffLight(onFn, offFn func()) *OnOffLight {
	return &OnOffLight{onFn: onFn, offFn: offFn}
}

// Get returns the current value.
func (l *OnOffLight) Get() bool { return l.on }

// Set updates the light. Writes are elided when the value is unchanged
// unless force is set.
func (l *OnOffLight) Set(on bool, force bool) {
	if on == l.on && !force {
		return
	}
	l.on = on
	if on {
		if l.onFn != nil {
			l.onFn()
		}
	} else if l.offFn != nil {
		l.offFn()
	}
}

// ColorLight holds an integer color value plus a single update callback,
// with change-elision.
type ColorLight struct {
	color    int
	updateFn func(color int)
}

// NewColorLight creates a ColorLight starting at color 0 (off).
func NewColorLight(updateFn func(color int)) *ColorLight {
	return &ColorLight{updateFn: updateFn}
}

// Get returns the current color.
func (l *ColorLight) Get() int { return l.color }

// Set updates the color. The write is elided when the value is unchanged
// unless force is set.
func (l *ColorLight) Set(color int, force bool) {
	if color == l.color && !force {
		return
	}
	l.color = color
	if l.updateFn != nil {
		l.updateFn(color)
	}
}

// ColorToggleLight wraps a ColorLight and maps boolean toggle semantics onto
// two chosen color values.
type ColorToggleLight struct {
	light    *ColorLight
	onColor  int
	offColor int
	on       bool
}

// NewColorToggleLight wraps light, mapping Set(true) to onColor and
// Set(false) to offColor.
func NewColorToggleLight(light *ColorLight, onColor, offColor int) *ColorToggleLight {
	return &ColorToggleLight{light: light, onColor: onColor, offColor: offColor}
}

// Get returns the current boolean state.
func (l *ColorToggleLight) Get() bool { return l.on }

// Set updates the toggle state, forwarding the corresponding color to the
// wrapped ColorLight (which itself elides unchanged writes).
func (l *ColorToggleLight) Set(on bool, force bool) {
	l.on = on
	color := l.offColor
	if on {
		color = l.onColor
	}
	l.light.Set(color, force)
}

// BlinkingAnimation wraps a toggle-capable light and a scheduler: Start
// schedules a self-rescheduling thunk every intervalMs that toggles the
// light; Stop cancels the pending task and leaves the light in whatever
// state it was last set to. Restarting resumes from that state.
type BlinkingAnimation struct {
	sched      *scheduler.Scheduler
	light      BoolLight
	intervalMs int64
	running    bool
	pending    scheduler.Handle
}

// NewBlinkingAnimation creates a BlinkingAnimation toggling light every
// intervalMs once started.
func NewBlinkingAnimation(sched *scheduler.Scheduler, light BoolLight, intervalMs int64) *BlinkingAnimation {
	return &BlinkingAnimation{sched: sched, light: light, intervalMs: intervalMs}
}

// Start begins blinking. Calling Start while already running is a no-op.
func (a *BlinkingAnimation) Start() {
	if a.running {
		return
	}
	a.running = true
	a.scheduleNext()
}

func (a *BlinkingAnimation) scheduleNext() {
	a.pending = a.sched.Schedule(func() {
		if !a.running {
			return
		}
		a.light.Set(!a.light.Get(), false)
		a.scheduleNext()
	}, a.intervalMs)
}

// Stop cancels the pending toggle and leaves the light in its current
// state.
func (a *BlinkingAnimation) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.sched.Cancel(a.pending)
}

// Running reports whether the animation is currently active.
func (a *BlinkingAnimation) Running() bool { return a.running }

// SequentialAnimation holds a sequence of frames, each frame being the
// subset of lights that must be ON for that frame. Lights are identified by
// a caller-chosen comparable key so SequentialAnimation can compute the
// set-difference between consecutive frames without owning the lights.
type SequentialAnimation[K comparable] struct {
	frames  []map[K]struct{}
	get     func(k K) BoolLight
	index   int
	looping bool
	active  bool
}

// NewSequentialAnimation creates a SequentialAnimation over frames (each a
// set of light keys that must be ON), resolving keys to lights via get.
func NewSequentialAnimation[K comparable](frames []map[K]struct{}, get func(k K) BoolLight, looping bool) *SequentialAnimation[K] {
	if len(frames) == 0 {
		panic("lights: SequentialAnimation requires at least one frame")
	}
	return &SequentialAnimation[K]{frames: frames, get: get, looping: looping, active: true}
}

// Step advances to the next frame: lights in the new frame but not the
// previous one are turned on, lights in the previous frame but not the new
// one are turned off. At wrap (back to index 0), every light across all
// frames not present in frame 0 is additionally turned off, guarding
// against external toggles between steps. The non-looping variant stops
// (Step becomes a no-op) once it would wrap.
func (s *SequentialAnimation[K]) Step() {
	if !s.active {
		return
	}
	prev := s.frames[s.index]
	next := (s.index + 1) % len(s.frames)
	if next == 0 && !s.looping {
		s.active = false
		return
	}
	frame := s.frames[next]

	for k := range prev {
		if _, ok := frame[k]; !ok {
			s.get(k).Set(false, false)
		}
	}
	for k := range frame {
		s.get(k).Set(true, false)
	}

	if next == 0 {
		for _, f := range s.frames {
			for k := range f {
				if _, ok := frame[k]; !ok {
					s.get(k).Set(false, false)
				}
			}
		}
	}

	s.index = next
}

// Active reports whether the (non-looping) animation has not yet wrapped.
func (s *SequentialAnimation[K]) Active() bool { return s.active }
