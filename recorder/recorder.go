// Package recorder implements the pattern record/replay engine built on top
// of package scheduler: capture timestamped events into named patterns,
// replay them once or looping, with per-pattern stop, per-loop cancel, and
// an adjustable inter-loop delay that preserves recorded inter-event timing.
package recorder

import "github.com/rjuang/rum/scheduler"

// TimedEvent pairs a capture timestamp with the opaque event it was
// captured with.
type TimedEvent[E any] struct {
	TimestampMs int64
	Event       E
}

// Pattern is an ordered, timestamped sequence of opaque events. Timestamps
// are monotonically non-decreasing within a pattern; the first timestamp is
// the pattern's t=0 reference.
type Pattern[E any] struct {
	Events []TimedEvent[E]
}

// PlaybackFunc is invoked once per recorded event during replay.
type PlaybackFunc[K comparable, E any] func(key K, event E)

// Recorder is a multi-pattern record-and-replay engine. K is the
// caller-chosen, opaque pattern-key type (e.g. a (status, data1) tuple);
// E is the opaque event payload type. It is not safe for concurrent use.
type Recorder[K comparable, E any] struct {
	sched    *scheduler.Scheduler
	playback PlaybackFunc[K, E]

	patterns map[K]*Pattern[E]

	// playTasks tracks live in-flight playback task handles per key; the
	// invariant is that this set reflects liveness (entries are removed by
	// their own cleanup thunk as each scheduled event fires).
	playTasks map[K]map[scheduler.Handle]struct{}

	// loopTask holds the pending loop-continuation handle for a key iff
	// that pattern is currently looping (§3 invariant).
	loopTask map[K]scheduler.Handle

	loopDelay map[K]int64

	recording   *K
	lastLooping *K
}

// New creates a Recorder driven by sched, delivering recorded events to
// playback during replay.
func New[K comparable, E any](sched *scheduler.Scheduler, playback PlaybackFunc[K, E]) *Recorder[K, E] {
	if playback == nil {
		panic("recorder: New requires a non-nil playback function")
	}
	return &Recorder[K, E]{
		sched:     sched,
		playback:  playback,
		patterns:  make(map[K]*Pattern[E]),
		playTasks: make(map[K]map[scheduler.Handle]struct{}),
		loopTask:  make(map[K]scheduler.Handle),
		loopDelay: make(map[K]int64),
	}
}

// StartRecording sets key as the currently-recording pattern, replacing any
// existing pattern at key with an empty one. It has no effect on scheduled
// playback of other patterns.
func (r *Recorder[K, E]) StartRecording(key K) {
	k := key
	r.recording = &k
	r.patterns[key] = &Pattern[E]{}
}

// StopRecording clears the currently-recording marker. It does not truncate
// or alter the captured pattern; calling it when nothing is recording is a
// no-op (spec.md §9).
func (r *Recorder[K, E]) StopRecording() {
	r.recording = nil
}

// IsRecording reports whether a pattern is currently being recorded.
func (r *Recorder[K, E]) IsRecording() bool {
	return r.recording != nil
}

// RecordingPatternID returns the key currently being recorded and true, or
// the zero K and false if nothing is recording.
func (r *Recorder[K, E]) RecordingPatternID() (K, bool) {
	if r.recording == nil {
		var zero K
		return zero, false
	}
	return *r.recording, true
}

// OnDataEvent appends (timestampMs, event) to the currently-recording
// pattern. It is ignored if nothing is recording. Callers are responsible
// for not re-injecting events that are themselves recording triggers.
func (r *Recorder[K, E]) OnDataEvent(timestampMs int64, event E) {
	if r.recording == nil {
		return
	}
	p := r.patterns[*r.recording]
	p.Events = append(p.Events, TimedEvent[E]{TimestampMs: timestampMs, Event: event})
}

// HasPattern reports whether a non-empty pattern exists for key.
func (r *Recorder[K, E]) HasPattern(key K) bool {
	p, ok := r.patterns[key]
	return ok && len(p.Events) > 0
}

// SetLoopDelay updates the remembered per-pattern loop delay used by future
// loop cycles of key.
func (r *Recorder[K, E]) SetLoopDelay(key K, delayMs int64) {
	r.loopDelay[key] = delayMs
}

// Play replays the pattern at key. It returns false and does nothing if no
// non-empty pattern exists for key. If loop is true and the pattern is
// already looping, the existing loop is stopped first (restart-and-continue,
// spec.md §9) so loopDelayMs can be changed mid-loop. When loopDelayMs is
// nil, the remembered per-pattern delay is used (0 if never set); otherwise
// the given delay is stored and used.
func (r *Recorder[K, E]) Play(key K, loop bool, loopDelayMs *int64) bool {
	if !r.HasPattern(key) {
		return false
	}
	if loop && r.IsLooping(key) {
		r.Stop(key)
	}
	if loop {
		k := key
		r.lastLooping = &k
	}
	if loopDelayMs != nil {
		r.loopDelay[key] = *loopDelayMs
	}
	r.schedulePlayback(key, loop)
	return true
}

// schedulePlayback implements the §4.4 playback algorithm for one cycle of
// key's pattern, optionally chaining into a loop continuation.
func (r *Recorder[K, E]) schedulePlayback(key K, loop bool) {
	pattern := r.patterns[key]
	base := pattern.Events[0].TimestampMs
	var lastDelay int64

	ensureSet := func() map[scheduler.Handle]struct{} {
		set := r.playTasks[key]
		if set == nil {
			set = make(map[scheduler.Handle]struct{})
			r.playTasks[key] = set
		}
		return set
	}

	for _, te := range pattern.Events {
		delay := te.TimestampMs - base
		event := te.Event
		lastDelay = delay

		if delay <= 0 {
			r.playback(key, event)
			continue
		}

		var handle scheduler.Handle
		handle = r.sched.Schedule(func() {
			r.playback(key, event)
		}, delay)
		ensureSet()[handle] = struct{}{}

		r.sched.Schedule(func() {
			delete(r.playTasks[key], handle)
		}, delay)
	}

	if loop && lastDelay > 0 {
		delay := lastDelay + r.loopDelay[key]
		r.loopTask[key] = r.sched.Schedule(func() {
			delete(r.loopTask, key)
			r.schedulePlayback(key, true)
		}, delay)
	}
	// If loop but lastDelay == 0 (a pattern of one instantaneous event), no
	// loop continuation is scheduled: that would be a tight re-entrant loop.
}

// IsPlaying reports whether key has any in-flight playback tasks pending.
func (r *Recorder[K, E]) IsPlaying(key K) bool {
	return len(r.playTasks[key]) > 0
}

// IsLooping reports whether key currently has a pending loop-continuation.
func (r *Recorder[K, E]) IsLooping(key K) bool {
	_, ok := r.loopTask[key]
	return ok
}

// LastLoopingPatternID returns the last key that was set to loop via Play,
// and true, or the zero K and false if Play(_, loop=true, _) was never
// called.
func (r *Recorder[K, E]) LastLoopingPatternID() (K, bool) {
	if r.lastLooping == nil {
		var zero K
		return zero, false
	}
	return *r.lastLooping, true
}

// CancelLoop cancels the pending loop-continuation for key, if any, but
// lets any currently in-flight playback cycle finish naturally.
func (r *Recorder[K, E]) CancelLoop(key K) {
	h, ok := r.loopTask[key]
	if !ok {
		return
	}
	r.sched.Cancel(h)
	delete(r.loopTask, key)
}

// Stop cancels both any pending loop-continuation and all in-flight
// playback tasks for key. It is idempotent; stopping a non-existent key is
// a no-op.
func (r *Recorder[K, E]) Stop(key K) {
	r.CancelLoop(key)
	for h := range r.playTasks[key] {
		r.sched.Cancel(h)
	}
	delete(r.playTasks, key)
}

// StopAll cancels all loops and all in-flight playback, for every key.
func (r *Recorder[K, E]) StopAll() {
	keys := make(map[K]struct{})
	for k := range r.playTasks {
		keys[k] = struct{}{}
	}
	for k := range r.loopTask {
		keys[k] = struct{}{}
	}
	for k := range keys {
		r.Stop(k)
	}
}
