// Package scheduler implements the single-threaded cooperative task queue
// that every time-delayed behavior in the runtime sits on top of: blink
// animations, scrolling text, long-press detection, and pattern playback.
package scheduler

import (
	"container/heap"
	"fmt"

	"github.com/rjuang/rum/clock"
	"github.com/rjuang/rum/internal/debug"
)

// Thunk is a deferred unit of work. It takes no arguments and returns
// nothing; side effects happen through whatever it closed over.
type Thunk func()

// Handle identifies a scheduled task so it can later be canceled. The zero
// Handle never matches a real task.
type Handle uint64

// entry is one (due, sequence, thunk) tuple. The sequence counter breaks
// ties between equal due times, giving deterministic FIFO ordering among
// simultaneously due tasks.
type entry struct {
	due    int64
	seq    uint64
	fn     Thunk
	handle Handle
	index  int // position in the heap, maintained by container/heap
}

// taskHeap is a min-heap ordered by (due, seq).
type taskHeap []*entry

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *taskHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// Scheduler is a time-ordered priority queue of deferred tasks, advanced by
// host idle ticks. It is not safe for concurrent use; the host serializes
// all calls onto one goroutine, matching the single-threaded model of §5.
type Scheduler struct {
	clock   clock.Clock
	heap    taskHeap
	entries map[Handle]*entry
	nextSeq uint64
	nextH   Handle

	// OnTaskPanic, if set, is invoked with the recovered value whenever a
	// scheduled thunk panics during Idle. If nil, the panic propagates out
	// of Idle (the entry has already been popped from the queue either way,
	// so the queue is never left corrupted).
	OnTaskPanic func(recovered any)
}

// New creates a Scheduler driven by clock c.
func New(c clock.Clock) *Scheduler {
	return &Scheduler{
		clock:   c,
		entries: make(map[Handle]*entry),
	}
}

// Schedule computes due = now + delayMillis, assigns the next sequence
// counter value, and inserts the thunk into the queue. delayMillis == 0 is
// allowed and means "run on the next idle tick". Ownership of fn transfers
// to the scheduler.
func (s *Scheduler) Schedule(fn Thunk, delayMillis int64) Handle {
	if fn == nil {
		panic("scheduler: Schedule requires a non-nil thunk")
	}
	due := s.clock.NowMillis() + delayMillis
	s.nextSeq++
	s.nextH++
	e := &entry{due: due, seq: s.nextSeq, fn: fn, handle: s.nextH}
	heap.Push(&s.heap, e)
	s.entries[s.nextH] = e
	return s.nextH
}

// Cancel removes the entry for h if it is still pending. It returns true iff
// the task was removed before it ran; calling Cancel on an already-run or
// already-canceled handle returns false and is a no-op.
func (s *Scheduler) Cancel(h Handle) bool {
	e, ok := s.entries[h]
	if !ok {
		return false
	}
	delete(s.entries, h)
	if e.index >= 0 {
		heap.Remove(&s.heap, e.index)
	}
	return true
}

// Idle drains every task whose due time has arrived, in (due, sequence)
// order. A thunk may itself call Schedule or Cancel; newly scheduled tasks
// with due <= now are eligible within the same Idle call because the heap
// re-sorts them in. A thunk's panic is surfaced through OnTaskPanic (or
// re-panicked if OnTaskPanic is nil); the popped entry is already removed
// from both s.heap and s.entries before the thunk runs, so the queue can
// never be left in a corrupted state by a misbehaving thunk.
func (s *Scheduler) Idle() {
	now := s.clock.NowMillis()
	for s.heap.Len() > 0 && s.heap[0].due <= now {
		e := heap.Pop(&s.heap).(*entry)
		delete(s.entries, e.handle)
		s.run(e.fn)
	}
}

// Len reports the number of tasks currently pending. Primarily for tests.
func (s *Scheduler) Len() int {
	return s.heap.Len()
}

func (s *Scheduler) run(fn Thunk) {
	if s.OnTaskPanic == nil {
		fn()
		return
	}
	defer func() {
		if r := recover(); r != nil {
			debug.Log("scheduler", "task panic recovered: %v", r)
			s.OnTaskPanic(r)
		}
	}()
	fn()
}

// String is a debugging aid; it is not part of the scheduler's contract.
func (s *Scheduler) String() string {
	return fmt.Sprintf("Scheduler{pending=%d}", s.heap.Len())
}
