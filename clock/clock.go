// Package clock abstracts monotonic time in milliseconds so the scheduler
// and everything built on it can be driven deterministically in tests.
package clock

import "time"

// Clock returns the current time in monotonic milliseconds.
type Clock interface {
	NowMillis() int64
}

// Real is a Clock backed by the wall clock.
type Real struct {
	start time.Time
}

// NewReal returns a Clock whose NowMillis is monotonic non-decreasing,
// backed by time.Now.
func NewReal() *Real {
	return &Real{start: time.Now()}
}

func (r *Real) NowMillis() int64 {
	return time.Since(r.start).Milliseconds()
}

// Fake is a manually advanced Clock for tests.
type Fake struct {
	now int64
}

// NewFake returns a Fake clock starting at t0 (milliseconds).
func NewFake(t0 int64) *Fake {
	return &Fake{now: t0}
}

func (f *Fake) NowMillis() int64 {
	return f.now
}

// Advance moves the clock forward by delta milliseconds. delta must be >= 0.
func (f *Fake) Advance(delta int64) {
	if delta < 0 {
		panic("clock: Advance requires a non-negative delta")
	}
	f.now += delta
}

// Set pins the clock to an absolute millisecond value. t must be >= the
// current value; the clock is documented as monotonic non-decreasing.
func (f *Fake) Set(t int64) {
	if t < f.now {
		panic("clock: Set requires a non-decreasing value")
	}
	f.now = t
}
