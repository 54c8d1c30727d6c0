package displays

import (
	"testing"

	"github.com/rjuang/rum/clock"
	"github.com/rjuang/rum/scheduler"
)

func TestDirectDisplayPadsAndTruncates(t *testing.T) {
	pushes := 0
	d := NewDirectDisplay(5, 2, func() { pushes++ })

	d.SetLine(0, "ab")
	if d.Line(0) != "ab   " {
		t.Fatalf("expected padded 'ab   ', got %q", d.Line(0))
	}
	d.SetLine(1, "abcdefgh")
	if d.Line(1) != "abcde" {
		t.Fatalf("expected truncated 'abcde', got %q", d.Line(1))
	}
	if pushes != 2 {
		t.Fatalf("expected 2 pushes, got %d", pushes)
	}
}

func TestDirectDisplayPanicsOnBadDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive dimensions")
		}
	}()
	NewDirectDisplay(0, 2, nil)
}

func TestDirectDisplayPanicsOnRowOutOfRange(t *testing.T) {
	d := NewDirectDisplay(4, 1, nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range row")
		}
	}()
	d.SetLine(5, "x")
}

func TestDisplayWindowWritesThrough(t *testing.T) {
	pushes := 0
	under := NewDirectDisplay(10, 1, func() { pushes++ })
	win := NewDisplayWindow(under, 0, 2, 4, 1)

	win.SetLine(0, "ab")
	if under.Line(0) != "  ab      " {
		t.Fatalf("expected surrounding content preserved, got %q", under.Line(0))
	}
	if win.Line(0) != "ab  " {
		t.Fatalf("expected window view 'ab  ', got %q", win.Line(0))
	}
	if pushes == 0 {
		t.Fatal("expected write-through push")
	}
}

func TestDisplayWindowPanicsWhenItDoesNotFit(t *testing.T) {
	under := NewDirectDisplay(4, 1, nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a window that overruns its parent")
		}
	}()
	NewDisplayWindow(under, 0, 2, 4, 1)
}

func TestScrollingDisplayShortTextNoMarquee(t *testing.T) {
	fake := clock.NewFake(0)
	sched := scheduler.New(fake)
	under := NewDirectDisplay(10, 1, nil)
	win := NewDisplayWindow(under, 0, 0, 10, 1)
	sd := NewScrollingDisplay(win, sched, 200, "   ")

	sd.SetLine(0, "short")
	if sched.Len() != 0 {
		t.Fatal("expected no scroll thunk for text that fits")
	}
	if win.Line(0) != "short     " {
		t.Fatalf("expected padded short text, got %q", win.Line(0))
	}
}

func TestScrollingDisplayLongTextScrolls(t *testing.T) {
	fake := clock.NewFake(0)
	sched := scheduler.New(fake)
	under := NewDirectDisplay(5, 1, nil)
	win := NewDisplayWindow(under, 0, 0, 5, 1)
	sd := NewScrollingDisplay(win, sched, 100, " ")

	sd.SetLine(0, "abcdefgh")
	first := win.Line(0)

	fake.Advance(100)
	sched.Idle()
	second := win.Line(0)

	if first == second {
		t.Fatal("expected the visible window to change after a scroll tick")
	}
}

func TestScrollingDisplaySetLineResetsOffsetAndCancelsPrior(t *testing.T) {
	fake := clock.NewFake(0)
	sched := scheduler.New(fake)
	under := NewDirectDisplay(5, 1, nil)
	win := NewDisplayWindow(under, 0, 0, 5, 1)
	sd := NewScrollingDisplay(win, sched, 100, " ")

	sd.SetLine(0, "abcdefgh")
	fake.Advance(100)
	sched.Idle()

	sd.SetLine(0, "ijklmnop") // cancels the pending tick, starts fresh
	if sd.Line(0) != "ijklmnop" {
		t.Fatalf("expected logical line to be the new text, got %q", sd.Line(0))
	}
}

func TestPagedDisplaySetActivePageRendersAndIsIdempotent(t *testing.T) {
	fake := clock.NewFake(0)
	sched := scheduler.New(fake)
	under := NewDirectDisplay(5, 2, nil)
	pd := NewPagedDisplay(under, sched)

	pd.SetPage("home", []string{"hi", "there"})
	pd.SetActivePage("home")
	if under.Line(0) != "hi   " || under.Line(1) != "there" {
		t.Fatalf("unexpected render: %q / %q", under.Line(0), under.Line(1))
	}

	pd.SetActivePage("home") // idempotent re-render
	if pd.ActivePage() != "home" {
		t.Fatalf("expected active page 'home', got %q", pd.ActivePage())
	}
}

func TestPagedDisplaySetPageOnActivePageRerendersImmediately(t *testing.T) {
	fake := clock.NewFake(0)
	sched := scheduler.New(fake)
	under := NewDirectDisplay(5, 1, nil)
	pd := NewPagedDisplay(under, sched)

	pd.SetPage("home", []string{"old"})
	pd.SetActivePage("home")
	pd.SetPage("home", []string{"new"})

	if under.Line(0) != "new  " {
		t.Fatalf("expected immediate re-render to 'new  ', got %q", under.Line(0))
	}
}

func TestPagedDisplayTemporaryPageExpiresBackToActive(t *testing.T) {
	fake := clock.NewFake(0)
	sched := scheduler.New(fake)
	under := NewDirectDisplay(5, 1, nil)
	pd := NewPagedDisplay(under, sched)

	pd.SetPage("home", []string{"home"})
	pd.SetActivePage("home")

	pd.SetTemporaryPage([]string{"temp"}, 1000)
	if under.Line(0) != "temp " {
		t.Fatalf("expected temp page rendered immediately, got %q", under.Line(0))
	}

	fake.Advance(1000)
	sched.Idle()
	if under.Line(0) != "home " {
		t.Fatalf("expected reset to active page after expiration, got %q", under.Line(0))
	}
}

func TestPagedDisplayTemporaryPageCancelsPriorPending(t *testing.T) {
	fake := clock.NewFake(0)
	sched := scheduler.New(fake)
	under := NewDirectDisplay(5, 1, nil)
	pd := NewPagedDisplay(under, sched)

	pd.SetPage("home", []string{"home"})
	pd.SetActivePage("home")

	pd.SetTemporaryPage([]string{"t1"}, 1000)
	pd.SetTemporaryPage([]string{"t2"}, 1000) // replaces pending expiration

	if sched.Len() != 1 {
		t.Fatalf("expected exactly one pending expiration, got %d", sched.Len())
	}

	fake.Advance(1000)
	sched.Idle()
	if under.Line(0) != "home " {
		t.Fatalf("expected reset to active page, got %q", under.Line(0))
	}
}
