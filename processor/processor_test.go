package processor

import (
	"testing"

	"github.com/rjuang/rum/matchers"
	"github.com/rjuang/rum/midimsg"
)

func TestProcessRunsAllHandlersInOrderRegardlessOfHandled(t *testing.T) {
	p := New()
	var order []int
	p.Use(func(msg *midimsg.Message) {
		order = append(order, 1)
		msg.Handled = true
	})
	p.Use(func(msg *midimsg.Message) {
		order = append(order, 2)
	})

	msg := midimsg.New(0x90, 0, 0, 0)
	p.Process(&msg)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected both handlers to run in order, got %v", order)
	}
	if !msg.Handled {
		t.Fatal("expected Handled to be true")
	}
}

func TestWhenOnlyInvokesOnMatch(t *testing.T) {
	calls := 0
	h := When(matchers.StatusEquals(0x90), func(msg *midimsg.Message) { calls++ })

	on := midimsg.New(0x90, 0, 0, 0)
	off := midimsg.New(0x80, 0, 0, 0)
	h(&on)
	h(&off)

	if calls != 1 {
		t.Fatalf("expected handler to fire exactly once, fired %d times", calls)
	}
}

func TestWhenInvokesAllHandlersOnMatch(t *testing.T) {
	var order []int
	h := When(matchers.StatusEquals(0x90),
		func(msg *midimsg.Message) { order = append(order, 1) },
		func(msg *midimsg.Message) { order = append(order, 2) },
	)
	msg := midimsg.New(0x90, 0, 0, 0)
	h(&msg)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected both sub-handlers to run, got %v", order)
	}
}
