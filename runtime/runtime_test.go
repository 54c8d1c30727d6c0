package runtime

import (
	"errors"
	"testing"

	"github.com/rjuang/rum/clock"
	"github.com/rjuang/rum/matchers"
	"github.com/rjuang/rum/midimsg"
	"github.com/rjuang/rum/panel"
)

// fakeDevice is a minimal hostiface.Device for exercising OnInit/OnRefresh
// without a real MIDI port.
type fakeDevice struct {
	sentSysEx  [][]byte
	sendErr    error
	port       int
	dispatched []uint8
}

func (d *fakeDevice) SendSysEx(bytes []byte) error {
	d.sentSysEx = append(d.sentSysEx, bytes)
	return d.sendErr
}

func (d *fakeDevice) PortNumber() int { return d.port }

func (d *fakeDevice) DispatchToScripts(status, data1, data2 uint8) error {
	d.dispatched = append(d.dispatched, status, data1, data2)
	return nil
}

func TestOnMidiMessageRoundTripsHandled(t *testing.T) {
	rt := New(clock.NewFake(0), nil)
	rt.Processor.Use(func(msg *midimsg.Message) {
		if matchers.StatusEquals(0x90)(*msg) {
			msg.Handled = true
		}
	})

	handledEv := &HostEvent{Status: 0x90, Data1: 1, Data2: 2}
	rt.OnMidiMessage(handledEv)
	if !handledEv.Handled {
		t.Fatal("expected Handled to be copied back as true")
	}

	unhandledEv := &HostEvent{Status: 0x80, Data1: 1, Data2: 2}
	rt.OnMidiMessage(unhandledEv)
	if unhandledEv.Handled {
		t.Fatal("expected Handled to remain false for an unmatched message")
	}
}

func TestOnIdleDrainsSchedulerBeforeUserIdle(t *testing.T) {
	fake := clock.NewFake(0)
	rt := New(fake, nil)

	var order []string
	rt.Scheduler.Schedule(func() { order = append(order, "scheduled") }, 0)

	rt.OnIdle(func() { order = append(order, "user") })

	if len(order) != 2 || order[0] != "scheduled" || order[1] != "user" {
		t.Fatalf("expected scheduled work to drain before user idle, got %v", order)
	}
}

func TestOnIdleWithNilUserIdleDoesNotPanic(t *testing.T) {
	rt := New(clock.NewFake(0), nil)
	rt.OnIdle(nil)
}

func TestOnInitSendsSysExThenBroadcastsFullRefresh(t *testing.T) {
	dev := &fakeDevice{}
	rt := New(clock.NewFake(0), dev)
	rt.InitSysEx = []byte{0xF0, 0x01, 0xF7}

	var gotFlags panel.Flag
	refreshed := false
	rt.Refresh.Register(func(flags panel.Flag) {
		refreshed = true
		gotFlags = flags
	})

	if err := rt.OnInit(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(dev.sentSysEx) != 1 {
		t.Fatalf("expected exactly one SysEx send, got %d", len(dev.sentSysEx))
	}
	if !refreshed || gotFlags != panel.FullRefresh {
		t.Fatal("expected OnInit to broadcast a FullRefresh")
	}
}

func TestOnInitPropagatesSendSysExError(t *testing.T) {
	dev := &fakeDevice{sendErr: errors.New("boom")}
	rt := New(clock.NewFake(0), dev)
	rt.InitSysEx = []byte{0xF0, 0xF7}

	refreshed := false
	rt.Refresh.Register(func(flags panel.Flag) { refreshed = true })

	if err := rt.OnInit(); err == nil {
		t.Fatal("expected OnInit to propagate the device error")
	}
	if refreshed {
		t.Fatal("expected no refresh broadcast when SendSysEx fails")
	}
}

func TestOnInitWithNilDeviceSkipsSysExButStillRefreshes(t *testing.T) {
	rt := New(clock.NewFake(0), nil)
	rt.InitSysEx = []byte{0xF0, 0xF7}

	refreshed := false
	rt.Refresh.Register(func(flags panel.Flag) { refreshed = true })

	if err := rt.OnInit(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !refreshed {
		t.Fatal("expected a refresh broadcast even with no device")
	}
}

func TestOnRefreshBroadcastsReceivedFlags(t *testing.T) {
	rt := New(clock.NewFake(0), nil)
	var got panel.Flag
	rt.Refresh.Register(func(flags panel.Flag) { got = flags })

	rt.OnRefresh(panel.MixerDisplay)
	if got != panel.MixerDisplay {
		t.Fatalf("expected MixerDisplay to be broadcast, got %v", got)
	}
}
