// Package runtime is the host-edge shim of §4.7 and the "single Runtime
// value" redesign of spec.md §9: rather than package-level Processor,
// Scheduler, Registry, and RefreshManager singletons, one Runtime value
// owns them all, and handler-installing helpers take the Processor and
// Registry they install into explicitly.
// Tests construct their own Runtime instead of sharing global state.
package runtime

import (
	"github.com/rjuang/rum/clock"
	"github.com/rjuang/rum/hostiface"
	"github.com/rjuang/rum/internal/debug"
	"github.com/rjuang/rum/midimsg"
	"github.com/rjuang/rum/panel"
	"github.com/rjuang/rum/processor"
	"github.com/rjuang/rum/registry"
	"github.com/rjuang/rum/scheduler"
)

// Runtime is the single ambient context for the control-surface runtime: it
// owns the Scheduler, Processor, Registry, and RefreshManager, and holds
// the hostiface.Device adapter (§6). It holds no ChannelRack, Mixer, or
// Transport adapter.
type Runtime struct {
	Clock     clock.Clock
	Scheduler *scheduler.Scheduler
	Processor *processor.Processor
	Registry  *registry.Registry
	Refresh   *panel.RefreshManager

	Device hostiface.Device

	// InitSysEx, if set, is sent through Device.SendSysEx on OnInit, before
	// FullRefresh is broadcast.
	InitSysEx []byte
}

// New creates a Runtime driven by c, wired to device for SYSEX/port/script
// dispatch (device may be nil if the host has no controller attached yet).
func New(c clock.Clock, device hostiface.Device) *Runtime {
	return &Runtime{
		Clock:     c,
		Scheduler: scheduler.New(c),
		Processor: processor.New(),
		Registry:  registry.New(),
		Refresh:   panel.NewRefreshManager(),
		Device:    device,
	}
}

// OnInit translates the host's init callback (§4.7): by this point, panels
// and decorators installed at system-init time have already registered
// themselves into Processor/Refresh; OnInit sends any device-init SYSEX and
// broadcasts a full refresh.
func (r *Runtime) OnInit() error {
	if r.Device != nil && len(r.InitSysEx) > 0 {
		if err := r.Device.SendSysEx(r.InitSysEx); err != nil {
			debug.Log("runtime", "init sysex failed: %v", err)
			return err
		}
	}
	r.Refresh.Broadcast(panel.FullRefresh)
	return nil
}

// OnIdle translates the host's idle tick (§4.7): scheduler work is drained
// before any caller-supplied idle handler runs.
func (r *Runtime) OnIdle(userIdle func()) {
	r.Scheduler.Idle()
	if userIdle != nil {
		userIdle()
	}
}

// HostEvent is the minimal shape the host's inbound MIDI callback needs to
// supply and receive back (§6): readable status/data1/data2 and a writable
// Handled flag copied back after processing.
type HostEvent struct {
	Status, Data1, Data2 uint8
	Handled              bool
}

// OnMidiMessage translates the host's inbound MIDI callback (§4.7):
// constructs a midimsg.Message stamped with the current clock time, passes
// it through Processor, and copies the resulting Handled flag back onto ev
// so the host can suppress its own default handling.
func (r *Runtime) OnMidiMessage(ev *HostEvent) {
	msg := midimsg.New(ev.Status, ev.Data1, ev.Data2, r.Clock.NowMillis())
	r.Processor.Process(&msg)
	ev.Handled = msg.Handled
}

// OnRefresh translates the host's refresh-flags callback (§4.7): broadcasts
// the received flags through RefreshManager.
func (r *Runtime) OnRefresh(flags panel.Flag) {
	r.Refresh.Broadcast(flags)
}
