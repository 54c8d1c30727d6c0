// Package panel implements the attachable Panel base (§4.6) and the
// RefreshManager that broadcasts refresh-flag bitmasks to registered
// listeners.
package panel

import (
	"github.com/rjuang/rum/matchers"
	"github.com/rjuang/rum/midimsg"
	"github.com/rjuang/rum/processor"
)

// Flag is one bit within a 32-bit refresh mask (§4.6). The set is closed.
type Flag uint32

const (
	MixerSelection Flag = 1 << iota
	MixerDisplay
	MixerControls
	RemoteLinks
	FocusedWindow
	Performance
	ControllerLEDs

	// FullRefresh is the all-ones value, matching every flag.
	FullRefresh Flag = ^Flag(0)
)

// Matches reports whether any bit of mask is set in f.
func (f Flag) Matches(mask Flag) bool {
	return f&mask != 0
}

// RefreshListener is notified with the broadcast flag mask.
type RefreshListener func(flags Flag)

// RefreshManager holds an ordered list of refresh listeners and broadcasts a
// flag bitmask to all of them.
type RefreshManager struct {
	listeners []RefreshListener
}

// NewRefreshManager returns an empty RefreshManager.
func NewRefreshManager() *RefreshManager {
	return &RefreshManager{}
}

// Register appends a listener, in insertion order.
func (m *RefreshManager) Register(l RefreshListener) {
	m.listeners = append(m.listeners, l)
}

// Broadcast invokes every registered listener with flags, in insertion
// order.
func (m *RefreshManager) Broadcast(flags Flag) {
	for _, l := range m.listeners {
		l(flags)
	}
}

// RefreshHook is invoked when a Panel should redraw, with the flags that
// triggered the refresh.
type RefreshHook func(flags Flag)

// Panel encapsulates a matcher-to-handler binding plus a refresh hook. It
// starts attached; detach drops subsequent messages.
type Panel struct {
	attached bool
	matcher  matchers.Matcher
	handler  processor.Handler
	onRefresh RefreshHook
}

// New creates a Panel bound to matcher/handler/onRefresh, starting
// attached.
func New(matcher matchers.Matcher, handler processor.Handler, onRefresh RefreshHook) *Panel {
	return &Panel{attached: true, matcher: matcher, handler: handler, onRefresh: onRefresh}
}

// Attach marks the panel attached and triggers a full refresh.
func (p *Panel) Attach() {
	p.attached = true
	p.Refresh(FullRefresh)
}

// Detach marks the panel detached; Process and Refresh become no-ops until
// the next Attach.
func (p *Panel) Detach() {
	p.attached = false
}

// Attached reports whether the panel is currently attached.
func (p *Panel) Attached() bool {
	return p.attached
}

// Process invokes the handler (if matcher matches msg) only while attached.
func (p *Panel) Process(msg *midimsg.Message) {
	if !p.attached {
		return
	}
	if p.matcher(*msg) {
		p.handler(msg)
	}
}

// Refresh invokes the refresh hook only while attached.
func (p *Panel) Refresh(flags Flag) {
	if !p.attached || p.onRefresh == nil {
		return
	}
	p.onRefresh(flags)
}

// Register installs the panel's Process method into p and its Refresh
// method into m, per §4.6 ("inserts itself into the global Processor and
// RefreshManager" — here, the Runtime-scoped Processor/RefreshManager).
func (p *Panel) Register(proc *processor.Processor, rm *RefreshManager) {
	proc.Use(p.Process)
	rm.Register(p.Refresh)
}
