package launchpad

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"github.com/rjuang/rum/hostiface"
)

// Device adapts an open MIDI output port into a hostiface.Device for a
// Novation-style grid controller, sending real wire bytes with
// gitlab.com/gomidi/midi/v2 the same way the teacher's controller.go does
// (c.send(midi.SysEx(...))), generalized from one hardcoded Launchpad X
// mapping to any SysEx preamble/command-byte scheme via CommandBuilder.
type Device struct {
	out      drivers.Out
	send     func(msg gomidi.Message) error
	port     int
	preamble []byte
}

// New creates a Device that sends on out, prefixing every SendSysEx call
// with preamble (e.g. the "exit DAW mode" command bytes the Launchkey Mk3
// reference manual documents).
func New(out drivers.Out, port int, preamble []byte) (*Device, error) {
	send, err := gomidi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("launchpad: open output: %w", err)
	}
	return &Device{out: out, send: send, port: port, preamble: preamble}, nil
}

var _ hostiface.Device = (*Device)(nil)

// SendSysEx sends preamble followed by bytes as a single SysEx message. A
// host adapter error here (e.g. a closed port) propagates to the caller;
// per §7, the core does not retry.
func (d *Device) SendSysEx(bytes []byte) error {
	buf := make([]byte, 0, len(d.preamble)+len(bytes))
	buf = append(buf, d.preamble...)
	buf = append(buf, bytes...)
	return d.send(gomidi.SysEx(buf))
}

// PortNumber returns the configured port number.
func (d *Device) PortNumber() int {
	return d.port
}

// DispatchToScripts sends a 3-byte MIDI message to sibling scripts. A real
// DAW binding would instead route through the host's script-to-script API;
// this adapter's only outbound channel is the MIDI port itself, so it sends
// the packed bytes verbatim as a raw gomidi.Message rather than guessing at
// a channel-voice reinterpretation of status.
func (d *Device) DispatchToScripts(status, data1, data2 uint8) error {
	packed := hostiface.Pack3(status, data1, data2)
	raw := gomidi.Message{byte(packed), byte(packed >> 8), byte(packed >> 16)}
	return d.send(raw)
}
