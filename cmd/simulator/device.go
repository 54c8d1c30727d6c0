package main

import (
	"fmt"
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/rjuang/rum/hostiface"
	"github.com/rjuang/rum/hostiface/launchpad"
	simconfig "github.com/rjuang/rum/simulator/config"
)

// profilePreamble returns the SysEx bytes sent before every LED update for
// a device profile, grounded on the headers
// original_source/device_profile/novation.py (Launchkey Mk3's "exit DAW
// mode" command) and the teacher's launchpad.go (Launchpad X's "enter
// programmer mode" command) send over SysEx.
func profilePreamble(profile simconfig.ProfileType) []byte {
	switch profile {
	case simconfig.ProfileLaunchkeyMk3:
		return []byte{0x9F, 0x0C, 0x00}
	case simconfig.ProfileLaunchpadX:
		return []byte{0x00, 0x20, 0x29, 0x02, 0x0C, 0x0A, 0x01, 0x01}
	default:
		return nil
	}
}

// findOutPort looks up an output port by substring match on its name, the
// same case-insensitive contains match the teacher's findPortByName uses in
// midi/manager.go.
func findOutPort(ports []drivers.Out, name string) (drivers.Out, int) {
	names := make([]string, len(ports))
	for i, p := range ports {
		names[i] = p.String()
	}
	idx := matchPortName(names, name)
	if idx < 0 {
		return nil, -1
	}
	return ports[idx], idx
}

// matchPortName returns the index of the first name containing want as a
// case-insensitive substring, or -1 if none match. Split out of findOutPort
// so the matching rule is testable without a real or driver-level fake
// drivers.Out.
func matchPortName(names []string, want string) int {
	want = strings.ToLower(want)
	for i, n := range names {
		if strings.Contains(strings.ToLower(n), want) {
			return i
		}
	}
	return -1
}

// openRealDevice opens a hostiface.Device on cfg.PortName so the simulator
// can drive an actual controller instead of the in-memory fake grid. It
// returns (nil, nil) when no port is configured, which is the ordinary
// development case; a non-nil error means a port was requested but
// couldn't be opened, and the caller falls back to the fake.
func openRealDevice(cfg *simconfig.Config) (hostiface.Device, error) {
	if cfg.PortName == "" {
		return nil, nil
	}
	out, idx := findOutPort(gomidi.GetOutPorts(), cfg.PortName)
	if out == nil {
		return nil, fmt.Errorf("no MIDI output port matching %q", cfg.PortName)
	}
	dev, err := launchpad.New(out, idx, profilePreamble(cfg.Profile))
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", cfg.PortName, err)
	}
	return dev, nil
}
