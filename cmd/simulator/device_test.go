package main

import (
	"testing"

	simconfig "github.com/rjuang/rum/simulator/config"
)

func TestMatchPortNameCaseInsensitiveSubstring(t *testing.T) {
	names := []string{"Midi Through Port-0", "Launchpad X MIDI", "Launchkey Mk3 MIDI Port"}

	if idx := matchPortName(names, "launchpad"); idx != 1 {
		t.Fatalf("got index %d, want 1", idx)
	}
	if idx := matchPortName(names, "LAUNCHKEY"); idx != 2 {
		t.Fatalf("got index %d, want 2", idx)
	}
}

func TestMatchPortNameNoMatch(t *testing.T) {
	names := []string{"Midi Through Port-0"}
	if idx := matchPortName(names, "launchpad"); idx != -1 {
		t.Fatalf("got index %d, want -1", idx)
	}
}

func TestMatchPortNameEmptyList(t *testing.T) {
	if idx := matchPortName(nil, "anything"); idx != -1 {
		t.Fatalf("got index %d, want -1", idx)
	}
}

func TestProfilePreambleKnownProfiles(t *testing.T) {
	if p := profilePreamble(simconfig.ProfileLaunchkeyMk3); len(p) == 0 {
		t.Fatal("expected a non-empty preamble for launchkey-mk3")
	}
	if p := profilePreamble(simconfig.ProfileLaunchpadX); len(p) == 0 {
		t.Fatal("expected a non-empty preamble for launchpad-x")
	}
}

func TestProfilePreambleUnknownProfileIsNil(t *testing.T) {
	if p := profilePreamble(simconfig.ProfileGenericGrid); p != nil {
		t.Fatalf("expected nil preamble for generic-grid, got %v", p)
	}
}
