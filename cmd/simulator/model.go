// Command simulator is a terminal harness standing in for "the DAW host":
// it drives a runtime.Runtime with synthetic idle ticks and keystroke-
// triggered MIDI events and renders the resulting lights/displays state.
// It exists to exercise the core engine during development without a real
// DAW or controller attached, grounded on the teacher's tui/model.go +
// main.go composition.
package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/rjuang/rum/clock"
	"github.com/rjuang/rum/displays"
	"github.com/rjuang/rum/lights"
	"github.com/rjuang/rum/matchers"
	"github.com/rjuang/rum/midimsg"
	"github.com/rjuang/rum/panel"
	"github.com/rjuang/rum/runtime"
	simconfig "github.com/rjuang/rum/simulator/config"
)

const gridSize = 8

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	displayBox  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Italic(true)
)

// idleTickMsg drives Runtime.OnIdle once per interval, standing in for the
// host's idle callback.
type idleTickMsg time.Time

func listenIdle() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg {
		return idleTickMsg(t)
	})
}

// model is the Bubble Tea model. It owns the Runtime, a small grid of
// ColorLights, and a direct display, the minimum surface needed to see the
// core engine's Light/Display behavior from a terminal. fake
// is nil when the runtime is driven by a real device and clock.Real instead
// (Update's idle case only advances fake when it's present).
type model struct {
	rt       *runtime.Runtime
	fake     *clock.Fake
	grid     [gridSize][gridSize]*lights.ColorLight
	gridVals *[gridSize][gridSize]int
	display  *displays.DirectDisplay
	cursorR  int
	cursorC  int
	status   string
	quitting bool
}

func newModel(cfg *simconfig.Config) model {
	dev, err := openRealDevice(cfg)

	var (
		clk  clock.Clock
		fake *clock.Fake
	)
	if dev != nil {
		clk = clock.NewReal()
	} else {
		fake = clock.NewFake(0)
		clk = fake
	}
	rt := runtime.New(clk, dev)

	m := model{rt: rt, fake: fake, gridVals: new([gridSize][gridSize]int)}
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			row, col := r, c
			m.grid[r][c] = lights.NewColorLight(func(color int) {
				m.gridVals[row][col] = color
			})
		}
	}
	m.display = displays.NewDirectDisplay(20, 2, nil)
	switch {
	case dev != nil:
		m.display.SetLine(0, fmt.Sprintf("profile: %s (live on %s)", cfg.Profile, cfg.PortName))
	case err != nil:
		m.display.SetLine(0, fmt.Sprintf("profile: %s (fake: %v)", cfg.Profile, err))
	default:
		m.display.SetLine(0, fmt.Sprintf("profile: %s (fake)", cfg.Profile))
	}

	m.wirePad()
	return m
}

// wirePad installs a matcher/handler pair per grid cell: a note-on on
// channel 0 with data1 = row*8+col and data2 = 0x7F toggles that cell's
// light between off and bright green, mirroring how a real
// controller's PadEvent would be matched in the core dispatch pipeline.
func (m *model) wirePad() {
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			row, col := r, c
			note := uint8(row*gridSize + col)
			light := m.grid[r][c]
			m.rt.Processor.Use(processorWhenNoteOn(note, func() {
				if light.Get() == 0 {
					light.Set(19, false) // bright green
				} else {
					light.Set(0, false)
				}
			}))
		}
	}
}

func processorWhenNoteOn(note uint8, fn func()) func(msg *midimsg.Message) {
	m := matchers.Has(matchers.HasSpec{
		Status: matchers.CEquals(midimsg.StatusNoteOn),
		Data1:  matchers.CEquals(note),
		Data2:  matchers.CEquals(midimsg.IsOnValue),
	})
	return func(msg *midimsg.Message) {
		if m(*msg) {
			fn()
			msg.Handled = true
		}
	}
}

func (m model) Init() tea.Cmd {
	return listenIdle()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up":
			if m.cursorR > 0 {
				m.cursorR--
			}
		case "down":
			if m.cursorR < gridSize-1 {
				m.cursorR++
			}
		case "left":
			if m.cursorC > 0 {
				m.cursorC--
			}
		case "right":
			if m.cursorC < gridSize-1 {
				m.cursorC++
			}
		case " ", "enter":
			m.pressPad(m.cursorR, m.cursorC)
		case "r":
			m.rt.Refresh.Broadcast(panel.FullRefresh)
			m.status = "broadcast FullRefresh"
		}
	case idleTickMsg:
		if m.fake != nil {
			m.fake.Advance(33)
		}
		m.rt.OnIdle(nil)
		return m, listenIdle()
	}
	return m, nil
}

func (m *model) pressPad(row, col int) {
	note := uint8(row*gridSize + col)
	ev := runtime.HostEvent{Status: midimsg.StatusNoteOn, Data1: note, Data2: midimsg.IsOnValue}
	m.rt.OnMidiMessage(&ev)
	m.status = fmt.Sprintf("pad (%d,%d) handled=%v", row, col, ev.Handled)
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(labelStyle.Render("rum simulator — arrow keys move, space/enter presses a pad, r=refresh, q=quit"))
	b.WriteString("\n\n")
	for r := gridSize - 1; r >= 0; r-- {
		for c := 0; c < gridSize; c++ {
			style := dimStyle
			if color := m.gridVals[r][c]; color != 0 {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(colorToHex(color)))
			}
			glyph := "."
			if r == m.cursorR && c == m.cursorC {
				glyph = "x"
			}
			b.WriteString(style.Render(glyph))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(displayBox.Render(m.display.Line(0) + "\n" + m.display.Line(1)))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	return b.String()
}

// colorToHex maps a Launchpad-style color index onto an RGB hex string
// using go-colorful so the simulator's grid has some visual variety without
// a full color-palette table.
func colorToHex(colorIndex int) string {
	hue := float64(colorIndex%128) / 128.0 * 360.0
	c := colorful.Hsv(hue, 0.8, 0.9)
	return c.Hex()
}
