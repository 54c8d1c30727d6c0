// Package displays implements the character-grid Display abstractions of
// §4.5: a direct grid, a windowed view, a scrolling marquee overlay, and a
// paged display with a temporary-page expiration.
package displays

import (
	"github.com/mattn/go-runewidth"

	"github.com/rjuang/rum/scheduler"
)

// Display is a rectangular character grid: lines are fixed-width, padded or
// truncated on assignment.
type Display interface {
	Width() int
	Height() int
	SetLine(row int, text string)
	Line(row int) string
	Push()
}

// DirectDisplay is the base Display implementation: a W x H character grid
// with a push hook invoked after every mutation. Padding/truncation uses
// go-runewidth so multi-byte glyphs (used by the scrolling marquee) don't
// corrupt column alignment the way naive byte slicing would.
type DirectDisplay struct {
	width, height int
	lines         []string
	pushFn        func()
}

// NewDirectDisplay creates a width x height grid, all lines blank.
func NewDirectDisplay(width, height int, pushFn func()) *DirectDisplay {
	if width <= 0 || height <= 0 {
		panic("displays: NewDirectDisplay requires positive width and height")
	}
	lines := make([]string, height)
	blank := runewidth.FillRight("", width)
	for i := range lines {
		lines[i] = blank
	}
	return &DirectDisplay{width: width, height: height, lines: lines, pushFn: pushFn}
}

func (d *DirectDisplay) Width() int  { return d.width }
func (d *DirectDisplay) Height() int { return d.height }

// SetLine assigns row, padding with spaces or truncating to exactly Width
// display columns.
func (d *DirectDisplay) SetLine(row int, text string) {
	d.checkRow(row)
	d.lines[row] = fitWidth(text, d.width)
	d.Push()
}

// Line returns the current fixed-width content of row.
func (d *DirectDisplay) Line(row int) string {
	d.checkRow(row)
	return d.lines[row]
}

// Push invokes the push hook, if any. DirectDisplay calls this itself after
// every SetLine; it's exported so wrapping displays (DisplayWindow) can
// forward pushes through.
func (d *DirectDisplay) Push() {
	if d.pushFn != nil {
		d.pushFn()
	}
}

func (d *DirectDisplay) checkRow(row int) {
	if row < 0 || row >= d.height {
		panic("displays: row out of range")
	}
}

// fitWidth truncates or right-pads text to exactly width display columns.
func fitWidth(text string, width int) string {
	if runewidth.StringWidth(text) > width {
		return runewidth.Truncate(text, width, "")
	}
	return runewidth.FillRight(text, width)
}

// DisplayWindow is a rectangular sub-view of an underlying Display: writes
// and pushes write through.
type DisplayWindow struct {
	under                   Display
	row, col, width, height int
}

// NewDisplayWindow creates a window of width x height anchored at
// (row, col) within under. The window's own row indices are relative:
// window row 0 is under's row+0, etc.
func NewDisplayWindow(under Display, row, col, width, height int) *DisplayWindow {
	if row < 0 || col < 0 || row+height > under.Height() || col+width > under.Width() {
		panic("displays: window does not fit within underlying display")
	}
	return &DisplayWindow{under: under, row: row, col: col, width: width, height: height}
}

func (w *DisplayWindow) Width() int  { return w.width }
func (w *DisplayWindow) Height() int { return w.height }

func (w *DisplayWindow) SetLine(row int, text string) {
	w.checkRow(row)
	full := w.under.Line(w.row + row)
	prefix := runewidth.Truncate(full, w.col, "")
	prefix = runewidth.FillRight(prefix, w.col)
	suffixStart := w.col + w.width
	suffix := ""
	if runewidth.StringWidth(full) > suffixStart {
		suffix = sliceFromWidth(full, suffixStart)
	}
	w.under.SetLine(w.row+row, prefix+fitWidth(text, w.width)+suffix)
}

func (w *DisplayWindow) Line(row int) string {
	w.checkRow(row)
	full := w.under.Line(w.row + row)
	return sliceWidthRange(full, w.col, w.col+w.width)
}

func (w *DisplayWindow) Push() {
	w.under.Push()
}

func (w *DisplayWindow) checkRow(row int) {
	if row < 0 || row >= w.height {
		panic("displays: row out of range")
	}
}

// sliceFromWidth returns the suffix of s starting at display column from.
func sliceFromWidth(s string, from int) string {
	return sliceWidthRange(s, from, runewidth.StringWidth(s))
}

// sliceWidthRange returns the substring of s spanning display columns
// [from, to).
func sliceWidthRange(s string, from, to int) string {
	if to <= from {
		return ""
	}
	runes := []rune(s)
	var out []rune
	col := 0
	for _, r := range runes {
		w := runewidth.RuneWidth(r)
		if col >= from && col < to {
			out = append(out, r)
		}
		col += w
		if col >= to {
			break
		}
	}
	return string(out)
}

// ScrollingDisplay overlays a marquee behavior on a window whose logical
// line exceeds its width: for any line longer than width, it schedules a
// repeating thunk that rewrites the window with a rolling offset and
// configurable inter-word padding. Setting a line resets its offset.
type ScrollingDisplay struct {
	under      *DisplayWindow
	sched      *scheduler.Scheduler
	intervalMs int64
	padding    string

	logical []string
	offset  []int
	pending []scheduler.Handle
	running []bool
}

// NewScrollingDisplay wraps under with marquee behavior, stepping every
// intervalMs, separating the wrap-around repeat of a line's text with
// padding (e.g. "   ").
func NewScrollingDisplay(under *DisplayWindow, sched *scheduler.Scheduler, intervalMs int64, padding string) *ScrollingDisplay {
	h := under.Height()
	return &ScrollingDisplay{
		under:      under,
		sched:      sched,
		intervalMs: intervalMs,
		padding:    padding,
		logical:    make([]string, h),
		offset:     make([]int, h),
		pending:    make([]scheduler.Handle, h),
		running:    make([]bool, h),
	}
}

func (d *ScrollingDisplay) Width() int  { return d.under.Width() }
func (d *ScrollingDisplay) Height() int { return d.under.Height() }

// SetLine assigns row's logical text, resetting its scroll offset. If the
// text fits within Width, it is written directly and no marquee is started.
// If it does not fit, a repeating scroll thunk is (re)started.
func (d *ScrollingDisplay) SetLine(row int, text string) {
	d.stopRow(row)
	d.logical[row] = text
	d.offset[row] = 0

	if runewidth.StringWidth(text) <= d.under.Width() {
		d.under.SetLine(row, text)
		return
	}
	d.under.SetLine(row, d.window(row))
	d.startRow(row)
}

func (d *ScrollingDisplay) window(row int) string {
	full := d.logical[row] + d.padding
	width := d.under.Width()
	runes := []rune(full)
	n := len(runes)
	off := d.offset[row] % n
	var out []rune
	col := 0
	i := off
	for col < width {
		r := runes[i%n]
		out = append(out, r)
		col += runewidth.RuneWidth(r)
		i++
	}
	return string(out)
}

func (d *ScrollingDisplay) startRow(row int) {
	d.running[row] = true
	d.scheduleRow(row)
}

func (d *ScrollingDisplay) scheduleRow(row int) {
	d.pending[row] = d.sched.Schedule(func() {
		if !d.running[row] {
			return
		}
		d.offset[row]++
		d.under.SetLine(row, d.window(row))
		d.scheduleRow(row)
	}, d.intervalMs)
}

func (d *ScrollingDisplay) stopRow(row int) {
	if !d.running[row] {
		return
	}
	d.running[row] = false
	d.sched.Cancel(d.pending[row])
}

func (d *ScrollingDisplay) Line(row int) string {
	return d.logical[row]
}

func (d *ScrollingDisplay) Push() {
	d.under.Push()
}

// PagedDisplay holds named pages, an active page, and an optional temporary
// page with a scheduled expiration.
type PagedDisplay struct {
	under       *DirectDisplay
	sched       *scheduler.Scheduler
	pages       map[string][]string
	active      string
	tempPending scheduler.Handle
	hasTemp     bool
}

// NewPagedDisplay creates a PagedDisplay writing through to under.
func NewPagedDisplay(under *DirectDisplay, sched *scheduler.Scheduler) *PagedDisplay {
	return &PagedDisplay{under: under, sched: sched, pages: make(map[string][]string)}
}

// SetPage stores (or replaces) the content of a named page. Setting the
// currently active page re-renders it immediately.
func (d *PagedDisplay) SetPage(name string, lines []string) {
	cp := make([]string, len(lines))
	copy(cp, lines)
	d.pages[name] = cp
	if name == d.active {
		d.render(cp)
	}
}

// SetActivePage activates a named page: copies it into the underlying
// display and pushes. Activating the already-active page re-renders once
// and is otherwise idempotent.
func (d *PagedDisplay) SetActivePage(name string) {
	d.active = name
	d.render(d.pages[name])
}

// ActivePage returns the name of the currently active page.
func (d *PagedDisplay) ActivePage() string { return d.active }

// SetTemporaryPage renders lines immediately and schedules a reset back to
// the active page after expirationMs, canceling any previously pending
// reset.
func (d *PagedDisplay) SetTemporaryPage(lines []string, expirationMs int64) {
	if d.hasTemp {
		d.sched.Cancel(d.tempPending)
	}
	d.render(lines)
	savedActive := d.active
	d.tempPending = d.sched.Schedule(func() {
		d.hasTemp = false
		d.render(d.pages[savedActive])
	}, expirationMs)
	d.hasTemp = true
}

func (d *PagedDisplay) render(lines []string) {
	for i := 0; i < d.under.Height(); i++ {
		if i < len(lines) {
			d.under.SetLine(i, lines[i])
		} else {
			d.under.SetLine(i, "")
		}
	}
}
