// Package registry holds the mutable button/encoder/slider state consulted
// by matchers and handlers: last-write-wins maps with default-returning
// reads for unknown keys.
package registry

// Registry holds button_down, encoders, and sliders state (§3). It is
// scoped to one Runtime rather than a package-level global, per the "global
// singletons" redesign note in spec.md §9; tests construct their own.
type Registry struct {
	buttonDown map[string]bool
	encoders   map[string]float64
	sliders    map[string]float64
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		buttonDown: make(map[string]bool),
		encoders:   make(map[string]float64),
		sliders:    make(map[string]float64),
	}
}

// ButtonDown returns the last-written down state for name, or false if
// never set.
func (r *Registry) ButtonDown(name string) bool {
	return r.buttonDown[name]
}

// SetButtonDown records the down state for name.
func (r *Registry) SetButtonDown(name string, down bool) {
	r.buttonDown[name] = down
}

// ClearButtonDown removes the entry for name, returning ButtonDown to its
// false default.
func (r *Registry) ClearButtonDown(name string) {
	delete(r.buttonDown, name)
}

// Encoder returns the last decoded value for name, or 0.0 if never set.
func (r *Registry) Encoder(name string) float64 {
	return r.encoders[name]
}

// SetEncoder records the last decoded value for name. The decoder never
// accumulates (§4.3); accumulation, if wanted, is the caller's
// responsibility.
func (r *Registry) SetEncoder(name string, value float64) {
	r.encoders[name] = value
}

// Slider returns the last decoded value for name, or 0.0 if never set.
func (r *Registry) Slider(name string) float64 {
	return r.sliders[name]
}

// SetSlider records the last decoded value for name.
func (r *Registry) SetSlider(name string, value float64) {
	r.sliders[name] = value
}

// Clear resets all three maps. Intended for test hooks only (§3: "cleared
// only by explicit test hooks").
func (r *Registry) Clear() {
	r.buttonDown = make(map[string]bool)
	r.encoders = make(map[string]float64)
	r.sliders = make(map[string]float64)
}
