package picker

import (
	"log/slog"
	"math"

	"github.com/five82/swatch/internal/colormodel"
)

// Component identifies one of the four HSLA knobs.
type Component int

const (
	Hue Component = iota
	Saturation
	Lightness
	Transparency
)

func (c Component) String() string {
	switch c {
	case Hue:
		return "hue"
	case Saturation:
		return "saturation"
	case Lightness:
		return "lightness"
	case Transparency:
		return "transparency"
	default:
		return "unknown"
	}
}

// ChangeFunc is called with the new canonical value after every accepted
// update.
type ChangeFunc func(value string)

// State is the single source of truth for a picker: the canonical color
// string plus its decomposed HSLA components. Both views are only mutated
// together, through SetValue or SetComponent.
type State struct {
	value      string
	components colormodel.HSLA

	listeners []*listener
}

type listener struct {
	fn ChangeFunc
}

// NewState returns a State holding value. An unparsable value leaves the
// state empty.
func NewState(value string) *State {
	s := &State{}
	s.SetValue(value)
	return s
}

// Value returns the canonical color string.
func (s *State) Value() string {
	return s.value
}

// Components returns the current HSLA components.
func (s *State) Components() colormodel.HSLA {
	return s.components
}

// OnChange registers fn and returns a function that removes it.
func (s *State) OnChange(fn ChangeFunc) (remove func()) {
	l := &listener{fn: fn}
	s.listeners = append(s.listeners, l)
	return func() {
		for i, cur := range s.listeners {
			if cur == l {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// SetValue sets the canonical value from a color string. It reports whether
// the value changed.
//
// Hue, saturation and lightness are only replaced when the new component
// rounds to a different integer than the stored one, so a value that
// round-trips through string conversion does not nudge a knob the user has
// not moved. Transparency is always replaced, and an empty state adopts
// every component of its first value. Strings that do not parse are ignored.
func (s *State) SetValue(value string) bool {
	if value == s.value {
		return false
	}
	c, err := colormodel.ToHSLA(value)
	if err != nil {
		slog.Debug("ignoring color value", "value", value, "error", err)
		return false
	}

	seed := s.value == ""
	if seed || math.Round(s.components.H) != math.Round(c.H) {
		s.components.H = c.H
	}
	if seed || math.Round(s.components.S) != math.Round(c.S) {
		s.components.S = c.S
	}
	if seed || math.Round(s.components.L) != math.Round(c.L) {
		s.components.L = c.L
	}
	s.components.A = c.A
	s.value = value
	s.notify()
	return true
}

// SetComponent overwrites a single component and rebuilds the canonical
// value from all four.
func (s *State) SetComponent(which Component, v float64) {
	switch which {
	case Hue:
		s.components.H = v
	case Saturation:
		s.components.S = v
	case Lightness:
		s.components.L = v
	case Transparency:
		s.components.A = v
	default:
		return
	}
	s.recompute()
}

// SetSaturationLightness updates both axes of the saturation/lightness
// plane with a single recomputation and notification.
func (s *State) SetSaturationLightness(sat, light float64) {
	s.components.S = sat
	s.components.L = light
	s.recompute()
}

// snapshot captures both views so a cancel can restore them exactly.
type snapshot struct {
	value      string
	components colormodel.HSLA
}

func (s *State) snapshot() snapshot {
	return snapshot{value: s.value, components: s.components}
}

// restore reinstates a snapshot and always notifies, even when nothing
// changed.
func (s *State) restore(snap snapshot) {
	s.value = snap.value
	s.components = snap.components
	s.notify()
}

func (s *State) recompute() {
	s.components = normalize(s.components)
	s.value = colormodel.FromHSLA(s.components.H, s.components.S, s.components.L, s.components.A)
	s.notify()
}

func (s *State) notify() {
	for _, l := range append([]*listener(nil), s.listeners...) {
		l.fn(s.value)
	}
}

// normalize keeps stored components inside their legal ranges so they stay
// consistent with the formatted value.
func normalize(c colormodel.HSLA) colormodel.HSLA {
	c.H = math.Mod(c.H, 360)
	if c.H < 0 {
		c.H += 360
	}
	c.S = math.Max(0, math.Min(100, c.S))
	c.L = math.Max(0, math.Min(100, c.L))
	c.A = math.Max(0, math.Min(1, c.A))
	return c
}
