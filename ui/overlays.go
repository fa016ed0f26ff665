package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Overlay is a togglable layer drawn on top of the board or screen.
type Overlay uint8

const (
	OverlayGrid Overlay = iota
	OverlayPath
	OverlayPerf
	OverlayControls
	overlayCount
)

type overlayBinding struct {
	key   int32
	label string
	name  string
}

// overlayBindings is indexed by Overlay; it is also the display order.
var overlayBindings = [overlayCount]overlayBinding{
	OverlayGrid:     {rl.KeyG, "G", "Grid lines"},
	OverlayPath:     {rl.KeyP, "P", "Food path"},
	OverlayPerf:     {rl.KeyF, "F", "Tick timings"},
	OverlayControls: {rl.KeyH, "H", "Controls"},
}

// Name returns the label shown in the controls panel.
func (o Overlay) Name() string {
	if o >= overlayCount {
		return ""
	}
	return overlayBindings[o].name
}

// KeyLabel returns the toggle key as printed in the controls panel.
func (o Overlay) KeyLabel() string {
	if o >= overlayCount {
		return ""
	}
	return overlayBindings[o].label
}

// Overlays is the set of enabled overlays. The zero value has all off.
type Overlays uint8

func (s Overlays) Has(o Overlay) bool { return s&(1<<o) != 0 }

// Set enables or disables o.
func (s *Overlays) Set(o Overlay, on bool) {
	if o >= overlayCount {
		return
	}
	if on {
		*s |= 1 << o
	} else {
		*s &^= 1 << o
	}
}

// Toggle flips o and returns its new state.
func (s *Overlays) Toggle(o Overlay) bool {
	s.Set(o, !s.Has(o))
	return s.Has(o)
}

// HandleKey toggles the overlay bound to key, if any.
func (s *Overlays) HandleKey(key int32) (Overlay, bool) {
	for o, b := range overlayBindings {
		if b.key == key {
			s.Toggle(Overlay(o))
			return Overlay(o), true
		}
	}
	return 0, false
}
