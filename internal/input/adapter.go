// Package input turns cursor and touch events into a single pointer position.
package input

import "math"

// Pointer is the logical pointer in surface-local coordinates.
type Pointer struct {
	X, Y    float64
	Present bool
}

// Touch is one active touch point.
type Touch struct {
	X, Y int
}

// Snapshot is one frame of raw input.
type Snapshot struct {
	CursorX, CursorY int
	Touches          []Touch // active touches, first one drives the pointer
	TouchEnded       bool    // a touch was released this frame
	Focused          bool
	Width, Height    int // surface size
}

// Adapter is the only writer of the pointer it wraps.
type Adapter struct {
	pointer *Pointer

	lastCursorX, lastCursorY int
	cursorSeen               bool
	touching                 bool
}

func NewAdapter(p *Pointer) *Adapter {
	return &Adapter{pointer: p}
}

// Move records a pointer position. Non-finite coordinates count as leaving.
func (a *Adapter) Move(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		a.Leave()
		return
	}
	a.pointer.X, a.pointer.Y = x, y
	a.pointer.Present = true
}

// Leave marks the pointer absent.
func (a *Adapter) Leave() {
	a.pointer.Present = false
}

// Apply folds a snapshot into the pointer.
// An active touch wins over the cursor. Releasing the last touch or losing focus
// clears the pointer. The cursor only moves the pointer when it actually moved,
// so a stale cursor position does not revive the pointer after a touch ends.
func (a *Adapter) Apply(s Snapshot) {
	if !s.Focused {
		a.Leave()
		a.touching = false
		return
	}

	if len(s.Touches) > 0 {
		a.touching = true
		a.Move(float64(s.Touches[0].X), float64(s.Touches[0].Y))
		return
	}
	if s.TouchEnded || a.touching {
		a.touching = false
		a.Leave()
		a.remember(s)
		return
	}

	moved := !a.cursorSeen || s.CursorX != a.lastCursorX || s.CursorY != a.lastCursorY
	a.remember(s)

	inside := s.CursorX >= 0 && s.CursorY >= 0 && s.CursorX < s.Width && s.CursorY < s.Height
	switch {
	case !inside:
		a.Leave()
	case moved:
		a.Move(float64(s.CursorX), float64(s.CursorY))
	}
}

func (a *Adapter) remember(s Snapshot) {
	a.lastCursorX, a.lastCursorY = s.CursorX, s.CursorY
	a.cursorSeen = true
}
