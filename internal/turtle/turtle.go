// Package turtle implements the turtle's geometric state machine and its
// append-only line-segment recorder (spec.md §3, §4.3). There is no
// corpus repository that implements turtle graphics, so this package is
// grounded directly on the spec's own formulas; its struct/method shape
// and doc-comment density follow the teacher's objects.go (exported
// fields, one doc comment per exported method, worked examples for
// non-obvious math).
package turtle

import "math"

// LineSegment is one recorded pen-down movement. Segments are append-only:
// clearscreen is the only operation that removes any (spec.md §3).
type LineSegment struct {
	X1, Y1, X2, Y2 float64
	Color          string
	Size           float64
}

// State is the turtle: position, heading, pen configuration, visibility,
// and the ordered segments drawn so far. Heading is measured clockwise
// from the positive Y axis (0 = north/up) and is always normalized into
// [0, 360) after any movement or rotation (spec.md §3 invariant).
type State struct {
	X, Y    float64
	Heading float64
	penDown bool
	color   string
	size    float64
	visible bool
	lines   []LineSegment
}

// New creates a turtle at the origin, facing heading 0, pen down, with a
// black 1-unit pen, visible, and an empty line history.
func New() *State {
	return &State{penDown: true, color: "black", size: 1, visible: true}
}

// normalizeHeading folds any real degree value into [0, 360).
func normalizeHeading(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// recordIfDown appends a segment from (x1,y1) to (x2,y2) iff the pen is
// currently down; a pen-up movement records nothing (spec.md §3, §8
// "Pen-up invisibility").
func (s *State) recordIfDown(x1, y1, x2, y2 float64) {
	if !s.penDown {
		return
	}
	s.lines = append(s.lines, LineSegment{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: s.color, Size: s.size})
}

// moveTo updates the turtle's position to (x,y), recording a segment from
// the prior position iff the pen is down.
func (s *State) moveTo(x, y float64) {
	s.recordIfDown(s.X, s.Y, x, y)
	s.X, s.Y = x, y
}

// Forward advances the turtle by d units in the direction of its current
// heading: (x,y) -> (x + d*sin(heading), y + d*cos(heading)), heading in
// radians (spec.md §4.3). Records a segment iff the pen is down.
func (s *State) Forward(d float64) {
	rad := s.Heading * math.Pi / 180
	s.moveTo(s.X+d*math.Sin(rad), s.Y+d*math.Cos(rad))
}

// Back moves the turtle by d units opposite its heading: Back(d) is
// defined as Forward(-d) (spec.md §4.3).
func (s *State) Back(d float64) {
	s.Forward(-d)
}

// Right rotates the turtle clockwise by d degrees, normalizing the result
// into [0, 360).
func (s *State) Right(d float64) {
	s.Heading = normalizeHeading(s.Heading + d)
}

// Left rotates the turtle counter-clockwise by d degrees, normalizing the
// result into [0, 360).
func (s *State) Left(d float64) {
	s.Heading = normalizeHeading(s.Heading - d)
}

// SetXY moves directly to an absolute position, recording a segment iff
// the pen is down. Heading is unchanged.
func (s *State) SetXY(x, y float64) {
	s.moveTo(x, y)
}

// SetX moves to an absolute X, keeping Y unchanged.
func (s *State) SetX(x float64) {
	s.moveTo(x, s.Y)
}

// SetY moves to an absolute Y, keeping X unchanged.
func (s *State) SetY(y float64) {
	s.moveTo(s.X, y)
}

// SetHeading sets the heading directly, normalizing into [0, 360).
func (s *State) SetHeading(h float64) {
	s.Heading = normalizeHeading(h)
}

// Home is equivalent to SetXY(0, 0) followed by heading := 0: it emits a
// single segment from the current position to the origin iff the pen is
// down (spec.md §4.3, §8 "Homing").
func (s *State) Home() {
	s.moveTo(0, 0)
	s.Heading = 0
}

// Circle approximates a circle of radius r as 36 equal chords, each
// 2*pi*r/36 long, turning 10 degrees clockwise between chords (spec.md
// §4.3). A negative r draws the mirror image (the turtle still ends up
// facing its starting heading after the full loop).
func (s *State) Circle(r float64) {
	const steps = 36
	chord := 2 * math.Pi * r / steps
	for i := 0; i < steps; i++ {
		s.Forward(chord)
		s.Right(360.0 / steps)
	}
}

// Arc approximates an arc subtending a degrees of radius r as
// max(1, round(|a|/10)) equal chords, turning a/steps degrees between
// each (spec.md §4.3).
func (s *State) Arc(a, r float64) {
	steps := int(math.Round(math.Abs(a) / 10))
	if steps < 1 {
		steps = 1
	}
	chordAngle := a / float64(steps)
	// Chord length for a circle of radius r subtending chordAngle degrees.
	chordLen := 2 * r * math.Sin(chordAngle*math.Pi/360)
	for i := 0; i < steps; i++ {
		s.Forward(chordLen)
		s.Right(chordAngle)
	}
}

// ClearScreen empties the recorded line history and resets position to
// the origin and heading to 0; pen state (up/down, color, size) and
// visibility are preserved (spec.md §4.3).
func (s *State) ClearScreen() {
	s.lines = nil
	s.X, s.Y = 0, 0
	s.Heading = 0
}

// PenUp raises the pen: subsequent movement records no segments.
func (s *State) PenUp() { s.penDown = false }

// PenDown lowers the pen: subsequent movement records segments again.
func (s *State) PenDown() { s.penDown = true }

// SetPenColor sets the color recorded on future segments.
func (s *State) SetPenColor(c string) { s.color = c }

// SetPenSize sets the size recorded on future segments.
func (s *State) SetPenSize(sz float64) { s.size = sz }

// Hide makes the turtle invisible (does not affect movement or drawing).
func (s *State) Hide() { s.visible = false }

// Show makes the turtle visible again.
func (s *State) Show() { s.visible = true }

// ---------------------------------------------------------------------
// Read-only consumer interface (spec.md §6): after execution, an external
// collaborator (an SVG serializer, a test, a REPL) inspects final state
// and the recorded segments through these accessors only.
// ---------------------------------------------------------------------

// Position returns the turtle's current (x, y).
func (s *State) Position() (float64, float64) { return s.X, s.Y }

// HeadingDeg returns the turtle's current heading in [0, 360).
func (s *State) HeadingDeg() float64 { return s.Heading }

// IsPenDown reports whether the pen is currently down.
func (s *State) IsPenDown() bool { return s.penDown }

// IsVisible reports whether the turtle is currently visible.
func (s *State) IsVisible() bool { return s.visible }

// PenColor returns the current pen color.
func (s *State) PenColor() string { return s.color }

// PenSize returns the current pen size.
func (s *State) PenSize() float64 { return s.size }

// Segments returns the ordered line segments drawn so far, in draw order.
// The slice is owned by State; callers must not mutate it.
func (s *State) Segments() []LineSegment { return s.lines }
