// Package coretest provides in-memory Surface and Input implementations for tests.
package coretest

import (
	"github.com/vovakirdan/tui-pong/internal/core"
)

// CharWidth and CharHeight are the fake glyph metrics in playfield units.
const (
	CharWidth  = 10
	CharHeight = 20
)

// Op is one recorded drawing call.
type Op struct {
	Kind      string // "clear", "fill", "stroke" or "text"
	Color     core.Color
	Rect      core.RectF
	Thickness float64
	Text      string
}

// Surface records drawing calls instead of rasterizing them.
type Surface struct {
	W, H float64
	Ops  []Op
}

// NewSurface returns an empty recording surface of the given size.
func NewSurface(w, h float64) *Surface {
	return &Surface{W: w, H: h}
}

func (s *Surface) Width() float64  { return s.W }
func (s *Surface) Height() float64 { return s.H }

func (s *Surface) Clear() {
	s.Ops = append(s.Ops, Op{Kind: "clear"})
}

func (s *Surface) FillRect(c core.Color, r core.RectF) {
	s.Ops = append(s.Ops, Op{Kind: "fill", Color: c, Rect: r})
}

func (s *Surface) StrokeRect(c core.Color, r core.RectF, thickness float64) {
	s.Ops = append(s.Ops, Op{Kind: "stroke", Color: c, Rect: r, Thickness: thickness})
}

func (s *Surface) RenderText(str string, c core.Color) core.Text {
	return text{s: str, c: c}
}

func (s *Surface) DrawText(t core.Text, x, y float64) {
	s.Ops = append(s.Ops, Op{
		Kind:  "text",
		Color: t.Color(),
		Rect:  core.NewRectF(x, y, t.Width(), t.Height()),
		Text:  t.String(),
	})
}

// OpsOfKind returns the recorded operations of one kind.
func (s *Surface) OpsOfKind(kind string) []Op {
	var out []Op
	for _, op := range s.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset forgets all recorded operations.
func (s *Surface) Reset() {
	s.Ops = s.Ops[:0]
}

type text struct {
	s string
	c core.Color
}

func (t text) String() string    { return t.s }
func (t text) Color() core.Color { return t.c }
func (t text) Width() float64    { return float64(len([]rune(t.s))) * CharWidth }
func (t text) Height() float64   { return CharHeight }

// Input is a scripted input source.
type Input struct {
	Events []core.Event
	Frame  core.InputFrame
	Polls  int
}

// NewInput returns an input holding the given actions.
func NewInput(held ...core.Action) *Input {
	in := &Input{Frame: core.NewInputFrame()}
	for _, a := range held {
		in.Frame.Set(a)
	}
	return in
}

// Push queues events for the next poll.
func (in *Input) Push(events ...core.Event) {
	in.Events = append(in.Events, events...)
}

// PollEvents drains the queued events.
func (in *Input) PollEvents() []core.Event {
	in.Polls++
	events := in.Events
	in.Events = nil
	return events
}

// Held returns the scripted held actions.
func (in *Input) Held() core.InputFrame {
	return in.Frame
}
