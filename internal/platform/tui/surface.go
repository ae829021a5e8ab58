package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// cellSurface scales a logical playfield onto a Screen. Every drawn rectangle
// covers at least one cell so the ball never disappears on small terminals.
type cellSurface struct {
	screen *core.Screen
	width  float64 // Playfield width
	height float64 // Playfield height
	cols   int
	rows   int
}

func newCellSurface(screen *core.Screen, width, height float64, cols, rows int) *cellSurface {
	s := &cellSurface{screen: screen, width: width, height: height}
	s.resize(cols, rows)
	return s
}

// resize sets the cell area the playfield is mapped onto.
func (s *cellSurface) resize(cols, rows int) {
	s.cols = max(cols, 1)
	s.rows = max(rows, 1)
}

// col and row convert playfield coordinates to fractional cell positions.
// Multiplying before dividing keeps whole-playfield edges exact.
func (s *cellSurface) col(x float64) float64 { return x * float64(s.cols) / s.width }
func (s *cellSurface) row(y float64) float64 { return y * float64(s.rows) / s.height }

// toCells maps a playfield rectangle to the cells it touches.
func (s *cellSurface) toCells(r core.RectF) core.Rect {
	x0 := int(math.Floor(s.col(r.Left())))
	y0 := int(math.Floor(s.row(r.Top())))
	x1 := max(x0+1, int(math.Ceil(s.col(r.Right()))))
	y1 := max(y0+1, int(math.Ceil(s.row(r.Bottom()))))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// toPlayfield maps the center of a cell back to playfield coordinates.
func (s *cellSurface) toPlayfield(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * s.width / float64(s.cols)
	y = (float64(row) + 0.5) * s.height / float64(s.rows)
	return x, y
}

func (s *cellSurface) Width() float64  { return s.width }
func (s *cellSurface) Height() float64 { return s.height }

func (s *cellSurface) Clear() {
	s.screen.Clear()
}

func (s *cellSurface) FillRect(c core.Color, r core.RectF) {
	s.screen.DrawRect(s.toCells(r), '█', c)
}

// StrokeRect draws a one-cell outline regardless of thickness.
func (s *cellSurface) StrokeRect(c core.Color, r core.RectF, _ float64) {
	s.screen.DrawBox(s.toCells(r), c)
}

func (s *cellSurface) RenderText(str string, c core.Color) core.Text {
	return cellText{
		s:      str,
		c:      c,
		width:  float64(lipgloss.Width(str)) * s.width / float64(s.cols),
		height: s.height / float64(s.rows),
	}
}

func (s *cellSurface) DrawText(t core.Text, x, y float64) {
	col := int(math.Round(s.col(x)))
	row := int(math.Round(s.row(y)))
	s.screen.DrawText(col, row, t.String(), t.Color())
}

// cellText is a string measured in playfield units for a given cell scale.
type cellText struct {
	s      string
	c      core.Color
	width  float64
	height float64
}

func (t cellText) String() string    { return t.s }
func (t cellText) Color() core.Color { return t.c }
func (t cellText) Width() float64    { return t.width }
func (t cellText) Height() float64   { return t.height }
