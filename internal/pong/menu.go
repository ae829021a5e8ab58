package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Menu button layout in playfield units.
const (
	ButtonWidth     = 200
	ButtonHeight    = 50
	ButtonSpacing   = 100 // Vertical distance between button centers
	ButtonThickness = 2
)

// Button is a clickable difficulty region.
type Button struct {
	Rect       core.RectF
	Difficulty Difficulty
}

// Menu is the difficulty selection screen.
type Menu struct {
	width   float64
	height  float64
	buttons []Button
}

// NewMenu lays out one button per difficulty, stacked around the center.
func NewMenu(width, height float64) *Menu {
	m := &Menu{width: width, height: height}
	cx, cy := width/2, height/2
	for i, d := range Difficulties() {
		offset := float64(i-1) * ButtonSpacing
		m.buttons = append(m.buttons, Button{
			Rect:       core.CenteredAt(cx, cy+offset, ButtonWidth, ButtonHeight),
			Difficulty: d,
		})
	}
	return m
}

// Buttons returns the menu buttons in display order.
func (m *Menu) Buttons() []Button {
	return m.buttons
}

// Hit returns the difficulty whose button contains (x, y).
func (m *Menu) Hit(x, y float64) (Difficulty, bool) {
	for _, b := range m.buttons {
		if b.Rect.Contains(x, y) {
			return b.Difficulty, true
		}
	}
	return DifficultyMedium, false
}

// Render draws the menu.
func (m *Menu) Render(dst core.Surface) {
	dst.Clear()
	for _, b := range m.buttons {
		dst.StrokeRect(core.ColorWhite, b.Rect, ButtonThickness)

		label := dst.RenderText(b.Difficulty.Title(), core.ColorWhite)
		cx, cy := b.Rect.Center()
		dst.DrawText(label, cx-label.Width()/2, cy-label.Height()/2)
	}
}
