package core

// Text is a rendered string with measurable extent in playfield units.
type Text interface {
	String() string
	Color() Color
	Width() float64
	Height() float64
}

// Surface is a fixed-size drawing canvas in playfield units.
// Backends implement it over a terminal cell grid or a window image.
type Surface interface {
	Width() float64
	Height() float64

	// Clear fills the whole surface with the background color.
	Clear()

	// FillRect fills r with c.
	FillRect(c Color, r RectF)

	// StrokeRect draws the outline of r with the given thickness.
	StrokeRect(c Color, r RectF, thickness float64)

	// RenderText prepares s for drawing so it can be measured first.
	RenderText(s string, c Color) Text

	// DrawText draws t with its top-left corner at (x, y).
	DrawText(t Text, x, y float64)
}
