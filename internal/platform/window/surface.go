// Package window runs pong in a desktop window through Ebitengine. The
// window's logical size is the playfield, so pointer coordinates need no
// conversion.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// textScale enlarges the 7x13 bitmap font to a readable size.
const textScale = 2

var fontFace = text.NewGoXFace(basicfont.Face7x13)

var palette = map[core.Color]color.Color{
	core.ColorDefault: color.White,
	core.ColorBlack:   color.Black,
	core.ColorWhite:   color.White,
	core.ColorGray:    color.RGBA{0x80, 0x80, 0x80, 0xff},
	core.ColorGreen:   color.RGBA{0x00, 0xc0, 0x00, 0xff},
	core.ColorYellow:  color.RGBA{0xe0, 0xc0, 0x00, 0xff},
}

func rgba(c core.Color) color.Color {
	if v, ok := palette[c]; ok {
		return v
	}
	return color.White
}

// imageSurface draws onto an ebiten.Image whose size is the playfield.
type imageSurface struct {
	dst    *ebiten.Image
	width  float64
	height float64
}

func newImageSurface(dst *ebiten.Image, width, height float64) *imageSurface {
	return &imageSurface{dst: dst, width: width, height: height}
}

func (s *imageSurface) Width() float64  { return s.width }
func (s *imageSurface) Height() float64 { return s.height }

func (s *imageSurface) Clear() {
	s.dst.Fill(color.Black)
}

func (s *imageSurface) FillRect(c core.Color, r core.RectF) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(c), false)
}

func (s *imageSurface) StrokeRect(c core.Color, r core.RectF, thickness float64) {
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(thickness), rgba(c), false)
}

func (s *imageSurface) RenderText(str string, c core.Color) core.Text {
	w, h := text.Measure(str, fontFace, 0)
	return imageText{s: str, c: c, width: w * textScale, height: h * textScale}
}

func (s *imageSurface) DrawText(t core.Text, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(rgba(t.Color()))
	text.Draw(s.dst, t.String(), fontFace, op)
}

type imageText struct {
	s      string
	c      core.Color
	width  float64
	height float64
}

func (t imageText) String() string    { return t.s }
func (t imageText) Color() core.Color { return t.c }
func (t imageText) Width() float64    { return t.width }
func (t imageText) Height() float64   { return t.height }
