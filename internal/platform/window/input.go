package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pong/internal/core"
)

var (
	upKeys   = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	downKeys = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// windowInput samples Ebitengine's input state once per Update.
type windowInput struct {
	events []core.Event
}

// collect records the discrete events of the current tick.
func (in *windowInput) collect() {
	if ebiten.IsWindowBeingClosed() || anyJustPressed(quitKeys) {
		in.events = append(in.events, core.QuitEvent())
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.events = append(in.events, core.PointerRelease(float64(x), float64(y)))
	}
}

func (in *windowInput) PollEvents() []core.Event {
	events := in.events
	in.events = nil
	return events
}

func (in *windowInput) Held() core.InputFrame {
	frame := core.NewInputFrame()
	if anyPressed(upKeys) {
		frame.Set(core.ActionUp)
	}
	if anyPressed(downKeys) {
		frame.Set(core.ActionDown)
	}
	return frame
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
