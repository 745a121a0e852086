package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/bricks/internal/core"
)

// background is the field color.
var background = color.RGBA{0xee, 0xee, 0xee, 0xff}

// imageCanvas draws field units 1:1 onto an ebiten image.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) Clear() {
	c.dst.Fill(background)
}

func (c imageCanvas) FillRect(x, y, w, h float64, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col.RGBA(), true)
}

func (c imageCanvas) FillCircle(cx, cy, r float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col.RGBA(), true)
}

// DrawText uses the debug font, which is always white; a colored backing
// plate keeps it readable on the light field.
func (c imageCanvas) DrawText(x, y float64, text string, col core.Color) {
	w := float32(len(text) * debugGlyphW)
	vector.DrawFilledRect(c.dst, float32(x)-2, float32(y)-2, w+4, debugGlyphH+4, col.RGBA(), false)
	ebitenutil.DebugPrintAt(c.dst, text, int(x), int(y))
}
