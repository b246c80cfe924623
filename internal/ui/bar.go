//go:build ebiten

package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"lifegrid/internal/render"
)

// ButtonBar draws the Start/Stop, Next and Clear controls under the grid.
type ButtonBar struct {
	layout Layout
}

// NewButtonBar constructs a ButtonBar for the provided layout.
func NewButtonBar(l Layout) *ButtonBar {
	return &ButtonBar{layout: l}
}

// Draw paints every button. The run state selects the toggle caption.
func (b *ButtonBar) Draw(screen *ebiten.Image, running bool) {
	for _, btn := range b.layout.Buttons() {
		b.drawButton(screen, btn.Rect, Label(btn.Cmd, running))
	}
}

func (b *ButtonBar) drawButton(screen *ebiten.Image, rect image.Rectangle, label string) {
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, render.DeadColor, false)
	vector.StrokeRect(screen, x, y, w, h, 1, render.LineColor, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()
	tx := rect.Min.X + (rect.Dx()-textWidth)/2
	ty := rect.Min.Y + (rect.Dy()-textHeight)/2 + textHeight
	text.Draw(screen, label, face, tx, ty, render.LiveColor)
}
