// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-space-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	buttonWidth  = 300
	buttonHeight = 50
	buttonOffset = 5
)

// Button — объёмная кнопка меню: верхняя плашка «проседает» при нажатии.
type Button struct {
	Rect     image.Rectangle
	Text     string
	fontFace font.Face
	hovered  bool
	pressed  bool
}

// NewButton creates a button centered on (cx, cy).
func NewButton(cx, cy int, label string, fontFace font.Face) *Button {
	return &Button{
		Rect:     image.Rect(cx-buttonWidth/2, cy-buttonHeight/2, cx+buttonWidth/2, cy+buttonHeight/2),
		Text:     label,
		fontFace: fontFace,
	}
}

// Update tracks hover and press state and reports a click on release.
func (b *Button) Update() bool {
	x, y := ebiten.CursorPosition()
	b.hovered = image.Pt(x, y).In(b.Rect)
	if !b.hovered {
		b.pressed = false
		return false
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
		return false
	}
	clicked := b.pressed
	b.pressed = false
	return clicked
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	offset := float32(buttonOffset)
	if b.pressed {
		offset = 0
	}

	vector.DrawFilledRect(screen, x-2, y-2, w+4, h+4, color.Black, true)
	vector.DrawFilledRect(screen, x, y, w, h, config.ButtonBottomColor, true)

	top := config.ButtonTopColor
	if b.hovered {
		top = config.ButtonHoverColor
	}
	vector.DrawFilledRect(screen, x, y-offset, w, h, top, true)
	vector.StrokeRect(screen, x, y-offset, w, h, 2, color.Black, true)

	bounds := text.BoundString(b.fontFace, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y - int(offset)
	text.Draw(screen, b.Text, b.fontFace, textX, textY, color.Black)
}
