// internal/ui/text.go
package ui

import (
	"image/color"

	"go-space-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered draws s horizontally centered on the screen with its top at y.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, y int, c color.Color) {
	bounds := text.BoundString(face, s)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y-bounds.Min.Y, c)
}
