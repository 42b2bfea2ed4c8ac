// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей фазы римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	BossColor        color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
	fontFace         font.Face
}

// NewWaveIndicator создает новый индикатор фазы.
func NewWaveIndicator(x, y int, fontFace font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.PhaseColor,
		BossColor:        config.BossPhaseColor,
		OutlineColor:     color.White,
		OutlineThickness: 2,
		fontFace:         fontFace,
	}
}

// Draw отрисовывает индикатор, центрируя текст по X.
func (i *WaveIndicator) Draw(screen *ebiten.Image, phase int, bossFight bool) {
	if phase <= 0 {
		return
	}
	label := utils.ToRoman(phase)

	// Красный, пока на поле босс
	textColor := i.Color
	if bossFight {
		textColor = i.BossColor
	}

	bounds := text.BoundString(i.fontFace, label)
	textX := i.X - bounds.Dx()/2
	textY := i.Y - bounds.Min.Y

	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			text.Draw(screen, label, i.fontFace, textX+x, textY+y, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.fontFace, textX, textY, textColor)
}
