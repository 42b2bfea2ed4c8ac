// internal/ui/player_level_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerLevelIndicator отображает полосу заполнения и ряд ячеек уровня,
// например урон оружия в его допустимых границах и занятые слоты дронов.
type PlayerLevelIndicator struct {
	X, Y float32
}

const (
	barWidth        = 160
	barHeight       = 12
	levelRectWidth  = 16
	levelRectHeight = 12
	levelRectGap    = 9
	borderWidth     = 1
)

var (
	barColorFill = color.RGBA{70, 100, 120, 220}
	borderColor  = color.White
)

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор. ratio обрезается до [0, 1].
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, ratio float64, level, maxLevel int) {
	// 1. Обводка полосы
	vector.StrokeRect(screen, i.X, i.Y, barWidth, barHeight, borderWidth, borderColor, true)

	// 2. Заполненная часть полосы
	ratio = min(max(ratio, 0), 1)
	fillWidth := float32(float64(barWidth-borderWidth*2) * ratio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, barHeight-borderWidth*2, barColorFill, true)
	}

	// 3. Прямоугольники уровня
	rectY := i.Y + barHeight + 10
	for j := 0; j < maxLevel; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, rectY, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < level {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, barColorFill, true)
		}
	}
}
