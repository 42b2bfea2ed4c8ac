// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	LivesCols          = 5
	LifeCircleRadius   = 8.0
	LifeCircleSpacing  = 4.0
	healthBarWidth     = 160
	healthBarThickness = 12
)

// PlayerHealthIndicator отображает жизни кружками и здоровье корабля полосой.
type PlayerHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, fontFace font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, fontFace: fontFace}
}

// Draw рисует жизни сеткой кружков и полосу здоровья под ними.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, lives, health, maxHealth int) {
	for j := 0; j < lives; j++ {
		row := j / LivesCols
		col := j % LivesCols
		cx := i.X + float32(col)*(LifeCircleRadius*2+LifeCircleSpacing) + LifeCircleRadius
		cy := i.Y + float32(row)*(LifeCircleRadius*2+LifeCircleSpacing) + LifeCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, LifeCircleRadius, config.PhaseColor, true)
		vector.StrokeCircle(screen, cx, cy, LifeCircleRadius, 1, color.White, true)
	}

	rows := (max(lives, 1) + LivesCols - 1) / LivesCols
	barY := i.Y + float32(rows)*(LifeCircleRadius*2+LifeCircleSpacing) + 6
	c := render.DefaultHealthbarColors
	vector.DrawFilledRect(screen, i.X, barY, healthBarWidth, healthBarThickness, c.Frame, true)
	vector.DrawFilledRect(screen, i.X+1, barY+1, healthBarWidth-2, healthBarThickness-2, c.Empty, true)
	fill := float32(render.HealthbarLength(health, maxHealth, healthBarWidth-2))
	if fill > 0 {
		vector.DrawFilledRect(screen, i.X+1, barY+1, fill, healthBarThickness-2, c.Fill, true)
	}

	label := fmt.Sprintf("%d/%d", health, maxHealth)
	text.Draw(screen, label, i.fontFace, int(i.X), int(barY)+healthBarThickness+18, config.TextLightColor)
}
