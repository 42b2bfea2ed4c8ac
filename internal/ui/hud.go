// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/leaderboard"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD рисует верхнюю строку (счёт, фаза), боковую панель и отсчёт фазы.
type HUD struct {
	fonts *Fonts
	phase *WaveIndicator
	panel *InfoPanel
	Pause *PauseButton
}

func NewHUD(fonts *Fonts, tuning *config.Tuning) *HUD {
	return &HUD{
		fonts: fonts,
		phase: NewWaveIndicator(config.ScreenWidth/2, config.HUDMargin*2, fonts.Title),
		panel: NewInfoPanel(fonts, tuning),
		Pause: NewPauseButton(config.ScreenWidth-40, config.FieldOffsetY/2, 12,
			config.PhaseColor, config.ButtonTopColor),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap component.HUDSnapshot) {
	score := fmt.Sprintf("%d", snap.Score)
	text.Draw(screen, score, h.fonts.Title, config.FieldOffsetX, config.FieldOffsetY-24, config.TextLightColor)

	h.phase.Draw(screen, snap.Phase, snap.BossFight)
	h.panel.Draw(screen, snap)
	h.Pause.Draw(screen)

	if snap.Countdown > 0 {
		label := fmt.Sprintf("Phase %d", snap.Phase)
		n := fmt.Sprintf("%d", int(math.Ceil(snap.Countdown)))
		DrawCentered(screen, label, h.fonts.Title, config.ScreenHeight/2-40, config.TextLightColor)
		DrawCentered(screen, n, h.fonts.Title, config.ScreenHeight/2+20, config.TextLightColor)
	}
}

// DrawLeaderboard draws the table centered at the given y.
func DrawLeaderboard(screen *ebiten.Image, fonts *Fonts, entries []leaderboard.Entry, top int, highlight int) {
	DrawCentered(screen, "Leaderboard", fonts.Regular, top, config.TextLightColor)
	y := top + 36
	for i, e := range entries {
		c := color.Color(config.TextLightColor)
		if i+1 == highlight {
			c = config.ButtonTopColor
		}
		DrawCentered(screen, fmt.Sprintf("%2d. %-16s %8d", i+1, e.Name, e.Score), fonts.Small, y, c)
		y += 24
	}
}

// Dim darkens the whole screen, e.g. under the pause label.
func Dim(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
}
