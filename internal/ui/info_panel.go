// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelMargin = 5
	lineHeight  = 26
)

// InfoPanel — левая колонка HUD: жизни, здоровье, оружие и дроны.
type InfoPanel struct {
	fontFace      font.Face
	titleFontFace font.Face
	health        *PlayerHealthIndicator
	damage        *PlayerLevelIndicator
	tuning        *config.Tuning
}

// NewInfoPanel creates the side panel to the left of the play field.
func NewInfoPanel(fonts *Fonts, tuning *config.Tuning) *InfoPanel {
	x := float32(panelMargin + 10)
	return &InfoPanel{
		fontFace:      fonts.Small,
		titleFontFace: fonts.Regular,
		health:        NewPlayerHealthIndicator(x, config.FieldOffsetY+40, fonts.Small),
		damage:        NewPlayerLevelIndicator(x, config.FieldOffsetY+260),
		tuning:        tuning,
	}
}

func weaponTitle(w defs.WeaponID) string {
	switch w {
	case defs.WeaponRocket:
		return "Rockets"
	case defs.WeaponSpray:
		return "Spray"
	default:
		return "Parallel"
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap component.HUDSnapshot) {
	w := float32(config.FieldOffsetX - 2*panelMargin)
	h := float32(config.FieldHeight)
	x, y := float32(panelMargin), float32(config.FieldOffsetY)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.PhaseColor, true)

	startX := int(x) + 10
	text.Draw(screen, "Ship", p.titleFontFace, startX, int(y)+28, config.TextLightColor)
	p.health.Draw(screen, snap.Lives, snap.Health, snap.MaxHealth)

	ty := int(y) + 200
	text.Draw(screen, weaponTitle(snap.Weapon), p.titleFontFace, startX, ty, config.TextLightColor)
	ty += lineHeight
	text.Draw(screen, fmt.Sprintf("Damage: %d", snap.Damage), p.fontFace, startX, ty, config.TextLightColor)

	// Полоса урона в границах класса оружия, ячейки — дроны
	wt := p.tuning.Player.Laser
	if snap.Weapon.RocketClass() {
		wt = p.tuning.Player.Rocket
	}
	mult := max(snap.Multiplicand, 1)
	lo, hi := wt.DamageMin*mult, wt.DamageMax*mult
	ratio := 0.0
	if hi > lo {
		ratio = float64(snap.Damage-lo) / float64(hi-lo)
	}
	p.damage.Draw(screen, ratio, snap.Drones, len(component.PlayerState{}.Drones))

	ty += 80
	text.Draw(screen, fmt.Sprintf("Interval: %.2fs", snap.FireRate), p.fontFace, startX, ty, config.TextLightColor)
	if snap.Weapon == defs.WeaponSpray {
		ty += lineHeight
		text.Draw(screen, fmt.Sprintf("Beams: %d", snap.SprayBeams), p.fontFace, startX, ty, config.TextLightColor)
	}
	ty += lineHeight
	text.Draw(screen, fmt.Sprintf("Drones: %d", snap.Drones), p.fontFace, startX, ty, config.TextLightColor)
	ty += lineHeight
	text.Draw(screen, fmt.Sprintf("Difficulty: x%d", snap.Multiplicand), p.fontFace, startX, ty, config.TextLightColor)
}
