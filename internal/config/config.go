// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1600
	ScreenHeight = 900

	// Игровое поле внутри окна
	FieldOffsetX = 195
	FieldOffsetY = 95
	FieldWidth   = 1400
	FieldHeight  = 800
	FieldBorder  = 5

	MaxDeltaTime = 0.06

	// Projectiles die once they cross an edge by more than this margin.
	ProjectileMargin = 10.0

	HealthbarHeight = 6
	HUDFontSize     = 24
	HUDMargin       = 8

	LeaderboardSize = 10
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	FieldColor      = color.RGBA{10, 14, 40, 255}
	BorderColor     = color.RGBA{247, 247, 247, 255}
	TextLightColor  = color.RGBA{247, 247, 247, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	StarColor       = color.RGBA{200, 200, 220, 255}
	PhaseColor      = color.RGBA{70, 130, 180, 255}
	BossPhaseColor  = color.RGBA{220, 60, 60, 255}

	ButtonTopColor    = color.RGBA{244, 164, 96, 255}
	ButtonHoverColor  = color.RGBA{222, 184, 135, 255}
	ButtonBottomColor = color.RGBA{210, 180, 140, 255}
)
