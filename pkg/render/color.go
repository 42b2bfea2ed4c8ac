// pkg/render/color.go
package render

import "image/color"

// HealthbarColors holds the colors of the small bars drawn under actors.
type HealthbarColors struct {
	Frame color.RGBA
	Empty color.RGBA
	Fill  color.RGBA
}

// DefaultHealthbarColors — рамка, пустая часть и заполнение.
var DefaultHealthbarColors = HealthbarColors{
	Frame: color.RGBA{255, 140, 0, 255},
	Empty: color.RGBA{220, 20, 20, 255},
	Fill:  color.RGBA{40, 200, 40, 255},
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FlashScale returns per-channel multipliers for a damage flash that fades
// out over progress in [0, 1].
func FlashScale(progress float64) (r, g, b float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	// от белого к обычному цвету
	boost := 1 + (1-progress)*2
	return boost, 1 - (1-progress)*0.5, 1 - (1-progress)*0.5
}

// HealthbarLength returns the filled length of a bar of width w.
func HealthbarLength(health, maxHealth int, w float64) float64 {
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	if health > maxHealth {
		health = maxHealth
	}
	return float64(health) / float64(maxHealth) * w
}
