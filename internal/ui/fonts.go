// internal/ui/fonts.go
package ui

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts — набор шрифтов для HUD и меню.
type Fonts struct {
	Regular font.Face
	Title   font.Face
	Small   font.Face
}

// LoadFonts parses the bundled Go Regular face at the three HUD sizes.
func LoadFonts(size float64) (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	newFace := func(sz float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    sz,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	regular, err := newFace(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	title, err := newFace(size * 2)
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	small, err := newFace(size * 0.7)
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return &Fonts{Regular: regular, Title: title, Small: small}, nil
}
