// pkg/mask/mask.go
package mask

import (
	"image"
)

// DefaultThreshold — пиксель считается непрозрачным, если альфа строго больше порога.
const DefaultThreshold = 127

// Mask is a per-pixel opacity bitmap of a sprite frame.
type Mask struct {
	W, H int
	bits []bool
}

// New creates an empty (fully transparent) mask of the given size.
func New(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{W: w, H: h, bits: make([]bool, w*h)}
}

// Full creates a mask where every pixel is opaque.
func Full(w, h int) *Mask {
	m := New(w, h)
	for i := range m.bits {
		m.bits[i] = true
	}
	return m
}

// FromImage builds a mask from the alpha channel of img.
func FromImage(img image.Image) *Mask {
	return FromImageThreshold(img, DefaultThreshold)
}

// FromImageThreshold builds a mask marking pixels with alpha > threshold as opaque.
func FromImageThreshold(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if uint8(a>>8) > threshold {
				m.bits[y*m.W+x] = true
			}
		}
	}
	return m
}

// At reports whether the pixel at (x, y) is opaque. Out of range is transparent.
func (m *Mask) At(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Set marks the pixel at (x, y).
func (m *Mask) Set(x, y int, opaque bool) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.bits[y*m.W+x] = opaque
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// FlipH returns a horizontally mirrored copy.
func (m *Mask) FlipH() *Mask {
	out := New(m.W, m.H)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			out.bits[y*m.W+(m.W-1-x)] = m.bits[y*m.W+x]
		}
	}
	return out
}

// Overlap reports whether b, placed at offset (dx, dy) relative to a's
// top-left corner, shares at least one opaque pixel with a.
func Overlap(a, b *Mask, dx, dy int) bool {
	_, _, ok := OverlapPoint(a, b, dx, dy)
	return ok
}

// OverlapPoint returns the first overlapping pixel in a's coordinates.
func OverlapPoint(a, b *Mask, dx, dy int) (int, int, bool) {
	if a == nil || b == nil {
		return 0, 0, false
	}
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(a.W, dx+b.W)
	y1 := min(a.H, dy+b.H)
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, false
	}
	for y := y0; y < y1; y++ {
		rowA := y * a.W
		rowB := (y - dy) * b.W
		for x := x0; x < x1; x++ {
			if a.bits[rowA+x] && b.bits[rowB+x-dx] {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
