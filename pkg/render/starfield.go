// pkg/render/starfield.go
package render

// Star — одна звезда фона. Speed в пикселях в секунду.
type Star struct {
	X, Y  float64
	Speed float64
	Size  float64
}

// Random is the subset of a PRNG the starfield needs.
type Random interface {
	Float64() float64
}

// Starfield is a scrolling background of stars inside a w×h area.
type Starfield struct {
	W, H  float64
	Stars []Star
	rng   Random
}

// NewStarfield scatters n stars over the area. Faster stars are drawn bigger.
func NewStarfield(n int, w, h float64, rng Random) *Starfield {
	sf := &Starfield{W: w, H: h, Stars: make([]Star, n), rng: rng}
	for i := range sf.Stars {
		speed := 20 + rng.Float64()*80
		sf.Stars[i] = Star{
			X:     rng.Float64() * w,
			Y:     rng.Float64() * h,
			Speed: speed,
			Size:  1 + speed/50,
		}
	}
	return sf
}

// Update scrolls the stars down and wraps them back to the top at a new x.
func (sf *Starfield) Update(deltaTime float64) {
	for i := range sf.Stars {
		s := &sf.Stars[i]
		s.Y += s.Speed * deltaTime
		if s.Y >= sf.H {
			s.Y -= sf.H
			s.X = sf.rng.Float64() * sf.W
		}
	}
}
