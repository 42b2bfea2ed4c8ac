// internal/assets/animation.go
package assets

import (
	"image"

	"go-space-shooter/pkg/mask"
)

// Frame — один кадр спрайта вместе с его маской столкновений.
type Frame struct {
	Image   *image.NRGBA
	Mask    *mask.Mask
	flipped *Frame
}

// NewFrame builds a frame and derives its mask from the alpha channel.
func NewFrame(img *image.NRGBA) *Frame {
	return &Frame{Image: img, Mask: mask.FromImage(img)}
}

func (f *Frame) W() int { return f.Image.Bounds().Dx() }
func (f *Frame) H() int { return f.Image.Bounds().Dy() }

// Flipped returns the horizontally mirrored frame. The result is cached.
func (f *Frame) Flipped() *Frame {
	if f.flipped != nil {
		return f.flipped
	}
	b := f.Image.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.SetNRGBA(b.Dx()-1-x, y, f.Image.NRGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	f.flipped = &Frame{Image: out, Mask: f.Mask.FlipH(), flipped: f}
	return f.flipped
}

// Animation is a playback cursor over shared frames. Copies share frames but
// keep their own position, so every actor animates independently.
type Animation struct {
	frames    []*Frame
	frameTime float64
	loop      bool
	elapsed   float64
	index     int
	done      bool
}

// NewAnimation creates an animation. A non-positive frameTime never advances.
func NewAnimation(frames []*Frame, frameTime float64, loop bool) *Animation {
	return &Animation{frames: frames, frameTime: frameTime, loop: loop}
}

// Copy returns a fresh playback of the same frames.
func (a *Animation) Copy() *Animation {
	return &Animation{frames: a.frames, frameTime: a.frameTime, loop: a.loop}
}

// Update advances playback by dt seconds.
func (a *Animation) Update(dt float64) {
	if a.done || a.frameTime <= 0 || len(a.frames) < 2 {
		if !a.loop && a.frameTime > 0 && len(a.frames) < 2 {
			a.elapsed += dt
			if a.elapsed >= a.frameTime {
				a.done = true
			}
		}
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.frameTime {
		a.elapsed -= a.frameTime
		a.index++
		if a.index >= len(a.frames) {
			if a.loop {
				a.index = 0
				continue
			}
			a.index = len(a.frames) - 1
			a.done = true
			return
		}
	}
}

// Frame returns the current frame.
func (a *Animation) Frame() *Frame { return a.frames[a.index] }

// FrameAt returns frame i clamped to the valid range.
func (a *Animation) FrameAt(i int) *Frame {
	return a.frames[min(max(i, 0), len(a.frames)-1)]
}

// Done reports whether a one-shot animation has shown its last frame.
func (a *Animation) Done() bool { return a.done }

// Len returns the number of frames.
func (a *Animation) Len() int { return len(a.frames) }
