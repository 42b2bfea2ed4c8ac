// internal/component/actor.go
package component

import (
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/types"
	"go-space-shooter/pkg/mask"
)

// Side — сторона конфликта. Снаряд наносит урон только противоположной стороне.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) Opposes(o Side) bool { return s != o }

// Actor — общие данные корабля, дрона, врага и босса.
type Actor struct {
	ID        types.EntityID
	Side      Side
	Position  Vector // левый верхний угол
	Health    int
	MaxHealth int
	Frame     *assets.Frame
	Flash     DamageFlash
	Removed   bool
	dead      bool
}

// TakeDamage lowers health by d. Health floors at 0 and killed is true on
// exactly one call: the one that brought health to 0. Negative damage is
// ignored.
func (a *Actor) TakeDamage(d int) (killed bool) {
	if d < 0 || a.dead {
		return false
	}
	a.Health -= d
	if a.Health <= 0 {
		a.Health = 0
		a.dead = true
		return true
	}
	return false
}

// Dead reports whether the kill transition already happened.
func (a *Actor) Dead() bool { return a.dead }

// Restore brings the actor back to full health, clearing the kill transition.
func (a *Actor) Restore() {
	a.dead = false
	a.Health = a.MaxHealth
}

// Heal adds health up to the maximum. Dead actors are not healed.
func (a *Actor) Heal(n int) {
	if a.dead || n <= 0 {
		return
	}
	a.Health = min(a.Health+n, a.MaxHealth)
}

// SetFrame keeps the drawn image and the collision mask in sync.
func (a *Actor) SetFrame(f *assets.Frame) { a.Frame = f }

func (a *Actor) W() float64 {
	if a.Frame == nil {
		return 0
	}
	return float64(a.Frame.W())
}

func (a *Actor) H() float64 {
	if a.Frame == nil {
		return 0
	}
	return float64(a.Frame.H())
}

func (a *Actor) Bounds() Rect   { return Rect{a.Position.X, a.Position.Y, a.W(), a.H()} }
func (a *Actor) Center() Vector { return a.Bounds().Center() }

// Mask returns the collision mask of the current frame.
func (a *Actor) Mask() *mask.Mask {
	if a.Frame == nil {
		return nil
	}
	return a.Frame.Mask
}

// DamageFlash — сколько ещё секунд актёр рисуется подсвеченным после попадания.
type DamageFlash struct {
	Timer    float64
	Duration float64
}

// Progress returns 0 right after the hit and 1 once the flash is over.
func (f DamageFlash) Progress() float64 {
	if f.Duration <= 0 || f.Timer >= f.Duration {
		return 1
	}
	return f.Timer / f.Duration
}
