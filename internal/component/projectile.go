// internal/component/projectile.go
package component

import (
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/types"
	"go-space-shooter/pkg/mask"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID        types.EntityID
	Side      Side
	Kind      defs.ProjectileKind
	Damage    int
	Position  Vector
	Direction int     // +1 вниз, -1 вверх; используется, если Angled == false
	Angle     float64 // градусы, стандартное тригонометрическое направление
	Angled    bool
	Speed     float64
	Anim      *assets.Animation
	Removed   bool
}

func (p *Projectile) Frame() *assets.Frame { return p.Anim.Frame() }

func (p *Projectile) Bounds() Rect {
	f := p.Frame()
	return Rect{p.Position.X, p.Position.Y, float64(f.W()), float64(f.H())}
}

func (p *Projectile) Mask() *mask.Mask { return p.Frame().Mask }
