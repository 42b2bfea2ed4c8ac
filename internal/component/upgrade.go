// internal/component/upgrade.go
package component

import (
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/types"
)

// Upgrade — падающий бонус. Эффект выбран при создании, не при подборе.
type Upgrade struct {
	ID         types.EntityID
	Position   Vector
	Effect     defs.UpgradeEffect
	Background int
	Frame      *assets.Frame
	Removed    bool
}

func (u *Upgrade) Bounds() Rect {
	return Rect{u.Position.X, u.Position.Y, float64(u.Frame.W()), float64(u.Frame.H())}
}
