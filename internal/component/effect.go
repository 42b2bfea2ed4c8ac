// internal/component/effect.go
package component

import (
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/types"
)

// EffectKind — вид визуального эффекта.
type EffectKind int

const (
	EffectHit EffectKind = iota
	EffectExplosion
	EffectBurst
)

// Effect is a one-shot animation that removes itself when done.
type Effect struct {
	ID       types.EntityID
	Kind     EffectKind
	Position Vector
	Drift    float64 // пикселей в секунду вниз
	Anim     *assets.Animation
	Removed  bool
}
