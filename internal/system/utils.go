// internal/system/utils.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/mask"
)

// ApplyDamage наносит урон актёру и запускает вспышку урона.
// Возвращает true ровно один раз - когда здоровье впервые дошло до нуля.
func ApplyDamage(a *component.Actor, damage int, flashDuration float64) bool {
	if damage <= 0 {
		return false
	}
	a.Flash = component.DamageFlash{Timer: 0, Duration: flashDuration}
	return a.TakeDamage(damage)
}

// Multiplicand maps a phase to its difficulty factor: 1 for phases 1-3,
// 2 for 4-6 and 3 afterwards.
func Multiplicand(phase int) int {
	switch {
	case phase <= 3:
		return 1
	case phase <= 6:
		return 2
	default:
		return 3
	}
}

// masksOverlap is the narrow phase: pixel masks placed at their positions.
func masksOverlap(a *mask.Mask, aPos component.Vector, b *mask.Mask, bPos component.Vector) bool {
	dx := int(roundHalfUp(bPos.X - aPos.X))
	dy := int(roundHalfUp(bPos.Y - aPos.Y))
	return mask.Overlap(a, b, dx, dy)
}

func roundHalfUp(v float64) float64 {
	if v < 0 {
		return -roundHalfUp(-v)
	}
	return float64(int64(v + 0.5))
}

// outsideField reports whether r sticks out of the play field by more than margin.
func outsideField(pos component.Vector, margin float64) bool {
	return pos.X < -margin || pos.Y < -margin ||
		pos.X > config.FieldWidth+margin || pos.Y > config.FieldHeight+margin
}
