// internal/system/visual_effect.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами: вспышки урона,
// взрывы и искры попаданий.
type VisualEffectSystem struct {
	ecs *entity.World
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.World) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Таймеры вспышек урона
	for _, a := range s.ecs.PlayerActors() {
		tickFlash(&a.Flash, deltaTime)
	}
	for _, e := range s.ecs.Enemies {
		tickFlash(&e.Flash, deltaTime)
	}
	for _, b := range s.ecs.Bosses {
		tickFlash(&b.Flash, deltaTime)
	}

	// Одноразовые анимации удаляются, как только показали последний кадр
	for _, e := range s.ecs.Effects {
		if e.Removed {
			continue
		}
		e.Anim.Update(deltaTime)
		e.Position.Y += e.Drift * deltaTime
		if e.Anim.Done() {
			e.Removed = true
		}
	}
}

func tickFlash(f *component.DamageFlash, deltaTime float64) {
	if f.Duration <= 0 {
		return
	}
	f.Timer += deltaTime
	if f.Timer >= f.Duration {
		*f = component.DamageFlash{}
	}
}
