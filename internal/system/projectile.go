// internal/system/projectile.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/utils"
)

// ProjectileSystem двигает снаряды и удаляет вылетевшие за поле.
// Попадания обрабатывает CollisionSystem.
type ProjectileSystem struct {
	ecs *entity.World
}

func NewProjectileSystem(ecs *entity.World) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, p := range s.ecs.PlayerProjectiles {
		moveProjectile(p, deltaTime)
	}
	for _, p := range s.ecs.EnemyProjectiles {
		moveProjectile(p, deltaTime)
	}
}

func moveProjectile(p *component.Projectile, deltaTime float64) {
	if p.Removed {
		return
	}
	p.Anim.Update(deltaTime)
	if p.Angled {
		dx, dy := utils.Heading(p.Angle)
		p.Position.X += dx * p.Speed * deltaTime
		p.Position.Y += dy * p.Speed * deltaTime
	} else {
		p.Position.Y += float64(p.Direction) * p.Speed * deltaTime
	}
	if outsideField(p.Position, config.ProjectileMargin) {
		p.Removed = true
	}
}
