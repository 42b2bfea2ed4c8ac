// internal/system/spawn.go
package system

import (
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/utils"
)

// Spawner создаёт снаряды, бонусы и эффекты. Всё созданное попадает в
// отложенные буферы мира и становится видимым после World.Flush.
type Spawner struct {
	ecs     *entity.World
	catalog *assets.Catalog
	tuning  *config.Tuning
	rng     utils.Random
}

func NewSpawner(ecs *entity.World, catalog *assets.Catalog, tuning *config.Tuning, rng utils.Random) *Spawner {
	return &Spawner{ecs: ecs, catalog: catalog, tuning: tuning, rng: rng}
}

// projectileSpeed returns the speed for a side and kind. Spray beams travel
// at laser speed.
func (s *Spawner) projectileSpeed(side component.Side, kind defs.ProjectileKind) float64 {
	t := s.tuning.Projectile
	switch {
	case side == component.SidePlayer && kind == defs.KindRocket:
		return t.PlayerRocketSpeed
	case side == component.SidePlayer:
		return t.PlayerSpeed
	case kind == defs.KindRocket:
		return t.EnemyRocketSpeed
	default:
		return t.EnemySpeed
	}
}

func projectileAsset(side component.Side, kind defs.ProjectileKind) assets.AssetID {
	switch kind {
	case defs.KindRocket:
		if side == component.SidePlayer {
			return assets.PlayerRocket
		}
		return assets.EnemyRocket
	case defs.KindSprayBeam:
		return assets.SprayBeam
	}
	if side == component.SidePlayer {
		return assets.PlayerLaser
	}
	return assets.EnemyLaser
}

// NewProjectile creates a straight projectile centered on center. Player
// shots travel up, enemy shots down.
func (s *Spawner) NewProjectile(side component.Side, kind defs.ProjectileKind, damage int, center component.Vector) *component.Projectile {
	dir := 1
	if side == component.SidePlayer {
		dir = -1
	}
	p := s.build(side, kind, damage, center)
	p.Direction = dir
	s.add(p)
	return p
}

// NewAngledProjectile creates a projectile moving along angle (degrees).
func (s *Spawner) NewAngledProjectile(side component.Side, kind defs.ProjectileKind, damage int, center component.Vector, angle float64) *component.Projectile {
	p := s.build(side, kind, damage, center)
	p.Angle = angle
	p.Angled = true
	s.add(p)
	return p
}

func (s *Spawner) build(side component.Side, kind defs.ProjectileKind, damage int, center component.Vector) *component.Projectile {
	anim := s.catalog.Animation(projectileAsset(side, kind))
	f := anim.Frame()
	return &component.Projectile{
		Side:     side,
		Kind:     kind,
		Damage:   damage,
		Position: component.Vector{X: center.X - float64(f.W())/2, Y: center.Y - float64(f.H())/2},
		Speed:    s.projectileSpeed(side, kind),
		Anim:     anim,
	}
}

func (s *Spawner) add(p *component.Projectile) {
	if p.Side == component.SidePlayer {
		s.ecs.SpawnPlayerProjectile(p)
	} else {
		s.ecs.SpawnEnemyProjectile(p)
	}
}

// NewUpgrade creates an upgrade centered on center, ignoring the live cap.
// The effect and background are drawn here, not at pickup.
func (s *Spawner) NewUpgrade(center component.Vector) *component.Upgrade {
	effect := defs.UpgradeEffect(s.rng.Intn(defs.UpgradeEffectCount))
	bg := s.rng.Intn(defs.UpgradeBackgroundCount)
	f := s.catalog.Upgrade(effect, bg)
	u := &component.Upgrade{
		Position:   component.Vector{X: center.X - float64(f.W())/2, Y: center.Y - float64(f.H())/2},
		Effect:     effect,
		Background: bg,
		Frame:      f,
	}
	s.ecs.SpawnUpgrade(u)
	return u
}

// TryUpgrade spawns an upgrade unless the live-upgrade cap is reached.
func (s *Spawner) TryUpgrade(center component.Vector) (*component.Upgrade, bool) {
	if s.ecs.LiveUpgrades() >= s.tuning.Upgrade.MaxLive {
		return nil, false
	}
	return s.NewUpgrade(center), true
}

// NewEffect starts a one-shot visual effect centered on center.
func (s *Spawner) NewEffect(kind component.EffectKind, center component.Vector) *component.Effect {
	var id assets.AssetID
	var drift float64
	switch kind {
	case component.EffectExplosion:
		id, drift = assets.Explosion, s.tuning.Effect.ExplosionDrift
	case component.EffectBurst:
		id = assets.BossBurst
	default:
		id = assets.HitSpark
	}
	anim := s.catalog.Animation(id)
	f := anim.Frame()
	e := &component.Effect{
		Kind:     kind,
		Position: component.Vector{X: center.X - float64(f.W())/2, Y: center.Y - float64(f.H())/2},
		Drift:    drift,
		Anim:     anim,
	}
	s.ecs.SpawnEffect(e)
	return e
}
