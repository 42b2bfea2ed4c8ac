// internal/system/enemy.go
package system

import (
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"

	"github.com/rs/zerolog"
)

// EnemySystem управляет обычными вражескими кораблями: движение вниз,
// вероятностная стрельба и награда за уничтожение.
type EnemySystem struct {
	ecs             *entity.World
	catalog         *assets.Catalog
	spawner         *Spawner
	tuning          *config.Tuning
	rng             utils.Random
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewEnemySystem(ecs *entity.World, catalog *assets.Catalog, spawner *Spawner, tuning *config.Tuning,
	rng utils.Random, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *EnemySystem {
	return &EnemySystem{
		ecs:             ecs,
		catalog:         catalog,
		spawner:         spawner,
		tuning:          tuning,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Spawn creates an enemy of def centered on center. Health is
// tier × 50 × multiplicand.
func (s *EnemySystem) Spawn(def *defs.EnemyDefinition, center component.Vector, multiplicand int) *component.Enemy {
	anim := s.catalog.Animation(assets.EnemyShipAsset(def.Tier))
	f := anim.Frame()
	health := def.Tier * 50 * multiplicand
	e := &component.Enemy{
		Actor: component.Actor{
			Side:      component.SideEnemy,
			Position:  component.Vector{X: center.X - float64(f.W())/2, Y: center.Y - float64(f.H())/2},
			Health:    health,
			MaxHealth: health,
			Frame:     f,
		},
		Def:          def,
		Tier:         def.Tier,
		Multiplicand: multiplicand,
		Speed:        def.Speed,
		Anim:         anim,
	}
	s.ecs.SpawnEnemy(e)
	return e
}

func (s *EnemySystem) Update(deltaTime float64) {
	for _, e := range s.ecs.Enemies {
		if e.Removed || e.Dead() {
			continue
		}
		e.Anim.Update(deltaTime)
		e.SetFrame(e.Anim.Frame())

		e.Position.Y += e.Speed * deltaTime
		if e.Position.Y > config.FieldHeight {
			// ушёл за нижний край - без очков
			e.Removed = true
			continue
		}

		e.FireTimer += deltaTime
		if e.FireTimer >= e.Def.FireInterval {
			e.FireTimer = 0
			if s.rng.Float64() < s.tuning.Enemy.FireChance {
				s.fire(e)
			}
		}
	}
}

func (s *EnemySystem) fire(e *component.Enemy) {
	kind := defs.KindLaser
	damage := s.tuning.Enemy.LaserDamage * e.Multiplicand
	if e.Def.Weapon == defs.EnemyWeaponRocket {
		kind = defs.KindRocket
		damage = s.tuning.Enemy.RocketDamage * e.Multiplicand
	}
	for _, m := range e.Def.Muzzles {
		s.spawner.NewProjectile(component.SideEnemy, kind, damage, e.Position.Add(component.Vector{X: m.X, Y: m.Y}))
	}
}

// Kill awards the kill score and drops an upgrade and an explosion at the
// enemy's center. It is called once, on the hit that brought health to 0.
func (s *EnemySystem) Kill(e *component.Enemy) {
	e.Removed = true
	score := s.tuning.Enemy.KillScore * e.Tier * e.Multiplicand
	s.ecs.Player.AddScore(score)

	center := e.Center()
	s.spawner.TryUpgrade(center)
	s.spawner.NewEffect(component.EffectExplosion, center)

	s.logger.Debug().Int("tier", e.Tier).Int("score", score).Msg("enemy destroyed")
	s.eventDispatcher.Emit(event.EnemyKilled, event.EnemyKilledData{Tier: e.Tier, Score: score})
}
