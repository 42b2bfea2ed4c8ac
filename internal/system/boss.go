// internal/system/boss.go
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

// BossSystem ведёт боссов по состояниям entry-flight → positioning →
// combat → dying и исполняет их паттерны стрельбы.
type BossSystem struct {
	ecs             *entity.World
	catalog         *assets.Catalog
	spawner         *Spawner
	tuning          *config.Tuning
	rng             utils.Random
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewBossSystem(ecs *entity.World, catalog *assets.Catalog, spawner *Spawner, tuning *config.Tuning,
	rng utils.Random, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *BossSystem {
	return &BossSystem{
		ecs:             ecs,
		catalog:         catalog,
		spawner:         spawner,
		tuning:          tuning,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Spawn places a boss horizontally centered on centerX, fully above the field.
func (s *BossSystem) Spawn(def *defs.BossDefinition, strength int, centerX float64, multiplicand int) *component.Boss {
	idle, _ := assets.BossAssets(def.Archetype)
	anim := s.catalog.Animation(idle)
	f := anim.Frame()
	health := def.BaseHealth * strength * multiplicand
	b := &component.Boss{
		Actor: component.Actor{
			Side:      component.SideEnemy,
			Position:  component.Vector{X: centerX - float64(f.W())/2, Y: -float64(f.H())},
			Health:    health,
			MaxHealth: health,
			Frame:     f,
		},
		Def:          def,
		Strength:     strength,
		Multiplicand: multiplicand,
		State:        component.BossEntryFlight,
		EntrySpeed:   s.tuning.Boss.EntrySpeed,
		Anim:         anim,
	}
	b.Fire.Stop(s.holdFire())
	s.ecs.SpawnBoss(b)
	s.ecs.Progress.BossAlive = true

	s.logger.Info().
		Str("boss", def.ID).
		Int("strength", strength).
		Int("health", health).
		Msg("boss spawned")
	return b
}

func (s *BossSystem) Update(deltaTime float64) {
	for _, b := range s.ecs.Bosses {
		if b.Removed {
			continue
		}
		b.Anim.Update(deltaTime)
		b.SetFrame(b.Anim.Frame())

		switch b.State {
		case component.BossEntryFlight:
			s.updateEntry(b, deltaTime)
		case component.BossPositioning:
			if b.Anim.Done() {
				b.State = component.BossCombat
				s.pickMove(b)
			}
		case component.BossCombat:
			s.updateMovement(b, deltaTime)
			s.updateFire(b, deltaTime)
		case component.BossDying:
			s.updateDeath(b, deltaTime)
		}
	}
}

// updateEntry moves the boss down with decreasing speed until the hover line.
func (s *BossSystem) updateEntry(b *component.Boss, deltaTime float64) {
	t := s.tuning.Boss
	b.Position.Y += b.EntrySpeed * deltaTime
	b.EntrySpeed = max(b.EntrySpeed-t.EntryDeceleration*deltaTime, t.EntryMinSpeed)
	if b.Position.Y >= t.HoverY {
		b.Position.Y = t.HoverY
		b.State = component.BossPositioning
		_, open := assets.BossAssets(b.Def.Archetype)
		b.OpenAnim = s.catalog.Animation(open)
		b.Anim = b.OpenAnim
		b.SetFrame(b.Anim.Frame())
	}
}

func (s *BossSystem) pickMove(b *component.Boss) {
	b.Move = component.BossMove(s.rng.Intn(3))
	b.MoveTimer = utils.Range(s.rng, s.tuning.Boss.MoveHoldMin, s.tuning.Boss.MoveHoldMax)
}

// updateMovement drifts the boss sideways, flipping direction at the edges.
func (s *BossSystem) updateMovement(b *component.Boss, deltaTime float64) {
	b.MoveTimer -= deltaTime
	if b.MoveTimer <= 0 {
		s.pickMove(b)
	}
	speed := s.tuning.Boss.LateralSpeed
	switch b.Move {
	case component.MoveLeft:
		b.Position.X -= speed * deltaTime
	case component.MoveRight:
		b.Position.X += speed * deltaTime
	}
	if b.Position.X < 0 {
		b.Position.X = 0
		b.Move = component.MoveRight
	} else if b.Position.X+b.W() > config.FieldWidth {
		b.Position.X = config.FieldWidth - b.W()
		b.Move = component.MoveLeft
	}
}

func (s *BossSystem) holdFire() float64 {
	return utils.Range(s.rng, s.tuning.Boss.HoldFireMin, s.tuning.Boss.HoldFireMax)
}

// StartDying switches a boss whose health reached 0 into its death sequence.
// Autonomous fire stops on both sides and live player shots are cleared
// immediately.
func (s *BossSystem) StartDying(b *component.Boss) {
	if b.State == component.BossDying {
		return
	}
	b.State = component.BossDying
	b.Fire.Stop(0)
	b.Death = component.DeathSequence{Next: s.burstInterval()}
	s.ecs.Player.AutoFire = false
	s.ecs.ClearPlayerProjectiles()

	s.logger.Info().Str("boss", b.Def.ID).Msg("boss dying")
}

func (s *BossSystem) burstInterval() float64 {
	return utils.Range(s.rng, s.tuning.Boss.BurstIntervalMin, s.tuning.Boss.BurstIntervalMax)
}

// updateDeath spawns bursts on opaque points of the boss on a random
// interval. After the last burst the boss pays out and is removed.
func (s *BossSystem) updateDeath(b *component.Boss, deltaTime float64) {
	d := &b.Death
	d.Timer += deltaTime
	if d.Timer < d.Next {
		return
	}
	if d.Bursts >= s.tuning.Boss.BurstCount {
		s.finish(b)
		return
	}
	pt, ok := s.sampleOpaque(b)
	if !ok {
		// повторим на следующем тике
		if !d.Warned {
			d.Warned = true
			s.logger.Warn().Str("boss", b.Def.ID).Msg("death burst sampling exhausted, skipping tick")
		}
		return
	}
	s.spawner.NewEffect(component.EffectBurst, pt)
	d.Bursts++
	d.Timer = 0
	d.Next = s.burstInterval()
}

// sampleOpaque picks random points in the boss rectangle until one lands on
// an opaque mask pixel. Attempts are capped per tick.
func (s *BossSystem) sampleOpaque(b *component.Boss) (component.Vector, bool) {
	m := b.Mask()
	if m == nil || m.W == 0 || m.H == 0 {
		return component.Vector{}, false
	}
	for i := 0; i < s.tuning.Boss.MaxSampleAttempts; i++ {
		x, y := s.rng.Intn(m.W), s.rng.Intn(m.H)
		if m.At(x, y) {
			return b.Position.Add(component.Vector{X: float64(x), Y: float64(y)}), true
		}
	}
	return component.Vector{}, false
}

// finish awards the boss score, drops a guaranteed upgrade, restores
// autonomous fire and signals the phase advance.
func (s *BossSystem) finish(b *component.Boss) {
	b.Removed = true
	score := s.tuning.Boss.ScoreBase * b.Def.Archetype * b.Strength * b.Multiplicand
	s.ecs.Player.AddScore(score)

	center := b.Center()
	s.spawner.NewUpgrade(center)
	s.spawner.NewEffect(component.EffectExplosion, center)
	s.ecs.Player.AutoFire = true
	s.ecs.Progress.BossAlive = s.anotherBossAlive(b)

	s.logger.Info().Str("boss", b.Def.ID).Int("score", score).Msg("boss defeated")
	s.eventDispatcher.Emit(event.BossDefeated, event.BossDefeatedData{
		Archetype: b.Def.Archetype,
		Strength:  b.Strength,
		Score:     score,
	})
}

func (s *BossSystem) anotherBossAlive(except *component.Boss) bool {
	for _, other := range s.ecs.Bosses {
		if other != except && !other.Removed {
			return true
		}
	}
	return false
}
