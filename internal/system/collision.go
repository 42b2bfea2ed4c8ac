// internal/system/collision.go
package system

import (
	"sort"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"

	"github.com/rs/zerolog"
	"github.com/solarlune/resolv"
)

const (
	// spaceMargin сдвигает координаты поля, чтобы объекты над полем
	// тоже попадали в сетку resolv.
	spaceMargin = 256
	cellSize    = 64
)

var (
	tagTarget = resolv.NewTag("target")
	tagQuery  = resolv.NewTag("query")
)

// broadPhase собирает кандидатов на столкновение по прямоугольникам.
// Окончательное решение принимает сравнение масок.
type broadPhase struct {
	space  *resolv.Space
	owners map[resolv.IShape]target
}

type target struct {
	index int
	rect  component.Rect
}

func newBroadPhase() *broadPhase {
	return &broadPhase{
		space: resolv.NewSpace(
			int(config.FieldWidth)+2*spaceMargin,
			int(config.FieldHeight)+2*spaceMargin,
			cellSize, cellSize),
		owners: make(map[resolv.IShape]target),
	}
}

func shapeFor(r component.Rect) resolv.IShape {
	return resolv.NewRectangleFromTopLeft(r.X+spaceMargin, r.Y+spaceMargin, max(r.W, 1), max(r.H, 1))
}

func (bp *broadPhase) addTarget(r component.Rect, index int) {
	sh := shapeFor(r)
	sh.Tags().Set(tagTarget)
	bp.space.Add(sh)
	bp.owners[sh] = target{index: index, rect: r}
}

// candidates returns the target indices whose rectangles overlap r, in
// ascending order. resolv only narrows the search to the touching cells:
// its polygon test misses a shape lying wholly inside another, so the
// overlap itself is checked on the rectangles.
func (bp *broadPhase) candidates(r component.Rect) []int {
	query := shapeFor(r)
	query.Tags().Set(tagQuery)
	bp.space.Add(query)
	defer bp.space.Remove(query)

	var out []int
	seen := make(map[int]bool)
	query.SelectTouchingCells(0).FilterShapes().ByTags(tagTarget).ForEach(func(sh resolv.IShape) bool {
		t, ok := bp.owners[sh]
		if ok && !seen[t.index] && t.rect.Overlaps(r) {
			seen[t.index] = true
			out = append(out, t.index)
		}
		return true
	})
	sort.Ints(out)
	return out
}

// enemyTarget — враг или босс в проходах столкновений.
type enemyTarget struct {
	actor *component.Actor
	enemy *component.Enemy
	boss  *component.Boss
}

func (t enemyTarget) active() bool {
	if t.actor.Removed || t.actor.Dead() {
		return false
	}
	return t.boss == nil || t.boss.State != component.BossDying
}

// CollisionSystem resolves hits once per frame after all movement.
type CollisionSystem struct {
	ecs             *entity.World
	spawner         *Spawner
	enemies         *EnemySystem
	bosses          *BossSystem
	upgrades        *UpgradeSystem
	tuning          *config.Tuning
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewCollisionSystem(ecs *entity.World, spawner *Spawner, enemies *EnemySystem, bosses *BossSystem,
	upgrades *UpgradeSystem, tuning *config.Tuning, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		spawner:         spawner,
		enemies:         enemies,
		bosses:          bosses,
		upgrades:        upgrades,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Update runs the four passes in order. Upgrades dropped by kills in the
// first three passes can be collected in the fourth.
func (s *CollisionSystem) Update(deltaTime float64) {
	mark := s.ecs.UpgradeMark()
	s.enemyProjectilesVsPlayer()
	s.playerProjectilesVsEnemies()
	s.bodies()
	s.ecs.PromoteUpgrades(mark)
	s.pickups()
}

func (s *CollisionSystem) enemyTargets() []enemyTarget {
	targets := make([]enemyTarget, 0, len(s.ecs.Enemies)+len(s.ecs.Bosses))
	for _, e := range s.ecs.Enemies {
		targets = append(targets, enemyTarget{actor: &e.Actor, enemy: e})
	}
	for _, b := range s.ecs.Bosses {
		targets = append(targets, enemyTarget{actor: &b.Actor, boss: b})
	}
	return targets
}

// enemyProjectilesVsPlayer — проход 1.
func (s *CollisionSystem) enemyProjectilesVsPlayer() {
	actors := s.ecs.PlayerActors()
	if len(actors) == 0 {
		return
	}
	bp := newBroadPhase()
	for i, a := range actors {
		bp.addTarget(a.Bounds(), i)
	}
	flash := s.tuning.Effect.FlashDuration
	for _, p := range s.ecs.EnemyProjectiles {
		if p.Removed || !p.Side.Opposes(component.SidePlayer) {
			continue
		}
		for _, i := range bp.candidates(p.Bounds()) {
			a := actors[i]
			if a.Dead() || !masksOverlap(p.Mask(), p.Position, a.Mask(), a.Position) {
				continue
			}
			ApplyDamage(a, p.Damage, flash)
			p.Removed = true
			s.spawner.NewEffect(component.EffectHit, p.Bounds().Center())
			break
		}
	}
}

// playerProjectilesVsEnemies — проход 2.
func (s *CollisionSystem) playerProjectilesVsEnemies() {
	targets := s.enemyTargets()
	if len(targets) == 0 {
		return
	}
	bp := newBroadPhase()
	for i, t := range targets {
		bp.addTarget(t.actor.Bounds(), i)
	}
	for _, p := range s.ecs.PlayerProjectiles {
		if p.Removed || !p.Side.Opposes(component.SideEnemy) {
			continue
		}
		for _, i := range bp.candidates(p.Bounds()) {
			t := targets[i]
			if !t.active() || !masksOverlap(p.Mask(), p.Position, t.actor.Mask(), t.actor.Position) {
				continue
			}
			p.Removed = true
			s.spawner.NewEffect(component.EffectHit, p.Bounds().Center())
			s.ecs.Player.AddScore(s.tuning.Enemy.HitScore)
			s.damageEnemy(t, p.Damage)
			break
		}
	}
}

func (s *CollisionSystem) damageEnemy(t enemyTarget, damage int) {
	if !ApplyDamage(t.actor, damage, s.tuning.Effect.FlashDuration) {
		return
	}
	if t.boss != nil {
		s.bosses.StartDying(t.boss)
		return
	}
	s.enemies.Kill(t.enemy)
}

// bodies — проход 3: таран врагом корабля или дрона.
func (s *CollisionSystem) bodies() {
	actors := s.ecs.PlayerActors()
	targets := s.enemyTargets()
	if len(actors) == 0 || len(targets) == 0 {
		return
	}
	bp := newBroadPhase()
	for i, t := range targets {
		bp.addTarget(t.actor.Bounds(), i)
	}
	flash := s.tuning.Effect.FlashDuration
	for _, a := range actors {
		for _, i := range bp.candidates(a.Bounds()) {
			t := targets[i]
			if a.Dead() {
				break
			}
			if !t.active() || !masksOverlap(a.Mask(), a.Position, t.actor.Mask(), t.actor.Position) {
				continue
			}
			ApplyDamage(a, min(t.actor.Health, s.tuning.Enemy.ContactCeiling), flash)
			s.damageEnemy(t, s.tuning.Enemy.ContactDamage*s.ecs.Progress.Multiplicand)
		}
	}
}

// pickups — проход 4: бонусы применяются только кораблём.
func (s *CollisionSystem) pickups() {
	ship := s.ecs.Ship
	if ship == nil || ship.Removed || ship.Dead() {
		return
	}
	bp := newBroadPhase()
	bp.addTarget(ship.Bounds(), 0)
	for _, u := range s.ecs.Upgrades {
		if u.Removed || len(bp.candidates(u.Bounds())) == 0 {
			continue
		}
		if !masksOverlap(u.Frame.Mask, u.Position, ship.Mask(), ship.Position) {
			continue
		}
		u.Removed = true
		s.upgrades.Apply(u.Effect)
		s.ecs.Player.AddScore(s.tuning.Upgrade.PickupScore)
		s.eventDispatcher.Emit(event.UpgradeCollected, u.Effect)
	}
}
