package system

import (
	"sync"
	"testing"

	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fixedRandom always returns the same values, clamped to the requested range.
type fixedRandom struct {
	n int
	f float64
}

func (r *fixedRandom) Intn(n int) int   { return min(r.n, n-1) }
func (r *fixedRandom) Float64() float64 { return r.f }

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

var (
	catalogOnce   sync.Once
	sharedCatalog *assets.Catalog
	catalogErr    error
)

func loadCatalog(t *testing.T) *assets.Catalog {
	t.Helper()
	catalogOnce.Do(func() {
		sharedCatalog, catalogErr = assets.NewCatalog("", zerolog.Nop())
	})
	require.NoError(t, catalogErr)
	return sharedCatalog
}

type harness struct {
	ecs         *entity.World
	tuning      *config.Tuning
	library     *defs.Library
	catalog     *assets.Catalog
	dispatcher  *event.Dispatcher
	events      *recorder
	spawner     *Spawner
	player      *PlayerSystem
	enemies     *EnemySystem
	bosses      *BossSystem
	waves       *WaveSystem
	projectiles *ProjectileSystem
	upgrades    *UpgradeSystem
	effects     *VisualEffectSystem
	collision   *CollisionSystem
}

func newHarness(t *testing.T, rng utils.Random) *harness {
	t.Helper()
	library, err := defs.Load(zerolog.Nop())
	require.NoError(t, err)

	logger := zerolog.Nop()
	h := &harness{
		ecs:        entity.NewWorld(),
		tuning:     config.Default(),
		library:    library,
		catalog:    loadCatalog(t),
		dispatcher: event.NewDispatcher(),
		events:     &recorder{},
	}
	for _, et := range []event.EventType{
		event.EnemyKilled, event.BossDefeated, event.PhaseAdvanced, event.WaveSpawned,
		event.UpgradeCollected, event.PlayerLifeLost, event.GameOver,
	} {
		h.dispatcher.Subscribe(et, h.events)
	}
	h.spawner = NewSpawner(h.ecs, h.catalog, h.tuning, rng)
	h.player = NewPlayerSystem(h.ecs, h.catalog, h.spawner, h.tuning, h.dispatcher, logger)
	h.enemies = NewEnemySystem(h.ecs, h.catalog, h.spawner, h.tuning, rng, h.dispatcher, logger)
	h.bosses = NewBossSystem(h.ecs, h.catalog, h.spawner, h.tuning, rng, h.dispatcher, logger)
	h.waves = NewWaveSystem(h.ecs, h.library, h.enemies, h.bosses, h.tuning, h.dispatcher, logger)
	h.projectiles = NewProjectileSystem(h.ecs)
	h.upgrades = NewUpgradeSystem(h.ecs, h.tuning, logger)
	h.effects = NewVisualEffectSystem(h.ecs)
	h.collision = NewCollisionSystem(h.ecs, h.spawner, h.enemies, h.bosses, h.upgrades,
		h.tuning, h.dispatcher, logger)
	return h
}

func (h *harness) enemy(t *testing.T, id string, center component.Vector, multiplicand int) *component.Enemy {
	t.Helper()
	def, err := h.library.Enemy(id)
	require.NoError(t, err)
	e := h.enemies.Spawn(def, center, multiplicand)
	h.ecs.Flush()
	return e
}

// combatBoss spawns a boss and puts it straight into combat at top-left pos.
func (h *harness) combatBoss(t *testing.T, id string, pos component.Vector) *component.Boss {
	t.Helper()
	def, err := h.library.Boss(id)
	require.NoError(t, err)
	b := h.bosses.Spawn(def, 1, 0, 1)
	h.ecs.Flush()
	b.Position = pos
	b.State = component.BossCombat
	return b
}

func (h *harness) playerShot(damage int, center component.Vector) *component.Projectile {
	p := h.spawner.NewProjectile(component.SidePlayer, defs.KindLaser, damage, center)
	h.ecs.Flush()
	return p
}

func (h *harness) enemyShot(damage int, center component.Vector) *component.Projectile {
	p := h.spawner.NewProjectile(component.SideEnemy, defs.KindLaser, damage, center)
	h.ecs.Flush()
	return p
}

func countEffects(w *entity.World, kind component.EffectKind) int {
	n := 0
	for _, e := range w.Effects {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func right() component.MovementIntent {
	return component.MovementIntent{MoveX: [2]int{0, 1}}
}

func left() component.MovementIntent {
	return component.MovementIntent{MoveX: [2]int{1, 0}}
}
