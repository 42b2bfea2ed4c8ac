// internal/app/game.go
package app

import (
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/utils"

	"github.com/rs/zerolog"
)

// RunStats — итоги забега для экрана окончания игры.
type RunStats struct {
	Kills             int
	BossesDefeated    int
	UpgradesCollected int
	LivesLost         int
}

// Game holds the main game state and logic.
type Game struct {
	ECS                *entity.World
	Tuning             *config.Tuning
	Library            *defs.Library
	Catalog            *assets.Catalog
	EventDispatcher    *event.Dispatcher
	Rng                utils.Random
	Spawner            *system.Spawner
	PlayerSystem       *system.PlayerSystem
	EnemySystem        *system.EnemySystem
	BossSystem         *system.BossSystem
	WaveSystem         *system.WaveSystem
	ProjectileSystem   *system.ProjectileSystem
	UpgradeSystem      *system.UpgradeSystem
	VisualEffectSystem *system.VisualEffectSystem
	CollisionSystem    *system.CollisionSystem
	StateSystem        *system.StateSystem
	Stats              RunStats

	// Game state
	gameTime float64
	isPaused bool
	logger   zerolog.Logger
}

// NewGame initializes a new game instance.
func NewGame(tuning *config.Tuning, library *defs.Library, catalog *assets.Catalog, rng utils.Random, logger zerolog.Logger) *Game {
	if tuning == nil || library == nil || catalog == nil {
		panic("tuning, library and catalog cannot be nil")
	}

	ecs := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	spawner := system.NewSpawner(ecs, catalog, tuning, rng)
	g := &Game{
		ECS:             ecs,
		Tuning:          tuning,
		Library:         library,
		Catalog:         catalog,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Spawner:         spawner,
		logger:          logger,
	}
	g.PlayerSystem = system.NewPlayerSystem(ecs, catalog, spawner, tuning, eventDispatcher, logger)
	g.EnemySystem = system.NewEnemySystem(ecs, catalog, spawner, tuning, rng, eventDispatcher, logger)
	g.BossSystem = system.NewBossSystem(ecs, catalog, spawner, tuning, rng, eventDispatcher, logger)
	g.WaveSystem = system.NewWaveSystem(ecs, library, g.EnemySystem, g.BossSystem, tuning, eventDispatcher, logger)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.UpgradeSystem = system.NewUpgradeSystem(ecs, tuning, logger)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.CollisionSystem = system.NewCollisionSystem(ecs, spawner, g.EnemySystem, g.BossSystem, g.UpgradeSystem,
		tuning, eventDispatcher, logger)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)

	// Границы урона зависят от множителя фазы
	g.WaveSystem.OnPhase(func(multiplicand int) {
		system.ClampWeapons(ecs.Player, tuning, multiplicand)
	})

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.EnemyKilled, listener)
	eventDispatcher.Subscribe(event.BossDefeated, listener)
	eventDispatcher.Subscribe(event.UpgradeCollected, listener)
	eventDispatcher.Subscribe(event.PlayerLifeLost, listener)

	g.PlayerSystem.Init()
	g.WaveSystem.Start()
	g.StateSystem.Update(0)
	return g
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		l.game.Stats.Kills++
	case event.BossDefeated:
		l.game.Stats.BossesDefeated++
	case event.UpgradeCollected:
		l.game.Stats.UpgradesCollected++
	case event.PlayerLifeLost:
		l.game.Stats.LivesLost++
	}
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64, intent component.MovementIntent) {
	if g.isPaused || g.StateSystem.Over() {
		return
	}
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.WaveSystem.Update(deltaTime)
	g.PlayerSystem.Update(deltaTime, intent)
	g.EnemySystem.Update(deltaTime)
	g.BossSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.UpgradeSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
	g.CollisionSystem.Update(deltaTime)
	g.PlayerSystem.ResolveLosses()

	g.ECS.Flush()
	g.ECS.Prune()
	g.StateSystem.Update(deltaTime)
}

// Snapshot returns the read-only HUD values of the last frame.
func (g *Game) Snapshot() component.HUDSnapshot {
	return g.StateSystem.Snapshot()
}

// Over reports whether the player ran out of lives.
func (g *Game) Over() bool {
	return g.StateSystem.Over()
}

// World exposes the entity groups for drawing.
func (g *Game) World() *entity.World {
	return g.ECS
}

// GetGameTime returns the simulated time in seconds.
func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}
