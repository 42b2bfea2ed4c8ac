// internal/system/wave.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"

	"github.com/rs/zerolog"
)

// spawnY — центр новых кораблей над полем.
const spawnY = -50.0

// PhaseListener is notified after the phase advanced, e.g. to re-clamp
// weapon stats to the new multiplicand.
type PhaseListener func(multiplicand int)

// WaveSystem решает, когда и какую волну выпустить, и двигает фазы.
type WaveSystem struct {
	ecs             *entity.World
	library         *defs.Library
	enemies         *EnemySystem
	bosses          *BossSystem
	tuning          *config.Tuning
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
	onPhase         PhaseListener
}

func NewWaveSystem(ecs *entity.World, library *defs.Library, enemies *EnemySystem, bosses *BossSystem,
	tuning *config.Tuning, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		library:         library,
		enemies:         enemies,
		bosses:          bosses,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
	eventDispatcher.Subscribe(event.BossDefeated, ws)
	return ws
}

// OnPhase registers the phase-advance hook.
func (s *WaveSystem) OnPhase(fn PhaseListener) { s.onPhase = fn }

// Start resets the counters to phase 1 and starts the level countdown.
func (s *WaveSystem) Start() {
	*s.ecs.Progress = component.Progress{
		Phase:        1,
		Multiplicand: Multiplicand(1),
		Countdown:    s.tuning.Scheduler.LevelCountdown,
		PacingTimer:  s.tuning.Scheduler.MinPacing,
	}
}

func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type == event.BossDefeated {
		s.advancePhase()
	}
}

func (s *WaveSystem) advancePhase() {
	p := s.ecs.Progress
	p.Phase++
	p.Wave = 0
	p.Multiplicand = Multiplicand(p.Phase)
	p.Countdown = s.tuning.Scheduler.LevelCountdown
	p.PacingTimer = s.tuning.Scheduler.MinPacing
	if s.onPhase != nil {
		s.onPhase(p.Multiplicand)
	}

	s.logger.Info().Int("phase", p.Phase).Int("multiplicand", p.Multiplicand).Msg("phase advanced")
	s.eventDispatcher.Emit(event.PhaseAdvanced, event.PhaseData{Phase: p.Phase, Multiplicand: p.Multiplicand})
}

func (s *WaveSystem) Update(deltaTime float64) {
	p := s.ecs.Progress
	if p.Countdown > 0 {
		p.Countdown = max(p.Countdown-deltaTime, 0)
		return
	}
	p.PacingTimer += deltaTime
	if s.ecs.LiveEnemies() > 0 || p.PacingTimer < s.tuning.Scheduler.MinPacing {
		return
	}

	waves, err := defs.PhaseWaves(p.Phase)
	if err != nil {
		s.logger.Error().Err(err).Msg("no waves for phase")
		return
	}
	if p.Wave >= len(waves) {
		// ждём, пока босс фазы не будет побеждён
		return
	}
	s.spawnWave(waves[p.Wave], p.Multiplicand)
	p.Wave++
	p.PacingTimer = 0
	s.eventDispatcher.Emit(event.WaveSpawned, event.PhaseData{Phase: p.Phase, Wave: p.Wave, Multiplicand: p.Multiplicand})
}

// SpawnX returns the center x of entry i of n, evenly spaced across the field.
func SpawnX(i, n int) float64 {
	step := float64(config.FieldWidth) / float64(n+1)
	return step * float64(i+1)
}

func (s *WaveSystem) spawnWave(w defs.WaveDefinition, multiplicand int) {
	n := len(w.Entries)
	for i, entry := range w.Entries {
		x := SpawnX(i, n)
		switch entry.Kind {
		case defs.SpawnShip:
			def, err := s.library.Enemy(entry.ID)
			if err != nil {
				s.logger.Error().Err(err).Msg("wave entry skipped")
				continue
			}
			s.enemies.Spawn(def, component.Vector{X: x, Y: spawnY}, multiplicand)
		case defs.SpawnBoss:
			def, err := s.library.Boss(entry.ID)
			if err != nil {
				s.logger.Error().Err(err).Msg("wave entry skipped")
				continue
			}
			s.bosses.Spawn(def, entry.Strength, x, multiplicand)
		}
	}
	s.logger.Debug().Int("phase", s.ecs.Progress.Phase).Int("wave", s.ecs.Progress.Wave).Int("enemies", n).Msg("wave spawned")
}
