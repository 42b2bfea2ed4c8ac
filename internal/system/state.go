// internal/system/state.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
)

// StateSystem следит за концом игры и собирает снимок для HUD.
type StateSystem struct {
	ecs             *entity.World
	eventDispatcher *event.Dispatcher
	over            bool
	snapshot        component.HUDSnapshot
}

func NewStateSystem(ecs *entity.World, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.GameOver, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.GameOver {
		s.over = true
	}
}

// Update refreshes the HUD snapshot from the world.
func (s *StateSystem) Update(deltaTime float64) {
	p := s.ecs.Player
	stats := p.Stats()
	progress := s.ecs.Progress
	snap := component.HUDSnapshot{
		Score:        p.Score,
		Lives:        p.Lives,
		Weapon:       p.Weapon,
		Damage:       stats.Damage,
		FireRate:     stats.FireRate,
		SprayBeams:   p.SprayBeams,
		Drones:       p.DroneCount(),
		Phase:        progress.Phase,
		Wave:         progress.Wave,
		Multiplicand: progress.Multiplicand,
		Countdown:    progress.Countdown,
		BossFight:    progress.BossAlive,
		GameOver:     s.over,
	}
	if ship := s.ecs.Ship; ship != nil {
		snap.Health = ship.Health
		snap.MaxHealth = ship.MaxHealth
	}
	s.snapshot = snap
}

// Snapshot returns the values computed by the last Update.
func (s *StateSystem) Snapshot() component.HUDSnapshot { return s.snapshot }

// Over reports whether the player ran out of lives.
func (s *StateSystem) Over() bool { return s.over }
