// internal/system/player.go
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

// PlayerSystem управляет кораблём игрока, дронами сопровождения и потерей жизней.
type PlayerSystem struct {
	ecs             *entity.World
	catalog         *assets.Catalog
	spawner         *Spawner
	tuning          *config.Tuning
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewPlayerSystem(ecs *entity.World, catalog *assets.Catalog, spawner *Spawner, tuning *config.Tuning,
	eventDispatcher *event.Dispatcher, logger zerolog.Logger) *PlayerSystem {
	return &PlayerSystem{
		ecs:             ecs,
		catalog:         catalog,
		spawner:         spawner,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Init creates the ship at its spawn point and resets the player resources.
func (s *PlayerSystem) Init() {
	t := s.tuning.Player
	*s.ecs.Player = component.PlayerState{
		Lives:      t.Lives,
		Weapon:     defs.WeaponParallel,
		Laser:      component.WeaponStats{Damage: t.Laser.Damage, FireRate: t.Laser.FireRate},
		Rocket:     component.WeaponStats{Damage: t.Rocket.Damage, FireRate: t.Rocket.FireRate},
		SprayBeams: t.Spray.BeamsBase,
		AutoFire:   true,
	}
	anim := s.catalog.Animation(assets.ShipIdle)
	s.ecs.Ship = &component.Ship{
		Actor: component.Actor{
			ID:        s.ecs.NewEntity(),
			Side:      component.SidePlayer,
			Health:    t.MaxHealth,
			MaxHealth: t.MaxHealth,
			Frame:     anim.Frame(),
		},
		State: component.StateIdle,
		Anim:  anim,
	}
	s.ecs.Ship.Position = s.spawnPosition()
}

// spawnPosition — корабль по центру, на высоте 4/5 поля.
func (s *PlayerSystem) spawnPosition() component.Vector {
	w, h := assets.ShipIdle.Size()
	return component.Vector{
		X: config.FieldWidth/2 - float64(w)/2,
		Y: config.FieldHeight*4/5 - float64(h)/2,
	}
}

func (s *PlayerSystem) Update(deltaTime float64, intent component.MovementIntent) {
	ship := s.ecs.Ship
	if ship == nil {
		return
	}
	s.fillPendingDrone()

	state := component.StateIdle
	if intent.DX() != 0 {
		state = component.StateCurve
	}
	if state != ship.State {
		ship.State = state
		ship.Anim = s.catalog.Animation(shipAsset(state))
	}
	ship.Anim.Update(deltaTime)
	ship.SetFrame(orient(ship.Anim.Frame(), intent.DX() > 0))

	speed := s.tuning.Player.Speed
	ship.Position.X += float64(intent.DX()) * speed * deltaTime
	ship.Position.Y += float64(intent.DY()) * speed * deltaTime
	s.clampToField()

	for _, d := range s.ecs.Player.Drones {
		if d == nil {
			continue
		}
		s.updateDrone(d, deltaTime, state, intent.DX() > 0)
	}
	s.updateShipFire(deltaTime)
}

func shipAsset(state string) assets.AssetID {
	if state == component.StateCurve {
		return assets.ShipCurve
	}
	return assets.ShipIdle
}

func droneAsset(state string) assets.AssetID {
	if state == component.StateCurve {
		return assets.DroneCurve
	}
	return assets.DroneIdle
}

// orient mirrors the banking frame when moving right.
func orient(f *assets.Frame, right bool) *assets.Frame {
	if right {
		return f.Flipped()
	}
	return f
}

// fillPendingDrone moves at most one queued drone into a free slot.
func (s *PlayerSystem) fillPendingDrone() {
	p := s.ecs.Player
	if p.PendingDrones == 0 {
		return
	}
	for slot, d := range p.Drones {
		if d != nil {
			continue
		}
		p.Drones[slot] = s.newDrone(slot)
		p.PendingDrones--
		s.placeDrone(p.Drones[slot])
		return
	}
}

func (s *PlayerSystem) newDrone(slot int) *component.Drone {
	t := s.tuning.Drone
	anim := s.catalog.Animation(assets.DroneIdle)
	return &component.Drone{
		Actor: component.Actor{
			ID:        s.ecs.NewEntity(),
			Side:      component.SidePlayer,
			Health:    t.MaxHealth,
			MaxHealth: t.MaxHealth,
			Frame:     anim.Frame(),
		},
		Slot:     slot,
		State:    component.StateIdle,
		Anim:     anim,
		FireRate: max(t.FireRateMin, t.FireRate),
		Damage:   t.Damage,
	}
}

// droneOffset returns the drone's top-left relative to the ship. The value
// is recomputed from the ship every frame, never shared.
func droneOffset(slot int) component.Vector {
	sw, sh := assets.ShipIdle.Size()
	dw, _ := assets.DroneIdle.Size()
	x := -float64(sw) / 2
	if slot == 1 {
		x = 1.5*float64(sw) - float64(dw)
	}
	return component.Vector{X: x, Y: float64(sh) / 2}
}

func (s *PlayerSystem) placeDrone(d *component.Drone) {
	d.Position = s.ecs.Ship.Position.Add(droneOffset(d.Slot))
}

// clampToField keeps the ship and its drones inside the play field.
func (s *PlayerSystem) clampToField() {
	ship := s.ecs.Ship
	minX, maxX := 0.0, config.FieldWidth-ship.W()
	maxY := config.FieldHeight - ship.H()
	for _, d := range s.ecs.Player.Drones {
		if d == nil {
			continue
		}
		off := droneOffset(d.Slot)
		minX = max(minX, -off.X)
		maxX = min(maxX, config.FieldWidth-off.X-d.W())
		maxY = min(maxY, config.FieldHeight-off.Y-d.H())
	}
	ship.Position.X = utils.Clamp(ship.Position.X, minX, maxX)
	ship.Position.Y = utils.Clamp(ship.Position.Y, 0, maxY)
}

func (s *PlayerSystem) updateDrone(d *component.Drone, deltaTime float64, state string, right bool) {
	if state != d.State {
		d.State = state
		d.Anim = s.catalog.Animation(droneAsset(state))
	}
	d.Anim.Update(deltaTime)
	d.SetFrame(orient(d.Anim.Frame(), right))
	s.placeDrone(d)

	if !s.ecs.Player.AutoFire {
		return
	}
	d.ShootTimer += deltaTime
	if d.ShootTimer < d.FireRate {
		return
	}
	d.ShootTimer = 0
	nose := component.Vector{X: d.Position.X + d.W()/2, Y: d.Position.Y}
	s.spawner.NewProjectile(component.SidePlayer, defs.KindLaser, d.Damage, nose)
}

// updateShipFire fires the current weapon whenever its interval elapsed.
func (s *PlayerSystem) updateShipFire(deltaTime float64) {
	ship := s.ecs.Ship
	p := s.ecs.Player
	if !p.AutoFire || ship.Dead() {
		return
	}
	stats := p.Stats()
	ship.ShootTimer += deltaTime
	if ship.ShootTimer < stats.FireRate {
		return
	}
	ship.ShootTimer = 0

	x, y, w := ship.Position.X, ship.Position.Y, ship.W()
	switch p.Weapon {
	case defs.WeaponParallel:
		s.spawner.NewProjectile(component.SidePlayer, defs.KindLaser, stats.Damage, component.Vector{X: x + w*0.25, Y: y})
		s.spawner.NewProjectile(component.SidePlayer, defs.KindLaser, stats.Damage, component.Vector{X: x + w*0.75, Y: y})
	case defs.WeaponRocket:
		s.spawner.NewProjectile(component.SidePlayer, defs.KindRocket, stats.Damage, component.Vector{X: x + w/2, Y: y})
	case defs.WeaponSpray:
		nose := component.Vector{X: x + w/2, Y: y}
		for _, angle := range utils.FanAngles(p.SprayBeams, 90, s.tuning.Player.Spray.SpreadDeg) {
			s.spawner.NewAngledProjectile(component.SidePlayer, defs.KindSprayBeam, stats.Damage, nose, angle)
		}
	}
}

// ResolveLosses frees the slots of destroyed drones and handles the loss of
// the ship. It runs after the collision pass.
func (s *PlayerSystem) ResolveLosses() {
	p := s.ecs.Player
	for slot, d := range p.Drones {
		if d != nil && d.Dead() {
			s.spawner.NewEffect(component.EffectExplosion, d.Center())
			p.Drones[slot] = nil
		}
	}

	ship := s.ecs.Ship
	if ship == nil || !ship.Dead() || p.Lives == 0 {
		return
	}
	s.spawner.NewEffect(component.EffectExplosion, ship.Center())
	p.Lives--
	s.logger.Info().Int("lives", p.Lives).Int("score", p.Score).Msg("life lost")
	s.eventDispatcher.Emit(event.PlayerLifeLost, p.Lives)

	if p.Lives == 0 {
		ship.Removed = true
		s.logger.Info().Int("score", p.Score).Msg("game over")
		s.eventDispatcher.Emit(event.GameOver, p.Score)
		return
	}
	s.respawn()
}

// respawn puts the ship and the drones back to their spawn state.
func (s *PlayerSystem) respawn() {
	ship := s.ecs.Ship
	ship.Restore()
	ship.Flash = component.DamageFlash{}
	ship.ShootTimer = 0
	ship.State = component.StateIdle
	ship.Anim = s.catalog.Animation(assets.ShipIdle)
	ship.SetFrame(ship.Anim.Frame())
	ship.Position = s.spawnPosition()

	for _, d := range s.ecs.Player.Drones {
		if d == nil {
			continue
		}
		d.Restore()
		d.Flash = component.DamageFlash{}
		d.ShootTimer = 0
		d.State = component.StateIdle
		d.Anim = s.catalog.Animation(assets.DroneIdle)
		d.SetFrame(d.Anim.Frame())
		s.placeDrone(d)
	}
	s.ecs.ClearEnemyProjectiles()
}
