// internal/component/player.go
package component

import (
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/defs"
)

const (
	StateIdle  = "idle"
	StateCurve = "curve"
)

// Ship — корабль игрока.
type Ship struct {
	Actor
	State      string
	Anim       *assets.Animation
	ShootTimer float64
}

// Drone — дрон сопровождения в левом (0) или правом (1) слоте.
type Drone struct {
	Actor
	Slot       int
	State      string
	Anim       *assets.Animation
	ShootTimer float64
	FireRate   float64
	Damage     int
}

// WeaponStats — урон и интервал стрельбы одного класса оружия.
type WeaponStats struct {
	Damage   int
	FireRate float64 // секунды между выстрелами
}

// PlayerState хранит ресурсы игрока.
type PlayerState struct {
	Lives         int
	Weapon        defs.WeaponID
	Laser         WeaponStats // parallel и spray
	Rocket        WeaponStats
	SprayBeams    int
	Drones        [2]*Drone
	PendingDrones int
	Score         int
	AutoFire      bool
}

// AddScore only ever raises the score.
func (p *PlayerState) AddScore(n int) {
	if n > 0 {
		p.Score += n
	}
}

// Stats returns the stats of the weapon class currently in use.
func (p *PlayerState) Stats() *WeaponStats {
	if p.Weapon.RocketClass() {
		return &p.Rocket
	}
	return &p.Laser
}

// DroneCount returns the number of occupied slots.
func (p *PlayerState) DroneCount() int {
	n := 0
	for _, d := range p.Drones {
		if d != nil {
			n++
		}
	}
	return n
}
