// internal/entity/ecs.go
package entity

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/types"
)

// World holds every group of the running game. Spawns go to pending buffers
// and become visible after Flush, so a pass never sees entities created
// during that same pass. Removal only sets a flag; Prune drops flagged
// entities once the frame is done.
type World struct {
	GameTime          float64
	NextID            types.EntityID
	Ship              *component.Ship
	Player            *component.PlayerState
	Progress          *component.Progress
	Enemies           []*component.Enemy
	Bosses            []*component.Boss
	PlayerProjectiles []*component.Projectile
	EnemyProjectiles  []*component.Projectile
	Upgrades          []*component.Upgrade
	Effects           []*component.Effect

	pendingEnemies           []*component.Enemy
	pendingBosses            []*component.Boss
	pendingPlayerProjectiles []*component.Projectile
	pendingEnemyProjectiles  []*component.Projectile
	pendingUpgrades          []*component.Upgrade
	pendingEffects           []*component.Effect
}

func NewWorld() *World {
	return &World{
		NextID:   1,
		Player:   &component.PlayerState{AutoFire: true},
		Progress: &component.Progress{Phase: 1, Multiplicand: 1},
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

func (w *World) SpawnEnemy(e *component.Enemy) {
	if e.ID == 0 {
		e.ID = w.NewEntity()
	}
	w.pendingEnemies = append(w.pendingEnemies, e)
}

func (w *World) SpawnBoss(b *component.Boss) {
	if b.ID == 0 {
		b.ID = w.NewEntity()
	}
	w.pendingBosses = append(w.pendingBosses, b)
}

func (w *World) SpawnPlayerProjectile(p *component.Projectile) {
	if p.ID == 0 {
		p.ID = w.NewEntity()
	}
	w.pendingPlayerProjectiles = append(w.pendingPlayerProjectiles, p)
}

func (w *World) SpawnEnemyProjectile(p *component.Projectile) {
	if p.ID == 0 {
		p.ID = w.NewEntity()
	}
	w.pendingEnemyProjectiles = append(w.pendingEnemyProjectiles, p)
}

func (w *World) SpawnUpgrade(u *component.Upgrade) {
	if u.ID == 0 {
		u.ID = w.NewEntity()
	}
	w.pendingUpgrades = append(w.pendingUpgrades, u)
}

func (w *World) SpawnEffect(e *component.Effect) {
	if e.ID == 0 {
		e.ID = w.NewEntity()
	}
	w.pendingEffects = append(w.pendingEffects, e)
}

// Flush makes everything spawned since the last flush part of the groups.
func (w *World) Flush() {
	w.Enemies = append(w.Enemies, w.pendingEnemies...)
	w.Bosses = append(w.Bosses, w.pendingBosses...)
	w.PlayerProjectiles = append(w.PlayerProjectiles, w.pendingPlayerProjectiles...)
	w.EnemyProjectiles = append(w.EnemyProjectiles, w.pendingEnemyProjectiles...)
	w.Upgrades = append(w.Upgrades, w.pendingUpgrades...)
	w.Effects = append(w.Effects, w.pendingEffects...)

	w.pendingEnemies = nil
	w.pendingBosses = nil
	w.pendingPlayerProjectiles = nil
	w.pendingEnemyProjectiles = nil
	w.pendingUpgrades = nil
	w.pendingEffects = nil
}

// UpgradeMark returns a marker for upgrades spawned from now on.
func (w *World) UpgradeMark() int { return len(w.pendingUpgrades) }

// PromoteUpgrades merges the upgrades spawned since mark into the live group
// ahead of the regular Flush. Upgrades spawned before mark stay pending.
func (w *World) PromoteUpgrades(mark int) {
	if mark < 0 || mark >= len(w.pendingUpgrades) {
		return
	}
	w.Upgrades = append(w.Upgrades, w.pendingUpgrades[mark:]...)
	clear(w.pendingUpgrades[mark:])
	w.pendingUpgrades = w.pendingUpgrades[:mark]
}

// Prune drops removed entities from every group.
func (w *World) Prune() {
	w.Enemies = prune(w.Enemies, func(e *component.Enemy) bool { return e.Removed })
	w.Bosses = prune(w.Bosses, func(b *component.Boss) bool { return b.Removed })
	w.PlayerProjectiles = prune(w.PlayerProjectiles, func(p *component.Projectile) bool { return p.Removed })
	w.EnemyProjectiles = prune(w.EnemyProjectiles, func(p *component.Projectile) bool { return p.Removed })
	w.Upgrades = prune(w.Upgrades, func(u *component.Upgrade) bool { return u.Removed })
	w.Effects = prune(w.Effects, func(e *component.Effect) bool { return e.Removed })
}

func prune[T any](items []T, removed func(T) bool) []T {
	kept := items[:0]
	for _, it := range items {
		if !removed(it) {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

// LiveEnemies counts regular enemies and bosses, pending ones included.
func (w *World) LiveEnemies() int {
	n := 0
	for _, group := range [][]*component.Enemy{w.Enemies, w.pendingEnemies} {
		for _, e := range group {
			if !e.Removed {
				n++
			}
		}
	}
	for _, group := range [][]*component.Boss{w.Bosses, w.pendingBosses} {
		for _, b := range group {
			if !b.Removed {
				n++
			}
		}
	}
	return n
}

// LiveUpgrades counts falling upgrades, pending ones included.
func (w *World) LiveUpgrades() int {
	n := 0
	for _, group := range [][]*component.Upgrade{w.Upgrades, w.pendingUpgrades} {
		for _, u := range group {
			if !u.Removed {
				n++
			}
		}
	}
	return n
}

// ClearPlayerProjectiles removes every player projectile, pending ones too.
func (w *World) ClearPlayerProjectiles() {
	for _, p := range w.PlayerProjectiles {
		p.Removed = true
	}
	for _, p := range w.pendingPlayerProjectiles {
		p.Removed = true
	}
}

// ClearEnemyProjectiles removes every enemy projectile, pending ones too.
func (w *World) ClearEnemyProjectiles() {
	for _, p := range w.EnemyProjectiles {
		p.Removed = true
	}
	for _, p := range w.pendingEnemyProjectiles {
		p.Removed = true
	}
}

// PlayerActors returns the ship and the live drones.
func (w *World) PlayerActors() []*component.Actor {
	actors := make([]*component.Actor, 0, 3)
	if w.Ship != nil && !w.Ship.Removed {
		actors = append(actors, &w.Ship.Actor)
	}
	for _, d := range w.Player.Drones {
		if d != nil && !d.Removed {
			actors = append(actors, &d.Actor)
		}
	}
	return actors
}
