package entity

import (
	"testing"

	"go-space-shooter/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorld_SpawnsAreDeferredUntilFlush(t *testing.T) {
	w := NewWorld()

	w.SpawnEnemy(&component.Enemy{})
	w.SpawnPlayerProjectile(&component.Projectile{})

	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.PlayerProjectiles)
	assert.Equal(t, 1, w.LiveEnemies(), "pending enemies count as live")

	w.Flush()

	require.Len(t, w.Enemies, 1)
	require.Len(t, w.PlayerProjectiles, 1)
	assert.NotZero(t, w.Enemies[0].ID)
	assert.NotEqual(t, w.Enemies[0].ID, w.PlayerProjectiles[0].ID)
}

func TestWorld_PruneDropsRemoved(t *testing.T) {
	w := NewWorld()
	keep := &component.Upgrade{}
	drop := &component.Upgrade{Removed: true}
	w.Upgrades = []*component.Upgrade{drop, keep, {Removed: true}}

	w.Prune()

	assert.Equal(t, []*component.Upgrade{keep}, w.Upgrades)
}

func TestWorld_ClearPlayerProjectilesIncludesPending(t *testing.T) {
	w := NewWorld()
	live := &component.Projectile{}
	w.PlayerProjectiles = []*component.Projectile{live}
	pending := &component.Projectile{}
	w.SpawnPlayerProjectile(pending)

	w.ClearPlayerProjectiles()
	w.Flush()
	w.Prune()

	assert.Empty(t, w.PlayerProjectiles)
}

func TestWorld_LiveUpgrades(t *testing.T) {
	w := NewWorld()
	w.Upgrades = []*component.Upgrade{{}, {Removed: true}}
	w.SpawnUpgrade(&component.Upgrade{})
	assert.Equal(t, 2, w.LiveUpgrades())
}

func TestWorld_PlayerActors(t *testing.T) {
	w := NewWorld()
	w.Ship = &component.Ship{}
	w.Player.Drones[1] = &component.Drone{Slot: 1}

	actors := w.PlayerActors()

	require.Len(t, actors, 2)
	assert.Same(t, &w.Ship.Actor, actors[0])
	assert.Same(t, &w.Player.Drones[1].Actor, actors[1])
}
