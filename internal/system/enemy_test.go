package system

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemySystem_SpawnScalesHealth(t *testing.T) {
	h := newHarness(t, &fixedRandom{})

	e := h.enemy(t, "SHIP_3", component.Vector{X: 300, Y: 100}, 2)

	assert.Equal(t, 3*50*2, e.Health)
	assert.Equal(t, e.Health, e.MaxHealth)
	assert.Equal(t, component.SideEnemy, e.Side)
	assert.InDelta(t, 300, e.Center().X, 1e-9)
	assert.InDelta(t, 100, e.Center().Y, 1e-9)
}

func TestEnemySystem_FiresFromEveryMuzzle(t *testing.T) {
	h := newHarness(t, &fixedRandom{f: 0.1})
	e := h.enemy(t, "SHIP_2", component.Vector{X: 300, Y: 100}, 2)

	h.enemies.Update(e.Def.FireInterval)
	h.ecs.Flush()

	require.Len(t, h.ecs.EnemyProjectiles, len(e.Def.Muzzles))
	for _, p := range h.ecs.EnemyProjectiles {
		assert.Equal(t, component.SideEnemy, p.Side)
		assert.Equal(t, h.tuning.Enemy.LaserDamage*2, p.Damage)
	}
	assert.Zero(t, e.FireTimer)
}

func TestEnemySystem_FireChanceCanMiss(t *testing.T) {
	h := newHarness(t, &fixedRandom{f: 0.9})
	e := h.enemy(t, "SHIP_1", component.Vector{X: 300, Y: 100}, 1)

	h.enemies.Update(e.Def.FireInterval)
	h.ecs.Flush()

	assert.Empty(t, h.ecs.EnemyProjectiles)
}

func TestEnemySystem_LeavingBottomGivesNoScore(t *testing.T) {
	h := newHarness(t, &fixedRandom{f: 0.9})
	e := h.enemy(t, "SHIP_1", component.Vector{X: 300, Y: 100}, 1)
	e.Position.Y = config.FieldHeight - 1

	h.enemies.Update(0.1)

	assert.True(t, e.Removed)
	assert.Zero(t, h.ecs.Player.Score)
	assert.Zero(t, h.events.count(event.EnemyKilled))
}

func TestEnemySystem_KillDropsUpgradeAndExplosion(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	e := h.enemy(t, "SHIP_2", component.Vector{X: 300, Y: 100}, 3)

	h.enemies.Kill(e)
	h.ecs.Flush()

	assert.True(t, e.Removed)
	assert.Equal(t, h.tuning.Enemy.KillScore*2*3, h.ecs.Player.Score)
	require.Len(t, h.ecs.Upgrades, 1)
	assert.InDelta(t, e.Center().X, h.ecs.Upgrades[0].Bounds().Center().X, 1e-9)
	assert.Equal(t, 1, countEffects(h.ecs, component.EffectExplosion))
	require.Equal(t, 1, h.events.count(event.EnemyKilled))
	assert.Equal(t, event.EnemyKilledData{Tier: 2, Score: 300}, h.events.events[0].Data)
}

func TestEnemySystem_KillRespectsUpgradeCap(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	for i := 0; i < h.tuning.Upgrade.MaxLive; i++ {
		h.spawner.NewUpgrade(component.Vector{X: 100, Y: 100})
	}
	e := h.enemy(t, "SHIP_1", component.Vector{X: 300, Y: 100}, 1)

	h.enemies.Kill(e)
	h.ecs.Flush()

	assert.Len(t, h.ecs.Upgrades, h.tuning.Upgrade.MaxLive)
}
