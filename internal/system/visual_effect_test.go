package system

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualEffectSystem_OneShotEffectsExpire(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	boom := h.spawner.NewEffect(component.EffectExplosion, component.Vector{X: 200, Y: 200})
	spark := h.spawner.NewEffect(component.EffectHit, component.Vector{X: 200, Y: 200})
	h.ecs.Flush()
	y := boom.Position.Y

	h.effects.Update(0.1)
	assert.False(t, boom.Removed)
	assert.InDelta(t, y+h.tuning.Effect.ExplosionDrift*0.1, boom.Position.Y, 1e-9)

	h.effects.Update(1)
	assert.True(t, boom.Removed)
	assert.True(t, spark.Removed)
}

func TestVisualEffectSystem_FlashFades(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	e := h.enemy(t, "SHIP_1", component.Vector{X: 300, Y: 300}, 1)
	ApplyDamage(&e.Actor, 1, 0.12)

	h.effects.Update(0.05)
	assert.InDelta(t, 0.05/0.12, e.Flash.Progress(), 1e-9)

	h.effects.Update(0.1)
	assert.Equal(t, component.DamageFlash{}, e.Flash)
	assert.Equal(t, 1.0, e.Flash.Progress())
}

func TestApplyDamage_KillReportedOnce(t *testing.T) {
	a := &component.Actor{Health: 10, MaxHealth: 10}

	assert.False(t, ApplyDamage(a, 0, 0.1))
	assert.Zero(t, a.Flash.Duration)
	assert.True(t, ApplyDamage(a, 15, 0.1))
	assert.Zero(t, a.Health)
	assert.False(t, ApplyDamage(a, 5, 0.1))
}

func TestStateSystem_SnapshotAndGameOver(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	h.player.Init()
	ss := NewStateSystem(h.ecs, h.dispatcher)
	h.ecs.Player.Score = 420
	h.ecs.Player.Weapon = defs.WeaponRocket
	h.ecs.Progress.Phase = 4
	h.ecs.Progress.Multiplicand = 2

	ss.Update(0)
	snap := ss.Snapshot()
	assert.Equal(t, 420, snap.Score)
	assert.Equal(t, h.tuning.Player.Lives, snap.Lives)
	assert.Equal(t, defs.WeaponRocket, snap.Weapon)
	assert.Equal(t, h.tuning.Player.Rocket.Damage, snap.Damage)
	assert.Equal(t, 4, snap.Phase)
	assert.Equal(t, h.ecs.Ship.MaxHealth, snap.MaxHealth)
	assert.False(t, snap.GameOver)

	h.dispatcher.Emit(event.GameOver, 420)
	ss.Update(0)
	assert.True(t, ss.Over())
	assert.True(t, ss.Snapshot().GameOver)
}

func TestStateSystem_WorksWithoutShip(t *testing.T) {
	w := entity.NewWorld()
	ss := NewStateSystem(w, event.NewDispatcher())

	require.NotPanics(t, func() { ss.Update(0) })
	assert.Zero(t, ss.Snapshot().MaxHealth)
}
