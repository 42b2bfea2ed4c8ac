package system

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerSystem_InitPlacesShip(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	h.player.Init()

	ship := h.ecs.Ship
	require.NotNil(t, ship)
	assert.InDelta(t, config.FieldWidth/2, ship.Center().X, 1e-9)
	assert.InDelta(t, config.FieldHeight*4/5, ship.Center().Y, 1e-9)
	assert.Equal(t, h.tuning.Player.MaxHealth, ship.Health)

	p := h.ecs.Player
	assert.Equal(t, h.tuning.Player.Lives, p.Lives)
	assert.Equal(t, defs.WeaponParallel, p.Weapon)
	assert.Equal(t, h.tuning.Player.Spray.BeamsBase, p.SprayBeams)
	assert.True(t, p.AutoFire)
}

func TestPlayerSystem_MovesAndBanks(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	h.player.Init()
	ship := h.ecs.Ship
	x := ship.Position.X

	h.player.Update(0.1, right())

	assert.InDelta(t, x+h.tuning.Player.Speed*0.1, ship.Position.X, 1e-9)
	assert.Equal(t, component.StateCurve, ship.State)

	h.player.Update(0.1, component.MovementIntent{})
	assert.Equal(t, component.StateIdle, ship.State)
}

func TestPlayerSystem_ClampedToField(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	h.player.Init()
	ship := h.ecs.Ship

	for i := 0; i < 100; i++ {
		h.player.Update(0.1, left())
	}
	assert.Zero(t, ship.Position.X)

	down := component.MovementIntent{MoveY: [2]int{0, 1}}
	for i := 0; i < 100; i++ {
		h.player.Update(0.1, down)
	}
	assert.InDelta(t, config.FieldHeight-ship.H(), ship.Position.Y, 1e-9)
}

func TestPlayerSystem_DronesKeepClampInsideField(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	h.player.Init()
	h.ecs.Player.PendingDrones = 2

	for i := 0; i < 100; i++ {
		h.player.Update(0.1, left())
	}
	for _, d := range h.ecs.Player.Drones {
		require.NotNil(t, d)
		assert.GreaterOrEqual(t, d.Position.X, 0.0)
	}
	for i := 0; i < 100; i++ {
		h.player.Update(0.1, right())
	}
	for _, d := range h.ecs.Player.Drones {
		assert.LessOrEqual(t, d.Position.X+d.W(), float64(config.FieldWidth))
	}
}

func TestPlayerSystem_FillsOneDronePerFrame(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	h.player.Init()
	p := h.ecs.Player
	p.PendingDrones = 3

	h.player.Update(0.01, component.MovementIntent{})
	assert.Equal(t, 1, p.DroneCount())
	assert.Equal(t, 2, p.PendingDrones)

	h.player.Update(0.01, component.MovementIntent{})
	assert.Equal(t, 2, p.DroneCount())
	assert.Equal(t, 1, p.PendingDrones)

	h.player.Update(0.01, component.MovementIntent{})
	assert.Equal(t, 2, p.DroneCount())
	assert.Equal(t, 1, p.PendingDrones, "the grant waits for a free slot")

	ship := h.ecs.Ship
	assert.Equal(t, ship.Position.Add(droneOffset(0)), p.Drones[0].Position)
	assert.Equal(t, ship.Position.Add(droneOffset(1)), p.Drones[1].Position)
	assert.Less(t, p.Drones[0].Position.X, ship.Position.X)
	assert.Greater(t, p.Drones[1].Position.X+p.Drones[1].W(), ship.Position.X+ship.W())
}

func TestPlayerSystem_ParallelFiresTwoLasers(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	h.player.Init()

	h.player.Update(h.tuning.Player.Laser.FireRate, component.MovementIntent{})
	h.ecs.Flush()

	require.Len(t, h.ecs.PlayerProjectiles, 2)
	for _, p := range h.ecs.PlayerProjectiles {
		assert.Equal(t, h.tuning.Player.Laser.Damage, p.Damage)
		assert.Equal(t, component.SidePlayer, p.Side)
		assert.Equal(t, -1, p.Direction)
	}
}

func TestPlayerSystem_SprayFansBeams(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	h.player.Init()
	h.ecs.Player.Weapon = defs.WeaponSpray
	h.ecs.Player.SprayBeams = 5

	h.player.Update(h.tuning.Player.Laser.FireRate, component.MovementIntent{})
	h.ecs.Flush()

	require.Len(t, h.ecs.PlayerProjectiles, 5)
	spread := h.tuning.Player.Spray.SpreadDeg
	for i, p := range h.ecs.PlayerProjectiles {
		assert.True(t, p.Angled)
		assert.InDelta(t, 90-2*spread+float64(i)*spread, p.Angle, 1e-9)
	}
}

func TestPlayerSystem_RocketUsesRocketStats(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	h.player.Init()
	h.ecs.Player.Weapon = defs.WeaponRocket

	h.player.Update(h.tuning.Player.Laser.FireRate, component.MovementIntent{})
	h.ecs.Flush()
	assert.Empty(t, h.ecs.PlayerProjectiles, "rocket interval is longer")

	h.player.Update(h.tuning.Player.Rocket.FireRate, component.MovementIntent{})
	h.ecs.Flush()
	require.Len(t, h.ecs.PlayerProjectiles, 1)
	assert.Equal(t, defs.KindRocket, h.ecs.PlayerProjectiles[0].Kind)
	assert.Equal(t, h.tuning.Player.Rocket.Damage, h.ecs.PlayerProjectiles[0].Damage)
}

func TestPlayerSystem_NoFireWithoutAutoFire(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	h.player.Init()
	h.ecs.Player.PendingDrones = 1
	h.ecs.Player.AutoFire = false

	h.player.Update(5, component.MovementIntent{})
	h.ecs.Flush()

	assert.Empty(t, h.ecs.PlayerProjectiles)
}

func TestPlayerSystem_DroneFiresFlatDamage(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	h.player.Init()
	h.ecs.Player.PendingDrones = 1
	h.ecs.Player.Weapon = defs.WeaponRocket
	h.player.Update(0.01, component.MovementIntent{})
	h.ecs.Flush()

	h.player.Update(h.tuning.Drone.FireRate, component.MovementIntent{})
	h.ecs.Flush()

	require.Len(t, h.ecs.PlayerProjectiles, 1)
	assert.Equal(t, h.tuning.Drone.Damage, h.ecs.PlayerProjectiles[0].Damage)
	assert.Equal(t, defs.KindLaser, h.ecs.PlayerProjectiles[0].Kind)
}

func TestPlayerSystem_LifeLostResetsShipAndDrones(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	h.player.Init()
	p := h.ecs.Player
	p.Lives = 2
	p.PendingDrones = 1
	h.player.Update(0.01, component.MovementIntent{})
	ship := h.ecs.Ship
	drone := p.Drones[0]
	require.NotNil(t, drone)
	spawn := h.player.spawnPosition()

	h.player.Update(0.5, left())
	ApplyDamage(&drone.Actor, 20, h.tuning.Effect.FlashDuration)
	require.True(t, ApplyDamage(&ship.Actor, 1000, h.tuning.Effect.FlashDuration))
	shot := h.enemyShot(10, component.Vector{X: 100, Y: 100})

	h.player.ResolveLosses()

	assert.Equal(t, 1, p.Lives)
	assert.False(t, ship.Dead())
	assert.False(t, ship.Removed)
	assert.Equal(t, ship.MaxHealth, ship.Health)
	assert.Equal(t, spawn, ship.Position)
	assert.Equal(t, component.StateIdle, ship.State)
	assert.Equal(t, drone.MaxHealth, drone.Health)
	assert.Equal(t, ship.Position.Add(droneOffset(0)), drone.Position)
	assert.True(t, shot.Removed)
	require.Equal(t, 1, h.events.count(event.PlayerLifeLost))
	assert.Equal(t, 1, h.events.events[0].Data)
	assert.Zero(t, h.events.count(event.GameOver))
}

func TestPlayerSystem_LastLifeEndsGame(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	h.player.Init()
	p := h.ecs.Player
	p.Lives = 1
	p.Score = 1234
	ApplyDamage(&h.ecs.Ship.Actor, 1000, 0)

	h.player.ResolveLosses()

	assert.Zero(t, p.Lives)
	assert.True(t, h.ecs.Ship.Removed)
	assert.Empty(t, h.ecs.PlayerActors())
	require.Equal(t, 1, h.events.count(event.GameOver))
	assert.Equal(t, 1234, h.events.events[len(h.events.events)-1].Data)

	h.player.ResolveLosses()
	assert.Equal(t, 1, h.events.count(event.GameOver), "game over is signalled once")
}

func TestPlayerSystem_DeadDroneFreesSlot(t *testing.T) {
	h := newHarness(t, &fixedRandom{})
	h.player.Init()
	p := h.ecs.Player
	p.PendingDrones = 1
	h.player.Update(0.01, component.MovementIntent{})
	require.NotNil(t, p.Drones[0])

	ApplyDamage(&p.Drones[0].Actor, 1000, 0)
	h.player.ResolveLosses()
	h.ecs.Flush()

	assert.Nil(t, p.Drones[0])
	assert.Equal(t, 3, p.Lives)
	assert.Equal(t, 1, countEffects(h.ecs, component.EffectExplosion))
}
