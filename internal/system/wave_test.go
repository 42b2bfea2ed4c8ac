package system

import (
	"testing"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplicand(t *testing.T) {
	for phase, want := range map[int]int{1: 1, 3: 1, 4: 2, 6: 2, 7: 3, 12: 3} {
		assert.Equal(t, want, Multiplicand(phase), "phase %d", phase)
	}
}

func TestSpawnX_EvenlySpaced(t *testing.T) {
	assert.InDelta(t, config.FieldWidth/2, SpawnX(0, 1), 1e-9)

	step := float64(config.FieldWidth) / 4
	assert.InDelta(t, step, SpawnX(0, 3), 1e-9)
	assert.InDelta(t, 2*step, SpawnX(1, 3), 1e-9)
	assert.InDelta(t, 3*step, SpawnX(2, 3), 1e-9)
}

func TestWaveSystem_CountdownThenFirstWave(t *testing.T) {
	h := newHarness(t, &fixedRandom{f: 0.9})
	h.waves.Start()
	require.Equal(t, h.tuning.Scheduler.LevelCountdown, h.ecs.Progress.Countdown)

	h.waves.Update(h.tuning.Scheduler.LevelCountdown)
	assert.Zero(t, h.ecs.LiveEnemies(), "nothing spawns during the countdown")

	h.waves.Update(0.01)
	waves, err := defs.PhaseWaves(1)
	require.NoError(t, err)
	assert.Equal(t, len(waves[0].Entries), h.ecs.LiveEnemies())
	assert.Equal(t, 1, h.ecs.Progress.Wave)
	assert.Equal(t, 1, h.events.count(event.WaveSpawned))

	h.ecs.Flush()
	for i, e := range h.ecs.Enemies {
		assert.InDelta(t, SpawnX(i, len(h.ecs.Enemies)), e.Center().X, 1e-9)
	}
}

func TestWaveSystem_WaitsForFieldToClear(t *testing.T) {
	h := newHarness(t, &fixedRandom{f: 0.9})
	h.waves.Start()
	h.ecs.Progress.Countdown = 0

	h.waves.Update(0.01)
	h.ecs.Flush()
	first := len(h.ecs.Enemies)
	require.NotZero(t, first)

	h.waves.Update(10)
	h.ecs.Flush()
	assert.Len(t, h.ecs.Enemies, first)

	for _, e := range h.ecs.Enemies {
		e.Removed = true
	}
	h.ecs.Prune()
	h.waves.Update(0.01)
	assert.NotZero(t, h.ecs.LiveEnemies())
	assert.Equal(t, 2, h.ecs.Progress.Wave)
}

func TestWaveSystem_PacingPreventsBackToBackWaves(t *testing.T) {
	h := newHarness(t, &fixedRandom{f: 0.9})
	h.waves.Start()
	h.ecs.Progress.Countdown = 0

	h.waves.Update(0.01)
	h.ecs.Flush()
	for _, e := range h.ecs.Enemies {
		e.Removed = true
	}
	h.ecs.Prune()

	h.waves.Update(h.tuning.Scheduler.MinPacing / 2)
	assert.Zero(t, h.ecs.LiveEnemies(), "pacing still running")

	h.waves.Update(h.tuning.Scheduler.MinPacing / 2)
	assert.NotZero(t, h.ecs.LiveEnemies())
}

func TestWaveSystem_LastWaveSpawnsBoss(t *testing.T) {
	h := newHarness(t, &fixedRandom{f: 0.9})
	h.waves.Start()
	waves, err := defs.PhaseWaves(1)
	require.NoError(t, err)
	h.ecs.Progress.Countdown = 0
	h.ecs.Progress.Wave = len(waves) - 1

	h.waves.Update(0.01)
	h.ecs.Flush()

	require.Len(t, h.ecs.Bosses, 1)
	assert.True(t, h.ecs.Progress.BossAlive)

	h.ecs.Bosses[0].Removed = true
	h.ecs.Prune()
	h.waves.Update(10)
	assert.Zero(t, h.ecs.LiveEnemies(), "no waves after the boss until it is defeated")
}

func TestWaveSystem_BossDefeatAdvancesPhase(t *testing.T) {
	h := newHarness(t, &fixedRandom{f: 0.9})
	var clamped []int
	h.waves.OnPhase(func(m int) { clamped = append(clamped, m) })
	h.waves.Start()
	h.ecs.Progress.Wave = 5

	for i := 0; i < 3; i++ {
		h.dispatcher.Emit(event.BossDefeated, event.BossDefeatedData{})
	}

	p := h.ecs.Progress
	assert.Equal(t, 4, p.Phase)
	assert.Zero(t, p.Wave)
	assert.Equal(t, 2, p.Multiplicand)
	assert.Equal(t, h.tuning.Scheduler.LevelCountdown, p.Countdown)
	assert.Equal(t, []int{1, 1, 2}, clamped)
	assert.Equal(t, 3, h.events.count(event.PhaseAdvanced))
}
