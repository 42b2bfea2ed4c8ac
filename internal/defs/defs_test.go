package defs

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedDefinitionsAreValid(t *testing.T) {
	lib, err := Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Len(t, lib.Enemies, 3)
	assert.Len(t, lib.Bosses, 3)

	b1, err := lib.Boss("BOSS_1")
	require.NoError(t, err)
	assert.Len(t, b1.LaserMuzzles, 10)
	assert.Equal(t, 10, b1.Threshold(PatternAll))
	assert.True(t, b1.Allows(PatternCyclone))
	assert.False(t, b1.Allows(PatternSpray))

	s2, err := lib.Enemy("SHIP_2")
	require.NoError(t, err)
	assert.Equal(t, EnemyWeaponDoubleLaser, s2.Weapon)
	assert.Len(t, s2.Muzzles, 2)
}

func TestLibrary_UnknownIDs(t *testing.T) {
	lib := &Library{Enemies: map[string]EnemyDefinition{}, Bosses: map[string]BossDefinition{}}

	_, err := lib.Enemy("SHIP_9")
	assert.True(t, errors.Is(err, ErrUnknownEnemy))

	_, err = lib.Boss("BOSS_9")
	assert.True(t, errors.Is(err, ErrUnknownBoss))
}

func TestValidate_ReportsMissingWaveReferences(t *testing.T) {
	lib, err := Load(zerolog.Nop())
	require.NoError(t, err)
	delete(lib.Enemies, "SHIP_3")

	err = lib.Validate()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEnemy))
}

func TestValidate_RejectsPatternWithoutThreshold(t *testing.T) {
	lib, err := Load(zerolog.Nop())
	require.NoError(t, err)
	b := lib.Bosses["BOSS_1"]
	b.Thresholds = map[FirePattern]int{}
	lib.Bosses["BOSS_1"] = b

	assert.Error(t, lib.Validate())
}

func TestLoadEnemyDefinitions_BadJSON(t *testing.T) {
	_, err := LoadEnemyDefinitions([]byte("{not json"))
	assert.Error(t, err)
}

func TestResolvePhase_RepeatsLastThree(t *testing.T) {
	cases := map[int]int{1: 1, 6: 6, 7: 4, 8: 5, 9: 6, 10: 4, 13: 4, 15: 6}
	for in, want := range cases {
		assert.Equal(t, want, ResolvePhase(in), "phase %d", in)
	}
}

func TestPhaseWaves(t *testing.T) {
	waves, err := PhaseWaves(1)
	require.NoError(t, err)
	last := waves[len(waves)-1]
	assert.Equal(t, SpawnBoss, last.Entries[0].Kind)

	_, err = PhaseWaves(0)
	assert.True(t, errors.Is(err, ErrInvalidWave))

	repeated, err := PhaseWaves(10)
	require.NoError(t, err)
	assert.Equal(t, PhasePatterns[4], repeated)
}

func TestFirePattern_Valid(t *testing.T) {
	assert.True(t, PatternLaola.Valid())
	assert.False(t, PatternNone.Valid())
	assert.False(t, FirePattern("spiral").Valid())
}

func TestUpgradeEffect_String(t *testing.T) {
	assert.Equal(t, "drone", UpgradeDrone.String())
	assert.Equal(t, "spray", UpgradeSpray.String())
	assert.Equal(t, "upgrade(11)", UpgradeEffect(11).String())
}
