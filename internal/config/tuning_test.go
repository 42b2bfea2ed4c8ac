package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	tn := Default()

	require.NoError(t, tn.Validate())
	assert.Equal(t, 3, tn.Player.Lives)
	assert.Equal(t, 5, tn.Player.Laser.DamageMin)
	assert.Equal(t, 20, tn.Player.Laser.DamageMax)
	assert.Equal(t, 100, tn.Player.Rocket.DamageMax)
	assert.Equal(t, 0.05, tn.Player.Laser.FireRateMin)
	assert.Equal(t, 2.0, tn.Player.Rocket.FireRateMax)
	assert.Equal(t, 250.0, tn.Projectile.PlayerSpeed)
	assert.Equal(t, 150.0, tn.Projectile.EnemySpeed)
	assert.Equal(t, 0.2, tn.Enemy.FireChance)
	assert.Equal(t, 3, tn.Upgrade.MaxLive)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	tn, err := Load("", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, Default(), tn)
}

func TestLoad_OverlaysUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  lives: 5\nenemy:\n  fire_chance: 0.5\n"), 0o644))

	tn, err := Load(path, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 5, tn.Player.Lives)
	assert.Equal(t, 0.5, tn.Enemy.FireChance)
	assert.Equal(t, 100, tn.Player.MaxHealth, "untouched keys keep defaults")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  fire_chance: 1.5\nprojectile:\n  enemy_speed: 0\n"), 0o644))

	_, err := Load(path, zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fire_chance")
	assert.Contains(t, err.Error(), "enemy_speed")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), zerolog.Nop())
	require.Error(t, err)
}
