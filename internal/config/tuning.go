// internal/config/tuning.go
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuning []byte

// WeaponTuning describes one player weapon class.
// Damage bounds are multiplied by the difficulty multiplicand.
type WeaponTuning struct {
	Damage       int     `yaml:"damage"`
	DamageStep   int     `yaml:"damage_step"`
	DamageMin    int     `yaml:"damage_min"`
	DamageMax    int     `yaml:"damage_max"`
	FireRate     float64 `yaml:"fire_rate"` // секунды между выстрелами
	FireRateStep float64 `yaml:"fire_rate_step"`
	FireRateMin  float64 `yaml:"fire_rate_min"`
	FireRateMax  float64 `yaml:"fire_rate_max"`
}

type SprayTuning struct {
	BeamsBase int     `yaml:"beams_base"`
	BeamsStep int     `yaml:"beams_step"`
	BeamsMax  int     `yaml:"beams_max"`
	SpreadDeg float64 `yaml:"spread_deg"`
}

type PlayerTuning struct {
	Lives         int          `yaml:"lives"`
	MaxHealth     int          `yaml:"max_health"`
	MaxHealthStep int          `yaml:"max_health_step"`
	HealAmount    int          `yaml:"heal_amount"`
	Speed         float64      `yaml:"speed"`
	Laser         WeaponTuning `yaml:"laser"`
	Rocket        WeaponTuning `yaml:"rocket"`
	Spray         SprayTuning  `yaml:"spray"`
}

type DroneTuning struct {
	MaxHealth   int     `yaml:"max_health"`
	Damage      int     `yaml:"damage"`
	FireRate    float64 `yaml:"fire_rate"`
	FireRateMin float64 `yaml:"fire_rate_min"`
}

type ProjectileTuning struct {
	PlayerSpeed       float64 `yaml:"player_speed"`
	EnemySpeed        float64 `yaml:"enemy_speed"`
	PlayerRocketSpeed float64 `yaml:"player_rocket_speed"`
	EnemyRocketSpeed  float64 `yaml:"enemy_rocket_speed"`
}

type EnemyTuning struct {
	FireChance     float64 `yaml:"fire_chance"`
	LaserDamage    int     `yaml:"laser_damage"`
	RocketDamage   int     `yaml:"rocket_damage"`
	ContactCeiling int     `yaml:"contact_ceiling"`
	ContactDamage  int     `yaml:"contact_damage"`
	KillScore      int     `yaml:"kill_score"`
	HitScore       int     `yaml:"hit_score"`
}

type UpgradeTuning struct {
	FallSpeed   float64 `yaml:"fall_speed"`
	PickupScore int     `yaml:"pickup_score"`
	MaxLive     int     `yaml:"max_live"`
}

type SchedulerTuning struct {
	MinPacing      float64 `yaml:"min_pacing"`
	LevelCountdown float64 `yaml:"level_countdown"`
}

type BossTuning struct {
	ScoreBase         int     `yaml:"score_base"`
	DropEvery         int     `yaml:"drop_every"`
	BurstCount        int     `yaml:"burst_count"`
	BurstIntervalMin  float64 `yaml:"burst_interval_min"`
	BurstIntervalMax  float64 `yaml:"burst_interval_max"`
	MaxSampleAttempts int     `yaml:"max_sample_attempts"`
	EntrySpeed        float64 `yaml:"entry_speed"`
	EntryDeceleration float64 `yaml:"entry_deceleration"`
	EntryMinSpeed     float64 `yaml:"entry_min_speed"`
	HoverY            float64 `yaml:"hover_y"`
	LateralSpeed      float64 `yaml:"lateral_speed"`
	MoveHoldMin       float64 `yaml:"move_hold_min"`
	MoveHoldMax       float64 `yaml:"move_hold_max"`
	HoldFireMin       float64 `yaml:"hold_fire_min"`
	HoldFireMax       float64 `yaml:"hold_fire_max"`
}

type EffectTuning struct {
	ExplosionDrift float64 `yaml:"explosion_drift"`
	FlashDuration  float64 `yaml:"flash_duration"`
}

// Tuning — все настраиваемые параметры геймплея.
type Tuning struct {
	Player     PlayerTuning     `yaml:"player"`
	Drone      DroneTuning      `yaml:"drone"`
	Projectile ProjectileTuning `yaml:"projectile"`
	Enemy      EnemyTuning      `yaml:"enemy"`
	Upgrade    UpgradeTuning    `yaml:"upgrade"`
	Scheduler  SchedulerTuning  `yaml:"scheduler"`
	Boss       BossTuning       `yaml:"boss"`
	Effect     EffectTuning     `yaml:"effect"`
}

// Default returns the embedded tuning.
func Default() *Tuning {
	t := &Tuning{}
	if err := yaml.Unmarshal(defaultTuning, t); err != nil {
		panic(fmt.Sprintf("embedded tuning.yaml is invalid: %v", err))
	}
	return t
}

// Load reads the embedded defaults and overlays the file at path, if any.
// An empty path returns the defaults.
func Load(path string, logger zerolog.Logger) (*Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tuning file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning file %s: %w", path, err)
	}
	logger.Info().Str("path", path).Msg("tuning loaded")
	return t, nil
}

// Validate rejects values that would stall or break the simulation.
func (t *Tuning) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("player.lives", float64(t.Player.Lives))
	positive("player.max_health", float64(t.Player.MaxHealth))
	positive("player.speed", t.Player.Speed)
	positive("player.laser.fire_rate_min", t.Player.Laser.FireRateMin)
	positive("player.rocket.fire_rate_min", t.Player.Rocket.FireRateMin)
	positive("drone.fire_rate_min", t.Drone.FireRateMin)
	positive("projectile.player_speed", t.Projectile.PlayerSpeed)
	positive("projectile.enemy_speed", t.Projectile.EnemySpeed)
	positive("projectile.player_rocket_speed", t.Projectile.PlayerRocketSpeed)
	positive("projectile.enemy_rocket_speed", t.Projectile.EnemyRocketSpeed)
	positive("upgrade.fall_speed", t.Upgrade.FallSpeed)
	positive("upgrade.max_live", float64(t.Upgrade.MaxLive))
	positive("boss.drop_every", float64(t.Boss.DropEvery))
	positive("boss.burst_count", float64(t.Boss.BurstCount))
	positive("boss.burst_interval_max", t.Boss.BurstIntervalMax)
	positive("boss.max_sample_attempts", float64(t.Boss.MaxSampleAttempts))
	positive("boss.entry_min_speed", t.Boss.EntryMinSpeed)
	if t.Player.Laser.DamageMin > t.Player.Laser.DamageMax {
		errs = append(errs, errors.New("player.laser damage_min exceeds damage_max"))
	}
	if t.Player.Rocket.DamageMin > t.Player.Rocket.DamageMax {
		errs = append(errs, errors.New("player.rocket damage_min exceeds damage_max"))
	}
	if t.Enemy.FireChance < 0 || t.Enemy.FireChance > 1 {
		errs = append(errs, fmt.Errorf("enemy.fire_chance must be in [0,1], got %v", t.Enemy.FireChance))
	}
	if t.Boss.BurstIntervalMin > t.Boss.BurstIntervalMax {
		errs = append(errs, errors.New("boss.burst_interval_min exceeds burst_interval_max"))
	}
	return errors.Join(errs...)
}
