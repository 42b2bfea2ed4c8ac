// internal/system/upgrade.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/utils"

	"github.com/rs/zerolog"
)

// UpgradeSystem двигает падающие бонусы и применяет их эффекты.
type UpgradeSystem struct {
	ecs    *entity.World
	tuning *config.Tuning
	logger zerolog.Logger
}

func NewUpgradeSystem(ecs *entity.World, tuning *config.Tuning, logger zerolog.Logger) *UpgradeSystem {
	return &UpgradeSystem{ecs: ecs, tuning: tuning, logger: logger}
}

func (s *UpgradeSystem) Update(deltaTime float64) {
	for _, u := range s.ecs.Upgrades {
		if u.Removed {
			continue
		}
		u.Position.Y += s.tuning.Upgrade.FallSpeed * deltaTime
		if u.Position.Y > config.FieldHeight {
			u.Removed = true
		}
	}
}

// Apply applies one upgrade effect to the player.
func (s *UpgradeSystem) Apply(effect defs.UpgradeEffect) {
	p := s.ecs.Player
	ship := s.ecs.Ship
	t := s.tuning.Player
	mult := s.ecs.Progress.Multiplicand

	switch effect {
	case defs.UpgradeDrone:
		// слот займёт PlayerSystem, как только он освободится
		p.PendingDrones++
	case defs.UpgradeLife:
		p.Lives++
	case defs.UpgradeDamageDown:
		p.Stats().Damage -= s.weaponTuning(p.Weapon).DamageStep
	case defs.UpgradeDamageUp:
		p.Stats().Damage += s.weaponTuning(p.Weapon).DamageStep
	case defs.UpgradeFireRateDown:
		p.Stats().FireRate += s.weaponTuning(p.Weapon).FireRateStep
	case defs.UpgradeFireRateUp:
		p.Stats().FireRate -= s.weaponTuning(p.Weapon).FireRateStep
	case defs.UpgradeMaxHealth:
		if ship != nil {
			ship.MaxHealth += t.MaxHealthStep
			ship.Heal(t.MaxHealthStep)
		}
	case defs.UpgradeHeal:
		if ship != nil {
			ship.Heal(t.HealAmount)
		}
	case defs.UpgradeParallel:
		s.switchWeapon(defs.WeaponParallel)
	case defs.UpgradeRocket:
		s.switchWeapon(defs.WeaponRocket)
	case defs.UpgradeSpray:
		s.switchWeapon(defs.WeaponSpray)
	}
	ClampWeapons(p, s.tuning, mult)

	s.logger.Debug().Str("effect", effect.String()).Msg("upgrade applied")
}

func (s *UpgradeSystem) weaponTuning(w defs.WeaponID) config.WeaponTuning {
	if w.RocketClass() {
		return s.tuning.Player.Rocket
	}
	return s.tuning.Player.Laser
}

// switchWeapon changes the weapon mode. A real switch resets the spray beam
// count; picking spray again while in spray widens the fan instead.
func (s *UpgradeSystem) switchWeapon(w defs.WeaponID) {
	p := s.ecs.Player
	spray := s.tuning.Player.Spray
	if p.Weapon == w {
		if w == defs.WeaponSpray {
			p.SprayBeams = min(p.SprayBeams+spray.BeamsStep, spray.BeamsMax)
		}
		return
	}
	p.Weapon = w
	p.SprayBeams = spray.BeamsBase
}

// ClampWeapons keeps both weapon classes inside their bounds. Damage bounds
// scale with the multiplicand, fire-rate bounds do not.
func ClampWeapons(p *component.PlayerState, t *config.Tuning, multiplicand int) {
	clampStats(&p.Laser, t.Player.Laser, multiplicand)
	clampStats(&p.Rocket, t.Player.Rocket, multiplicand)
}

func clampStats(st *component.WeaponStats, wt config.WeaponTuning, multiplicand int) {
	st.Damage = utils.Clamp(st.Damage, wt.DamageMin*multiplicand, wt.DamageMax*multiplicand)
	st.FireRate = utils.Clamp(st.FireRate, wt.FireRateMin, wt.FireRateMax)
}
