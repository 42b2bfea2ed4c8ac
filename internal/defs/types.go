// internal/defs/types.go
package defs

import "fmt"

// FirePattern — имя сценария стрельбы босса.
type FirePattern string

const (
	PatternNone        FirePattern = ""
	PatternAll         FirePattern = "all"
	PatternCyclone     FirePattern = "cyclone"
	PatternKnightRider FirePattern = "knight_rider"
	PatternLaola       FirePattern = "laola"
	PatternRandom      FirePattern = "random"
	PatternRocket      FirePattern = "rocket"
	PatternSpray       FirePattern = "spray"
)

// AllPatterns lists every pattern a boss may be configured with.
var AllPatterns = []FirePattern{
	PatternAll, PatternCyclone, PatternKnightRider, PatternLaola,
	PatternRandom, PatternRocket, PatternSpray,
}

// Valid reports whether p is a known, non-empty pattern.
func (p FirePattern) Valid() bool {
	for _, known := range AllPatterns {
		if p == known {
			return true
		}
	}
	return false
}

// WeaponID — текущее оружие корабля игрока.
type WeaponID int

const (
	WeaponParallel WeaponID = iota
	WeaponRocket
	WeaponSpray
)

func (w WeaponID) String() string {
	switch w {
	case WeaponParallel:
		return "parallel"
	case WeaponRocket:
		return "rocket"
	case WeaponSpray:
		return "spray"
	}
	return fmt.Sprintf("weapon(%d)", int(w))
}

// RocketClass reports whether the weapon uses rocket damage and fire-rate bounds.
func (w WeaponID) RocketClass() bool {
	return w == WeaponRocket
}

// ProjectileKind — визуальный и баллистический подтип снаряда.
type ProjectileKind int

const (
	KindLaser ProjectileKind = iota
	KindRocket
	KindSprayBeam
)

// EnemyWeapon — чем стреляет обычный вражеский корабль.
type EnemyWeapon string

const (
	EnemyWeaponLaser       EnemyWeapon = "laser"
	EnemyWeaponDoubleLaser EnemyWeapon = "double_laser"
	EnemyWeaponRocket      EnemyWeapon = "rocket"
)

// UpgradeEffect — эффект бонуса. Значения совпадают с индексом иконки.
type UpgradeEffect int

const (
	UpgradeDrone UpgradeEffect = iota
	UpgradeLife
	UpgradeDamageDown
	UpgradeDamageUp
	UpgradeFireRateDown
	UpgradeFireRateUp
	UpgradeMaxHealth
	UpgradeHeal
	UpgradeParallel
	UpgradeRocket
	UpgradeSpray

	UpgradeEffectCount = 11
	// UpgradeBackgroundCount is the number of cosmetic upgrade backgrounds.
	UpgradeBackgroundCount = 7
)

var upgradeNames = [UpgradeEffectCount]string{
	"drone", "life", "damage-down", "damage-up", "fire-rate-down", "fire-rate-up",
	"max-health", "heal", "parallel", "rocket", "spray",
}

func (u UpgradeEffect) String() string {
	if u < 0 || int(u) >= UpgradeEffectCount {
		return fmt.Sprintf("upgrade(%d)", int(u))
	}
	return upgradeNames[u]
}

// Point — смещение относительно левого верхнего угла спрайта.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
