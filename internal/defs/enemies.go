// internal/defs/enemies.go
package defs

// EnemyDefinition describes one tier of regular enemy ship.
type EnemyDefinition struct {
	ID           string      `json:"id"`
	Tier         int         `json:"tier"`
	Speed        float64     `json:"speed"`
	FireInterval float64     `json:"fire_interval"`
	Weapon       EnemyWeapon `json:"weapon"`
	Muzzles      []Point     `json:"muzzles"`
}

// PatternWeight — вес выбора паттерна. Нулевой вес трактуется как 1.
type PatternWeight struct {
	Pattern FirePattern `json:"pattern"`
	Weight  int         `json:"weight"`
}

// BossDefinition describes a boss archetype. Muzzle tables are authored per
// sprite: laser muzzles left to right, rocket muzzles separately.
type BossDefinition struct {
	ID            string              `json:"id"`
	Archetype     int                 `json:"archetype"`
	BaseHealth    int                 `json:"base_health"`
	LaserMuzzles  []Point             `json:"laser_muzzles"`
	RocketMuzzles []Point             `json:"rocket_muzzles"`
	SprayMuzzle   Point               `json:"spray_muzzle"`
	SprayAngles   []float64           `json:"spray_angles"`
	Patterns      []PatternWeight     `json:"patterns"`
	Thresholds    map[FirePattern]int `json:"thresholds"`
}

// Threshold returns the shot-count limit of a pattern for this boss.
func (b *BossDefinition) Threshold(p FirePattern) int {
	return b.Thresholds[p]
}

// Allows reports whether the boss may select pattern p.
func (b *BossDefinition) Allows(p FirePattern) bool {
	for _, pw := range b.Patterns {
		if pw.Pattern == p {
			return true
		}
	}
	return false
}
