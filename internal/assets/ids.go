// internal/assets/ids.go
package assets

import "fmt"

// AssetID — идентификатор анимации. Строковые имена нужны только при загрузке.
type AssetID int

const (
	ShipIdle AssetID = iota
	ShipCurve
	DroneIdle
	DroneCurve
	EnemyShip1
	EnemyShip2
	EnemyShip3
	Boss1Idle
	Boss1Open
	Boss2Idle
	Boss2Open
	Boss3Idle
	Boss3Open
	PlayerLaser
	EnemyLaser
	PlayerRocket
	EnemyRocket
	SprayBeam
	UpgradeBackground
	UpgradeIcon
	Explosion
	HitSpark
	BossBurst

	assetCount
)

// layout describes how an asset is sized and played back.
type layout struct {
	name      string
	w, h      int
	frameTime float64
	loop      bool
}

var layouts = [assetCount]layout{
	ShipIdle:          {"ship/idle", 38, 50, 0.12, true},
	ShipCurve:         {"ship/curve", 38, 50, 0.12, true},
	DroneIdle:         {"drone/idle", 24, 30, 0.12, true},
	DroneCurve:        {"drone/curve", 24, 30, 0.12, true},
	EnemyShip1:        {"enemy/ship1", 38, 50, 0.15, true},
	EnemyShip2:        {"enemy/ship2", 44, 50, 0.15, true},
	EnemyShip3:        {"enemy/ship3", 50, 56, 0.15, true},
	Boss1Idle:         {"boss1/idle", 300, 160, 0.2, true},
	Boss1Open:         {"boss1/open", 300, 160, 0.15, false},
	Boss2Idle:         {"boss2/idle", 340, 170, 0.2, true},
	Boss2Open:         {"boss2/open", 340, 170, 0.15, false},
	Boss3Idle:         {"boss3/idle", 380, 180, 0.2, true},
	Boss3Open:         {"boss3/open", 380, 180, 0.15, false},
	PlayerLaser:       {"projectile/player_laser", 4, 16, 0, true},
	EnemyLaser:        {"projectile/enemy_laser", 4, 16, 0, true},
	PlayerRocket:      {"projectile/player_rocket", 8, 20, 0.1, true},
	EnemyRocket:       {"projectile/enemy_rocket", 8, 20, 0.1, true},
	SprayBeam:         {"projectile/spray", 6, 12, 0, true},
	UpgradeBackground: {"upgrade/background", 50, 50, 0, true},
	UpgradeIcon:       {"upgrade/image", 50, 50, 0, true},
	Explosion:         {"fx/explosion", 64, 64, 0.06, false},
	HitSpark:          {"fx/hit", 16, 16, 0.04, false},
	BossBurst:         {"fx/burst", 48, 48, 0.05, false},
}

func (id AssetID) String() string {
	if id < 0 || id >= assetCount {
		return fmt.Sprintf("asset(%d)", int(id))
	}
	return layouts[id].name
}

// Size returns the nominal sprite size of an asset.
func (id AssetID) Size() (int, int) {
	if id < 0 || id >= assetCount {
		return 0, 0
	}
	return layouts[id].w, layouts[id].h
}

// AllAssets lists every asset the game needs before the first frame.
func AllAssets() []AssetID {
	ids := make([]AssetID, 0, assetCount)
	for id := AssetID(0); id < assetCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// EnemyShipAsset maps an enemy tier (1..3) to its animation.
func EnemyShipAsset(tier int) AssetID {
	return EnemyShip1 + AssetID(min(max(tier, 1), 3)-1)
}

// BossAssets maps a boss archetype (1..3) to its idle and open animations.
func BossAssets(archetype int) (idle, open AssetID) {
	off := AssetID(min(max(archetype, 1), 3)-1) * 2
	return Boss1Idle + off, Boss1Open + off
}
