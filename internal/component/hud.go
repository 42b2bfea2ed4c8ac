// internal/component/hud.go
package component

import "go-space-shooter/internal/defs"

// HUDSnapshot — значения для отображения, обновляются каждый кадр.
type HUDSnapshot struct {
	Score        int
	Lives        int
	Health       int
	MaxHealth    int
	Weapon       defs.WeaponID
	Damage       int
	FireRate     float64
	SprayBeams   int
	Drones       int
	Phase        int
	Wave         int
	Multiplicand int
	Countdown    float64
	BossFight    bool
	GameOver     bool
}
