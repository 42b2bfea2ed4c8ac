// internal/component/enemy.go
package component

import (
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/defs"
)

// Enemy — обычный вражеский корабль одного из трёх уровней.
type Enemy struct {
	Actor
	Def          *defs.EnemyDefinition
	Tier         int
	Multiplicand int
	Speed        float64
	FireTimer    float64
	Anim         *assets.Animation
}
