// internal/interfaces/game.go
package interfaces

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/entity"
)

// Game — то, что экраны используют от запущенной партии.
type Game interface {
	Update(deltaTime float64, intent component.MovementIntent)
	Snapshot() component.HUDSnapshot
	Over() bool
	World() *entity.World
	HandlePauseClick()
	IsPaused() bool
}
