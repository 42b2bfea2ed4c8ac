// internal/state/env.go
package state

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/ui"

	"github.com/rs/zerolog"
)

// Env — общие для всех экранов зависимости.
type Env struct {
	Context interfaces.GameContext
	Fonts   *ui.Fonts
	Tuning  *config.Tuning
	Logger  zerolog.Logger
}
