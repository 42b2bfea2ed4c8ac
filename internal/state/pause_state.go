// internal/state/pause_state.go
package state

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	env           *Env
}

func NewPauseState(sm *StateMachine, prevState *GameState, env *Env) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		env:           env,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.previousState.hud.Pause.IsClicked(x, y) {
			unpause = true
		}
	}

	if unpause {
		// «Отжимаем» паузу в самой игре и возвращаемся без повторного Enter
		s.previousState.togglePause()
		s.stateMachine.Resume(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	ui.Dim(screen)
	ui.DrawCentered(screen, "PAUSED", s.env.Fonts.Title, config.ScreenHeight/2-20, config.TextLightColor)
}

func (s *PauseState) Exit() {}
