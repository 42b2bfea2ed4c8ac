// internal/state/menu_state.go
package state

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — главное меню с таблицей рекордов.
type MenuState struct {
	sm    *StateMachine
	env   *Env
	start *ui.Button
}

func NewMenuState(sm *StateMachine, env *Env) *MenuState {
	return &MenuState{
		sm:    sm,
		env:   env,
		start: ui.NewButton(config.ScreenWidth/2, config.ScreenHeight/3, "Start", env.Fonts.Regular),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if m.start.Update() || inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.env))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "SPACE SHOOTER", m.env.Fonts.Title, config.ScreenHeight/3-120, config.TextLightColor)
	m.start.Draw(screen)
	ui.DrawLeaderboard(screen, m.env.Fonts, m.env.Context.Leaderboard().Entries(), config.ScreenHeight/3+80, 0)
}

func (m *MenuState) Exit() {}
