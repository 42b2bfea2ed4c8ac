// internal/state/game_state.go
package state

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/ui"
	"go-space-shooter/internal/utils"
	"go-space-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const starCount = 120

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	env      *Env
	game     interfaces.Game
	renderer *ui.WorldRenderer
	hud      *ui.HUD
}

func NewGameState(sm *StateMachine, env *Env) *GameState {
	stars := render.NewStarfield(starCount, config.FieldWidth, config.FieldHeight, utils.NewPRNGService(0))
	return &GameState{
		sm:       sm,
		env:      env,
		game:     env.Context.NewGame(),
		renderer: ui.NewWorldRenderer(stars),
		hud:      ui.NewHUD(env.Fonts, env.Tuning),
	}
}

func (g *GameState) Enter() {
	g.hud.Pause.SetPaused(false)
}

// readIntent polls the arrow keys and WASD.
func readIntent() component.MovementIntent {
	pressed := func(keys ...ebiten.Key) int {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return 1
			}
		}
		return 0
	}
	return component.MovementIntent{
		MoveX: [2]int{pressed(ebiten.KeyArrowLeft, ebiten.KeyA), pressed(ebiten.KeyArrowRight, ebiten.KeyD)},
		MoveY: [2]int{pressed(ebiten.KeyArrowUp, ebiten.KeyW), pressed(ebiten.KeyArrowDown, ebiten.KeyS)},
	}
}

func (g *GameState) Update(deltaTime float64) {
	pause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.hud.Pause.IsClicked(x, y) {
			pause = true
		}
	}
	if pause {
		g.togglePause()
		g.sm.SetState(NewPauseState(g.sm, g, g.env))
		return
	}

	g.game.Update(deltaTime, readIntent())
	g.renderer.Update(deltaTime)

	if g.game.Over() {
		g.sm.SetState(NewGameOverState(g.sm, g.env, g.game.Snapshot().Score))
	}
}

func (g *GameState) togglePause() {
	g.game.HandlePauseClick()
	g.hud.Pause.TogglePause()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.game.World())
	g.hud.Draw(screen, g.game.Snapshot())
}

func (g *GameState) Exit() {}
