// internal/state/gameover_state.go
package state

import (
	"fmt"
	"unicode/utf8"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const maxNameLength = 16

// GameOverState — экран конца игры: ввод имени, если счёт попал в таблицу.
type GameOverState struct {
	sm        *StateMachine
	env       *Env
	score     int
	qualifies bool
	name      []rune
	submitted bool
	rank      int
	chars     []rune
}

func NewGameOverState(sm *StateMachine, env *Env, score int) *GameOverState {
	return &GameOverState{
		sm:        sm,
		env:       env,
		score:     score,
		qualifies: env.Context.Leaderboard().Qualifies(score),
		name:      []rune(env.Context.DefaultName()),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if !s.qualifies || s.submitted {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			s.sm.SetState(NewMenuState(s.sm, s.env))
		}
		return
	}

	s.chars = ebiten.AppendInputChars(s.chars[:0])
	for _, r := range s.chars {
		if len(s.name) < maxNameLength && r != '\n' && utf8.ValidRune(r) {
			s.name = append(s.name, r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(s.name) > 0 {
		s.name = s.name[:len(s.name)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.submit()
	}
}

func (s *GameOverState) submit() {
	rank, err := s.env.Context.Leaderboard().Submit(string(s.name), s.score)
	if err != nil {
		s.env.Logger.Error().Err(err).Msg("failed to save leaderboard")
	}
	s.rank = rank
	s.submitted = true
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	fonts := s.env.Fonts
	ui.DrawCentered(screen, "GAME OVER", fonts.Title, 120, config.BossPhaseColor)
	ui.DrawCentered(screen, fmt.Sprintf("Score: %d", s.score), fonts.Regular, 200, config.TextLightColor)

	switch {
	case s.qualifies && !s.submitted:
		ui.DrawCentered(screen, "New high score! Enter your name:", fonts.Regular, 260, config.TextLightColor)
		ui.DrawCentered(screen, string(s.name)+"_", fonts.Regular, 300, config.ButtonTopColor)
	default:
		ui.DrawCentered(screen, "Press Enter to continue", fonts.Regular, 260, config.TextLightColor)
	}
	ui.DrawLeaderboard(screen, fonts, s.env.Context.Leaderboard().Entries(), 360, s.rank)
}

func (s *GameOverState) Exit() {}
