// cmd/game/main.go
package main

import (
	"flag"
	"os"
	"time"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/leaderboard"
	"go-space-shooter/internal/state"
	"go-space-shooter/internal/ui"
	"go-space-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// session собирает новую партию из общих, уже проверенных данных.
type session struct {
	tuning      *config.Tuning
	library     *defs.Library
	catalog     *assets.Catalog
	board       *leaderboard.Board
	seed        int64
	defaultName string
	logger      zerolog.Logger
}

func (s *session) NewGame() interfaces.Game {
	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.logger.Info().Int64("seed", seed).Msg("new game")
	return app.NewGame(s.tuning, s.library, s.catalog, utils.NewPRNGService(seed), s.logger)
}

func (s *session) Leaderboard() interfaces.Leaderboard { return s.board }
func (s *session) DefaultName() string                 { return s.defaultName }

func main() {
	configPath := flag.String("config", "", "Path to a tuning YAML file overriding the defaults")
	boardPath := flag.String("leaderboard", "leaderboard.txt", "Path to the leaderboard file")
	assetsDir := flag.String("assets", "", "Directory with PNG sprite overrides")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	name := flag.String("name", "", "Default player name for the leaderboard")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)

	tuning, err := config.Load(*configPath, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid tuning")
	}
	library, err := defs.Load(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid definitions")
	}
	catalog, err := assets.NewCatalog(*assetsDir, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load assets")
	}
	if err := catalog.Validate(assets.AllAssets()); err != nil {
		logger.Fatal().Err(err).Msg("missing assets")
	}
	fonts, err := ui.LoadFonts(config.HUDFontSize)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load fonts")
	}

	env := &state.Env{
		Context: &session{
			tuning:      tuning,
			library:     library,
			catalog:     catalog,
			board:       leaderboard.Open(*boardPath, logger),
			seed:        *seed,
			defaultName: *name,
			logger:      logger,
		},
		Fonts:  fonts,
		Tuning: tuning,
		Logger: logger,
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame {
		sm.SetState(state.NewGameState(sm, env))
	} else {
		sm.SetState(state.NewMenuState(sm, env))
	}
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Space Shooter")
	if err := ebiten.RunGame(appGame); err != nil {
		logger.Fatal().Err(err).Msg("game loop failed")
	}
}
