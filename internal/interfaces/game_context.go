// internal/interfaces/game_context.go
package interfaces

import "go-space-shooter/internal/leaderboard"

// Leaderboard — таблица рекордов, в которую пишет экран конца игры.
type Leaderboard interface {
	Qualifies(score int) bool
	Submit(name string, score int) (int, error)
	Entries() []leaderboard.Entry
}

// GameContext собирает всё, что нужно экранам между партиями.
type GameContext interface {
	NewGame() Game
	Leaderboard() Leaderboard
	DefaultName() string
}
