// internal/defs/waves.go
package defs

import "fmt"

// SpawnKind — обычный корабль или босс.
type SpawnKind int

const (
	SpawnShip SpawnKind = iota
	SpawnBoss
)

// SpawnEntry is one slot of a wave layout.
type SpawnEntry struct {
	Kind     SpawnKind
	ID       string // ключ из enemies.json или bosses.json
	Strength int    // только для боссов
}

// WaveDefinition описывает одну волну: врагов слева направо.
type WaveDefinition struct {
	Entries []SpawnEntry
}

func ship(id string) SpawnEntry { return SpawnEntry{Kind: SpawnShip, ID: id} }

func boss(id string, strength int) SpawnEntry {
	return SpawnEntry{Kind: SpawnBoss, ID: id, Strength: strength}
}

func wave(entries ...SpawnEntry) WaveDefinition { return WaveDefinition{Entries: entries} }

var (
	s1 = ship("SHIP_1")
	s2 = ship("SHIP_2")
	s3 = ship("SHIP_3")
)

// PhasePatterns определяет волны каждой фазы. Последняя волна фазы всегда
// содержит босса. Ключ карты - номер фазы.
var PhasePatterns = map[int][]WaveDefinition{
	1: {
		wave(s1, s1, s1),
		wave(s1, s1, s1, s1),
		wave(s1, s2, s1),
		wave(s1, s1, s2, s1, s1),
		wave(boss("BOSS_1", 1)),
	},
	2: {
		wave(s1, s2, s2, s1),
		wave(s2, s1, s2),
		wave(s1, s1, s3, s1, s1),
		wave(s2, s2, s2, s2),
		wave(s1, s3, s3, s1),
		wave(boss("BOSS_2", 1)),
	},
	3: {
		wave(s2, s3, s2),
		wave(s1, s2, s3, s2, s1),
		wave(s3, s3, s3),
		wave(s2, s2, s3, s3, s2, s2),
		wave(s1, s1, s1, s1, s1, s1, s1),
		wave(boss("BOSS_3", 1)),
	},
	4: {
		wave(s1, s2, s1, s2, s1),
		wave(s3, s2, s3),
		wave(s2, s3, s2, s3, s2),
		wave(s1, s3, s3, s3, s1),
		wave(boss("BOSS_1", 2)),
	},
	5: {
		wave(s2, s2, s3, s2, s2),
		wave(s3, s1, s3, s1, s3),
		wave(s3, s3, s3, s3),
		wave(s2, s3, s2, s3, s2, s3),
		wave(s1, s2, s3, s3, s2, s1),
		wave(boss("BOSS_2", 2)),
	},
	6: {
		wave(s3, s3, s3, s3, s3),
		wave(s2, s3, s2, s3, s2, s3, s2),
		wave(s3, s2, s3, s2, s3, s2),
		wave(s3, s3, s3, s3, s3, s3),
		wave(s1, s2, s3, s1, s2, s3),
		wave(boss("BOSS_3", 2)),
	},
}

// LastAuthoredPhase is the highest key of PhasePatterns.
const LastAuthoredPhase = 6

// repeatSpan — сколько последних фаз повторяется после конца таблицы.
const repeatSpan = 3

// ResolvePhase maps any phase number onto an authored one: after the table
// ends, the last three phases repeat.
func ResolvePhase(phase int) int {
	if phase <= LastAuthoredPhase {
		return phase
	}
	first := LastAuthoredPhase - repeatSpan + 1
	return ((phase - LastAuthoredPhase - 1) % repeatSpan) + first
}

// PhaseWaves возвращает волны фазы с учётом повторения.
func PhaseWaves(phase int) ([]WaveDefinition, error) {
	if phase < 1 {
		return nil, fmt.Errorf("phase %d: %w", phase, ErrInvalidWave)
	}
	waves, ok := PhasePatterns[ResolvePhase(phase)]
	if !ok || len(waves) == 0 {
		return nil, fmt.Errorf("phase %d: %w", phase, ErrInvalidWave)
	}
	return waves, nil
}
