// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

//go:embed data/*.json
var dataFS embed.FS

var (
	ErrUnknownEnemy = errors.New("unknown enemy definition")
	ErrUnknownBoss  = errors.New("unknown boss definition")
	ErrInvalidWave  = errors.New("invalid wave table entry")
)

// Library holds all entity definitions keyed by their ID.
type Library struct {
	Enemies map[string]EnemyDefinition
	Bosses  map[string]BossDefinition
}

// Load reads the embedded definition files and validates them against the
// wave tables.
func Load(logger zerolog.Logger) (*Library, error) {
	enemyData, err := dataFS.ReadFile("data/enemies.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	bossData, err := dataFS.ReadFile("data/bosses.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read boss definitions file: %w", err)
	}

	lib := &Library{}
	if lib.Enemies, err = LoadEnemyDefinitions(enemyData); err != nil {
		return nil, err
	}
	if lib.Bosses, err = LoadBossDefinitions(bossData); err != nil {
		return nil, err
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}

	logger.Info().
		Int("enemies", len(lib.Enemies)).
		Int("bosses", len(lib.Bosses)).
		Msg("definitions loaded")
	return lib, nil
}

// LoadEnemyDefinitions parses an enemies.json document.
func LoadEnemyDefinitions(data []byte) (map[string]EnemyDefinition, error) {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		library[def.ID] = def
	}
	return library, nil
}

// LoadBossDefinitions parses a bosses.json document.
func LoadBossDefinitions(data []byte) (map[string]BossDefinition, error) {
	var bossDefs []BossDefinition
	if err := json.Unmarshal(data, &bossDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal boss definitions: %w", err)
	}

	library := make(map[string]BossDefinition, len(bossDefs))
	for _, def := range bossDefs {
		library[def.ID] = def
	}
	return library, nil
}

// Enemy returns the definition for id.
func (l *Library) Enemy(id string) (*EnemyDefinition, error) {
	def, ok := l.Enemies[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownEnemy)
	}
	return &def, nil
}

// Boss returns the definition for id.
func (l *Library) Boss(id string) (*BossDefinition, error) {
	def, ok := l.Bosses[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownBoss)
	}
	return &def, nil
}

// Validate checks every definition and every wave table entry. Any problem
// here is a configuration error and the game must not start.
func (l *Library) Validate() error {
	var errs []error

	for id, def := range l.Enemies {
		if def.Tier < 1 || def.Tier > 3 {
			errs = append(errs, fmt.Errorf("enemy %s: tier %d out of range", id, def.Tier))
		}
		if def.Speed <= 0 || def.FireInterval <= 0 {
			errs = append(errs, fmt.Errorf("enemy %s: speed and fire_interval must be positive", id))
		}
		want := 1
		if def.Weapon == EnemyWeaponDoubleLaser {
			want = 2
		}
		if len(def.Muzzles) != want {
			errs = append(errs, fmt.Errorf("enemy %s: weapon %s needs %d muzzles, got %d", id, def.Weapon, want, len(def.Muzzles)))
		}
	}

	for id, def := range l.Bosses {
		if def.Archetype < 1 || def.BaseHealth <= 0 {
			errs = append(errs, fmt.Errorf("boss %s: archetype and base_health must be positive", id))
		}
		if len(def.Patterns) == 0 {
			errs = append(errs, fmt.Errorf("boss %s: no fire patterns", id))
		}
		for _, pw := range def.Patterns {
			if !pw.Pattern.Valid() {
				errs = append(errs, fmt.Errorf("boss %s: unknown pattern %q", id, pw.Pattern))
				continue
			}
			if def.Threshold(pw.Pattern) <= 0 {
				errs = append(errs, fmt.Errorf("boss %s: pattern %s has no threshold", id, pw.Pattern))
			}
			switch pw.Pattern {
			case PatternRocket:
				if len(def.RocketMuzzles) == 0 {
					errs = append(errs, fmt.Errorf("boss %s: rocket pattern without rocket muzzles", id))
				}
			case PatternSpray:
				if len(def.SprayAngles) == 0 {
					errs = append(errs, fmt.Errorf("boss %s: spray pattern without angles", id))
				}
			case PatternCyclone:
				if len(def.LaserMuzzles) < 2 {
					errs = append(errs, fmt.Errorf("boss %s: cyclone needs at least 2 laser muzzles", id))
				}
			default:
				if len(def.LaserMuzzles) == 0 {
					errs = append(errs, fmt.Errorf("boss %s: pattern %s without laser muzzles", id, pw.Pattern))
				}
			}
		}
	}

	for phase := 1; phase <= LastAuthoredPhase; phase++ {
		waves, err := PhaseWaves(phase)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for wi, w := range waves {
			if len(w.Entries) == 0 {
				errs = append(errs, fmt.Errorf("phase %d wave %d: empty: %w", phase, wi, ErrInvalidWave))
			}
			for _, e := range w.Entries {
				var err error
				switch e.Kind {
				case SpawnShip:
					_, err = l.Enemy(e.ID)
				case SpawnBoss:
					_, err = l.Boss(e.ID)
					if err == nil && e.Strength < 1 {
						err = fmt.Errorf("boss %s strength %d: %w", e.ID, e.Strength, ErrInvalidWave)
					}
				default:
					err = fmt.Errorf("spawn kind %d: %w", e.Kind, ErrInvalidWave)
				}
				if err != nil {
					errs = append(errs, fmt.Errorf("phase %d wave %d: %w", phase, wi, err))
				}
			}
		}
		if !endsWithBoss(waves) {
			errs = append(errs, fmt.Errorf("phase %d: last wave has no boss: %w", phase, ErrInvalidWave))
		}
	}

	return errors.Join(errs...)
}

func endsWithBoss(waves []WaveDefinition) bool {
	last := waves[len(waves)-1]
	for _, e := range last.Entries {
		if e.Kind == SpawnBoss {
			return true
		}
	}
	return false
}
