// internal/component/boss.go
package component

import (
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/defs"
)

// BossState — фаза поведения босса.
type BossState int

const (
	BossEntryFlight BossState = iota
	BossPositioning
	BossCombat
	BossDying
)

func (s BossState) String() string {
	switch s {
	case BossEntryFlight:
		return "entry-flight"
	case BossPositioning:
		return "positioning"
	case BossCombat:
		return "combat"
	case BossDying:
		return "dying"
	}
	return "unknown"
}

// BossMove — боковое движение в бою.
type BossMove int

const (
	MoveIdle BossMove = iota
	MoveLeft
	MoveRight
)

// FireMode is the weapon-pattern state of a boss. An empty Pattern means the
// boss is waiting out Hold before picking the next pattern.
type FireMode struct {
	Pattern   defs.FirePattern
	Timer     float64
	Shots     int
	Threshold int
	Cursor    int
	Shifter   int
	Hold      float64
}

// Shooting reports whether a pattern is active.
func (f *FireMode) Shooting() bool { return f.Pattern != defs.PatternNone }

// Stop ends the active pattern and starts a new hold-fire wait.
func (f *FireMode) Stop(hold float64) {
	*f = FireMode{Hold: hold}
}

// DeathSequence — счётчики взрывов при гибели босса.
type DeathSequence struct {
	Timer  float64
	Next   float64
	Bursts int
	Warned bool // о пустой маске уже предупредили
}

// Boss — многофазный противник с таблицей стволов.
type Boss struct {
	Actor
	Def          *defs.BossDefinition
	Strength     int
	Multiplicand int
	State        BossState
	EntrySpeed   float64
	Move         BossMove
	MoveTimer    float64
	Fire         FireMode
	DropCounter  int
	Death        DeathSequence
	Anim         *assets.Animation
	OpenAnim     *assets.Animation
}
