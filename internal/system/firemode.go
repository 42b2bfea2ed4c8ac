// internal/system/firemode.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/utils"
)

// patternInterval — пауза между шагами паттерна, в секундах.
var patternInterval = map[defs.FirePattern]float64{
	defs.PatternAll:         1.0,
	defs.PatternCyclone:     0.1,
	defs.PatternKnightRider: 0.1,
	defs.PatternLaola:       0.1,
	defs.PatternRandom:      0.5,
	defs.PatternRocket:      1.0,
	defs.PatternSpray:       0.5,
}

// updateFire runs the fire-mode cycle: wait out the hold, pick a pattern,
// step it on its interval and stop once the threshold is reached.
func (s *BossSystem) updateFire(b *component.Boss, deltaTime float64) {
	f := &b.Fire
	if !f.Shooting() {
		f.Hold -= deltaTime
		if f.Hold <= 0 {
			s.selectPattern(b)
		}
		return
	}

	f.Timer += deltaTime
	if f.Timer < patternInterval[f.Pattern] {
		return
	}
	f.Timer -= patternInterval[f.Pattern]
	s.stepPattern(b)
	f.Shots++
	s.countDrop(b)
	if f.Shots >= f.Threshold {
		f.Stop(s.holdFire())
	}
}

func (s *BossSystem) selectPattern(b *component.Boss) {
	p := utils.ChooseWeighted(s.rng, b.Def.Patterns)
	b.Fire = component.FireMode{
		Pattern:   p,
		Threshold: max(b.Def.Threshold(p), 1),
		Shifter:   1,
	}
	s.logger.Debug().Str("boss", b.Def.ID).Str("pattern", string(p)).Msg("fire mode selected")
}

// stepPattern fires one step of the active pattern.
func (s *BossSystem) stepPattern(b *component.Boss) {
	f := &b.Fire
	lasers := b.Def.LaserMuzzles
	n := len(lasers)

	switch f.Pattern {
	case defs.PatternAll:
		for i := range lasers {
			s.fireLaser(b, i)
		}
	case defs.PatternCyclone:
		s.fireLaser(b, f.Cursor)
		s.fireLaser(b, n-1-f.Cursor)
		f.Cursor, f.Shifter = ReflectCursor(f.Cursor, f.Shifter, n/2)
	case defs.PatternKnightRider:
		s.fireLaser(b, f.Cursor)
		f.Cursor, f.Shifter = ReflectCursor(f.Cursor, f.Shifter, n)
	case defs.PatternLaola:
		s.fireLaser(b, f.Cursor)
		f.Cursor = WrapCursor(f.Cursor, n)
	case defs.PatternRandom:
		if n > 0 {
			s.fireLaser(b, s.rng.Intn(n))
		}
	case defs.PatternRocket:
		for _, m := range b.Def.RocketMuzzles {
			s.spawner.NewProjectile(component.SideEnemy, defs.KindRocket,
				s.tuning.Enemy.RocketDamage*b.Multiplicand, muzzle(b, m))
		}
	case defs.PatternSpray:
		origin := muzzle(b, b.Def.SprayMuzzle)
		for _, angle := range b.Def.SprayAngles {
			s.spawner.NewAngledProjectile(component.SideEnemy, defs.KindSprayBeam,
				s.tuning.Enemy.LaserDamage*b.Multiplicand, origin, angle)
		}
	}
}

func (s *BossSystem) fireLaser(b *component.Boss, i int) {
	lasers := b.Def.LaserMuzzles
	if i < 0 || i >= len(lasers) {
		return
	}
	s.spawner.NewProjectile(component.SideEnemy, defs.KindLaser,
		s.tuning.Enemy.LaserDamage*b.Multiplicand, muzzle(b, lasers[i]))
}

func muzzle(b *component.Boss, m defs.Point) component.Vector {
	return b.Position.Add(component.Vector{X: m.X, Y: m.Y})
}

// countDrop spawns an upgrade every ceil(base/multiplicand) pattern steps,
// unless the live-upgrade cap is reached.
func (s *BossSystem) countDrop(b *component.Boss) {
	b.DropCounter++
	every := utils.CeilDiv(s.tuning.Boss.DropEvery, b.Multiplicand)
	if b.DropCounter >= every {
		b.DropCounter = 0
		s.spawner.TryUpgrade(b.Center())
	}
}

// ReflectCursor advances a sweeping cursor over [0, upper). Reaching upper
// sets the cursor to upper-1 and the shifter to -1; reaching -1 sets it to 0
// and the shifter to +1. With upper=5 the fired sequence is
// 0 1 2 3 4 4 3 2 1 0 0 1 ...
func ReflectCursor(cursor, shifter, upper int) (int, int) {
	if upper <= 0 {
		return 0, 1
	}
	cursor += shifter
	if cursor >= upper {
		return upper - 1, -1
	}
	if cursor < 0 {
		return 0, 1
	}
	return cursor, shifter
}

// WrapCursor advances a cursor over [0, n), wrapping n back to 0.
func WrapCursor(cursor, n int) int {
	if n <= 0 {
		return 0
	}
	return (cursor + 1) % n
}
