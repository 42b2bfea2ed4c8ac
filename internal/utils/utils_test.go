package utils

import (
	"testing"

	"go-space-shooter/internal/defs"

	"github.com/stretchr/testify/assert"
)

// sequence is a deterministic Random for tests.
type sequence struct {
	ints   []int
	floats []float64
}

func (s *sequence) Intn(n int) int {
	v := s.ints[0] % n
	s.ints = s.ints[1:]
	return v
}

func (s *sequence) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestPRNGService_IsReproducible(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestChooseWeighted(t *testing.T) {
	entries := []defs.PatternWeight{
		{Pattern: defs.PatternAll, Weight: 1},
		{Pattern: defs.PatternCyclone, Weight: 2},
		{Pattern: defs.PatternSpray}, // вес 0 считается 1
	}
	r := &sequence{ints: []int{0, 1, 2, 3}}

	assert.Equal(t, defs.PatternAll, ChooseWeighted(r, entries))
	assert.Equal(t, defs.PatternCyclone, ChooseWeighted(r, entries))
	assert.Equal(t, defs.PatternCyclone, ChooseWeighted(r, entries))
	assert.Equal(t, defs.PatternSpray, ChooseWeighted(r, entries))

	assert.Equal(t, defs.PatternNone, ChooseWeighted(r, nil))
}

func TestChooseWeighted_UniformCoversAll(t *testing.T) {
	entries := make([]defs.PatternWeight, 0, len(defs.AllPatterns))
	for _, p := range defs.AllPatterns {
		entries = append(entries, defs.PatternWeight{Pattern: p})
	}
	seen := map[defs.FirePattern]bool{}
	r := NewPRNGService(7)
	for i := 0; i < 500; i++ {
		seen[ChooseWeighted(r, entries)] = true
	}
	assert.Len(t, seen, len(defs.AllPatterns))
}

func TestRange(t *testing.T) {
	r := &sequence{floats: []float64{0, 0.5}}
	assert.Equal(t, 1.0, Range(r, 1, 3))
	assert.Equal(t, 2.0, Range(r, 1, 3))
	assert.Equal(t, 5.0, Range(r, 5, 5))
}

func TestHeading(t *testing.T) {
	dx, dy := Heading(90)
	assert.InDelta(t, 0, dx, 1e-9)
	assert.InDelta(t, -1, dy, 1e-9, "90 degrees points up")

	dx, dy = Heading(270)
	assert.InDelta(t, 0, dx, 1e-9)
	assert.InDelta(t, 1, dy, 1e-9)

	dx, _ = Heading(0)
	assert.InDelta(t, 1, dx, 1e-9)
}

func TestMathHelpers(t *testing.T) {
	assert.Equal(t, 5, Clamp(3, 5, 20))
	assert.Equal(t, 20, Clamp(30, 5, 20))
	assert.Equal(t, 0.5, Clamp(0.5, 0.05, 1.0))
	assert.Equal(t, 30, CeilDiv(30, 1))
	assert.Equal(t, 15, CeilDiv(30, 2))
	assert.Equal(t, 10, CeilDiv(30, 3))
	assert.Equal(t, 11, CeilDiv(31, 3))
	assert.Equal(t, []float64{80, 90, 100}, FanAngles(3, 90, 10))
	assert.Equal(t, []float64{90}, FanAngles(1, 90, 10))
}

func TestToRoman(t *testing.T) {
	cases := map[int]string{
		0:    "",
		-3:   "",
		1:    "I",
		4:    "IV",
		6:    "VI",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		1994: "MCMXCIV",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToRoman(in), "ToRoman(%d)", in)
	}
}
