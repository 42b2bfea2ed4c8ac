// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-space-shooter/internal/defs"
)

// Random — источник случайности, который получают системы. Подменяется в тестах.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a uniform value in [lo, hi).
func Range(r Random, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// ChooseWeighted выполняет взвешенный случайный выбор паттерна.
// Вес меньше 1 считается равным 1, так что по умолчанию выбор равновероятный.
func ChooseWeighted(r Random, entries []defs.PatternWeight) defs.FirePattern {
	if len(entries) == 0 {
		return defs.PatternNone
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += max(entry.Weight, 1)
	}

	n := r.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		upto += max(entry.Weight, 1)
		if n < upto {
			return entry.Pattern
		}
	}
	return entries[len(entries)-1].Pattern
}
