package random

import (
	"context"
	"math/rand/v2"
	"sync"
)

// SeededSource воспроизводимый PCG, для симуляций и тестов
type SeededSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededSource) Draw(_ context.Context, _ Input) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64(), nil
}

// Sequence отдает заданные значения по кругу
type Sequence struct {
	mu    sync.Mutex
	draws []float64
	next  int
}

func NewSequence(draws ...float64) *Sequence {
	return &Sequence{draws: draws}
}

func (s *Sequence) Draw(_ context.Context, _ Input) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.draws) == 0 {
		return 0, nil
	}
	d := s.draws[s.next%len(s.draws)]
	s.next++
	return d, nil
}
