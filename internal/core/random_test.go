package core

import "testing"

// seq replays a fixed list of Float64 values.
type seq struct {
	vals []float64
	i    int
}

func (s *seq) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestRandomBetween(t *testing.T) {
	r := &seq{vals: []float64{0, 0.5, 0.999999}}

	if got := RandomBetween(r, -9, 9); got != -9 {
		t.Errorf("RandomBetween() = %f, expected -9", got)
	}
	if got := RandomBetween(r, -9, 9); got != 0 {
		t.Errorf("RandomBetween() = %f, expected 0", got)
	}
	if got := RandomBetween(r, -9, 9); got >= 9 {
		t.Errorf("RandomBetween() = %f, expected < 9", got)
	}
}

func TestRandomChoice(t *testing.T) {
	choices := []int{13, 14, 15}
	r := &seq{vals: []float64{0, 0.34, 0.99}}

	for _, expected := range []int{13, 14, 15} {
		if got := RandomChoice(r, choices); got != expected {
			t.Errorf("RandomChoice() = %d, expected %d", got, expected)
		}
	}
}

func TestRandomChoiceCoversAll(t *testing.T) {
	rng := NewRandom(7)
	seen := map[int]int{}
	for i := 0; i < 3000; i++ {
		seen[RandomChoice(rng, []int{11, 12, 14, 15})]++
	}
	for _, n := range []int{11, 12, 14, 15} {
		if seen[n] < 600 {
			t.Errorf("RandomChoice() picked %d only %d times out of 3000", n, seen[n])
		}
	}
}
